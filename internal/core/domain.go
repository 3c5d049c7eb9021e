package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	Money struct {
		Cents int64
	}

	// Transaction is a single income or expense record. Description is
	// optional; the empty string means "no description" and serializes to
	// null at the API boundary.
	Transaction struct {
		ID          string
		Type        TransactionType
		Amount      Money
		Category    string
		Description string
		Date        time.Time
		CreatedAt   time.Time
		UpdatedAt   time.Time
	}
)

var (
	ErrInvalidType   = errors.New("invalid type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
)

// Valid reports whether the transaction type is one of the two known kinds.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// DayKey returns the YYYY-MM-DD key used for calendar bucketing.
func (t Transaction) DayKey() string {
	return t.Date.Format("2006-01-02")
}

// MonthKey returns the YYYY-MM key used for monthly bucketing.
func (t Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}
