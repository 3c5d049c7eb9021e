package core

import (
	"errors"
	"testing"
	"time"
)

func TestTransactionTypeValid(t *testing.T) {
	if !Income.Valid() || !Expense.Valid() {
		t.Fatalf("expected income and expense to be valid")
	}
	if TransactionType("transfer").Valid() {
		t.Fatalf("expected unknown type to be invalid")
	}
	if TransactionType("").Valid() {
		t.Fatalf("expected empty type to be invalid")
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -100}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	good := Transaction{
		Type:     Income,
		Amount:   Money{Cents: 100},
		Category: "Salary",
		Date:     date,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		tx   Transaction
		want error
	}{
		{Transaction{Type: "transfer", Amount: Money{Cents: 1}, Category: "c", Date: date}, ErrInvalidType},
		{Transaction{Type: Income, Amount: Money{Cents: 0}, Category: "c", Date: date}, ErrInvalidAmount},
		{Transaction{Type: Income, Amount: Money{Cents: 1}, Category: "  ", Date: date}, ErrEmptyCategory},
		{Transaction{Type: Income, Amount: Money{Cents: 1}, Category: "c"}, ErrInvalidDate},
	}
	for i, tc := range cases {
		err := tc.tx.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d: expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestBucketKeys(t *testing.T) {
	tx := Transaction{Date: time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC)}
	if got := tx.DayKey(); got != "2024-01-15" {
		t.Fatalf("day key = %q", got)
	}
	if got := tx.MonthKey(); got != "2024-01" {
		t.Fatalf("month key = %q", got)
	}
}
