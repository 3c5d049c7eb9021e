package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"budget/internal/core"
)

// validationError marks a client-caused failure. Handlers surface it as a
// 400 with the short machine-oriented message as the body.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func invalidInput(msg string) error { return &validationError{msg: msg} }

// transactionRequest is the create/update body. Amount stays raw so it can
// be accepted either as a JSON number or as a decimal string.
type transactionRequest struct {
	Type        string          `json:"type"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// parseTransactionRequest decodes and validates a create/update body. The
// same contract applies to both operations: all of type, amount, category,
// and date are required; type must be income or expense; amount must coerce
// to a strictly positive number; the date must parse. Description defaults
// to empty (serialized as null).
func parseTransactionRequest(r *http.Request) (core.Transaction, error) {
	var req transactionRequest
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		return core.Transaction{}, invalidInput("Invalid request body")
	}

	req.Type = strings.TrimSpace(req.Type)
	req.Category = sanitizeInput(req.Category)
	req.Description = sanitizeInput(req.Description)
	req.Date = strings.TrimSpace(req.Date)

	if req.Type == "" || len(req.Amount) == 0 || isJSONNull(req.Amount) || req.Category == "" || req.Date == "" {
		return core.Transaction{}, invalidInput("Missing required fields")
	}

	kind := core.TransactionType(req.Type)
	if !kind.Valid() {
		return core.Transaction{}, invalidInput("Invalid type")
	}

	cents, err := parseAmount(req.Amount)
	if err != nil {
		return core.Transaction{}, invalidInput("Invalid amount")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return core.Transaction{}, invalidInput("Invalid date")
	}

	tx := core.Transaction{
		Type:        kind,
		Amount:      core.Money{Cents: cents},
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, invalidInput(err.Error())
	}
	return tx, nil
}

// parseAmount coerces a raw JSON amount to cents. Strings get decimal
// parsing with comma support; numbers are rounded to cents.
func parseAmount(raw json.RawMessage) (int64, error) {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return core.ParseDecimalToCents(s)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	return core.CentsFromFloat(v)
}

// parseDate accepts plain calendar dates (2024-01-15) and full RFC 3339
// timestamps, which is what the browser form and API clients send.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
