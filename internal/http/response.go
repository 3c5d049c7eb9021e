package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"budget/internal/core"
)

// transactionResponse is the wire shape of a transaction. Every date-typed
// field is rendered as an ISO-8601 string; description is null when unset.
type transactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func newTransactionResponse(tx core.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:        tx.ID,
		Type:      string(tx.Type),
		Amount:    tx.Amount.Euros(),
		Category:  tx.Category,
		Date:      isoTime(tx.Date),
		CreatedAt: isoTime(tx.CreatedAt),
		UpdatedAt: isoTime(tx.UpdatedAt),
	}
	if tx.Description != "" {
		desc := tx.Description
		resp.Description = &desc
	}
	return resp
}

func newTransactionResponses(transactions []core.Transaction) []transactionResponse {
	responses := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, newTransactionResponse(tx))
	}
	return responses
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeErrorDetails(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
