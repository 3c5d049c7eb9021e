package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"budget/internal/amqp"
	"budget/internal/storage"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := s.loadTransactions(r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to fetch transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, newTransactionResponses(transactions))
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := parseTransactionRequest(r)
	if err != nil {
		slog.WarnContext(r.Context(), "Create validation failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.Create(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to create transaction",
			"error", err,
			"type", tx.Type,
			"amount_cents", tx.Amount.Cents,
			"category", tx.Category)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to create transaction", err)
		return
	}

	s.listCache.Delete(listCacheKey)
	s.publishEvent(r, amqp.ActionCreated, created.ID)

	slog.InfoContext(r.Context(), "Transaction created",
		"id", created.ID,
		"type", created.Type,
		"amount_cents", created.Amount.Cents,
		"category", created.Category)

	writeJSON(w, http.StatusCreated, newTransactionResponse(created))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	tx, err := parseTransactionRequest(r)
	if err != nil {
		slog.WarnContext(r.Context(), "Update validation failed", "error", err, "id", id)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.store.Update(r.Context(), id, tx)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to update transaction", "error", err, "id", id)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to update transaction", err)
		return
	}

	s.listCache.Delete(listCacheKey)
	s.publishEvent(r, amqp.ActionUpdated, id)

	slog.InfoContext(r.Context(), "Transaction updated", "id", id)
	writeJSON(w, http.StatusOK, newTransactionResponse(updated))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.store.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete transaction", "error", err, "id", id)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to delete transaction", err)
		return
	}

	s.listCache.Delete(listCacheKey)
	s.publishEvent(r, amqp.ActionDeleted, id)

	slog.InfoContext(r.Context(), "Transaction deleted", "id", id)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// handleHealth runs a trivial count query to confirm database connectivity.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.Count(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Health check failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":    "error",
			"error":     err.Error(),
			"timestamp": isoTime(time.Now()),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"database":         "connected",
		"transactionCount": count,
		"timestamp":        isoTime(time.Now()),
	})
}

func (s *Server) handleTestConnection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Connection successful!",
		"timestamp": isoTime(time.Now()),
		"server":    "budget",
		"status":    "ok",
	})
}

// publishEvent emits a change event when a publisher is configured.
// Publishing failures are logged, never surfaced: the write already
// succeeded and the response must reflect that.
func (s *Server) publishEvent(r *http.Request, action, id string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishTransactionEvent(r.Context(), action, id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to publish transaction event",
			"error", err, "action", action, "id", id)
	}
}
