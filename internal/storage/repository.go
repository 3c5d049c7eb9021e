// Package storage persists transactions in SQLite. The repository is an
// explicitly constructed object with an open/close lifecycle owned by main;
// request handlers receive it through an interface, never via globals.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"budget/internal/core"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an update or delete targets an id that does
// not exist. Handlers map it to 404 instead of a generic storage failure.
var ErrNotFound = errors.New("transaction not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const transactionColumns = "id, type, amount_cents, category, description, date, created_at, updated_at"

// List returns all transactions ordered by date descending, most recent
// first. Ties keep insertion order via created_at.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions ORDER BY date DESC, created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []core.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}

// Get retrieves a single transaction by id.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %s: %w", id, err)
	}
	return tx, nil
}

// Create inserts a new row, assigning the id and both timestamps.
func (r *SQLiteRepository) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	now := time.Now().UTC()
	tx.ID = uuid.NewString()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO transactions ("+transactionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		tx.ID, string(tx.Type), tx.Amount.Cents, tx.Category, nullableString(tx.Description),
		formatTime(tx.Date), formatTime(tx.CreatedAt), formatTime(tx.UpdatedAt))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", tx.ID,
		"type", tx.Type,
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category)

	return tx, nil
}

// Update replaces the mutable fields of an existing row and refreshes
// updated_at. Returns ErrNotFound when the id does not match any row.
func (r *SQLiteRepository) Update(ctx context.Context, id string, tx core.Transaction) (core.Transaction, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET type = ?, amount_cents = ?, category = ?, description = ?, date = ?, updated_at = ?
		 WHERE id = ?`,
		string(tx.Type), tx.Amount.Cents, tx.Category, nullableString(tx.Description),
		formatTime(tx.Date), formatTime(now), id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update rows affected: %w", err)
	}
	if affected == 0 {
		return core.Transaction{}, ErrNotFound
	}

	updated, err := r.Get(ctx, id)
	if err != nil {
		return core.Transaction{}, err
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id, "type", updated.Type, "amount_cents", updated.Amount.Cents)
	return updated, nil
}

// Delete removes the row with the given id, returning ErrNotFound when it
// does not exist.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

// Count returns the number of stored transactions. Used by the health probe
// as a trivial connectivity check.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		tx          core.Transaction
		kind        string
		description sql.NullString
		date        string
		createdAt   string
		updatedAt   string
	)
	if err := row.Scan(&tx.ID, &kind, &tx.Amount.Cents, &tx.Category, &description, &date, &createdAt, &updatedAt); err != nil {
		return core.Transaction{}, err
	}
	tx.Type = core.TransactionType(kind)
	tx.Description = description.String

	var err error
	if tx.Date, err = parseTime(date); err != nil {
		return core.Transaction{}, fmt.Errorf("parse date: %w", err)
	}
	if tx.CreatedAt, err = parseTime(createdAt); err != nil {
		return core.Transaction{}, fmt.Errorf("parse created_at: %w", err)
	}
	if tx.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return core.Transaction{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return tx, nil
}

// Timestamps are stored as RFC 3339 strings in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
