package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"budget/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "budget.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testTransaction(kind core.TransactionType, cents int64, date string) core.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return core.Transaction{
		Type:     kind,
		Amount:   core.Money{Cents: cents},
		Category: "Other",
		Date:     d,
	}
}

func TestCreateAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tx := testTransaction(core.Income, 12550, "2024-03-10")
	tx.Description = "march salary"
	created, err := repo.Create(ctx, tx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(listed))
	}
	got := listed[0]
	if got.ID != created.ID || got.Type != core.Income || got.Amount.Cents != 12550 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Description != "march salary" {
		t.Fatalf("description = %q", got.Description)
	}
	if got.Date.Format("2006-01-02") != "2024-03-10" {
		t.Fatalf("date = %v", got.Date)
	}
}

func TestListOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Insert out of order; list must come back most recent date first.
	for _, date := range []string{"2024-02-01", "2024-03-01", "2024-01-01"} {
		if _, err := repo.Create(ctx, testTransaction(core.Expense, 100, date)); err != nil {
			t.Fatalf("create %s: %v", date, err)
		}
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	if len(listed) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(listed))
	}
	for i, w := range want {
		if got := listed[i].Date.Format("2006-01-02"); got != w {
			t.Fatalf("position %d: got %s, want %s", i, got, w)
		}
	}
}

func TestEmptyDescriptionRoundsTripAsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testTransaction(core.Expense, 500, "2024-01-05"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != "" {
		t.Fatalf("expected empty description, got %q", got.Description)
	}
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testTransaction(core.Income, 1000, "2024-01-10"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	replacement := testTransaction(core.Expense, 2500, "2024-01-12")
	replacement.Category = "Food"
	replacement.Description = "groceries"
	updated, err := repo.Update(ctx, created.ID, replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Type != core.Expense || updated.Amount.Cents != 2500 || updated.Category != "Food" {
		t.Fatalf("unexpected updated row: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at must be immutable: %v != %v", updated.CreatedAt, created.CreatedAt)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestUpdateNotFound(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Update(context.Background(), "missing-id", testTransaction(core.Income, 100, "2024-01-01"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testTransaction(core.Expense, 700, "2024-04-01"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	keep, err := repo.Create(ctx, testTransaction(core.Income, 900, "2024-04-02"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %+v", keep.ID, listed)
	}

	if err := repo.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("count empty = %d, %v", n, err)
	}
	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, testTransaction(core.Income, 100, "2024-01-01")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	n, err = repo.Count(ctx)
	if err != nil || n != 3 {
		t.Fatalf("count = %d, %v", n, err)
	}
}
