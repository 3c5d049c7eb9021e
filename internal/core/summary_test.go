package core

import (
	"testing"
	"time"
)

func tx(kind TransactionType, euros float64, date string) Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return Transaction{
		Type:     kind,
		Amount:   Money{Cents: int64(euros * 100)},
		Category: "Other",
		Date:     d,
	}
}

func TestComputeTotals(t *testing.T) {
	transactions := []Transaction{
		tx(Income, 100, "2024-01-15"),
		tx(Expense, 40, "2024-01-16"),
		tx(Income, 25, "2024-02-01"),
	}
	totals := ComputeTotals(transactions)
	if totals.Income.Cents != 12500 {
		t.Fatalf("income = %d", totals.Income.Cents)
	}
	if totals.Expenses.Cents != 4000 {
		t.Fatalf("expenses = %d", totals.Expenses.Cents)
	}
	if totals.Balance.Cents != 8500 {
		t.Fatalf("balance = %d", totals.Balance.Cents)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	if totals.Income.Cents != 0 || totals.Expenses.Cents != 0 || totals.Balance.Cents != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestMonthlySeriesBucketing(t *testing.T) {
	transactions := []Transaction{
		tx(Income, 10, "2024-01-15"),
		tx(Income, 20, "2024-01-20"),
		tx(Expense, 5, "2024-02-03"),
	}
	series := MonthlySeries(transactions, 6)
	if len(series) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(series))
	}
	if series[0].Month != "2024-01" || series[0].Income.Cents != 3000 || series[0].Expenses.Cents != 0 {
		t.Fatalf("unexpected first bucket: %+v", series[0])
	}
	if series[1].Month != "2024-02" || series[1].Expenses.Cents != 500 {
		t.Fatalf("unexpected second bucket: %+v", series[1])
	}
}

func TestMonthlySeriesKeepsLastBuckets(t *testing.T) {
	var transactions []Transaction
	for m := 1; m <= 9; m++ {
		transactions = append(transactions, Transaction{
			Type:   Income,
			Amount: Money{Cents: 100},
			Date:   time.Date(2024, time.Month(m), 10, 0, 0, 0, 0, time.UTC),
		})
	}
	series := MonthlySeries(transactions, 6)
	if len(series) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(series))
	}
	if series[0].Month != "2024-04" || series[5].Month != "2024-09" {
		t.Fatalf("unexpected window: %s..%s", series[0].Month, series[5].Month)
	}
}

func TestCalendarMonthPadding(t *testing.T) {
	// June 2024 starts on a Saturday: six leading blanks expected.
	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	transactions := []Transaction{
		tx(Income, 100, "2024-06-01"),
		tx(Expense, 40, "2024-06-01"),
		tx(Income, 7, "2024-06-15"),
		tx(Income, 99, "2024-05-30"), // other month, still bucketed by its own date
	}
	days := CalendarMonth(transactions, now)

	blanks := 0
	for _, d := range days {
		if d.Date == "" {
			blanks++
		} else {
			break
		}
	}
	if blanks != 6 {
		t.Fatalf("expected 6 leading blanks for a Saturday start, got %d", blanks)
	}
	if len(days) != blanks+30 {
		t.Fatalf("expected %d cells, got %d", blanks+30, len(days))
	}

	first := days[blanks]
	if first.Date != "2024-06-01" {
		t.Fatalf("first day = %q", first.Date)
	}
	// Per-day total is the plain sum of amounts regardless of type.
	if first.Total.Cents != 14000 {
		t.Fatalf("day total = %d", first.Total.Cents)
	}
	if len(first.Transactions) != 2 {
		t.Fatalf("day transactions = %d", len(first.Transactions))
	}

	mid := days[blanks+14]
	if mid.Date != "2024-06-15" || mid.Total.Cents != 700 {
		t.Fatalf("unexpected mid cell: %+v", mid)
	}
}
