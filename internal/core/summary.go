package core

import (
	"sort"
	"time"
)

// Totals is the headline summary over a transaction list.
type Totals struct {
	Income   Money
	Expenses Money
	Balance  Money
}

// MonthBucket aggregates income and expenses for one YYYY-MM month.
type MonthBucket struct {
	Month    string
	Income   Money
	Expenses Money
}

// CalendarDay is one cell of the current-month calendar grid. Leading
// padding cells carry an empty Date and no transactions.
type CalendarDay struct {
	Date         string
	Total        Money
	Transactions []Transaction
}

// ComputeTotals sums income and expense amounts and derives the balance.
func ComputeTotals(transactions []Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		switch tx.Type {
		case Income:
			t.Income = t.Income.Add(tx.Amount)
		case Expense:
			t.Expenses = t.Expenses.Add(tx.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expenses)
	return t
}

// MonthlySeries buckets transactions by the YYYY-MM prefix of their date and
// sums income and expenses per bucket. Buckets are sorted lexicographically,
// which is chronological for this key format, and only the trailing limit
// buckets are kept.
func MonthlySeries(transactions []Transaction, limit int) []MonthBucket {
	byMonth := make(map[string]*MonthBucket)
	for _, tx := range transactions {
		key := tx.MonthKey()
		b, ok := byMonth[key]
		if !ok {
			b = &MonthBucket{Month: key}
			byMonth[key] = b
		}
		switch tx.Type {
		case Income:
			b.Income = b.Income.Add(tx.Amount)
		case Expense:
			b.Expenses = b.Expenses.Add(tx.Amount)
		}
	}

	series := make([]MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		series = append(series, *b)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })

	if limit > 0 && len(series) > limit {
		series = series[len(series)-limit:]
	}
	return series
}

// CalendarMonth builds the calendar grid for the month containing now.
// The grid starts with blank cells so the first day of the month lands on
// its weekday column (Sunday first). Each day cell carries the plain sum of
// all amounts on that day, income and expense alike, plus the day's
// transaction list.
func CalendarMonth(transactions []Transaction, now time.Time) []CalendarDay {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[string][]Transaction)
	for _, tx := range transactions {
		key := tx.DayKey()
		byDay[key] = append(byDay[key], tx)
	}

	days := make([]CalendarDay, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		days = append(days, CalendarDay{})
	}
	for d := 1; d <= daysInMonth; d++ {
		key := time.Date(year, month, d, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
		cell := CalendarDay{Date: key, Transactions: byDay[key]}
		for _, tx := range cell.Transactions {
			cell.Total = cell.Total.Add(tx.Amount)
		}
		days = append(days, cell)
	}
	return days
}
