package finance

import (
	"fmt"
	"sort"
	"time"
)

// Summary is the dashboard headline: totals across the whole ledger.
type Summary struct {
	TotalBalance  Money
	TotalIncome   Money
	TotalExpenses Money
	Accounts      int
	Transactions  int
}

// NewSummary computes the dashboard summary for a snapshot. Total income and
// expenses scan all transactions; the total balance sums the stored account
// balances, which the reducer keeps consistent.
func NewSummary(l *Ledger) Summary {
	s := Summary{Accounts: len(l.Accounts), Transactions: len(l.Transactions)}
	for _, a := range l.Accounts {
		s.TotalBalance = s.TotalBalance.Add(a.Balance)
	}
	for tx := range l.Select(ByKind(Income)) {
		s.TotalIncome = s.TotalIncome.Add(tx.Amount)
	}
	for tx := range l.Select(ByKind(Expense)) {
		s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
	}
	return s
}

// RecentTransactions returns up to n transactions, newest first by date and
// time-of-day.
func RecentTransactions(l *Ledger, n int) []Transaction {
	out := make([]Transaction, len(l.Transactions))
	copy(out, l.Transactions)
	sort.SliceStable(out, func(i, j int) bool { return out[j].Before(out[i]) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// IncomeVsExpense totals income and expense transactions inside a range.
type IncomeVsExpense struct {
	Income   Money
	Expenses Money
}

// NewIncomeVsExpense computes the income/expense split for the range.
func NewIncomeVsExpense(l *Ledger, r Range) IncomeVsExpense {
	var v IncomeVsExpense
	for tx := range l.Select(r.Contains) {
		switch tx.Kind {
		case Income:
			v.Income = v.Income.Add(tx.Amount)
		case Expense:
			v.Expenses = v.Expenses.Add(tx.Amount)
		}
	}
	return v
}

// MonthPoint is one month of the income/expense trend series.
type MonthPoint struct {
	Month    string // YYYY-MM
	Income   Money
	Expenses Money
}

// NewMonthlyTrend computes per-month income and expense totals for the
// given number of calendar months ending with the month of end, oldest
// first. Months without activity carry zero totals.
func NewMonthlyTrend(l *Ledger, end Date, months int) []MonthPoint {
	out := make([]MonthPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := NewDate(end.Year(), end.Month()-time.Month(i), 1)
		split := NewIncomeVsExpense(l, Range{Start: start, End: start.EndOfMonth()})
		out = append(out, MonthPoint{
			Month:    fmt.Sprintf("%04d-%02d", start.Year(), start.Month()),
			Income:   split.Income,
			Expenses: split.Expenses,
		})
	}
	return out
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Name  string
	Total Money
}

// NewCategoryBreakdown sums transaction amounts per referenced category
// inside a range, ordered by descending total. Transactions without a
// category are skipped; dangling category references group under "Unknown".
func NewCategoryBreakdown(l *Ledger, r Range) []CategoryTotal {
	totals := make(map[string]Money)
	for tx := range l.Select(r.Contains) {
		if tx.Category == "" {
			continue
		}
		name := l.CategoryName(tx.Category)
		if name == "" {
			name = "Unknown"
		}
		totals[name] = totals[name].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, CategoryTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[j].Total.LessThan(out[i].Total)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
