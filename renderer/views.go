package renderer

import (
	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

// transactionRow is the flat view of one transaction for table templates.
type transactionRow struct {
	Date        string
	Time        string
	Kind        string
	Account     string
	Description string
	Category    string
	Amount      string
}

func newTransactionRow(l *finance.Ledger, tx finance.Transaction) transactionRow {
	amount := tx.Amount.Neg()
	if tx.Kind == finance.Income {
		amount = tx.Amount
	}
	category := l.CategoryName(tx.Category)
	if tx.Subcategory != "" && category != "" {
		category += " > " + tx.Subcategory
	}
	return transactionRow{
		Date:        tx.Date.String(),
		Time:        tx.Time.String(),
		Kind:        string(tx.Kind),
		Account:     l.AccountName(tx.Account),
		Description: tx.Description,
		Category:    category,
		Amount:      amount.SignedString(),
	}
}

// Transactions renders a transaction table.
func Transactions(l *finance.Ledger, txs []finance.Transaction) string {
	rows := make([]transactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, newTransactionRow(l, tx))
	}
	return renderTemplate("transactions", "transactions.md", nil, rows)
}

// accountRow is the flat view of one account.
type accountRow struct {
	ID      string
	Name    string
	Type    string
	Balance string
}

// Accounts renders the account list with balances.
func Accounts(l *finance.Ledger) string {
	rows := make([]accountRow, 0, len(l.Accounts))
	for _, a := range l.Accounts {
		rows = append(rows, accountRow{ID: a.ID, Name: a.Name, Type: string(a.Type), Balance: a.Balance.String()})
	}
	return renderTemplate("accounts", "accounts.md", nil, rows)
}

// categoryRow is the flat view of one category.
type categoryRow struct {
	ID            string
	Name          string
	Subcategories string
}

// Categories renders the category list.
func Categories(l *finance.Ledger) string {
	rows := make([]categoryRow, 0, len(l.Categories))
	for _, c := range l.Categories {
		sub := ""
		for i, s := range c.Subcategories {
			if i > 0 {
				sub += ", "
			}
			sub += s
		}
		rows = append(rows, categoryRow{ID: c.ID, Name: c.Name, Subcategories: sub})
	}
	return renderTemplate("categories", "categories.md", nil, rows)
}

// typeRow is the flat view of one transaction type.
type typeRow struct {
	ID   string
	Name string
	Kind string
}

// TransactionTypes renders the transaction type list.
func TransactionTypes(l *finance.Ledger) string {
	rows := make([]typeRow, 0, len(l.TransactionTypes))
	for _, t := range l.TransactionTypes {
		rows = append(rows, typeRow{ID: t.ID, Name: t.Name, Kind: string(t.Kind)})
	}
	return renderTemplate("types", "types.md", nil, rows)
}

// dashboardView feeds the dashboard template.
type dashboardView struct {
	TotalBalance  string
	TotalIncome   string
	TotalExpenses string
	Accounts      []accountRow
	Recent        []transactionRow
}

// Dashboard renders the overview: headline totals, per-account balances and
// the most recent transactions.
func Dashboard(l *finance.Ledger, recent int) string {
	summary := finance.NewSummary(l)
	view := dashboardView{
		TotalBalance:  summary.TotalBalance.String(),
		TotalIncome:   summary.TotalIncome.String(),
		TotalExpenses: summary.TotalExpenses.String(),
	}
	for _, a := range l.Accounts {
		view.Accounts = append(view.Accounts, accountRow{ID: a.ID, Name: a.Name, Type: string(a.Type), Balance: a.Balance.String()})
	}
	for _, tx := range finance.RecentTransactions(l, recent) {
		view.Recent = append(view.Recent, newTransactionRow(l, tx))
	}
	partials := map[string]string{
		"dashboard_accounts": "dashboard_accounts.md",
		"dashboard_recent":   "dashboard_recent.md",
	}
	return renderTemplate("dashboard", "dashboard.md", partials, view)
}

// reportView feeds the report template.
type reportView struct {
	Start      string
	End        string
	Income     string
	Expenses   string
	Net        string
	Categories []breakdownRow
}

type breakdownRow struct {
	Name  string
	Total string
}

// trendRow is the flat view of one month in the trend series.
type trendRow struct {
	Month    string
	Income   string
	Expenses string
	Net      string
}

// Trend renders the per-month income/expense series for the given number of
// months ending at end.
func Trend(l *finance.Ledger, end finance.Date, months int) string {
	rows := make([]trendRow, 0, months)
	for _, p := range finance.NewMonthlyTrend(l, end, months) {
		rows = append(rows, trendRow{
			Month:    p.Month,
			Income:   p.Income.String(),
			Expenses: p.Expenses.String(),
			Net:      p.Income.Sub(p.Expenses).SignedString(),
		})
	}
	return renderTemplate("trend", "trend.md", nil, rows)
}

// Report renders the income/expense split and category breakdown for a range.
func Report(l *finance.Ledger, r finance.Range) string {
	split := finance.NewIncomeVsExpense(l, r)
	view := reportView{
		Start:    r.Start.String(),
		End:      r.End.String(),
		Income:   split.Income.String(),
		Expenses: split.Expenses.String(),
		Net:      split.Income.Sub(split.Expenses).SignedString(),
	}
	for _, ct := range finance.NewCategoryBreakdown(l, r) {
		view.Categories = append(view.Categories, breakdownRow{Name: ct.Name, Total: ct.Total.String()})
	}
	return renderTemplate("report", "report.md", nil, view)
}
