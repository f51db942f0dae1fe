package agent

import (
	"fmt"
	"strings"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

// Digest summarizes a ledger snapshot as plain text for the advisor's
// system instruction. It carries totals, account balances and the current
// month's category breakdown, but no individual transactions.
func Digest(l *finance.Ledger) string {
	var b strings.Builder

	s := finance.NewSummary(l)
	fmt.Fprintf(&b, "Total balance: %s across %d accounts.\n", s.TotalBalance, s.Accounts)
	fmt.Fprintf(&b, "All-time income %s, expenses %s, %d transactions.\n", s.TotalIncome, s.TotalExpenses, s.Transactions)

	b.WriteString("Accounts:\n")
	for _, a := range l.Accounts {
		fmt.Fprintf(&b, "- %s (%s): %s\n", a.Name, a.Type, a.Balance)
	}

	month := finance.ThisMonth()
	breakdown := finance.NewCategoryBreakdown(l, month)
	if len(breakdown) > 0 {
		fmt.Fprintf(&b, "Spending by category, %s to %s:\n", month.Start, month.End)
		for _, ct := range breakdown {
			fmt.Fprintf(&b, "- %s: %s\n", ct.Name, ct.Total)
		}
	}
	return b.String()
}
