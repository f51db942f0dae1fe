package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type addTxCmd struct {
	date        string
	daytime     string
	kind        string
	account     string
	description string
	category    string
	subcategory string
	amount      string
}

func (*addTxCmd) Name() string     { return "add" }
func (*addTxCmd) Synopsis() string { return "record a transaction" }
func (*addTxCmd) Usage() string {
	return `pft add -account <name|id> -amount <value> [-kind <income|expense|transfer>] [options]

  Records a transaction and adjusts the account balance. Income
  credits the account, expense and transfer debit it.

  Example:
    pft add -account "Main Checking" -amount 54.30 -d "Groceries" -category Food -sub Groceries
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date YYYY-MM-DD (default today).")
	f.StringVar(&c.daytime, "time", "", "Time of day HH:MM (default 12:00).")
	f.StringVar(&c.kind, "kind", string(finance.Expense), "Kind: income, expense or transfer.")
	f.StringVar(&c.account, "account", "", "Account name or id.")
	f.StringVar(&c.description, "d", "", "Free text description.")
	f.StringVar(&c.category, "category", "", "Category name or id.")
	f.StringVar(&c.subcategory, "sub", "", "Subcategory name.")
	f.StringVar(&c.amount, "amount", "", "Amount, always positive.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -account and -amount are required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	l := store.State()
	tx, err := c.resolve(l)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	state, err := store.Dispatch(finance.AddTransaction{Transaction: tx})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created := state.Transactions[len(state.Transactions)-1]
	fmt.Printf("Recorded %s of %s on %s (id %s)\n", created.Kind, created.Amount, created.Date, created.ID)
	return subcommands.ExitSuccess
}

// resolve turns the raw flag values into a transaction, mapping account and
// category names to ids against the current ledger.
func (c *addTxCmd) resolve(l *finance.Ledger) (finance.Transaction, error) {
	var tx finance.Transaction

	amount, err := finance.ParseMoney(c.amount)
	if err != nil {
		return tx, fmt.Errorf("invalid amount %q", c.amount)
	}
	if !amount.IsPositive() {
		return tx, fmt.Errorf("amount must be positive, got %q", c.amount)
	}

	kind, err := finance.ParseTxKind(c.kind)
	if err != nil {
		return tx, err
	}

	account := accountID(l, c.account)
	if account == "" {
		return tx, fmt.Errorf("unknown account %q", c.account)
	}

	date := finance.Today()
	if c.date != "" {
		if date, err = finance.ParseDate(c.date); err != nil {
			return tx, err
		}
	}

	tx = finance.Transaction{
		Date:        date,
		Time:        finance.ParseDaytime(c.daytime),
		Kind:        kind,
		Account:     account,
		Description: c.description,
		Subcategory: c.subcategory,
		Amount:      amount,
	}
	if c.category != "" {
		tx.Category = categoryID(l, c.category)
		if tx.Category == "" {
			return tx, fmt.Errorf("unknown category %q", c.category)
		}
	}
	if err := checkSubcategory(l, tx.Category, tx.Subcategory); err != nil {
		return tx, err
	}
	return tx, nil
}

// checkSubcategory verifies that a subcategory, when set, is one of the
// chosen category's subcategories.
func checkSubcategory(l *finance.Ledger, categoryID, sub string) error {
	if sub == "" {
		return nil
	}
	cat := l.Category(categoryID)
	if cat == nil {
		return fmt.Errorf("subcategory %q needs a category", sub)
	}
	if !cat.HasSubcategory(sub) {
		return fmt.Errorf("category %q has no subcategory %q", cat.Name, sub)
	}
	return nil
}

// accountID resolves a name-or-id flag value to an account id.
func accountID(l *finance.Ledger, s string) string {
	if a := l.Account(s); a != nil {
		return a.ID
	}
	if a := l.AccountByName(s); a != nil {
		return a.ID
	}
	return ""
}

// categoryID resolves a name-or-id flag value to a category id.
func categoryID(l *finance.Ledger, s string) string {
	if c := l.Category(s); c != nil {
		return c.ID
	}
	if c := l.CategoryByName(s); c != nil {
		return c.ID
	}
	return ""
}
