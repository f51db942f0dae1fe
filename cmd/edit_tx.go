package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type editTxCmd struct {
	id          string
	date        string
	daytime     string
	kind        string
	account     string
	description string
	category    string
	subcategory string
	amount      string
}

func (*editTxCmd) Name() string     { return "edit" }
func (*editTxCmd) Synopsis() string { return "edit a recorded transaction" }
func (*editTxCmd) Usage() string {
	return `pft edit -id <id> [options]

  Updates the named fields of a transaction and leaves the rest
  untouched. Balances are recomputed: the old effect is reverted
  and the new one applied.
`
}

func (c *editTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id to edit.")
	f.StringVar(&c.date, "date", "", "New date YYYY-MM-DD.")
	f.StringVar(&c.daytime, "time", "", "New time of day HH:MM.")
	f.StringVar(&c.kind, "kind", "", "New kind: income, expense or transfer.")
	f.StringVar(&c.account, "account", "", "New account name or id.")
	f.StringVar(&c.description, "d", "", "New description.")
	f.StringVar(&c.category, "category", "", "New category name or id.")
	f.StringVar(&c.subcategory, "sub", "", "New subcategory name.")
	f.StringVar(&c.amount, "amount", "", "New amount, always positive.")
}

func (c *editTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	l := store.State()
	current := l.Transaction(c.id)
	if current == nil {
		fmt.Fprintf(os.Stderr, "Error: no transaction %q.\n", c.id)
		return subcommands.ExitFailure
	}

	tx := *current
	if err := c.overlay(l, &tx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if _, err := store.Dispatch(finance.UpdateTransaction{Transaction: tx}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated transaction %q\n", tx.ID)
	return subcommands.ExitSuccess
}

// overlay applies the provided flags onto tx.
func (c *editTxCmd) overlay(l *finance.Ledger, tx *finance.Transaction) error {
	if c.date != "" {
		date, err := finance.ParseDate(c.date)
		if err != nil {
			return err
		}
		tx.Date = date
	}
	if c.daytime != "" {
		tx.Time = finance.ParseDaytime(c.daytime)
	}
	if c.kind != "" {
		kind, err := finance.ParseTxKind(c.kind)
		if err != nil {
			return err
		}
		tx.Kind = kind
	}
	if c.account != "" {
		id := accountID(l, c.account)
		if id == "" {
			return fmt.Errorf("unknown account %q", c.account)
		}
		tx.Account = id
	}
	if c.description != "" {
		tx.Description = c.description
	}
	if c.category != "" {
		id := categoryID(l, c.category)
		if id == "" {
			return fmt.Errorf("unknown category %q", c.category)
		}
		tx.Category = id
	}
	if c.subcategory != "" {
		tx.Subcategory = c.subcategory
	}
	if c.amount != "" {
		amount, err := finance.ParseMoney(c.amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", c.amount)
		}
		if !amount.IsPositive() {
			return fmt.Errorf("amount must be positive, got %q", c.amount)
		}
		tx.Amount = amount
	}
	return checkSubcategory(l, tx.Category, tx.Subcategory)
}
