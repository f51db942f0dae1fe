package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
	"github.com/mmejia-loth/Personal-Finance-Management-App-6304/renderer"
)

type txCmd struct {
	account  string
	category string
	kind     string
	start    string
	end      string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `pft tx [-account <name|id>] [-category <name|id>] [-kind <kind>] [-s <date>] [-e <date>]

  Lists transactions, newest first, optionally filtered by account,
  category, kind and date range.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Only this account, by name or id.")
	f.StringVar(&c.category, "category", "", "Only this category, by name or id.")
	f.StringVar(&c.kind, "kind", "", "Only this kind: income, expense or transfer.")
	f.StringVar(&c.start, "s", "", "Start date YYYY-MM-DD inclusive.")
	f.StringVar(&c.end, "e", "", "End date YYYY-MM-DD inclusive.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	l := store.State()
	filters, err := c.filters(l)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	var txs []finance.Transaction
	for tx := range l.Select(filters...) {
		txs = append(txs, tx)
	}
	txs = finance.RecentTransactions(&finance.Ledger{Transactions: txs}, len(txs))
	printMarkdown(renderer.Transactions(l, txs))
	return subcommands.ExitSuccess
}

func (c *txCmd) filters(l *finance.Ledger) ([]func(finance.Transaction) bool, error) {
	var filters []func(finance.Transaction) bool
	if c.account != "" {
		id := accountID(l, c.account)
		if id == "" {
			return nil, fmt.Errorf("unknown account %q", c.account)
		}
		filters = append(filters, finance.ByAccount(id))
	}
	if c.category != "" {
		id := categoryID(l, c.category)
		if id == "" {
			return nil, fmt.Errorf("unknown category %q", c.category)
		}
		filters = append(filters, func(tx finance.Transaction) bool { return tx.Category == id })
	}
	if c.kind != "" {
		filters = append(filters, finance.ByKind(finance.TxKind(c.kind)))
	}
	if c.start != "" {
		start, err := finance.ParseDate(c.start)
		if err != nil {
			return nil, err
		}
		filters = append(filters, func(tx finance.Transaction) bool { return !tx.Date.Before(start) })
	}
	if c.end != "" {
		end, err := finance.ParseDate(c.end)
		if err != nil {
			return nil, err
		}
		filters = append(filters, func(tx finance.Transaction) bool { return !tx.Date.After(end) })
	}
	return filters, nil
}
