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

type reportCmd struct {
	start    string
	end      string
	account  string
	category string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "income vs expense report with category breakdown" }
func (*reportCmd) Usage() string {
	return `pft report [-s <date>] [-e <date>] [-account <name|id>] [-category <name|id>]

  Reports income, expenses and per-category totals over a date
  range. Defaults to the current month.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date YYYY-MM-DD inclusive.")
	f.StringVar(&c.end, "e", "", "End date YYYY-MM-DD inclusive.")
	f.StringVar(&c.account, "account", "", "Restrict to one account, by name or id.")
	f.StringVar(&c.category, "category", "", "Restrict to one category, by name or id.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	l := store.State()
	r := finance.ThisMonth()
	if c.start != "" {
		if r.Start, err = finance.ParseDate(c.start); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	if c.end != "" {
		if r.End, err = finance.ParseDate(c.end); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}
	if c.account != "" {
		if r.Account = accountID(l, c.account); r.Account == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown account %q.\n", c.account)
			return subcommands.ExitFailure
		}
	}
	if c.category != "" {
		if r.Category = categoryID(l, c.category); r.Category == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q.\n", c.category)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.Report(l, r))
	return subcommands.ExitSuccess
}
