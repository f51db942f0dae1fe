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

type trendCmd struct {
	months int
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "monthly income vs expense trend" }
func (*trendCmd) Usage() string {
	return `pft trend [-months <count>]

  Shows income and expense totals per calendar month, oldest first,
  ending with the current month.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 6, "Number of months to show.")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: -months must be at least 1.")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Trend(store.State(), finance.Today(), c.months))
	return subcommands.ExitSuccess
}
