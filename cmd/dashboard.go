package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmejia-loth/Personal-Finance-Management-App-6304/renderer"
)

type dashboardCmd struct {
	recent int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show totals, balances and recent activity" }
func (*dashboardCmd) Usage() string {
	return `pft dashboard [-n <count>]

  Shows the headline totals, the balance of every account and the
  most recent transactions.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "n", 5, "Number of recent transactions to show.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.Dashboard(store.State(), c.recent))
	return subcommands.ExitSuccess
}
