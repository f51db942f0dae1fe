package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type addTypeCmd struct {
	name string
	kind string
}

func (*addTypeCmd) Name() string     { return "add-type" }
func (*addTypeCmd) Synopsis() string { return "create a transaction type" }
func (*addTypeCmd) Usage() string {
	return `pft add-type -name <name> -kind <income|expense|transfer>

  Creates a transaction type. The kind decides how transactions of
  this type move balances: income credits the account, everything
  else debits it.

  Example:
    pft add-type -name "Freelance" -kind income
`
}

func (c *addTypeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Type name.")
	f.StringVar(&c.kind, "kind", string(finance.Expense), "Kind: income, expense or transfer.")
}

func (c *addTypeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	tt := finance.TransactionType{Name: c.name, Kind: finance.TxKind(c.kind)}
	state, err := store.Dispatch(finance.AddTransactionType{Type: tt})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created := state.TransactionTypes[len(state.TransactionTypes)-1]
	fmt.Printf("Created type %q (id %s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
