package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type addAccountCmd struct {
	name    string
	typ     string
	balance string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new account" }
func (*addAccountCmd) Usage() string {
	return `pft add-account -name <name> [-type <type>] [-balance <amount>]

  Creates a new account with a fresh id. Type is one of checking, savings,
  credit, investment, loan.

Usage Examples:
$ pft add-account -name "Joint Checking" -type checking -balance 1200.00
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.typ, "type", string(finance.Checking), "Account type.")
	f.StringVar(&c.balance, "balance", "0", "Starting balance.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	accountType, err := finance.ParseAccountType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	balance, err := finance.ParseMoney(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	state, err := store.Dispatch(finance.AddAccount{Account: finance.Account{
		Name:    c.name,
		Type:    accountType,
		Balance: balance,
	}})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created := state.Accounts[len(state.Accounts)-1]
	fmt.Printf("Created account %q (%s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}
