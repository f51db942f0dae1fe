package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type updateAccountCmd struct {
	id      string
	name    string
	typ     string
	balance string
}

func (*updateAccountCmd) Name() string     { return "update-account" }
func (*updateAccountCmd) Synopsis() string { return "replace an account's fields" }
func (*updateAccountCmd) Usage() string {
	return `pft update-account -id <id> [-name <name>] [-type <type>] [-balance <amount>]

  Replaces the account with the given id. Fields left out keep their
  current value. Updating an unknown id changes nothing.
`
}

func (c *updateAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account id to update.")
	f.StringVar(&c.name, "name", "", "New account name.")
	f.StringVar(&c.typ, "type", "", "New account type.")
	f.StringVar(&c.balance, "balance", "", "New balance.")
}

func (c *updateAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	current := store.State().Account(c.id)
	if current == nil {
		fmt.Fprintf(os.Stderr, "Error: account %q not found.\n", c.id)
		return subcommands.ExitFailure
	}

	account := *current
	if c.name != "" {
		account.Name = c.name
	}
	if c.typ != "" {
		accountType, err := finance.ParseAccountType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		account.Type = accountType
	}
	if c.balance != "" {
		balance, err := finance.ParseMoney(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
			return subcommands.ExitUsageError
		}
		account.Balance = balance
	}

	if _, err := store.Dispatch(finance.UpdateAccount{Account: account}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated account %q\n", account.ID)
	return subcommands.ExitSuccess
}
