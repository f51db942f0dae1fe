package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type deleteTypeCmd struct {
	id string
}

func (*deleteTypeCmd) Name() string     { return "delete-type" }
func (*deleteTypeCmd) Synopsis() string { return "delete a transaction type" }
func (*deleteTypeCmd) Usage() string {
	return `pft delete-type -id <id>

  Removes the transaction type. Existing transactions keep their
  recorded kind and are unaffected.
`
}

func (c *deleteTypeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Type id to delete.")
}

func (c *deleteTypeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if _, err := store.Dispatch(finance.DeleteTransactionType{ID: c.id}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted type %q\n", c.id)
	return subcommands.ExitSuccess
}
