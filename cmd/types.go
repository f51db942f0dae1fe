package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmejia-loth/Personal-Finance-Management-App-6304/renderer"
)

type typesCmd struct{}

func (*typesCmd) Name() string     { return "types" }
func (*typesCmd) Synopsis() string { return "list transaction types" }
func (*typesCmd) Usage() string {
	return `pft types

  Lists every transaction type and its kind.
`
}

func (c *typesCmd) SetFlags(f *flag.FlagSet) {}

func (c *typesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	printMarkdown(renderer.TransactionTypes(store.State()))
	return subcommands.ExitSuccess
}
