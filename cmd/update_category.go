package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type updateCategoryCmd struct {
	id   string
	name string
	subs string
}

func (*updateCategoryCmd) Name() string     { return "update-category" }
func (*updateCategoryCmd) Synopsis() string { return "rename a category or change its subcategories" }
func (*updateCategoryCmd) Usage() string {
	return `pft update-category -id <id> [-name <name>] [-subs <a,b,c>]

  Updates the named fields and leaves the rest untouched.
`
}

func (c *updateCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Category id to update.")
	f.StringVar(&c.name, "name", "", "New category name.")
	f.StringVar(&c.subs, "subs", "", "New comma separated subcategories.")
}

func (c *updateCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	current := store.State().Category(c.id)
	if current == nil {
		fmt.Fprintf(os.Stderr, "Error: no category %q.\n", c.id)
		return subcommands.ExitFailure
	}
	cat := *current
	if c.name != "" {
		cat.Name = c.name
	}
	if c.subs != "" {
		cat.Subcategories = splitList(c.subs)
	}
	if _, err := store.Dispatch(finance.UpdateCategory{Category: cat}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated category %q\n", cat.Name)
	return subcommands.ExitSuccess
}
