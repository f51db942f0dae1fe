package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type addCategoryCmd struct {
	name string
	subs string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a category" }
func (*addCategoryCmd) Usage() string {
	return `pft add-category -name <name> [-subs <a,b,c>]

  Creates a spending category, optionally with subcategories.

  Example:
    pft add-category -name "Food" -subs "Groceries,Restaurants,Coffee"
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Category name.")
	f.StringVar(&c.subs, "subs", "", "Comma separated subcategories.")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	cat := finance.Category{Name: c.name, Subcategories: splitList(c.subs)}
	state, err := store.Dispatch(finance.AddCategory{Category: cat})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	created := state.Categories[len(state.Categories)-1]
	fmt.Printf("Created category %q (id %s)\n", created.Name, created.ID)
	return subcommands.ExitSuccess
}

// splitList parses a comma separated flag value, trimming blanks.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
