package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	finance "github.com/mmejia-loth/Personal-Finance-Management-App-6304"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV or JSON file" }
func (*importCmd) Usage() string {
	return `pft import -f <file.csv|file.json>

  CSV files are row-by-row imports: accounts and categories named in
  the file are created on the fly, bad rows are skipped and reported.
  JSON files are full snapshots and replace the collections they
  contain.

  Example:
    pft import -f statement.csv
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to import, .csv or .json.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	switch strings.ToLower(filepath.Ext(c.file)) {
	case ".json":
		if err := finance.ImportJSON(store, in); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Data imported successfully!")
	default:
		report, err := finance.ImportCSV(store, in)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(report.Message())
		if report.Failed() {
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
