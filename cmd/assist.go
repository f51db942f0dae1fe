package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/mmejia-loth/Personal-Finance-Management-App-6304/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI finance advisor" }
func (*assistCmd) Usage() string {
	return `pft assist [<question> ...]

  Starts an interactive chat with the finance advisor, primed with a
  digest of your ledger. Arguments are asked as the first questions.
  Requires GEMINI_API_KEY in the environment.

  Example:
    pft assist "where did most of my money go this month?"
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closer, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closer()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if len(f.Args()) > 0 {
		prompts = []string{strings.Join(f.Args(), " ")}
	}

	a := agent.New(os.Stdout, os.Stdin, agent.Digest(store.State()))
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
