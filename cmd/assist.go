package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc/agent"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `hc assist [<question>]

  Start an interactive session with the AI assistant. It runs the calculators
  on your behalf. Gemini credentials are read from the environment
  (GOOGLE_API_KEY or GEMINI_API_KEY).

Usage Examples:
$ hc assist how long to repay 8 million at 2.1% with 35000 a month
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	logger := InitLogger(*Verbose)
	defer logger.Sync()

	a := agent.New(stdout, os.Stdin, logger, agent.NewPlanner(logger), agent.NewAnalyst())
	a.Print = printMarkdown
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
