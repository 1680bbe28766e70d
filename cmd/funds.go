package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/renderer"
)

type fundsCmd struct {
	output outputFlags
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the funds of the catalog" }
func (*fundsCmd) Usage() string {
	return `hc funds [<code>...]

  Without arguments, lists every fund of the catalog with its average return,
  dividend yield and reference price. With fund codes, details those funds.

Usage Examples:
$ hc funds
$ hc funds 0050 0056
$ hc funds -q '$[0].referencePrice.amount'
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) { c.output.SetFlags(f) }

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		funds := homecalc.Funds()
		return c.output.print(funds, func() string { return renderer.FundsMarkdown(funds) })
	}

	funds := make([]homecalc.FundProfile, 0, f.NArg())
	for _, code := range f.Args() {
		fund, err := homecalc.LookupFund(code)
		if err != nil {
			return fail(err)
		}
		funds = append(funds, fund)
	}
	return c.output.print(funds, func() string {
		var b strings.Builder
		for _, fund := range funds {
			b.WriteString(renderer.FundMarkdown(fund))
			b.WriteString("\n\n")
		}
		return b.String()
	})
}
