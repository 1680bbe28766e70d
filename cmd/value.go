package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/plan"
	"github.com/joechiboo/homecalc/renderer"
)

type valueCmd struct {
	planFile string
	fund     fundFlag
	shares   float64
	price    float64
	output   outputFlags
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "compute the current value of holdings" }
func (*valueCmd) Usage() string {
	return `hc value -plan <holdings.json> | -fund <code> -shares <n> [-price <p>]

  Values a single holding, or every holding of a plan file, at the given
  prices or at the funds' reference prices.

Usage Examples:
$ hc value -fund 0050 -shares 1000
$ hc value -plan holdings.json -q '$.totalValue.amount'
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "", "Plan file listing the holdings. See 'hc topic plans'.")
	f.Var(&c.fund, "fund", "Fund code of a single holding.")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares of the single holding.")
	f.Float64Var(&c.price, "price", 0, "Price per share of the single holding. Defaults to the fund's reference price.")
	c.output.SetFlags(f)
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var holdings []homecalc.Holding
	switch {
	case c.planFile != "":
		var err error
		if holdings, err = decodeFile(c.planFile, plan.DecodeValuation); err != nil {
			return fail(err)
		}
	case c.fund != "":
		var err error
		v := plan.Valuation{Holdings: []plan.Holding{{Code: string(c.fund), Shares: c.shares, Price: c.price}}}
		if holdings, err = v.Params(); err != nil {
			return fail(err)
		}
	default:
		return usage("either -plan or -fund is required")
	}

	v, err := homecalc.PortfolioValue(holdings)
	if err != nil {
		return fail(err)
	}
	return c.output.print(v, func() string { return renderer.ValuationMarkdown(v) })
}
