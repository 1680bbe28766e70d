package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/plan"
	"github.com/joechiboo/homecalc/renderer"
	"go.uber.org/zap"
)

type portfolioCmd struct {
	planFile string
	output   outputFlags
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "project a multi-fund portfolio" }
func (*portfolioCmd) Usage() string {
	return `hc portfolio -plan <portfolio.json>

  Projects every holding of the portfolio with its own return and dividend
  yield, starting from its current value, and sums them month by month.
  Stage contributions are split between funds by their allocation.

Usage Examples:
$ hc portfolio -plan portfolio.json
$ hc portfolio -plan portfolio.json -q '$.summary.estimatedMonthlyDividend'
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "", "Portfolio plan file. See 'hc topic plans'.")
	c.output.SetFlags(f)
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.planFile == "" {
		return usage("-plan is required")
	}
	params, err := decodeFile(c.planFile, plan.DecodePortfolio)
	if err != nil {
		return fail(err)
	}

	logger := InitLogger(*Verbose)
	defer logger.Sync()
	logger.Debug("projecting portfolio", zap.Int("holdings", len(params.Holdings)), zap.Int("months", params.TotalMonths))

	p, err := homecalc.ProjectPortfolio(params)
	if err != nil {
		return fail(err)
	}
	return c.output.print(p, func() string { return renderer.PortfolioMarkdown(p) })
}
