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

type projectCmd struct {
	planFile string
	fund     fundFlag
	months   int
	monthly  float64
	initial  float64
	ret      optionalFloat
	dividend optionalFloat
	reinvest bool
	details  bool
	output   outputFlags
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project a periodic investment month by month" }
func (*projectCmd) Usage() string {
	return `hc project -plan <plan.json> | [-fund <code>] -months <n> [-monthly <amount>] [-initial <amount>] [-return <rate>] [-dividend <yield>] [-reinvest=false]

  Projects a single contribution stream: every month the value grows by the
  monthly rate, then receives the contribution. Rates are annual fractions
  (0.07 for 7%) and default to the fund's catalog values. On the command line
  the monthly amount is contributed every month; use a plan file for stages.

Usage Examples:
$ hc project -fund 0050 -months 240 -monthly 10000 -initial 100000
$ hc project -months 120 -monthly 5000 -return 0.05
$ hc project -plan plan.json -q '$.summary.finalValue'
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "", "Projection plan file. See 'hc topic plans'.")
	f.Var(&c.fund, "fund", "Fund code providing the default return and dividend yield.")
	f.IntVar(&c.months, "months", 120, "Number of months to project.")
	f.Float64Var(&c.monthly, "monthly", 0, "Amount contributed every month.")
	f.Float64Var(&c.initial, "initial", 0, "Initial investment.")
	f.Var(&c.ret, "return", "Annual return, as a fraction. Required without -fund.")
	f.Var(&c.dividend, "dividend", "Annual dividend yield, as a fraction.")
	f.BoolVar(&c.reinvest, "reinvest", true, "Reinvest the dividends.")
	f.BoolVar(&c.details, "details", false, "Also print the month by month records.")
	c.output.SetFlags(f)
}

// plan returns the projection plan described by the flags.
func (c *projectCmd) plan() plan.Projection {
	p := plan.Projection{
		Fund:              string(c.fund),
		TotalMonths:       c.months,
		InitialInvestment: c.initial,
		AnnualReturn:      c.ret.ptr(),
		DividendYield:     c.dividend.ptr(),
		ReinvestDividend:  &c.reinvest,
	}
	if c.monthly != 0 {
		p.Stages = []homecalc.ContributionStage{{StartMonth: 1, EndMonth: c.months, MonthlyAmount: c.monthly}}
	}
	return p
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var params homecalc.ProjectionParams
	var err error
	if c.planFile != "" {
		params, err = decodeFile(c.planFile, plan.DecodeProjection)
	} else {
		params, err = c.plan().Params()
	}
	if err != nil {
		return fail(err)
	}

	logger := InitLogger(*Verbose)
	defer logger.Sync()
	logger.Debug("projecting",
		zap.Int("months", params.TotalMonths),
		zap.Int("stages", len(params.Stages)),
		zap.Float64("annualReturn", params.AnnualReturn),
		zap.Float64("dividendYield", params.DividendYield),
		zap.Bool("reinvest", params.ReinvestDividend),
	)

	p := homecalc.Project(params)
	opts := renderer.ProjectionRenderOptions{Monthly: c.details}
	if c.fund != "" {
		fund, _ := homecalc.LookupFund(string(c.fund))
		opts.Title = fund.Code + " " + fund.Name + " Projection"
	}
	return c.output.print(p, func() string { return renderer.ProjectionMarkdown(p, opts) })
}
