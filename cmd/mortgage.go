package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/plan"
	"github.com/joechiboo/homecalc/renderer"
)

// loanFlags describe a loan on the command line.
type loanFlags struct {
	principal float64
	rate      float64
	payment   float64
}

func (l *loanFlags) SetFlags(f *flag.FlagSet, what string) {
	f.Float64Var(&l.principal, "principal", 0, "Amount borrowed"+what+".")
	f.Float64Var(&l.rate, "rate", 0, "Annual interest rate in percent"+what+", 2 means 2%.")
	f.Float64Var(&l.payment, "payment", 0, "Monthly payment"+what+".")
}

func (l *loanFlags) plan() homecalc.LoanPlan {
	return homecalc.LoanPlan{Principal: l.principal, AnnualRate: l.rate, MonthlyPayment: l.payment}
}

type mortgageCmd struct {
	planFile string
	loan     loanFlags
	periods  int
	output   outputFlags
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "compute how long a loan takes to repay" }
func (*mortgageCmd) Usage() string {
	return `hc mortgage -plan <loan.json> | -principal <amount> -rate <percent> -payment <amount> [-periods <n>]

  Computes the number of monthly payments needed to repay a loan, the total
  paid and the interest, and prints the first periods of the schedule.

Usage Examples:
$ hc mortgage -principal 1000000 -rate 2 -payment 4216
$ hc mortgage -principal 1000000 -rate 2 -payment 4216 -periods 12
$ hc mortgage -principal 1000000 -rate 2 -payment 4216 -q '$.totalMonths'
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "", "Loan plan file. See 'hc topic plans'.")
	c.loan.SetFlags(f, "")
	f.IntVar(&c.periods, "periods", 0, "Number of periods of the schedule to print, 3 by default.")
	c.output.SetFlags(f)
}

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.periods < 0 || c.periods > plan.MaxMonths {
		return usage("-periods must be between 0 and %d", plan.MaxMonths)
	}
	loan := c.loan.plan()
	if c.planFile != "" {
		var err error
		if loan, err = decodeFile(c.planFile, plan.DecodeLoan); err != nil {
			return fail(err)
		}
	} else if err := plan.CheckLoan("", loan); err != nil {
		return fail(err)
	}

	res, err := homecalc.Mortgage(loan)
	if err != nil {
		return fail(err)
	}
	if c.periods > 0 {
		res.Schedule = homecalc.PaymentSchedule(loan.Principal, loan.AnnualRate, loan.MonthlyPayment, c.periods)
	}
	return c.output.print(res, func() string { return renderer.MortgageMarkdown(loan, res) })
}

type compareCmd struct {
	planFile   string
	loan1      loanFlags
	principal2 optionalFloat
	rate2      optionalFloat
	payment2   optionalFloat
	output     outputFlags
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare two loan repayment plans" }
func (*compareCmd) Usage() string {
	return `hc compare -plan <comparison.json> | -principal <amount> -rate <percent> -payment <amount> [-principal2 <amount>] [-rate2 <percent>] [-payment2 <amount>]

  Compares two loans: the months and interest saved by the second one, and
  how much more it costs per month. Plan 2 values that are not given
  default to plan 1's, -rate2 0 compares with an interest free loan.

Usage Examples:
$ hc compare -principal 1000000 -rate 2 -payment 4216 -payment2 6000
$ hc compare -plan comparison.json -q '$.interestSaved'
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.planFile, "plan", "", "Comparison plan file. See 'hc topic plans'.")
	c.loan1.SetFlags(f, " by plan 1")
	f.Var(&c.principal2, "principal2", "Amount borrowed by plan 2. Defaults to plan 1's.")
	f.Var(&c.rate2, "rate2", "Annual interest rate in percent by plan 2. Defaults to plan 1's.")
	f.Var(&c.payment2, "payment2", "Monthly payment by plan 2. Defaults to plan 1's.")
	c.output.SetFlags(f)
}

// plans returns the compared plans described by the flags.
func (c *compareCmd) plans() plan.Comparison {
	p1 := c.loan1.plan()
	p2 := p1
	if c.principal2.set {
		p2.Principal = c.principal2.value
	}
	if c.rate2.set {
		p2.AnnualRate = c.rate2.value
	}
	if c.payment2.set {
		p2.MonthlyPayment = c.payment2.value
	}
	return plan.Comparison{Plan1: p1, Plan2: p2}
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plans := c.plans()
	if c.planFile != "" {
		var err error
		if plans, err = decodeFile(c.planFile, plan.DecodeComparison); err != nil {
			return fail(err)
		}
	} else {
		if err := plan.CheckLoan("plan1", plans.Plan1); err != nil {
			return fail(err)
		}
		if err := plan.CheckLoan("plan2", plans.Plan2); err != nil {
			return fail(err)
		}
	}

	res, err := homecalc.ComparePlans(plans.Plan1, plans.Plan2)
	if err != nil {
		return fail(err)
	}
	return c.output.print(res, func() string { return renderer.ComparisonMarkdown(plans.Plan1, plans.Plan2, res) })
}
