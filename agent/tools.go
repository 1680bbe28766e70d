package agent

import (
	"bytes"
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/plan"
	"github.com/joechiboo/homecalc/renderer"
	"google.golang.org/genai"
)

// Calculators returns the functions running the calculators. Each returns
// the markdown report of its calculation.
func Calculators() []Function {
	return []Function{Funds, Projection, Portfolio, Mortgage, Compare}
}

// calculator decodes the call arguments as a plan with run.
func calculator(decl *genai.FunctionDeclaration, run func(r io.Reader) (string, error)) *Func {
	return &Func{
		Decl: decl,
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			b, err := json.Marshal(args)
			if err != nil {
				return failure(id, decl.Name, err)
			}
			out, err := run(bytes.NewReader(b))
			if err != nil {
				return failure(id, decl.Name, err)
			}
			return output(id, decl.Name, out)
		},
	}
}

func number(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

func integer(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: description}
}

func markdown(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func loanSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: description,
		Properties: map[string]*genai.Schema{
			"principal":      number("Amount borrowed, in TWD."),
			"annualRate":     number("Annual interest rate in percent: 2 means 2%."),
			"monthlyPayment": number("Fixed monthly payment, in TWD."),
		},
		Required: []string{"principal", "annualRate", "monthlyPayment"},
	}
}

var Funds = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Funds",
		Description: "Funds lists the fund catalog: code, name, tracking index, average annual return, dividend yield, payouts per year, expense ratio and reference price.",
		Response:    markdown("A markdown table of the funds."),
	},
	Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
		return output(id, "Funds", renderer.FundsMarkdown(homecalc.Funds()))
	},
}

var Projection = calculator(
	&genai.FunctionDeclaration{
		Name: "Projection",
		Description: `Projection simulates a periodic investment month by month: each month the value grows by
		(annualReturn + dividendYield if reinvested) / 12, then receives the month's contribution.
		Contributions are given by stages of months; later stages override earlier ones on overlapping months.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"fund":              {Type: genai.TypeString, Description: "Optional fund code providing the default annualReturn and dividendYield."},
				"totalMonths":       integer("Number of months to project, at most 1200."),
				"initialInvestment": number("Amount invested at the start, in TWD."),
				"annualReturn":      number("Annual return as a fraction: 0.07 for 7%. Required without a fund."),
				"dividendYield":     number("Annual dividend yield as a fraction."),
				"reinvestDividend":  {Type: genai.TypeBoolean, Description: "Whether dividends are reinvested. Defaults to true."},
				"stages": {
					Type:        genai.TypeArray,
					Description: "Monthly contributions.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"startMonth":    integer("First month of the stage, from 1."),
							"endMonth":      integer("Last month of the stage, included."),
							"monthlyAmount": number("Amount contributed every month of the stage, in TWD."),
						},
						Required: []string{"startMonth", "endMonth", "monthlyAmount"},
					},
				},
			},
			Required: []string{"totalMonths"},
		},
		Response: markdown("A markdown report: a summary and the yearly breakdown."),
	},
	func(r io.Reader) (string, error) {
		params, err := plan.DecodeProjection(r)
		if err != nil {
			return "", err
		}
		return renderer.ProjectionMarkdown(homecalc.Project(params), renderer.ProjectionRenderOptions{}), nil
	},
)

// portfolioArgs is a portfolio plan where maps are given as lists of
// entries, which function schemas describe better.
type portfolioArgs struct {
	Holdings []plan.Holding `json:"holdings"`
	Stages   []struct {
		StartMonth    int     `json:"startMonth"`
		EndMonth      int     `json:"endMonth"`
		MonthlyAmount float64 `json:"monthlyAmount"`
		Allocation    []struct {
			Code    string  `json:"code"`
			Percent float64 `json:"percent"`
		} `json:"allocation"`
	} `json:"stages"`
	TotalMonths   int `json:"totalMonths"`
	CustomReturns []struct {
		Code         string  `json:"code"`
		AnnualReturn float64 `json:"annualReturn"`
	} `json:"customReturns"`
}

// plan converts the lists back to maps. Codes cannot be repeated.
func (a portfolioArgs) plan() (plan.Portfolio, error) {
	p := plan.Portfolio{
		Holdings:    a.Holdings,
		Stages:      make([]homecalc.ContributionStage, 0, len(a.Stages)),
		TotalMonths: a.TotalMonths,
	}
	for i, s := range a.Stages {
		stage := homecalc.ContributionStage{
			StartMonth:    s.StartMonth,
			EndMonth:      s.EndMonth,
			MonthlyAmount: s.MonthlyAmount,
			Allocation:    make(map[string]float64, len(s.Allocation)),
		}
		for _, e := range s.Allocation {
			if _, dup := stage.Allocation[e.Code]; dup {
				return p, fmt.Errorf("stages[%d].allocation: %q is allocated twice", i, e.Code)
			}
			stage.Allocation[e.Code] = e.Percent
		}
		p.Stages = append(p.Stages, stage)
	}
	if len(a.CustomReturns) > 0 {
		p.CustomReturns = make(map[string]float64, len(a.CustomReturns))
	}
	for _, e := range a.CustomReturns {
		if _, dup := p.CustomReturns[e.Code]; dup {
			return p, fmt.Errorf("customReturns: %q is given twice", e.Code)
		}
		p.CustomReturns[e.Code] = e.AnnualReturn
	}
	return p, nil
}

func codeSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

var Portfolio = calculator(
	&genai.FunctionDeclaration{
		Name: "Portfolio",
		Description: `Portfolio projects several funds together. Each holding grows from its current value
		with its fund's return and dividend yield (dividends reinvested), and receives its share of every stage
		contribution by the stage allocation. The projections are summed month by month.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"holdings": {
					Type:        genai.TypeArray,
					Description: "Current holdings, one per fund.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"code":   codeSchema("Fund code."),
							"shares": number("Number of shares held."),
							"price":  number("Price per share. Defaults to the fund's reference price."),
						},
						Required: []string{"code", "shares"},
					},
				},
				"totalMonths": integer("Number of months to project, at most 1200."),
				"stages": {
					Type:        genai.TypeArray,
					Description: "Monthly contributions, split between funds.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"startMonth":    integer("First month of the stage, from 1."),
							"endMonth":      integer("Last month of the stage, included."),
							"monthlyAmount": number("Amount contributed every month of the stage, in TWD."),
							"allocation": {
								Type:        genai.TypeArray,
								Description: "Share of the amount each fund receives. Funds not listed receive nothing.",
								Items: &genai.Schema{
									Type: genai.TypeObject,
									Properties: map[string]*genai.Schema{
										"code":    codeSchema("Fund code."),
										"percent": number("Percentage of the monthly amount: 60 means 60%."),
									},
									Required: []string{"code", "percent"},
								},
							},
						},
						Required: []string{"startMonth", "endMonth", "monthlyAmount", "allocation"},
					},
				},
				"customReturns": {
					Type:        genai.TypeArray,
					Description: "Annual returns replacing the catalog ones.",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"code":         codeSchema("Fund code."),
							"annualReturn": number("Annual return as a fraction: 0.05 for 5%."),
						},
						Required: []string{"code", "annualReturn"},
					},
				},
			},
			Required: []string{"holdings", "totalMonths"},
		},
		Response: markdown("A markdown report: the current portfolio, a summary, the funds and the yearly breakdown."),
	},
	func(r io.Reader) (string, error) {
		var args portfolioArgs
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&args); err != nil {
			return "", err
		}
		p, err := args.plan()
		if err != nil {
			return "", err
		}
		params, err := p.Params()
		if err != nil {
			return "", err
		}
		res, err := homecalc.ProjectPortfolio(params)
		if err != nil {
			return "", err
		}
		return renderer.PortfolioMarkdown(res), nil
	},
)

var Mortgage = calculator(
	&genai.FunctionDeclaration{
		Name:        "Mortgage",
		Description: "Mortgage computes how many monthly payments repay a loan, the total paid, the interest and the first periods of the schedule.",
		Parameters:  loanSchema("The loan."),
		Response:    markdown("A markdown report of the loan repayment."),
	},
	func(r io.Reader) (string, error) {
		loan, err := plan.DecodeLoan(r)
		if err != nil {
			return "", err
		}
		res, err := homecalc.Mortgage(loan)
		if err != nil {
			return "", err
		}
		return renderer.MortgageMarkdown(loan, res), nil
	},
)

var Compare = calculator(
	&genai.FunctionDeclaration{
		Name:        "Compare",
		Description: "Compare computes two loans and what the second one saves: months, years and interest, and how much more it costs per month.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"plan1": loanSchema("The reference loan."),
				"plan2": loanSchema("The alternative loan."),
			},
			Required: []string{"plan1", "plan2"},
		},
		Response: markdown("A markdown report comparing the loans."),
	},
	func(r io.Reader) (string, error) {
		c, err := plan.DecodeComparison(r)
		if err != nil {
			return "", err
		}
		res, err := homecalc.ComparePlans(c.Plan1, c.Plan2)
		if err != nil {
			return "", err
		}
		return renderer.ComparisonMarkdown(c.Plan1, c.Plan2, res), nil
	},
)
