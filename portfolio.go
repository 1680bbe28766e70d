package homecalc

// PortfolioParams are the inputs of a multi-fund projection.
type PortfolioParams struct {
	Holdings    []Holding
	Stages      []ContributionStage // with per fund Allocation
	TotalMonths int
	// CustomReturns overrides the catalog average return, per fund code.
	CustomReturns map[string]float64
}

// PortfolioSummary holds the final figures of a portfolio projection.
type PortfolioSummary struct {
	TotalMonths              int     `json:"totalMonths"`
	InitialValue             float64 `json:"initialValue"`
	TotalInvested            float64 `json:"totalInvested"`
	FinalValue               float64 `json:"finalValue"`
	CumulativeReturn         float64 `json:"cumulativeReturn"`
	ReturnRate               Percent `json:"returnRate"`
	AvgAnnualReturn          Percent `json:"avgAnnualReturn"`
	EstimatedAnnualDividend  float64 `json:"estimatedAnnualDividend"`
	EstimatedMonthlyDividend float64 `json:"estimatedMonthlyDividend"`
}

// FundProjection is the projection of a single holding of a portfolio.
type FundProjection struct {
	Code         string     `json:"code"`
	AnnualReturn float64    `json:"annualReturn"`
	Projection   Projection `json:"projection"`
}

// PortfolioProjection is the result of ProjectPortfolio. Monthly records are
// the sum of the fund projections, their AnnualDividend is always zero: the
// portfolio dividend is only estimated on the yearly records.
type PortfolioProjection struct {
	CurrentPortfolio Valuation        `json:"currentPortfolio"`
	Summary          PortfolioSummary `json:"summary"`
	MonthlyData      []MonthlyRecord  `json:"monthlyData"`
	YearlyData       []YearlyRecord   `json:"yearlyData"`
	Funds            []FundProjection `json:"funds"`
}

// fundStages scales every stage amount by the fund's allocation percentage in
// that stage. Funds absent from a stage allocation receive nothing.
func fundStages(stages []ContributionStage, code string) []ContributionStage {
	scaled := make([]ContributionStage, 0, len(stages))
	for _, s := range stages {
		scaled = append(scaled, ContributionStage{
			StartMonth:    s.StartMonth,
			EndMonth:      s.EndMonth,
			MonthlyAmount: s.MonthlyAmount * (s.Allocation[code] / 100),
		})
	}
	return scaled
}

// ProjectPortfolio projects every holding with its own return and dividend
// yield, starting from the holding's current value, then sums the projections
// month by month.
func ProjectPortfolio(p PortfolioParams) (PortfolioProjection, error) {
	current, err := PortfolioValue(p.Holdings)
	if err != nil {
		return PortfolioProjection{}, err
	}
	n := max(p.TotalMonths, 0)

	funds := make([]FundProjection, 0, len(p.Holdings))
	yields := make([]float64, 0, len(p.Holdings))
	for i, h := range p.Holdings {
		fund, err := LookupFund(h.Code)
		if err != nil {
			return PortfolioProjection{}, err
		}
		annualReturn := fund.AvgReturn
		if r, ok := p.CustomReturns[h.Code]; ok {
			annualReturn = r
		}
		funds = append(funds, FundProjection{
			Code:         h.Code,
			AnnualReturn: annualReturn,
			Projection: Project(ProjectionParams{
				Stages:            fundStages(p.Stages, h.Code),
				TotalMonths:       n,
				InitialInvestment: current.Breakdown[i].Value.AsFloat(),
				AnnualReturn:      annualReturn,
				ReinvestDividend:  true,
				DividendYield:     fund.DividendYield,
			}),
		})
		yields = append(yields, fund.DividendYield)
	}

	monthly := make([]MonthlyRecord, 0, n)
	for month := 1; month <= n; month++ {
		r := MonthlyRecord{
			Month:       month,
			Year:        (month-1)/monthsPerYear + 1,
			MonthInYear: (month-1)%monthsPerYear + 1,
		}
		for _, f := range funds {
			d := f.Projection.MonthlyData[month-1]
			r.MonthlyInvestment += d.MonthlyInvestment
			r.TotalInvested += d.TotalInvested
			r.CurrentValue += d.CurrentValue
			r.CumulativeReturn += d.CumulativeReturn
		}
		r.ReturnRate = returnRate(r.CumulativeReturn, r.TotalInvested)
		monthly = append(monthly, r)
	}

	yearly := aggregateYears(monthly)
	for i := range yearly {
		yearEnd := min(yearly[i].Year*monthsPerYear, n) - 1
		for j, f := range funds {
			yearly[i].AnnualDividend += f.Projection.MonthlyData[yearEnd].CurrentValue * yields[j]
		}
	}

	initial := current.TotalValue.AsFloat()
	summary := PortfolioSummary{
		TotalMonths:  n,
		InitialValue: initial,
	}
	// same summation order as the monthly records, so the totals match the
	// last month exactly.
	for j, f := range funds {
		summary.TotalInvested += f.Projection.Summary.TotalInvested
		summary.FinalValue += f.Projection.Summary.FinalValue
		summary.CumulativeReturn += f.Projection.Summary.CumulativeReturn
		summary.EstimatedAnnualDividend += f.Projection.Summary.FinalValue * yields[j]
	}
	summary.ReturnRate = returnRate(summary.CumulativeReturn, summary.TotalInvested)
	if initial > 0 {
		summary.AvgAnnualReturn = annualizedReturn(initial, summary.FinalValue, n)
	}
	summary.EstimatedMonthlyDividend = summary.EstimatedAnnualDividend / monthsPerYear

	return PortfolioProjection{
		CurrentPortfolio: current,
		Summary:          summary,
		MonthlyData:      monthly,
		YearlyData:       yearly,
		Funds:            funds,
	}, nil
}
