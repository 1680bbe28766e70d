package homecalc

import "math"

const monthsPerYear = 12

// ContributionStage is a contiguous range of months, both ends included,
// with a fixed monthly contribution.
//
// Allocation is only used by ProjectPortfolio: it maps a fund code to the
// percentage of MonthlyAmount invested in that fund. Percentages need not sum
// to 100, the remainder is simply not invested.
type ContributionStage struct {
	StartMonth    int                `json:"startMonth"`
	EndMonth      int                `json:"endMonth"`
	MonthlyAmount float64            `json:"monthlyAmount"`
	Allocation    map[string]float64 `json:"allocation,omitempty"`
}

// ProjectionParams are the inputs of a single stream projection. Rates are
// annual fractions.
type ProjectionParams struct {
	Stages            []ContributionStage
	TotalMonths       int
	InitialInvestment float64
	AnnualReturn      float64
	ReinvestDividend  bool
	DividendYield     float64
}

// MonthlyRecord is the state of a projection at the end of a month.
type MonthlyRecord struct {
	Month             int     `json:"month"`       // 1-based
	Year              int     `json:"year"`        // 1-based
	MonthInYear       int     `json:"monthInYear"` // 1..12
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	TotalInvested     float64 `json:"totalInvested"`
	CurrentValue      float64 `json:"currentValue"`
	CumulativeReturn  float64 `json:"cumulativeReturn"`
	ReturnRate        Percent `json:"returnRate"`
	// AnnualDividend estimates a year of dividends from the current value.
	// It is only set on the last month of each year.
	AnnualDividend float64 `json:"annualDividend"`
}

// YearlyRecord summarizes up to twelve consecutive MonthlyRecords.
type YearlyRecord struct {
	Year             int     `json:"year"`
	YearInvestment   float64 `json:"yearInvestment"`
	TotalInvested    float64 `json:"totalInvested"`
	CurrentValue     float64 `json:"currentValue"`
	CumulativeReturn float64 `json:"cumulativeReturn"`
	ReturnRate       Percent `json:"returnRate"`
	AnnualDividend   float64 `json:"annualDividend"`
}

// ProjectionSummary holds the final figures of a projection.
type ProjectionSummary struct {
	TotalMonths      int     `json:"totalMonths"`
	TotalInvested    float64 `json:"totalInvested"`
	FinalValue       float64 `json:"finalValue"`
	CumulativeReturn float64 `json:"cumulativeReturn"`
	ReturnRate       Percent `json:"returnRate"`
	// AvgAnnualReturn is the annualized growth from the initial investment
	// to the final value. It is not finite when the initial investment is 0.
	AvgAnnualReturn         Percent `json:"avgAnnualReturn"`
	EstimatedAnnualDividend float64 `json:"estimatedAnnualDividend"`
}

// Projection is the result of Project.
type Projection struct {
	Summary     ProjectionSummary `json:"summary"`
	MonthlyData []MonthlyRecord   `json:"monthlyData"`
	YearlyData  []YearlyRecord    `json:"yearlyData"`
}

// contributionSchedule expands the stages into a month -> amount mapping.
// Stages are applied in order and a later stage replaces the amount of an
// earlier one on overlapping months. Months outside [1, totalMonths] are
// ignored.
func contributionSchedule(stages []ContributionStage, totalMonths int) map[int]float64 {
	schedule := make(map[int]float64)
	for _, s := range stages {
		for month := max(s.StartMonth, 1); month <= s.EndMonth && month <= totalMonths; month++ {
			schedule[month] = s.MonthlyAmount
		}
	}
	return schedule
}

// monthlyRate returns the compounding rate applied each month. The dividend
// yield is blended into the price return when dividends are reinvested.
func (p ProjectionParams) monthlyRate() float64 {
	rate := p.AnnualReturn / monthsPerYear
	if p.ReinvestDividend {
		rate += p.DividendYield / monthsPerYear
	}
	return rate
}

// returnRate is the cumulative return as a percentage of the invested amount.
func returnRate(cumulative, invested float64) Percent {
	if invested > 0 {
		return Percent(cumulative / invested * 100)
	}
	return 0
}

// annualizedReturn solves (final/initial)^(12/months) - 1.
func annualizedReturn(initial, final float64, months int) Percent {
	if months <= 0 {
		return 0
	}
	return Percent((math.Pow(final/initial, monthsPerYear/float64(months)) - 1) * 100)
}

// Project simulates a contribution stream month by month: each month the
// value grows by the monthly rate, then receives the month's contribution.
func Project(p ProjectionParams) Projection {
	n := max(p.TotalMonths, 0)
	rate := p.monthlyRate()
	schedule := contributionSchedule(p.Stages, n)

	value := p.InitialInvestment
	invested := p.InitialInvestment
	monthly := make([]MonthlyRecord, 0, n)

	for month := 1; month <= n; month++ {
		contribution := schedule[month]

		value *= 1 + rate
		value += contribution
		invested += contribution

		cumulative := value - invested
		r := MonthlyRecord{
			Month:             month,
			Year:              (month-1)/monthsPerYear + 1,
			MonthInYear:       (month-1)%monthsPerYear + 1,
			MonthlyInvestment: contribution,
			TotalInvested:     invested,
			CurrentValue:      value,
			CumulativeReturn:  cumulative,
			ReturnRate:        returnRate(cumulative, invested),
		}
		if month%monthsPerYear == 0 {
			r.AnnualDividend = value * p.DividendYield
		}
		monthly = append(monthly, r)
	}

	return Projection{
		Summary: ProjectionSummary{
			TotalMonths:             n,
			TotalInvested:           invested,
			FinalValue:              value,
			CumulativeReturn:        value - invested,
			ReturnRate:              returnRate(value-invested, invested),
			AvgAnnualReturn:         annualizedReturn(p.InitialInvestment, value, n),
			EstimatedAnnualDividend: value * p.DividendYield,
		},
		MonthlyData: monthly,
		YearlyData:  aggregateYears(monthly),
	}
}

// aggregateYears groups the records in consecutive buckets of twelve months,
// the last bucket may be shorter. Cumulative fields come from the bucket's
// last month.
func aggregateYears(monthly []MonthlyRecord) []YearlyRecord {
	years := (len(monthly) + monthsPerYear - 1) / monthsPerYear
	yearly := make([]YearlyRecord, 0, years)
	for year := 1; year <= years; year++ {
		bucket := monthly[(year-1)*monthsPerYear : min(year*monthsPerYear, len(monthly))]
		last := bucket[len(bucket)-1]

		var investment float64
		for _, r := range bucket {
			investment += r.MonthlyInvestment
		}

		yearly = append(yearly, YearlyRecord{
			Year:             year,
			YearInvestment:   investment,
			TotalInvested:    last.TotalInvested,
			CurrentValue:     last.CurrentValue,
			CumulativeReturn: last.CumulativeReturn,
			ReturnRate:       last.ReturnRate,
			AnnualDividend:   last.AnnualDividend,
		})
	}
	return yearly
}
