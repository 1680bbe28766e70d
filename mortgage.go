package homecalc

import (
	"fmt"
	"math"
)

// scheduleDisplayPeriods is the number of periods kept in MortgageResult.Schedule.
const scheduleDisplayPeriods = 3

// LoanPlan is a loan repaid by a fixed monthly payment. AnnualRate is a
// percentage: 2 means 2%.
type LoanPlan struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annualRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// PaymentRecord is one period of a payment schedule. Amounts are rounded to
// whole currency units.
type PaymentRecord struct {
	Period    int     `json:"period"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Remaining float64 `json:"remaining"`
	Payment   float64 `json:"payment"`
}

// Totals are the amounts paid over the life of a loan.
type Totals struct {
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
}

// MortgageResult summarizes a LoanPlan.
type MortgageResult struct {
	TotalMonths   int     `json:"totalMonths"`
	Years         int     `json:"years"`
	Months        int     `json:"months"`
	TotalPayment  float64 `json:"totalPayment"`
	TotalInterest float64 `json:"totalInterest"`
	// Schedule only holds the first periods of the loan.
	Schedule []PaymentRecord `json:"schedule"`
	// InterestRate is the share of interest in the total payment, rounded to
	// one decimal.
	InterestRate Percent `json:"interestRate"`
}

// Comparison is the difference between two plans, plan1 minus plan2, except
// for MonthlyDiff which is plan2's payment minus plan1's.
type Comparison struct {
	Plan1         MortgageResult `json:"plan1"`
	Plan2         MortgageResult `json:"plan2"`
	MonthsSaved   int            `json:"monthsSaved"`
	YearsSaved    float64        `json:"yearsSaved"`
	InterestSaved float64        `json:"interestSaved"`
	MonthlyDiff   float64        `json:"monthlyDiff"`
}

func monthlyRateOf(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / monthsPerYear
}

// maxPeriods bounds the period counts converted to integers. A loan taking
// longer is treated as never repaid.
const maxPeriods = math.MaxInt32

// round rounds half up, to the nearest whole unit.
func round(x float64) float64 { return math.Floor(x + 0.5) }

// PeriodCount returns the fractional number of monthly payments needed to
// repay principal:
//
//	n = -ln(1 - principal*r/payment) / ln(1+r)
//
// The result is NaN or +Inf when the payment does not cover the monthly
// interest, and when the payment is not positive for a zero rate. Callers
// must check it with IsFinite.
func PeriodCount(principal, annualRatePercent, monthlyPayment float64) float64 {
	r := monthlyRateOf(annualRatePercent)
	if r == 0 {
		return principal / monthlyPayment
	}
	return -math.Log(1-principal*r/monthlyPayment) / math.Log(1+r)
}

// YearsMonths splits a fractional month count into whole years and the
// remaining months rounded up. Note that the remainder can round up to 12.
func YearsMonths(totalMonths float64) (years, months int) {
	return int(math.Floor(totalMonths / monthsPerYear)), int(math.Ceil(math.Mod(totalMonths, monthsPerYear)))
}

// PaymentSchedule simulates the loan period by period. When periods is zero
// the whole loan is simulated. The schedule stops as soon as the loan is
// repaid, even if more periods were requested. It is empty when periods is
// zero and the payment never repays the loan, or needs more than maxPeriods periods.
func PaymentSchedule(principal, annualRatePercent, monthlyPayment float64, periods int) []PaymentRecord {
	if periods <= 0 {
		n := math.Ceil(PeriodCount(principal, annualRatePercent, monthlyPayment))
		if !IsFinite(n) || n <= 0 || n > maxPeriods {
			return []PaymentRecord{}
		}
		periods = int(n)
	}

	r := monthlyRateOf(annualRatePercent)
	schedule := make([]PaymentRecord, 0, min(periods, 600))
	remaining := principal
	for period := 1; period <= periods; period++ {
		interest := remaining * r
		principalPart := monthlyPayment - interest
		remaining = max(remaining-principalPart, 0)

		schedule = append(schedule, PaymentRecord{
			Period:    period,
			Interest:  round(interest),
			Principal: round(principalPart),
			Remaining: round(remaining),
			Payment:   round(monthlyPayment),
		})
		if remaining <= 0 {
			break
		}
	}
	return schedule
}

// LoanTotals returns the total payment (payment times the fractional period
// count) and the interest part of it, both rounded. They are not finite when
// the period count is not.
func LoanTotals(principal, annualRatePercent, monthlyPayment float64) Totals {
	totalPayment := monthlyPayment * PeriodCount(principal, annualRatePercent, monthlyPayment)
	return Totals{
		TotalPayment:  round(totalPayment),
		TotalInterest: round(totalPayment - principal),
	}
}

// Mortgage computes the duration, totals and first periods of a plan. It
// fails with ErrInsufficientPayment when the plan never repays the loan, or
// takes more than math.MaxInt32 months to. Use PeriodCount to get the raw,
// possibly non finite, period count instead.
func Mortgage(plan LoanPlan) (MortgageResult, error) {
	n := PeriodCount(plan.Principal, plan.AnnualRate, plan.MonthlyPayment)
	if !IsFinite(n) || n > maxPeriods {
		return MortgageResult{}, ErrInsufficientPayment
	}
	years, months := YearsMonths(n)
	totals := LoanTotals(plan.Principal, plan.AnnualRate, plan.MonthlyPayment)

	var share Percent
	if totals.TotalPayment != 0 {
		share = Percent(math.Round(totals.TotalInterest/totals.TotalPayment*1000) / 10)
	}

	return MortgageResult{
		TotalMonths:   int(round(n)),
		Years:         years,
		Months:        months,
		TotalPayment:  totals.TotalPayment,
		TotalInterest: totals.TotalInterest,
		Schedule:      PaymentSchedule(plan.Principal, plan.AnnualRate, plan.MonthlyPayment, scheduleDisplayPeriods),
		InterestRate:  share,
	}, nil
}

// ComparePlans computes both plans and their differences. Plans are compared
// as given: nothing normalizes two different principals.
func ComparePlans(plan1, plan2 LoanPlan) (Comparison, error) {
	r1, err := Mortgage(plan1)
	if err != nil {
		return Comparison{}, fmt.Errorf("plan 1: %w", err)
	}
	r2, err := Mortgage(plan2)
	if err != nil {
		return Comparison{}, fmt.Errorf("plan 2: %w", err)
	}
	monthsSaved := r1.TotalMonths - r2.TotalMonths
	return Comparison{
		Plan1:         r1,
		Plan2:         r2,
		MonthsSaved:   monthsSaved,
		YearsSaved:    math.Round(float64(monthsSaved)/monthsPerYear*10) / 10,
		InterestSaved: r1.TotalInterest - r2.TotalInterest,
		MonthlyDiff:   plan2.MonthlyPayment - plan1.MonthlyPayment,
	}, nil
}
