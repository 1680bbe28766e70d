package plan

import (
	"fmt"
	"io"

	"github.com/joechiboo/homecalc"
)

// Comparison holds the two loans to compare.
type Comparison struct {
	Plan1 homecalc.LoanPlan `json:"plan1"`
	Plan2 homecalc.LoanPlan `json:"plan2"`
}

// CheckLoan validates the inputs of a loan. A payment too small to ever
// repay the loan is not a validation error: Mortgage reports it.
func CheckLoan(field string, l homecalc.LoanPlan) error {
	prefix := ""
	if field != "" {
		prefix = field + "."
	}
	if !homecalc.IsFinite(l.Principal) || l.Principal <= 0 {
		return invalid(prefix+"principal", "must be positive, got %v", l.Principal)
	}
	if !homecalc.IsFinite(l.AnnualRate) || l.AnnualRate < 0 {
		return invalid(prefix+"annualRate", "must be a non negative percentage, got %v", l.AnnualRate)
	}
	if !homecalc.IsFinite(l.MonthlyPayment) || l.MonthlyPayment <= 0 {
		return invalid(prefix+"monthlyPayment", "must be positive, got %v", l.MonthlyPayment)
	}
	return nil
}

// DecodeLoan reads a single loan.
func DecodeLoan(r io.Reader) (homecalc.LoanPlan, error) {
	var l homecalc.LoanPlan
	if err := decode(r, &l); err != nil {
		return l, err
	}
	return l, CheckLoan("", l)
}

// DecodeComparison reads two loans.
func DecodeComparison(r io.Reader) (Comparison, error) {
	var c Comparison
	if err := decode(r, &c); err != nil {
		return c, err
	}
	for i, l := range []homecalc.LoanPlan{c.Plan1, c.Plan2} {
		if err := CheckLoan(fmt.Sprintf("plan%d", i+1), l); err != nil {
			return c, err
		}
	}
	return c, nil
}
