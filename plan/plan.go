// Package plan decodes and validates the JSON scenario files given to the
// calculators, on the command line or over HTTP.
//
// A projection plan looks like:
//
//	{
//	  "fund": "0050",
//	  "totalMonths": 240,
//	  "initialInvestment": 100000,
//	  "stages": [
//	    {"startMonth": 1, "endMonth": 120, "monthlyAmount": 10000},
//	    {"startMonth": 121, "endMonth": 240, "monthlyAmount": 20000}
//	  ]
//	}
//
// Missing rates default to the fund's catalog values and dividends are
// reinvested unless "reinvestDividend" is false.
package plan

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/joechiboo/homecalc"
)

// MaxMonths is the longest horizon accepted by a plan: a hundred years.
const MaxMonths = 1200

// ErrInvalid is matched by every validation error.
var ErrInvalid = errors.New("invalid plan")

// invalid returns a validation error for field.
func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
}

// decode reads a single JSON document into v, rejecting unknown fields.
func decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// checkRate accepts annual rates above -100% and below 1000%.
func checkRate(field string, r float64) error {
	if !homecalc.IsFinite(r) {
		return invalid(field, "must be a finite number")
	}
	if r <= -1 || r >= 10 {
		return invalid(field, "must be an annual fraction between -1 and 10, got %v", r)
	}
	return nil
}

func checkMonths(field string, n int) error {
	if n < 0 || n > MaxMonths {
		return invalid(field, "must be between 0 and %d, got %d", MaxMonths, n)
	}
	return nil
}

// checkStages rejects reversed ranges and negative amounts. Ranges reaching
// outside the horizon are accepted: the projection ignores those months.
func checkStages(stages []homecalc.ContributionStage) error {
	for i, s := range stages {
		field := fmt.Sprintf("stages[%d]", i)
		if s.EndMonth < s.StartMonth {
			return invalid(field+".endMonth", "must be >= startMonth")
		}
		if !homecalc.IsFinite(s.MonthlyAmount) || s.MonthlyAmount < 0 {
			return invalid(field+".monthlyAmount", "must be a non negative number, got %v", s.MonthlyAmount)
		}
		for code, pct := range s.Allocation {
			if !homecalc.IsFinite(pct) || pct < 0 {
				return invalid(fmt.Sprintf("%s.allocation[%q]", field, code), "must be a non negative percentage, got %v", pct)
			}
		}
	}
	return nil
}
