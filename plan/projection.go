package plan

import (
	"fmt"
	"io"

	"github.com/joechiboo/homecalc"
)

// Projection is a single contribution stream, optionally tied to a catalog
// fund that provides the default rates.
type Projection struct {
	Fund              string                       `json:"fund,omitempty"`
	Stages            []homecalc.ContributionStage `json:"stages"`
	TotalMonths       int                          `json:"totalMonths"`
	InitialInvestment float64                      `json:"initialInvestment"`
	AnnualReturn      *float64                     `json:"annualReturn,omitempty"`     // defaults to the fund's average return
	ReinvestDividend  *bool                        `json:"reinvestDividend,omitempty"` // defaults to true
	DividendYield     *float64                     `json:"dividendYield,omitempty"`    // defaults to the fund's yield, or 0
}

// Params validates the plan and resolves its defaults.
func (p Projection) Params() (homecalc.ProjectionParams, error) {
	params := homecalc.ProjectionParams{
		Stages:            p.Stages,
		TotalMonths:       p.TotalMonths,
		InitialInvestment: p.InitialInvestment,
		ReinvestDividend:  true,
	}
	if p.Fund != "" {
		fund, err := homecalc.LookupFund(p.Fund)
		if err != nil {
			return params, fmt.Errorf("fund: %w", err)
		}
		params.AnnualReturn = fund.AvgReturn
		params.DividendYield = fund.DividendYield
	} else if p.AnnualReturn == nil {
		return params, invalid("annualReturn", "is required without a fund")
	}

	if p.AnnualReturn != nil {
		params.AnnualReturn = *p.AnnualReturn
	}
	if p.DividendYield != nil {
		params.DividendYield = *p.DividendYield
	}
	if p.ReinvestDividend != nil {
		params.ReinvestDividend = *p.ReinvestDividend
	}

	if err := checkMonths("totalMonths", p.TotalMonths); err != nil {
		return params, err
	}
	if !homecalc.IsFinite(p.InitialInvestment) || p.InitialInvestment < 0 {
		return params, invalid("initialInvestment", "must be a non negative number, got %v", p.InitialInvestment)
	}
	if err := checkRate("annualReturn", params.AnnualReturn); err != nil {
		return params, err
	}
	if err := checkRate("dividendYield", params.DividendYield); err != nil {
		return params, err
	}
	if err := checkStages(p.Stages); err != nil {
		return params, err
	}
	return params, nil
}

// DecodeProjection reads a projection plan.
func DecodeProjection(r io.Reader) (homecalc.ProjectionParams, error) {
	var p Projection
	if err := decode(r, &p); err != nil {
		return homecalc.ProjectionParams{}, err
	}
	return p.Params()
}
