package plan

import (
	"fmt"
	"io"

	"github.com/joechiboo/homecalc"
)

// Holding is a position as written in plan files. A zero price means the
// fund's reference price.
type Holding struct {
	Code   string  `json:"code"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price,omitempty"`
}

// Valuation lists the holdings to value.
type Valuation struct {
	Holdings []Holding `json:"holdings"`
}

// Portfolio is a multi-fund projection. Stage allocations map fund codes to
// the percentage of the stage amount they receive.
type Portfolio struct {
	Holdings      []Holding                    `json:"holdings"`
	Stages        []homecalc.ContributionStage `json:"stages"`
	TotalMonths   int                          `json:"totalMonths"`
	CustomReturns map[string]float64           `json:"customReturns,omitempty"`
}

// holdings validates the positions and converts them. Codes must be known
// and unique.
func holdings(hs []Holding) ([]homecalc.Holding, error) {
	res := make([]homecalc.Holding, 0, len(hs))
	seen := make(map[string]int, len(hs))
	for i, h := range hs {
		field := fmt.Sprintf("holdings[%d]", i)
		if _, err := homecalc.LookupFund(h.Code); err != nil {
			return nil, fmt.Errorf("%s.code: %w", field, err)
		}
		if j, dup := seen[h.Code]; dup {
			return nil, invalid(field+".code", "%q is already held in holdings[%d]", h.Code, j)
		}
		seen[h.Code] = i
		if !homecalc.IsFinite(h.Shares) || h.Shares < 0 {
			return nil, invalid(field+".shares", "must be a non negative number, got %v", h.Shares)
		}
		if !homecalc.IsFinite(h.Price) || h.Price < 0 {
			return nil, invalid(field+".price", "must be a non negative number, got %v", h.Price)
		}
		res = append(res, homecalc.Holding{
			Code:   h.Code,
			Shares: homecalc.Q(h.Shares),
			Price:  homecalc.TWD(h.Price),
		})
	}
	return res, nil
}

// Params validates the plan.
func (v Valuation) Params() ([]homecalc.Holding, error) {
	return holdings(v.Holdings)
}

// Params validates the plan.
func (p Portfolio) Params() (homecalc.PortfolioParams, error) {
	hs, err := holdings(p.Holdings)
	if err != nil {
		return homecalc.PortfolioParams{}, err
	}
	if err := checkMonths("totalMonths", p.TotalMonths); err != nil {
		return homecalc.PortfolioParams{}, err
	}
	if err := checkStages(p.Stages); err != nil {
		return homecalc.PortfolioParams{}, err
	}
	for code, r := range p.CustomReturns {
		if err := checkRate(fmt.Sprintf("customReturns[%q]", code), r); err != nil {
			return homecalc.PortfolioParams{}, err
		}
	}
	return homecalc.PortfolioParams{
		Holdings:      hs,
		Stages:        p.Stages,
		TotalMonths:   p.TotalMonths,
		CustomReturns: p.CustomReturns,
	}, nil
}

// DecodeValuation reads a valuation plan.
func DecodeValuation(r io.Reader) ([]homecalc.Holding, error) {
	var v Valuation
	if err := decode(r, &v); err != nil {
		return nil, err
	}
	return v.Params()
}

// DecodePortfolio reads a portfolio plan.
func DecodePortfolio(r io.Reader) (homecalc.PortfolioParams, error) {
	var p Portfolio
	if err := decode(r, &p); err != nil {
		return homecalc.PortfolioParams{}, err
	}
	return p.Params()
}
