package homecalc

// Holding is a position in a catalog fund. A zero Price means the price is
// unknown and the fund's reference price is used instead.
type Holding struct {
	Code   string   `json:"code"`
	Shares Quantity `json:"shares"`
	Price  Money    `json:"price"`
}

// HoldingValue is one line of a Valuation breakdown.
type HoldingValue struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Shares     Quantity `json:"shares"`
	Value      Money    `json:"value"`
	Percentage Percent  `json:"percentage"` // share of the portfolio total
}

// Valuation is the market value of a set of holdings.
type Valuation struct {
	TotalValue Money          `json:"totalValue"`
	Breakdown  []HoldingValue `json:"breakdown"`
}

// CurrentValue returns the market value of shares of the fund code, at price
// or at the fund's reference price when price is zero.
func CurrentValue(code string, shares Quantity, price Money) (Money, error) {
	fund, err := LookupFund(code)
	if err != nil {
		return Money{}, err
	}
	if price.IsZero() {
		price = fund.ReferencePrice
	}
	return price.Mul(shares), nil
}

// PortfolioValue values every holding and computes its share of the total.
// Percentages are all zero when the total is zero.
func PortfolioValue(holdings []Holding) (Valuation, error) {
	v := Valuation{
		TotalValue: M(0, Currency),
		Breakdown:  make([]HoldingValue, 0, len(holdings)),
	}
	for _, h := range holdings {
		value, err := CurrentValue(h.Code, h.Shares, h.Price)
		if err != nil {
			return Valuation{}, err
		}
		fund, _ := LookupFund(h.Code)
		v.Breakdown = append(v.Breakdown, HoldingValue{
			Code:   h.Code,
			Name:   fund.Name,
			Shares: h.Shares,
			Value:  value,
		})
		v.TotalValue = v.TotalValue.Add(value)
	}

	if v.TotalValue.IsPositive() {
		for i := range v.Breakdown {
			v.Breakdown[i].Percentage = Percent(100 * v.Breakdown[i].Value.Ratio(v.TotalValue))
		}
	}
	return v, nil
}
