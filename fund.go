package homecalc

import (
	"maps"
	"slices"
)

// FundProfile describes a fund in the catalog. Rates are fractions: 0.07 is 7%.
type FundProfile struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	FullName          string  `json:"fullName"`
	TrackingIndex     string  `json:"trackingIndex"`
	AvgReturn         float64 `json:"avgReturn"`
	DividendYield     float64 `json:"dividendYield"`
	DividendFrequency int     `json:"dividendFrequency"` // payouts per year
	ExpenseRatio      float64 `json:"expenseRatio"`
	ReferencePrice    Money   `json:"referencePrice"`
}

// catalog is never modified after initialization. Lookups return copies.
var catalog = map[string]FundProfile{
	"0050": {
		Code:              "0050",
		Name:              "元大台灣50",
		FullName:          "元大台灣卓越50證券投資信託基金",
		TrackingIndex:     "台灣50指數",
		AvgReturn:         0.07,
		DividendYield:     0.03,
		DividendFrequency: 2,
		ExpenseRatio:      0.0032,
		ReferencePrice:    TWD(62.20),
	},
	"0056": {
		Code:              "0056",
		Name:              "元大高股息",
		FullName:          "元大台灣高股息證券投資信託基金",
		TrackingIndex:     "台灣高股息指數",
		AvgReturn:         0.065,
		DividendYield:     0.055,
		DividendFrequency: 4,
		ExpenseRatio:      0.0074,
		ReferencePrice:    TWD(36.40),
	},
	"0061": {
		Code:              "0061",
		Name:              "元大寶滬深",
		FullName:          "元大標智滬深300證券投資信託基金",
		TrackingIndex:     "滬深300指數",
		AvgReturn:         0.08,
		DividendYield:     0.02,
		DividendFrequency: 1,
		ExpenseRatio:      0.0099,
		ReferencePrice:    TWD(19),
	},
	"00878": {
		Code:              "00878",
		Name:              "國泰永續高股息",
		FullName:          "國泰台灣ESG永續高股息ETF基金",
		TrackingIndex:     "MSCI臺灣ESG永續高股息精選30指數",
		AvgReturn:         0.075,
		DividendYield:     0.05,
		DividendFrequency: 4,
		ExpenseRatio:      0.0054,
		ReferencePrice:    TWD(23),
	},
	"00919": {
		Code:              "00919",
		Name:              "群益台灣精選高息",
		FullName:          "群益台灣精選高息ETF基金",
		TrackingIndex:     "臺灣指數公司特選高息50指數",
		AvgReturn:         0.07,
		DividendYield:     0.06,
		DividendFrequency: 12,
		ExpenseRatio:      0.0054,
		ReferencePrice:    TWD(18),
	},
}

// LookupFund returns the profile of the fund with the given code.
func LookupFund(code string) (FundProfile, error) {
	f, ok := catalog[code]
	if !ok {
		return FundProfile{}, &UnknownFundError{Code: code}
	}
	return f, nil
}

// Funds returns all the catalog profiles sorted by code.
func Funds() []FundProfile {
	codes := slices.Sorted(maps.Keys(catalog))
	funds := make([]FundProfile, 0, len(codes))
	for _, code := range codes {
		funds = append(funds, catalog[code])
	}
	return funds
}
