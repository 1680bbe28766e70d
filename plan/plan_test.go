package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/joechiboo/homecalc"
)

func TestDecodeProjection(t *testing.T) {
	testCases := []struct {
		name string
		json string
		want homecalc.ProjectionParams
	}{
		{
			name: "fund defaults",
			json: `{"fund": "0056", "totalMonths": 24, "initialInvestment": 1000,
				"stages": [{"startMonth": 1, "endMonth": 24, "monthlyAmount": 500}]}`,
			want: homecalc.ProjectionParams{
				Stages:            []homecalc.ContributionStage{{StartMonth: 1, EndMonth: 24, MonthlyAmount: 500}},
				TotalMonths:       24,
				InitialInvestment: 1000,
				AnnualReturn:      0.065,
				ReinvestDividend:  true,
				DividendYield:     0.055,
			},
		},
		{
			name: "overrides",
			json: `{"fund": "0050", "totalMonths": 12, "annualReturn": 0.1, "dividendYield": 0, "reinvestDividend": false}`,
			want: homecalc.ProjectionParams{
				TotalMonths:  12,
				AnnualReturn: 0.1,
			},
		},
		{
			name: "without fund",
			json: `{"totalMonths": 12, "annualReturn": 0.05}`,
			want: homecalc.ProjectionParams{
				TotalMonths:      12,
				AnnualReturn:     0.05,
				ReinvestDividend: true,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeProjection(strings.NewReader(tc.json))
			if err != nil {
				t.Fatalf("DecodeProjection() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DecodeProjection() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeProjection_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		json    string
		wantErr string
	}{
		{name: "malformed", json: `{"totalMonths": `, wantErr: "invalid plan"},
		{name: "unknown field", json: `{"fund": "0050", "months": 12}`, wantErr: "months"},
		{name: "no rate", json: `{"totalMonths": 12}`, wantErr: "annualReturn: is required without a fund"},
		{name: "negative months", json: `{"fund": "0050", "totalMonths": -1}`, wantErr: "totalMonths: must be between 0 and 1200"},
		{name: "too many months", json: `{"fund": "0050", "totalMonths": 1201}`, wantErr: "totalMonths"},
		{name: "negative initial", json: `{"fund": "0050", "initialInvestment": -5}`, wantErr: "initialInvestment"},
		{name: "huge return", json: `{"totalMonths": 1200, "annualReturn": 1000000}`, wantErr: "annualReturn: must be an annual fraction between -1 and 10"},
		{name: "total loss", json: `{"fund": "0050", "totalMonths": 12, "dividendYield": -1}`, wantErr: "dividendYield"},
		{
			name:    "reversed stage",
			json:    `{"fund": "0050", "totalMonths": 12, "stages": [{"startMonth": 1, "endMonth": 12}, {"startMonth": 6, "endMonth": 3}]}`,
			wantErr: "stages[1].endMonth: must be >= startMonth",
		},
		{
			name:    "negative amount",
			json:    `{"fund": "0050", "totalMonths": 12, "stages": [{"startMonth": 1, "endMonth": 12, "monthlyAmount": -1}]}`,
			wantErr: "stages[0].monthlyAmount",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProjection(strings.NewReader(tc.json))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("DecodeProjection() error = %v, want %v", err, ErrInvalid)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeProjection() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestDecodeProjection_UnknownFund(t *testing.T) {
	_, err := DecodeProjection(strings.NewReader(`{"fund": "9999", "totalMonths": 12}`))
	if !errors.Is(err, homecalc.ErrUnknownFund) {
		t.Errorf("DecodeProjection() error = %v, want %v", err, homecalc.ErrUnknownFund)
	}
}

func TestDecodePortfolio(t *testing.T) {
	got, err := DecodePortfolio(strings.NewReader(`{
		"holdings": [{"code": "0050", "shares": 1000}, {"code": "00878", "shares": 200.5, "price": 21}],
		"stages": [{"startMonth": 1, "endMonth": 60, "monthlyAmount": 10000, "allocation": {"0050": 70, "00878": 30}}],
		"totalMonths": 60,
		"customReturns": {"00878": 0}
	}`))
	if err != nil {
		t.Fatalf("DecodePortfolio() unexpected error: %v", err)
	}
	if len(got.Holdings) != 2 || !got.Holdings[1].Shares.Equal(homecalc.Q(200.5)) || !got.Holdings[1].Price.Equal(homecalc.TWD(21)) {
		t.Errorf("Holdings = %v, want 0050 and 200.5 00878 at 21", got.Holdings)
	}
	if !got.Holdings[0].Price.IsZero() {
		t.Errorf("0050 Price = %v, want zero to use the reference price", got.Holdings[0].Price)
	}
	if r, ok := got.CustomReturns["00878"]; !ok || r != 0 {
		t.Errorf("CustomReturns = %v, want an explicit 0 for 00878", got.CustomReturns)
	}
	if got.TotalMonths != 60 || got.Stages[0].Allocation["0050"] != 70 {
		t.Errorf("DecodePortfolio() = %+v, want 60 months and 70%% in 0050", got)
	}
}

func TestDecodePortfolio_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		json    string
		wantErr string
	}{
		{name: "duplicate", json: `{"holdings": [{"code": "0050", "shares": 1}, {"code": "0050", "shares": 2}]}`, wantErr: `holdings[1].code: "0050" is already held in holdings[0]`},
		{name: "negative shares", json: `{"holdings": [{"code": "0050", "shares": -1}]}`, wantErr: "holdings[0].shares"},
		{name: "negative price", json: `{"holdings": [{"code": "0050", "shares": 1, "price": -1}]}`, wantErr: "holdings[0].price"},
		{name: "negative allocation", json: `{"holdings": [], "stages": [{"startMonth": 1, "endMonth": 2, "allocation": {"0050": -10}}]}`, wantErr: `stages[0].allocation["0050"]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodePortfolio(strings.NewReader(tc.json))
			if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodePortfolio() error = %v, want %q", err, tc.wantErr)
			}
		})
	}

	_, err := DecodePortfolio(strings.NewReader(`{"holdings": [{"code": "0050", "shares": 1}, {"code": "ABC", "shares": 1}]}`))
	var uerr *homecalc.UnknownFundError
	if !errors.As(err, &uerr) || uerr.Code != "ABC" || !strings.HasPrefix(err.Error(), "holdings[1].code: ") {
		t.Errorf("DecodePortfolio() error = %v, want an unknown fund error on holdings[1]", err)
	}
}

func TestDecodeValuation(t *testing.T) {
	got, err := DecodeValuation(strings.NewReader(`{"holdings": [{"code": "0061", "shares": 100}]}`))
	if err != nil {
		t.Fatalf("DecodeValuation() unexpected error: %v", err)
	}
	v, err := homecalc.PortfolioValue(got)
	if err != nil {
		t.Fatalf("PortfolioValue() unexpected error: %v", err)
	}
	if want := homecalc.TWD(1900); !v.TotalValue.Equal(want) {
		t.Errorf("TotalValue = %v, want %v", v.TotalValue, want)
	}
}

func TestDecodeLoan(t *testing.T) {
	got, err := DecodeLoan(strings.NewReader(`{"principal": 1000000, "annualRate": 2, "monthlyPayment": 4216}`))
	if err != nil {
		t.Fatalf("DecodeLoan() unexpected error: %v", err)
	}
	want := homecalc.LoanPlan{Principal: 1000000, AnnualRate: 2, MonthlyPayment: 4216}
	if got != want {
		t.Errorf("DecodeLoan() = %+v, want %+v", got, want)
	}

	// an insufficient payment is valid input.
	if _, err := DecodeLoan(strings.NewReader(`{"principal": 1000000, "annualRate": 6, "monthlyPayment": 10}`)); err != nil {
		t.Errorf("DecodeLoan() unexpected error: %v", err)
	}
}

func TestDecodeComparison_Invalid(t *testing.T) {
	testCases := []struct {
		json    string
		wantErr string
	}{
		{json: `{"plan1": {"principal": 0, "monthlyPayment": 1}, "plan2": {"principal": 1, "monthlyPayment": 1}}`, wantErr: "plan1.principal: must be positive"},
		{json: `{"plan1": {"principal": 1, "monthlyPayment": 1}, "plan2": {"principal": 1, "annualRate": -1, "monthlyPayment": 1}}`, wantErr: "plan2.annualRate"},
		{json: `{"plan1": {"principal": 1, "monthlyPayment": 1}, "plan2": {"principal": 1}}`, wantErr: "plan2.monthlyPayment"},
	}
	for _, tc := range testCases {
		_, err := DecodeComparison(strings.NewReader(tc.json))
		if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), tc.wantErr) {
			t.Errorf("DecodeComparison(%s) error = %v, want %q", tc.json, err, tc.wantErr)
		}
	}
}
