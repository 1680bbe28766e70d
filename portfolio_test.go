package homecalc

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares projections computed along different paths.
var approx = cmp.Options{
	cmpopts.EquateApprox(1e-12, 1e-6),
	cmp.Comparer(func(a, b Percent) bool { return a.Equal(b) }),
}

var testStages = []ContributionStage{
	{StartMonth: 1, EndMonth: 24, MonthlyAmount: 10000, Allocation: map[string]float64{"0050": 60, "0056": 40}},
	{StartMonth: 25, EndMonth: 40, MonthlyAmount: 20000, Allocation: map[string]float64{"0050": 100}},
}

func TestProjectPortfolio_SumOfFundProjections(t *testing.T) {
	holdings := []Holding{
		{Code: "0050", Shares: Q(1000)},
		{Code: "0056", Shares: Q(2000), Price: TWD(40)},
	}
	got, err := ProjectPortfolio(PortfolioParams{Holdings: holdings, Stages: testStages, TotalMonths: 40})
	if err != nil {
		t.Fatalf("ProjectPortfolio() unexpected error: %v", err)
	}

	p1 := Project(ProjectionParams{
		Stages: []ContributionStage{
			{StartMonth: 1, EndMonth: 24, MonthlyAmount: 6000},
			{StartMonth: 25, EndMonth: 40, MonthlyAmount: 20000},
		},
		TotalMonths:       40,
		InitialInvestment: 62200,
		AnnualReturn:      0.07,
		ReinvestDividend:  true,
		DividendYield:     0.03,
	})
	p2 := Project(ProjectionParams{
		Stages: []ContributionStage{
			{StartMonth: 1, EndMonth: 24, MonthlyAmount: 4000},
		},
		TotalMonths:       40,
		InitialInvestment: 80000,
		AnnualReturn:      0.065,
		ReinvestDividend:  true,
		DividendYield:     0.055,
	})

	want := make([]MonthlyRecord, 40)
	for i := range want {
		a, b := p1.MonthlyData[i], p2.MonthlyData[i]
		want[i] = MonthlyRecord{
			Month:             a.Month,
			Year:              a.Year,
			MonthInYear:       a.MonthInYear,
			MonthlyInvestment: a.MonthlyInvestment + b.MonthlyInvestment,
			TotalInvested:     a.TotalInvested + b.TotalInvested,
			CurrentValue:      a.CurrentValue + b.CurrentValue,
			CumulativeReturn:  a.CumulativeReturn + b.CumulativeReturn,
		}
		want[i].ReturnRate = Percent(want[i].CumulativeReturn / want[i].TotalInvested * 100)
	}

	if diff := cmp.Diff(want, got.MonthlyData, approx); diff != "" {
		t.Errorf("ProjectPortfolio() monthly data mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(p1, got.Funds[0].Projection, approx); diff != "" {
		t.Errorf("fund 0050 projection mismatch (-want +got):\n%s", diff)
	}

	wantInitial := 62200.0 + 80000
	if got.Summary.InitialValue != wantInitial {
		t.Errorf("InitialValue = %v, want %v", got.Summary.InitialValue, wantInitial)
	}
	last := want[39]
	if math.Abs(got.Summary.FinalValue-last.CurrentValue) > 1e-6 || got.Summary.TotalInvested != last.TotalInvested {
		t.Errorf("Summary = %+v, want final values of month 40 %+v", got.Summary, last)
	}
	wantAvg := Percent((math.Pow(last.CurrentValue/wantInitial, 12.0/40) - 1) * 100)
	if !got.Summary.AvgAnnualReturn.Equal(wantAvg) {
		t.Errorf("AvgAnnualReturn = %v, want %v", got.Summary.AvgAnnualReturn, wantAvg)
	}
	wantDividend := p1.Summary.FinalValue*0.03 + p2.Summary.FinalValue*0.055
	if math.Abs(got.Summary.EstimatedAnnualDividend-wantDividend) > 1e-6 {
		t.Errorf("EstimatedAnnualDividend = %v, want %v", got.Summary.EstimatedAnnualDividend, wantDividend)
	}
	if math.Abs(got.Summary.EstimatedMonthlyDividend*12-wantDividend) > 1e-6 {
		t.Errorf("EstimatedMonthlyDividend = %v, want %v", got.Summary.EstimatedMonthlyDividend, wantDividend/12)
	}
}

func TestProjectPortfolio_YearlyDividend(t *testing.T) {
	got, err := ProjectPortfolio(PortfolioParams{
		Holdings:    []Holding{{Code: "0050", Shares: Q(100)}, {Code: "00919", Shares: Q(500)}},
		Stages:      []ContributionStage{{StartMonth: 1, EndMonth: 30, MonthlyAmount: 9000, Allocation: map[string]float64{"0050": 50, "00919": 50}}},
		TotalMonths: 30,
	})
	if err != nil {
		t.Fatalf("ProjectPortfolio() unexpected error: %v", err)
	}
	if len(got.YearlyData) != 3 {
		t.Fatalf("len(YearlyData) = %d, want 3", len(got.YearlyData))
	}

	for i, yearEnd := range []int{12, 24, 30} {
		want := got.Funds[0].Projection.MonthlyData[yearEnd-1].CurrentValue*0.03 +
			got.Funds[1].Projection.MonthlyData[yearEnd-1].CurrentValue*0.06
		if y := got.YearlyData[i]; math.Abs(y.AnnualDividend-want) > 1e-6 {
			t.Errorf("year %d: AnnualDividend = %v, want %v", y.Year, y.AnnualDividend, want)
		}
	}
	for _, r := range got.MonthlyData {
		if r.AnnualDividend != 0 {
			t.Fatalf("month %d: AnnualDividend = %v, want 0", r.Month, r.AnnualDividend)
		}
	}
}

func TestProjectPortfolio_PartialAllocation(t *testing.T) {
	got, err := ProjectPortfolio(PortfolioParams{
		Holdings:    []Holding{{Code: "0050", Shares: Q(10)}, {Code: "0056", Shares: Q(10)}},
		Stages:      []ContributionStage{{StartMonth: 1, EndMonth: 12, MonthlyAmount: 10000, Allocation: map[string]float64{"0050": 30, "0056": 20}}},
		TotalMonths: 12,
	})
	if err != nil {
		t.Fatalf("ProjectPortfolio() unexpected error: %v", err)
	}
	// only half of the amount is allocated, the rest is not invested.
	for _, r := range got.MonthlyData {
		if math.Abs(r.MonthlyInvestment-5000) > 1e-9 {
			t.Fatalf("month %d: MonthlyInvestment = %v, want 5000", r.Month, r.MonthlyInvestment)
		}
	}
	if math.Abs(got.YearlyData[0].YearInvestment-60000) > 1e-9 {
		t.Errorf("YearInvestment = %v, want 60000", got.YearlyData[0].YearInvestment)
	}
}

func TestProjectPortfolio_CustomReturns(t *testing.T) {
	got, err := ProjectPortfolio(PortfolioParams{
		Holdings:      []Holding{{Code: "0050", Shares: Q(1000)}, {Code: "0061", Shares: Q(1000)}},
		TotalMonths:   12,
		CustomReturns: map[string]float64{"0050": 0.10},
	})
	if err != nil {
		t.Fatalf("ProjectPortfolio() unexpected error: %v", err)
	}
	if r := got.Funds[0].AnnualReturn; r != 0.10 {
		t.Errorf("0050 AnnualReturn = %v, want the override 0.10", r)
	}
	if r := got.Funds[1].AnnualReturn; r != 0.08 {
		t.Errorf("0061 AnnualReturn = %v, want the catalog default 0.08", r)
	}
}

func TestProjectPortfolio_NoInitialValue(t *testing.T) {
	got, err := ProjectPortfolio(PortfolioParams{
		Holdings:    []Holding{{Code: "0050", Shares: Q(0)}},
		Stages:      []ContributionStage{{StartMonth: 1, EndMonth: 12, MonthlyAmount: 1000, Allocation: map[string]float64{"0050": 100}}},
		TotalMonths: 12,
	})
	if err != nil {
		t.Fatalf("ProjectPortfolio() unexpected error: %v", err)
	}
	if got.Summary.AvgAnnualReturn != 0 {
		t.Errorf("AvgAnnualReturn = %v, want 0 without an initial value", got.Summary.AvgAnnualReturn)
	}
	if got.Summary.FinalValue <= 12000 {
		t.Errorf("FinalValue = %v, want more than the 12000 invested", got.Summary.FinalValue)
	}
}

func TestProjectPortfolio_UnknownFund(t *testing.T) {
	_, err := ProjectPortfolio(PortfolioParams{
		Holdings:    []Holding{{Code: "0050", Shares: Q(1)}, {Code: "ABCD", Shares: Q(1)}},
		TotalMonths: 12,
	})
	var uerr *UnknownFundError
	if !errors.As(err, &uerr) || uerr.Code != "ABCD" {
		t.Errorf("ProjectPortfolio() error = %v, want UnknownFundError for ABCD", err)
	}
}
