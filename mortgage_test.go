package homecalc

import (
	"errors"
	"math"
	"testing"
)

func TestPeriodCount(t *testing.T) {
	testCases := []struct {
		name                     string
		principal, rate, payment float64
		want                     float64
	}{
		{name: "zero rate", principal: 120000, rate: 0, payment: 1000, want: 120},
		{name: "reference loan", principal: 1000000, rate: 2, payment: 4216, want: 302.084},
		{name: "one period", principal: 1000, rate: 0, payment: 1000, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := PeriodCount(tc.principal, tc.rate, tc.payment)
			if math.Abs(got-tc.want) > 0.001 {
				t.Errorf("PeriodCount(%v, %v, %v) = %v, want %v", tc.principal, tc.rate, tc.payment, got, tc.want)
			}
		})
	}
}

func TestPeriodCount_NotFinite(t *testing.T) {
	testCases := []struct {
		name                     string
		principal, rate, payment float64
	}{
		{name: "payment below interest", principal: 1000000, rate: 6, payment: 4000},
		{name: "payment equals interest", principal: 1200000, rate: 1, payment: 1000},
		{name: "zero payment without interest", principal: 1000, rate: 0, payment: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PeriodCount(tc.principal, tc.rate, tc.payment); IsFinite(got) {
				t.Errorf("PeriodCount(%v, %v, %v) = %v, want a non finite count", tc.principal, tc.rate, tc.payment, got)
			}
		})
	}
}

func TestYearsMonths(t *testing.T) {
	testCases := []struct {
		months       float64
		wantY, wantM int
	}{
		{months: 302.084, wantY: 25, wantM: 3},
		{months: 120, wantY: 10, wantM: 0},
		{months: 5, wantY: 0, wantM: 5},
		{months: 23.5, wantY: 1, wantM: 12},
	}
	for _, tc := range testCases {
		y, m := YearsMonths(tc.months)
		if y != tc.wantY || m != tc.wantM {
			t.Errorf("YearsMonths(%v) = %d, %d, want %d, %d", tc.months, y, m, tc.wantY, tc.wantM)
		}
	}
}

func TestPaymentSchedule_ZeroRate(t *testing.T) {
	got := PaymentSchedule(100000, 0, 10000, 0)
	if len(got) != 10 {
		t.Fatalf("len(PaymentSchedule()) = %d, want 10", len(got))
	}
	for i, r := range got {
		if r.Period != i+1 || r.Interest != 0 || r.Principal != 10000 || r.Payment != 10000 {
			t.Errorf("period %d = %+v, want 10000 of principal and no interest", i+1, r)
		}
	}
	if last := got[9]; last.Remaining != 0 {
		t.Errorf("last Remaining = %v, want 0", last.Remaining)
	}
}

func TestPaymentSchedule_FirstPeriods(t *testing.T) {
	got := PaymentSchedule(1000000, 2, 4216, 3)
	want := []PaymentRecord{
		{Period: 1, Interest: 1667, Principal: 2549, Remaining: 997451, Payment: 4216},
		{Period: 2, Interest: 1662, Principal: 2554, Remaining: 994897, Payment: 4216},
		{Period: 3, Interest: 1658, Principal: 2558, Remaining: 992339, Payment: 4216},
	}
	if len(got) != len(want) {
		t.Fatalf("len(PaymentSchedule()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PaymentSchedule()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPaymentSchedule_StopsWhenRepaid(t *testing.T) {
	got := PaymentSchedule(25000, 0, 10000, 12)
	if len(got) != 3 {
		t.Fatalf("len(PaymentSchedule()) = %d, want 3", len(got))
	}
	if last := got[2]; last.Remaining != 0 || last.Principal != 10000 {
		t.Errorf("last period = %+v, want Remaining 0", last)
	}
}

func TestPaymentSchedule_NeverRepaid(t *testing.T) {
	if got := PaymentSchedule(1000000, 6, 4000, 0); len(got) != 0 {
		t.Errorf("PaymentSchedule() = %v, want an empty schedule", got)
	}
	// explicit periods are simulated anyway.
	if got := PaymentSchedule(1000000, 6, 4000, 2); len(got) != 2 || got[1].Remaining <= 1000000 {
		t.Errorf("PaymentSchedule() = %+v, want 2 periods with a growing balance", got)
	}
}

func TestPaymentSchedule_TooLong(t *testing.T) {
	// 1e300 periods, finite but beyond any int.
	if got := PaymentSchedule(1e200, 0, 1e-100, 0); len(got) != 0 {
		t.Errorf("PaymentSchedule() = %v, want an empty schedule", got)
	}
}

func TestLoanTotals(t *testing.T) {
	got := LoanTotals(120000, 0, 1000)
	if got.TotalPayment != 120000 || got.TotalInterest != 0 {
		t.Errorf("LoanTotals() = %+v, want 120000 paid and no interest", got)
	}
	if got := LoanTotals(1000000, 6, 4000); IsFinite(got.TotalPayment) {
		t.Errorf("LoanTotals() = %+v, want non finite totals", got)
	}
}

func TestMortgage(t *testing.T) {
	got, err := Mortgage(LoanPlan{Principal: 1000000, AnnualRate: 2, MonthlyPayment: 4216})
	if err != nil {
		t.Fatalf("Mortgage() unexpected error: %v", err)
	}
	if got.TotalMonths != 302 || got.Years != 25 || got.Months != 3 {
		t.Errorf("Mortgage() duration = %d months (%dy %dm), want 302 months (25y 3m)", got.TotalMonths, got.Years, got.Months)
	}
	if math.Abs(got.TotalPayment-1273588) > 2 {
		t.Errorf("TotalPayment = %v, want about 1273588", got.TotalPayment)
	}
	if got.TotalInterest != got.TotalPayment-1000000 {
		t.Errorf("TotalInterest = %v, want TotalPayment - principal", got.TotalInterest)
	}
	if got.InterestRate != 21.5 {
		t.Errorf("InterestRate = %v, want 21.5", got.InterestRate)
	}
	if len(got.Schedule) != 3 {
		t.Errorf("len(Schedule) = %d, want 3", len(got.Schedule))
	}
}

func TestMortgage_InsufficientPayment(t *testing.T) {
	_, err := Mortgage(LoanPlan{Principal: 1000000, AnnualRate: 6, MonthlyPayment: 4000})
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Errorf("Mortgage() error = %v, want %v", err, ErrInsufficientPayment)
	}
}

func TestMortgage_TooLong(t *testing.T) {
	plan := LoanPlan{Principal: 1e200, AnnualRate: 0, MonthlyPayment: 1e-100}
	if n := PeriodCount(plan.Principal, plan.AnnualRate, plan.MonthlyPayment); !IsFinite(n) {
		t.Fatalf("PeriodCount() = %v, want a finite count", n)
	}
	if _, err := Mortgage(plan); !errors.Is(err, ErrInsufficientPayment) {
		t.Errorf("Mortgage() error = %v, want %v", err, ErrInsufficientPayment)
	}
}

func TestComparePlans(t *testing.T) {
	plan := LoanPlan{Principal: 1000000, AnnualRate: 2, MonthlyPayment: 4216}
	got, err := ComparePlans(plan, plan)
	if err != nil {
		t.Fatalf("ComparePlans() unexpected error: %v", err)
	}
	if got.MonthsSaved != 0 || got.YearsSaved != 0 || got.InterestSaved != 0 || got.MonthlyDiff != 0 {
		t.Errorf("ComparePlans(p, p) = %+v, want no difference", got)
	}

	faster := LoanPlan{Principal: 1000000, AnnualRate: 2, MonthlyPayment: 6000}
	got, err = ComparePlans(plan, faster)
	if err != nil {
		t.Fatalf("ComparePlans() unexpected error: %v", err)
	}
	if got.MonthsSaved != got.Plan1.TotalMonths-got.Plan2.TotalMonths || got.MonthsSaved <= 0 {
		t.Errorf("MonthsSaved = %d, want plan1 minus plan2 months", got.MonthsSaved)
	}
	if want := math.Round(float64(got.MonthsSaved)/12*10) / 10; got.YearsSaved != want {
		t.Errorf("YearsSaved = %v, want %v", got.YearsSaved, want)
	}
	if got.InterestSaved <= 0 {
		t.Errorf("InterestSaved = %v, want a positive saving", got.InterestSaved)
	}
	if got.MonthlyDiff != 1784 {
		t.Errorf("MonthlyDiff = %v, want 1784", got.MonthlyDiff)
	}
}

func TestComparePlans_InsufficientPayment(t *testing.T) {
	ok := LoanPlan{Principal: 1000000, AnnualRate: 2, MonthlyPayment: 4216}
	bad := LoanPlan{Principal: 1000000, AnnualRate: 6, MonthlyPayment: 4000}

	if _, err := ComparePlans(ok, bad); !errors.Is(err, ErrInsufficientPayment) || err.Error() != "plan 2: "+ErrInsufficientPayment.Error() {
		t.Errorf("ComparePlans(ok, bad) error = %v, want plan 2 insufficient payment", err)
	}
	if _, err := ComparePlans(bad, ok); !errors.Is(err, ErrInsufficientPayment) || err.Error() != "plan 1: "+ErrInsufficientPayment.Error() {
		t.Errorf("ComparePlans(bad, ok) error = %v, want plan 1 insufficient payment", err)
	}
}
