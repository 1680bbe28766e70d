package homecalc

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCurrentValue(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		shares Quantity
		price  Money
		want   Money
	}{
		{
			name:   "reference price",
			code:   "0050",
			shares: Q(1000),
			want:   TWD(62200),
		},
		{
			name:   "explicit price",
			code:   "0050",
			shares: Q(1000),
			price:  TWD(70.5),
			want:   TWD(70500),
		},
		{
			name:   "fractional shares",
			code:   "00919",
			shares: Q(10.5),
			want:   TWD(189),
		},
		{
			name:   "no shares",
			code:   "0056",
			shares: Q(0),
			want:   TWD(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CurrentValue(tt.code, tt.shares, tt.price)
			if err != nil {
				t.Fatalf("CurrentValue() unexpected error: %v", err)
			}
			if !got.Decimal().Equal(tt.want.Decimal()) {
				t.Errorf("CurrentValue() = %s, want %s", got.Decimal(), tt.want.Decimal())
			}
		})
	}
}

func TestCurrentValue_UnknownFund(t *testing.T) {
	if _, err := CurrentValue("XXXX", Q(1), Money{}); !errors.Is(err, ErrUnknownFund) {
		t.Errorf("CurrentValue(XXXX) error = %v, want ErrUnknownFund", err)
	}
}

func TestPortfolioValue(t *testing.T) {
	v, err := PortfolioValue([]Holding{
		{Code: "0050", Shares: Q(1000)},                   // 62200
		{Code: "0056", Shares: Q(1000), Price: TWD(37.8)}, // 37800
	})
	if err != nil {
		t.Fatalf("PortfolioValue() unexpected error: %v", err)
	}
	if !v.TotalValue.Decimal().Equal(TWD(100000).Decimal()) {
		t.Errorf("TotalValue = %s, want 100000", v.TotalValue.Decimal())
	}
	if len(v.Breakdown) != 2 {
		t.Fatalf("len(Breakdown) = %d, want 2", len(v.Breakdown))
	}
	if got := v.Breakdown[0]; got.Name != "元大台灣50" || !got.Percentage.Equal(62.2) {
		t.Errorf("Breakdown[0] = %+v, want 元大台灣50 at 62.2%%", got)
	}
	if got := v.Breakdown[1].Percentage; !got.Equal(37.8) {
		t.Errorf("Breakdown[1].Percentage = %v, want 37.8%%", got)
	}
}

func TestPortfolioValue_ZeroTotal(t *testing.T) {
	v, err := PortfolioValue([]Holding{{Code: "0050", Shares: Q(0)}, {Code: "0061", Shares: Q(0)}})
	if err != nil {
		t.Fatalf("PortfolioValue() unexpected error: %v", err)
	}
	for i, b := range v.Breakdown {
		if b.Percentage != 0 {
			t.Errorf("Breakdown[%d].Percentage = %v, want 0", i, b.Percentage)
		}
	}
}

func TestPortfolioValue_UnknownFund(t *testing.T) {
	_, err := PortfolioValue([]Holding{{Code: "0050", Shares: Q(1)}, {Code: "9999", Shares: Q(1)}})
	if !errors.Is(err, ErrUnknownFund) {
		t.Errorf("PortfolioValue() error = %v, want ErrUnknownFund", err)
	}
}

func TestMoney_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(TWD(62200.5))
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if want := `{"amount":62200.5,"currency":"TWD"}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}

	var m Money
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if !m.Equal(TWD(62200.5)) {
		t.Errorf("Unmarshal() = %v, want 62200.5 TWD", m.Decimal())
	}
}
