package renderer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/joechiboo/homecalc"
)

// FormatCurrency formats amount with thousands separators and exactly decimals
// fraction digits. Non finite amounts are rendered as "n/a". Amounts too
// large to count in int64 minor units are written without separators.
func FormatCurrency(amount float64, decimals int) string {
	if !homecalc.IsFinite(amount) {
		return "n/a"
	}
	units := math.Round(amount * math.Pow10(decimals))
	if math.Abs(units) >= math.MaxInt64 {
		return strconv.FormatFloat(amount, 'f', decimals, 64)
	}
	return money.NewFormatter(decimals, ".", ",", "", "1").Format(int64(units))
}

// FormatPercentage formats p with exactly decimals fraction digits followed
// by a percent sign.
func FormatPercentage(p homecalc.Percent, decimals int) string {
	if !p.IsFinite() {
		return "n/a"
	}
	return fmt.Sprintf("%.*f%%", decimals, float64(p))
}

// rate formats a fractional rate (0.07) as a percentage.
func rate(r float64) string { return FormatPercentage(homecalc.Percent(r*100), 2) }

func currency(amount float64) string { return FormatCurrency(amount, 0) }

func percent(p homecalc.Percent) string { return FormatPercentage(p, 2) }
