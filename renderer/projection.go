package renderer

import (
	"bytes"
	"fmt"

	"github.com/joechiboo/homecalc"
	md "github.com/nao1215/markdown"
)

// ProjectionRenderOptions holds configuration for rendering projections.
type ProjectionRenderOptions struct {
	Title   string // defaults to "Investment Projection"
	Monthly bool   // Also render the month by month records.
}

// ProjectionMarkdown renders a single stream projection.
func ProjectionMarkdown(p homecalc.Projection, opts ProjectionRenderOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := opts.Title
	if title == "" {
		title = "Investment Projection"
	}
	doc.H1(title)

	s := p.Summary
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Final Value"), md.Bold(currency(s.FinalValue))},
		Rows: [][]string{
			{"Duration", duration(s.TotalMonths)},
			{"Total Invested", currency(s.TotalInvested)},
			{"Cumulative Return", currency(s.CumulativeReturn)},
			{"Return Rate", percent(s.ReturnRate)},
			{"Avg. Annual Return", percent(s.AvgAnnualReturn)},
			{"Estimated Annual Dividend", currency(s.EstimatedAnnualDividend)},
		},
	})
	writeYearly(doc, p.YearlyData)
	if opts.Monthly {
		writeMonthly(doc, p.MonthlyData)
	}

	return doc.String()
}

// writeYearly appends the yearly table, only if there is at least one year.
func writeYearly(doc *md.Markdown, years []homecalc.YearlyRecord) {
	if len(years) == 0 {
		return
	}
	doc.H2("Yearly Breakdown")
	table := md.TableSet{
		Header: []string{"Year", "Invested this Year", "Total Invested", "Value", "Return", "Return Rate", "Annual Dividend"},
	}
	for _, y := range years {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(y.Year),
			currency(y.YearInvestment),
			currency(y.TotalInvested),
			currency(y.CurrentValue),
			currency(y.CumulativeReturn),
			percent(y.ReturnRate),
			currency(y.AnnualDividend),
		})
	}
	doc.Table(table)
}

func writeMonthly(doc *md.Markdown, months []homecalc.MonthlyRecord) {
	if len(months) == 0 {
		return
	}
	doc.H2("Monthly Breakdown")
	table := md.TableSet{
		Header: []string{"Month", "Year-Month", "Invested", "Total Invested", "Value", "Return Rate"},
	}
	for _, m := range months {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(m.Month),
			fmt.Sprintf("%d-%02d", m.Year, m.MonthInYear),
			currency(m.MonthlyInvestment),
			currency(m.TotalInvested),
			currency(m.CurrentValue),
			percent(m.ReturnRate),
		})
	}
	doc.Table(table)
}

// duration formats a month count as years and months.
func duration(months int) string {
	switch y, m := months/12, months%12; {
	case y == 0:
		return fmt.Sprintf("%d months", m)
	case m == 0:
		return fmt.Sprintf("%d years", y)
	default:
		return fmt.Sprintf("%d years %d months", y, m)
	}
}
