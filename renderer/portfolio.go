package renderer

import (
	"bytes"

	"github.com/joechiboo/homecalc"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders a multi-fund projection: the current holdings,
// the blended trajectory and a summary per fund.
func PortfolioMarkdown(p homecalc.PortfolioProjection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Projection")

	doc.H2("Current Portfolio")
	writeValuation(doc, p.CurrentPortfolio)

	s := p.Summary
	doc.H2("Summary")
	doc.Table(md.TableSet{
		Header: []string{md.Bold("Final Value"), md.Bold(currency(s.FinalValue))},
		Rows: [][]string{
			{"Duration", duration(s.TotalMonths)},
			{"Initial Value", currency(s.InitialValue)},
			{"Total Invested", currency(s.TotalInvested)},
			{"Cumulative Return", currency(s.CumulativeReturn)},
			{"Return Rate", percent(s.ReturnRate)},
			{"Avg. Annual Return", percent(s.AvgAnnualReturn)},
			{"Estimated Annual Dividend", currency(s.EstimatedAnnualDividend)},
			{"Estimated Monthly Dividend", currency(s.EstimatedMonthlyDividend)},
		},
	})

	if len(p.Funds) > 0 {
		doc.H2("Funds")
		table := md.TableSet{
			Header: []string{"Code", "Annual Return", "Total Invested", "Final Value", "Return Rate", "Avg. Annual Return"},
		}
		for _, f := range p.Funds {
			fs := f.Projection.Summary
			table.Rows = append(table.Rows, []string{
				f.Code,
				rate(f.AnnualReturn),
				currency(fs.TotalInvested),
				currency(fs.FinalValue),
				percent(fs.ReturnRate),
				percent(fs.AvgAnnualReturn),
			})
		}
		doc.Table(table)
	}

	writeYearly(doc, p.YearlyData)

	return doc.String()
}
