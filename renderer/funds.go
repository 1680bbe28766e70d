package renderer

import (
	"bytes"
	"fmt"

	"github.com/joechiboo/homecalc"
	md "github.com/nao1215/markdown"
)

// FundsMarkdown renders the fund catalog.
func FundsMarkdown(funds []homecalc.FundProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fund Catalog")
	table := md.TableSet{
		Header: []string{"Code", "Name", "Tracking Index", "Avg. Return", "Dividend Yield", "Payouts / Year", "Expense Ratio", "Reference Price"},
	}
	for _, f := range funds {
		table.Rows = append(table.Rows, []string{
			f.Code,
			f.Name,
			f.TrackingIndex,
			rate(f.AvgReturn),
			rate(f.DividendYield),
			fmt.Sprint(f.DividendFrequency),
			rate(f.ExpenseRatio),
			FormatCurrency(f.ReferencePrice.AsFloat(), 2),
		})
	}
	doc.Table(table)

	return doc.String()
}

// FundMarkdown renders the details of a single fund.
func FundMarkdown(f homecalc.FundProfile) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s %s", f.Code, f.Name))
	doc.PlainText(f.FullName)
	doc.Table(md.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Tracking Index", f.TrackingIndex},
			{"Average Annual Return", rate(f.AvgReturn)},
			{"Dividend Yield", rate(f.DividendYield)},
			{"Dividend Payouts per Year", fmt.Sprint(f.DividendFrequency)},
			{"Expense Ratio", rate(f.ExpenseRatio)},
			{"Reference Price", f.ReferencePrice.String()},
		},
	})

	return doc.String()
}
