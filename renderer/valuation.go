package renderer

import (
	"bytes"

	"github.com/joechiboo/homecalc"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders the current value of a set of holdings.
func ValuationMarkdown(v homecalc.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Valuation")
	writeValuation(doc, v)

	return doc.String()
}

func writeValuation(doc *md.Markdown, v homecalc.Valuation) {
	table := md.TableSet{
		Header: []string{"Code", "Name", "Shares", "Value", "Weight"},
	}
	for _, h := range v.Breakdown {
		table.Rows = append(table.Rows, []string{
			h.Code,
			h.Name,
			h.Shares.String(),
			FormatCurrency(h.Value.AsFloat(), 0),
			percent(h.Percentage),
		})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", md.Bold(FormatCurrency(v.TotalValue.AsFloat(), 0)), ""})
	doc.Table(table)
}
