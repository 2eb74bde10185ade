package renderer

import (
	"bytes"
	"fmt"

	"bankbook"
	md "github.com/nao1215/markdown"
)

func HistoryMarkdown(r *bankbook.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s#%s", r.Kind.Title(), r.Number))

	if len(r.Entries) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Id", "Kind", "Amount", "Balance"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			e.Date.String(),
			fmt.Sprintf("%d", e.Seq),
			string(e.Kind),
			e.Amount.String(),
			e.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
