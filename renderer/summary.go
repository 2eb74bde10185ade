package renderer

import (
	"bytes"
	"fmt"

	"bankbook"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *bankbook.SummaryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bank Summary")

	if len(s.Entries) == 0 {
		doc.PlainText("No accounts.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Account", "Type", "Balance"},
		Rows:   [][]string{},
	}
	for _, e := range s.Entries {
		number := e.Number
		if e.Selected {
			number = fmt.Sprintf("%s (selected)", number)
		}
		table.Rows = append(table.Rows, []string{
			number,
			e.Kind.Title(),
			e.Balance.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
