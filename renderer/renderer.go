// Package renderer turns engine views into markdown reports. It is pure
// presentation: it never touches the ledger and holds no state.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/avelek/bankist"
)

// AccountMarkdown renders the full account view: greeting, balance,
// movement rows and the income/expense/interest summary.
func AccountMarkdown(v *bankist.View) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Welcome back, %s", v.FirstName))
	doc.PlainText(fmt.Sprintf("Current balance: **%s**", v.Balance))

	order := "chronological"
	if v.Sorted {
		order = "by amount, ascending"
	}
	doc.H2(fmt.Sprintf("Movements (%s)", order))
	doc.Table(movementTable(v))

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Header: []string{"In", "Out", "Interest"},
		Rows: [][]string{
			{v.Income.String(), v.Expense.String(), v.Interest.String()},
		},
	})

	return doc.String()
}

// MovementsMarkdown renders only the movement rows of a view.
func MovementsMarkdown(v *bankist.View) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.Table(movementTable(v))
	return doc.String()
}

func movementTable(v *bankist.View) md.TableSet {
	table := md.TableSet{Header: []string{"#", "Type", "Amount", "Date"}}
	for _, row := range v.Rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Position),
			string(row.Kind()),
			row.Amount.SignedString(),
			row.Time.Format("2006-01-02"),
		})
	}
	return table
}

// AccountsMarkdown renders the account listing of a ledger: owner,
// username and current balance per row, in original insertion order.
func AccountsMarkdown(l *bankist.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	table := md.TableSet{Header: []string{"Owner", "Username", "Balance", "Interest rate"}}
	for a := range l.Accounts() {
		table.Rows = append(table.Rows, []string{
			a.Owner(),
			a.Username(),
			a.Balance().String(),
			a.InterestRate().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
