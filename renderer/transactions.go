package renderer

import (
	"bytes"
	"fmt"

	"github.com/hyejin/moneybook"
	md "github.com/nao1215/markdown"
)

// Transactions renders the account book as a markdown table, newest
// entry first, the way the store keeps it.
func Transactions(title string, txs []moneybook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}
	doc.Table(transactionTable(txs))
	return doc.String()
}

// Partitions renders the book split by classification, fixed entries
// first, each partition with its own summary line.
func Partitions(title string, txs []moneybook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	for _, part := range []struct {
		label string
		class moneybook.Classification
	}{
		{label: "고정", class: moneybook.Fixed},
		{label: "변동", class: moneybook.Variable},
	} {
		entries := moneybook.ByClassification(txs, part.class)
		doc.H2(part.label)
		if len(entries) == 0 {
			doc.PlainText("No transactions.")
			continue
		}
		doc.Table(transactionTable(entries))
		s := moneybook.Summarize(entries)
		doc.PlainText(fmt.Sprintf("잔액: %s", moneybook.KRW(s.Balance()).String()))
	}
	return doc.String()
}

// Transaction renders a single entry to a one line string.
func Transaction(tx moneybook.Transaction) string {
	return fmt.Sprintf("%s %s %s (%s, %s)",
		tx.Date, tx.Description, moneybook.KRW(tx.Amount).SignedString(tx.Type),
		tx.Type, tx.Classification)
}

func transactionTable(txs []moneybook.Transaction) md.TableSet {
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", tx.ID),
			tx.Date.String(),
			tx.Description,
			moneybook.KRW(tx.Amount).SignedString(tx.Type),
			string(tx.Type),
			string(tx.Classification),
		})
	}
	return md.TableSet{
		Header: []string{"ID", "Date", "Description", "Amount", "Type", "Classification"},
		Rows:   rows,
	}
}
