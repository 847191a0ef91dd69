package renderer

import (
	"github.com/hyejin/moneybook"
)

// summaryView is the template model for the summary cards.
type summaryView struct {
	Title   string
	Income  string
	Expense string
	Saving  string
	Balance string
}

// Summary renders the four summary cards: total income, total
// expense, total saving and balance.
func Summary(title string, s moneybook.Summary) string {
	return renderTemplate("summary.md", summaryView{
		Title:   title,
		Income:  moneybook.KRW(s.Income).String(),
		Expense: moneybook.KRW(s.Expense).String(),
		Saving:  moneybook.KRW(s.Saving).String(),
		Balance: moneybook.KRW(s.Balance()).String(),
	})
}
