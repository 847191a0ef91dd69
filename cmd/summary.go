package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook"
	"github.com/hyejin/moneybook/renderer"
)

type summaryCmd struct {
	period periodFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals per type and the balance" }
func (*summaryCmd) Usage() string {
	return `mbk summary [-month <yyyy-mm> [-payday <day>] | -year <yyyy> | -from <date> [-to <date>]]

  Totals the book per type and derives the balance. Without a period
  flag the whole book is covered. With -payday a month runs from payday
  to the day before the next one.

Usage Examples:
$ mbk summary
$ mbk summary -month 2024-03 -payday 25
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.period.register(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	txs := a.store.Transactions()
	title := "Summary"
	if r, ok, err := c.period.window(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	} else if ok {
		txs = moneybook.Between(txs, r)
		title = fmt.Sprintf("Summary %s", r)
	}

	printMarkdown(renderer.Summary(title, moneybook.Summarize(txs)))
	return subcommands.ExitSuccess
}
