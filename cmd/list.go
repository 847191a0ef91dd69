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

type listCmd struct {
	period periodFlags
	split  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the transactions of the account book" }
func (*listCmd) Usage() string {
	return `mbk list [-month <yyyy-mm> [-payday <day>] | -year <yyyy> | -from <date> [-to <date>]] [-split]

  Lists transactions, newest first. With -split the book is partitioned
  into fixed and variable entries.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.period.register(f)
	f.BoolVar(&c.split, "split", false, "Partition into fixed and variable entries.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	txs := a.store.Transactions()
	title := "Account Book"
	if r, ok, err := c.period.window(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	} else if ok {
		txs = moneybook.Between(txs, r)
		title = fmt.Sprintf("Account Book %s", r)
	}

	if c.split {
		printMarkdown(renderer.Partitions(title, txs))
	} else {
		printMarkdown(renderer.Transactions(title, txs))
	}
	return subcommands.ExitSuccess
}
