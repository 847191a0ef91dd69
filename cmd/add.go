package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook"
	"github.com/hyejin/moneybook/date"
)

type addCmd struct {
	date   string
	typ    string
	class  string
	amount string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction at the front of the book" }
func (*addCmd) Usage() string {
	return `mbk add -amount <amount> [-date <date>] [-type <type>] [-class <classification>] <description>

  Records a transaction. The description and a positive amount are
  required; the date defaults to today.

Usage Examples:
$ mbk add -type income -class fixed -amount 2000000 "Salary"
$ mbk add -amount 4500 "Coffee"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Date of the transaction (yyyy-mm-dd), defaults to today.")
	f.StringVar(&c.typ, "type", string(moneybook.Expense), "Transaction type (income, expense, saving).")
	f.StringVar(&c.class, "class", string(moneybook.Variable), "Classification (fixed, variable).")
	f.StringVar(&c.amount, "amount", "", "Amount, a positive number.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.TrimSpace(strings.Join(f.Args(), " "))

	typ, err := moneybook.ParseType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	class, err := moneybook.ParseClassification(c.class)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	var day date.Date
	if c.date != "" {
		if day, err = date.Parse(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	a.store.SetAmount(c.amount)
	if err := a.store.Add(moneybook.Form{
		Date:           day,
		Description:    description,
		Type:           typ,
		Classification: class,
	}); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}
