package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook"
	"github.com/hyejin/moneybook/renderer"
)

type editCmd struct {
	desc  string
	typ   string
	class string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit the description, type or classification of a transaction" }
func (*editCmd) Usage() string {
	return `mbk edit [-desc <description>] [-type <type>] [-class <classification>] <id>

  Edits a transaction. Fields left out keep their current value; the
  date and amount are changed with 'mbk set'.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.typ, "type", "", "New type (income, expense, saving).")
	f.StringVar(&c.class, "class", "", "New classification (fixed, variable).")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one transaction id is required.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx, ok := a.findTransaction(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %d\n", id)
		return subcommands.ExitFailure
	}

	// The edit buffer starts from the current record; flags overwrite.
	a.store.StartEditing(tx)
	if c.desc != "" {
		a.store.SetEditDescription(c.desc)
	}
	if c.typ != "" {
		typ, err := moneybook.ParseType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		a.store.SetEditType(typ)
	}
	if c.class != "" {
		class, err := moneybook.ParseClassification(c.class)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		a.store.SetEditClassification(class)
	}

	if err := a.store.UpdateTransaction(); err != nil {
		return a.fail(err)
	}

	if updated, ok := a.findTransaction(id); ok {
		fmt.Println(renderer.Transaction(updated))
	}
	return subcommands.ExitSuccess
}
