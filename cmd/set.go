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

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change a single field of a transaction" }
func (*setCmd) Usage() string {
	return `mbk set <id> <field> <value>

  Changes one field in place. Fields: date, description, amount, type,
  classification.

Usage Examples:
$ mbk set 42 amount 35000
$ mbk set 42 date 2024-05-01
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: an id, a field name and a value are required.")
		return subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse id %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	patch, err := moneybook.FieldPatch(f.Arg(1), f.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if _, ok := a.findTransaction(id); !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %d\n", id)
		return subcommands.ExitFailure
	}

	if err := a.store.UpdateField(id, patch); err != nil {
		return a.fail(err)
	}

	if updated, ok := a.findTransaction(id); ok {
		fmt.Println(renderer.Transaction(updated))
	}
	return subcommands.ExitSuccess
}
