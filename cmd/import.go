package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from CSV" }
func (*importCmd) Usage() string {
	return `mbk import [<file>]

  Reads CSV rows and records each as a new transaction, from the given
  file or stdin. Every row is validated before anything is recorded; a
  single bad row refuses the whole file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one input file.")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 1 {
		var err error
		in, err = os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	rows, err := moneybook.ImportCSV(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(rows) == 0 {
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := a.store.Import(rows); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}
