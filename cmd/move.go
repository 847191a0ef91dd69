package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type moveCmd struct{}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "move a transaction to another transaction's position" }
func (*moveCmd) Usage() string {
	return `mbk move <id> <target-id>

  Reorders the book by moving one transaction to the position currently
  held by another. The new order shows immediately; if the server
  rejects it the previous order is restored.
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {}

func (c *moveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a transaction id and a target id are required.")
		return subcommands.ExitUsageError
	}
	moved, merr := strconv.ParseInt(f.Arg(0), 10, 64)
	target, terr := strconv.ParseInt(f.Arg(1), 10, 64)
	if merr != nil || terr != nil {
		fmt.Fprintln(os.Stderr, "Error: ids must be numbers.")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if err := a.store.Move(moved, target); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}
