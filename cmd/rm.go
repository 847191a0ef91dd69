package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook/renderer"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a transaction after confirmation" }
func (*rmCmd) Usage() string {
	return `mbk rm [-y] <id>

  Deletes a transaction. Asks for confirmation unless -y is given;
  anything but an explicit yes cancels and the book stays untouched.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	a.store.OpenDeleteModal(id)
	if !c.yes && !confirm(fmt.Sprintf("Delete %s? [y/N] ", renderer.Transaction(tx))) {
		a.store.CloseDeleteModal()
		fmt.Println("Cancelled.")
		return subcommands.ExitSuccess
	}

	if err := a.store.DeleteTransaction(); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}

// confirm asks on stderr and accepts only an explicit y or yes.
func confirm(prompt string) bool {
	fmt.Fprint(os.Stderr, prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
