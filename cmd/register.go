package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	user     string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `mbk register -user <id> [-password <password>]

  Creates an account on the account-book server. Without -password the
  password is prompted for twice.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User id to register.")
	f.StringVar(&c.password, "password", "", "Password. Prompted for when omitted.")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required.")
		return subcommands.ExitUsageError
	}
	password := c.password
	if password == "" {
		first, err := promptPassword("Password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		again, err := promptPassword("Repeat password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		if first != again {
			fmt.Fprintln(os.Stderr, "Error: passwords do not match.")
			return subcommands.ExitFailure
		}
		password = first
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := a.client.Register(ctx, c.user, password); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Account %s created. Sign in with: mbk login -user %s\n", c.user, c.user)
	return subcommands.ExitSuccess
}
