package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook/api"
	"golang.org/x/term"
)

type loginCmd struct {
	user     string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in and switch to the remote account book" }
func (*loginCmd) Usage() string {
	return `mbk login -user <id> [-password <password>]

  Exchanges the credentials for an access token, stores it locally and
  loads the remote account book. Without -password the password is
  prompted for.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User id to sign in as.")
	f.StringVar(&c.password, "password", "", "Password. Prompted for when omitted.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprintln(os.Stderr, "Error: -user is required.")
		return subcommands.ExitUsageError
	}
	password := c.password
	if password == "" {
		var err error
		if password, err = promptPassword("Password: "); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	token, err := a.client.Login(ctx, c.user, password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := a.creds.Login(token); err != nil {
		fmt.Fprintf(os.Stderr, "Error storing credential: %v\n", err)
		return subcommands.ExitFailure
	}

	// The remote book replaces the anonymous one wholesale.
	a.store.SetBackend(api.NewBackend(a.client))
	if err := a.store.Reload(); err != nil {
		return a.fail(err)
	}

	fmt.Printf("✅ Logged in as %s. %d transactions loaded.\n", c.user, len(a.store.Transactions()))
	return subcommands.ExitSuccess
}

// promptPassword reads a password without echo when stdin is a
// terminal, and as a plain line otherwise.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		defer fmt.Fprintln(os.Stderr)
		data, err := term.ReadPassword(fd)
		return string(data), err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
