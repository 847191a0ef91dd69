package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out and switch back to the anonymous book" }
func (*logoutCmd) Usage() string {
	return `mbk logout

  Revokes the session on the server when it can be reached and always
  erases the local credential. The anonymous book becomes visible
  again.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if !a.creds.LoggedIn() {
		fmt.Println("Not logged in.")
		return subcommands.ExitSuccess
	}

	a.logout(ctx)
	if err := a.store.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Logged out.")
	return subcommands.ExitSuccess
}
