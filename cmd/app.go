// Package cmd implements the CLI application to manage an account book.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/hyejin/moneybook"
	"github.com/hyejin/moneybook/api"
	"github.com/hyejin/moneybook/credential"
	"github.com/hyejin/moneybook/localstore"
	"github.com/joho/godotenv"
)

// Commands is the full set of subcommands, registered by the main
// package.
var Commands = []subcommands.Command{
	&loginCmd{},
	&logoutCmd{},
	&registerCmd{},
	&addCmd{},
	&listCmd{},
	&editCmd{},
	&rmCmd{},
	&moveCmd{},
	&setCmd{},
	&summaryCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

const (
	apiURLEnv = "MONEYBOOK_API_URL"
	homeEnv   = "MONEYBOOK_HOME"

	defaultAPIURL = "http://localhost:4000"
)

// app bundles the per-invocation session wiring shared by all
// subcommands: credential, remote client, local file and the store
// over whichever backend the session status selects.
type app struct {
	store  *moneybook.Store
	creds  *credential.Store
	client *api.Client
	local  *localstore.Store
}

// openApp assembles the session and loads the visible book. A stored
// credential selects the remote backend; otherwise, or when the stored
// session turns out to be expired, the anonymous file is the book.
func openApp() (*app, error) {
	// A .env next to the book is a convenience, not a requirement.
	godotenv.Load()

	home := os.Getenv(homeEnv)
	if home == "" {
		home = "."
	}

	creds := credential.Open(filepath.Join(home, credential.DefaultFile))
	creds.Initialize()

	a := &app{
		creds:  creds,
		client: api.New(apiURL(), creds),
		local:  localstore.Open(filepath.Join(home, localstore.DefaultFile)),
	}
	a.store = moneybook.NewStore(a.local, cliNotifier{})
	if creds.LoggedIn() {
		a.store.SetBackend(api.NewBackend(a.client))
	}

	if err := a.store.Reload(); err != nil {
		if moneybook.IsAuthExpired(err) {
			a.expireSession()
			return a, a.store.Reload()
		}
		return nil, err
	}
	return a, nil
}

// apiURL resolves the account-book service base URL.
func apiURL() string {
	if url := os.Getenv(apiURLEnv); url != "" {
		return url
	}
	return defaultAPIURL
}

// expireSession drops the rejected credential and falls back to the
// anonymous book, telling the user to log in again.
func (a *app) expireSession() {
	fmt.Fprintln(os.Stderr, "세션이 만료되었습니다. 다시 로그인해 주세요.")
	a.creds.Erase()
	a.store.SetBackend(a.local)
}

// fail reports a store operation error and maps it to an exit status.
// An expired session additionally tears the session down so the next
// invocation starts anonymous.
func (a *app) fail(err error) subcommands.ExitStatus {
	if moneybook.IsAuthExpired(err) {
		a.expireSession()
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if moneybook.IsValidation(err) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// findTransaction resolves an id against the loaded book.
func (a *app) findTransaction(id int64) (moneybook.Transaction, bool) {
	for _, t := range a.store.Transactions() {
		if t.ID == id {
			return t, true
		}
	}
	return moneybook.Transaction{}, false
}

// logout tears the session down, remote first, local always.
func (a *app) logout(ctx context.Context) {
	a.creds.Logout(ctx, a.client)
	a.store.SetBackend(a.local)
}
