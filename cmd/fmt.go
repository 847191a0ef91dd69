package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer cannot be set up.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// cliNotifier surfaces store notifications on the terminal: successes
// on stdout, failures on stderr.
type cliNotifier struct{}

func (cliNotifier) Success(msg string) { fmt.Println("✅", msg) }
func (cliNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "❌", msg) }
