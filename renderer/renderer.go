// Package renderer turns account-book state into markdown suitable
// for a terminal markdown renderer.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate executes one embedded template against data.
func renderTemplate(name string, data any) string {
	t, err := template.ParseFS(templates, "templates/"+name)
	if err != nil {
		return fmt.Sprintf("template %s is broken: %v", name, err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return fmt.Sprintf("cannot render %s: %v", name, err)
	}
	return b.String()
}
