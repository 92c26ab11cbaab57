// Package tmpl provides template rendering for user-configurable messages.
package tmpl

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
	"join":  strings.Join,
	"default": func(def, s string) string {
		if s == "" {
			return def
		}
		return s
	},
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
//
// Available template functions:
//   - upper, lower: change case
//   - trim: strip surrounding whitespace
//   - join: Join string slice with separator (e.g., join .Tags ", ")
//   - default: fall back to a value when the piped string is empty
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// Check parses tmpl and executes it against sample data, discarding output.
// Used by config validation to reject broken templates at startup.
func Check(tmpl string, sample any) error {
	_, err := Render(tmpl, sample)
	return err
}
