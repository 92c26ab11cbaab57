// Package partial loads and renders markdown fragments shown around the TUI,
// such as the footer.
package partial

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jarospm/folio/internal/core/styles"
)

//go:embed footer.md
var defaultFooter string

// Default returns the built-in footer fragment.
func Default() string {
	return defaultFooter
}

// Load reads the fragment at path. An empty path yields the built-in footer.
func Load(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if path == "" {
		return defaultFooter, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load partial: %w", err)
	}

	return string(data), nil
}

// Render renders md for a terminal of the given width using the active theme.
// Trailing blank lines are removed so the fragment sits flush in a layout.
func Render(md string, width int) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStyles(styles.GlamourStyle()),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render partial: %w", err)
	}

	return strings.Trim(out, "\n"), nil
}
