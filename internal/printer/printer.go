// Package printer writes styled status lines for CLI commands. A Printer is
// carried on the context so commands share one output stream.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/styles"
)

type ctxKey struct{}

// Printer writes prefixed, styled lines to w.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

func (p *Printer) line(style lipgloss.Style, icon, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if icon != "" {
		msg = style.Render(icon) + " " + msg
	}
	_, _ = fmt.Fprintln(p.w, msg)
}

func (p *Printer) Printf(format string, args ...any) {
	p.line(lipgloss.NewStyle(), "", format, args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle, styles.IconValid, format, args...)
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.InfoStyle, styles.IconDot, format, args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarnStyle, "!", format, args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, styles.IconError, format, args...)
}

// Section prints a bold header line.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.w, styles.CommandHeaderStyle.Render(title))
}
