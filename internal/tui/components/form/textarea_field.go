package form

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/styles"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	Wrapper

	input   textarea.Model
	label   string
	focused bool
	footer  string
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, hint string) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 2000
	ta.SetHeight(4)
	ta.SetWidth(40)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ta.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	return &TextAreaField{
		Wrapper: Wrapper{Hint: hint},
		input:   ta,
		label:   label,
	}
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// SetFooter sets a line rendered under the input, such as a counter.
func (f *TextAreaField) SetFooter(s string) { f.footer = s }

func (f *TextAreaField) View() string {
	body := f.input.View()
	if f.footer != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, f.footer)
	}
	return f.frame(f.label, f.focused, body)
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Focused() bool     { return f.focused }
func (f *TextAreaField) Value() string     { return f.input.Value() }
func (f *TextAreaField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextAreaField) Reset()            { f.input.Reset() }
func (f *TextAreaField) Label() string     { return f.label }
