package form

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	Wrapper

	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field. hint is shown
// while the field is flagged as invalid.
func NewTextField(label, placeholder, hint string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 40
	ti.CharLimit = 120
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.ColorMuted)

	return &TextField{
		Wrapper: Wrapper{Hint: hint},
		input:   ti,
		label:   label,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	return f.frame(f.label, f.focused, f.input.View())
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool     { return f.focused }
func (f *TextField) Value() string     { return f.input.Value() }
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextField) Reset()            { f.input.Reset() }
func (f *TextField) Label() string     { return f.label }
