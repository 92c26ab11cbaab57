package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/styles"
)

// NoField is returned by focus moves when the button, not a field, lost
// focus.
const NoField = -1

// Dialog is a form container that manages focus cycling across a set of
// fields followed by a single action button. It does not interpret keys;
// callers decide which key moves focus.
type Dialog struct {
	fields  []Field
	focused int // len(fields) when the button has focus
	Title   string
	Button  string
	Help    string
}

// NewDialog creates a dialog with the given fields. The first field is
// focused automatically.
func NewDialog(title string, fields []Field, button string) *Dialog {
	d := &Dialog{
		fields: fields,
		Title:  title,
		Button: button,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Fields returns the dialog fields in focus order.
func (d *Dialog) Fields() []Field { return d.fields }

// Focused returns the index of the focused field, or NoField when the button
// has focus.
func (d *Dialog) Focused() int {
	if d.ButtonFocused() {
		return NoField
	}
	return d.focused
}

// ButtonFocused reports whether the action button has focus.
func (d *Dialog) ButtonFocused() bool { return d.focused >= len(d.fields) }

// FocusedField returns the focused field, or nil when the button has focus.
func (d *Dialog) FocusedField() Field {
	if d.ButtonFocused() {
		return nil
	}
	return d.fields[d.focused]
}

// Advance moves focus forward, wrapping from the button to the first field.
// It returns the index of the field that lost focus.
func (d *Dialog) Advance() (int, tea.Cmd) {
	return d.moveTo((d.focused + 1) % (len(d.fields) + 1))
}

// Retreat moves focus backward, wrapping from the first field to the button.
func (d *Dialog) Retreat() (int, tea.Cmd) {
	total := len(d.fields) + 1
	return d.moveTo((d.focused - 1 + total) % total)
}

// FocusFirst moves focus to the first field.
func (d *Dialog) FocusFirst() (int, tea.Cmd) {
	return d.moveTo(0)
}

func (d *Dialog) moveTo(next int) (int, tea.Cmd) {
	blurred := d.Focused()
	if blurred != NoField {
		d.fields[blurred].Blur()
	}

	d.focused = next
	if d.ButtonFocused() {
		return blurred, nil
	}
	return blurred, d.fields[d.focused].Focus()
}

// UpdateFocused forwards msg to the focused field. It is a no-op while the
// button has focus.
func (d *Dialog) UpdateFocused(msg tea.Msg) tea.Cmd {
	if d.ButtonFocused() {
		return nil
	}

	var cmd tea.Cmd
	d.fields[d.focused], cmd = d.fields[d.focused].Update(msg)
	return cmd
}

// IsTextAreaFocused reports whether the focused field is multi-line.
func (d *Dialog) IsTextAreaFocused() bool {
	_, ok := d.FocusedField().(*TextAreaField)
	return ok
}

// View renders the title, all fields, the button, and help text vertically.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.HeaderStyle.Render(d.Title), "")
	}

	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	buttonStyle := styles.ButtonStyle
	if d.ButtonFocused() {
		buttonStyle = styles.ButtonFocusedStyle
	}
	parts = append(parts, "", buttonStyle.Render(d.Button))

	if d.Help != "" {
		parts = append(parts, "", styles.HelpStyle.Render(d.Help))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
