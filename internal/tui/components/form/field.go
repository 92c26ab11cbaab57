package form

import tea "github.com/charmbracelet/bubbletea"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() string
	SetValue(v string)
	Reset()
	Label() string

	// State access comes from the embedded Wrapper.
	MarkError()
	MarkValid()
	ClearState()
	Apply(ok bool)
	State() State
}
