package form

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jarospm/folio/internal/core/styles"
)

// State is the validation state projected onto a field.
type State int

const (
	StateUnvalidated State = iota
	StateValid
	StateError
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateError:
		return "error"
	default:
		return "unvalidated"
	}
}

// Wrapper carries the valid and error flags of a field and frames the field
// when rendering. The flags are mutually exclusive; neither set means the
// field has not been validated.
type Wrapper struct {
	// Hint is shown under the field while the error flag is set.
	Hint string

	valid   bool
	invalid bool
}

// MarkError clears the valid flag and sets the error flag.
func (w *Wrapper) MarkError() {
	w.valid = false
	w.invalid = true
}

// MarkValid clears the error flag and sets the valid flag.
func (w *Wrapper) MarkValid() {
	w.invalid = false
	w.valid = true
}

// ClearState removes both flags.
func (w *Wrapper) ClearState() {
	w.valid = false
	w.invalid = false
}

// Apply marks the wrapper valid when ok and invalid otherwise.
func (w *Wrapper) Apply(ok bool) {
	if ok {
		w.MarkValid()
		return
	}
	w.MarkError()
}

func (w *Wrapper) State() State {
	switch {
	case w.invalid:
		return StateError
	case w.valid:
		return StateValid
	default:
		return StateUnvalidated
	}
}

// frame renders label and body inside the field border, styled by state and
// focus. State colors win over focus so a validated field keeps its color
// while the cursor is on it.
func (w *Wrapper) frame(label string, focused bool, body string) string {
	titleStyle := styles.TextMutedStyle
	borderStyle := styles.FormFieldStyle
	if focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	switch w.State() {
	case StateValid:
		titleStyle = styles.FormTitleValidStyle
		borderStyle = styles.FormFieldValidStyle
		label += " " + styles.IconValid
	case StateError:
		titleStyle = styles.FormTitleErrorStyle
		borderStyle = styles.FormFieldErrorStyle
		label += " " + styles.IconError
	}

	parts := []string{titleStyle.Render(label), body}
	if w.State() == StateError && w.Hint != "" {
		parts = append(parts, styles.FormErrorStyle.Render(w.Hint))
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
