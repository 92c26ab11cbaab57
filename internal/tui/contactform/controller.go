// Package contactform implements the contact form screen: the field layout,
// per-field validation state, the message counter, and the submission flow.
package contactform

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jarospm/folio/internal/core/config"
	"github.com/jarospm/folio/internal/core/contact"
	"github.com/jarospm/folio/internal/core/logging"
	"github.com/jarospm/folio/internal/tui/components/form"
)

// Phase is the submission state of the form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseAccepted
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhaseValidating:
		return "validating"
	case PhaseAccepted:
		return "accepted"
	case PhaseRejected:
		return "rejected"
	default:
		return "idle"
	}
}

// Outcome describes one submission attempt.
type Outcome struct {
	Accepted bool
	// States are the per-field states asserted by the validating pass. After
	// an accepted submission the form is reset, so these differ from the
	// states the fields hold afterwards.
	States map[contact.Field]form.State
	// Failed lists the failing fields in layout order.
	Failed []contact.Field
}

// counterRefreshMsg asks the controller to recompute the counter from the
// message field as it is when the message is processed.
type counterRefreshMsg struct{}

type binding struct {
	field contact.Field
	build func(cfg config.ContactConfig) form.Field
}

// layout is the fixed form, in focus order.
var layout = []binding{
	{contact.FieldFirstName, func(config.ContactConfig) form.Field {
		return form.NewTextField(contact.FieldFirstName.Label(), "Ada", contact.FieldFirstName.Hint())
	}},
	{contact.FieldLastName, func(config.ContactConfig) form.Field {
		return form.NewTextField(contact.FieldLastName.Label(), "Lovelace", contact.FieldLastName.Hint())
	}},
	{contact.FieldEmail, func(config.ContactConfig) form.Field {
		return form.NewTextField(contact.FieldEmail.Label(), "ada@example.com", contact.FieldEmail.Hint())
	}},
	{contact.FieldSubject, func(cfg config.ContactConfig) form.Field {
		subjects := cfg.Subjects
		if len(subjects) == 0 {
			subjects = config.DefaultSubjects
		}
		options := append([]string{""}, subjects...)
		return form.NewSelectFormField(contact.FieldSubject.Label(), "Select a subject", options, contact.FieldSubject.Hint())
	}},
	{contact.FieldMessage, func(config.ContactConfig) form.Field {
		return form.NewTextAreaField(contact.FieldMessage.Label(), "What would you like to talk about?", contact.FieldMessage.Hint())
	}},
}

// Controller owns the contact form. It routes key messages to the focused
// field, evaluates fields on blur, clears a field's state when its value
// changes, and runs the submission flow.
type Controller struct {
	dialog  *form.Dialog
	fields  map[contact.Field]form.Field
	message *form.TextAreaField

	counter      Counter
	notification Notification
	greeting     string

	phase Phase
	last  Outcome

	keys KeyMap
	help help.Model
	log  zerolog.Logger
}

// NewController builds the form from the fixed layout. It panics if the
// layout does not bind every contact field, which is a programming error.
func NewController(cfg config.ContactConfig) *Controller {
	fields := make([]form.Field, 0, len(layout))
	byField := make(map[contact.Field]form.Field, len(layout))
	for _, b := range layout {
		f := b.build(cfg)
		fields = append(fields, f)
		byField[b.field] = f
	}

	for _, f := range contact.Fields {
		if _, ok := byField[f]; !ok {
			panic(fmt.Sprintf("contact form layout has no input for %s", f))
		}
	}

	message, ok := byField[contact.FieldMessage].(*form.TextAreaField)
	if !ok {
		panic("contact form layout must bind the message to a text area")
	}

	c := &Controller{
		dialog:   form.NewDialog("Get in touch", fields, "Send"),
		fields:   byField,
		message:  message,
		counter:  NewCounter(contact.MinMessageLength),
		greeting: cfg.Greeting,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		log:      logging.Component("contact-form"),
	}
	c.dialog.Help = c.help.ShortHelpView(c.keys.ShortHelp())

	return c
}

func (c *Controller) Init() tea.Cmd {
	return textinput.Blink
}

func (c *Controller) Update(msg tea.Msg) (*Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return c, c.handleKey(msg)
	case notificationExpiredMsg:
		c.notification.Hide()
		return c, nil
	case counterRefreshMsg:
		c.refreshCounter()
		return c, nil
	case tea.WindowSizeMsg:
		c.help.Width = msg.Width
		c.dialog.Help = c.help.ShortHelpView(c.keys.ShortHelp())
		return c, nil
	}

	return c, c.dialog.UpdateFocused(msg)
}

func (c *Controller) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, c.keys.Submit):
		_, cmd := c.Submit()
		return cmd
	case key.Matches(msg, c.keys.Reset):
		return c.Reset()
	case key.Matches(msg, c.keys.Next):
		blurred, cmd := c.dialog.Advance()
		c.handleBlur(blurred)
		return cmd
	case key.Matches(msg, c.keys.Prev):
		blurred, cmd := c.dialog.Retreat()
		c.handleBlur(blurred)
		return cmd
	case key.Matches(msg, c.keys.Enter):
		if c.dialog.ButtonFocused() {
			_, cmd := c.Submit()
			return cmd
		}
		if !c.dialog.IsTextAreaFocused() {
			blurred, cmd := c.dialog.Advance()
			c.handleBlur(blurred)
			return cmd
		}
	}

	return c.forward(msg)
}

// forward sends msg to the focused field and clears its state when the
// value changed.
func (c *Controller) forward(msg tea.Msg) tea.Cmd {
	idx := c.dialog.Focused()
	if idx == form.NoField {
		return nil
	}

	f := c.dialog.FocusedField()
	before := f.Value()
	cmd := c.dialog.UpdateFocused(msg)

	if f.Value() != before {
		c.handleInput(layout[idx].field)
	}

	return cmd
}

func (c *Controller) handleInput(f contact.Field) {
	c.fields[f].ClearState()
	if f == contact.FieldMessage {
		c.refreshCounter()
	}
}

// handleBlur evaluates the field at idx once focus has left it. Empty fields
// are left unvalidated so tabbing through a fresh form stays quiet.
func (c *Controller) handleBlur(idx int) {
	if idx == form.NoField {
		return
	}

	f := layout[idx].field
	value := c.fields[f].Value()

	filled := contact.Trim(value) != ""
	if f == contact.FieldSubject {
		filled = value != ""
	}
	if !filled {
		return
	}

	ok := contact.Predicate(f)(value)
	c.fields[f].Apply(ok)
	c.log.Debug().Str("field", f.Key()).Bool("valid", ok).Msg("field evaluated on blur")
}

// Submit validates every field and either accepts or rejects the form.
//
// On acceptance every field is marked valid, the greeting is shown, and the
// form is cleared back to an unvalidated state with the counter recomputed.
// The returned command hides the greeting after NotificationTTL. On
// rejection each field is marked by its own result and nothing is cleared.
func (c *Controller) Submit() (Outcome, tea.Cmd) {
	c.setPhase(PhaseValidating)

	snap := c.Snapshot()
	results := contact.Check(snap)

	outcome := Outcome{
		Accepted: results.OK(),
		States:   make(map[contact.Field]form.State, len(contact.Fields)),
		Failed:   results.Failed(),
	}

	for _, f := range contact.Fields {
		c.fields[f].Apply(results[f])
		outcome.States[f] = c.fields[f].State()
	}
	c.last = outcome

	if !outcome.Accepted {
		c.setPhase(PhaseRejected)
		failed := make([]string, 0, len(outcome.Failed))
		for _, f := range outcome.Failed {
			failed = append(failed, f.Key())
		}
		c.log.Info().Strs("failed", failed).Msg("submission rejected")
		c.setPhase(PhaseIdle)
		return outcome, nil
	}

	c.setPhase(PhaseAccepted)
	cmd := c.notification.Show(c.renderGreeting(snap.FirstName))
	c.clearValues()
	c.ClearAllStates()
	c.refreshCounter()
	c.log.Info().Msg("submission accepted")
	c.setPhase(PhaseIdle)

	return outcome, cmd
}

func (c *Controller) renderGreeting(firstName string) string {
	text, err := contact.Greeting(c.greeting, firstName)
	if err == nil {
		return text
	}

	c.log.Warn().Err(err).Msg("greeting template failed, using default")
	text, _ = contact.Greeting(contact.DefaultGreeting, firstName)
	return text
}

// Reset clears every value and state. The counter is recomputed on the next
// update so it reads the cleared message.
func (c *Controller) Reset() tea.Cmd {
	c.clearValues()
	c.ClearAllStates()
	c.log.Debug().Msg("form reset")
	return func() tea.Msg { return counterRefreshMsg{} }
}

// ClearAllStates removes the validation state from every field.
func (c *Controller) ClearAllStates() {
	for _, f := range contact.Fields {
		c.fields[f].ClearState()
	}
}

func (c *Controller) clearValues() {
	for _, f := range contact.Fields {
		c.fields[f].Reset()
	}
}

func (c *Controller) refreshCounter() {
	c.counter.Update(c.message.Value())
	c.message.SetFooter(c.counter.View())
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	c.log.Debug().Stringer("from", c.phase).Stringer("to", p).Msg("phase")
	c.phase = p
}

// Snapshot returns the current value of every field.
func (c *Controller) Snapshot() contact.Snapshot {
	var s contact.Snapshot
	for _, f := range contact.Fields {
		s = s.Set(f, c.fields[f].Value())
	}
	return s
}

// Field returns the input bound to f.
func (c *Controller) Field(f contact.Field) form.Field { return c.fields[f] }

// FocusedField returns the field holding focus. ok is false while the Send
// button has focus.
func (c *Controller) FocusedField() (f contact.Field, ok bool) {
	idx := c.dialog.Focused()
	if idx == form.NoField {
		return 0, false
	}
	return layout[idx].field, true
}

func (c *Controller) Counter() Counter           { return c.counter }
func (c *Controller) Notification() Notification { return c.notification }
func (c *Controller) Phase() Phase               { return c.phase }
func (c *Controller) LastOutcome() Outcome       { return c.last }

func (c *Controller) View() string {
	body := c.dialog.View()
	if c.notification.Visible() {
		body = lipgloss.JoinVertical(lipgloss.Left, c.notification.View(), "", body)
	}
	return body
}
