package contactform

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarospm/folio/internal/core/config"
	"github.com/jarospm/folio/internal/core/contact"
	"github.com/jarospm/folio/internal/tui/components/form"
	"github.com/jarospm/folio/pkg/tuitest"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(config.DefaultConfig().Contact)
}

func fill(c *Controller, s contact.Snapshot) {
	for _, f := range contact.Fields {
		c.Field(f).SetValue(s.Value(f))
	}
}

func validSnapshot() contact.Snapshot {
	return contact.Snapshot{
		FirstName: "Renée",
		LastName:  "Dubois",
		Email:     "renee@example.com",
		Subject:   config.DefaultSubjects[0],
		Message:   "I would love to collaborate on a project.",
	}
}

func send(c *Controller, msgs ...tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		var cmd tea.Cmd
		c, cmd = c.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func ctrlS() tea.KeyMsg { return tuitest.Key(tea.KeyCtrlS) }
func ctrlR() tea.KeyMsg { return tuitest.Key(tea.KeyCtrlR) }

func TestController_InitialState(t *testing.T) {
	c := newTestController(t)

	focused, ok := c.FocusedField()
	require.True(t, ok)
	assert.Equal(t, contact.FieldFirstName, focused)
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Equal(t, contact.Snapshot{}, c.Snapshot())
	assert.False(t, c.Notification().Visible())
	assert.False(t, c.Counter().Visible())
	for _, f := range contact.Fields {
		assert.Equal(t, form.StateUnvalidated, c.Field(f).State(), f.Key())
	}
}

func TestController_SubmitAccepted(t *testing.T) {
	c := newTestController(t)
	fill(c, validSnapshot())

	outcome, cmd := c.Submit()

	require.True(t, outcome.Accepted)
	assert.Empty(t, outcome.Failed)
	for _, f := range contact.Fields {
		assert.Equal(t, form.StateValid, outcome.States[f], "%s asserted valid by the pass", f.Key())
		assert.Equal(t, form.StateUnvalidated, c.Field(f).State(), "%s cleared after reset", f.Key())
	}

	assert.True(t, c.Notification().Visible())
	assert.Equal(t, "Thanks, Renée! Your message has been sent.", c.Notification().Text())
	assert.Contains(t, tuitest.StripANSI(c.View()), "Thanks, Renée!")

	assert.Equal(t, contact.Snapshot{}, c.Snapshot(), "inputs cleared")
	assert.Equal(t, "0 / 20", c.Counter().Text())
	assert.False(t, c.Counter().Visible())
	assert.Equal(t, PhaseIdle, c.Phase())

	require.NotNil(t, cmd, "auto-hide scheduled")

	send(c, notificationExpiredMsg{})
	assert.False(t, c.Notification().Visible())
}

func TestController_SubmitAcceptedHidesAfterTTL(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the notification timer")
	}

	c := newTestController(t)
	fill(c, validSnapshot())

	start := time.Now()
	_, cmd := c.Submit()
	require.True(t, c.Notification().Visible())

	msgs := tuitest.Drain(cmd)
	elapsed := time.Since(start)

	require.Len(t, msgs, 1)
	require.IsType(t, notificationExpiredMsg{}, msgs[0])
	assert.GreaterOrEqual(t, elapsed, NotificationTTL-100*time.Millisecond)

	send(c, msgs[0])
	assert.False(t, c.Notification().Visible())
}

func TestController_SubmitRejected(t *testing.T) {
	c := newTestController(t)
	s := validSnapshot()
	s.Message = "0123456789"
	fill(c, s)

	outcome, cmd := c.Submit()

	assert.Nil(t, cmd)
	assert.False(t, outcome.Accepted)
	assert.Equal(t, []contact.Field{contact.FieldMessage}, outcome.Failed)

	assert.Equal(t, form.StateError, c.Field(contact.FieldMessage).State())
	for _, f := range []contact.Field{contact.FieldFirstName, contact.FieldLastName, contact.FieldEmail, contact.FieldSubject} {
		assert.Equal(t, form.StateValid, c.Field(f).State(), f.Key())
	}

	assert.False(t, c.Notification().Visible())
	assert.Equal(t, s, c.Snapshot(), "values retained")
	assert.Contains(t, tuitest.StripANSI(c.View()), contact.FieldMessage.Hint())
}

func TestController_SubmitEmptyFormMarksEveryField(t *testing.T) {
	c := newTestController(t)

	outcome, _ := c.Submit()

	assert.Equal(t, contact.Fields, outcome.Failed)
	for _, f := range contact.Fields {
		assert.Equal(t, form.StateError, c.Field(f).State(), f.Key())
	}
}

func TestController_ResubmitReplacesStates(t *testing.T) {
	c := newTestController(t)
	s := validSnapshot()
	s.Email = "nope"
	fill(c, s)

	_, _ = c.Submit()
	require.Equal(t, form.StateError, c.Field(contact.FieldEmail).State())

	c.Field(contact.FieldEmail).SetValue("ok@example.com")
	c.Field(contact.FieldFirstName).SetValue("R2D2")
	_, _ = c.Submit()

	assert.Equal(t, form.StateValid, c.Field(contact.FieldEmail).State())
	assert.Equal(t, form.StateError, c.Field(contact.FieldFirstName).State())
}

func TestController_CtrlSSubmitsAndIsConsumed(t *testing.T) {
	c := newTestController(t)
	s := validSnapshot()
	s.Message = "short"
	fill(c, s)

	// Move focus into the message text area.
	send(c, tuitest.KeyShiftTab(), tuitest.KeyShiftTab())
	focused, ok := c.FocusedField()
	require.True(t, ok)
	require.Equal(t, contact.FieldMessage, focused)

	send(c, ctrlS())

	assert.False(t, c.LastOutcome().Accepted)
	assert.Equal(t, "short", c.Field(contact.FieldMessage).Value(), "submit key not forwarded")
}

func TestController_EnterOnSendButtonSubmits(t *testing.T) {
	c := newTestController(t)
	fill(c, validSnapshot())

	send(c, tuitest.KeyShiftTab())
	_, ok := c.FocusedField()
	require.False(t, ok, "send button focused")

	cmd := send(c, tuitest.KeyEnter())

	assert.True(t, c.LastOutcome().Accepted)
	assert.True(t, c.Notification().Visible())
	assert.NotNil(t, cmd)
}

func TestController_EnterInMessageInsertsNewline(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyShiftTab(), tuitest.KeyShiftTab())

	send(c, tuitest.Type("hi"), tuitest.KeyEnter(), tuitest.Type("there"))

	assert.Equal(t, "hi\nthere", c.Field(contact.FieldMessage).Value())
	focused, _ := c.FocusedField()
	assert.Equal(t, contact.FieldMessage, focused)
}

func TestController_EnterAdvancesTextFields(t *testing.T) {
	c := newTestController(t)

	send(c, tuitest.Type("Ada"), tuitest.KeyEnter())

	focused, _ := c.FocusedField()
	assert.Equal(t, contact.FieldLastName, focused)
	assert.Equal(t, form.StateValid, c.Field(contact.FieldFirstName).State())
}

func TestController_BlurEvaluatesFilledFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  form.State
	}{
		{"empty stays unvalidated", "", form.StateUnvalidated},
		{"whitespace stays unvalidated", "   ", form.StateUnvalidated},
		{"invalid marks error", "R2D2", form.StateError},
		{"valid marks valid", "Renée Dubois", form.StateValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			send(c, tuitest.Type(tt.input), tuitest.KeyTab())
			assert.Equal(t, tt.want, c.Field(contact.FieldFirstName).State())
		})
	}
}

func TestController_ShiftTabBlurEvaluates(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyTab(), tuitest.Type("x"), tuitest.KeyShiftTab())

	assert.Equal(t, form.StateError, c.Field(contact.FieldLastName).State())
	assert.Equal(t, form.StateUnvalidated, c.Field(contact.FieldFirstName).State())
}

func TestController_InputClearsState(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.Type("R2D2"), tuitest.KeyTab(), tuitest.KeyShiftTab())
	require.Equal(t, form.StateError, c.Field(contact.FieldFirstName).State())

	send(c, tuitest.Type("x"))
	assert.Equal(t, form.StateUnvalidated, c.Field(contact.FieldFirstName).State())
}

func TestController_KeysThatDoNotChangeValueKeepState(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.Type("R2D2"), tuitest.KeyTab(), tuitest.KeyShiftTab())

	send(c, tuitest.Key(tea.KeyLeft))
	assert.Equal(t, form.StateError, c.Field(contact.FieldFirstName).State())
}

func TestController_SubjectSelectionClearsState(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab())

	focused, _ := c.FocusedField()
	require.Equal(t, contact.FieldSubject, focused)

	c.Field(contact.FieldSubject).MarkError()
	send(c, tuitest.KeyDown())

	assert.Equal(t, config.DefaultSubjects[0], c.Field(contact.FieldSubject).Value())
	assert.Equal(t, form.StateUnvalidated, c.Field(contact.FieldSubject).State())

	send(c, tuitest.KeyTab())
	assert.Equal(t, form.StateValid, c.Field(contact.FieldSubject).State())
}

func TestController_SubjectPlaceholderBlurStaysUnvalidated(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab(), tuitest.KeyTab())

	assert.Equal(t, form.StateUnvalidated, c.Field(contact.FieldSubject).State())
}

func TestController_Counter(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyShiftTab(), tuitest.KeyShiftTab())

	send(c, tuitest.Type("a"))
	assert.Equal(t, "1 / 20", c.Counter().Text())
	assert.True(t, c.Counter().Visible())
	assert.False(t, c.Counter().Valid())

	send(c, tuitest.Type(strings.Repeat("b", 19)))
	assert.Equal(t, "20 / 20", c.Counter().Text())
	assert.True(t, c.Counter().Visible())
	assert.True(t, c.Counter().Valid())
	assert.Contains(t, tuitest.StripANSI(c.View()), "20 / 20")
}

func TestController_CounterCountsUntrimmedLength(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyShiftTab(), tuitest.KeyShiftTab())

	send(c, tuitest.Type("   "))
	assert.Equal(t, 3, c.Counter().Count())
	assert.True(t, c.Counter().Visible())
}

func TestController_ResetDefersCounter(t *testing.T) {
	c := newTestController(t)
	send(c, tuitest.KeyShiftTab(), tuitest.KeyShiftTab(), tuitest.Type("hello"))
	c.Field(contact.FieldEmail).SetValue("x")
	c.Field(contact.FieldEmail).MarkError()

	cmd := send(c, ctrlR())

	assert.Equal(t, contact.Snapshot{}, c.Snapshot())
	assert.Equal(t, form.StateUnvalidated, c.Field(contact.FieldEmail).State())
	assert.Equal(t, 5, c.Counter().Count(), "counter not recomputed until the next update")

	msgs := tuitest.Drain(cmd)
	require.Len(t, msgs, 1)
	send(c, msgs[0])

	assert.Equal(t, 0, c.Counter().Count())
	assert.False(t, c.Counter().Visible())
}

func TestController_ClearAllStatesIdempotent(t *testing.T) {
	c := newTestController(t)
	_, _ = c.Submit()

	c.ClearAllStates()
	once := make(map[contact.Field]form.State)
	for _, f := range contact.Fields {
		once[f] = c.Field(f).State()
	}

	c.ClearAllStates()
	for _, f := range contact.Fields {
		assert.Equal(t, once[f], c.Field(f).State())
		assert.Equal(t, form.StateUnvalidated, c.Field(f).State())
	}
}

func TestController_OverlappingHideTimers(t *testing.T) {
	c := newTestController(t)

	fill(c, validSnapshot())
	_, first := c.Submit()
	fill(c, validSnapshot())
	_, second := c.Submit()
	require.NotNil(t, first)
	require.NotNil(t, second)

	// The first timer fires and hides the banner from the second submit.
	send(c, notificationExpiredMsg{})
	assert.False(t, c.Notification().Visible())

	send(c, notificationExpiredMsg{})
	assert.False(t, c.Notification().Visible())
}

func TestController_CustomGreeting(t *testing.T) {
	cfg := config.DefaultConfig().Contact
	cfg.Greeting = "Merci {{.FirstName | upper}}"
	c := NewController(cfg)
	fill(c, validSnapshot())

	_, _ = c.Submit()
	assert.Equal(t, "Merci RENÉE", c.Notification().Text())
}

func TestController_BrokenGreetingFallsBack(t *testing.T) {
	cfg := config.DefaultConfig().Contact
	cfg.Greeting = "{{.Nope}}"
	c := NewController(cfg)
	fill(c, validSnapshot())

	_, _ = c.Submit()
	assert.Equal(t, "Thanks, Renée! Your message has been sent.", c.Notification().Text())
}

func TestNewController_PanicsOnIncompleteLayout(t *testing.T) {
	saved := layout
	t.Cleanup(func() { layout = saved })

	layout = saved[:len(saved)-1]
	assert.Panics(t, func() { NewController(config.DefaultConfig().Contact) })
}
