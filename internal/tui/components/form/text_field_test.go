package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTextField(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "letters only")
		assert.Equal(t, "Name", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
		assert.Equal(t, StateUnvalidated, f.State())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()
		assert.True(t, f.Focused())

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		field, cmd := f.Update(runes("a"))
		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("typing when focused", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.Focus()
		field, _ := f.Update(runes("Zoë"))
		assert.Equal(t, "Zoë", field.Value())
	})

	t.Run("set and reset", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.SetValue("typed text")
		assert.Equal(t, "typed text", f.Value())

		f.Reset()
		assert.Empty(t, f.Value())
	})

	t.Run("reset leaves state alone", func(t *testing.T) {
		f := NewTextField("Name", "", "")
		f.MarkError()
		f.Reset()
		assert.Equal(t, StateError, f.State())
	})

	t.Run("view renders label and hint on error", func(t *testing.T) {
		f := NewTextField("Name", "placeholder", "letters only")
		assert.Contains(t, ansi.Strip(f.View()), "Name")

		f.MarkError()
		assert.Contains(t, ansi.Strip(f.View()), "letters only")
	})
}
