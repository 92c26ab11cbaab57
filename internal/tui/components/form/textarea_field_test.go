package form

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTextAreaField(t *testing.T) {
	t.Run("creation", func(t *testing.T) {
		f := NewTextAreaField("Message", "say hi", "")
		assert.Equal(t, "Message", f.Label())
		assert.Empty(t, f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextAreaField("Message", "", "")
		field, _ := f.Update(runes("a"))
		assert.Empty(t, field.Value())
	})

	t.Run("typing when focused", func(t *testing.T) {
		f := NewTextAreaField("Message", "", "")
		f.Focus()
		field, _ := f.Update(runes("hello"))
		assert.Equal(t, "hello", field.Value())
	})

	t.Run("set and reset", func(t *testing.T) {
		f := NewTextAreaField("Message", "", "")
		f.SetValue("line one")
		assert.Equal(t, "line one", f.Value())

		f.Reset()
		assert.Empty(t, f.Value())
	})

	t.Run("footer rendered under input", func(t *testing.T) {
		f := NewTextAreaField("Message", "", "")
		f.SetFooter("3 / 20")
		assert.Contains(t, ansi.Strip(f.View()), "3 / 20")

		f.SetFooter("")
		assert.NotContains(t, ansi.Strip(f.View()), "/ 20")
	})
}
