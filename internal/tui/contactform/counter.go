package contactform

import (
	"fmt"

	"github.com/jarospm/folio/internal/core/contact"
	"github.com/jarospm/folio/internal/core/styles"
)

// Counter tracks the length of the message field against the minimum the
// message predicate requires. It counts the raw value, so surrounding
// whitespace shows in the count even though validation trims it.
type Counter struct {
	min   int
	count int
}

// NewCounter returns a counter measured against min.
func NewCounter(min int) Counter {
	return Counter{min: min}
}

// Update recomputes the count from the current message text.
func (c *Counter) Update(message string) {
	c.count = contact.Length(message)
}

func (c Counter) Count() int { return c.count }

// Text returns the counter label, "<count> / <minimum>".
func (c Counter) Text() string {
	return fmt.Sprintf("%d / %d", c.count, c.min)
}

// Visible reports whether the counter is shown. An empty message hides it.
func (c Counter) Visible() bool { return c.count > 0 }

// Valid reports whether the count has reached the minimum. A counter that
// is not valid renders in the error color.
func (c Counter) Valid() bool { return c.count >= c.min }

func (c Counter) View() string {
	if !c.Visible() {
		return ""
	}
	if c.Valid() {
		return styles.CounterValidStyle.Render(c.Text())
	}
	return styles.CounterErrorStyle.Render(c.Text())
}
