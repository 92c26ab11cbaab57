package contactform

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarospm/folio/pkg/tuitest"
)

func TestNotification(t *testing.T) {
	var n Notification
	assert.False(t, n.Visible())
	assert.Empty(t, n.View())

	cmd := n.Show("hello")
	require.NotNil(t, cmd)
	assert.True(t, n.Visible())
	assert.Equal(t, "hello", n.Text())
	assert.Contains(t, tuitest.StripANSI(n.View()), "hello")

	n.Hide()
	assert.False(t, n.Visible())
	n.Hide()
	assert.False(t, n.Visible())
}

func TestNotificationTTL(t *testing.T) {
	assert.Equal(t, 3*time.Second, NotificationTTL)
}

func TestCounter(t *testing.T) {
	c := NewCounter(20)
	assert.Equal(t, "0 / 20", c.Text())
	assert.False(t, c.Visible())
	assert.Empty(t, c.View())

	c.Update("é")
	assert.Equal(t, "1 / 20", c.Text())
	assert.False(t, c.Valid())

	c.Update(strings.Repeat("😀", 10))
	assert.Equal(t, "20 / 20", c.Text(), "astral characters count as two")
	assert.True(t, c.Valid())

	c.Update("01234567890123456789")
	assert.True(t, c.Valid())
	assert.Equal(t, "20 / 20", tuitest.StripANSI(c.View()))
}
