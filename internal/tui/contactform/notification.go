package contactform

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jarospm/folio/internal/core/styles"
)

// NotificationTTL is how long the success notification stays on screen.
const NotificationTTL = 3 * time.Second

type notificationExpiredMsg time.Time

func scheduleHide() tea.Cmd {
	return tea.Tick(NotificationTTL, func(t time.Time) tea.Msg {
		return notificationExpiredMsg(t)
	})
}

// Notification is the success banner shown after an accepted submission.
// Each Show schedules its own hide; timers are never cancelled or merged, so
// an earlier timer can hide a banner shown later.
type Notification struct {
	text    string
	visible bool
}

// Show displays text and returns the command that hides it after
// NotificationTTL.
func (n *Notification) Show(text string) tea.Cmd {
	n.text = text
	n.visible = true
	return scheduleHide()
}

// Hide removes the banner. Hiding a hidden banner is a no-op.
func (n *Notification) Hide() {
	n.visible = false
}

func (n Notification) Visible() bool { return n.visible }
func (n Notification) Text() string  { return n.text }

func (n Notification) View() string {
	if !n.visible {
		return ""
	}
	return styles.NotificationStyle.Render(styles.IconMail + " " + n.text)
}
