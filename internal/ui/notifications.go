package ui

import (
	"time"

	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// notificationTTL is how long a banner stays on screen.
const notificationTTL = 5 * time.Second

type Notification struct {
	Message   string
	CreatedAt time.Time
}

type NotificationManager struct {
	active  *Notification
	enabled bool
	bell    bool
	now     func() time.Time
}

func NewNotificationManager(enabled, bell bool) *NotificationManager {
	return &NotificationManager{enabled: enabled, bell: bell, now: time.Now}
}

// SetMessage shows a transient notification. It is a no-op when
// notifications are disabled.
func (nm *NotificationManager) SetMessage(msg string) {
	if !nm.enabled {
		return
	}
	nm.active = &Notification{
		Message:   msg,
		CreatedAt: nm.now(),
	}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil {
		return nil
	}
	if nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.active != nil && nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		nm.active = nil
	}
}

func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(theme.ColorMauve)

	bellChar := ""
	if nm.bell {
		bellChar = "\a"
	}

	return bellChar + style.Render(n.Message)
}
