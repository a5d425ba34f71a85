package components

import (
	"strings"
	"time"

	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders key hints on the left and data freshness on the right.
type StatusBar struct {
	Width    int
	Labels   i18n.Catalog
	Loaded   bool
	Age      time.Duration // time since the dashboard was last loaded
	Modified string        // relative modification time of the source
}

// Render returns the status bar: separator + key hints + freshness.
func (s StatusBar) Render() string {
	sep := theme.MutedStyle.Render(strings.Repeat("─", max(s.Width, 0)))
	left := s.renderKeyHints()
	right := s.renderFreshness()

	gap := s.Width - VisualWidth(left) - VisualWidth(right) - 2
	if right == "" || gap < 1 {
		return sep + "\n" + left
	}
	return sep + "\n" + left + strings.Repeat(" ", gap) + right
}

// Key hints cycle through the series palette.
var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
}

func (s StatusBar) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"?", s.Labels.T("status_help")},
		{"s", s.Labels.T("status_settings")},
		{"r", s.Labels.T("status_refresh")},
		{"q", s.Labels.T("status_quit")},
	}

	parts := make([]string, 0, len(hints))
	for i, h := range hints {
		keyStyle := lipgloss.NewStyle().Foreground(keyColors[i%len(keyColors)]).Bold(true)
		parts = append(parts, keyStyle.Render(h.key)+" "+theme.MutedStyle.Render(h.desc))
	}
	return "  " + strings.Join(parts, "  ")
}

// renderFreshness shows the age badge and the source modification time.
func (s StatusBar) renderFreshness() string {
	if !s.Loaded {
		return ""
	}
	badge := lipgloss.NewStyle().
		Foreground(theme.AgeColor(s.Age)).
		Render("● " + s.Labels.Tf("updated", format.Age(s.Age)))
	if s.Modified == "" {
		return badge
	}
	return theme.MutedStyle.Render(s.Labels.Tf("modified", s.Modified)) + "  " + badge
}
