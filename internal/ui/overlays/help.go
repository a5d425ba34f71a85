package overlays

import (
	"fmt"
	"strings"

	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

type HelpOverlay struct {
	Labels   i18n.Catalog
	AnimTick uint
}

func NewHelpOverlay(labels i18n.Catalog) *HelpOverlay {
	return &HelpOverlay{Labels: labels}
}

func (h *HelpOverlay) Render(width, height int) string {
	l := h.Labels
	title := theme.GradientText(l.T("keyboard_shortcuts"), h.AnimTick)

	bindings := []struct {
		key  string
		desc string
	}{
		{"1 / 2 / 3", l.T("help_switch_views")},
		{"Tab / Shift+Tab", l.T("help_cycle_views")},
		{"j / k / PgUp / PgDn", l.T("help_scroll")},
		{"", ""},
		{"?", l.T("help_toggle_help")},
		{"s", l.T("help_open_settings")},
		{"r", l.T("help_force_reload")},
		{"", ""},
		{"q / Ctrl+C", l.T("help_quit")},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		maxKeyLen = max(maxKeyLen, len(b.key))
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, fmt.Sprintf("  %s%s",
			keyStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, b.key)),
			descStyle.Render("  "+b.desc),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(l.T("help_close"))

	boxWidth := 60
	if width < 64 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
