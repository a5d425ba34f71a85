package components

import (
	"strings"

	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Cached styles for stat card rendering.
var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard renders a KPI: big value, optional delta line, label.
type StatCard struct {
	Value string // formatted, e.g. "$2.5M"
	Delta string // formatted change, e.g. "+12.5%"
	Trend int    // sign of the change; colors the delta
	Sub   string // text after the delta, e.g. "vs previous"
	Label string
	Width int
	Color lipgloss.Color // value color (optional)
}

// Render returns the stat card as a block of lines.
func (s StatCard) Render() []string {
	w := max(s.Width, 8)

	style := statValueStyle
	if s.Color != "" {
		style = lipgloss.NewStyle().Foreground(s.Color).Bold(true)
	}

	lines := []string{CenterText(style.Render(Fit(s.Value, w)), w)}
	if s.Delta != "" {
		delta := lipgloss.NewStyle().Foreground(theme.TrendColor(s.Trend)).Render(trendArrow(s.Trend) + s.Delta)
		if s.Sub != "" {
			delta += " " + statLabelStyle.Render(s.Sub)
		}
		lines = append(lines, CenterText(delta, w))
	}
	return append(lines, CenterText(statLabelStyle.Render(Fit(s.Label, w)), w))
}

func trendArrow(trend int) string {
	switch {
	case trend > 0:
		return "▲ "
	case trend < 0:
		return "▼ "
	}
	return "■ "
}

// RenderStatRow renders multiple stat cards side by side.
func RenderStatRow(cards []StatCard, gap int) string {
	blocks := make([][]string, 0, len(cards))
	for _, c := range cards {
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
