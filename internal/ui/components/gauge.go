package components

import (
	"strings"

	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

var gaugeLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorBodyText)

// Gauge renders a semicircle arc with a formatted percentage under it.
type Gauge struct {
	Label    string
	Value    string  // already formatted, e.g. "42.0%"
	Fraction float64 // arc fill, clamped to [0, 1]
	Width    int
}

// Render returns the gauge as a block of lines.
func (g Gauge) Render() []string {
	w := max(g.Width, 10)
	arcH := min(max(w/4, 3), 6)

	canvas := NewBrailleCanvas(w, arcH)
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) - 1
	outerR := min(cy, cx-0.5)
	innerR := outerR * 0.62

	fill := min(max(g.Fraction, 0), 1)
	canvas.DrawArc(cx, cy, outerR, innerR, fill, len(theme.SeriesPalette))
	arc := canvas.Render(theme.SeriesPalette, theme.HexGaugeDim)

	valueColor := theme.Gradient(fill, theme.SeriesPalette)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(valueColor)).Bold(true).Render(g.Value)

	block := []string{CenterText(gaugeLabelStyle.Render(Fit(g.Label, w)), w), ""}
	block = append(block, arc...)
	return append(block, CenterText(value, w))
}

// RenderGaugeRow renders multiple gauges side by side.
func RenderGaugeRow(gauges []Gauge, gap int) string {
	blocks := make([][]string, 0, len(gauges))
	for _, g := range gauges {
		blocks = append(blocks, g.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
