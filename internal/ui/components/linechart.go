package components

import (
	"math"
	"strings"

	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// AxisTick is a y-axis label at a data value.
type AxisTick struct {
	Value float64
	Label string
}

// LineChart plots a series on a braille canvas with a labelled y-axis
// and the first and last x labels underneath.
type LineChart struct {
	Values []float64
	Labels []string
	Ticks  []AxisTick
	Width  int // total width including the axis
	Height int // plot rows
}

var axisStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)

// Render returns the chart as a block of lines. Fewer than two values
// render an empty plot.
func (c LineChart) Render() []string {
	h := max(c.Height, 3)
	axisW := 0
	for _, t := range c.Ticks {
		axisW = max(axisW, VisualWidth(t.Label))
	}
	plotW := max(c.Width-axisW-2, 8)

	canvas := NewBrailleCanvas(plotW, h)
	lo, hi := c.domain()
	if len(c.Values) >= 2 {
		pw, ph := canvas.PixelWidth()-1, canvas.PixelHeight()-1
		px := func(i int) int { return int(math.Round(float64(i) * float64(pw) / float64(len(c.Values)-1))) }
		py := func(v float64) int { return ph - int(math.Round(scale(v, lo, hi)*float64(ph))) }
		for i := 1; i < len(c.Values); i++ {
			canvas.Line(px(i-1), py(c.Values[i-1]), px(i), py(c.Values[i]), 0)
		}
	}
	plot := canvas.Render(theme.SeriesPalette, theme.HexGrid)

	axis := make([]string, h)
	for _, t := range c.Ticks {
		row := h - 1 - int(math.Round(scale(t.Value, lo, hi)*float64(h-1)))
		if row >= 0 && row < h && axis[row] == "" {
			axis[row] = t.Label
		}
	}

	lines := make([]string, 0, h+1)
	for i, row := range plot {
		lines = append(lines, axisStyle.Render(PadLeft(axis[i], axisW)+" ┤")+row)
	}

	if n := len(c.Labels); n > 0 {
		first, last := c.Labels[0], c.Labels[n-1]
		gap := plotW - VisualWidth(first) - VisualWidth(last)
		footer := first
		if n > 1 && gap > 0 {
			footer += strings.Repeat(" ", gap) + last
		}
		lines = append(lines, axisStyle.Render(strings.Repeat(" ", axisW+2)+footer))
	}
	return lines
}

func (c LineChart) domain() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range c.Values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	for _, t := range c.Ticks {
		lo, hi = math.Min(lo, t.Value), math.Max(hi, t.Value)
	}
	if math.IsInf(lo, 0) {
		return 0, 1
	}
	return lo, hi
}

// scale maps v into [0, 1] over the domain; a flat domain maps to the middle.
func scale(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}
