package components

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// PieSlice is one share of the whole.
type PieSlice struct {
	Label    string
	Value    float64
	Fraction float64 // 0..1
}

// PieChart renders a braille donut with a legend. Legend values and
// percentages are formatted with Options.
type PieChart struct {
	Slices      []PieSlice
	ChartSize   int // character width of the donut
	Options     format.Options
	OthersLabel string
	EmptyLabel  string
}

// Render returns the pie chart with legend as a block of lines.
func (p PieChart) Render() string {
	palette := theme.SeriesPalette
	slices := p.prepareSlices(len(palette))
	if len(slices) == 0 {
		empty := p.EmptyLabel
		if empty == "" {
			empty = "No data"
		}
		return theme.MutedStyle.Render("  " + empty)
	}

	chartSize := max(p.ChartSize, 8)
	canvas := NewBrailleCanvas(chartSize, max(chartSize/2, 4))
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) / 2
	outerR := math.Min(cx, cy) - 0.5
	innerR := outerR * 0.45

	drawFracs := enforceMinArc(slices, outerR)
	start := 0.0
	for i := range slices {
		sweep := drawFracs[i] * 2 * math.Pi
		if sweep < 0.001 {
			continue
		}
		end := math.Min(start+sweep, 2*math.Pi)
		canvas.DrawRing(cx, cy, outerR, innerR, start, end, min(i, len(palette)-1))
		start = end
	}

	chart := canvas.Render(palette, theme.HexPieBg)
	legend := p.buildLegend(slices, palette)
	return strings.Join(JoinHorizontal([][]string{chart, legend}, 3), "\n")
}

// prepareSlices drops empty slices, sorts by size and folds the tail
// into a single Others slice so every slice gets its own color.
func (p PieChart) prepareSlices(maxColors int) []PieSlice {
	var filtered []PieSlice
	for _, s := range p.Slices {
		if s.Fraction > 0.00005 {
			filtered = append(filtered, s)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Fraction != filtered[j].Fraction {
			return filtered[i].Fraction > filtered[j].Fraction
		}
		return filtered[i].Label < filtered[j].Label
	})

	if len(filtered) <= maxColors {
		return filtered
	}

	others := PieSlice{Label: p.OthersLabel}
	if others.Label == "" {
		others.Label = "Others"
	}
	for _, s := range filtered[maxColors-1:] {
		others.Value += s.Value
		others.Fraction += s.Fraction
	}
	return append(filtered[:maxColors-1:maxColors-1], others)
}

// enforceMinArc returns draw fractions where every slice spans at least
// four pixels of arc, taken from the largest slice. The legend keeps the
// real numbers.
func enforceMinArc(slices []PieSlice, outerR float64) []float64 {
	fracs := make([]float64, len(slices))
	for i, s := range slices {
		fracs[i] = s.Fraction
	}
	if len(fracs) <= 1 || outerR <= 0 {
		return fracs
	}

	minFrac := (4.0 / outerR) / (2 * math.Pi)

	var deficit float64
	largest := 0
	for i, f := range fracs {
		if f > fracs[largest] {
			largest = i
		}
		if f > 0 && f < minFrac {
			deficit += minFrac - f
			fracs[i] = minFrac
		}
	}
	fracs[largest] -= deficit
	return fracs
}

// buildLegend creates the legend with aligned columns.
func (p PieChart) buildLegend(slices []PieSlice, palette []string) []string {
	type entry struct {
		hex, label, pct, val string
	}

	var maxLabel, maxPct, maxVal int
	entries := make([]entry, len(slices))
	for i, s := range slices {
		e := entry{
			hex:   palette[min(i, len(palette)-1)],
			label: s.Label,
			pct:   format.Percent(s.Fraction, p.Options),
			val:   format.Auto(s.Value, p.Options),
		}
		entries[i] = e
		maxLabel = max(maxLabel, VisualWidth(e.label))
		maxPct = max(maxPct, VisualWidth(e.pct))
		maxVal = max(maxVal, VisualWidth(e.val))
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(e.hex))
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s",
			ColoredSquare(e.hex),
			labelStyle.Render(PadRight(e.label, maxLabel)),
			color.Render(PadLeft(e.pct, maxPct)),
			color.Render(PadLeft(e.val, maxVal)),
		))
	}
	return lines
}
