package components

import (
	"strings"

	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Package-level cached styles for table rendering.
var (
	rowEvenStyle     = lipgloss.NewStyle()
	rowOddStyle      = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	tableHeaderStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true)
	tableCellStyle   = lipgloss.NewStyle().Foreground(theme.ColorBodyText)
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// DataTable renders pre-formatted cells in aligned columns. Numeric
// columns are right-aligned.
type DataTable struct {
	Columns []string
	Rows    [][]string
	Numeric []bool
	Width   int
	Offset  int // first row shown
	Limit   int // rows shown; 0 shows all
}

const colGap = 2

// Widths sizes each column to its widest cell, shrinking the widest
// columns until the table fits Width.
func (t DataTable) Widths() []int {
	n := len(t.Columns)
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	widths := make([]int, n)
	for i, c := range t.Columns {
		widths[i] = VisualWidth(c)
	}
	for _, r := range t.Rows {
		for i, cell := range r {
			widths[i] = max(widths[i], VisualWidth(cell))
		}
	}
	if t.Width <= 0 || n == 0 {
		return widths
	}
	for total(widths)+colGap*(n-1) > t.Width {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			break
		}
		widths[widest]--
	}
	return widths
}

func total(ws []int) int {
	sum := 0
	for _, w := range ws {
		sum += w
	}
	return sum
}

func (t DataTable) numeric(i int) bool {
	return i < len(t.Numeric) && t.Numeric[i]
}

func (t DataTable) line(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = Fit(cells[i], w)
		}
		if t.numeric(i) {
			parts[i] = PadLeft(cell, w)
		} else {
			parts[i] = PadRight(cell, w)
		}
	}
	return style.Render(strings.Join(parts, strings.Repeat(" ", colGap)))
}

// Render returns the header, a separator and the visible rows.
func (t DataTable) Render() string {
	widths := t.Widths()
	lines := []string{
		t.line(t.Columns, widths, tableHeaderStyle),
		theme.MutedStyle.Render(strings.Repeat("─", total(widths)+colGap*max(len(widths)-1, 0))),
	}

	start := min(max(t.Offset, 0), len(t.Rows))
	end := len(t.Rows)
	if t.Limit > 0 {
		end = min(end, start+t.Limit)
	}
	for i := start; i < end; i++ {
		lines = append(lines, RowBackground(i).Render(t.line(t.Rows[i], widths, tableCellStyle)))
	}
	return strings.Join(lines, "\n")
}
