package components

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadAndCenter(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"pad right", PadRight("ab", 5), "ab   "},
		{"pad left", PadLeft("ab", 5), "   ab"},
		{"no pad when wide", PadLeft("abcdef", 3), "abcdef"},
		{"center", CenterText("ab", 6), "  ab  "},
		{"center odd", CenterText("ab", 5), " ab  "},
		{"wide runes", PadRight("概要", 6), "概要  "},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}

func TestFit(t *testing.T) {
	got := Fit("Revenue", 4)
	assert.LessOrEqual(t, VisualWidth(got), 4)
	assert.True(t, strings.HasSuffix(got, "…"), "Fit = %q", got)
	assert.Equal(t, "abc", Fit("abc", 10))
	assert.Empty(t, Fit("abc", 0))
}

func TestJoinHorizontal(t *testing.T) {
	got := JoinHorizontal([][]string{{"a", "bbb"}, {"c"}}, 1)
	assert.Equal(t, []string{"a   c", "bbb  "}, got)
}

func TestCenterBlock(t *testing.T) {
	assert.Equal(t, "  ab\n  abcd", CenterBlock("ab\nabcd", 8))
}

func TestBrailleCanvas_Line(t *testing.T) {
	c := NewBrailleCanvas(4, 1)
	c.Line(0, 0, 7, 3, 0)
	assert.True(t, c.On(0, 0), "start point")
	assert.True(t, c.On(7, 3), "end point")
	assert.False(t, c.On(7, 0), "pixel off the line")

	lines := c.Render([]string{"#ffffff"}, "#000000")
	require.Len(t, lines, 1)
	assert.Equal(t, 4, VisualWidth(lines[0]))
}

func TestBrailleCanvas_OutOfBounds(t *testing.T) {
	c := NewBrailleCanvas(1, 1)
	c.Set(-1, 0, 0)
	c.Set(2, 0, 0)
	assert.False(t, c.On(-1, 0))
	assert.False(t, c.On(2, 0))
	assert.Equal(t, " ", c.Render(nil, "#000000")[0])
}

func TestStatCard(t *testing.T) {
	lines := StatCard{Value: "$2.5M", Delta: "+12.5%", Trend: 1, Sub: "vs previous", Label: "Revenue", Width: 30}.Render()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "$2.5M")
	assert.Contains(t, lines[1], "▲ +12.5%")
	assert.Contains(t, lines[2], "Revenue")

	lines = StatCard{Value: format.Missing, Label: "Users", Width: 20}.Render()
	assert.Len(t, lines, 2, "card without delta")
}

func TestGauge(t *testing.T) {
	lines := Gauge{Label: "Quota", Value: "42.0%", Fraction: 0.42, Width: 20}.Render()
	assert.Contains(t, lines[0], "Quota")
	assert.Contains(t, lines[len(lines)-1], "42.0%")
}

func TestDataTable(t *testing.T) {
	tbl := DataTable{
		Columns: []string{"Region", "Sales"},
		Rows:    [][]string{{"North", "$1,234.50"}, {"South", "$99"}},
		Numeric: []bool{false, true},
	}
	lines := strings.Split(tbl.Render(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "North   $1,234.50", lines[2])
	assert.Equal(t, "South         $99", lines[3], "numeric column right-aligns")
}

func TestDataTable_WidthsShrink(t *testing.T) {
	tbl := DataTable{
		Columns: []string{"Name", "Value"},
		Rows:    [][]string{{strings.Repeat("x", 40), "1"}},
		Width:   20,
	}
	w := tbl.Widths()
	assert.LessOrEqual(t, w[0]+w[1]+colGap, 20, "widths %v", w)
}

func TestDataTable_Window(t *testing.T) {
	tbl := DataTable{
		Columns: []string{"n"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
		Offset:  1,
		Limit:   1,
	}
	lines := strings.Split(tbl.Render(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2", strings.TrimSpace(lines[2]))
}

func TestPieChart_Legend(t *testing.T) {
	p := PieChart{
		Slices: []PieSlice{
			{Label: "Pro", Value: 1, Fraction: 0.25},
			{Label: "Free", Value: 3, Fraction: 0.75},
		},
		ChartSize: 10,
		Options:   format.Options{Locale: "de-DE"},
	}
	out := p.Render()
	assert.Contains(t, out, "75,0%")
	assert.Contains(t, out, "25,0%")
	assert.Less(t, strings.Index(out, "Free"), strings.Index(out, "Pro"), "largest slice first")
}

func TestPieChart_Others(t *testing.T) {
	var slices []PieSlice
	for _, l := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		slices = append(slices, PieSlice{Label: l, Value: 1, Fraction: 1.0 / 7})
	}
	got := PieChart{Slices: slices, OthersLabel: "Rest"}.prepareSlices(5)
	require.Len(t, got, 5)
	assert.Equal(t, "Rest", got[4].Label)
	assert.Equal(t, 3.0, got[4].Value)
}

func TestPieChart_Empty(t *testing.T) {
	assert.Contains(t, PieChart{EmptyLabel: "Keine Daten"}.Render(), "Keine Daten")
}

func TestEnforceMinArc(t *testing.T) {
	fracs := enforceMinArc([]PieSlice{{Fraction: 0.999}, {Fraction: 0.001}}, 10)
	want := (4.0 / 10) / (2 * math.Pi)
	assert.GreaterOrEqual(t, fracs[1], want-1e-9)
	assert.InDelta(t, 1.0, fracs[0]+fracs[1], 1e-4, "fractions still sum to 1")
}

func TestLineChart(t *testing.T) {
	lc := LineChart{
		Values: []float64{100, 700, 2500},
		Labels: []string{"03-01", "03-02", "03-03"},
		Ticks:  []AxisTick{{Value: 100, Label: "100"}, {Value: 2500, Label: "2.5k"}},
		Width:  40,
		Height: 4,
	}
	lines := lc.Render()
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "2.5k"), "top row carries the max tick: %q", lines[0])
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[3]), "100"), "bottom row carries the min tick: %q", lines[3])
	assert.Contains(t, lines[4], "03-01")
	assert.Contains(t, lines[4], "03-03")
}

func TestLineChart_SinglePoint(t *testing.T) {
	assert.Len(t, LineChart{Values: []float64{5}, Width: 20, Height: 3}.Render(), 3)
}

func TestStatusBar(t *testing.T) {
	sb := StatusBar{
		Width:    120,
		Labels:   i18n.New("en"),
		Loaded:   true,
		Age:      42 * time.Second,
		Modified: "2 hours ago",
	}
	out := sb.Render()
	assert.Contains(t, out, "Updated 42s ago")
	assert.Contains(t, out, "Modified 2 hours ago")
	for i, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 120, "line %d", i)
	}

	sb.Loaded = false
	assert.NotContains(t, sb.Render(), "Updated", "no badge before the first load")
}

func TestTabBar(t *testing.T) {
	out := TabBar{ViewNames: []string{"Overview", "Tables"}, ActiveIndex: 1, Width: 60, Title: "Revenue"}.Render()
	assert.Contains(t, out, "1 Overview")
	assert.Contains(t, out, "2 Tables")
	assert.Contains(t, out, "Revenue")
}
