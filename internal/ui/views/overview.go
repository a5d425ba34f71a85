package views

import (
	"strings"

	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/anomredux/dashfmt/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// OverviewView shows KPI cards, gauges and line charts.
type OverviewView struct {
	snap     dashboard.Snapshot
	labels   i18n.Catalog
	scroll   scroller
	AnimTick uint
}

func NewOverviewView(labels i18n.Catalog) *OverviewView {
	return &OverviewView{labels: labels}
}

func (v *OverviewView) SetSnapshot(s dashboard.Snapshot) {
	v.snap = s
}

func (v *OverviewView) Update(msg tea.Msg) tea.Cmd {
	if v.scroll.update(msg) {
		return KeyHandledCmd
	}
	return nil
}

func (v *OverviewView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	var sections []string
	if len(v.snap.KPIs) > 0 {
		sections = append(sections, v.renderKPIs(cardWidth, compact))
	}
	if len(v.snap.Gauges) > 0 {
		sections = append(sections, v.renderGauges(cardWidth, compact))
	}
	for _, c := range v.snap.Charts {
		sections = append(sections, v.renderChart(c, cardWidth, compact))
	}
	if len(sections) == 0 {
		card := components.Card{
			Title:   theme.GradientText(v.labels.T("tab_overview"), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
			Content: theme.MutedStyle.Render(v.labels.T("no_data")),
		}
		return card.Render()
	}
	return v.scroll.window(strings.Join(sections, "\n"), height)
}

// kpiPalette colors KPI values left to right.
var kpiPalette = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
}

func (v *OverviewView) renderKPIs(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(v.labels.T("kpis"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	const gap = 2
	perRow := min(len(v.snap.KPIs), 4)
	cellW := max((innerW-gap*(perRow-1))/perRow, 12)

	var rows []string
	for start := 0; start < len(v.snap.KPIs); start += perRow {
		end := min(start+perRow, len(v.snap.KPIs))
		cards := make([]components.StatCard, 0, perRow)
		for i, k := range v.snap.KPIs[start:end] {
			sc := components.StatCard{
				Value: k.Value,
				Delta: k.Delta,
				Trend: k.Trend,
				Label: k.Label,
				Width: cellW,
				Color: kpiPalette[(start+i)%len(kpiPalette)],
			}
			if k.Delta != "" && cellW >= 24 {
				sc.Sub = v.labels.T("vs_previous")
			}
			cards = append(cards, sc)
		}
		rows = append(rows, components.CenterBlock(components.RenderStatRow(cards, gap), innerW))
	}
	card.Content = strings.Join(rows, "\n\n")
	return card.Render()
}

func (v *OverviewView) renderGauges(cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(v.labels.T("gauges"), v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	innerW := card.InnerWidth()

	const gap = 4
	n := len(v.snap.Gauges)
	gaugeW := min(max((innerW-gap*(n-1))/n, 12), 24)

	gauges := make([]components.Gauge, 0, n)
	for _, g := range v.snap.Gauges {
		gauges = append(gauges, components.Gauge{
			Label:    g.Label,
			Value:    g.Value,
			Fraction: g.Fraction,
			Width:    gaugeW,
		})
	}
	card.Content = components.CenterBlock(components.RenderGaugeRow(gauges, gap), innerW)
	return card.Render()
}

func (v *OverviewView) renderChart(c dashboard.ChartView, cardWidth int, compact bool) string {
	card := components.Card{
		Title:   theme.GradientText(c.Title, v.AnimTick),
		Width:   cardWidth,
		Compact: compact,
	}
	if c.Ignored > 0 {
		card.Note = v.labels.Tf("lines_ignored", c.Ignored)
	}
	if len(c.Values) == 0 {
		card.Content = theme.MutedStyle.Render(v.labels.T("no_data"))
		return card.Render()
	}

	ticks := make([]components.AxisTick, len(c.Ticks))
	for i, t := range c.Ticks {
		ticks[i] = components.AxisTick{Value: t.Value, Label: t.Label}
	}
	height := 8
	if compact {
		height = 5
	}
	chart := components.LineChart{
		Values: c.Values,
		Labels: c.Labels,
		Ticks:  ticks,
		Width:  card.InnerWidth(),
		Height: height,
	}
	summary := theme.BodyStyle.Render(v.labels.Tf("chart_summary", c.Last, c.Min, c.Max))
	card.Content = summary + "\n\n" + strings.Join(chart.Render(), "\n")
	return card.Render()
}
