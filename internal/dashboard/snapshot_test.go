package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/anomredux/dashfmt/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func germanDoc() *Document {
	return &Document{
		Title:    "Revenue",
		Locale:   "de-DE",
		Currency: "EUR",
		ModTime:  testNow.Add(-2 * time.Hour),
		KPIs: []KPI{
			{Label: "Revenue", Value: f64(2500000), Delta: f64(0.125), Format: FormatSpec{Type: "currency", Compact: true}},
			{Label: "Users", Value: f64(1500)},
		},
		Gauges: []Gauge{{Label: "Quota", Value: 0.42}},
		Charts: []Chart{{Title: "Requests", Labels: []string{"a", "b"}, Values: []float64{100, 2500}}},
		Tables: []Table{{
			Title:   "Regions",
			Columns: []Column{{Name: "Region"}, {Name: "Sales", Format: FormatSpec{Type: "currency"}}},
			Rows:    [][]any{{"North", 1234.5}, {"South", int64(99)}},
		}},
		Shares: []Share{{Title: "Plans", Labels: []string{"Free", "Pro"}, Values: []float64{3, 1}}},
	}
}

func TestResolve_German(t *testing.T) {
	snap := Resolve(context.Background(), germanDoc(), Defaults{Locale: "en-US", Currency: "USD"}, testNow)

	assert.Equal(t, "Revenue", snap.Title)
	assert.Equal(t, "de-DE", snap.Locale)
	assert.Equal(t, "2 hours ago", snap.Modified)

	require.Len(t, snap.KPIs, 2)
	assert.Equal(t, "€2,5M", snap.KPIs[0].Value)
	assert.Equal(t, "+12,5%", snap.KPIs[0].Delta)
	assert.Equal(t, 1, snap.KPIs[0].Trend)
	assert.Equal(t, "1,5K", snap.KPIs[1].Value)
	assert.Empty(t, snap.KPIs[1].Delta)

	require.Len(t, snap.Gauges, 1)
	assert.Equal(t, "42,0%", snap.Gauges[0].Value)
	assert.Equal(t, 0.42, snap.Gauges[0].Fraction)

	require.Len(t, snap.Charts, 1)
	c := snap.Charts[0]
	assert.Equal(t, ".2s", c.Spec)
	labels := make([]string, len(c.Ticks))
	for i, tk := range c.Ticks {
		labels[i] = tk.Label
	}
	assert.Equal(t, []string{"100", "700", "1.3k", "1.9k", "2.5k"}, labels)
	assert.Equal(t, "2,5K", c.Last)
	assert.Equal(t, "100", c.Min)
	assert.Equal(t, "2,5K", c.Max)

	require.Len(t, snap.Tables, 1)
	tbl := snap.Tables[0]
	assert.Equal(t, []string{"Region", "Sales"}, tbl.Columns)
	assert.Equal(t, []string{"North", "1.234,50\u00a0€"}, tbl.Rows[0])
	assert.Equal(t, []string{"South", "99\u00a0€"}, tbl.Rows[1])
	assert.Equal(t, []bool{false, true}, tbl.Numeric)

	require.Len(t, snap.Shares, 1)
	sh := snap.Shares[0]
	assert.Equal(t, "4", sh.Total)
	require.Len(t, sh.Items, 2)
	assert.Equal(t, ShareItem{Label: "Free", Raw: 3, Value: "3", Percent: "75,0%", Fraction: 0.75}, sh.Items[0])
	assert.Equal(t, "25,0%", sh.Items[1].Percent)
}

func TestResolve_DefaultsApply(t *testing.T) {
	doc := &Document{
		KPIs: []KPI{
			{Label: "Missing", Delta: f64(-0.03)},
			{Label: "Flat", Value: f64(42), Delta: f64(0)},
			{Label: "Rate", Value: f64(0.256), Format: FormatSpec{Hint: "percent"}},
			{Label: "Cost", Value: f64(1234.5), Format: FormatSpec{Type: "currency"}},
		},
	}
	snap := Resolve(context.Background(), doc, Defaults{Locale: "en-US", Currency: "GBP"}, testNow)

	assert.Equal(t, "en-US", snap.Locale)
	assert.Empty(t, snap.Modified)

	assert.Equal(t, format.Missing, snap.KPIs[0].Value)
	assert.Equal(t, "-3.0%", snap.KPIs[0].Delta)
	assert.Equal(t, -1, snap.KPIs[0].Trend)

	assert.Equal(t, "42", snap.KPIs[1].Value)
	assert.Equal(t, "0.0%", snap.KPIs[1].Delta)
	assert.Equal(t, 0, snap.KPIs[1].Trend)

	assert.Equal(t, "25.6%", snap.KPIs[2].Value)
	assert.Equal(t, "£1,234.50", snap.KPIs[3].Value)
}

func TestResolve_TableCells(t *testing.T) {
	doc := &Document{Tables: []Table{{
		Columns: []Column{{Name: "n"}},
		Rows:    [][]any{{json.Number("1500")}, {"n/a"}, {nil}, {0.5, "extra"}},
	}}}
	snap := Resolve(context.Background(), doc, Defaults{}, testNow)

	rows := snap.Tables[0].Rows
	assert.Equal(t, []string{"1.5K"}, rows[0])
	assert.Equal(t, []string{"n/a"}, rows[1])
	assert.Equal(t, []string{format.Missing}, rows[2])
	assert.Equal(t, []string{"0.5", "extra"}, rows[3])
	assert.Equal(t, []bool{true}, snap.Tables[0].Numeric)
}

func TestResolve_EmptyPanels(t *testing.T) {
	doc := &Document{
		Charts: []Chart{{Title: "empty"}, {Title: "flat", Values: []float64{0.25, 0.25}}},
		Shares: []Share{{Title: "zero", Labels: []string{"a"}, Values: []float64{0}}},
		Gauges: []Gauge{{Label: "over", Value: 1.7}, {Label: "nan", Value: math.NaN()}},
	}
	snap := Resolve(context.Background(), doc, Defaults{}, testNow)

	assert.Equal(t, format.Missing, snap.Charts[0].Last)
	assert.Empty(t, snap.Charts[0].Ticks)

	flat := snap.Charts[1]
	assert.Equal(t, ".2f", flat.Spec)
	assert.Equal(t, []Tick{{Value: 0.25, Label: "0.25"}}, flat.Ticks)

	assert.Equal(t, format.Missing, snap.Shares[0].Items[0].Percent)
	assert.Zero(t, snap.Shares[0].Items[0].Fraction)

	assert.Equal(t, 1.0, snap.Gauges[0].Fraction)
	assert.Equal(t, "170.0%", snap.Gauges[0].Value)
	assert.Equal(t, format.Missing, snap.Gauges[1].Value)
	assert.Zero(t, snap.Gauges[1].Fraction)
}

func TestResolve_NonFiniteChartValues(t *testing.T) {
	doc := &Document{Charts: []Chart{{
		Labels: []string{"a", "b", "c"},
		Values: []float64{1, math.NaN(), 3},
	}}}
	snap := Resolve(context.Background(), doc, Defaults{}, testNow)

	assert.Equal(t, []string{"a", "c"}, snap.Charts[0].Labels)
	assert.Equal(t, []float64{1, 3}, snap.Charts[0].Values)

	_, err := json.Marshal(snap)
	assert.NoError(t, err)
}

func TestResolve_Nil(t *testing.T) {
	snap := Resolve(context.Background(), nil, Defaults{}, testNow)
	assert.Equal(t, testNow, snap.GeneratedAt)
	assert.Empty(t, snap.KPIs)
}

func TestSnapshot_JSON(t *testing.T) {
	snap := Resolve(context.Background(), germanDoc(), Defaults{}, testNow)
	b, err := json.Marshal(snap)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "Revenue", back["title"])
	assert.Len(t, back["kpis"], 2)
}
