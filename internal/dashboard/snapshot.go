package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/anomredux/dashfmt/internal/format"
)

// Snapshot is a document with every value rendered for display.
type Snapshot struct {
	Title       string      `json:"title"`
	Locale      string      `json:"locale"`
	GeneratedAt time.Time   `json:"generated_at"`
	Modified    string      `json:"modified,omitempty"`
	KPIs        []KPIView   `json:"kpis,omitempty"`
	Gauges      []GaugeView `json:"gauges,omitempty"`
	Charts      []ChartView `json:"charts,omitempty"`
	Tables      []TableView `json:"tables,omitempty"`
	Shares      []ShareView `json:"shares,omitempty"`
}

type KPIView struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
	// Trend is -1, 0 or 1 following the sign of the delta.
	Trend int `json:"trend"`
}

type GaugeView struct {
	Label string `json:"label"`
	Value string `json:"value"`
	// Fraction is the gauge fill, clamped to [0, 1].
	Fraction float64 `json:"fraction"`
}

type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type ChartView struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels,omitempty"`
	Values []float64 `json:"values,omitempty"`
	Spec   string    `json:"spec"`
	Ticks  []Tick    `json:"ticks,omitempty"`
	Last   string    `json:"last"`
	Min    string    `json:"min"`
	Max    string    `json:"max"`
	// Ignored counts series lines that were skipped or malformed.
	Ignored int `json:"ignored,omitempty"`
}

type TableView struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	// Numeric marks columns holding numbers, which render right-aligned.
	Numeric []bool `json:"numeric"`
}

type ShareItem struct {
	Label    string  `json:"label"`
	Raw      float64 `json:"raw"`
	Value    string  `json:"value"`
	Percent  string  `json:"percent"`
	Fraction float64 `json:"fraction"`
}

type ShareView struct {
	Title string      `json:"title"`
	Total string      `json:"total"`
	Items []ShareItem `json:"items"`
}

// tickCount is the number of axis labels per chart.
const tickCount = 5

// Resolve renders doc with the given defaults. It never fails: missing
// and malformed values render as format.Missing.
func Resolve(ctx context.Context, doc *Document, d Defaults, now time.Time) Snapshot {
	if doc == nil {
		return Snapshot{GeneratedAt: now}
	}
	snap := Snapshot{
		Title:       doc.Title,
		Locale:      firstNonEmpty(doc.Locale, d.Locale, format.DefaultLocale),
		GeneratedAt: now,
	}
	if !doc.ModTime.IsZero() {
		snap.Modified = format.TimeAgoAt(doc.ModTime, now)
	}

	base := FormatSpec{}.Options(ctx, doc, d)

	for _, k := range doc.KPIs {
		snap.KPIs = append(snap.KPIs, resolveKPI(k, k.Format.Options(ctx, doc, d)))
	}
	for _, g := range doc.Gauges {
		snap.Gauges = append(snap.Gauges, GaugeView{
			Label:    g.Label,
			Value:    format.Percent(g.Value, base),
			Fraction: clamp01(g.Value),
		})
	}
	for _, c := range doc.Charts {
		snap.Charts = append(snap.Charts, resolveChart(c, c.Format.Options(ctx, doc, d)))
	}
	for _, t := range doc.Tables {
		opts := make([]format.Options, len(t.Columns))
		for i, col := range t.Columns {
			opts[i] = col.Format.Options(ctx, doc, d)
		}
		snap.Tables = append(snap.Tables, resolveTable(t, opts, base))
	}
	for _, s := range doc.Shares {
		snap.Shares = append(snap.Shares, resolveShare(s, base))
	}
	return snap
}

func resolveKPI(k KPI, o format.Options) KPIView {
	v := KPIView{Label: k.Label}
	if o.Type == format.TypeUnspecified {
		v.Value = format.Auto(k.Value, o)
	} else {
		v.Value = format.Format(format.FromPtr(k.Value), o)
	}
	if k.Delta != nil {
		d := *k.Delta
		v.Delta = format.Percent(d, format.Options{
			Locale:           o.Locale,
			ShowPositiveSign: true,
		})
		switch {
		case d > 0:
			v.Trend = 1
		case d < 0:
			v.Trend = -1
		}
	}
	return v
}

func resolveChart(c Chart, o format.Options) ChartView {
	v := ChartView{Title: c.Title, Ignored: c.Skipped + c.Errors}
	v.Labels, v.Values = finitePoints(c.Labels, c.Values)
	lo, hi, ok := bounds(v.Values)
	if !ok {
		v.Spec = string(format.AxisTickFormat(0))
		v.Last, v.Min, v.Max = format.Missing, format.Missing, format.Missing
		return v
	}

	spec := format.AxisTickFormat(math.Max(math.Abs(lo), math.Abs(hi)))
	v.Spec = string(spec)
	v.Ticks = ticks(lo, hi, spec)

	tick := format.TickFormatter(o)
	v.Last = tick(v.Values[len(v.Values)-1])
	v.Min = tick(lo)
	v.Max = tick(hi)
	return v
}

// ticks spreads tickCount labels from lo to hi.
func ticks(lo, hi float64, spec format.TickSpec) []Tick {
	if lo == hi {
		return []Tick{{Value: lo, Label: spec.Apply(lo)}}
	}
	out := make([]Tick, tickCount)
	step := (hi - lo) / float64(tickCount-1)
	for i := range out {
		val := lo + step*float64(i)
		if i == tickCount-1 {
			val = hi
		}
		out[i] = Tick{Value: val, Label: spec.Apply(val)}
	}
	return out
}

func resolveTable(t Table, cols []format.Options, base format.Options) TableView {
	v := TableView{
		Title:   t.Title,
		Columns: make([]string, len(t.Columns)),
		Numeric: make([]bool, len(t.Columns)),
	}
	for i, c := range t.Columns {
		v.Columns[i] = c.Name
	}
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			o := base
			if i < len(cols) {
				o = cols[i]
			}
			if f, ok := number(cell); ok {
				if i < len(v.Numeric) {
					v.Numeric[i] = true
				}
				if o.Type != format.TypeUnspecified {
					cells[i] = format.Format(f, o)
					continue
				}
			}
			cells[i] = format.Auto(cell, o)
		}
		v.Rows = append(v.Rows, cells)
	}
	return v
}

func resolveShare(s Share, o format.Options) ShareView {
	total := 0.0
	for _, val := range s.Values {
		if val > 0 {
			total += val
		}
	}
	v := ShareView{Title: s.Title, Total: format.Auto(total, o)}
	for i, val := range s.Values {
		label := ""
		if i < len(s.Labels) {
			label = s.Labels[i]
		}
		frac := math.NaN()
		if total > 0 {
			frac = math.Max(val, 0) / total
		}
		item := ShareItem{
			Label:   label,
			Raw:     finiteOrZero(val),
			Value:   format.Auto(val, o),
			Percent: format.Percent(frac, o),
		}
		if !math.IsNaN(frac) {
			item.Fraction = frac
		}
		v.Items = append(v.Items, item)
	}
	return v
}

// finitePoints drops NaN and infinite values with their labels. Labels
// past the end of values are dropped too.
func finitePoints(labels []string, values []float64) ([]string, []float64) {
	var (
		outL []string
		outV []float64
	)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if len(labels) > 0 {
			label := ""
			if i < len(labels) {
				label = labels[i]
			}
			outL = append(outL, label)
		}
		outV = append(outV, v)
	}
	return outL, outV
}

func bounds(vals []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

// number reports whether a decoded cell is numeric. Decoders produce
// int, int64, float64 or json.Number depending on the encoding.
func number(cell any) (float64, bool) {
	switch n := cell.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
