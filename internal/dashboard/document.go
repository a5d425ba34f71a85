// Package dashboard loads dashboard documents and resolves every number
// they hold into display strings through the format engine.
package dashboard

import (
	"context"
	"time"

	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/logging"
)

// Document is a dashboard definition as read from TOML, YAML or JSON.
type Document struct {
	Title    string  `toml:"title" yaml:"title" json:"title"`
	Locale   string  `toml:"locale" yaml:"locale" json:"locale"`
	Currency string  `toml:"currency" yaml:"currency" json:"currency"`
	KPIs     []KPI   `toml:"kpis" yaml:"kpis" json:"kpis"`
	Gauges   []Gauge `toml:"gauges" yaml:"gauges" json:"gauges"`
	Charts   []Chart `toml:"charts" yaml:"charts" json:"charts"`
	Tables   []Table `toml:"tables" yaml:"tables" json:"tables"`
	Shares   []Share `toml:"shares" yaml:"shares" json:"shares"`

	// Origin is the path or URL the document was loaded from.
	Origin  string    `toml:"-" yaml:"-" json:"-"`
	ModTime time.Time `toml:"-" yaml:"-" json:"-"`
}

// KPI is a headline value with an optional change versus the previous
// period, expressed as a fraction (0.12 = +12%).
type KPI struct {
	Label  string     `toml:"label" yaml:"label" json:"label"`
	Value  *float64   `toml:"value" yaml:"value" json:"value"`
	Delta  *float64   `toml:"delta" yaml:"delta" json:"delta"`
	Format FormatSpec `toml:"format" yaml:"format" json:"format"`
}

// Gauge is a fraction of a whole, rendered as a percentage.
type Gauge struct {
	Label string  `toml:"label" yaml:"label" json:"label"`
	Value float64 `toml:"value" yaml:"value" json:"value"`
}

// Chart is a line series. Source names a JSONL file of points relative
// to the document; when set it replaces Labels and Values.
type Chart struct {
	Title  string     `toml:"title" yaml:"title" json:"title"`
	Labels []string   `toml:"labels" yaml:"labels" json:"labels"`
	Values []float64  `toml:"values" yaml:"values" json:"values"`
	Source string     `toml:"source" yaml:"source" json:"source"`
	Format FormatSpec `toml:"format" yaml:"format" json:"format"`

	Skipped int `toml:"-" yaml:"-" json:"-"`
	Errors  int `toml:"-" yaml:"-" json:"-"`
}

type Column struct {
	Name   string     `toml:"name" yaml:"name" json:"name"`
	Format FormatSpec `toml:"format" yaml:"format" json:"format"`
}

// Table rows hold raw cells; numbers are formatted per column and
// anything else is shown as written.
type Table struct {
	Title   string   `toml:"title" yaml:"title" json:"title"`
	Columns []Column `toml:"columns" yaml:"columns" json:"columns"`
	Rows    [][]any  `toml:"rows" yaml:"rows" json:"rows"`
}

// Share is a breakdown of a whole shown as a pie with a legend.
type Share struct {
	Title  string    `toml:"title" yaml:"title" json:"title"`
	Labels []string  `toml:"labels" yaml:"labels" json:"labels"`
	Values []float64 `toml:"values" yaml:"values" json:"values"`
}

// FormatSpec is the document-facing form of format.Options.
type FormatSpec struct {
	Type             string `toml:"type" yaml:"type" json:"type"`
	Currency         string `toml:"currency" yaml:"currency" json:"currency"`
	Decimals         *int   `toml:"decimals" yaml:"decimals" json:"decimals"`
	Prefix           string `toml:"prefix" yaml:"prefix" json:"prefix"`
	Suffix           string `toml:"suffix" yaml:"suffix" json:"suffix"`
	Locale           string `toml:"locale" yaml:"locale" json:"locale"`
	Compact          bool   `toml:"compact" yaml:"compact" json:"compact"`
	ShowPositiveSign bool   `toml:"show_positive_sign" yaml:"show_positive_sign" json:"show_positive_sign"`
	FromDecimal      *bool  `toml:"from_decimal" yaml:"from_decimal" json:"from_decimal"`
	Hint             string `toml:"hint" yaml:"hint" json:"hint"`
}

// Defaults fill whatever neither a panel nor its document sets.
type Defaults struct {
	Locale    string
	Currency  string
	Precision format.PrecisionTable
}

// Options converts s into engine options. Locale and currency resolve
// panel first, then document, then d. Unknown type or hint names are
// logged and left unspecified.
func (s FormatSpec) Options(ctx context.Context, doc *Document, d Defaults) format.Options {
	var docLocale, docCurrency string
	if doc != nil {
		docLocale, docCurrency = doc.Locale, doc.Currency
	}
	o := format.Options{
		Currency:         firstNonEmpty(s.Currency, docCurrency, d.Currency),
		Decimals:         s.Decimals,
		Prefix:           s.Prefix,
		Suffix:           s.Suffix,
		Locale:           firstNonEmpty(s.Locale, docLocale, d.Locale),
		Compact:          s.Compact,
		ShowPositiveSign: s.ShowPositiveSign,
		FromDecimal:      s.FromDecimal,
		Precision:        d.Precision,
	}
	o.Type = parseType(ctx, "type", s.Type)
	o.Hint = parseType(ctx, "hint", s.Hint)
	return o
}

func parseType(ctx context.Context, field, name string) format.Type {
	if name == "" {
		return format.TypeUnspecified
	}
	t, ok := format.ParseType(name)
	if !ok {
		log := logging.FromContext(ctx)
		log.Warn().Str("field", field).Str("value", name).Msg("unknown format type, using number")
	}
	return t
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
