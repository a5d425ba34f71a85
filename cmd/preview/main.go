package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/ui/views"
)

var (
	locales = []struct{ tag, currency string }{
		{"en-US", "USD"},
		{"en-GB", "GBP"},
		{"de-DE", "EUR"},
		{"fr-FR", "EUR"},
		{"pt-BR", "BRL"},
		{"ja-JP", "JPY"},
	}
	samples = []float64{0.5, 42, 1234.5, 2_500_000, -3_800_000_000}
)

func main() {
	printGallery()
	fmt.Println()

	snap := dashboard.Resolve(context.Background(), sampleDocument(), dashboard.Defaults{}, time.Now())
	ov := views.NewOverviewView(i18n.New("en"))
	ov.SetSnapshot(snap)
	fmt.Println(ov.Render(100, 40, false))
}

func printGallery() {
	fmt.Printf("%-7s %-14s %-14s %-20s %-10s\n", "locale", "number", "compact", "currency", "percent")
	fmt.Println(strings.Repeat("-", 70))
	for _, l := range locales {
		o := format.Options{Locale: l.tag, Currency: l.currency}
		for _, v := range samples {
			fmt.Printf("%-7s %-14s %-14s %-20s %-10s\n",
				l.tag,
				format.Number(v, o),
				format.Compact(v, o),
				format.Currency(v, o),
				format.Percent(v/1e4, o),
			)
		}
	}
}

func sampleDocument() *dashboard.Document {
	now := time.Now()
	labels := make([]string, 12)
	values := make([]float64, 12)
	for i := range labels {
		labels[i] = now.Add(time.Duration(i-11) * time.Hour).Format("15:04")
		values[i] = float64(800 + i*i*35)
	}
	return &dashboard.Document{
		Title: "Preview",
		KPIs: []dashboard.KPI{
			{Label: "Revenue", Value: format.Ptr(2_480_000.0), Delta: format.Ptr(0.083),
				Format: dashboard.FormatSpec{Type: "currency", Compact: true}},
			{Label: "Orders", Value: format.Ptr(18_240.0), Delta: format.Ptr(-0.021)},
			{Label: "Conversion", Value: format.Ptr(0.0315), Format: dashboard.FormatSpec{Type: "percent", Decimals: format.Ptr(2)}},
			{Label: "Refunds", Value: nil},
		},
		Gauges: []dashboard.Gauge{{Label: "Quota", Value: 0.42}, {Label: "Storage", Value: 0.87}},
		Charts: []dashboard.Chart{{Title: "Requests / hour", Labels: labels, Values: values}},
	}
}
