package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/anomredux/dashfmt/internal/locale"
)

// Number renders v with locale grouping. Decimals fixes the fraction
// digits; otherwise up to two are shown.
func Number(v float64, o Options) string {
	if !finite(v) {
		return Missing
	}
	minFrac, maxFrac := 0, 2
	if o.Decimals != nil {
		minFrac = clampDecimals(*o.Decimals)
		maxFrac = minFrac
	}
	core := o.renderer().Decimal(v, minFrac, maxFrac)
	return decorate(core, v > 0, o)
}

// Compact renders v with a K/M/B/T suffix when |v| is at least one
// thousand (1500 → "1.5K"), and with smart decimals otherwise (42 → "42.0").
func Compact(v float64, o Options) string {
	if !finite(v) {
		return Missing
	}
	return decorate(compactCore(v, o), v >= 0, o)
}

// Currency renders v as money in o.Currency. With o.Compact the locale's
// symbol is joined to the compact form ("$2.5M").
func Currency(v float64, o Options) string {
	if !finite(v) {
		return Missing
	}
	r := o.renderer()
	code := o.currency()

	var core string
	if o.Compact {
		scaled, digits, suffix := compactParts(math.Abs(v), o)
		body := r.Symbol(code) + r.Decimal(scaled, digits, digits) + suffix
		if v < 0 && locale.Round(scaled, digits) != 0 {
			body = "-" + body
		}
		core = body
	} else {
		digits := CurrencyDecimals(v, locale.StandardDigits(code))
		if o.Decimals != nil {
			digits = clampDecimals(*o.Decimals)
		}
		core = r.Currency(v, code, digits)
	}
	return decorate(core, v > 0, o)
}

// Percent renders v followed by "%". Input is a fraction unless
// FromDecimal is false. One fraction digit is shown by default.
func Percent(v float64, o Options) string {
	if !finite(v) {
		return Missing
	}
	if o.fromDecimal() {
		v *= 100
	}
	digits := o.decimalsOr(1)
	core := o.renderer().Decimal(v, digits, digits) + "%"
	return decorate(core, v > 0, o)
}

// Format dispatches on o.Type. Unspecified and unknown types render as
// Number.
func Format(v float64, o Options) string {
	switch o.Type {
	case TypeCompact:
		return Compact(v, o)
	case TypeCurrency:
		return Currency(v, o)
	case TypePercent:
		return Percent(v, o)
	default:
		return Number(v, o)
	}
}

// Auto picks a formatter for an arbitrary value. Non-numeric values are
// stringified unchanged; nil and nil numeric pointers render as Missing.
// A currency or percent Hint wins; otherwise large magnitudes are
// compacted and small ones rendered in full.
func Auto(v any, o Options) string {
	f, ok := toFloat(v)
	if !ok {
		if v == nil {
			return Missing
		}
		return fmt.Sprint(v)
	}
	if !finite(f) {
		return Missing
	}
	switch o.Hint {
	case TypeCurrency:
		return Currency(f, o)
	case TypePercent:
		return Percent(f, o)
	}
	if Detect(f) == TypeCompact {
		return Compact(f, o)
	}
	return Number(f, o)
}

// Detect returns TypeCompact for |v| >= 1000 and TypeNumber otherwise.
func Detect(v float64) Type {
	if math.Abs(v) >= 1000 {
		return TypeCompact
	}
	return TypeNumber
}

// TickFormatter returns a formatter for repeated use across axis ticks.
// The type defaults to compact.
func TickFormatter(o Options) func(float64) string {
	if o.Type == TypeUnspecified {
		o.Type = TypeCompact
	}
	return func(v float64) string {
		return Format(v, o)
	}
}

func compactCore(v float64, o Options) string {
	scaled, digits, suffix := compactParts(v, o)
	return o.renderer().Decimal(scaled, digits, digits) + suffix
}

// compactParts returns the scaled value, its fraction digits and the
// bucket suffix. The bucket is chosen after rounding, so 999,950 renders
// as 1.0M rather than 1,000.0K.
func compactParts(v float64, o Options) (float64, int, string) {
	s := Classify(v)
	if s.None() {
		digits := o.precision().Decimals(math.Abs(v))
		if o.Decimals != nil {
			digits = clampDecimals(*o.Decimals)
		}
		r := locale.Round(v, digits)
		if Classify(r).None() {
			return v, digits, ""
		}
		s = Classify(r)
	}
	digits := o.decimalsOr(1)
	if math.Abs(locale.Round(v/s.Divisor, digits)) >= 1000 {
		if up := Classify(s.Divisor * 1000); up.Divisor > s.Divisor {
			s = up
		}
	}
	return v / s.Divisor, digits, s.Suffix
}

func decorate(core string, positive bool, o Options) string {
	if o.ShowPositiveSign && positive {
		core = "+" + core
	}
	return o.Prefix + core + o.Suffix
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// toFloat reports whether v is numeric. Nil numeric pointers are numeric
// and missing.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case *float64:
		return FromPtr(n), true
	case *int:
		if n == nil {
			return math.NaN(), true
		}
		return float64(*n), true
	case json.Number:
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
