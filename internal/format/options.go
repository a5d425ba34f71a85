// Package format turns raw numbers and timestamps into short display strings
// for dashboard cards, tables, chart axes and staleness badges.
//
// Every function is pure: the same value and Options always yield the same
// string, nothing is cached, and no function panics or returns an error.
// Missing or non-finite values render as Missing.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/anomredux/dashfmt/internal/locale"
)

// Missing is rendered for absent, NaN or infinite numeric input.
const Missing = "—"

// Defaults applied when an Options field is left empty.
const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// Type selects a render path.
type Type int

const (
	TypeUnspecified Type = iota
	TypeNumber
	TypeCompact
	TypeCurrency
	TypePercent
)

var typeNames = map[Type]string{
	TypeUnspecified: "",
	TypeNumber:      "number",
	TypeCompact:     "compact",
	TypeCurrency:    "currency",
	TypePercent:     "percent",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Known reports whether t is one of the declared types.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// ParseType maps a type name to a Type. Unknown names return
// TypeUnspecified and false; callers treat them as "not set".
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	return TypeUnspecified, false
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Known() {
		return nil, fmt.Errorf("unknown format type %d", int(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	parsed, ok := ParseType(string(b))
	if !ok {
		return fmt.Errorf("unknown format type %q", string(b))
	}
	*t = parsed
	return nil
}

// Options configures a single formatting call. The zero value formats a
// plain en-US number.
type Options struct {
	Type     Type
	Currency string // ISO 4217 code, currency type only
	// Decimals fixes both min and max fraction digits. Nil derives them.
	Decimals *int
	Prefix   string
	Suffix   string
	Locale   string
	// Compact combines the currency symbol with K/M/B/T compaction.
	Compact          bool
	ShowPositiveSign bool
	// FromDecimal treats percent input as a fraction (0.15 = 15%).
	// Nil means true.
	FromDecimal *bool
	// Hint forces currency or percent in Auto.
	Hint Type
	// Precision overrides DefaultPrecision for smart decimals.
	Precision PrecisionTable
}

// Ptr returns a pointer to v, for inline Decimals and FromDecimal values.
func Ptr[T any](v T) *T {
	return &v
}

// FromPtr maps a nil pointer to NaN so missing values render as Missing.
func FromPtr(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

func (o Options) locale() string {
	if o.Locale == "" {
		return DefaultLocale
	}
	return o.Locale
}

func (o Options) currency() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return strings.ToUpper(o.Currency)
}

func (o Options) fromDecimal() bool {
	return o.FromDecimal == nil || *o.FromDecimal
}

func (o Options) precision() PrecisionTable {
	if len(o.Precision) == 0 {
		return DefaultPrecision
	}
	return o.Precision
}

func (o Options) decimalsOr(def int) int {
	if o.Decimals == nil {
		return def
	}
	return clampDecimals(*o.Decimals)
}

func (o Options) renderer() locale.Renderer {
	return locale.New(o.locale())
}

// clampDecimals keeps explicit precision within what a display can use.
func clampDecimals(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 20:
		return 20
	}
	return n
}
