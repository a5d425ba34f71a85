// Package locale renders already-scaled numbers with locale-correct digit
// grouping, decimal markers and currency symbols. It knows nothing about
// magnitude buckets or suffixes.
package locale

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTag is used when a locale tag is empty or cannot be parsed.
var DefaultTag = language.AmericanEnglish

// Resolve parses a BCP-47 tag. Empty or malformed tags resolve to DefaultTag.
func Resolve(tag string) language.Tag {
	if tag == "" {
		return DefaultTag
	}
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultTag
	}
	return t
}

// Valid reports whether tag parses as a BCP-47 language tag.
func Valid(tag string) bool {
	_, err := language.Parse(tag)
	return err == nil
}

// Renderer formats numbers for a single locale. It is a small value built
// per call; nothing is cached between renderers.
type Renderer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a renderer for the given locale tag.
func New(tag string) Renderer {
	t := Resolve(tag)
	return Renderer{tag: t, printer: message.NewPrinter(t)}
}

// Tag returns the resolved language tag.
func (r Renderer) Tag() language.Tag {
	return r.tag
}

// Decimal renders v with grouping separators and between minFrac and maxFrac
// fraction digits.
func (r Renderer) Decimal(v float64, minFrac, maxFrac int) string {
	if minFrac < 0 {
		minFrac = 0
	}
	if maxFrac < minFrac {
		maxFrac = minFrac
	}
	if finite(v) && math.Abs(v) >= exactLimit {
		return r.large(v, minFrac)
	}
	if finite(v) {
		v = Round(v, maxFrac)
	}
	return r.printer.Sprint(number.Decimal(v,
		number.MinFractionDigits(minFrac),
		number.MaxFractionDigits(maxFrac),
	))
}

// exactLimit is the magnitude from which the printer spells out the binary
// expansion of a float (1e25 as 10,000,000,000,000,000,905,969,664).
const exactLimit = 1e21

// large renders an integral magnitude of at least exactLimit from its
// shortest decimal representation. The significant head goes through the
// printer; the trailing zero groups are appended with its separator.
func (r Renderer) large(v float64, minFrac int) string {
	digits := decimal.NewFromFloat(math.Abs(v)).StringFixed(0)
	zeros := len(digits) - len(strings.TrimRight(digits, "0"))
	groups := zeros / 3
	head, _ := strconv.ParseUint(digits[:len(digits)-groups*3], 10, 64)

	sep, mark := r.separators()
	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	b.WriteString(r.printer.Sprint(number.Decimal(head)))
	for i := 0; i < groups; i++ {
		b.WriteString(sep + "000")
	}
	if minFrac > 0 {
		b.WriteString(mark + strings.Repeat("0", minFrac))
	}
	return b.String()
}

// separators returns the locale's grouping separator and decimal marker as
// the printer renders them.
func (r Renderer) separators() (group, mark string) {
	group, mark = ",", "."
	if rest, ok := strings.CutPrefix(r.printer.Sprint(number.Decimal(1000000)), "1"); ok && len(rest) > 6 {
		group = rest[:(len(rest)-6)/2]
	}
	if rest, ok := strings.CutPrefix(r.printer.Sprint(number.Decimal(1.5, number.MinFractionDigits(1))), "1"); ok {
		mark = strings.TrimSuffix(rest, "5")
	}
	return group, mark
}

// Symbol returns the locale's glyph for an ISO 4217 currency code, e.g. "$"
// for USD in en-US or "￥" for JPY in ja-JP. Unknown codes are returned
// upper-cased as-is.
func (r Renderer) Symbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	return r.printer.Sprint(currency.Symbol(unit))
}

// Currency renders v as an amount of the given currency with exactly frac
// fraction digits, placing the symbol according to the locale's convention.
func (r Renderer) Currency(v float64, code string, frac int) string {
	digits := r.Decimal(math.Abs(v), frac, frac)
	sym := r.Symbol(code)

	p := placementFor(r.tag)
	var body string
	if p.after {
		body = digits + p.sep + sym
	} else {
		body = sym + p.sep + digits
	}
	if finite(v) && Round(v, frac) < 0 {
		return "-" + body
	}
	return body
}

// StandardDigits returns the number of fraction digits a currency is
// normally shown with (2 for USD and EUR, 0 for JPY). Unknown codes get 2.
func StandardDigits(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// Round rounds v half away from zero to the given number of fraction
// digits. A result of zero is always positive zero.
func Round(v float64, places int) float64 {
	if !finite(v) {
		return v
	}
	d := decimal.NewFromFloat(v).Round(int32(places))
	if d.IsZero() {
		return 0
	}
	return d.InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
