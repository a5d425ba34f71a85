package format

import (
	"math"
	"strconv"

	"github.com/anomredux/dashfmt/internal/locale"
)

// TickSpec is a d3-style format specifier chosen once per chart axis.
type TickSpec string

const (
	// TickSI uses SI prefixes with two significant digits ("5.0k", "12M").
	TickSI TickSpec = ".2s"
	// TickGrouped uses thousands separators and no decimals ("1,234").
	TickGrouped TickSpec = ",.0f"
	// TickFixed2 uses two fixed decimals ("0.50").
	TickFixed2 TickSpec = ".2f"
)

// AxisTickFormat picks the specifier for an axis from a representative
// magnitude of its domain. One thousand is the only threshold for SI
// notation: 500 stays grouped.
func AxisTickFormat(magnitude float64) TickSpec {
	abs := math.Abs(magnitude)
	switch {
	case abs >= 1000:
		return TickSI
	case abs < 1:
		return TickFixed2
	default:
		return TickGrouped
	}
}

// Apply renders v with the specifier. Unknown specifiers fall back to
// TickGrouped.
func (s TickSpec) Apply(v float64) string {
	if !finite(v) {
		return Missing
	}
	switch s {
	case TickSI:
		return formatSI(v)
	case TickFixed2:
		return strconv.FormatFloat(roundTo(v, 2), 'f', 2, 64)
	default:
		return locale.New(DefaultLocale).Decimal(v, 0, 0)
	}
}

var siPrefixes = map[int]string{
	-4: "p", -3: "n", -2: "µ", -1: "m",
	0: "", 1: "k", 2: "M", 3: "G", 4: "T", 5: "P", 6: "E",
}

// formatSI renders two significant digits with an SI prefix.
func formatSI(v float64) string {
	if v == 0 {
		return "0.0"
	}
	// Round to two significant digits first so 999 becomes 1.0k, not 999.
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'e', 1, 64), 64)
	exp := int(math.Floor(math.Log10(math.Abs(r))))
	group := int(math.Floor(float64(exp) / 3))
	group = max(-4, min(6, group))

	scaled := r / math.Pow(10, float64(group*3))
	digits := max(0, 1-(exp-group*3))
	return strconv.FormatFloat(scaled, 'f', digits, 64) + siPrefixes[group]
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}
