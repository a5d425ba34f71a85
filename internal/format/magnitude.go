package format

import "math"

// Scale is a magnitude bucket used by compact rendering.
type Scale struct {
	Divisor float64
	Suffix  string
}

// None reports whether the value was below every bucket.
func (s Scale) None() bool {
	return s.Divisor == 0
}

// Largest first.
var scales = []Scale{
	{Divisor: 1e12, Suffix: "T"},
	{Divisor: 1e9, Suffix: "B"},
	{Divisor: 1e6, Suffix: "M"},
	{Divisor: 1e3, Suffix: "K"},
}

// Classify picks the bucket for |v|. Values below one thousand, and
// non-finite values, get the empty Scale.
func Classify(v float64) Scale {
	abs := math.Abs(v)
	if math.IsNaN(abs) {
		return Scale{}
	}
	for _, s := range scales {
		if abs >= s.Divisor {
			return s
		}
	}
	return Scale{}
}
