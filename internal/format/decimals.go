package format

import (
	"fmt"
	"math"
)

// PrecisionStep applies Decimals to magnitudes strictly below Below.
type PrecisionStep struct {
	Below    float64 `toml:"below" yaml:"below" json:"below"`
	Decimals int     `toml:"decimals" yaml:"decimals" json:"decimals"`
}

// PrecisionTable maps a magnitude to a default number of fraction digits.
// Steps are ordered by ascending Below; magnitudes past the last step use
// the last step's Decimals.
type PrecisionTable []PrecisionStep

// DefaultPrecision shows two digits under 10, one under 100 and none above.
var DefaultPrecision = PrecisionTable{
	{Below: 1, Decimals: 2},
	{Below: 10, Decimals: 2},
	{Below: 100, Decimals: 1},
	{Below: math.Inf(1), Decimals: 0},
}

// Decimals returns the fraction digits for magnitude abs.
func (t PrecisionTable) Decimals(abs float64) int {
	if len(t) == 0 {
		return DefaultPrecision.Decimals(abs)
	}
	abs = math.Abs(abs)
	for _, step := range t {
		if abs < step.Below {
			return clampDecimals(step.Decimals)
		}
	}
	return clampDecimals(t[len(t)-1].Decimals)
}

// Validate checks that bounds ascend and precision never grows with
// magnitude.
func (t PrecisionTable) Validate() error {
	for i := range t {
		if t[i].Decimals < 0 {
			return fmt.Errorf("precision step %d: negative decimals %d", i, t[i].Decimals)
		}
		if i == 0 {
			continue
		}
		if t[i].Below <= t[i-1].Below {
			return fmt.Errorf("precision step %d: bound %g not above %g", i, t[i].Below, t[i-1].Below)
		}
		if t[i].Decimals > t[i-1].Decimals {
			return fmt.Errorf("precision step %d: decimals %d exceed previous %d", i, t[i].Decimals, t[i-1].Decimals)
		}
	}
	return nil
}

// CurrencyDecimals is the default precision for a currency amount: whole
// numbers get none, anything else gets the currency's standard digits.
func CurrencyDecimals(v float64, standardDigits int) int {
	if v == math.Trunc(v) {
		return 0
	}
	return standardDigits
}
