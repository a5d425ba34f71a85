package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		v      float64
		suffix string
		div    float64
	}{
		{0, "", 0},
		{999, "", 0},
		{1000, "K", 1e3},
		{-1500, "K", 1e3},
		{999999, "K", 1e3},
		{1e6, "M", 1e6},
		{-3.2e9, "B", 1e9},
		{1e12, "T", 1e12},
		{5e15, "T", 1e12},
	}
	for _, tt := range tests {
		s := Classify(tt.v)
		assert.Equal(t, tt.suffix, s.Suffix, "Classify(%g)", tt.v)
		assert.Equal(t, tt.div, s.Divisor, "Classify(%g)", tt.v)
	}
}

func TestClassify_NonFinite(t *testing.T) {
	assert.True(t, Classify(math.NaN()).None())
	assert.Equal(t, "T", Classify(math.Inf(1)).Suffix)
}

func TestPrecisionTable_Decimals(t *testing.T) {
	tests := []struct {
		abs  float64
		want int
	}{
		{0, 2},
		{0.5, 2},
		{1, 2},
		{9.99, 2},
		{10, 1},
		{42, 1},
		{99.9, 1},
		{100, 0},
		{999, 0},
		{1e9, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultPrecision.Decimals(tt.abs), "Decimals(%g)", tt.abs)
	}
}

func TestPrecisionTable_Monotonic(t *testing.T) {
	prev := DefaultPrecision.Decimals(0)
	for _, v := range []float64{0.1, 1, 5, 10, 50, 100, 500, 1000} {
		d := DefaultPrecision.Decimals(v)
		assert.LessOrEqual(t, d, prev, "precision grew at %g", v)
		prev = d
	}
}

func TestPrecisionTable_EmptyUsesDefault(t *testing.T) {
	var empty PrecisionTable
	assert.Equal(t, 1, empty.Decimals(42))
}

func TestPrecisionTable_PastLastStep(t *testing.T) {
	table := PrecisionTable{{Below: 1, Decimals: 3}, {Below: 10, Decimals: 1}}
	assert.Equal(t, 1, table.Decimals(5000))
}

func TestPrecisionTable_Validate(t *testing.T) {
	assert.NoError(t, DefaultPrecision.Validate())
	assert.Error(t, PrecisionTable{{Below: 10, Decimals: 1}, {Below: 1, Decimals: 0}}.Validate())
	assert.Error(t, PrecisionTable{{Below: 1, Decimals: 1}, {Below: 10, Decimals: 2}}.Validate())
	assert.Error(t, PrecisionTable{{Below: 1, Decimals: -1}}.Validate())
}

func TestCurrencyDecimals(t *testing.T) {
	assert.Equal(t, 0, CurrencyDecimals(1234, 2))
	assert.Equal(t, 2, CurrencyDecimals(1234.5, 2))
	assert.Equal(t, 0, CurrencyDecimals(1234.5, 0))
	assert.Equal(t, 0, CurrencyDecimals(-20, 2))
}
