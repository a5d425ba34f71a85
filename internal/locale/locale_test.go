package locale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, language.AmericanEnglish, Resolve(""))
	assert.Equal(t, language.AmericanEnglish, Resolve("not a tag!!"))
	assert.Equal(t, "de-DE", Resolve("de-DE").String())
	assert.Equal(t, "ja-JP", Resolve("ja-JP").String())
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("en-US"))
	assert.True(t, Valid("fr"))
	assert.False(t, Valid("??"))
}

func TestDecimal_Grouping(t *testing.T) {
	tests := []struct {
		tag     string
		v       float64
		minFrac int
		maxFrac int
		want    string
	}{
		{"en-US", 1234567, 0, 2, "1,234,567"},
		{"en-US", 1234.56, 2, 2, "1,234.56"},
		{"en-US", 0, 2, 2, "0.00"},
		{"en-US", 42, 1, 1, "42.0"},
		{"en-US", 1.5, 1, 1, "1.5"},
		{"en-US", -1.5, 1, 1, "-1.5"},
		{"de-DE", 1234.56, 2, 2, "1.234,56"},
		{"ja-JP", 1234, 0, 0, "1,234"},
	}
	for _, tt := range tests {
		got := New(tt.tag).Decimal(tt.v, tt.minFrac, tt.maxFrac)
		assert.Equal(t, tt.want, got, "Decimal(%v) in %s", tt.v, tt.tag)
	}
}

func TestDecimal_RoundsHalfAwayFromZero(t *testing.T) {
	r := New("en-US")
	assert.Equal(t, "2.5", r.Decimal(2.45, 1, 1))
	assert.Equal(t, "-2.5", r.Decimal(-2.45, 1, 1))
	assert.Equal(t, "3", r.Decimal(2.5, 0, 0))
}

func TestDecimal_NegativeZero(t *testing.T) {
	assert.Equal(t, "0.00", New("en-US").Decimal(-0.0001, 2, 2))
}

func TestDecimal_BeyondExactIntegers(t *testing.T) {
	assert.Equal(t, "10,000,000,000,000,000,000,000", New("en-US").Decimal(1e25, 0, 2))
	assert.Equal(t, "10.000.000.000.000.000.000.000", New("de-DE").Decimal(1e25, 0, 2))
	assert.Equal(t, "-1,500,000,000,000,000,000,000", New("en-US").Decimal(-1.5e21, 0, 2))
	assert.Equal(t, "1,234,500,000,000,000,000,000.00", New("en-US").Decimal(1.2345e21, 2, 2))
}

func TestSeparators(t *testing.T) {
	group, mark := New("de-DE").separators()
	assert.Equal(t, ".", group)
	assert.Equal(t, ",", mark)

	group, mark = New("en-US").separators()
	assert.Equal(t, ",", group)
	assert.Equal(t, ".", mark)
}

func TestDecimal_UnknownLocaleFallsBack(t *testing.T) {
	assert.Equal(t, "1,234.5", New("xx-??").Decimal(1234.5, 0, 2))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", New("en-US").Symbol("USD"))
	assert.Equal(t, "€", New("de-DE").Symbol("EUR"))
	assert.Equal(t, "ZZZ", New("en-US").Symbol("zzz"))
}

func TestSymbol_EastAsianYen(t *testing.T) {
	got := New("ja-JP").Symbol("JPY")
	assert.True(t, strings.ContainsAny(got, "¥￥"), "got %q", got)
}

func TestCurrency_Placement(t *testing.T) {
	assert.Equal(t, "$1,234.00", New("en-US").Currency(1234, "USD", 2))
	assert.Equal(t, "-$1,234.50", New("en-US").Currency(-1234.5, "USD", 2))
	assert.Equal(t, "1.234,00\u00a0€", New("de-DE").Currency(1234, "EUR", 2))
	assert.Equal(t, "-1.234,00\u00a0€", New("de-DE").Currency(-1234, "EUR", 2))
}

func TestCurrency_RoundedToZeroHasNoSign(t *testing.T) {
	assert.Equal(t, "$0.00", New("en-US").Currency(-0.001, "USD", 2))
}

func TestStandardDigits(t *testing.T) {
	assert.Equal(t, 2, StandardDigits("USD"))
	assert.Equal(t, 2, StandardDigits("EUR"))
	assert.Equal(t, 0, StandardDigits("JPY"))
	assert.Equal(t, 2, StandardDigits("not-a-code"))
}

func TestPlacementFor(t *testing.T) {
	assert.True(t, placementFor(language.MustParse("de-AT")).after)
	assert.False(t, placementFor(language.MustParse("de-CH")).after)
	assert.True(t, placementFor(language.MustParse("pt-PT")).after)
	assert.False(t, placementFor(language.MustParse("pt-BR")).after)
	assert.Equal(t, placement{}, placementFor(language.MustParse("en-GB")))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.5, Round(1.45, 1))
	assert.Equal(t, 0.0, Round(-0.004, 2))
	assert.Equal(t, 1235.0, Round(1234.5, 0))
}
