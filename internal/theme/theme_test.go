package theme

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLerpColor(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		t    float64
		want string
	}{
		{"start", "#000000", "#ffffff", 0.0, "#000000"},
		{"end", "#000000", "#ffffff", 1.0, "#ffffff"},
		{"midpoint", "#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"same color", "#ff0000", "#ff0000", 0.5, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LerpColor(tt.from, tt.to, tt.t))
		})
	}
}

func TestHexToRGB(t *testing.T) {
	for _, hex := range []string{"#ff8040", "ff8040"} {
		r, g, b := HexToRGB(hex)
		assert.Equal(t, [3]int{0xff, 0x80, 0x40}, [3]int{int(r), int(g), int(b)}, hex)
	}
}

func TestGradient(t *testing.T) {
	stops := []string{"#000000", "#ffffff"}
	assert.Equal(t, "#000000", Gradient(-1, stops))
	assert.Equal(t, "#ffffff", Gradient(2, stops))
	assert.Equal(t, "#123456", Gradient(0.5, []string{"#123456"}))
	assert.Equal(t, string(ColorBodyText), Gradient(0.5, nil))
}

func TestGradientText(t *testing.T) {
	assert.NotEmpty(t, GradientText("Hello", 3))
	assert.Empty(t, GradientText("", 0))
}

func TestTrendColor(t *testing.T) {
	assert.Equal(t, ColorUp, TrendColor(1))
	assert.Equal(t, ColorDown, TrendColor(-1))
	assert.Equal(t, ColorFlat, TrendColor(0))
}

func TestAgeColor(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{0, string(ColorFresh)},
		{59 * time.Second, string(ColorFresh)},
		{time.Minute, string(ColorAging)},
		{10 * time.Minute, string(ColorStale)},
		{time.Hour, string(ColorStale)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(AgeColor(tt.age)), "AgeColor(%v)", tt.age)
	}
}
