// Package theme holds the dashboard palette and the styles shared by
// every view.
package theme

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#1a1b2e")
	ColorCardBg     = lipgloss.Color("#232438")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
	ColorOverlayBg  = lipgloss.Color("#111122")
)

// Semantic colors for deltas and data freshness.
var (
	ColorUp    = lipgloss.Color("#8fd6a8")
	ColorDown  = lipgloss.Color("#f07070")
	ColorFlat  = ColorMutedText
	ColorFresh = ColorSkyBlue
	ColorAging = ColorGold
	ColorStale = ColorDown
)

// Raw hex values for the braille canvas, which styles per cell.
const (
	HexGaugeDim = "#2a2b42"
	HexPieBg    = "#373855"
	HexGrid     = "#3a3b52"
)

// SeriesPalette colors chart lines and pie slices in order.
var SeriesPalette = []string{
	"#86bada",
	"#9f99d1",
	"#dbaad7",
	"#f6bcb0",
	"#ffe3b3",
}

// TrendColor maps the sign of a change to a color.
func TrendColor(trend int) lipgloss.Color {
	switch {
	case trend > 0:
		return ColorUp
	case trend < 0:
		return ColorDown
	}
	return ColorFlat
}

// Staleness thresholds for the data-age badge.
const (
	AgingAfter = time.Minute
	StaleAfter = 10 * time.Minute
)

// AgeColor colors the data-age badge: fresh under a minute, stale after
// ten.
func AgeColor(age time.Duration) lipgloss.Color {
	switch {
	case age >= StaleAfter:
		return ColorStale
	case age >= AgingAfter:
		return ColorAging
	}
	return ColorFresh
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// Gradient interpolates through stops; t is clamped to [0, 1].
func Gradient(t float64, stops []string) string {
	switch {
	case len(stops) == 0:
		return string(ColorBodyText)
	case len(stops) == 1 || t <= 0:
		return stops[0]
	case t >= 1:
		return stops[len(stops)-1]
	}

	segments := len(stops) - 1
	segment := min(int(t*float64(segments)), segments-1)
	localT := t*float64(segments) - float64(segment)
	return LerpColor(stops[segment], stops[segment+1], localT)
}

// GradientText colors each rune of text along the series palette. A
// non-zero tick slides the gradient, one full cycle per 40 ticks.
func GradientText(text string, tick uint) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	phase := float64(tick%40) / 40

	var sb strings.Builder
	sb.Grow(len(text) * 20)
	style := lipgloss.NewStyle().Bold(true)
	for i, r := range runes {
		t := phase + float64(i)/float64(max(len(runes)-1, 1))*0.4
		t -= math.Floor(t)
		// Mirror so the colors run forward and back without a seam.
		if t > 0.5 {
			t = 1 - t
		}
		color := Gradient(t*2, SeriesPalette)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorMauve)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)
)
