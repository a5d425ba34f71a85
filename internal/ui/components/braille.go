package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleDots maps [row][col] to braille dot bit positions.
// Each braille character is a 2-wide × 4-tall pixel grid.
var brailleDots = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Dim marks a pixel drawn in the canvas's dim color.
const Dim = -1

// BrailleCanvas is a pixel grid that renders to braille characters.
type BrailleCanvas struct {
	Width  int // character width
	Height int // character height
	pixels [][]int8
}

const off int8 = -2

// NewBrailleCanvas creates a canvas of the given character dimensions.
func NewBrailleCanvas(charW, charH int) *BrailleCanvas {
	charW, charH = max(charW, 1), max(charH, 1)
	pixels := make([][]int8, charH*4)
	for y := range pixels {
		pixels[y] = make([]int8, charW*2)
		for x := range pixels[y] {
			pixels[y][x] = off
		}
	}
	return &BrailleCanvas{Width: charW, Height: charH, pixels: pixels}
}

func (c *BrailleCanvas) PixelWidth() int  { return c.Width * 2 }
func (c *BrailleCanvas) PixelHeight() int { return c.Height * 4 }

// Set turns on a pixel with a palette index, or Dim.
func (c *BrailleCanvas) Set(x, y, colorIdx int) {
	if x >= 0 && x < c.PixelWidth() && y >= 0 && y < c.PixelHeight() {
		c.pixels[y][x] = int8(max(colorIdx, Dim))
	}
}

// On reports whether a pixel is set.
func (c *BrailleCanvas) On(x, y int) bool {
	if x < 0 || x >= c.PixelWidth() || y < 0 || y >= c.PixelHeight() {
		return false
	}
	return c.pixels[y][x] != off
}

// Render converts the pixel grid to styled braille strings. Each cell
// takes the color most of its dots carry; palette maps indexes to hex
// colors and dimColor styles Dim pixels.
func (c *BrailleCanvas) Render(palette []string, dimColor string) []string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	styles := make([]lipgloss.Style, len(palette))
	for i, hex := range palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}

	lines := make([]string, 0, c.Height)
	for cr := 0; cr < c.Height; cr++ {
		var sb strings.Builder
		for cc := 0; cc < c.Width; cc++ {
			code := 0x2800
			counts := make(map[int8]int, 2)
			for dr := 0; dr < 4; dr++ {
				for dc := 0; dc < 2; dc++ {
					p := c.pixels[cr*4+dr][cc*2+dc]
					if p == off {
						continue
					}
					code |= brailleDots[dr][dc]
					counts[p]++
				}
			}
			if code == 0x2800 {
				sb.WriteByte(' ')
				continue
			}
			best, bestCnt := int8(Dim), 0
			for idx, cnt := range counts {
				if cnt > bestCnt || (cnt == bestCnt && idx > best) {
					best, bestCnt = idx, cnt
				}
			}
			ch := string(rune(code))
			if best >= 0 && int(best) < len(styles) {
				sb.WriteString(styles[best].Render(ch))
			} else {
				sb.WriteString(dimStyle.Render(ch))
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// Line draws a straight segment between two pixels (Bresenham).
func (c *BrailleCanvas) Line(x0, y0, x1, y1, colorIdx int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, colorIdx)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRing sets pixels on a ring (donut) shape.
// Angles are in radians, 0 at the top, clockwise.
func (c *BrailleCanvas) DrawRing(cx, cy, outerR, innerR, startAngle, endAngle float64, colorIdx int) {
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			dist := math.Hypot(dx, dy)
			if dist < innerR || dist > outerR {
				continue
			}
			angle := math.Atan2(-dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			if angle >= startAngle && angle <= endAngle {
				c.Set(x, y, colorIdx)
			}
		}
	}
}

// DrawArc fills the top half ring left to right up to fill (0..1).
// Filled pixels take the palette index of their position along the arc,
// bucketed into steps colors; the rest are Dim.
func (c *BrailleCanvas) DrawArc(cx, cy, outerR, innerR, fill float64, steps int) {
	fillAngle := min(-math.Pi+fill*math.Pi, 0)
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			dx := float64(x) - cx + 0.5
			dy := float64(y) - cy + 0.5
			dist := math.Hypot(dx, dy)
			if dist < innerR || dist > outerR || dy > 1 {
				continue
			}
			angle := math.Atan2(dy, dx) // -π (left) → 0 (right)
			if angle > fillAngle {
				c.Set(x, y, Dim)
				continue
			}
			t := (angle + math.Pi) / math.Pi
			c.Set(x, y, min(int(t*float64(steps)), steps-1))
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
