package components

import (
	"strings"

	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Card wraps a panel in a rounded border with the title set into the top
// edge. Compact cards drop the border for a title and a rule.
type Card struct {
	Title   string // pre-styled
	Width   int    // total outer width
	Content string
	Note    string // muted line under the content, e.g. ignored input lines
	Compact bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4 // 2 border chars + 2 padding spaces
}

// Render returns the styled card string.
func (c Card) Render() string {
	content := c.Content
	if c.Note != "" {
		note := theme.MutedStyle.Render(Fit(c.Note, c.InnerWidth()))
		if content == "" {
			content = note
		} else {
			content += "\n" + note
		}
	}
	if c.Compact {
		return c.renderCompact(content)
	}
	return c.renderFull(content)
}

func (c Card) renderCompact(content string) string {
	sep := theme.MutedStyle.Render("  " + strings.Repeat("─", max(c.Width-4, 1)))
	if content == "" {
		return c.Title + "\n" + sep
	}
	return c.Title + "\n" + sep + "\n" + content
}

var borderStyle = lipgloss.NewStyle().Foreground(theme.ColorBorder)

func (c Card) renderFull(content string) string {
	innerWidth := c.Width - 2

	// ╭─ Title ────────╮
	titlePart := ""
	if c.Title != "" {
		titlePart = " " + c.Title + " "
	}
	dashes := max(innerWidth-1-VisualWidth(titlePart), 0)
	top := borderStyle.Render("╭─") + titlePart + borderStyle.Render(strings.Repeat("─", dashes)+"╮")

	// │ content          │
	contentWidth := innerWidth - 2
	lines := strings.Split(content, "\n")
	body := make([]string, 0, len(lines))
	for _, line := range lines {
		body = append(body, borderStyle.Render("│")+" "+PadRight(line, contentWidth)+" "+borderStyle.Render("│"))
	}

	// ╰──────────────╯
	bottom := borderStyle.Render("╰" + strings.Repeat("─", max(innerWidth, 0)) + "╯")

	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
