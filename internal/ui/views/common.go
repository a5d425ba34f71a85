package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandledCmd is returned by view Update methods to signal that a key
// was consumed and should not propagate to global handlers. It is a
// no-op cmd: bubbletea discards nil messages.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }

// scroller keeps a vertical offset into rendered content.
type scroller struct {
	offset int
}

// update applies a scroll key and reports whether it was one.
func (s *scroller) update(msg tea.Msg) bool {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	switch km.String() {
	case "j", "down":
		s.offset++
	case "k", "up":
		s.offset = max(s.offset-1, 0)
	case "pgdown":
		s.offset += 10
	case "pgup":
		s.offset = max(s.offset-10, 0)
	case "g", "home":
		s.offset = 0
	default:
		return false
	}
	return true
}

// window returns the height lines of content starting at the offset,
// clamping the offset so the last page stays full.
func (s *scroller) window(content string, height int) string {
	lines := strings.Split(content, "\n")
	if height <= 0 || len(lines) <= height {
		s.offset = 0
		return content
	}
	s.offset = min(s.offset, len(lines)-height)
	return strings.Join(lines[s.offset:s.offset+height], "\n")
}
