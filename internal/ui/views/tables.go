package views

import (
	"fmt"
	"strings"

	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/anomredux/dashfmt/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// TablesView lists every table of the dashboard, one card each.
type TablesView struct {
	tables   []dashboard.TableView
	labels   i18n.Catalog
	scroll   scroller
	AnimTick uint
}

func NewTablesView(labels i18n.Catalog) *TablesView {
	return &TablesView{labels: labels}
}

func (v *TablesView) SetSnapshot(s dashboard.Snapshot) {
	v.tables = s.Tables
}

func (v *TablesView) Update(msg tea.Msg) tea.Cmd {
	if v.scroll.update(msg) {
		return KeyHandledCmd
	}
	return nil
}

func (v *TablesView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if len(v.tables) == 0 {
		card := components.Card{
			Title:   theme.GradientText(v.labels.T("tab_tables"), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
			Content: theme.MutedStyle.Render(v.labels.T("no_data")),
		}
		return card.Render()
	}

	sections := make([]string, 0, len(v.tables)+1)
	for _, t := range v.tables {
		title := t.Title
		if title == "" {
			title = v.labels.T("tab_tables")
		}
		card := components.Card{
			Title:   theme.GradientText(fmt.Sprintf("%s (%d)", title, len(t.Rows)), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
		}
		card.Content = components.DataTable{
			Columns: t.Columns,
			Rows:    t.Rows,
			Numeric: t.Numeric,
			Width:   card.InnerWidth(),
		}.Render()
		sections = append(sections, card.Render())
	}

	content := strings.Join(sections, "\n")
	body := v.scroll.window(content, height-1)
	return body + "\n" + components.HelpFooter(v.labels.T("help_scroll_hint"))
}
