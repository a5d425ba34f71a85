package views

import (
	"strings"

	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/anomredux/dashfmt/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// SharesView renders each breakdown as a donut with a legend.
type SharesView struct {
	shares   []dashboard.ShareView
	locale   string
	labels   i18n.Catalog
	scroll   scroller
	AnimTick uint
}

func NewSharesView(labels i18n.Catalog) *SharesView {
	return &SharesView{labels: labels}
}

func (v *SharesView) SetSnapshot(s dashboard.Snapshot) {
	v.shares = s.Shares
	v.locale = s.Locale
}

func (v *SharesView) Update(msg tea.Msg) tea.Cmd {
	if v.scroll.update(msg) {
		return KeyHandledCmd
	}
	return nil
}

func (v *SharesView) Render(width, height int, compact bool) string {
	cardWidth := width - 4

	if len(v.shares) == 0 {
		card := components.Card{
			Title:   theme.GradientText(v.labels.T("tab_shares"), v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
			Content: theme.MutedStyle.Render(v.labels.T("no_data")),
		}
		return card.Render()
	}

	sections := make([]string, 0, len(v.shares))
	for _, s := range v.shares {
		card := components.Card{
			Title:   theme.GradientText(s.Title+"  "+s.Total, v.AnimTick),
			Width:   cardWidth,
			Compact: compact,
		}
		innerW := card.InnerWidth()

		slices := make([]components.PieSlice, 0, len(s.Items))
		for _, it := range s.Items {
			slices = append(slices, components.PieSlice{
				Label:    it.Label,
				Value:    it.Raw,
				Fraction: it.Fraction,
			})
		}
		pie := components.PieChart{
			Slices:      slices,
			ChartSize:   min(max(innerW/5, 10), 16),
			Options:     format.Options{Locale: v.locale},
			OthersLabel: v.labels.T("others"),
			EmptyLabel:  v.labels.T("no_data"),
		}
		card.Content = components.CenterBlock(pie.Render(), innerW)
		sections = append(sections, card.Render())
	}
	return v.scroll.window(strings.Join(sections, "\n"), height)
}
