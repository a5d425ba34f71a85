package ui

import (
	"github.com/anomredux/dashfmt/internal/theme"
	"github.com/anomredux/dashfmt/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

func (a App) View() string {
	if !a.ready {
		return a.labels.T("initializing")
	}

	if a.width < 80 || a.height < 24 {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(
				a.labels.T("terminal_too_small")+"\n"+
					a.labels.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	compact := a.height < 30

	tabBar := a.renderTabs()
	statusBar := a.renderStatusBar()

	contentHeight := a.height - 4 // 2 tab + 2 status
	if contentHeight < 5 {
		contentHeight = 5
	}

	content := lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(a.renderContent(contentHeight, compact))

	banner := a.notifications.RenderBanner(a.width)
	if banner != "" {
		return tabBar + "\n" + content + "\n" + banner
	}
	return tabBar + "\n" + content + "\n" + statusBar
}

func (a App) renderTabs() string {
	return components.TabBar{
		ViewNames:   []string{a.labels.T("tab_overview"), a.labels.T("tab_tables"), a.labels.T("tab_shares")},
		ActiveIndex: int(a.activeView),
		Width:       a.width,
		Title:       a.snap.Title,
	}.Render()
}

func (a App) renderContent(contentHeight int, compact bool) string {
	if a.doc == nil {
		msg := a.labels.T("loading")
		if a.loadErr != nil {
			msg = theme.WarningStyle.Render(a.labels.Tf("reload_failed", a.loadErr.Error()))
		}
		return lipgloss.Place(a.width, contentHeight, lipgloss.Center, lipgloss.Center, msg)
	}

	switch a.activeView {
	case ViewOverview:
		return a.overviewView.Render(a.width, contentHeight, compact)
	case ViewTables:
		return a.tablesView.Render(a.width, contentHeight, compact)
	case ViewShares:
		return a.sharesView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	sb := components.StatusBar{
		Width:    a.width,
		Labels:   a.labels,
		Loaded:   a.doc != nil,
		Modified: a.snap.Modified,
	}
	if sb.Loaded {
		sb.Age = a.now.Sub(a.loadedAt)
	}
	return sb.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	}
	return theme.CardStyle.Width(60).Height(20).Render("Overlay")
}
