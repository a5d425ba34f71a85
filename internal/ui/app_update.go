package ui

import (
	"time"

	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/logging"
	"github.com/anomredux/dashfmt/internal/ui/overlays"
	tea "github.com/charmbracelet/bubbletea"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.ready = true
			if dashboard.IsRemote(a.Source) {
				return a, doTick(a.interval())
			}
		}
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case clockMsg:
		a.now = time.Time(msg)
		a.animTick++
		a.propagateAnimTick()
		a.notifications.Expire()
		if a.doc != nil && !a.doc.ModTime.IsZero() {
			a.snap.Modified = format.TimeAgoAt(a.doc.ModTime, a.now)
		}
		return a, doClock()

	case TickMsg:
		return a, tea.Batch(a.loadDoc, doTick(a.interval()))

	case fileChangedMsg:
		log := logging.FromContext(a.ctx)
		log.Debug().Strs("paths", msg.paths).Msg("dashboard files changed")
		return a, tea.Batch(a.loadDoc, a.waitForChange)

	case docLoadedMsg:
		a.applyDoc(msg)
		return a, nil

	case overlays.ConfigChangedMsg:
		a.Config = msg.Config
		a.setLanguage(a.Config.General.Language)
		if a.watcher != nil {
			a.watcher.SetPollInterval(a.interval())
		}
		a.propagateAnimTick()
		if msg.Err != nil {
			a.notifications.SetMessage(msg.Err.Error())
		}
		a.resolve()
		return a, nil
	}

	return a, nil
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewOverview:
		cmd = a.overviewView.Update(msg)
	case ViewTables:
		cmd = a.tablesView.Update(msg)
	case ViewShares:
		cmd = a.sharesView.Update(msg)
	}
	if cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "1":
		a.activeView = ViewOverview
	case "2":
		a.activeView = ViewTables
	case "3":
		a.activeView = ViewShares
	case "tab":
		a.activeView = (a.activeView + 1) % ViewCount
	case "shift+tab":
		a.activeView = (a.activeView + ViewCount - 1) % ViewCount
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.ctx, a.Config, a.cfgPath)
		a.settingsOverlay.SetAnimTick(a.animTick)
		a.overlay = OverlaySettings
	case "r":
		a.loading = true
		return a, a.reloadDoc
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?":
			a.overlay = OverlayNone
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
			}
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) propagateAnimTick() {
	a.overviewView.AnimTick = a.animTick
	a.tablesView.AnimTick = a.animTick
	a.sharesView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
}
