package ui

import (
	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// loadDoc reads the dashboard and its series sources.
func (a App) loadDoc() tea.Msg {
	doc, err := dashboard.Load(a.ctx, a.Source)
	return docLoadedMsg{doc: doc, err: err}
}

// reloadDoc is loadDoc triggered by the user.
func (a App) reloadDoc() tea.Msg {
	msg := a.loadDoc().(docLoadedMsg)
	msg.manual = true
	return msg
}

// waitForChange blocks until the watcher reports changed files.
func (a App) waitForChange() tea.Msg {
	if a.watcher == nil {
		return nil
	}
	select {
	case paths := <-a.changes:
		return fileChangedMsg{paths: paths}
	case <-a.ctx.Done():
		return nil
	}
}

func (a App) defaults() dashboard.Defaults {
	return dashboard.Defaults{
		Locale:    a.Config.Format.Locale,
		Currency:  a.Config.Format.Currency,
		Precision: a.Config.Format.Precision,
	}
}

// applyDoc stores a loaded document and resolves it for display.
func (a *App) applyDoc(msg docLoadedMsg) {
	a.loading = false
	log := logging.FromContext(a.ctx)
	if msg.err != nil {
		log.Error().Err(msg.err).Str("source", a.Source).Msg("load dashboard")
		a.loadErr = msg.err
		if a.doc != nil {
			a.notifications.SetMessage(a.labels.Tf("reload_failed", msg.err.Error()))
		}
		return
	}

	a.doc = msg.doc
	a.loadErr = nil
	a.loadedAt = a.now
	if a.watcher != nil {
		a.watcher.SetFiles(msg.doc.Files())
	}
	log.Debug().Str("source", a.Source).Int("charts", len(msg.doc.Charts)).Msg("dashboard loaded")
	if msg.manual {
		a.notifications.SetMessage(a.labels.T("reloaded"))
	}
	a.resolve()
}

// resolve renders the current document into every view.
func (a *App) resolve() {
	if a.doc == nil {
		return
	}
	a.snap = dashboard.Resolve(a.ctx, a.doc, a.defaults(), a.now)
	a.overviewView.SetSnapshot(a.snap)
	a.tablesView.SetSnapshot(a.snap)
	a.sharesView.SetSnapshot(a.snap)
}
