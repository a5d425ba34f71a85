package ui

import (
	"context"
	"time"

	"github.com/anomredux/dashfmt/internal/config"
	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/ui/overlays"
	"github.com/anomredux/dashfmt/internal/ui/views"
	"github.com/anomredux/dashfmt/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
)

type ViewType int

const (
	ViewOverview ViewType = iota
	ViewTables
	ViewShares
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
)

// TickMsg triggers a periodic reload of remote dashboards.
type TickMsg time.Time

// clockMsg refreshes the staleness badge and animations once a second.
type clockMsg time.Time

// docLoadedMsg carries a freshly loaded dashboard document.
type docLoadedMsg struct {
	doc    *dashboard.Document
	err    error
	manual bool
}

// fileChangedMsg is sent when the watcher sees a dashboard or series file change.
type fileChangedMsg struct {
	paths []string
}

type App struct {
	activeView ViewType
	overlay    OverlayType

	// Views
	overviewView *views.OverviewView
	tablesView   *views.TablesView
	sharesView   *views.SharesView

	// Overlays
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay

	// Shared data
	Config  config.Config
	cfgPath string
	Source  string // dashboard path or URL
	ctx     context.Context
	labels  i18n.Catalog

	doc      *dashboard.Document
	snap     dashboard.Snapshot
	loadErr  error
	loadedAt time.Time
	now      time.Time

	// Animation state
	animTick uint

	// Notifications
	notifications *NotificationManager

	// Watcher events arrive on changes from the watcher's goroutines.
	watcher *watcher.Watcher
	changes chan []string

	// Terminal
	width  int
	height int

	// State
	loading bool
	ready   bool
}

func NewApp(ctx context.Context, cfg config.Config, cfgPath, source string) App {
	changes := make(chan []string, 1)
	a := App{
		activeView:    ViewOverview,
		overlay:       OverlayNone,
		Config:        cfg,
		cfgPath:       cfgPath,
		Source:        source,
		ctx:           ctx,
		now:           time.Now(),
		notifications: NewNotificationManager(cfg.Notifications.Enabled, cfg.Notifications.Bell),
		changes:       changes,
		loading:       true,
	}
	a.setLanguage(cfg.General.Language)
	if !dashboard.IsRemote(source) {
		a.watcher = watcher.New([]string{source}, a.interval(), func(paths []string) {
			select {
			case changes <- paths:
			default: // a reload is already pending
			}
		})
	}
	return a
}

// StartWatcher begins watching the dashboard's local files. Remote
// dashboards are polled on the refresh interval instead.
func (a App) StartWatcher() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Start(a.ctx)
}

// Close stops the watcher.
func (a App) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

func (a *App) setLanguage(lang string) {
	a.labels = i18n.New(lang)
	a.overviewView = views.NewOverviewView(a.labels)
	a.tablesView = views.NewTablesView(a.labels)
	a.sharesView = views.NewSharesView(a.labels)
	a.helpOverlay = overlays.NewHelpOverlay(a.labels)
}

func (a App) interval() time.Duration {
	return time.Duration(a.Config.General.Interval) * time.Second
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("dashfmt"),
		a.loadDoc,
		doClock(),
		a.waitForChange,
	)
}

func doClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
