package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anomredux/dashfmt/internal/config"
	"github.com/anomredux/dashfmt/internal/logging"
	"github.com/anomredux/dashfmt/internal/ui/overlays"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `
title = "Revenue"

[[kpis]]
label = "Revenue"
value = 2500000
delta = 0.125
format = { type = "currency", compact = true }

[[gauges]]
label = "CPU"
value = 0.42

[[tables]]
title = "Plans"
columns = [{ name = "Plan" }, { name = "MRR", format = { type = "currency" } }]
rows = [["Pro", 1234.5]]

[[shares]]
title = "Seats"
labels = ["Paid", "Free"]
values = [1, 3]
`

func newTestApp(t *testing.T) App {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join(dir, "dash.toml")
	require.NoError(t, os.WriteFile(src, []byte(sampleDoc), 0o644))
	a := NewApp(context.Background(), config.DefaultConfig(), filepath.Join(dir, "config.toml"), src)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	return m.(App)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_LoadingBeforeDocument(t *testing.T) {
	a := newTestApp(t)
	assert.Contains(t, a.View(), "Loading")
}

func TestApp_LoadAndRender(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, a.loadDoc())

	require.NotNil(t, a.doc)
	out := a.View()
	for _, want := range []string{"Revenue", "$2.5M", "+12.5%", "42.0%"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, []string{a.Source}, a.watcher.Files())
}

func TestApp_SwitchViews(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, a.loadDoc())

	a = update(t, a, keyMsg("2"))
	require.Equal(t, ViewTables, a.activeView)
	assert.Contains(t, a.View(), "$1,234.50")

	a = update(t, a, keyMsg("tab"))
	assert.Equal(t, ViewShares, a.activeView)
	a = update(t, a, keyMsg("tab"))
	assert.Equal(t, ViewOverview, a.activeView, "tab wraps around")
}

func TestApp_ReloadFailureKeepsDocument(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, a.loadDoc())
	a = update(t, a, docLoadedMsg{err: errors.New("boom")})

	require.NotNil(t, a.doc, "failed reload keeps the previous document")
	n := a.notifications.Active()
	require.NotNil(t, n)
	assert.Contains(t, n.Message, "boom")
}

func TestApp_InitialLoadFailure(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, docLoadedMsg{err: errors.New("no such file")})
	assert.Contains(t, a.View(), "no such file")
}

func TestApp_ConfigChangeReresolves(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, a.loadDoc())

	cfg := a.Config
	cfg.Format.Locale = "de-DE"
	cfg.General.Language = "de"
	a = update(t, a, overlays.ConfigChangedMsg{Config: cfg})

	assert.Equal(t, "de-DE", a.snap.Locale)
	assert.Equal(t, "$2,5M", a.snap.KPIs[0].Value)
	assert.Contains(t, a.View(), "Übersicht")
}

func TestApp_ConfigChangeUpdatesPollInterval(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, 10*time.Second, a.watcher.PollInterval())

	cfg := a.Config
	cfg.General.Interval = 30
	a = update(t, a, overlays.ConfigChangedMsg{Config: cfg})

	assert.Equal(t, 30*time.Second, a.watcher.PollInterval())
}

func TestApp_FileChangedReloads(t *testing.T) {
	var buf bytes.Buffer
	a := newTestApp(t)
	a.ctx = logging.WithLogger(context.Background(), zerolog.New(&buf).Level(zerolog.DebugLevel))

	_, cmd := a.Update(fileChangedMsg{paths: []string{a.Source}})
	assert.NotNil(t, cmd)
	assert.Contains(t, buf.String(), "dashboard files changed")
}

func TestApp_ClockAdvancesAge(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, a.loadDoc())
	a = update(t, a, clockMsg(a.now.Add(90*time.Second)))

	assert.Contains(t, a.renderStatusBar(), "1m ago")
}

func TestApp_HelpOverlay(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, keyMsg("?"))
	require.Equal(t, OverlayHelp, a.overlay)
	a = update(t, a, keyMsg("?"))
	assert.Equal(t, OverlayNone, a.overlay)
}

func TestNotificationManager(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	nm := NewNotificationManager(true, false)
	nm.now = func() time.Time { return now }

	nm.SetMessage("hello")
	require.NotNil(t, nm.Active())
	assert.Contains(t, nm.RenderBanner(40), "hello")

	now = now.Add(6 * time.Second)
	nm.Expire()
	assert.Nil(t, nm.Active())
	assert.Empty(t, nm.RenderBanner(40))

	off := NewNotificationManager(false, false)
	off.SetMessage("ignored")
	assert.Nil(t, off.Active(), "disabled manager shows nothing")
}
