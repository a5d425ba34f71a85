package overlays

import (
	"context"
	"strconv"
	"strings"

	"github.com/anomredux/dashfmt/internal/config"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/logging"
	"github.com/anomredux/dashfmt/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfigChangedMsg signals that config has been updated.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error // save failure; the new config still applies
}

type settingsField struct {
	labelKey string
	key      string
	options  []string
	value    string
}

type SettingsOverlay struct {
	ctx      context.Context
	cfg      config.Config
	cfgPath  string
	fields   []settingsField
	cursor   int
	dirty    bool
	animTick uint
}

func NewSettingsOverlay(ctx context.Context, cfg config.Config, cfgPath string) *SettingsOverlay {
	s := &SettingsOverlay{
		ctx:     ctx,
		cfg:     cfg,
		cfgPath: cfgPath,
	}
	s.buildFields()
	return s
}

func (s *SettingsOverlay) SetAnimTick(tick uint) {
	s.animTick = tick
}

// Locales offered in the settings overlay. Any BCP-47 tag can still be
// set in the config file.
var Locales = []string{"en-US", "en-GB", "de-DE", "de-CH", "fr-FR", "es-ES", "pt-BR", "ja-JP"}

// Currencies offered in the settings overlay.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "CHF", "BRL"}

func (s *SettingsOverlay) buildFields() {
	s.fields = []settingsField{
		{labelKey: "setting_locale", key: "locale", options: Locales, value: s.cfg.Format.Locale},
		{labelKey: "setting_currency", key: "currency", options: Currencies, value: s.cfg.Format.Currency},
		{labelKey: "setting_language", key: "language", options: i18n.Languages(), value: s.cfg.General.Language},
		{labelKey: "setting_refresh", key: "interval", options: []string{"5", "10", "15", "30", "60"}, value: strconv.Itoa(s.cfg.General.Interval)},
	}
}

// Config returns the edited config.
func (s *SettingsOverlay) Config() config.Config {
	return s.cfg
}

func (s *SettingsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter", " ", "l", "right":
		s.cycleOption(1)
	case "h", "left":
		s.cycleOption(-1)
	case "esc", "s":
		if !s.dirty {
			return true, nil
		}
		cfg := s.cfg
		err := config.Save(cfg, s.cfgPath)
		if err != nil {
			log := logging.FromContext(s.ctx)
			log.Error().Err(err).Str("path", s.cfgPath).Msg("save config")
		}
		return true, func() tea.Msg { return ConfigChangedMsg{Config: cfg, Err: err} }
	}
	return false, nil
}

func (s *SettingsOverlay) cycleOption(dir int) {
	f := &s.fields[s.cursor]
	idx := -1
	for i, o := range f.options {
		if strings.EqualFold(o, f.value) {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
		if dir < 0 {
			idx = 1
		}
	}
	idx = (idx + dir + len(f.options)) % len(f.options)
	f.value = f.options[idx]
	s.dirty = true
	s.applyToConfig(f.key, f.value)
}

func (s *SettingsOverlay) applyToConfig(key, value string) {
	switch key {
	case "locale":
		s.cfg.Format.Locale = value
	case "currency":
		s.cfg.Format.Currency = value
	case "language":
		s.cfg.General.Language = value
	case "interval":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			s.cfg.General.Interval = n
		}
	}
}

func (s *SettingsOverlay) Render(width, height int) string {
	labels := i18n.New(s.cfg.General.Language)
	bg := theme.ColorCardBg
	title := theme.GradientText(labels.T("settings"), s.animTick)

	labelW := 0
	for _, f := range s.fields {
		labelW = max(labelW, lipgloss.Width(labels.T(f.labelKey)))
	}

	var rows []string
	for i, f := range s.fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		valueStyle := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)
		arrow := "  "
		if i == s.cursor {
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
			valueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
			arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Background(bg).Render("> ")
		}

		label := labels.T(f.labelKey)
		label += strings.Repeat(" ", labelW-lipgloss.Width(label)+2)
		rows = append(rows, "  "+arrow+labelStyle.Render(label)+valueStyle.Render(" "+f.value))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(labels.T("settings_help"))

	boxWidth := 50
	if width < 54 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
