package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/anomredux/dashfmt/internal/format"
	"github.com/anomredux/dashfmt/internal/i18n"
	"github.com/anomredux/dashfmt/internal/locale"
)

type Config struct {
	General       GeneralConfig       `toml:"general"`
	Format        FormatConfig        `toml:"format"`
	Notifications NotificationsConfig `toml:"notifications"`
	Log           LogConfig           `toml:"log"`
}

type GeneralConfig struct {
	Interval int    `toml:"interval"` // seconds between reload polls
	Language string `toml:"language"` // UI labels
}

// FormatConfig holds the defaults a dashboard falls back to when neither
// the document nor a panel names a locale or currency.
type FormatConfig struct {
	Locale    string                `toml:"locale"`
	Currency  string                `toml:"currency"`
	Precision format.PrecisionTable `toml:"precision,omitempty"`
}

type NotificationsConfig struct {
	Enabled bool `toml:"enabled"`
	Bell    bool `toml:"bell"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Interval: 10,
			Language: string(i18n.LangEN),
		},
		Format: FormatConfig{
			Locale:   format.DefaultLocale,
			Currency: format.DefaultCurrency,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Bell:    false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dashfmt", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // use defaults
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate rejects values the dashboard cannot run with. Unknown locales are
// rejected here even though the formatter itself would fall back silently.
func (c Config) Validate() error {
	var errs []error
	if c.General.Interval <= 0 {
		errs = append(errs, fmt.Errorf("general.interval must be positive, got %d", c.General.Interval))
	}
	if !i18n.Supported(c.General.Language) {
		errs = append(errs, fmt.Errorf("general.language %q is not supported", c.General.Language))
	}
	if c.Format.Locale != "" && !locale.Valid(c.Format.Locale) {
		errs = append(errs, fmt.Errorf("format.locale %q is not a valid language tag", c.Format.Locale))
	}
	if err := c.Format.Precision.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("format.precision: %w", err))
	}
	return errors.Join(errs...)
}
