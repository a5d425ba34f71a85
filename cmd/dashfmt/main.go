package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/anomredux/dashfmt/internal/config"
	"github.com/anomredux/dashfmt/internal/dashboard"
	"github.com/anomredux/dashfmt/internal/logging"
	"github.com/anomredux/dashfmt/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// version is set by goreleaser via ldflags.
var version = "dev"

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		noTUI       = flag.Bool("no-tui", false, "print the resolved dashboard as JSON instead of the TUI")
		showVersion = flag.Bool("version", false, "print version and exit")
		over        overrides
		eval        evalFlags
	)
	over.register(flag.CommandLine)
	eval.register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: dashfmt [flags] <dashboard.toml|yaml|json|url>\n       dashfmt -eval <value> [format flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("dashfmt", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg, err = over.apply(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if eval.set() {
		out, err := eval.run(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	if *noTUI {
		runNoTUI(cfg, source)
		return
	}

	// The TUI owns the terminal, so logs go to a file.
	logOpts := logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File}
	if logOpts.File == "" {
		logOpts.File = logging.DefaultPath()
	}
	logger, closer, err := logging.New(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(logging.WithLogger(context.Background(), logger))
	defer cancel()

	app := ui.NewApp(ctx, cfg, *configPath, source)
	if err := app.StartWatcher(); err != nil {
		logger.Warn().Err(err).Msg("file watcher unavailable")
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// overrides are config values set on the command line.
type overrides struct {
	locale    string
	currency  string
	language  string
	logLevel  string
	logFormat string
}

func (o *overrides) register(fs *flag.FlagSet) {
	fs.StringVar(&o.locale, "locale", "", "override locale (e.g., de-DE)")
	fs.StringVar(&o.currency, "currency", "", "override default currency (ISO 4217)")
	fs.StringVar(&o.language, "language", "", "override UI language: en, de, ja")
	fs.StringVar(&o.logLevel, "log-level", "", "override log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "", "override log format: json, console")
}

// apply sets the non-empty overrides on cfg and validates the result.
// config.Load has already checked the file's own values.
func (o overrides) apply(cfg config.Config) (config.Config, error) {
	if o.locale != "" {
		cfg.Format.Locale = o.locale
	}
	if o.currency != "" {
		cfg.Format.Currency = o.currency
	}
	if o.language != "" {
		cfg.General.Language = o.language
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}
	return cfg, cfg.Validate()
}

func runNoTUI(cfg config.Config, source string) {
	logger, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	ctx := logging.WithLogger(context.Background(), logger)

	doc, err := dashboard.Load(ctx, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dashboard: %v\n", err)
		os.Exit(1)
	}

	snap := dashboard.Resolve(ctx, doc, dashboard.Defaults{
		Locale:    cfg.Format.Locale,
		Currency:  cfg.Format.Currency,
		Precision: cfg.Format.Precision,
	}, time.Now())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
