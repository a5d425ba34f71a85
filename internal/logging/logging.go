// Package logging builds zerolog loggers for dashfmt and carries them
// through context.Context.
//
// The TUI owns the terminal, so interactive runs log to a file and
// non-interactive runs log to stderr:
//
//	logger, closer, err := logging.New(logging.Options{Level: "debug", File: path})
//	defer closer.Close()
//	ctx := logging.WithLogger(ctx, logger)
//
//	// deeper in the call stack
//	log := logging.FromContext(ctx)
//	log.Warn().Str("type", name).Msg("unknown format type")
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options selects level, encoding and destination.
type Options struct {
	Level  string // debug, info, warn, error; unknown values mean info
	Format string // json or console
	File   string // empty writes to stderr
}

// loggerKey is the private context key for loggers.
type loggerKey struct{}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured by o and a closer for its destination.
func New(o Options) (zerolog.Logger, io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if o.File != "" {
		if err := os.MkdirAll(filepath.Dir(o.File), 0o755); err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(o.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	return newLogger(out, o), closer, nil
}

func newLogger(out io.Writer, o Options) zerolog.Logger {
	if o.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    o.File != "",
		}
	}
	return zerolog.New(out).Level(ParseLevel(o.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// DefaultPath returns the log file used while the TUI is running.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "dashfmt.log"
	}
	return filepath.Join(dir, "dashfmt", "dashfmt.log")
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the context's logger, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// WithStr returns a context whose logger carries an extra string field.
func WithStr(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, logger)
}
