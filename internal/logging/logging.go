// Package logging builds the logr.Logger used across the application.
//
// The dashboard owns the terminal, so it always logs to a rotating file.
// Non-interactive commands log to stderr when it is a terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/angristan/smarthome-tui/internal/config"
)

// Options select the log destination and verbosity
type Options struct {
	// Level and file from the configuration
	Config config.LogConfig
	// Force debug level
	Verbose bool
	// Log to stderr instead of the file when stderr is a terminal
	Console bool
}

// New returns a logger and a closer for its output
func New(opts Options) (logr.Logger, io.Closer, error) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)

	if opts.Console && isatty.IsTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    os.Getenv("NO_COLOR") != "",
			TimeFormat: time.RFC3339,
		}
	} else {
		lj, err := fileWriter(opts.Config.File)
		if err != nil {
			return logr.Discard(), nil, err
		}
		w = lj
		closer = lj
	}

	level := ParseLevel(opts.Config.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return zerologr.New(&zl), closer, nil
}

// fileWriter sets up the rotating log file
func fileWriter(path string) (*lumberjack.Logger, error) {
	if path == "" {
		return nil, fmt.Errorf("no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	}, nil
}

// ParseLevel converts a configured level name to a zerolog level.
// Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
