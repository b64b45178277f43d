package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is the level used when none is configured.
const DefaultLevel = "warn"

// Options controls where diagnostics go and how much of them.
type Options struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string
	// File, when set, receives a copy of every log event in append mode.
	File string
	// Console overrides the console destination (stderr when nil).
	Console io.Writer
}

// ParseLevel converts a level name into a zerolog level. An empty name
// yields DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", name)
	}
	if level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q", name)
	}
	return level, nil
}

// SetupLogger configures the global logger.
// Console output is pretty printed; the optional log file gets JSON lines.
func SetupLogger(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}}

	var fileErr error
	if opts.File != "" {
		var logFileHandle *os.File
		logFileHandle, fileErr = setupLogFile(opts.File)
		if fileErr == nil {
			writers = append(writers, logFileHandle)
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", opts.File).Msg("Failed to create log file, logging to console only")
	}

	if level <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Str("level", level.String()).Str("logFile", opts.File).Msg("Logger initialized")
	return nil
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
