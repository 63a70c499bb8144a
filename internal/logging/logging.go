package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output targets accepted in Config.Output.
const (
	OutputStderr = "stderr"
	OutputFile   = "file"
	OutputNone   = "none"
)

// Format names accepted in Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes where and how log events are written.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the logger built from a Config together with what was
// actually opened. Close releases the log file, if any.
type LogPathResult struct {
	Logger zerolog.Logger

	// UsingFile is set when events go to FilePath.
	UsingFile bool
	FilePath  string

	// FallbackUsed is set when the configured file could not be opened and
	// stderr was used instead.
	FallbackUsed   bool
	FallbackReason string

	// Stderr buffers stderr output while the terminal is owned by the UI.
	Stderr *HeldWriter

	file *os.File
}

// Close flushes any held stderr output and closes the log file.
func (r *LogPathResult) Close() error {
	if r.Stderr != nil {
		if err := r.Stderr.Release(); err != nil {
			return err
		}
	}
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLoggerWithPath builds a zerolog logger for cfg. Failures to open the log
// file never fail the caller: the logger falls back to stderr and reports why.
func NewLoggerWithPath(cfg Config) LogPathResult {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	result := LogPathResult{}
	var out io.Writer

	switch cfg.Output {
	case OutputNone:
		out = io.Discard
	case OutputFile:
		f, openErr := openLogFile(cfg.File)
		if openErr == nil {
			result.file = f
			result.UsingFile = true
			result.FilePath = cfg.File
			out = f
			break
		}
		result.FallbackUsed = true
		result.FallbackReason = openErr.Error()
		fallthrough
	default:
		result.Stderr = NewHeldWriter(os.Stderr)
		out = result.Stderr
	}

	if cfg.Format != FormatJSON && !result.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zctx := zerolog.New(out).Level(level).Hook(TraceHook{}).With().Timestamp()
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	result.Logger = zctx.Logger()
	return result
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning reports that file logging could not be enabled.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: file logging unavailable (%s), logging to stderr\n", reason)
}
