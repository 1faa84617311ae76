package loggio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config defines the full settings for one named logger. A config is
// validated when the logger is created or reconfigured; afterwards it is
// only ever replaced as a whole, never mutated field by field.
type Config struct {
	// Name identifies the logger in the registry.
	Name string
	// Level is the minimum severity that will be emitted.
	// Default: InfoLevel
	Level Level
	// FilePath appends log lines to this file (parent directory created if
	// missing); empty disables file output regardless of other settings.
	// Default: "" (file output disabled)
	FilePath string
	// Terminal enables console output.
	// Default: true
	Terminal bool
	// Timezone is an IANA identifier for timestamp rendering; empty uses
	// the host machine's local timezone. Invalid identifiers are rejected
	// when the logger is configured.
	Timezone string
	// UseColors enables ANSI coloring of the level name for terminal
	// output. Files are always plain.
	// Default: true
	UseColors bool
	// Truncate enables cutting messages longer than TruncateLength.
	// Default: true
	Truncate bool
	// TruncateLength is the maximum message length in characters,
	// including the truncation suffix. Must be positive.
	// Default: 10000
	TruncateLength int
	// JSONFormat serializes every substitution argument to JSON before it
	// is inserted into the message.
	// Default: false
	JSONFormat bool
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger emits formatted records for one registered name. Handles are
// shared: every handle for a name observes that name's current config,
// including reconfigurations made after the handle was obtained.
//
// The mutex covers the whole emit (config read, formatting, writes) so a
// reconfigure can never be observed half-applied and concurrent file
// writes can never interleave mid-line.
type Logger struct {
	mu   sync.Mutex
	cfg  Config
	loc  *time.Location
	file *os.File
}

// newLogger validates cfg and binds it to a fresh logger. An invalid
// timezone or config fails fast; a file path that cannot be opened is
// reported to stderr and file output is disabled, since logging must not
// become a reason the host cannot start.
func newLogger(cfg Config) (*Logger, error) {
	loc, err := validateConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Logger{
		cfg:  cfg,
		loc:  loc,
		file: openLogFile(cfg.FilePath),
	}, nil
}

// validateConfig checks cfg and resolves its timezone.
func validateConfig(cfg Config) (*time.Location, error) {
	if !cfg.Level.valid() {
		return nil, fmt.Errorf("loggio: invalid level %d", int(cfg.Level))
	}
	if cfg.TruncateLength <= 0 {
		return nil, fmt.Errorf("loggio: truncate length must be positive, got %d", cfg.TruncateLength)
	}
	return resolveLocation(cfg.Timezone)
}

// openLogFile opens path for appending, creating the parent directory when
// missing. Failure is reported but not fatal.
func openLogFile(path string) *os.File {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(outStderr, "loggio: failed to create log directory %s: %v\n", dir, err)
			return nil
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(outStderr, "loggio: failed to open log file %s: %v\n", path, err)
		return nil
	}
	return f
}

// reconfigure atomically replaces the logger's config. The new timezone is
// validated before anything is touched, so a failed reconfigure leaves the
// previous config fully intact. An open file handle is reused when the
// path is unchanged; otherwise the old file is closed and the new one
// opened. A handle lost to Close or an earlier open failure is reopened
// when the new config still names a file.
func (l *Logger) reconfigure(cfg Config) error {
	loc, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if cfg.FilePath != l.cfg.FilePath {
		if l.file != nil {
			if cerr := l.file.Close(); cerr != nil {
				fmt.Fprintf(outStderr, "loggio: failed to close log file %s: %v\n", l.cfg.FilePath, cerr)
			}
			l.file = nil
		}
		l.file = openLogFile(cfg.FilePath)
	} else if l.file == nil && cfg.FilePath != "" {
		l.file = openLogFile(cfg.FilePath)
	}
	l.cfg = cfg
	l.loc = loc
	return nil
}

// Name returns the logger's registered name.
func (l *Logger) Name() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Name
}

// Level returns the current minimum severity.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.Level
}

// Close releases the log file if one is open. Safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Debug logs a debug message with percent-style argument substitution.
// Trailing UserContext, JSONEncode, Truncate, or TruncateLength values act
// as per-call options. Thread-safe for concurrent use.
func (l *Logger) Debug(template string, args ...any) {
	l.emit(DebugLevel, template, args)
}

// Info logs an informational message with percent-style argument
// substitution. Trailing UserContext, JSONEncode, Truncate, or
// TruncateLength values act as per-call options. Thread-safe for
// concurrent use.
func (l *Logger) Info(template string, args ...any) {
	l.emit(InfoLevel, template, args)
}

// Warning logs a warning message with percent-style argument substitution.
// Trailing UserContext, JSONEncode, Truncate, or TruncateLength values act
// as per-call options. Thread-safe for concurrent use.
func (l *Logger) Warning(template string, args ...any) {
	l.emit(WarningLevel, template, args)
}

// Error logs an error message with percent-style argument substitution.
// Trailing UserContext, JSONEncode, Truncate, or TruncateLength values act
// as per-call options. Thread-safe for concurrent use.
func (l *Logger) Error(template string, args ...any) {
	l.emit(ErrorLevel, template, args)
}

// Critical logs a critical message with percent-style argument
// substitution. Trailing UserContext, JSONEncode, Truncate, or
// TruncateLength values act as per-call options. Thread-safe for
// concurrent use.
func (l *Logger) Critical(template string, args ...any) {
	l.emit(CriticalLevel, template, args)
}

// emit runs the record pipeline: filter, format, locate caller, render
// timestamp, assemble per destination, write. A formatting failure
// degrades to a fallback body; a file-write failure is reported to stderr.
// Neither ever raises into the caller.
//
// emit must be called directly by a level method: logCallDepth counts on
// exactly this chain.
func (l *Logger) emit(level Level, template string, args []any) {
	args, opts := splitCallOptions(args)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Filtered-out records do no formatting, timestamp, or caller work.
	if level < l.cfg.Level {
		return
	}

	jsonFormat := l.cfg.JSONFormat
	if opts.jsonFormat != nil {
		jsonFormat = *opts.jsonFormat
	}
	truncate := l.cfg.Truncate
	if opts.truncate != nil {
		truncate = *opts.truncate
	}
	limit := l.cfg.TruncateLength
	if opts.truncateLength != nil && *opts.truncateLength > 0 {
		limit = *opts.truncateLength
	}

	msg, err := formatMessage(template, args, jsonFormat)
	if err != nil {
		msg = fallbackBody(template, err)
	}
	if truncate {
		msg = truncateMessage(msg, limit)
	}
	if uid, ok := opts.user.uid(); ok {
		msg = uid + ": " + msg
	}

	file, line := callerLocation(logCallDepth)
	ts := renderTimestamp(time.Now(), l.loc)

	// Everything after the level name is shared between destinations:
	// :[TIMESTAMP]FILENAME:LINE:MESSAGE
	var rest strings.Builder
	rest.Grow(len(ts) + len(file) + len(msg) + 16)
	rest.WriteString(":[")
	rest.WriteString(ts)
	rest.WriteString("]")
	rest.WriteString(file)
	rest.WriteByte(':')
	rest.WriteString(strconv.Itoa(line))
	rest.WriteByte(':')
	rest.WriteString(msg)
	tail := rest.String()

	if l.cfg.Terminal {
		w := outStdout
		if level >= WarningLevel {
			w = outStderr
		}
		colors := l.cfg.UseColors && writerSupportsColor(w)
		line := colorizeLevel(level, colors) + tail
		if !colors {
			// Plain output stays plain even when the message body carries
			// escapes from upstream data.
			line = stripANSI(line)
		}
		fmt.Fprintln(w, line)
	}
	if l.file != nil {
		if _, werr := fmt.Fprintln(l.file, stripANSI(level.String()+tail)); werr != nil {
			fmt.Fprintf(outStderr, "loggio: failed to write log file %s: %v\n", l.cfg.FilePath, werr)
		}
	}
}
