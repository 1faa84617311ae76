package loggio

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ANSI escape codes used for terminal output.
const (
	ansiReset        = "\033[0m"
	ansiBold         = "\033[1m"
	ansiWhite        = "\033[37m"
	ansiBgRed        = "\033[41m"
	ansiBrightRed    = "\033[91m"
	ansiBrightGreen  = "\033[92m"
	ansiBrightYellow = "\033[93m"
	ansiBrightBlue   = "\033[94m"
)

// levelColor returns the ANSI color sequence assigned to a level.
func levelColor(level Level) string {
	switch level {
	case DebugLevel:
		return ansiBrightBlue
	case InfoLevel:
		return ansiBrightGreen
	case WarningLevel:
		return ansiBrightYellow
	case ErrorLevel:
		return ansiBrightRed
	case CriticalLevel:
		return ansiBgRed + ansiWhite + ansiBold
	default:
		return ""
	}
}

// colorizeLevel wraps the level name in its color sequence when enabled,
// leaving the rest of the line untouched.
func colorizeLevel(level Level, enabled bool) string {
	if !enabled {
		return level.String()
	}
	return levelColor(level) + level.String() + ansiReset
}

// stripANSI removes ANSI escape sequences from s. File output is always
// plain, and message bodies may carry escapes from upstream data that must
// not leak into log files.
func stripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// writerSupportsColor reports whether w can render ANSI colors. Real file
// descriptors must be terminals; anything else (test buffers, pipes wrapped
// in custom writers) is assumed color-capable and left to the UseColors
// setting alone.
func writerSupportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
