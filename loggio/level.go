package loggio

import (
	"fmt"
	"strings"
)

// Level defines log severity. Levels are ordered: a record is emitted only
// when its level is at or above the logger's configured minimum.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = iota
	// InfoLevel enables informational logging.
	InfoLevel
	// WarningLevel enables warning logging.
	WarningLevel
	// ErrorLevel enables error logging.
	ErrorLevel
	// CriticalLevel enables critical logging.
	CriticalLevel
)

// AllLevels returns all supported levels in ascending severity order.
func AllLevels() []Level {
	return []Level{
		DebugLevel,
		InfoLevel,
		WarningLevel,
		ErrorLevel,
		CriticalLevel,
	}
}

// String returns the canonical upper-case level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel converts a level name to its Level value.
// Matching is case-insensitive; "WARN" and "CRIT" are accepted aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRIT", "CRITICAL":
		return CriticalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("loggio: unknown level %q", s)
	}
}

// valid reports whether l is one of the defined levels.
func (l Level) valid() bool {
	return l >= DebugLevel && l <= CriticalLevel
}
