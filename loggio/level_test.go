package loggio

import (
	"strings"
	"testing"
)

func TestLevelOrdering(t *testing.T) {
	levels := AllLevels()
	if len(levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] >= levels[i] {
			t.Errorf("levels out of order: %v >= %v", levels[i-1], levels[i])
		}
	}
	if DebugLevel >= InfoLevel || InfoLevel >= WarningLevel ||
		WarningLevel >= ErrorLevel || ErrorLevel >= CriticalLevel {
		t.Errorf("severity ordering broken")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarningLevel, "WARNING"},
		{ErrorLevel, "ERROR"},
		{CriticalLevel, "CRITICAL"},
		{Level(42), "LEVEL(42)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"DEBUG", DebugLevel, false},
		{"info", InfoLevel, false},
		{"Warning", WarningLevel, false},
		{"WARN", WarningLevel, false},
		{"error", ErrorLevel, false},
		{"CRITICAL", CriticalLevel, false},
		{"crit", CriticalLevel, false},
		{"  info  ", InfoLevel, false},
		{"", InfoLevel, true},
		{"verbose", InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelColors(t *testing.T) {
	for _, level := range AllLevels() {
		if levelColor(level) == "" {
			t.Errorf("level %v has no color", level)
		}
	}
	colorized := colorizeLevel(InfoLevel, true)
	if !strings.HasPrefix(colorized, "\033[") || !strings.HasSuffix(colorized, ansiReset) {
		t.Errorf("colorized level not wrapped in ANSI codes: %q", colorized)
	}
	if plain := colorizeLevel(InfoLevel, false); plain != "INFO" {
		t.Errorf("colorizeLevel disabled = %q, want INFO", plain)
	}
}
