package loggio

import (
	"regexp"
	"strings"
	"testing"
)

func TestCallerLocation_ReportsCallingFile(t *testing.T) {
	file, line := callerLocation(1)
	if file != "caller_test.go" {
		t.Errorf("callerLocation file = %q, want caller_test.go", file)
	}
	if line <= 0 {
		t.Errorf("callerLocation line = %d, want positive", line)
	}
}

func TestCallerLocation_ShallowStackFallsBack(t *testing.T) {
	file, line := callerLocation(500)
	if file == "unknown" || file == "" {
		t.Errorf("expected a resolvable fallback frame, got %q:%d", file, line)
	}
}

// Every level method must sit the same number of frames above the call
// site. A wrong depth reports a file inside this package instead of the
// caller's, so exercise all five entry points.
func TestLevelMethods_ReportCallSite(t *testing.T) {
	stdout, stderr, restore := captureOutput()
	defer restore()

	r := NewRegistry()
	defer r.Close()
	log, err := r.GetLogger("caller-depth", WithLevel(DebugLevel), WithColors(false))
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}

	log.Debug("d")
	log.Info("i")
	log.Warning("w")
	log.Error("e")
	log.Critical("c")

	lines := strings.Split(strings.TrimSuffix(stdout.String()+stderr.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	loc := regexp.MustCompile(`\]caller_test\.go:\d+:`)
	for _, line := range lines {
		if !loc.MatchString(line) {
			t.Errorf("line does not report the call site: %q", line)
		}
	}
}
