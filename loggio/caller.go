package loggio

import (
	"path/filepath"
	"runtime"
)

// logCallDepth is the number of stack frames between callerLocation and the
// application code that invoked a level method: callerLocation -> emit ->
// level method -> caller. Recompute this constant whenever the internal
// call chain gains or loses a frame; runtime.Caller raises no error for a
// wrong depth, it just reports the wrong file forever.
const logCallDepth = 3

// callerLocation returns the base file name and line number of the frame
// skip levels above it. When the stack is shallower than expected (top-level
// contexts, assembly trampolines) it falls back to the deepest frame it can
// resolve rather than failing.
func callerLocation(skip int) (string, int) {
	for s := skip; s >= 0; s-- {
		if _, file, line, ok := runtime.Caller(s); ok {
			return filepath.Base(file), line
		}
	}
	return "unknown", 0
}
