// Package loggio provides a leveled logging façade that enriches every
// record with caller location, a timezone-aware timestamp, an optional
// authenticated-user prefix, and per-level ANSI colors for terminals.
//
// # Line Format
//
// Every record is one line, identical for terminal and file except for
// coloring:
//
//	LEVEL:[YYYY-MM-DD HH:MM:SS ABBR±HHMM]FILENAME:LINE:MESSAGE
//
// with an optional "UID: " inserted before MESSAGE when a UserContext with
// a "uid" key is supplied. This format is a compatibility contract for
// downstream log parsers.
//
// # Features
//
//   - Named loggers with singleton-per-name semantics and last-writer-wins
//     reconfiguration
//   - Five ordered levels: DEBUG, INFO, WARNING, ERROR, CRITICAL
//   - Timezone-aware timestamps validated against the IANA database
//   - Caller file:line resolution that skips the library's own frames
//   - Percent-style argument substitution with recovered format errors
//   - Optional JSON serialization of arguments and message truncation,
//     per logger or per call
//   - Colored terminal output with color stripping for file output
//
// # Usage
//
// Obtain a logger once and share the handle:
//
//	log, err := loggio.GetLogger("billing",
//	    loggio.WithTimezone("UTC"),
//	    loggio.WithFile("logs/app.log"))
//	if err != nil {
//	    // invalid option, e.g. unknown timezone
//	}
//	defer loggio.Close()
//
//	log.Info("Processing item %s with priority %d", "A123", 2)
//	log.Error("payment failed: %s", err)
//
// Attach an authenticated user to a single record:
//
//	log.Info("order placed", loggio.UserContext{"uid": "user123"})
//
// Override formatting for a single record:
//
//	log.Info("payload: %s", payload, loggio.JSONEncode(true))
//	log.Debug("dump: %s", blob, loggio.Truncate(false))
//
// # Timezones
//
// Timestamps render in the configured zone with abbreviation and explicit
// offset, e.g. "2024-03-01 14:05:09 PST-0800". Identifiers are validated
// when the logger is configured:
//
//	loggio.IsValidTimezone("America/New_York") // true
//	loggio.IsValidTimezone("PST")              // false, not an IANA id
//	zones := loggio.AvailableTimezones()
//
// # Errors
//
// Configuration errors (unknown timezone, bad truncate length) fail the
// GetLogger call. Per-record problems never reach the caller: a template
// whose placeholders do not match its arguments still emits, carrying the
// raw template and a format-error note, and file-write failures are
// reported to stderr as best effort.
package loggio
