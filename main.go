package main

import (
	"fmt"
	"os"

	"github.com/xcollantes/loggio/loggio"
)

// Example demonstrating loggio usage.
func main() {
	logFile := ""

	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	// Obtain a named logger with optional file logging.
	// Usage: ./loggio [logfile]
	// Example: ./loggio ./app.log
	opts := []loggio.Option{loggio.WithLevel(loggio.DebugLevel)}
	if logFile != "" {
		opts = append(opts, loggio.WithFile(logFile))
	}
	log, err := loggio.GetLogger("demo", opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer loggio.Close() // Don't forget to release the log file!

	if logFile != "" {
		log.Info("Logging to terminal and file: %s", logFile)
	} else {
		log.Info("Logging to terminal only (provide a log file path to enable file logging)")
	}

	// All levels, colorized on a terminal.
	log.Debug("This is a debug message.")
	log.Info("Hello, %s!", "world")
	log.Warning("This is a warning message.")
	log.Error("This is an error message.")
	log.Critical("This is a critical message.")

	// Percent-style substitution.
	log.Info("Processing item %s with priority %d", "A123", 2)

	// A mismatched template still emits, with a format-error note.
	log.Info("Processing item %s with priority %d", "A123")

	// Authenticated-user prefix.
	log.Info("See UID on the left.", loggio.UserContext{"uid": "1234567890"})

	// JSON serialization of structured arguments.
	payload := map[string]any{"results": []int{1, 2, 3}, "metadata": map[string]string{"source": "API"}}
	log.Info("Received data %s", payload, loggio.JSONEncode(true))

	// Truncation, per call.
	longMessage := "The path of the righteous man is beset on all sides by the inequities of the selfish and the tyranny of evil men."
	log.Info("Show truncated message: %s", longMessage, loggio.TruncateLength(60))
	log.Info("Show full message with no truncation: %s", longMessage, loggio.Truncate(false))

	// Timezone support.
	zones := loggio.AvailableTimezones()
	log.Info("Total IANA timezones available: %d", len(zones))

	if loggio.IsValidTimezone("America/New_York") {
		log.Info("Timezone %s is valid.", "America/New_York")
	}
	if !loggio.IsValidTimezone("PST") {
		log.Warning("PST is not valid. Use America/Los_Angeles instead.")
	}

	// Reconfiguring the named logger switches the timezone for every
	// handle obtained under that name. The base options ride along so the
	// reconfigured logger keeps its level and log file.
	for _, tz := range []string{"UTC", "Asia/Tokyo", "America/New_York"} {
		tzOpts := append([]loggio.Option{}, opts...)
		tzOpts = append(tzOpts, loggio.WithTimezone(tz))
		log, err = loggio.GetLogger("demo", tzOpts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "timezone switch failed: %v\n", err)
			os.Exit(1)
		}
		log.Info("This message is logged in the %s timezone.", tz)
	}
}
