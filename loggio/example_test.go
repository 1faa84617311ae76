package loggio_test

import "github.com/xcollantes/loggio/loggio"

// This example shows the default console setup with percent substitution.
func ExampleGetLogger() {
	log, err := loggio.GetLogger("orders")
	if err != nil {
		panic(err)
	}
	log.Info("Processing item %s with priority %d", "A123", 2)
	log.Warning("queue depth at %d%%", 85)
}

// This example shows a logger configured for file output in a fixed
// timezone, with debug records enabled.
func ExampleGetLogger_configured() {
	log, err := loggio.GetLogger("worker",
		loggio.WithLevel(loggio.DebugLevel),
		loggio.WithFile("/var/log/worker.log"),
		loggio.WithTimezone("America/New_York"),
	)
	if err != nil {
		panic(err)
	}
	defer loggio.Close()
	log.Debug("worker started")
}

// This example attaches a user identity to individual records.
func ExampleUserContext() {
	log, err := loggio.GetLogger("audit")
	if err != nil {
		panic(err)
	}
	log.Info("password changed", loggio.UserContext{"uid": "user123"})
	log.Error("login rejected for %s", "rogue", loggio.UserContext{"uid": "user456"})
}

// This example overrides logger settings for a single call.
func ExampleJSONEncode() {
	log, err := loggio.GetLogger("api")
	if err != nil {
		panic(err)
	}
	payload := map[string]any{"order": "A123", "qty": 2}
	log.Info("request body: %s", payload, loggio.JSONEncode(true))
	log.Debug("full dump: %s", payload, loggio.Truncate(false))
}

// This example keeps multiple named loggers in one isolated registry.
func ExampleNewRegistry() {
	r := loggio.NewRegistry()
	defer r.Close()

	db, err := r.GetLogger("db", loggio.WithLevel(loggio.WarningLevel))
	if err != nil {
		panic(err)
	}
	web, err := r.GetLogger("web")
	if err != nil {
		panic(err)
	}
	db.Warning("slow query: %dms", 1200)
	web.Info("listening on :8080")
}
