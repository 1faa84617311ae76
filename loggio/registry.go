package loggio

import "sync"

// Option customizes the config built for a GetLogger call.
type Option func(*Config)

// WithLevel sets the minimum severity to emit.
func WithLevel(level Level) Option {
	return func(c *Config) { c.Level = level }
}

// WithFile enables file output to path, appending and creating the parent
// directory when missing.
func WithFile(path string) Option {
	return func(c *Config) { c.FilePath = path }
}

// WithTerminal enables or disables console output.
func WithTerminal(enabled bool) Option {
	return func(c *Config) { c.Terminal = enabled }
}

// WithTimezone sets the IANA timezone identifier used for timestamps.
// An invalid identifier makes GetLogger fail with *InvalidTimezoneError.
func WithTimezone(id string) Option {
	return func(c *Config) { c.Timezone = id }
}

// WithColors enables or disables ANSI coloring of terminal output.
func WithColors(enabled bool) Option {
	return func(c *Config) { c.UseColors = enabled }
}

// WithTruncate enables or disables message truncation.
func WithTruncate(enabled bool) Option {
	return func(c *Config) { c.Truncate = enabled }
}

// WithTruncateLength sets the maximum message length in characters.
func WithTruncateLength(n int) Option {
	return func(c *Config) { c.TruncateLength = n }
}

// WithJSONFormat enables JSON serialization of substitution arguments.
func WithJSONFormat(enabled bool) Option {
	return func(c *Config) { c.JSONFormat = enabled }
}

// defaultConfig returns the settings a logger gets when no options are
// supplied: INFO level, terminal only, host timezone, colors on, truncation
// on at 10000 characters.
func defaultConfig(name string) Config {
	return Config{
		Name:           name,
		Level:          InfoLevel,
		Terminal:       true,
		UseColors:      true,
		Truncate:       true,
		TruncateLength: 10000,
	}
}

func buildConfig(name string, opts []Option) Config {
	cfg := defaultConfig(name)
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Registry is a name-keyed set of configured loggers. Each name is
// configured once and the same *Logger is handed out for it afterwards.
// Construct a fresh Registry per test for isolation; application code
// normally uses the package-level GetLogger backed by the default
// registry.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// GetLogger returns the logger registered under name, creating it on first
// use. All options are validated before anything is stored, so a failed
// call never leaves a half-configured logger behind.
//
// A repeat call with options rebuilds the config from defaults plus those
// options and applies it atomically to the shared logger (last-writer-wins):
// every handle previously obtained for the name sees the new config on its
// next log call. A repeat call without options returns the existing logger
// unchanged.
func (r *Registry) GetLogger(name string, opts ...Option) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		if len(opts) == 0 {
			return l, nil
		}
		if err := l.reconfigure(buildConfig(name, opts)); err != nil {
			return nil, err
		}
		return l, nil
	}

	l, err := newLogger(buildConfig(name, opts))
	if err != nil {
		return nil, err
	}
	r.loggers[name] = l
	return l, nil
}

// Close releases every logger's file handle. The registry remains usable;
// reconfiguring a logger with a file path reopens its file.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var first error
	for _, l := range r.loggers {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// defaultRegistry backs the package-level GetLogger.
var defaultRegistry = NewRegistry()

// GetLogger returns the named logger from the process-wide default
// registry. See Registry.GetLogger for creation and reconfiguration
// semantics.
func GetLogger(name string, opts ...Option) (*Logger, error) {
	return defaultRegistry.GetLogger(name, opts...)
}

// Close releases every file handle held by the default registry. Call it
// when the application shuts down to ensure logs are flushed.
func Close() error {
	return defaultRegistry.Close()
}
