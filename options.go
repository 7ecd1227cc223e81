package jsonstream

// Option configures an Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	logger Logger
}

func newEngineConfig() *engineConfig {
	return &engineConfig{logger: NopLogger{}}
}

// WithLogger sets the Logger an Engine uses for strategy-decision and
// error diagnostics. The default is NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *engineConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
