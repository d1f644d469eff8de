package stream

import "log/slog"

// StreamConfig holds configuration for stream operators.
type StreamConfig struct {
	Step   int
	Logger *slog.Logger
}

// Option is a functional option for configuring stream operators.
type Option func(*StreamConfig)

// DefaultConfig returns the default configuration.
func DefaultConfig() StreamConfig {
	return StreamConfig{
		Step: DefaultStep,
	}
}

// WithStep sets how many insertions a Buffer waits between emissions once full.
// Non-positive values are ignored.
func WithStep(step int) Option {
	return func(c *StreamConfig) {
		if step > 0 {
			c.Step = step
		}
	}
}

// WithLogger sets the logger used by Publish for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *StreamConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

// ApplyOptions applies the given options to the default configuration.
func ApplyOptions(opts ...Option) StreamConfig {
	config := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&config)
		}
	}
	config.Step = sanitizeStep(config.Step)
	config.Logger = loggerOrDefault(config.Logger)
	return config
}
