package trail

import "log/slog"

// DefaultTrailLength is the number of positions kept in the trail.
const DefaultTrailLength = 100

// Config holds configuration for an App.
type Config struct {
	TrailLength  int
	IdleColor    Color
	PressedColor Color
	Logger       *slog.Logger
	Metrics      *Metrics
}

// Option is a functional option for configuring an App.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TrailLength:  DefaultTrailLength,
		IdleColor:    White,
		PressedColor: Red,
	}
}

// WithTrailLength sets the trail window size. Non-positive values are ignored.
func WithTrailLength(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.TrailLength = n
		}
	}
}

// WithColors sets the colour used while the left button is up (idle) and down (pressed).
func WithColors(idle, pressed Color) Option {
	return func(c *Config) {
		c.IdleColor = idle
		c.PressedColor = pressed
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithMetrics enables instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// ApplyOptions applies the given options to the default configuration.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
