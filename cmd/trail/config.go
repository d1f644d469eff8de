package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"go-rxtrail/pkg/trail"
	"go-rxtrail/pkg/trail/term"
)

// FileConfig is the optional YAML configuration file.
type FileConfig struct {
	TrailLength  int    `yaml:"trail_length"`
	IdleColor    string `yaml:"idle_color"`
	PressedColor string `yaml:"pressed_color"`
	Glyph        string `yaml:"glyph"`
	QueueSize    int    `yaml:"queue_size"`
	FPS          int    `yaml:"fps"`
}

func defaultFileConfig() *FileConfig {
	return &FileConfig{
		TrailLength:  trail.DefaultTrailLength,
		IdleColor:    "white",
		PressedColor: "red",
		Glyph:        "█",
		QueueSize:    term.DefaultQueueSize,
		FPS:          60,
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (*FileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the file configuration.
func (c *FileConfig) Validate() error {
	if c.TrailLength < 1 {
		return fmt.Errorf("trail_length must be positive, got %d", c.TrailLength)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue_size must be positive, got %d", c.QueueSize)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if len([]rune(c.Glyph)) != 1 {
		return fmt.Errorf("glyph must be a single character, got %q", c.Glyph)
	}
	if _, err := term.ParseColor(c.IdleColor); err != nil {
		return fmt.Errorf("idle_color: %w", err)
	}
	if _, err := term.ParseColor(c.PressedColor); err != nil {
		return fmt.Errorf("pressed_color: %w", err)
	}
	return nil
}

// appOptions converts the file configuration into trail options.
// Validate must have succeeded.
func (c *FileConfig) appOptions() []trail.Option {
	idle, _ := term.ParseColor(c.IdleColor)
	pressed, _ := term.ParseColor(c.PressedColor)
	return []trail.Option{
		trail.WithTrailLength(c.TrailLength),
		trail.WithColors(idle, pressed),
	}
}

// sessionOptions converts the file configuration into terminal options.
// An fps of zero renders as fast as the loop spins.
func (c *FileConfig) sessionOptions() []term.Option {
	interval := time.Duration(0)
	if c.FPS > 0 {
		interval = time.Second / time.Duration(c.FPS)
	}
	return []term.Option{
		term.WithGlyph([]rune(c.Glyph)[0]),
		term.WithQueueSize(c.QueueSize),
		term.WithFrameInterval(interval),
	}
}
