package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	LogFile     string
	TrailLength int
	ShowVersion bool
}

func parseFlags(args []string) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("TRAIL_CONFIG", ""),
		"Path to YAML configuration file (env: TRAIL_CONFIG)")
	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("TRAIL_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: TRAIL_LOG_LEVEL)")
	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("TRAIL_LOG_FORMAT", "text"),
		"Log format: json, text (env: TRAIL_LOG_FORMAT)")
	fs.StringVar(&cfg.LogFile, "log-file",
		getEnv("TRAIL_LOG_FILE", ""),
		"Write logs to this file; the terminal is owned by the UI (env: TRAIL_LOG_FILE)")
	fs.IntVar(&cfg.TrailLength, "trail",
		getEnvInt("TRAIL_LENGTH", 0),
		"Trail length, overrides the config file (env: TRAIL_LENGTH)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	fs.Usage = func() { printHelp(fs) }
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fs.Usage()
		}
		return nil, err
	}
	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion {
		return nil
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if !slices.Contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}
	if cfg.TrailLength < 0 {
		return fmt.Errorf("invalid trail length: %d", cfg.TrailLength)
	}
	return nil
}

func printHelp(fs *flag.FlagSet) {
	fs.SetOutput(os.Stderr)
	_, _ = fmt.Fprintf(os.Stderr, `%s - mouse trail in the terminal

Usage: %s [options]

Move the mouse to draw, hold the left button to change colour,
press q, Esc or Ctrl-C to quit.

Options:
`, appName, os.Args[0])
	fs.PrintDefaults()
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
