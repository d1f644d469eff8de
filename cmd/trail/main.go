// Package main runs the mouse trail demo in a terminal.
//
// Topology:
//
//	[tcell screen] -> (reader goroutine) -> [ring queue]
//	               -> (run loop: drain, publish, render)
//	               -> quit | press colour | release colour | filter -> map -> buffer -> trail
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"go-rxtrail/pkg/trail"
	"go-rxtrail/pkg/trail/term"
)

// Build information constants
const (
	Version = "0.1.0"
	appName = "trail"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cli, err := parseFlags(args)
	if err != nil {
		return err
	}
	if err := validateFlags(cli); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if cli.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil
	}

	cfg, err := loadConfig(cli.ConfigPath)
	if err != nil {
		return err
	}
	if cli.TrailLength > 0 {
		cfg.TrailLength = cli.TrailLength
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logOut, closeLog, err := openLogOutput(cli.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := setupLogger(cli.LogLevel, cli.LogFormat, logOut)
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	metrics, err := trail.NewMetrics(registry)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := term.NewScreen()
	if err != nil {
		return err
	}
	session, err := term.Open(ctx, screen, append(cfg.sessionOptions(), term.WithLogger(logger))...)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("close terminal", "error", err)
		}
	}()

	opts := append(cfg.appOptions(), trail.WithLogger(logger), trail.WithMetrics(metrics))
	app, err := trail.New(session, session, opts...)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		return err
	}
	logSummary(logger, registry)
	return nil
}

// logSummary writes the final value of every trail metric.
func logSummary(logger *slog.Logger, reg prometheus.Gatherer) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				attrs = append(attrs, "value", m.GetGauge().GetValue())
			}
			logger.Info("run summary", attrs...)
		}
	}
}
