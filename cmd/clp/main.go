package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/DimaEnotoff/friendlyclp/internal/commands"
	"github.com/DimaEnotoff/friendlyclp/internal/config"
	"github.com/DimaEnotoff/friendlyclp/internal/engine"
	"github.com/DimaEnotoff/friendlyclp/internal/shell"
)

func main() {
	flags := pflag.NewFlagSet("clp", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to the configuration file")
	plain := flags.Bool("plain", false, "read lines from stdin instead of the interactive shell")
	logLevel := flags.String("log-level", "", "log level: debug, info, warn or error")
	logFormat := flags.String("log-format", "", "log format: text or json")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "clp: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clp: %v\n", err)
		os.Exit(2)
	}
	// Flags override the config file.
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "clp: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	e := engine.New("Available commands:", engine.WithLogger(logger))
	if err := commands.Install(e, logger); err != nil {
		fmt.Fprintf(os.Stderr, "clp: failed to register commands: %v\n", err)
		os.Exit(1)
	}

	dispatcher := shell.NewDispatcher(e, time.Duration(cfg.Shell.HelpCacheMinutes)*time.Minute)
	if *plain {
		err = shell.RunPlain(dispatcher, cfg.Shell, os.Stdin, os.Stdout)
	} else {
		err = shell.Run(dispatcher, cfg.Shell)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "clp: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds a slog.Logger for the configured level and format.
func newLogger(cfg config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", cfg.Format)
}
