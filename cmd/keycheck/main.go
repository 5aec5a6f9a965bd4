// keycheck verifies that every locale translation file exposes exactly the
// keys of the reference locale, so CI can fail on untranslated or stale keys.
// Exit code 0 = all locales match. Exit code 1 = missing or malformed files,
// unknown reference locale, or key mismatch. Exit code 2 = usage error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/finops-claw-gang/keycheck/internal/checker"
	"github.com/finops-claw-gang/keycheck/internal/config"
	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/observability"
	"github.com/finops-claw-gang/keycheck/internal/report"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keycheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML configuration file")
	root := fs.String("root", "", "root directory containing the locales directory (env "+config.EnvRoot+")")
	localesDir := fs.String("locales-dir", "", "locales directory under root")
	fileName := fs.String("file", "", "translation file name inside each locale directory")
	locales := fs.String("locales", "", "comma separated locale identifiers")
	reference := fs.String("reference", "", "reference locale")
	ignore := fs.String("ignore", "", "comma separated glob patterns of keys to exclude")
	format := fs.String("format", "", "output format: text or json")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	workers := fs.Int("workers", 0, "maximum number of files parsed concurrently")
	trace := fs.Bool("trace", false, "export traces and metrics over OTLP HTTP")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	if *root != "" {
		cfg.RootDir = *root
	}
	if *localesDir != "" {
		cfg.LocalesDir = *localesDir
	}
	if *fileName != "" {
		cfg.FileName = *fileName
	}
	if *locales != "" {
		cfg.Locales = config.ParseList(*locales)
	}
	if *reference != "" {
		cfg.Reference = *reference
	}
	if *ignore != "" {
		cfg.Ignore = config.ParseList(*ignore)
	}
	if *format != "" {
		cfg.Format = domain.OutputFormat(*format)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *workers != 0 {
		cfg.Workers = *workers
	}
	if *trace {
		cfg.Trace = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	logger := observability.InitLogger(cfg.LogLevel, stderr)

	if cfg.Trace {
		shutdown, err := observability.InitTelemetry(ctx, observability.RunInfo{
			Root:      cfg.RootDir,
			Reference: cfg.Reference,
			Locales:   cfg.Locales,
		})
		if err != nil {
			logger.Error("telemetry disabled", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	c, err := newChecker(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	logger.Info("checking translation keys", "root", cfg.RootDir, "locales", cfg.Locales, "reference", cfg.Reference)
	result, err := c.Run(ctx)
	if werr := report.Write(stdout, cfg.Format, result, err); werr != nil {
		logger.Error("write report failed", "error", werr)
		return exitFail
	}
	if err != nil {
		logger.Debug("check failed", "status", domain.StatusOf(err), "error", err)
		return exitFail
	}
	return exitOK
}

func newChecker(cfg config.Config, logger *slog.Logger) (*checker.Checker, error) {
	metrics, err := observability.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	return checker.New(cfg, checker.WithLogger(logger), checker.WithMetrics(metrics))
}
