package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/ogametools-go/internal/adapters/metrics"
	"github.com/andrescamacho/ogametools-go/internal/application/logging"
	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	"github.com/andrescamacho/ogametools-go/internal/application/production"
	universeapp "github.com/andrescamacho/ogametools-go/internal/application/universe"
	"github.com/andrescamacho/ogametools-go/internal/domain/universe"
	"github.com/andrescamacho/ogametools-go/internal/infrastructure/config"
	logsetup "github.com/andrescamacho/ogametools-go/internal/infrastructure/logging"
)

// application wires configuration, logging, metrics and the mediator for
// a single CLI invocation
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	mediator mediator.Mediator
	closeLog func() error
}

func newApplication(cmd *cobra.Command) (*application, error) {
	switch outputFormat {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q: use text, json or yaml", outputFormat)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Flags take precedence over file and environment
	if universePath != "" {
		cfg.Universe.Path = universePath
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if withMetrics {
		cfg.Metrics.Enabled = true
	}

	logger, closeLog, err := buildLogger(cmd, cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	m, err := buildMediator(cfg, logger)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	return &application{
		cfg:      cfg,
		logger:   logger,
		mediator: m,
		closeLog: closeLog,
	}, nil
}

// buildLogger routes stdout and stderr logging through cobra's streams so
// tests can capture them; file output goes through the infrastructure logger
func buildLogger(cmd *cobra.Command, cfg config.LoggingConfig) (*slog.Logger, func() error, error) {
	if cfg.Output == "file" {
		return logsetup.NewLogger(cfg)
	}

	level, err := logsetup.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	w := cmd.ErrOrStderr()
	if cfg.Output == "stdout" {
		w = cmd.OutOrStdout()
	}
	return logsetup.NewWriterLogger(w, cfg.Format, level), func() error { return nil }, nil
}

func buildMediator(cfg *config.Config, logger *slog.Logger) (mediator.Mediator, error) {
	var (
		queryMetrics *metrics.QueryMetricsCollector
		recorder     production.MetricsRecorder
	)

	metrics.Reset()
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		queryMetrics = metrics.NewQueryMetricsCollector()
		if err := queryMetrics.Register(); err != nil {
			return nil, fmt.Errorf("failed to register query metrics: %w", err)
		}
		productionMetrics := metrics.NewProductionMetricsCollector()
		if err := productionMetrics.Register(); err != nil {
			return nil, fmt.Errorf("failed to register production metrics: %w", err)
		}
		recorder = productionMetrics
	}

	m := mediator.NewMediator()
	m.RegisterMiddleware(logging.LoggingMiddleware(logger))
	m.RegisterMiddleware(metrics.PrometheusMiddleware(queryMetrics))

	registrations := []error{
		mediator.RegisterHandler[*universeapp.LoadUniverseQuery](m, universeapp.NewLoadUniverseHandler()),
		mediator.RegisterHandler[*production.GetMineTableQuery](m, production.NewGetMineTableHandler(recorder)),
		mediator.RegisterHandler[*production.GetPlanetProductionQuery](m, production.NewGetPlanetProductionHandler(recorder)),
		mediator.RegisterHandler[*production.RecommendUpgradeQuery](m, production.NewRecommendUpgradeHandler(recorder)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return m, nil
}

// loadUniverse loads the universe at path, or the configured one when path is empty
func (a *application) loadUniverse(ctx context.Context, path string) (*universe.Universe, error) {
	if path == "" {
		path = a.cfg.Universe.Path
	}

	response, err := a.mediator.Send(ctx, &universeapp.LoadUniverseQuery{Path: path})
	if err != nil {
		return nil, err
	}
	return response.(*universeapp.LoadUniverseResponse).Universe, nil
}

// close flushes metrics and releases the log output
func (a *application) close(w io.Writer) error {
	if err := metrics.WriteText(w); err != nil {
		return err
	}
	return a.closeLog()
}
