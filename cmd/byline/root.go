package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"byline/internal/config"
	"byline/internal/domain/entity"
	"byline/internal/observability/logging"
	"byline/internal/observability/tracing"
	pkgconfig "byline/internal/pkg/config"
	"byline/internal/usecase/catalog"
)

// configMetrics is registered once per process; commands may run repeatedly in tests.
var configMetrics = sync.OnceValue(func() *pkgconfig.ConfigMetrics {
	return pkgconfig.NewConfigMetrics("byline", prometheus.DefaultRegisterer)
})

// app holds the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	trace   bool

	cfg      *config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "byline",
		Short: "Explore the relationships between authors, magazines and articles",
		Long: `byline builds an in-memory graph of authors, magazines and the
articles that link them, then answers questions about it.

Examples:
  # Print the sample graph and its derived views
  byline demo

  # Per-magazine summary with the metrics recorded while building it
  byline report --metrics

  # Emit spans to stderr
  byline --trace demo`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (YAML); BYLINE_* environment variables override it")
	root.PersistentFlags().BoolVar(&a.trace, "trace", false,
		"write OpenTelemetry spans to stderr")

	root.AddCommand(newDemoCmd(a), newReportCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.trace {
		cfg.Tracing.Enabled = true
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.logger = logging.WithFields(logging.New(cmd.ErrOrStderr(), cfg.Logging.Format, level),
		map[string]interface{}{"command": cmd.Name()})

	for _, w := range cfg.Warnings {
		a.logger.Warn("configuration fallback applied", slog.String("warning", w))
	}
	if cfg.Metrics.Enabled {
		cfg.RecordMetrics(configMetrics())
	}

	shutdown, err := tracing.Setup(cfg.Tracing.Enabled, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	a.shutdown = shutdown

	runID := logging.NewRunID()
	ctx := logging.WithRunID(cmd.Context(), runID)
	ctx = logging.WithLogger(ctx, a.logger)
	cmd.SetContext(ctx)

	a.logger.Debug("byline starting",
		slog.String("run_id", runID),
		slog.Bool("tracing", cfg.Tracing.Enabled),
		slog.Bool("metrics", cfg.Metrics.Enabled))
	return nil
}

// runE wraps a subcommand so tracing is flushed whether or not run fails.
func (a *app) runE(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if terr := a.teardown(context.WithoutCancel(cmd.Context())); err == nil {
				err = terr
			}
		}()
		return run(cmd, args)
	}
}

func (a *app) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	shutdown := a.shutdown
	a.shutdown = nil
	if err := shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown tracing: %w", err)
	}
	return nil
}

// newService returns a catalog service over a fresh registry.
func (a *app) newService() *catalog.Service {
	svc := catalog.NewService(entity.NewRegistry(), a.logger)
	svc.RecordMetrics = a.cfg.Metrics.Enabled
	return svc
}
