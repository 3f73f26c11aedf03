package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/accord-sh/accord/internal/adapter/outbound/batchsource"
	"github.com/accord-sh/accord/internal/adapter/outbound/runstore"
	"github.com/accord-sh/accord/internal/domain/conflict"
	"github.com/accord-sh/accord/internal/metrics"
	"github.com/accord-sh/accord/internal/telemetry"
)

var (
	benchConstraintsPath string
	benchEventsPath      string
	benchMode            string
	benchIterations      int
	benchMetricsAddr     string
	benchRunStorePath    string
)

// benchCmd is the direct descendant of the original ACCORD experiments'
// expr1_construction-time.py / expr1_detection.py: it repeats Build and
// Classify and reports the same two figures of merit those scripts timed
// by hand, now as OTel spans/histograms plus a stdout summary.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Repeat build+classify and report construction/classification timing",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchConstraintsPath, "constraints", "", "path to a JSON array of constraint records")
	benchCmd.Flags().StringVar(&benchEventsPath, "events", "", "path to a JSON array of event records")
	benchCmd.Flags().StringVar(&benchMode, "mode", "lenient", "malformed-constraint handling: strict or lenient")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 1, "number of build+classify cycles to run")
	benchCmd.Flags().StringVar(&benchMetricsAddr, "metrics-addr", "", "serve Prometheus metrics at this address (opt-in; empty disables)")
	benchCmd.Flags().StringVar(&benchRunStorePath, "run-store", "", "sqlite path to record run metadata (empty disables)")
	_ = benchCmd.MarkFlagRequired("constraints")
	_ = benchCmd.MarkFlagRequired("events")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := slog.Default()

	mode, err := parseBuildMode(benchMode)
	if err != nil {
		return err
	}

	rawConstraints, err := batchsource.LoadConstraints(benchConstraintsPath)
	if err != nil {
		return err
	}
	rawEvents, err := batchsource.LoadEvents(benchEventsPath)
	if err != nil {
		return err
	}

	provider, err := telemetry.NewProvider(ctx, io.Discard)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer provider.Shutdown(ctx)

	var reg *prometheus.Registry
	var promMetrics *metrics.Metrics
	if benchMetricsAddr != "" {
		reg = prometheus.NewRegistry()
		promMetrics = metrics.NewMetrics(reg)
		go serveMetrics(benchMetricsAddr, reg, logger)
	}

	var runStore *runstore.Store
	if benchRunStorePath != "" {
		runStore, err = runstore.Open(benchRunStorePath, logger)
		if err != nil {
			return fmt.Errorf("opening run store: %w", err)
		}
		defer runStore.Close()
	}

	if benchIterations < 1 {
		benchIterations = 1
	}

	for i := 0; i < benchIterations; i++ {
		startedAt := time.Now().UTC()
		engine := conflict.New(conflict.WithLogger(logger))

		var buildElapsed, classifyElapsed time.Duration
		buildStart := time.Now()
		err := provider.TraceBuild(ctx, func(ctx context.Context) error {
			return engine.Build(ctx, rawConstraints, mode)
		})
		buildElapsed = time.Since(buildStart)
		if err != nil {
			return fmt.Errorf("iteration %d: building engine: %w", i, err)
		}

		classifyStart := time.Now()
		_, err = provider.TraceClassify(ctx, func(ctx context.Context) ([]bool, error) {
			return engine.Classify(ctx, rawEvents)
		})
		classifyElapsed = time.Since(classifyStart)
		if err != nil {
			return fmt.Errorf("iteration %d: classifying events: %w", i, err)
		}

		stats := engine.Stats()
		if promMetrics != nil {
			promMetrics.ObserveBuild(buildElapsed.Seconds(), stats.ConstraintsIndexed)
			promMetrics.ObserveClassify(classifyElapsed.Seconds(), stats.EventsClassified, stats.ConflictsFound)
		}

		fmt.Printf("iteration %d: build=%s classify=%s constraints=%d events=%d conflicts=%d\n",
			i, buildElapsed, classifyElapsed, stats.ConstraintsIndexed, stats.EventsClassified, stats.ConflictsFound)

		if runStore != nil {
			err := runStore.Record(ctx, runstore.DetectionRun{
				ID:                 uuid.NewString(),
				StartedAt:          startedAt,
				BuildMode:          benchMode,
				ConstraintsIndexed: stats.ConstraintsIndexed,
				ConstraintsDropped: stats.ConstraintsDropped,
				EventsClassified:   stats.EventsClassified,
				ConflictsFound:     stats.ConflictsFound,
				BuildDuration:      buildElapsed,
				ClassifyDuration:   classifyElapsed,
			})
			if err != nil {
				logger.WarnContext(ctx, "recording run metadata", "error", err)
			}
		}
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
