package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/accord-sh/accord/internal/adapter/outbound/batchsource"
	"github.com/accord-sh/accord/internal/domain/conflict"
)

var (
	classifyConstraintsPath string
	classifyEventsPath      string
	classifyMode            string
	classifyCacheSize       int
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Build an engine from a constraint batch and classify an event batch",
	Long: `classify reads a constraint batch and an event batch, builds the
conflict-detection index, classifies every event, and prints one JSON
boolean per line in input order.`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyConstraintsPath, "constraints", "", "path to a JSON or YAML array of constraint records")
	classifyCmd.Flags().StringVar(&classifyEventsPath, "events", "", "path to a JSON or YAML array of event records")
	classifyCmd.Flags().StringVar(&classifyMode, "mode", "lenient", "malformed-constraint handling: strict or lenient")
	classifyCmd.Flags().IntVar(&classifyCacheSize, "cache-size", 0, "classify-result LRU cache size (0 disables caching)")
	_ = classifyCmd.MarkFlagRequired("constraints")
	_ = classifyCmd.MarkFlagRequired("events")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := slog.Default()

	mode, err := parseBuildMode(classifyMode)
	if err != nil {
		return err
	}

	rawConstraints, err := batchsource.LoadConstraints(classifyConstraintsPath)
	if err != nil {
		return err
	}
	rawEvents, err := batchsource.LoadEvents(classifyEventsPath)
	if err != nil {
		return err
	}

	engine := conflict.New(conflict.WithLogger(logger), conflict.WithCacheSize(classifyCacheSize))
	if err := engine.Build(ctx, rawConstraints, mode); err != nil {
		return fmt.Errorf("building engine: %w", err)
	}

	results, err := engine.Classify(ctx, rawEvents)
	if err != nil {
		return fmt.Errorf("classifying events: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

func parseBuildMode(s string) (conflict.BuildMode, error) {
	switch s {
	case "strict":
		return conflict.ModeStrict, nil
	case "lenient":
		return conflict.ModeLenient, nil
	default:
		return 0, fmt.Errorf("invalid --mode %q: must be strict or lenient", s)
	}
}
