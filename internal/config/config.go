// Package config provides configuration types for the accord CLI.
package config

// Config is the top-level configuration for the accord conflict-detection
// engine's CLI surface. The engine itself is a library and takes no
// configuration of its own (spec.md §6). The fields mirror the settings of
// the classify and bench commands, but those commands read only their own
// flags; a Config is loaded and printed by `accord config`.
type Config struct {
	// Input configures where constraint and event batches are read from.
	Input InputConfig `yaml:"input" mapstructure:"input"`

	// BuildMode selects strict or lenient malformed-constraint handling
	// (spec.md §4.5, §7). Defaults to "lenient".
	BuildMode string `yaml:"build_mode" mapstructure:"build_mode" validate:"omitempty,build_mode"`

	// CacheSize bounds the optional classify-result LRU cache. 0 (the
	// default) disables caching.
	CacheSize int `yaml:"cache_size" mapstructure:"cache_size" validate:"gte=0"`

	// BenchIterations is the default iteration count for `accord bench`.
	BenchIterations int `yaml:"bench_iterations" mapstructure:"bench_iterations" validate:"gte=0"`

	// MetricsAddr, if non-empty, serves Prometheus metrics at /metrics on
	// this address. Empty (the default) means metrics are not served.
	MetricsAddr string `yaml:"metrics_addr" mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`

	// RunStorePath is the sqlite file backing run-history metadata
	// (internal/adapter/outbound/runstore). Empty disables run recording.
	RunStorePath string `yaml:"run_store_path" mapstructure:"run_store_path"`

	// LogLevel sets the minimum slog level. Valid values: "debug", "info",
	// "warn", "error". Defaults to "info".
	LogLevel string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
}

// InputConfig names the constraint and event batch files.
type InputConfig struct {
	// Constraints is the path to a JSON array of constraint records.
	Constraints string `yaml:"constraints" mapstructure:"constraints"`

	// Events is the path to a JSON array of event records.
	Events string `yaml:"events" mapstructure:"events"`
}

// SetDefaults fills in zero-valued optional fields.
func (c *Config) SetDefaults() {
	if c.BuildMode == "" {
		c.BuildMode = "lenient"
	}
	if c.BenchIterations == 0 {
		c.BenchIterations = 1
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
