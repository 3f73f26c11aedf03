package config

import "testing"

func minimalValidConfig() *Config {
	cfg := &Config{
		Input: InputConfig{Constraints: "constraints.json", Events: "events.json"},
	}
	cfg.SetDefaults()
	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := minimalValidConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_MissingInputPaths(t *testing.T) {
	t.Parallel()

	cfg := minimalValidConfig()
	cfg.Input.Constraints = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for missing input.constraints")
	}
}

func TestValidate_InvalidBuildMode(t *testing.T) {
	t.Parallel()

	cfg := minimalValidConfig()
	cfg.BuildMode = "aggressive"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for invalid build_mode")
	}
}

func TestValidate_NegativeCacheSize(t *testing.T) {
	t.Parallel()

	cfg := minimalValidConfig()
	cfg.CacheSize = -1
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for negative cache_size")
	}
}

func TestValidate_InvalidMetricsAddr(t *testing.T) {
	t.Parallel()

	cfg := minimalValidConfig()
	cfg.MetricsAddr = "not a host port"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() error = nil, want error for invalid metrics_addr")
	}
}
