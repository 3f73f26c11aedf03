package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDumpYAML(t *testing.T) {
	cfg := &Config{
		Input:     InputConfig{Constraints: "constraints.json", Events: "events.json"},
		BuildMode: "strict",
		CacheSize: 256,
	}

	out, err := DumpYAML(cfg)
	if err != nil {
		t.Fatalf("DumpYAML() error: %v", err)
	}

	rendered := string(out)
	for _, want := range []string{"build_mode: strict", "cache_size: 256", "constraints.json"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("DumpYAML() = %q, want substring %q", rendered, want)
		}
	}
}

func TestFindConfigFileInPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accord.yaml")
	if err := os.WriteFile(path, []byte("build_mode: lenient\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got := findConfigFileInPaths([]string{t.TempDir(), dir})
	if got != path {
		t.Errorf("findConfigFileInPaths() = %q, want %q", got, path)
	}
}

func TestFindConfigFileInPaths_NoMatch(t *testing.T) {
	if got := findConfigFileInPaths([]string{t.TempDir()}); got != "" {
		t.Errorf("findConfigFileInPaths() = %q, want empty", got)
	}
}
