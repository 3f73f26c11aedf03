package batchsource

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConstraints_PicksByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "constraints.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"document_ids":["doc1"],"action_type":"Can Delete","actor_ids":["admin@x"]}]`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	yamlPath := filepath.Join(dir, "constraints.yaml")
	if err := os.WriteFile(yamlPath, []byte("- document_ids: [\"doc1\"]\n  action_type: \"Can Delete\"\n  actor_ids: [\"admin@x\"]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		rows, err := LoadConstraints(path)
		if err != nil {
			t.Fatalf("LoadConstraints(%s) error = %v", path, err)
		}
		if len(rows) != 1 || rows[0].ActionType != "Can Delete" {
			t.Errorf("LoadConstraints(%s) = %+v, want one Can Delete row", path, rows)
		}
	}
}
