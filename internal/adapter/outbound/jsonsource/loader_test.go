package jsonsource

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConstraints(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "constraints.json")
	content := `[
		{
			"document_ids": ["doc1"],
			"action_type": "Can Delete",
			"actor_ids": ["admin@x"],
			"comparator": ""
		}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	rows, err := LoadConstraints(path)
	if err != nil {
		t.Fatalf("LoadConstraints() error = %v", err)
	}
	if len(rows) != 1 || rows[0].ActionType != "Can Delete" {
		t.Errorf("rows = %+v, want one Can Delete row", rows)
	}
}

func TestLoadEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	content := `[
		{"activity_time":"2024-04-22T15:57:06.000Z","action":"Delete","document_id":"doc1","actor_name":"admin@x"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	rows, err := LoadEvents(path)
	if err != nil {
		t.Fatalf("LoadEvents() error = %v", err)
	}
	if len(rows) != 1 || rows[0].DocumentID != "doc1" {
		t.Errorf("rows = %+v, want one doc1 row", rows)
	}
}

func TestLoadConstraints_MissingFile(t *testing.T) {
	if _, err := LoadConstraints("/nonexistent/path.json"); err == nil {
		t.Error("LoadConstraints() error = nil, want error for missing file")
	}
}
