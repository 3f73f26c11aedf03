// Package yamlsource loads constraint and event batches from YAML, for
// hand-authored fixtures and CLI input alongside jsonsource's JSON
// interchange convention (spec.md §6 names JSON; YAML is an additive
// convenience format sharing the same field names).
package yamlsource

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

// constraintRow mirrors jsonsource's constraintRow, with YAML tags.
type constraintRow struct {
	DocumentNames []string `yaml:"document_names"`
	DocumentIDs   []string `yaml:"document_ids"`
	Action        string   `yaml:"action"`
	ActionType    string   `yaml:"action_type"`
	ActorIDs      []string `yaml:"actor_ids"`
	LegacyFlag    bool     `yaml:"legacy_flag"`
	Comparator    string   `yaml:"comparator"`
	Owner         string   `yaml:"owner"`
	AllowedValues []string `yaml:"allowed_values"`
}

// eventRow mirrors jsonsource's eventRow, with YAML tags.
type eventRow struct {
	ActivityTime string `yaml:"activity_time"`
	Action       string `yaml:"action"`
	DocumentID   string `yaml:"document_id"`
	DocumentName string `yaml:"document_name"`
	ActorID      string `yaml:"actor_id"`
	ActorName    string `yaml:"actor_name"`
}

// LoadConstraints reads a YAML array of constraint records from path.
func LoadConstraints(path string) ([]constraint.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamlsource: reading %s: %w", path, err)
	}
	var rows []constraintRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("yamlsource: parsing %s: %w", path, err)
	}

	out := make([]constraint.RawRecord, len(rows))
	for i, r := range rows {
		out[i] = constraint.RawRecord{
			DocumentNames: r.DocumentNames,
			DocumentIDs:   r.DocumentIDs,
			Action:        r.Action,
			ActionType:    r.ActionType,
			ActorIDs:      r.ActorIDs,
			LegacyFlag:    r.LegacyFlag,
			Comparator:    r.Comparator,
			Owner:         r.Owner,
			AllowedValues: r.AllowedValues,
		}
	}
	return out, nil
}

// LoadEvents reads a YAML array of event records from path.
func LoadEvents(path string) ([]event.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamlsource: reading %s: %w", path, err)
	}
	var rows []eventRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("yamlsource: parsing %s: %w", path, err)
	}

	out := make([]event.RawRecord, len(rows))
	for i, r := range rows {
		out[i] = event.RawRecord{
			ActivityTime: r.ActivityTime,
			Action:       r.Action,
			DocumentID:   r.DocumentID,
			DocumentName: r.DocumentName,
			ActorID:      r.ActorID,
			ActorName:    r.ActorName,
		}
	}
	return out, nil
}
