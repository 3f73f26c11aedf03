// Package jsonsource loads constraint and event batches from the JSON
// interchange convention described in spec.md §6: arrays of JSON objects
// whose named fields mirror the 9-field constraint tuple and the 6-field
// event tuple (positional arrays are not accepted). The engine itself never reads files;
// this adapter is the external loader spec.md §1 calls out as a
// collaborator outside the core.
package jsonsource

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

// constraintRow mirrors the 9-field tuple in spec.md §6, as a JSON object
// rather than a positional array for readability of hand-authored fixtures.
type constraintRow struct {
	DocumentNames []string `json:"document_names"`
	DocumentIDs   []string `json:"document_ids"`
	Action        string   `json:"action"`
	ActionType    string   `json:"action_type"`
	ActorIDs      []string `json:"actor_ids"`
	LegacyFlag    bool     `json:"legacy_flag"`
	Comparator    string   `json:"comparator"`
	Owner         string   `json:"owner"`
	AllowedValues []string `json:"allowed_values"`
}

// eventRow mirrors the 6-field tuple in spec.md §6.
type eventRow struct {
	ActivityTime string `json:"activity_time"`
	Action       string `json:"action"`
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	ActorID      string `json:"actor_id"`
	ActorName    string `json:"actor_name"`
}

// LoadConstraints reads a JSON array of constraint records from path.
func LoadConstraints(path string) ([]constraint.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonsource: reading %s: %w", path, err)
	}
	var rows []constraintRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("jsonsource: parsing %s: %w", path, err)
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

// LoadEvents reads a JSON array of event records from path.
func LoadEvents(path string) ([]event.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jsonsource: reading %s: %w", path, err)
	}
	var rows []eventRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("jsonsource: parsing %s: %w", path, err)
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
