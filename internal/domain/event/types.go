// Package event defines the normalized Event type and the RawRecord input
// shape consumed by the conflict-detection engine's Normalizer.
package event

import (
	"errors"
	"time"
)

// ActionKind is the canonical category of a normalized event, used as an
// index key by the constraint index.
type ActionKind string

const (
	// ActionCreate covers a document creation.
	ActionCreate ActionKind = "Can Create"
	// ActionDelete covers a document deletion.
	ActionDelete ActionKind = "Can Delete"
	// ActionEdit covers a document edit; the event Value carries the parsed
	// edit timestamp.
	ActionEdit ActionKind = "Can Edit"
	// ActionMove covers a document move between folders.
	ActionMove ActionKind = "Can Move"
	// ActionRename covers a document rename.
	ActionRename ActionKind = "Can Rename"
	// ActionAddPermission covers a permission grant where the prior
	// permission list was empty.
	ActionAddPermission ActionKind = "Add Permission"
	// ActionRemovePermission covers a permission revocation where the new
	// permission list is empty.
	ActionRemovePermission ActionKind = "Remove Permission"
	// ActionUpdatePermission covers a permission change where neither the
	// old nor the new permission list is empty.
	ActionUpdatePermission ActionKind = "Update Permission"
)

// String returns the string representation of the ActionKind.
func (k ActionKind) String() string {
	return string(k)
}

// ErrMalformedEvent is returned when a raw log record does not conform to
// the grammar in spec.md §4.1/§7. The engine classifies such records as
// non-conflicting and continues; it never aborts a classification batch.
var ErrMalformedEvent = errors.New("event: malformed record")

// RawRecord is the fixed-shape 6-field input tuple described in §6:
// (activity_time, action, document_id, document_name, actor_id, actor_name).
type RawRecord struct {
	ActivityTime string
	Action       string
	DocumentID   string
	DocumentName string
	ActorID      string
	ActorName    string
}

// Event is the normalized, typed form of one audit record.
type Event struct {
	// DocumentID is the opaque document identifier the action targeted.
	DocumentID string
	// ActionKind is the canonical action category.
	ActionKind ActionKind
	// Actor is the identity that performed the action (actor name, per §4.1).
	Actor string
	// Value carries the event's variable payload: the edit timestamp (for
	// edits), the target user of a permission change, or is absent (zero
	// Value) for create/delete/move/rename.
	Value Value
	// Timestamp is the event's activity time; advisory except where Value
	// also carries it for edits.
	Timestamp time.Time
}

// Value is the optional variable payload carried by an Event. A zero Value
// (Present == false) represents the "absent" case in spec.md §4.4: every
// comparator but the unconditional one evaluates to false against it. Text
// always holds the original raw string, since spec.md §4.4 specifies
// in/not in as string equality even for edit values; Time/IsTime
// additionally carry the parsed instant, used only by gt/lt.
type Value struct {
	Present bool
	Text    string
	Time    time.Time
	IsTime  bool
}

// TextValue builds a present, string-valued Value (e.g. a permission
// change's target user).
func TextValue(s string) Value {
	return Value{Present: true, Text: s}
}

// TimeValue builds a present Value carrying both the raw activity-time
// text and its parsed instant.
func TimeValue(raw string, t time.Time) Value {
	return Value{Present: true, Text: raw, Time: t, IsTime: true}
}
