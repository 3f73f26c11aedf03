// Package constraint defines the administrator-declared Constraint type,
// its raw input shape, and the Parser that validates and decomposes raw
// constraint records into indexable fields.
package constraint

import (
	"errors"
	"time"

	"github.com/accord-sh/accord/internal/domain/event"
)

// Comparator is the operator joining an event's value to a constraint's
// allowed-value set.
type Comparator string

const (
	// Unconditional matches every event regardless of value.
	Unconditional Comparator = ""
	// In matches when the event value is a member of the allowed-value set.
	In Comparator = "in"
	// NotIn matches when the event value is absent from the allowed-value set.
	NotIn Comparator = "not in"
	// LessThan matches when the event value is less than some allowed value.
	LessThan Comparator = "lt"
	// GreaterThan matches when the event value is greater than some allowed
	// value.
	GreaterThan Comparator = "gt"
)

// legacyEditAlias is the backward-compatible spelling for ActionEdit. It is
// canonicalized at the Parser boundary; no canonical kind downstream ever
// sees it.
const legacyEditAlias = "Time Limit Edit"

// ErrMalformedConstraint is returned when a raw constraint record fails
// validation: invalid comparator, empty document or actor set, or an
// unparseable timestamp on an edit constraint with a comparator.
var ErrMalformedConstraint = errors.New("constraint: malformed record")

// ErrInvalidComparator is a MalformedConstraint sub-case (spec.md §7): the
// raw comparator field is not one of the five recognized operators.
var ErrInvalidComparator = errors.New("constraint: invalid comparator")

// Value is one element of an allowed-values set. Text always holds the
// original raw string, since spec.md §4.4 specifies in/not in as string
// equality even for edit values; Time/IsTime additionally carry the
// parsed instant, used only by gt/lt (spec.md §9 open question).
type Value struct {
	Text   string
	Time   time.Time
	IsTime bool
}

// TextValue builds a plain-text allowed value.
func TextValue(s string) Value {
	return Value{Text: s}
}

// TimeValue builds an allowed value carrying both the raw timestamp text
// and its parsed instant.
func TimeValue(raw string, t time.Time) Value {
	return Value{Text: raw, Time: t, IsTime: true}
}

// RawRecord is the fixed-shape 9-field input tuple described in spec.md §6:
// (doc_names, doc_ids, action, action_type, actor_ids, legacy_flag,
// comparator, owner, allowed_values).
type RawRecord struct {
	DocumentNames []string
	DocumentIDs   []string
	Action        string
	ActionType    string
	ActorIDs      []string
	LegacyFlag    bool
	Comparator    string
	Owner         string
	AllowedValues []string
}

// Constraint is a single administrator rule, fully validated and ready for
// indexing.
type Constraint struct {
	// DocumentIDs is the non-empty set of documents this rule covers.
	DocumentIDs []string
	// ActionKind is the canonical action kind (legacy alias already
	// resolved).
	ActionKind event.ActionKind
	// ActorIDs is the non-empty set of actors this rule restricts.
	ActorIDs []string
	// Comparator selects how AllowedValues is matched against an event's
	// value.
	Comparator Comparator
	// AllowedValues is the comparison operand set: parsed timestamps for
	// edit constraints with a comparator, plain text otherwise. Empty strings and the "-"
	// sentinel have already been stripped.
	AllowedValues []Value
	// Owner is advisory metadata, not used by evaluation.
	Owner string
}
