// Package conflict implements the constraint index, the condition
// evaluator, and the detection engine that together form the
// conflict-detection core: spec.md §4.3–§4.5.
package conflict

import (
	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

// Condition is one (comparator, allowed_values) entry in a constraint
// index bucket.
type Condition struct {
	Comparator    constraint.Comparator
	AllowedValues []constraint.Value
}

// Evaluate implements the comparator table in spec.md §4.4. An absent event
// value evaluates to false under every comparator but Unconditional.
func Evaluate(value event.Value, cond Condition) bool {
	switch cond.Comparator {
	case constraint.Unconditional:
		return true
	case constraint.In:
		if !value.Present {
			return false
		}
		for _, a := range cond.AllowedValues {
			if valueEquals(value, a) {
				return true
			}
		}
		return false
	case constraint.NotIn:
		if !value.Present {
			return false
		}
		for _, a := range cond.AllowedValues {
			if valueEquals(value, a) {
				return false
			}
		}
		return true
	case constraint.GreaterThan:
		if !value.Present {
			return false
		}
		for _, a := range cond.AllowedValues {
			if valueGreater(value, a) {
				return true
			}
		}
		return false
	case constraint.LessThan:
		if !value.Present {
			return false
		}
		for _, a := range cond.AllowedValues {
			if valueLess(value, a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// valueEquals implements string equality for in/not in, per spec.md §4.4.
// This holds even when both sides are parsed timestamps: spec.md §4.4
// specifies in/not in as string equality unconditionally, so two
// timestamps that denote the same instant but differ in formatting
// (e.g. "...06Z" vs "...06.000Z") are not equal under in/not in, unlike
// under gt/lt (see valueGreater/valueLess).
func valueEquals(v event.Value, a constraint.Value) bool {
	return v.Text == a.Text
}

// valueGreater compares typed timestamps for edit values; falls back to
// string comparison otherwise. gt/lt are only specified for edit values
// (spec.md §9 open question), so the typed branch is the one that matters.
func valueGreater(v event.Value, a constraint.Value) bool {
	if v.IsTime && a.IsTime {
		return v.Time.After(a.Time)
	}
	return v.Text > a.Text
}

func valueLess(v event.Value, a constraint.Value) bool {
	if v.IsTime && a.IsTime {
		return v.Time.Before(a.Time)
	}
	return v.Text < a.Text
}
