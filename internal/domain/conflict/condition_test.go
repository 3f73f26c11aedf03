package conflict

import (
	"testing"
	"time"

	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

func TestEvaluate_Unconditional(t *testing.T) {
	cond := Condition{Comparator: constraint.Unconditional}
	if !Evaluate(event.Value{}, cond) {
		t.Error("Evaluate() = false, want true for unconditional with absent value")
	}
}

func TestEvaluate_InNotIn(t *testing.T) {
	cond := Condition{
		Comparator:    constraint.In,
		AllowedValues: []constraint.Value{constraint.TextValue("a@x"), constraint.TextValue("b@x")},
	}
	if !Evaluate(event.TextValue("a@x"), cond) {
		t.Error("in: expected match")
	}
	if Evaluate(event.TextValue("c@x"), cond) {
		t.Error("in: expected no match")
	}

	notIn := Condition{Comparator: constraint.NotIn, AllowedValues: cond.AllowedValues}
	if Evaluate(event.TextValue("a@x"), notIn) {
		t.Error("not in: expected no match for member")
	}
	if !Evaluate(event.TextValue("c@x"), notIn) {
		t.Error("not in: expected match for non-member")
	}
}

func TestEvaluate_AbsentValue(t *testing.T) {
	conds := []Condition{
		{Comparator: constraint.In, AllowedValues: []constraint.Value{constraint.TextValue("x")}},
		{Comparator: constraint.NotIn, AllowedValues: []constraint.Value{constraint.TextValue("x")}},
		{Comparator: constraint.GreaterThan, AllowedValues: []constraint.Value{constraint.TextValue("x")}},
		{Comparator: constraint.LessThan, AllowedValues: []constraint.Value{constraint.TextValue("x")}},
	}
	for _, c := range conds {
		if Evaluate(event.Value{}, c) {
			t.Errorf("Evaluate(absent, %v) = true, want false", c.Comparator)
		}
	}
}

func TestEvaluate_TimestampGtLt(t *testing.T) {
	thresholdRaw := "2024-04-22T15:57:06.000Z"
	afterRaw := "2024-04-22T15:57:06.275Z"
	threshold, _ := time.Parse(time.RFC3339Nano, thresholdRaw)
	after, _ := time.Parse(time.RFC3339Nano, afterRaw)

	gt := Condition{Comparator: constraint.GreaterThan, AllowedValues: []constraint.Value{constraint.TimeValue(thresholdRaw, threshold)}}
	if !Evaluate(event.TimeValue(afterRaw, after), gt) {
		t.Error("gt: expected true for later timestamp")
	}

	lt := Condition{Comparator: constraint.LessThan, AllowedValues: []constraint.Value{constraint.TimeValue(thresholdRaw, threshold)}}
	if Evaluate(event.TimeValue(afterRaw, after), lt) {
		t.Error("lt: expected false for later timestamp")
	}
}

// TestEvaluate_InNotInTimestampFormatting confirms in/not in stay string
// equality even for edit values: two timestamps denoting the same instant
// but differing in formatting are not equal under in/not in (spec.md §4.4),
// unlike under gt/lt which compare the parsed instant (see
// TestEvaluate_TimestampGtLt).
func TestEvaluate_InNotInTimestampFormatting(t *testing.T) {
	sameInstantDifferentFormat := "2024-04-22T15:57:06Z"
	raw := "2024-04-22T15:57:06.000Z"
	parsed, _ := time.Parse(time.RFC3339Nano, raw)
	eventParsed, _ := time.Parse(time.RFC3339Nano, sameInstantDifferentFormat)
	if !parsed.Equal(eventParsed) {
		t.Fatalf("test fixture invariant broken: %q and %q must denote the same instant", raw, sameInstantDifferentFormat)
	}

	in := Condition{Comparator: constraint.In, AllowedValues: []constraint.Value{constraint.TimeValue(raw, parsed)}}
	if Evaluate(event.TimeValue(sameInstantDifferentFormat, eventParsed), in) {
		t.Error("in: expected no match for same instant with different string formatting")
	}

	notIn := Condition{Comparator: constraint.NotIn, AllowedValues: []constraint.Value{constraint.TimeValue(raw, parsed)}}
	if !Evaluate(event.TimeValue(sameInstantDifferentFormat, eventParsed), notIn) {
		t.Error("not in: expected match (non-member by string) for same instant with different string formatting")
	}
}
