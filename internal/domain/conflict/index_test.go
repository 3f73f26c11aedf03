package conflict

import (
	"testing"

	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

func TestIndex_MissingLevelsReturnFalse(t *testing.T) {
	idx := NewIndex()
	if idx.Check(event.Event{DocumentID: "doc1", ActionKind: event.ActionDelete, Actor: "a@x"}) {
		t.Error("Check() on empty index = true, want false")
	}
}

func TestIndex_GroupingEquivalence(t *testing.T) {
	grouped := NewIndex()
	grouped.Insert(constraint.Constraint{
		DocumentIDs: []string{"d1", "d2"},
		ActionKind:  event.ActionUpdatePermission,
		ActorIDs:    []string{"a1", "a2"},
		Comparator:  constraint.NotIn,
	})

	expanded := NewIndex()
	for _, d := range []string{"d1", "d2"} {
		for _, a := range []string{"a1", "a2"} {
			expanded.Insert(constraint.Constraint{
				DocumentIDs: []string{d},
				ActionKind:  event.ActionUpdatePermission,
				ActorIDs:    []string{a},
				Comparator:  constraint.NotIn,
			})
		}
	}

	for _, d := range []string{"d1", "d2"} {
		for _, a := range []string{"a1", "a2"} {
			ev := event.Event{DocumentID: d, ActionKind: event.ActionUpdatePermission, Actor: a, Value: event.TextValue("bob@x")}
			if grouped.Check(ev) != expanded.Check(ev) {
				t.Errorf("grouping mismatch for doc=%s actor=%s", d, a)
			}
		}
	}
}

func TestIndex_DuplicateInsertionIdempotentResult(t *testing.T) {
	c := constraint.Constraint{
		DocumentIDs: []string{"doc1"},
		ActionKind:  event.ActionDelete,
		ActorIDs:    []string{"admin@x"},
		Comparator:  constraint.Unconditional,
	}
	idx := NewIndex()
	idx.Insert(c)
	idx.Insert(c)

	ev := event.Event{DocumentID: "doc1", ActionKind: event.ActionDelete, Actor: "admin@x"}
	if !idx.Check(ev) {
		t.Error("Check() = false, want true after duplicate insertion")
	}
}

func TestIndex_PermutationInvariance(t *testing.T) {
	cs := []constraint.Constraint{
		{DocumentIDs: []string{"doc1"}, ActionKind: event.ActionDelete, ActorIDs: []string{"admin@x"}, Comparator: constraint.Unconditional},
		{DocumentIDs: []string{"doc1"}, ActionKind: event.ActionUpdatePermission, ActorIDs: []string{"alice@x"}, Comparator: constraint.NotIn},
		{DocumentIDs: []string{"doc2"}, ActionKind: event.ActionRemovePermission, ActorIDs: []string{"bob@x"}, Comparator: constraint.NotIn},
	}
	reversed := []constraint.Constraint{cs[2], cs[1], cs[0]}

	idxA := NewIndex()
	for _, c := range cs {
		idxA.Insert(c)
	}
	idxB := NewIndex()
	for _, c := range reversed {
		idxB.Insert(c)
	}

	events := []event.Event{
		{DocumentID: "doc1", ActionKind: event.ActionDelete, Actor: "admin@x"},
		{DocumentID: "doc1", ActionKind: event.ActionUpdatePermission, Actor: "alice@x", Value: event.TextValue("x@x")},
		{DocumentID: "doc2", ActionKind: event.ActionRemovePermission, Actor: "bob@x", Value: event.TextValue("drew@x")},
		{DocumentID: "doc2", ActionKind: event.ActionRemovePermission, Actor: "carol@x", Value: event.TextValue("drew@x")},
	}
	for _, ev := range events {
		if idxA.Check(ev) != idxB.Check(ev) {
			t.Errorf("permutation variance for event %+v", ev)
		}
	}
}
