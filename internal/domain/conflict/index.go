package conflict

import (
	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

// actorBucket is the level-3/4 cell: an actor's list of conditions.
type actorBucket = []Condition

// actionNode is the level-2 cell: action kind to actor buckets.
type actionNode map[string]actorBucket

// documentNode is the level-1 cell: document to action nodes.
type documentNode map[event.ActionKind]actionNode

// Index is the four-level nested constraint index described in spec.md
// §3/§4.3: Document → ActionKind → Actor → []Condition. Nodes are created
// on first insertion and never removed within the lifetime of an Index; an
// Index is built once per classification batch and is read-only
// thereafter.
type Index struct {
	docs map[string]documentNode
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{docs: make(map[string]documentNode)}
}

// Insert walks to (or creates) every (document, actor) cell reachable from
// c's document and actor sets at c's canonical action-kind slot, and
// appends one Condition to each. A constraint with k documents and m
// actors touches k·m cells; duplicate insertion is legal and additive.
func (idx *Index) Insert(c constraint.Constraint) {
	cond := Condition{Comparator: c.Comparator, AllowedValues: c.AllowedValues}
	for _, docID := range c.DocumentIDs {
		dn, ok := idx.docs[docID]
		if !ok {
			dn = make(documentNode)
			idx.docs[docID] = dn
		}
		an, ok := dn[c.ActionKind]
		if !ok {
			an = make(actionNode)
			dn[c.ActionKind] = an
		}
		for _, actorID := range c.ActorIDs {
			an[actorID] = append(an[actorID], cond)
		}
	}
}

// Check walks the four keys derived from ev. If any level is missing it
// returns false (no applicable rule); otherwise it evaluates the matched
// bucket's conditions in insertion order and returns true on the first hit.
func (idx *Index) Check(ev event.Event) bool {
	dn, ok := idx.docs[ev.DocumentID]
	if !ok {
		return false
	}
	an, ok := dn[ev.ActionKind]
	if !ok {
		return false
	}
	bucket, ok := an[ev.Actor]
	if !ok {
		return false
	}
	for _, cond := range bucket {
		if Evaluate(ev.Value, cond) {
			return true
		}
	}
	return false
}
