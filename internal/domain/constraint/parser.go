package constraint

import (
	"fmt"

	"github.com/accord-sh/accord/internal/domain/event"
)

// Parser validates and decomposes a raw constraint record into a Constraint,
// per spec.md §4.2.
type Parser struct{}

// NewParser returns the default Parser.
func NewParser() Parser {
	return Parser{}
}

// validComparators is the fixed algebra from spec.md §4.4; anything else is
// an InvalidComparator, classified as MalformedConstraint.
var validComparators = map[string]Comparator{
	"":       Unconditional,
	"in":     In,
	"not in": NotIn,
	"lt":     LessThan,
	"gt":     GreaterThan,
}

// Parse implements §4.2: legacy alias canonicalization, allowed-values
// cleanup, timestamp parsing for edit constraints with a comparator, and
// rejection of malformed records.
func (Parser) Parse(raw RawRecord) (Constraint, error) {
	if len(raw.DocumentIDs) == 0 {
		return Constraint{}, fmt.Errorf("%w: empty document set", ErrMalformedConstraint)
	}
	if len(raw.ActorIDs) == 0 {
		return Constraint{}, fmt.Errorf("%w: empty actor set", ErrMalformedConstraint)
	}

	cmp, ok := validComparators[raw.Comparator]
	if !ok {
		return Constraint{}, fmt.Errorf("%w: %w %q", ErrMalformedConstraint, ErrInvalidComparator, raw.Comparator)
	}

	actionType := raw.ActionType
	if actionType == legacyEditAlias {
		actionType = string(event.ActionEdit)
	}

	cleaned := make([]string, 0, len(raw.AllowedValues))
	for _, v := range raw.AllowedValues {
		if v == "" || v == "-" {
			continue
		}
		cleaned = append(cleaned, v)
	}

	isEdit := actionType == string(event.ActionEdit)
	values := make([]Value, 0, len(cleaned))
	for _, v := range cleaned {
		if isEdit && cmp != Unconditional {
			t, err := event.ParseTimestamp(v)
			if err != nil {
				return Constraint{}, fmt.Errorf("%w: %w", ErrMalformedConstraint, err)
			}
			values = append(values, TimeValue(v, t))
			continue
		}
		values = append(values, TextValue(v))
	}

	return Constraint{
		DocumentIDs:   append([]string(nil), raw.DocumentIDs...),
		ActionKind:    event.ActionKind(actionType),
		ActorIDs:      append([]string(nil), raw.ActorIDs...),
		Comparator:    cmp,
		AllowedValues: values,
		Owner:         raw.Owner,
	}, nil
}
