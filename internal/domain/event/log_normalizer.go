package event

import (
	"context"
	"fmt"
	"strings"
)

// LogNormalizer implements Normalizer over the raw activity-log grammar
// described in spec.md §4.1/§6. Dispatch is a single switch on the raw
// action's three-character prefix — a tagged-variant switch, not a handler
// chain (the source's chain-of-handlers is an implementation idiosyncrasy
// the design calls out for replacement).
type LogNormalizer struct{}

var _ Normalizer = LogNormalizer{}

// NewLogNormalizer returns the default Normalizer for the activity-log
// grammar.
func NewLogNormalizer() LogNormalizer {
	return LogNormalizer{}
}

// Normalize implements Normalizer.
func (LogNormalizer) Normalize(_ context.Context, raw RawRecord) (Event, error) {
	if raw.DocumentID == "" || raw.ActorName == "" || raw.Action == "" {
		return Event{}, fmt.Errorf("%w: missing document_id, actor_name, or action", ErrMalformedEvent)
	}

	base := Event{
		DocumentID: raw.DocumentID,
		Actor:      raw.ActorName,
	}
	if raw.ActivityTime != "" {
		if t, err := ParseTimestamp(raw.ActivityTime); err == nil {
			base.Timestamp = t
		}
	}

	prefix := raw.Action
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	switch prefix {
	case "Per":
		return normalizePermissionChange(base, raw.Action)
	case "Mov":
		return normalizeMove(base, raw.Action)
	case "Edi":
		return normalizeEdit(base, raw.ActivityTime)
	case "Cre":
		base.ActionKind = ActionCreate
		return base, nil
	case "Del":
		base.ActionKind = ActionDelete
		return base, nil
	case "Ren":
		base.ActionKind = ActionRename
		return base, nil
	default:
		return Event{}, fmt.Errorf("%w: unrecognized action %q", ErrMalformedEvent, raw.Action)
	}
}

// normalizePermissionChange parses
// "Permission Change-to:<new>-from:<old>-for:<target>", splitting on the
// three fixed markers rather than a blind '-' split so that '-' embedded
// inside a permission list or target identifier is preserved.
func normalizePermissionChange(base Event, raw string) (Event, error) {
	const toMarker, fromMarker, forMarker = "to:", "-from:", "-for:"

	toIdx := strings.Index(raw, toMarker)
	if toIdx < 0 {
		return Event{}, fmt.Errorf("%w: permission change missing %q: %q", ErrMalformedEvent, toMarker, raw)
	}
	rest := raw[toIdx+len(toMarker):]

	fromIdx := strings.Index(rest, fromMarker)
	if fromIdx < 0 {
		return Event{}, fmt.Errorf("%w: permission change missing %q: %q", ErrMalformedEvent, fromMarker, raw)
	}
	newPerm := rest[:fromIdx]
	rest = rest[fromIdx+len(fromMarker):]

	forIdx := strings.Index(rest, forMarker)
	if forIdx < 0 {
		return Event{}, fmt.Errorf("%w: permission change missing %q: %q", ErrMalformedEvent, forMarker, raw)
	}
	oldPerm := rest[:forIdx]
	target := rest[forIdx+len(forMarker):]

	if target == "" {
		return Event{}, fmt.Errorf("%w: permission change missing target user: %q", ErrMalformedEvent, raw)
	}

	switch {
	case newPerm == "none":
		base.ActionKind = ActionRemovePermission
	case oldPerm == "none":
		base.ActionKind = ActionAddPermission
	default:
		base.ActionKind = ActionUpdatePermission
	}
	base.Value = TextValue(target)
	return base, nil
}

// normalizeMove parses "Move:<src>:<dst>". Only the action kind is used by
// the evaluator; src/dst are advisory and not carried onto the Event.
func normalizeMove(base Event, raw string) (Event, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return Event{}, fmt.Errorf("%w: malformed move grammar: %q", ErrMalformedEvent, raw)
	}
	base.ActionKind = ActionMove
	return base, nil
}

// normalizeEdit produces a Can Edit event whose Value is the parsed
// activity timestamp.
func normalizeEdit(base Event, activityTime string) (Event, error) {
	if activityTime == "" {
		return Event{}, fmt.Errorf("%w: edit event missing activity_time", ErrMalformedEvent)
	}
	t, err := ParseTimestamp(activityTime)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	base.ActionKind = ActionEdit
	base.Value = TimeValue(activityTime, t)
	base.Timestamp = t
	return base, nil
}
