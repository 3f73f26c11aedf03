package event

import "context"

// Normalizer converts a RawRecord into a normalized Event.
type Normalizer interface {
	// Normalize parses one raw log record into an Event. Returns
	// ErrMalformedEvent (wrapped with a reason) if the record violates the
	// grammar in spec.md §4.1/§7.
	Normalize(ctx context.Context, raw RawRecord) (Event, error)
}
