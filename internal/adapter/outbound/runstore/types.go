// Package runstore persists DetectionRun metadata — not constraint or
// event records themselves, which spec.md §1 explicitly excludes from
// relational persistence — to a local sqlite database, guarded by a
// cross-process file lock exactly like the teacher's
// internal/adapter/outbound/state package guards state.json.
package runstore

import "time"

// DetectionRun records one Build+Classify cycle's metadata: identifiers,
// counts, and timings, for later administrative review (e.g. "did
// constraint batch X grow slower to build over time").
type DetectionRun struct {
	ID                 string
	StartedAt          time.Time
	BuildMode          string
	ConstraintsIndexed int
	ConstraintsDropped int
	EventsClassified   int
	ConflictsFound     int
	BuildDuration      time.Duration
	ClassifyDuration   time.Duration
}
