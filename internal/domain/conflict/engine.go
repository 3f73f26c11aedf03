package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/accord-sh/accord/internal/domain/constraint"
	"github.com/accord-sh/accord/internal/domain/event"
)

// state tracks the Engine's position in its two-state machine.
type state int32

const (
	stateBuilding state = iota
	stateReady
)

// BuildMode selects how Build reacts to a malformed constraint row.
type BuildMode int

const (
	// ModeLenient drops the offending row, surfaces a warning through the
	// engine's logger, and continues building. This is the default.
	ModeLenient BuildMode = iota
	// ModeStrict aborts the whole build atomically on the first malformed
	// row; no partial index is retained.
	ModeStrict
)

// Stats summarizes one Build/Classify cycle, the Go-native analogue of the
// counters the original construction/detection timing experiments report.
type Stats struct {
	ConstraintsIndexed int
	ConstraintsDropped int
	EventsClassified   int
	ConflictsFound     int
}

// Engine drives the build-then-classify pipeline described in spec.md
// §4.5. It has exactly two states, Building and Ready; Classify is valid
// only once Ready, and there is no teardown or incremental rebuild.
type Engine struct {
	index  *Index
	parser constraint.Parser
	norm   event.Normalizer
	logger *slog.Logger
	cache  *ResultCache

	state atomic.Int32

	// Build-phase counters; only ever written during Build, before the
	// engine becomes visible to other goroutines, so they need no
	// synchronization of their own.
	constraintsIndexed int
	constraintsDropped int

	// Classify-phase counters; multiple goroutines may call Classify
	// concurrently once the engine is Ready (spec.md §5), so these are
	// updated atomically.
	eventsClassified atomic.Int64
	conflictsFound   atomic.Int64
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger sets the *slog.Logger used for out-of-band warnings on
// malformed rows. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithCacheSize enables the optional classify-result LRU cache at the
// given size. A size of 0 (the default) disables caching entirely.
func WithCacheSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.cache = NewResultCache(size)
		}
	}
}

// WithNormalizer overrides the default LogNormalizer.
func WithNormalizer(n event.Normalizer) Option {
	return func(e *Engine) { e.norm = n }
}

// New returns an Engine in the Building state.
func New(opts ...Option) *Engine {
	e := &Engine{
		index:  NewIndex(),
		parser: constraint.NewParser(),
		norm:   event.NewLogNormalizer(),
		logger: slog.Default(),
	}
	e.state.Store(int32(stateBuilding))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build parses and inserts every raw constraint record into the Engine's
// index, then transitions the Engine to Ready. Order does not affect
// correctness (spec.md §4.3 "Ordering"). In ModeStrict, the first
// malformed row aborts the build and returns ErrBuildRejected; no partial
// index is retained. In ModeLenient (default), malformed rows are dropped
// and logged, and the build continues.
func (e *Engine) Build(ctx context.Context, raw []constraint.RawRecord, mode BuildMode) error {
	if state(e.state.Load()) != stateBuilding {
		return ErrAlreadyBuilt
	}

	idx := NewIndex()
	var indexed, dropped int
	for i, rec := range raw {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		c, err := e.parser.Parse(rec)
		if err != nil {
			if mode == ModeStrict {
				return fmt.Errorf("%w: row %d: %w", ErrBuildRejected, i, err)
			}
			dropped++
			e.logger.WarnContext(ctx, "dropping malformed constraint", "row", i, "error", err)
			continue
		}
		idx.Insert(c)
		indexed++
	}

	e.index = idx
	e.constraintsIndexed = indexed
	e.constraintsDropped = dropped
	e.state.Store(int32(stateReady))
	return nil
}

// Classify normalizes and evaluates each raw event record against the
// built index, in input order. A row that fails normalization classifies
// as false and is logged out-of-band; it never aborts the batch. Classify
// is safe for concurrent use by multiple goroutines once the Engine is
// Ready, since the index is not mutated after Build.
func (e *Engine) Classify(ctx context.Context, raw []event.RawRecord) ([]bool, error) {
	if state(e.state.Load()) != stateReady {
		return nil, ErrNotReady
	}

	results := make([]bool, len(raw))
	var classified, conflicts int64
	for i, rec := range raw {
		ev, err := e.norm.Normalize(ctx, rec)
		if err != nil {
			e.logger.WarnContext(ctx, "dropping malformed event", "row", i, "error", err)
			continue
		}

		conflicted := e.checkCached(ev)
		results[i] = conflicted
		classified++
		if conflicted {
			conflicts++
		}
	}

	e.eventsClassified.Add(classified)
	e.conflictsFound.Add(conflicts)
	return results, nil
}

func (e *Engine) checkCached(ev event.Event) bool {
	if e.cache == nil {
		return e.index.Check(ev)
	}
	key := eventCacheKey(ev)
	if v, ok := e.cache.Get(key); ok {
		return v
	}
	v := e.index.Check(ev)
	e.cache.Put(key, v)
	return v
}

// Stats returns a snapshot of cumulative build/classify counters. Safe to
// call concurrently with Classify.
func (e *Engine) Stats() Stats {
	return Stats{
		ConstraintsIndexed: e.constraintsIndexed,
		ConstraintsDropped: e.constraintsDropped,
		EventsClassified:   int(e.eventsClassified.Load()),
		ConflictsFound:     int(e.conflictsFound.Load()),
	}
}

// Ready reports whether the Engine has completed Build and will accept
// Classify calls.
func (e *Engine) Ready() bool {
	return state(e.state.Load()) == stateReady
}
