package conflict

import "errors"

// ErrNotReady is returned by Classify when called before Build has
// completed successfully. The engine's two states (Building, Ready) admit
// no other transition; there is no "unbuild".
var ErrNotReady = errors.New("conflict: engine not ready")

// ErrAlreadyBuilt is returned by Build when called on an Engine that has
// already reached the Ready state.
var ErrAlreadyBuilt = errors.New("conflict: engine already built")

// ErrBuildRejected is returned by Build in strict mode when any constraint
// row fails parsing; the index built so far is discarded and the Engine
// stays unusable.
var ErrBuildRejected = errors.New("conflict: build rejected a malformed constraint")
