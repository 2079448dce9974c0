package boundedset

import "errors"

// ErrNotSupported is returned by Remove: a BoundedOrderedSet only ever
// shrinks through Max-triggered eviction, never through caller-directed
// removal of an arbitrary value. Mirrors
// GridBoundedConcurrentOrderedSet#remove's UnsupportedOperationException.
var ErrNotSupported = errors.New("boundedset: remove is not supported")

// ErrInvalidArgument is returned by Add when called with the zero value
// of T (the reserved "absent" marker; see Set's doc comment). Invalid
// Options — Max <= 0 or a nil Comparator — are caller programming
// errors surfaced by New as a panic, not by this sentinel.
var ErrInvalidArgument = errors.New("boundedset: invalid argument")
