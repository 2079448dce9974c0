package deque

import "errors"

// Sentinel errors returned by Deque. Check with errors.Is.
var (
	// ErrInvalidArgument is returned when an operation is called with an
	// absent element (the generic zero value), an empty PushAll batch, or
	// a nil node handle.
	ErrInvalidArgument = errors.New("deque: invalid argument")

	// ErrNoSuchElement is returned by the strict accessors (First, Last,
	// RemoveFirst, RemoveLast) when the deque is empty.
	ErrNoSuchElement = errors.New("deque: no such element")

	// ErrNotSupported is returned by Iterator.Remove when called before
	// Next has ever been observed on that iterator (or again right after
	// a prior Remove, before another Next call).
	ErrNotSupported = errors.New("deque: operation not supported")

	// ErrInternalInconsistency is spec.md §7's InternalInconsistency kind,
	// shared by every container in this module rather than duplicated per
	// package. Deque itself never returns it: first()/last() always find
	// a node by construction. boundedset.Set.Add returns it if a
	// required corrective eviction finds nothing left to remove. It
	// should never occur; surfacing it as an error (rather than
	// panicking) keeps a library caller in control even if it does.
	ErrInternalInconsistency = errors.New("deque: internal inconsistency")
)
