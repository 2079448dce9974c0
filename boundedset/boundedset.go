package boundedset

import (
	"github.com/gbrey/gridgain/deque"
	"github.com/gbrey/gridgain/internal/skiplist"
	"github.com/gbrey/gridgain/internal/util"
)

// Set is a concurrent sorted set with a soft upper bound. The zero
// value is not usable; construct one with New.
//
// T is constrained to comparable, matching deque.Deque's resolution of
// the same "reject absent" requirement: the zero value of T is reserved
// to mean "absent" (Java's null) and is rejected by Add.
type Set[T comparable] struct {
	skl *skiplist.Set[T]
	max int
	cnt util.PaddedAtomicInt64

	metrics Metrics
}

// New constructs a Set per opts. It panics if opts.Max <= 0 or
// opts.Comparator is nil — both are caller programming errors, not
// runtime conditions, so New (like the Java constructor's
// assert max > 0) fails loudly rather than returning an error.
func New[T comparable](opts Options[T]) *Set[T] {
	if opts.Max <= 0 {
		panic("boundedset: Options.Max must be > 0")
	}
	if opts.Comparator == nil {
		panic("boundedset: Options.Comparator must not be nil")
	}
	m := opts.Metrics
	if m == nil {
		m = NoopMetrics{}
	}

	s := &Set[T]{
		skl:     skiplist.New(opts.skiplistComparator()),
		max:     opts.Max,
		metrics: m,
	}
	for _, v := range opts.Initial {
		_, _ = s.Add(v)
	}
	return s
}

// isAbsent reports whether v is the generic stand-in for Java's null.
// Mirrors deque.isAbsent.
func isAbsent[T comparable](v T) bool {
	var zero T
	return v == zero
}

// Add inserts v, evicting the smallest element(s) until the set is back
// at or under Max if this insertion pushed it over. It reports whether v
// was not already present (ported from
// GridBoundedConcurrentOrderedSet#add, decrementing cnt before retrying
// the eviction so concurrent adders observe the bound promptly rather
// than racing on a post-decrement read). It returns ErrInvalidArgument,
// without touching the set, if v is the zero value of T — mirroring the
// Java original's GridArgumentCheck.notNull(e, "e"). It returns
// deque.ErrInternalInconsistency, with v already inserted, if a required
// corrective eviction finds nothing left to remove — the Go analogue of
// the Java original's caught NoSuchElementException and "assert false:
// Internal error in grid bounded ordered set." Reusing deque's sentinel
// rather than minting a second one: spec.md's error taxonomy treats
// InternalInconsistency as one kind shared by every container here.
func (s *Set[T]) Add(v T) (bool, error) {
	if isAbsent(v) {
		return false, ErrInvalidArgument
	}
	if !s.skl.Add(v) {
		return false, nil
	}
	s.metrics.OnPush()
	n := s.cnt.Add(1)
	s.metrics.OnSize(int(n))

	for {
		c := s.cnt.Load()
		if c <= int64(s.max) {
			break
		}
		if !s.cnt.CompareAndSwap(c, c-1) {
			continue
		}
		// Won the right to evict one element. Loop until the removal
		// actually lands, since another goroutine's Add/evict may have
		// already taken the smallest element out from under us.
		for {
			if _, ok := s.skl.RemoveMin(); ok {
				s.metrics.OnUnlink()
				break
			}
			if s.skl.Len() == 0 {
				return true, deque.ErrInternalInconsistency
			}
		}
	}
	return true, nil
}

// Remove always fails: see package doc and ErrNotSupported.
func (s *Set[T]) Remove(T) error { return ErrNotSupported }

// Size returns the set's current approximate size. Unlike most
// concurrent collections (and like Deque.SizeApprox) this is O(1), not a
// traversal — mirroring GridBoundedConcurrentOrderedSet#size's override,
// which reads cnt directly instead of walking the skip list.
func (s *Set[T]) Size() int {
	n := s.cnt.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// First returns the smallest element without removing it, or false if
// the set is empty.
func (s *Set[T]) First() (T, bool) { return s.skl.First() }

// Contains reports whether v is present.
func (s *Set[T]) Contains(v T) bool { return s.skl.Contains(v) }

// ToSlice returns a snapshot of every element, in ascending order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, s.Size())
	s.skl.ForEach(func(v T) { out = append(out, v) })
	return out
}

// Max returns the configured soft upper bound.
func (s *Set[T]) Max() int { return s.max }
