package deque

import (
	"math"
	"sync/atomic"

	"github.com/gbrey/gridgain/internal/util"
)

// Deque is an unbounded, lock-free, concurrent double-ended queue of T.
// The zero value is not usable; construct one with New or NewFromSlice.
//
// T is constrained to comparable because Contains, RemoveFirstOccurrence,
// RemoveLastOccurrence and RemoveElement need an equality relation, and Go has
// no way to add that constraint only on the methods that need it. The
// zero value of T is reserved to mean "absent" (Java's null) and is
// rejected by every push operation.
type Deque[T comparable] struct {
	// head/tail are only O(1) approximations of the true first/last
	// live node; see doc.go. Never accessed except through sync/atomic.
	head atomic.Pointer[Node[T]]
	tail atomic.Pointer[Node[T]]

	// size tracks logical insert/remove events, not a traversal count;
	// see SizeApprox. Padded to its own cache line since every push and
	// pop touches it, regardless of which end or which node they touch.
	size util.PaddedAtomicInt64

	prevTerm *Node[T]
	nextTerm *Node[T]

	metrics Metrics
}

// New constructs an empty Deque.
func New[T comparable]() *Deque[T] {
	return newDeque[T](NoopMetrics{})
}

// NewWithMetrics constructs an empty Deque that reports push/pop/unlink
// and size events to m. A nil m is equivalent to New.
func NewWithMetrics[T comparable](m Metrics) *Deque[T] {
	if m == nil {
		m = NoopMetrics{}
	}
	return newDeque[T](m)
}

func newDeque[T comparable](m Metrics) *Deque[T] {
	d := &Deque[T]{metrics: m}
	d.prevTerm = newSentinel(d)
	d.nextTerm = newSentinel(d)
	d.prevTerm.storeNext(d.prevTerm) // PREV_TERMINATOR.next == self
	d.nextTerm.storePrev(d.nextTerm) // NEXT_TERMINATOR.prev == self

	h := newSentinel(d)
	d.head.Store(h)
	d.tail.Store(h)
	return d
}

// NewFromSlice constructs a Deque preloaded with items, in order. It
// panics if any item is the zero value of T (mirrors the
// java.util.concurrent.ConcurrentLinkedDeque(Collection) constructor,
// which throws NullPointerException for a null element).
func NewFromSlice[T comparable](items []T) *Deque[T] {
	d := newDeque[T](NoopMetrics{})
	if len(items) == 0 {
		return d
	}

	var h, t *Node[T]
	for _, it := range items {
		if isAbsent(it) {
			panic("deque: NewFromSlice: absent element")
		}
		n := newNode(d, it)
		if h == nil {
			h, t = n, n
		} else {
			t.storeNext(n)
			n.storePrev(t)
			t = n
		}
	}
	d.size.Store(int64(len(items)))
	d.initHeadTail(h, t)
	return d
}

// initHeadTail wires head/tail for a freshly built private chain
// [h..t]. Only ever called before the deque is published to any other
// goroutine, so plain (non-atomic-ordered) field assignment is safe.
func (d *Deque[T]) initHeadTail(h, t *Node[T]) {
	if h == t {
		// A single live node as both head and tail is disallowed: it
		// collapses the "head and tail are distinct approximations"
		// invariant that updateHead/updateTail rely on. Java's
		// ConcurrentLinkedDeque constructor has the identical special
		// case for the same reason.
		n := newSentinel(d)
		t.storeNext(n)
		n.storePrev(t)
		t = n
	}
	d.head.Store(h)
	d.tail.Store(t)
}

// SizeApprox returns the atomic counter value, updated on every logical
// insert/remove. O(1), approximate under concurrency, matches Java's
// sizex().
func (d *Deque[T]) SizeApprox() int {
	return saturateSize(d.size.Load())
}

func saturateSize(n int64) int {
	switch {
	case n < 0:
		return 0
	case n > math.MaxInt32:
		return math.MaxInt32
	default:
		return int(n)
	}
}

// Size traverses the deque and counts live nodes, saturating at
// math.MaxInt32 — matching java.util.Collection#size's contract. Unlike
// SizeApprox this is never wrong, but it is O(n) and its result can be
// stale by the time it is returned if the deque is being mutated
// concurrently.
func (d *Deque[T]) Size() int {
	cnt := 0
	for p := d.first(); p != nil; p = d.successor(p) {
		if _, ok := p.Item(); ok {
			cnt++
			if cnt == math.MaxInt32 {
				break
			}
		}
	}
	return cnt
}

// IsEmpty reports whether the deque currently has no live element. It is
// based on PeekFirst, so it shares PeekFirst's consistency guarantees.
func (d *Deque[T]) IsEmpty() bool {
	_, ok := d.PeekFirst()
	return !ok
}
