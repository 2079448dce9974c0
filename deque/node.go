package deque

import (
	"sync/atomic"
)

// Node is a handle to a single element linked into a Deque. It is
// returned by the *Node push variants so a caller can remove that exact
// element in O(1) later via Unlink, without an equality-based search.
//
// A node is "live" while it holds a non-nil item. It is "active" if it
// is live, or if it is the unique first/last node of its deque (that is,
// prev == nil && next != self, or next == nil && prev != self). Active
// nodes are never self-linked.
//
// Every field is only ever touched through sync/atomic; a plain read or
// write anywhere would race with concurrent pushers/poppers.
type Node[T comparable] struct {
	prev atomic.Pointer[Node[T]]
	item atomic.Pointer[T]
	next atomic.Pointer[Node[T]]

	// d is set once, at construction, and never mutated; it lets Unlink
	// be called directly on the handle without threading the owning
	// Deque through every call site.
	d *Deque[T]
}

func newNode[T comparable](d *Deque[T], v T) *Node[T] {
	n := &Node[T]{d: d}
	// Relaxed-equivalent raw store: the item only becomes observable to
	// other goroutines once this node's address is published via a CAS
	// on a neighbor's prev/next (see link.go), so a plain Store here is
	// safe and synchronizes-with that later CAS under the Go memory
	// model (every sync/atomic op is already sequentially consistent).
	n.item.Store(&v)
	return n
}

// newSentinel builds one of PREV_TERMINATOR / NEXT_TERMINATOR-equivalent
// dummy nodes. Unlike java.util.concurrent.ConcurrentLinkedDeque, which
// keeps these as two process-wide static singletons, Go generics have no
// clean way to share a single package-level value across every
// instantiation of Node[T]; each Deque[T] therefore owns its own pair,
// wired up once in New before any push/pop can observe them. They are
// otherwise immutable and behave identically to the Java statics within
// the scope of the deque that owns them.
func newSentinel[T comparable](d *Deque[T]) *Node[T] {
	return &Node[T]{d: d}
}

// Item loads the current element, or the zero value and false if the
// node is not live (logically deleted, or a terminator sentinel).
func (n *Node[T]) Item() (v T, ok bool) {
	p := n.item.Load()
	if p == nil {
		return v, false
	}
	return *p, true
}

func (n *Node[T]) casItem(cmp, val *T) bool {
	return n.item.CompareAndSwap(cmp, val)
}

func (n *Node[T]) loadPrev() *Node[T] { return n.prev.Load() }
func (n *Node[T]) loadNext() *Node[T] { return n.next.Load() }

func (n *Node[T]) storePrev(v *Node[T]) { n.prev.Store(v) }
func (n *Node[T]) storeNext(v *Node[T]) { n.next.Store(v) }

func (n *Node[T]) casPrev(cmp, val *Node[T]) bool { return n.prev.CompareAndSwap(cmp, val) }
func (n *Node[T]) casNext(cmp, val *Node[T]) bool { return n.next.CompareAndSwap(cmp, val) }

// Unlink logically removes this node's element, if it is still live, and
// then physically unlinks the node from the deque's chains. It is
// idempotent: only the first call (across any number of racing callers)
// has any effect.
func (n *Node[T]) Unlink() {
	if n == nil || n.d == nil {
		return
	}
	item := n.item.Load()
	if item != nil && n.casItem(item, nil) {
		n.d.unlink(n)
	}
}

// isAbsent reports whether v is the generic stand-in for Java's null.
// Deque requires T comparable (needed anyway by Contains and the
// *Occurrence family below), so the zero value of T can simply be
// compared with ==; NikoMalik/sync_pool's poolDequeue solves the same
// problem for an unconstrained T any via reflect.ValueOf(v).IsZero().
// internal/skiplist, whose element type is not required to be
// comparable, does no absent check at all; boundedset rejects the zero
// value before it reaches the skip list.
func isAbsent[T comparable](v T) bool {
	var zero T
	return v == zero
}
