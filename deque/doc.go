// Package deque provides Deque, an unbounded, lock-free, concurrent
// double-ended queue based on a symmetrical doubly linked list.
//
// Design
//
//   - Concurrency: there are no locks anywhere in the hot path. Every
//     mutation is a single atomic compare-and-swap on a node's prev/next
//     or item field; losers of a CAS retry instead of blocking. This is
//     the same approach as java.util.concurrent.ConcurrentLinkedDeque
//     (Doug Lea / Martin Buchholz), adapted to Go's sync/atomic.
//
//   - Storage: a node is "live" while it holds a non-nil item. head/tail
//     are only O(1) approximations of the true first/last node; the true
//     ends are found by following prev/next links from them. Deleted
//     nodes are unlinked lazily (an optimization, never required for
//     correctness) and, at the ends, "GC-unlinked" so that live nodes
//     become unreachable from garbage — see node.go for the self-link
//     scheme this relies on.
//
//   - Iteration: Iterator/DescendingIterator are weakly consistent: they
//     never panic on concurrent modification, reflect some valid history
//     of the deque, and are guaranteed not to repeat or skip an element
//     that was present for the iterator's entire lifetime.
//
//   - Sizing: SizeApprox is O(1) (an atomic counter updated on every
//     logical insert/remove) but may be transiently off under
//     concurrency; Size is an exact O(n) traversal, saturating at
//     math.MaxInt32 like java.util.Collection#size.
//
// Memory reclamation
//
// Deque relies on the Go garbage collector; there is no tracing or
// epoch-based reclamation step to perform. "Unlinking" and "GC-unlinking"
// exist purely to drop references early so the collector can reclaim
// deleted nodes promptly, even while a weakly-consistent iterator still
// holds an older node reachable.
//
// Basic usage
//
//	d := deque.New[int]()
//	d.PushLast(2)
//	d.PushFirst(1)
//	v, ok := d.PollFirst() // v == 1, ok == true
//
// Node handles
//
//	n, _ := d.PushLastNode(42)
//	// ... later, from any goroutine:
//	n.Unlink() // O(1) removal by handle; idempotent
package deque
