package boundedset

import "github.com/gbrey/gridgain/internal/skiplist"

// Metrics exposes boundedset-level observability hooks, reusing the
// shape of deque.Metrics (see deque/metrics.go) so a single Prometheus
// adapter in metrics/prom can implement both.
type Metrics interface {
	OnPush()
	OnPop()
	OnUnlink()
	OnSize(n int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) OnPush()    {}
func (NoopMetrics) OnPop()     {}
func (NoopMetrics) OnUnlink()  {}
func (NoopMetrics) OnSize(int) {}

var _ Metrics = NoopMetrics{}

// Comparator orders two elements of T; see internal/skiplist.Comparator.
type Comparator[T any] func(a, b T) int

// Options configures a Set. Zero values are safe except Max, which must
// be set explicitly: unlike cache.Options, there is no sane "unbounded"
// default here — an unbounded sorted set is exactly what internal/skiplist
// already is, so a BoundedOrderedSet[T] with Max == 0 would not be a
// meaningful construction.
type Options[T any] struct {
	// Max is the soft upper bound. Required, must be > 0.
	Max int

	// Comparator orders elements. Required; there is no natural-ordering
	// fallback because T is not constrained to cmp.Ordered (see
	// internal/util.Natural for that case, used explicitly by callers
	// with an ordered T).
	Comparator Comparator[T]

	// Initial preloads the set before any Max enforcement runs, mirroring
	// GridBoundedConcurrentOrderedSet(int, Collection<? extends E>). If
	// len(Initial) exceeds Max, the set is evicted down to Max
	// immediately, in iteration order of Initial, exactly as repeated
	// Add calls would.
	Initial []T

	// Metrics reports adds (OnPush), evictions (OnUnlink) and the size
	// after an add (OnSize); OnPop is never called. Nil => NoopMetrics.
	Metrics Metrics
}

func (o Options[T]) skiplistComparator() skiplist.Comparator[T] {
	return skiplist.Comparator[T](o.Comparator)
}
