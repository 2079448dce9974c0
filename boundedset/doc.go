// Package boundedset provides Set, a concurrent sorted set with a soft
// upper bound: once it exceeds Options.Max, it evicts smallest elements
// until it is back within bound. It is ported from
// org.gridgain.grid.lang.utils.GridBoundedConcurrentOrderedSet, which
// wraps a concurrent skip-list-backed ordered set the same way; here the
// skip list is internal/skiplist.Set rather than
// java.util.concurrent.ConcurrentSkipListSet.
//
// Because eviction and insertion both race on the same soft bound, the
// set may transiently grow past Max under concurrent load; it is
// guaranteed to shrink back down once the inserting goroutines catch up
// on eviction duty, not to never exceed Max at any instant.
//
// Remove by value is not supported, matching the Java original's
// explicit UnsupportedOperationException: once a value is in the set,
// the only way out is through Max-triggered eviction.
package boundedset
