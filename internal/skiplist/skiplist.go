package skiplist

import (
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"
)

// Comparator orders two elements: negative if a < b, zero if equal,
// positive if a > b. It must be a total order over every value ever
// inserted.
type Comparator[T any] func(a, b T) int

// Set is a concurrent sorted set backed by a lazy/optimistic skip list.
// The zero value is not usable; construct one with New.
type Set[T any] struct {
	head *node[T]
	cmp  Comparator[T]

	topLevel atomic.Int32 // highest level currently in use, 0-based
	length   atomic.Int64

	// rnd guards the PRNG used for random level generation; contention
	// on it is negligible next to the per-node locking Insert/Remove
	// already do.
	rndMu sync.Mutex
	rnd   *rand.Rand
}

// New constructs an empty Set ordered by cmp.
func New[T any](cmp Comparator[T]) *Set[T] {
	return &Set[T]{
		head: newHead[T](),
		cmp:  cmp,
		rnd:  rand.New(rand.NewPCG(1, 2)),
	}
}

func (s *Set[T]) randomLevel() int32 {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	lvl := int32(0)
	for lvl < maxLevel-1 && s.rnd.Uint32()&1 == 0 {
		lvl++
	}
	return lvl
}

// find locates, for every level 0..top, the rightmost node whose key is
// strictly less than v (preds[i]) and the first node at that level whose
// key is >= v (succs[i], possibly nil). It returns the highest level at
// which an exact match for v was observed, or -1 if none was found at any
// level — mirroring the classic lazy skip list's find().
func (s *Set[T]) find(v T, preds, succs []*node[T]) int32 {
	found := int32(-1)
	pred := s.head
	top := s.topLevel.Load()
	for level := int32(maxLevel - 1); level >= 0; level-- {
		if level > top {
			// Nothing has ever been linked this high; head is the only
			// possible predecessor.
			preds[level] = s.head
			succs[level] = s.head.loadNext(level)
			continue
		}
		curr := pred.loadNext(level)
		for curr != nil && s.cmp(curr.val, v) < 0 {
			pred = curr
			curr = pred.loadNext(level)
		}
		if found == -1 && curr != nil && s.cmp(curr.val, v) == 0 {
			found = level
		}
		preds[level] = pred
		succs[level] = curr
	}
	return found
}

// Add inserts v and reports whether it was not already present. Ported
// in spirit from the Herlihy & Shavit lazy-list insert: find, then lock
// and validate the predecessor chain up to the new node's top level
// before linking it in.
func (s *Set[T]) Add(v T) bool {
	topLevel := s.randomLevel()
	var preds, succs [maxLevel]*node[T]

	for {
		lFound := s.find(v, preds[:], succs[:])
		if lFound != -1 {
			found := succs[lFound]
			if !found.isMarked() {
				for !found.isFullyLinked() {
					// Another inserter is still linking this node in;
					// yield briefly rather than reporting a false negative.
					runtime.Gosched()
				}
				return false
			}
			continue // found was logically deleted mid-search; retry
		}

		highestLocked := int32(-1)
		valid := true
		var prevPred *node[T]

		for level := int32(0); valid && level <= topLevel; level++ {
			pred, succ := preds[level], succs[level]
			if pred != prevPred {
				pred.mu.Lock()
				highestLocked = level
				prevPred = pred
			}
			valid = !pred.isMarked() && !succOrNilMarked(succ) && pred.loadNext(level) == succ
		}

		if !valid {
			unlockPreds(preds[:], highestLocked)
			continue
		}

		n := newNode(v, topLevel)
		for level := int32(0); level <= topLevel; level++ {
			n.storeNext(level, succs[level])
		}
		for level := int32(0); level <= topLevel; level++ {
			preds[level].storeNext(level, n)
		}
		n.setFullyLinked()

		s.bumpTopLevel(topLevel)
		unlockPreds(preds[:], highestLocked)
		s.length.Add(1)
		return true
	}
}

func succOrNilMarked[T any](n *node[T]) bool {
	return n != nil && n.isMarked()
}

func unlockPreds[T any](preds []*node[T], highestLocked int32) {
	var prev *node[T]
	for level := highestLocked; level >= 0; level-- {
		if preds[level] != prev {
			preds[level].mu.Unlock()
			prev = preds[level]
		}
	}
}

func (s *Set[T]) bumpTopLevel(topLevel int32) {
	for {
		cur := s.topLevel.Load()
		if topLevel <= cur {
			return
		}
		if s.topLevel.CompareAndSwap(cur, topLevel) {
			return
		}
	}
}

// Remove removes v if present and reports whether it found it. Mirrors
// the lazy-list delete: logically mark the victim, then physically
// unlink it level by level under the same validate-then-link discipline
// as Add.
func (s *Set[T]) Remove(v T) bool {
	var victim *node[T]
	isMarked := false
	topLevel := int32(-1)
	var preds, succs [maxLevel]*node[T]

	for {
		lFound := s.find(v, preds[:], succs[:])
		if !isMarked {
			if lFound == -1 {
				return false
			}
			victim = succs[lFound]
			if !victim.isFullyLinked() || victim.isMarked() {
				return false
			}
			topLevel = victim.topLevel
			victim.mu.Lock()
			if victim.isMarked() {
				victim.mu.Unlock()
				return false
			}
			victim.setMarked()
			isMarked = true
		}

		highestLocked := int32(-1)
		valid := true
		var prevPred *node[T]

		for level := int32(0); valid && level <= topLevel; level++ {
			pred := preds[level]
			if pred != prevPred {
				pred.mu.Lock()
				highestLocked = level
				prevPred = pred
			}
			valid = !pred.isMarked() && pred.loadNext(level) == victim
		}

		if !valid {
			unlockPreds(preds[:], highestLocked)
			continue
		}

		for level := topLevel; level >= 0; level-- {
			preds[level].storeNext(level, victim.loadNext(level))
		}
		victim.mu.Unlock()
		unlockPreds(preds[:], highestLocked)
		s.length.Add(-1)
		return true
	}
}

// RemoveMin removes and returns the smallest live element, or false if
// the set is empty at the moment it gives up. It loops over First/Remove
// the way GridBoundedConcurrentOrderedSet.add's eviction loop loops over
// first()/remove(first()), since the smallest element can change or
// disappear between the two calls under concurrent access.
func (s *Set[T]) RemoveMin() (T, bool) {
	for {
		v, ok := s.First()
		if !ok {
			var zero T
			return zero, false
		}
		if s.Remove(v) {
			return v, true
		}
		// Lost a race with another remover for the same minimum; retry
		// against whatever is smallest now.
	}
}

// First returns the smallest live element without removing it, or false
// if the set is empty.
func (s *Set[T]) First() (T, bool) {
	n := s.head.loadNext(0)
	for n != nil && (n.isMarked() || !n.isFullyLinked()) {
		n = n.loadNext(0)
	}
	if n == nil {
		var zero T
		return zero, false
	}
	return n.val, true
}

// Contains reports whether v is present and fully linked.
func (s *Set[T]) Contains(v T) bool {
	var preds, succs [maxLevel]*node[T]
	lFound := s.find(v, preds[:], succs[:])
	return lFound != -1 && succs[lFound].isFullyLinked() && !succs[lFound].isMarked()
}

// Len returns the number of elements currently in the set. It is an
// atomic counter maintained by Add/Remove, not a traversal count, so it
// may be transiently off by the count of in-flight Add/Remove calls.
func (s *Set[T]) Len() int {
	n := s.length.Load()
	if n < 0 {
		return 0
	}
	return int(n)
}

// ForEach calls fn for every live element in ascending order. fn must
// not call back into the Set. Iteration is weakly consistent in the
// same sense as Deque's Iterator: no panics on concurrent modification,
// but it may or may not observe elements inserted or removed during the
// walk.
func (s *Set[T]) ForEach(fn func(T)) {
	for n := s.head.loadNext(0); n != nil; n = n.loadNext(0) {
		if n.isFullyLinked() && !n.isMarked() {
			fn(n.val)
		}
	}
}
