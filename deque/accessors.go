package deque

// Polled pairs a popped value with the node it came from, mirroring
// GridConcurrentLinkedDeque's pollFirstx/pollx tuple accessors. The node
// is already unlinked; it is returned only so a caller can distinguish
// which physical node carried which value, e.g. for tracing.
type Polled[T comparable] struct {
	Value T
	Node  *Node[T]
}

// PeekFirst returns the first live element without removing it, or
// false if the deque is currently empty.
func (d *Deque[T]) PeekFirst() (T, bool) {
	for p := d.first(); p != nil; p = d.successor(p) {
		if v, ok := p.Item(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// PeekLast is the symmetric counterpart of PeekFirst.
func (d *Deque[T]) PeekLast() (T, bool) {
	for p := d.last(); p != nil; p = d.predecessor(p) {
		if v, ok := p.Item(); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Peek is an alias of PeekFirst.
func (d *Deque[T]) Peek() (T, bool) { return d.PeekFirst() }

// First returns the first live element, or ErrNoSuchElement if the
// deque is empty.
func (d *Deque[T]) First() (T, error) { return screenEmpty(d.PeekFirst()) }

// Last is the symmetric counterpart of First.
func (d *Deque[T]) Last() (T, error) { return screenEmpty(d.PeekLast()) }

// Element is an alias of First.
func (d *Deque[T]) Element() (T, error) { return d.First() }

func screenEmpty[T comparable](v T, ok bool) (T, error) {
	if !ok {
		var zero T
		return zero, ErrNoSuchElement
	}
	return v, nil
}

// PollFirst removes and returns the first live element, or false if the
// deque is empty. Ported from GridConcurrentLinkedDeque.pollFirst.
func (d *Deque[T]) PollFirst() (T, bool) {
	v, _, ok := d.pollFirstNode()
	return v, ok
}

// PollFirstNode is the Node-returning counterpart of PollFirst, mirroring
// pollFirstx.
func (d *Deque[T]) PollFirstNode() (Polled[T], bool) {
	v, n, ok := d.pollFirstNode()
	if !ok {
		return Polled[T]{}, false
	}
	return Polled[T]{Value: v, Node: n}, true
}

func (d *Deque[T]) pollFirstNode() (v T, node *Node[T], ok bool) {
	for p := d.first(); p != nil; p = d.successor(p) {
		item := p.item.Load()
		if item != nil && p.casItem(item, nil) {
			d.unlink(p)
			return *item, p, true
		}
	}
	var zero T
	return zero, nil, false
}

// PollLast is the symmetric counterpart of PollFirst.
func (d *Deque[T]) PollLast() (T, bool) {
	v, _, ok := d.pollLastNode()
	return v, ok
}

// PollLastNode is the Node-returning counterpart of PollLast.
func (d *Deque[T]) PollLastNode() (Polled[T], bool) {
	v, n, ok := d.pollLastNode()
	if !ok {
		return Polled[T]{}, false
	}
	return Polled[T]{Value: v, Node: n}, true
}

func (d *Deque[T]) pollLastNode() (v T, node *Node[T], ok bool) {
	for p := d.last(); p != nil; p = d.predecessor(p) {
		item := p.item.Load()
		if item != nil && p.casItem(item, nil) {
			d.unlink(p)
			return *item, p, true
		}
	}
	var zero T
	return zero, nil, false
}

// Poll is an alias of PollFirst.
func (d *Deque[T]) Poll() (T, bool) { return d.PollFirst() }

// Pop removes and returns the first element, LIFO-style (matching
// java.util.Deque#pop, which pops from the head).
func (d *Deque[T]) Pop() (T, error) { return d.RemoveFirst() }

// RemoveFirst removes and returns the first element, or ErrNoSuchElement
// if the deque is empty.
func (d *Deque[T]) RemoveFirst() (T, error) { return screenEmpty(d.PollFirst()) }

// RemoveLast is the symmetric counterpart of RemoveFirst.
func (d *Deque[T]) RemoveLast() (T, error) { return screenEmpty(d.PollLast()) }

// Remove is an alias of RemoveFirst, matching java.util.Queue#remove.
func (d *Deque[T]) Remove() (T, error) { return d.RemoveFirst() }

// RemoveFirstOccurrence removes the first (head-to-tail) element equal to
// v, if any, and reports whether it found one. v must not be the zero
// value of T.
func (d *Deque[T]) RemoveFirstOccurrence(v T) (bool, error) {
	if isAbsent(v) {
		return false, ErrInvalidArgument
	}
	for p := d.first(); p != nil; p = d.successor(p) {
		item := p.item.Load()
		if item != nil && *item == v && p.casItem(item, nil) {
			d.unlink(p)
			return true, nil
		}
	}
	return false, nil
}

// RemoveLastOccurrence removes the last (tail-to-head) element equal to
// v, if any.
func (d *Deque[T]) RemoveLastOccurrence(v T) (bool, error) {
	if isAbsent(v) {
		return false, ErrInvalidArgument
	}
	for p := d.last(); p != nil; p = d.predecessor(p) {
		item := p.item.Load()
		if item != nil && *item == v && p.casItem(item, nil) {
			d.unlink(p)
			return true, nil
		}
	}
	return false, nil
}

// RemoveElement is an alias of RemoveFirstOccurrence, matching
// java.util.Collection#remove(Object).
func (d *Deque[T]) RemoveElement(v T) (bool, error) { return d.RemoveFirstOccurrence(v) }

// Contains reports whether the deque holds at least one element equal to
// v.
func (d *Deque[T]) Contains(v T) bool {
	if isAbsent(v) {
		return false
	}
	for p := d.first(); p != nil; p = d.successor(p) {
		if item := p.item.Load(); item != nil && *item == v {
			return true
		}
	}
	return false
}

// Clear removes every element from the deque.
func (d *Deque[T]) Clear() {
	for {
		if _, ok := d.PollFirst(); !ok {
			return
		}
	}
}

// ToSlice returns a snapshot of every live element, from first to last.
// It is the deque.go counterpart of toArray/toArrayList.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, 0)
	for p := d.first(); p != nil; p = d.successor(p) {
		if v, ok := p.Item(); ok {
			out = append(out, v)
		}
	}
	return out
}
