package deque

// hops is the number of deleted interior nodes GridConcurrentLinkedDeque
// tolerates at an end before it bothers squeezing them out; ported
// verbatim as HOPS.
const hops = 2

// unlink physically detaches x, whose item has already been logically
// cleared by a prior casItem(item, nil). Ported from
// GridConcurrentLinkedDeque.unlink(Node<E>).
func (d *Deque[T]) unlink(x *Node[T]) {
	prev := x.loadPrev()
	next := x.loadNext()

	n := d.size.Add(-1)
	d.metrics.OnPop()
	d.metrics.OnUnlink()
	d.metrics.OnSize(saturateSize(n))

	switch {
	case prev == nil:
		d.unlinkFirst(x, next)
	case next == nil:
		d.unlinkLast(x, prev)
	default:
		d.unlinkInterior(x, prev, next)
	}
}

// unlinkInterior handles the common case: x has both a predecessor and a
// successor link. It finds the unique active predecessor/successor of x
// and splices them together, then — if x was adjacent to either end —
// attempts to GC-unlink so that active nodes become unreachable from x.
func (d *Deque[T]) unlinkInterior(x, prev, next *Node[T]) {
	var activePred, activeSucc *Node[T]
	var isFirst, isLast bool
	n := 1

	// Find active predecessor.
	for p := prev; ; n++ {
		if _, ok := p.Item(); ok {
			activePred, isFirst = p, false
			break
		}
		q := p.loadPrev()
		switch {
		case q == nil:
			if p.loadNext() == p {
				return
			}
			activePred, isFirst = p, true
		case p == q:
			return
		default:
			p = q
			continue
		}
		break
	}

	// Find active successor.
	for p := next; ; n++ {
		if _, ok := p.Item(); ok {
			activeSucc, isLast = p, false
			break
		}
		q := p.loadNext()
		switch {
		case q == nil:
			if p.loadPrev() == p {
				return
			}
			activeSucc, isLast = p, true
		case p == q:
			return
		default:
			p = q
			continue
		}
		break
	}

	// Always squeeze out purely interior deleted runs; only bother at
	// an end once enough deleted nodes have piled up to pay for it.
	if n < hops && (isFirst || isLast) {
		return
	}

	d.skipDeletedSuccessors(activePred)
	d.skipDeletedPredecessors(activeSucc)

	if !(isFirst || isLast) {
		return
	}

	predOK := activePred.loadPrev() == nil
	if !isFirst {
		_, predOK = activePred.Item()
	}
	succOK := activeSucc.loadNext() == nil
	if !isLast {
		_, succOK = activeSucc.Item()
	}

	// Recheck expected state of predecessor and successor before
	// attempting to GC-unlink x.
	if activePred.loadNext() == activeSucc &&
		activeSucc.loadPrev() == activePred &&
		predOK && succOK {

		d.updateHead() // ensure x is not reachable from head
		d.updateTail() // ensure x is not reachable from tail

		if isFirst {
			x.storePrev(d.prevTerm)
		} else {
			x.storePrev(x)
		}
		if isLast {
			x.storeNext(d.nextTerm)
		} else {
			x.storeNext(x)
		}
	}
}

// unlinkFirst handles a logically deleted node that was (at the time of
// unlink) the first node. Ported from
// GridConcurrentLinkedDeque.unlinkFirst.
func (d *Deque[T]) unlinkFirst(first, next *Node[T]) {
	var o *Node[T]
	p := next
	for {
		_, live := p.Item()
		var q *Node[T]
		if !live {
			q = p.loadNext()
		}
		if live || q == nil {
			if o != nil && p.loadPrev() != p && first.casNext(next, p) {
				d.skipDeletedPredecessors(p)
				_, pLive := p.Item()
				if first.loadPrev() == nil && (p.loadNext() == nil || pLive) && p.loadPrev() == first {
					d.updateHead() // ensure o is not reachable from head
					d.updateTail() // ensure o is not reachable from tail
					o.storeNext(o)
					o.storePrev(d.prevTerm)
				}
			}
			return
		}
		if p == q {
			return
		}
		o, p = p, q
	}
}

// unlinkLast handles a logically deleted node that was (at the time of
// unlink) the last node. Ported from
// GridConcurrentLinkedDeque.unlinkLast.
func (d *Deque[T]) unlinkLast(last, prev *Node[T]) {
	var o *Node[T]
	p := prev
	for {
		_, live := p.Item()
		var q *Node[T]
		if !live {
			q = p.loadPrev()
		}
		if live || q == nil {
			if o != nil && p.loadNext() != p && last.casPrev(prev, p) {
				d.skipDeletedSuccessors(p)
				_, pLive := p.Item()
				if last.loadNext() == nil && (p.loadPrev() == nil || pLive) && p.loadNext() == last {
					d.updateHead() // ensure o is not reachable from head
					d.updateTail() // ensure o is not reachable from tail
					o.storePrev(o)
					o.storeNext(d.nextTerm)
				}
			}
			return
		}
		if p == q {
			return
		}
		o, p = p, q
	}
}

// updateHead guarantees that any node unlinked before this call becomes
// unreachable from head once it returns. Ported from
// GridConcurrentLinkedDeque.updateHead.
func (d *Deque[T]) updateHead() {
restart:
	for {
		h := d.head.Load()
		if _, ok := h.Item(); ok {
			return
		}
		p := h.loadPrev()
		if p == nil {
			return
		}
		for {
			q := p.loadPrev()
			if q == nil {
				if d.head.CompareAndSwap(h, p) {
					return
				}
				continue restart
			}
			p2 := q.loadPrev()
			if p2 == nil {
				if d.head.CompareAndSwap(h, q) {
					return
				}
				continue restart
			}
			if d.head.Load() != h {
				continue restart
			}
			p = p2
		}
	}
}

// updateTail is the symmetric counterpart of updateHead. Ported from
// GridConcurrentLinkedDeque.updateTail.
func (d *Deque[T]) updateTail() {
restart:
	for {
		t := d.tail.Load()
		if _, ok := t.Item(); ok {
			return
		}
		p := t.loadNext()
		if p == nil {
			return
		}
		for {
			q := p.loadNext()
			if q == nil {
				if d.tail.CompareAndSwap(t, p) {
					return
				}
				continue restart
			}
			p2 := q.loadNext()
			if p2 == nil {
				if d.tail.CompareAndSwap(t, q) {
					return
				}
				continue restart
			}
			if d.tail.Load() != t {
				continue restart
			}
			p = p2
		}
	}
}

// skipDeletedPredecessors advances x.prev past any run of logically
// deleted nodes. Ported from
// GridConcurrentLinkedDeque.skipDeletedPredecessors.
func (d *Deque[T]) skipDeletedPredecessors(x *Node[T]) {
	for {
		prev := x.loadPrev()
		p := prev

		active := false
	findActive:
		for {
			if _, ok := p.Item(); ok {
				active = true
				break findActive
			}
			q := p.loadPrev()
			if q == nil {
				if p.loadNext() == p {
					break findActive // continue whileActive
				}
				active = true
				break findActive
			}
			if p == q {
				break findActive // continue whileActive
			}
			p = q
		}

		if active {
			if prev == p {
				return
			}
			if x.casPrev(prev, p) {
				return
			}
		}

		// Loop again while x is still live or has no successor; stop
		// once x is deleted and has a successor link to hand off to.
		_, itemOK := x.Item()
		if !itemOK && x.loadNext() != nil {
			return
		}
	}
}

// skipDeletedSuccessors is the symmetric counterpart of
// skipDeletedPredecessors. Ported from
// GridConcurrentLinkedDeque.skipDeletedSuccessors.
func (d *Deque[T]) skipDeletedSuccessors(x *Node[T]) {
	for {
		next := x.loadNext()
		p := next

		active := false
	findActive:
		for {
			if _, ok := p.Item(); ok {
				active = true
				break findActive
			}
			q := p.loadNext()
			if q == nil {
				if p.loadPrev() == p {
					break findActive
				}
				active = true
				break findActive
			}
			if p == q {
				break findActive
			}
			p = q
		}

		if active {
			if next == p {
				return
			}
			if x.casNext(next, p) {
				return
			}
		}

		_, itemOK := x.Item()
		if !itemOK && x.loadPrev() != nil {
			return
		}
	}
}

// successor returns the successor of p, or the true first node if p.next
// has been self-linked (meaning p fell off the chain while this caller
// held a stale pointer).
func (d *Deque[T]) successor(p *Node[T]) *Node[T] {
	q := p.loadNext()
	if p == q {
		return d.first()
	}
	return q
}

// predecessor is the symmetric counterpart of successor.
func (d *Deque[T]) predecessor(p *Node[T]) *Node[T] {
	q := p.loadPrev()
	if p == q {
		return d.last()
	}
	return q
}

// first returns the unique node p for which p.prev == nil && p.next !=
// p. It may or may not be logically deleted. Guarantees head is set to
// the returned node. Ported from GridConcurrentLinkedDeque.first().
func (d *Deque[T]) first() *Node[T] {
restart:
	for {
		h := d.head.Load()
		p := h
		for {
			q := p.loadPrev()
			if q != nil {
				p = q // one hop, unconditionally
				if q2 := p.loadPrev(); q2 != nil {
					if nh := d.head.Load(); nh != h {
						h, p = nh, nh
					} else {
						p = q2
					}
					continue
				}
			}
			if p == h || d.head.CompareAndSwap(h, p) {
				return p
			}
			continue restart
		}
	}
}

// last is the symmetric counterpart of first. Ported from
// GridConcurrentLinkedDeque.last().
func (d *Deque[T]) last() *Node[T] {
restart:
	for {
		t := d.tail.Load()
		p := t
		for {
			q := p.loadNext()
			if q != nil {
				p = q // one hop, unconditionally
				if q2 := p.loadNext(); q2 != nil {
					if nt := d.tail.Load(); nt != t {
						t, p = nt, nt
					} else {
						p = q2
					}
					continue
				}
			}
			if p == t || d.tail.CompareAndSwap(t, p) {
				return p
			}
			continue restart
		}
	}
}
