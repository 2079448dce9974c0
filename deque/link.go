package deque

// linkFirst links n as the new first node, returning once n is live.
// Ported from GridConcurrentLinkedDeque.linkFirst(E)/linkFirstx(E): walk
// from head towards the true first node (hopping two prev-links at a
// time, rechecking head every other hop), then CAS n into place ahead
// of it.
func (d *Deque[T]) linkFirst(n *Node[T]) {
	sz := d.size.Add(1)
	d.metrics.OnSize(saturateSize(sz))

restartFromHead:
	for {
		h := d.head.Load()
		p := h
		for {
			q := p.loadPrev()
			if q != nil {
				p = q // one hop, unconditionally
				if q2 := p.loadPrev(); q2 != nil {
					// Check for head updates every other hop. If p == q2 we
					// are sure to follow head instead.
					if nh := d.head.Load(); nh != h {
						h, p = nh, nh
					} else {
						p = q2
					}
					continue
				}
			}
			if p.loadNext() == p { // PREV_TERMINATOR
				continue restartFromHead
			}

			// p is the first node.
			n.storeNext(p) // CAS piggyback.
			if p.casPrev(nil, n) {
				// Successful CAS is the linearization point for n becoming
				// live and part of the deque.
				if p != h { // hop two nodes at a time
					d.head.CompareAndSwap(h, n) // failure is OK
				}
				return
			}
			// Lost the CAS race to another pusher; re-read prev.
		}
	}
}

// linkLast links n as the new last node, bumping size by one. Mirror of
// linkFirst; ported from GridConcurrentLinkedDeque.linkLast(E)/linkLastx(E).
func (d *Deque[T]) linkLast(n *Node[T]) {
	sz := d.size.Add(1)
	d.metrics.OnSize(saturateSize(sz))
	d.spliceLast(n)
}

// spliceLast links n as the new last node without touching size; its
// only caller, linkLast, accounts for the element itself. Ported from
// GridConcurrentLinkedDeque's private linkLast(Node<E>), which likewise
// does not increment size itself.
func (d *Deque[T]) spliceLast(n *Node[T]) {
restartFromTail:
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
			if p.loadPrev() == p { // NEXT_TERMINATOR
				continue restartFromTail
			}

			// p is the last node.
			n.storePrev(p) // CAS piggyback.
			if p.casNext(nil, n) {
				if p != t {
					d.tail.CompareAndSwap(t, n)
				}
				return
			}
			// Lost the CAS race to another pusher; re-read next.
		}
	}
}

// PushFirst inserts v at the front. It returns ErrInvalidArgument if v
// is the zero value of T.
func (d *Deque[T]) PushFirst(v T) error {
	_, err := d.pushFirst(v)
	return err
}

// OfferFirst is an alias of PushFirst; the deque is unbounded, so offer
// and push always succeed (absent an invalid argument).
func (d *Deque[T]) OfferFirst(v T) error { return d.PushFirst(v) }

// PushLast inserts v at the back.
func (d *Deque[T]) PushLast(v T) error {
	_, err := d.pushLast(v)
	return err
}

// OfferLast is an alias of PushLast.
func (d *Deque[T]) OfferLast(v T) error { return d.PushLast(v) }

// Push is an alias of PushFirst, the stack-view counterpart of Pop
// (matching java.util.Deque#push, which pushes at the head).
func (d *Deque[T]) Push(v T) error { return d.PushFirst(v) }

// Offer is an alias of PushLast.
func (d *Deque[T]) Offer(v T) error { return d.PushLast(v) }

// PushFirstNode inserts v at the front and returns a handle to the new
// node, for later O(1) removal via Node.Unlink.
func (d *Deque[T]) PushFirstNode(v T) (*Node[T], error) { return d.pushFirst(v) }

// OfferFirstNode is an alias of PushFirstNode.
func (d *Deque[T]) OfferFirstNode(v T) (*Node[T], error) { return d.pushFirst(v) }

// PushLastNode inserts v at the back and returns a handle to the new
// node.
func (d *Deque[T]) PushLastNode(v T) (*Node[T], error) { return d.pushLast(v) }

// OfferLastNode is an alias of PushLastNode.
func (d *Deque[T]) OfferLastNode(v T) (*Node[T], error) { return d.pushLast(v) }

func (d *Deque[T]) pushFirst(v T) (*Node[T], error) {
	if isAbsent(v) {
		return nil, ErrInvalidArgument
	}
	n := newNode(d, v)
	d.linkFirst(n)
	d.metrics.OnPush()
	return n, nil
}

func (d *Deque[T]) pushLast(v T) (*Node[T], error) {
	if isAbsent(v) {
		return nil, ErrInvalidArgument
	}
	n := newNode(d, v)
	d.linkLast(n)
	d.metrics.OnPush()
	return n, nil
}

// PushLastDetached links an already-constructed, unattached node as the
// new last element. It is the Node-accepting counterpart of
// GridConcurrentLinkedDeque's private linkLast(Node<E>), exposed here so
// a preconstructed node can be spliced in directly. n must not already
// belong to a deque.
func (d *Deque[T]) PushLastDetached(n *Node[T]) error {
	if n == nil {
		return ErrInvalidArgument
	}
	n.d = d
	d.linkLast(n)
	d.metrics.OnPush()
	return nil
}

// OfferLastDetached is an alias of PushLastDetached.
func (d *Deque[T]) OfferLastDetached(n *Node[T]) error { return d.PushLastDetached(n) }

// spliceChainLast links a private, already-built chain [h..t] onto the
// tail in one shot, then moves tail directly to the chain's end t,
// trying once more if the first CAS on tail fails. Ported from
// GridConcurrentLinkedDeque.addAll's tail-update: "try a little harder
// to update tail, since we may be adding many elements." Unlike
// spliceLast (used for a single node), the tail CAS here is
// unconditional rather than gated on p != t, since a multi-element
// batch must not leave tail lagging behind by more than one hop.
func (d *Deque[T]) spliceChainLast(h, t *Node[T]) {
restartFromTail:
	for {
		tl := d.tail.Load()
		p := tl
		for {
			q := p.loadNext()
			if q != nil {
				p = q // one hop, unconditionally
				if q2 := p.loadNext(); q2 != nil {
					if nt := d.tail.Load(); nt != tl {
						tl, p = nt, nt
					} else {
						p = q2
					}
					continue
				}
			}
			if p.loadPrev() == p { // NEXT_TERMINATOR
				continue restartFromTail
			}

			// p is the last node.
			h.storePrev(p) // CAS piggyback.
			if p.casNext(nil, h) {
				// Successful CAS is the linearization point for the whole
				// chain becoming part of the deque.
				if !d.tail.CompareAndSwap(tl, t) {
					if nt := d.tail.Load(); t.loadNext() == nil {
						d.tail.CompareAndSwap(nt, t)
					}
				}
				return
			}
			// Lost the CAS race to another pusher; re-read next.
		}
	}
}

// PushAll appends every element of items to the back of the deque, in
// order. It is equivalent to, but more efficient than, calling PushLast
// in a loop: the private chain [items...] is built up without any
// atomic operations and then spliced onto the tail with a single
// linkLast(Node) per call, matching
// GridConcurrentLinkedDeque.addAll(Collection). Concurrent observers may
// see some, but never a non-contiguous subset, of the appended run.
//
// It returns ErrInvalidArgument, without modifying the deque, if items
// is empty or any element is the zero value of T.
func (d *Deque[T]) PushAll(items []T) error {
	if len(items) == 0 {
		return ErrInvalidArgument
	}

	var h, t *Node[T]
	for _, it := range items {
		if isAbsent(it) {
			return ErrInvalidArgument
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

	sz := d.size.Add(int64(len(items)))
	d.metrics.OnSize(saturateSize(sz))
	d.spliceChainLast(h, t)
	for range items {
		d.metrics.OnPush()
	}
	return nil
}
