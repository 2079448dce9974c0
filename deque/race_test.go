package deque

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// A mixed workload of concurrent PushFirst/PushLast/PollFirst/PollLast/
// Contains/Iterator on a shared Deque. Should pass under -race without
// detector reports; also checks that no iterator step fails and that the
// deque is empty after a final drain.
func TestRace_Basic(t *testing.T) {
	d := New[int]()

	workers := 4 * runtime.GOMAXPROCS(0)
	deadline := time.Now().Add(300 * time.Millisecond)

	var pushed, popped int64

	g, ctx := errgroup.WithContext(context.Background())
	_ = ctx
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(w)*9973))
			i := 0
			for time.Now().Before(deadline) {
				switch r.Intn(6) {
				case 0:
					_ = d.PushFirst(i + 1)
					atomic.AddInt64(&pushed, 1)
				case 1:
					_ = d.PushLast(i + 1)
					atomic.AddInt64(&pushed, 1)
				case 2:
					if _, ok := d.PollFirst(); ok {
						atomic.AddInt64(&popped, 1)
					}
				case 3:
					if _, ok := d.PollLast(); ok {
						atomic.AddInt64(&popped, 1)
					}
				case 4:
					d.Contains(i)
				case 5:
					it := d.Iterator()
					for it.HasNext() {
						if _, err := it.Next(); err != nil {
							return err
						}
					}
				}
				i++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("worker error: %v", err)
	}

	d.Clear()
	if !d.IsEmpty() {
		t.Fatal("want empty after drain")
	}
}

// Concurrent PushLastNode + Unlink exercises the interior-unlink and
// GC-unlink paths against a backdrop of ongoing end pushes/pops.
func TestRace_NodeUnlink(t *testing.T) {
	d := New[int]()

	const n = 2000
	nodes := make([]*Node[int], n)
	for i := 0; i < n; i++ {
		h, err := d.PushLastNode(i + 1)
		if err != nil {
			t.Fatalf("PushLastNode: %v", err)
		}
		nodes[i] = h
	}

	g, _ := errgroup.WithContext(context.Background())
	for i := 1; i < n; i += 2 {
		i := i
		g.Go(func() error {
			nodes[i].Unlink()
			return nil
		})
	}
	g.Go(func() error {
		for i := 0; i < 200; i++ {
			_ = d.PushFirst(-1)
			_, _ = d.PollLast()
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("worker error: %v", err)
	}

	for v := d.ToSlice(); len(v) > 0; v = v[1:] {
		if v[0] < 0 {
			continue
		}
		if v[0]%2 == 0 {
			t.Fatalf("found unlinked even value %d still present", v[0])
		}
	}
}
