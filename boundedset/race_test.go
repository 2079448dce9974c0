package boundedset

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/gbrey/gridgain/internal/util"
)

// Concurrent Add from many goroutines, well past Max, should converge
// on a set whose size never exceeds Max once all adders have finished
// and leave only the Max largest values behind. Should pass under
// -race without detector reports.
func TestRace_AddConverges(t *testing.T) {
	const max = 50
	const n = 5000

	s := New(Options[int]{Max: max, Comparator: util.Natural[int]()})

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			s.Add(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := s.Size(); got != max {
		t.Fatalf("Size: want %d, got %d", max, got)
	}

	got := s.ToSlice()
	if len(got) != max {
		t.Fatalf("ToSlice length: want %d, got %d", max, len(got))
	}
	for i := range got {
		if i > 0 && got[i-1] >= got[i] {
			t.Fatalf("ToSlice not strictly increasing at %d: %v", i, got)
		}
	}
	// Every surviving element must have been among the n largest inputs
	// (n-max..n-1), since eviction always removes the current minimum.
	for _, v := range got {
		if v < n-max {
			t.Fatalf("surviving element %d should have been evicted", v)
		}
	}
}

// Concurrent Add of the same small keyspace exercises the duplicate
// path and the decrement-before-evict CAS loop against heavy
// contention on a handful of skip-list nodes.
func TestRace_AddSameKeyspace(t *testing.T) {
	const max = 10
	const keyspace = 20
	const workers = 200

	s := New(Options[int]{Max: max, Comparator: util.Natural[int]()})

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			s.Add(w % keyspace)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := s.Size(); got > max {
		t.Fatalf("Size: want <= %d, got %d", max, got)
	}
}
