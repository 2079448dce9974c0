package deque

import (
	"errors"
	"testing"
)

func TestDeque_PushPopFIFO(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 1; i <= 5; i++ {
		if err := d.PushLast(i); err != nil {
			t.Fatalf("PushLast(%d): %v", i, err)
		}
	}
	for i := 1; i <= 5; i++ {
		v, err := d.RemoveFirst()
		if err != nil {
			t.Fatalf("RemoveFirst: %v", err)
		}
		if v != i {
			t.Fatalf("want %d, got %d", i, v)
		}
	}
	if _, err := d.RemoveFirst(); !errors.Is(err, ErrNoSuchElement) {
		t.Fatalf("want ErrNoSuchElement, got %v", err)
	}
}

func TestDeque_PushPopLIFO(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 1; i <= 5; i++ {
		if err := d.PushFirst(i); err != nil {
			t.Fatalf("PushFirst(%d): %v", i, err)
		}
	}
	for i := 5; i >= 1; i-- {
		v, err := d.RemoveFirst()
		if err != nil {
			t.Fatalf("RemoveFirst: %v", err)
		}
		if v != i {
			t.Fatalf("want %d, got %d", i, v)
		}
	}
}

func TestDeque_PushFirstZeroValue(t *testing.T) {
	t.Parallel()

	d := New[int]()
	if err := d.PushFirst(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	if err := d.PushLast(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestDeque_PeekDoesNotRemove(t *testing.T) {
	t.Parallel()

	d := New[string]()
	_ = d.PushLast("a")
	_ = d.PushLast("b")

	if v, ok := d.PeekFirst(); !ok || v != "a" {
		t.Fatalf("PeekFirst: got %q, %v", v, ok)
	}
	if v, ok := d.PeekLast(); !ok || v != "b" {
		t.Fatalf("PeekLast: got %q, %v", v, ok)
	}
	if got := d.SizeApprox(); got != 2 {
		t.Fatalf("SizeApprox: want 2, got %d", got)
	}
}

func TestDeque_NodeHandleUnlink(t *testing.T) {
	t.Parallel()

	d := New[int]()
	_ = d.PushLast(1)
	n, err := d.PushLastNode(2)
	if err != nil {
		t.Fatalf("PushLastNode: %v", err)
	}
	_ = d.PushLast(3)

	n.Unlink()
	// Unlink is idempotent.
	n.Unlink()

	got := d.ToSlice()
	want := []int{1, 3}
	if len(got) != len(want) {
		t.Fatalf("ToSlice: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice: want %v, got %v", want, got)
		}
	}
}

func TestDeque_RemoveFirstLastOccurrence(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for _, v := range []int{1, 2, 3, 2, 1} {
		_ = d.PushLast(v)
	}

	ok, err := d.RemoveFirstOccurrence(2)
	if err != nil || !ok {
		t.Fatalf("RemoveFirstOccurrence: ok=%v err=%v", ok, err)
	}
	if got := d.ToSlice(); len(got) != 4 || got[1] != 3 {
		t.Fatalf("ToSlice after RemoveFirstOccurrence(2): %v", got)
	}

	ok, err = d.RemoveLastOccurrence(1)
	if err != nil || !ok {
		t.Fatalf("RemoveLastOccurrence: ok=%v err=%v", ok, err)
	}
	if got := d.ToSlice(); len(got) != 3 {
		t.Fatalf("ToSlice after RemoveLastOccurrence(1): %v", got)
	}

	ok, err = d.RemoveFirstOccurrence(99)
	if err != nil || ok {
		t.Fatalf("RemoveFirstOccurrence(absent): ok=%v err=%v", ok, err)
	}
}

func TestDeque_Contains(t *testing.T) {
	t.Parallel()

	d := NewFromSlice([]int{1, 2, 3})
	if !d.Contains(2) {
		t.Fatal("want Contains(2) == true")
	}
	if d.Contains(4) {
		t.Fatal("want Contains(4) == false")
	}
}

func TestDeque_PushAll(t *testing.T) {
	t.Parallel()

	d := New[int]()
	_ = d.PushLast(1)
	if err := d.PushAll([]int{2, 3, 4}); err != nil {
		t.Fatalf("PushAll: %v", err)
	}
	got := d.ToSlice()
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("ToSlice: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice: want %v, got %v", want, got)
		}
	}
	if got := d.SizeApprox(); got != 4 {
		t.Fatalf("SizeApprox: want 4, got %d", got)
	}

	if err := d.PushAll(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("PushAll(nil): want ErrInvalidArgument, got %v", err)
	}
}

func TestDeque_PushAllAdvancesTailToBatchEnd(t *testing.T) {
	t.Parallel()

	d := New[int]()
	if err := d.PushAll([]int{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("PushAll: %v", err)
	}

	// tail must reference the batch's last node, not its first: a
	// subsequent PushLast should link directly off tail in one hop,
	// without walking the whole freshly-appended run.
	tail := d.tail.Load()
	if v, ok := tail.Item(); !ok || v != 5 {
		t.Fatalf("tail after PushAll: want last-pushed value 5, got %d (ok=%v)", v, ok)
	}

	if err := d.PushLast(6); err != nil {
		t.Fatalf("PushLast: %v", err)
	}
	got := d.ToSlice()
	want := []int{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("ToSlice: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice: want %v, got %v", want, got)
		}
	}
}

func TestDeque_IteratorForward(t *testing.T) {
	t.Parallel()

	d := NewFromSlice([]int{1, 2, 3, 4})
	it := d.Iterator()

	var got []int
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, v)
	}
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Iterator: want %v, got %v", want, got)
		}
	}
	if _, err := it.Next(); !errors.Is(err, ErrNoSuchElement) {
		t.Fatalf("exhausted Next: want ErrNoSuchElement, got %v", err)
	}
}

func TestDeque_IteratorRemove(t *testing.T) {
	t.Parallel()

	d := NewFromSlice([]int{1, 2, 3, 4})
	it := d.Iterator()

	for it.HasNext() {
		v, _ := it.Next()
		if v%2 == 0 {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove: %v", err)
			}
		}
	}

	got := d.ToSlice()
	want := []int{1, 3}
	if len(got) != len(want) {
		t.Fatalf("ToSlice after iterator removal: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice after iterator removal: want %v, got %v", want, got)
		}
	}
}

func TestDeque_IteratorRemoveWithoutNext(t *testing.T) {
	t.Parallel()

	d := NewFromSlice([]int{1, 2, 3})
	it := d.Iterator()

	if err := it.Remove(); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("Remove before Next: want ErrNotSupported, got %v", err)
	}

	// A second Remove right after a successful one, with no intervening
	// Next, must also report ErrNotSupported.
	if _, err := it.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := it.Remove(); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("Remove again without Next: want ErrNotSupported, got %v", err)
	}
}

func TestDeque_DescendingIterator(t *testing.T) {
	t.Parallel()

	d := NewFromSlice([]int{1, 2, 3})
	it := d.DescendingIterator()

	var got []int
	for it.HasNext() {
		v, _ := it.Next()
		got = append(got, v)
	}
	want := []int{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DescendingIterator: want %v, got %v", want, got)
		}
	}
}

func TestDeque_Clear(t *testing.T) {
	t.Parallel()

	d := NewFromSlice([]int{1, 2, 3})
	d.Clear()
	if !d.IsEmpty() {
		t.Fatal("want empty after Clear")
	}
	if got := d.ToSlice(); len(got) != 0 {
		t.Fatalf("ToSlice after Clear: %v", got)
	}
}

func TestDeque_SizeVsSizeApprox(t *testing.T) {
	t.Parallel()

	d := New[int]()
	for i := 1; i <= 10; i++ {
		_ = d.PushLast(i)
	}
	if got := d.Size(); got != 10 {
		t.Fatalf("Size: want 10, got %d", got)
	}
	if got := d.SizeApprox(); got != 10 {
		t.Fatalf("SizeApprox: want 10, got %d", got)
	}

	for i := 0; i < 3; i++ {
		_, _ = d.RemoveFirst()
	}
	if got := d.Size(); got != 7 {
		t.Fatalf("Size after 3 removals: want 7, got %d", got)
	}
}

func TestDeque_InteriorUnlinkViaHandle(t *testing.T) {
	t.Parallel()

	d := New[int]()
	var nodes []*Node[int]
	for i := 0; i < 20; i++ {
		n, err := d.PushLastNode(i + 1)
		if err != nil {
			t.Fatalf("PushLastNode: %v", err)
		}
		nodes = append(nodes, n)
	}

	// Remove every other interior node, exercising skipDeletedPredecessors
	// / skipDeletedSuccessors and the HOPS-gated GC-unlink path.
	for i := 1; i < len(nodes); i += 2 {
		nodes[i].Unlink()
	}

	got := d.ToSlice()
	if len(got) != 10 {
		t.Fatalf("ToSlice length: want 10, got %d (%v)", len(got), got)
	}
	for i, v := range got {
		if v != 2*i+1 {
			t.Fatalf("ToSlice[%d]: want %d, got %d", i, 2*i+1, v)
		}
	}
}
