package priqueue

import "testing"

func ascending(a, b int) int { return a - b }

func fifo(a, b int) int { return 1 }

func TestOfferReturnsLandingRank(t *testing.T) {
	q := New(ascending)

	if rank := q.Offer(5); rank != 0 {
		t.Fatalf("first offer: want rank 0, got %d", rank)
	}
	if rank := q.Offer(1); rank != 0 {
		t.Fatalf("offer smaller: want rank 0, got %d", rank)
	}
	if rank := q.Offer(3); rank != 1 {
		t.Fatalf("offer middle: want rank 1, got %d", rank)
	}
	if got := q.Values(); !equalInts(got, []int{1, 3, 5}) {
		t.Fatalf("queue order = %v, want [1 3 5]", got)
	}
}

func TestOfferTiesLandAfterExistingEquals(t *testing.T) {
	q := New(ascending)
	q.Offer(2)
	q.Offer(2)
	rank := q.Offer(2)
	if rank != 2 {
		t.Fatalf("third equal offer: want rank 2, got %d", rank)
	}
}

func TestFCFSComparatorIsPureFIFO(t *testing.T) {
	q := New(fifo)
	for i, v := range []int{10, 20, 30} {
		if rank := q.Offer(v); rank != i {
			t.Fatalf("offer %d: want rank %d, got %d", v, i, rank)
		}
	}
	if got := q.Values(); !equalInts(got, []int{10, 20, 30}) {
		t.Fatalf("queue order = %v, want [10 20 30]", got)
	}
}

func TestPeekDoesNotMutate(t *testing.T) {
	q := New(ascending)
	q.Offer(7)
	if v, ok := q.Peek(); !ok || v != 7 {
		t.Fatalf("peek = (%d, %v), want (7, true)", v, ok)
	}
	if q.Size() != 1 {
		t.Fatalf("size after peek = %d, want 1", q.Size())
	}
}

func TestPollEmptyReturnsZeroValue(t *testing.T) {
	q := New(ascending)
	if v, ok := q.Poll(); ok || v != 0 {
		t.Fatalf("poll empty = (%d, %v), want (0, false)", v, ok)
	}
}

func TestOfferThenPollRoundTrips(t *testing.T) {
	q := New(ascending)
	q.Offer(42)
	v, ok := q.Poll()
	if !ok || v != 42 {
		t.Fatalf("poll = (%d, %v), want (42, true)", v, ok)
	}
	if q.Size() != 0 {
		t.Fatalf("size after round-trip = %d, want 0", q.Size())
	}
}

func TestAtOutOfRangeReturnsZeroValue(t *testing.T) {
	q := New(ascending)
	q.Offer(1)
	if _, ok := q.At(-1); ok {
		t.Fatal("At(-1) should report false")
	}
	if _, ok := q.At(1); ok {
		t.Fatal("At(size) should report false")
	}
	if v, ok := q.At(0); !ok || v != 1 {
		t.Fatalf("At(0) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestRemoveAtShiftsLaterElements(t *testing.T) {
	q := New(ascending)
	for _, v := range []int{1, 2, 3, 4} {
		q.Offer(v)
	}
	removed, ok := q.RemoveAt(1)
	if !ok || removed != 2 {
		t.Fatalf("RemoveAt(1) = (%d, %v), want (2, true)", removed, ok)
	}
	if got := q.Values(); !equalInts(got, []int{1, 3, 4}) {
		t.Fatalf("queue order = %v, want [1 3 4]", got)
	}
}

func TestRemoveAtOutOfRangeIsNoop(t *testing.T) {
	q := New(ascending)
	q.Offer(1)
	if _, ok := q.RemoveAt(5); ok {
		t.Fatal("RemoveAt(5) should report false on a 1-element queue")
	}
	if q.Size() != 1 {
		t.Fatalf("size after no-op RemoveAt = %d, want 1", q.Size())
	}
}

func TestRemoveValueRemovesEveryIdentityMatch(t *testing.T) {
	q := New(ascending)
	for _, v := range []int{5, 1, 5, 3, 5} {
		q.Offer(v)
	}
	n := q.RemoveValue(5)
	if n != 3 {
		t.Fatalf("RemoveValue(5) removed %d, want 3", n)
	}
	if got := q.Values(); !equalInts(got, []int{1, 3}) {
		t.Fatalf("queue order = %v, want [1 3]", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
