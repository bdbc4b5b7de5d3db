// Package priqueue implements the ordered pending-job queue (OPQ): a
// sequence of owned elements kept sorted under a caller-supplied total
// order, with stable FIFO tie-breaking and indexed access.
//
// The node storage is a github.com/emirpasic/gods singly-linked list
// rather than a hand-rolled one: gods already gives the Insert/Get/Remove
// triplet an ordered container like this needs, and insertion-position
// scanning plus indexed removal is exactly what a binary heap (the more
// obvious choice for a priority queue) cannot offer.
package priqueue

import (
	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// Comparator reports whether a strictly precedes b (negative), strictly
// follows b (positive), or ties with b (zero). Ties land after existing
// equal elements, which is what makes a comparator that always returns a
// positive value a pure FIFO queue.
type Comparator[T any] func(a, b T) int

// Queue is an ordered pending-job queue parameterised over payload type T.
// T must be comparable so RemoveValue can compare by identity without
// ever invoking the comparator.
type Queue[T comparable] struct {
	list *singlylinkedlist.List
	cmp  Comparator[T]
}

// New creates an empty queue ordered by cmp. Each instance is meant to be
// initialised once, mirroring the single-use contract of the original
// priqueue_init.
func New[T comparable](cmp Comparator[T]) *Queue[T] {
	return &Queue[T]{
		list: singlylinkedlist.New(),
		cmp:  cmp,
	}
}

// Offer inserts value in sorted position and returns the zero-based rank
// it lands at, where 0 means the new head. Among elements the comparator
// considers equal, value lands after all of them (stable FIFO).
func (q *Queue[T]) Offer(value T) int {
	rank := 0
	size := q.list.Size()
	for ; rank < size; rank++ {
		existing, _ := q.list.Get(rank)
		if q.cmp(value, existing.(T)) < 0 {
			break
		}
	}
	q.list.Insert(rank, value)
	return rank
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	v, ok := q.list.Get(0)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Poll removes and returns the head element.
func (q *Queue[T]) Poll() (T, bool) {
	v, ok := q.Peek()
	if !ok {
		return v, false
	}
	q.list.Remove(0)
	return v, true
}

// At returns the i-th element (0-based), or the zero value and false when
// i is out of range. This is the corrected contract: one source variant
// of priqueue_at walked one node too far before dereferencing; this
// implementation always returns the i-th payload itself.
func (q *Queue[T]) At(index int) (T, bool) {
	v, ok := q.list.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// RemoveAt removes and returns the i-th element, shifting later elements
// up to fill the gap, or returns the zero value and false if i is out of
// range.
func (q *Queue[T]) RemoveAt(index int) (T, bool) {
	v, ok := q.list.Get(index)
	if !ok {
		var zero T
		return zero, false
	}
	q.list.Remove(index)
	return v.(T), true
}

// RemoveValue removes every element identity-equal to target and reports
// how many were removed. It never calls the comparator: T's == is the
// only notion of equality used here, matching the "compare handles, not
// payload contents" rule for queue nodes that happen to carry pointers.
func (q *Queue[T]) RemoveValue(target T) int {
	removed := 0
	for i := 0; i < q.list.Size(); {
		v, _ := q.list.Get(i)
		if v.(T) == target {
			q.list.Remove(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// Size returns the number of elements currently queued.
func (q *Queue[T]) Size() int {
	return q.list.Size()
}

// Values returns a snapshot slice of the queue contents in order, mostly
// useful for diagnostics (show_queue) and tests.
func (q *Queue[T]) Values() []T {
	raw := q.list.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out
}

// Destroy releases every node. After Destroy the queue is empty and may
// be reused as such, though callers should treat it as gone.
func (q *Queue[T]) Destroy() {
	q.list.Clear()
}
