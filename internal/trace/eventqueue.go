package trace

import "container/heap"

type eventKind int

const (
	eventArrival eventKind = iota
	eventCompletionAttempt
	eventQuantumAttempt
)

// event is one entry in the harness's own event queue. generation ties a
// completion/quantum attempt to the specific dispatch that scheduled it:
// if the core's occupant has moved on by the time the event fires (the
// job was preempted or rotated away), the attempt is stale and ignored.
type event struct {
	time       int
	kind       eventKind
	coreID     int
	jobID      int
	generation int
	arrival    Arrival
	seq        int // tie-break for equal-time events, insertion order
}

// eventQueue is a min-heap ordered by (time, seq), backed by
// container/heap the way the pack's other heap-based job queues are.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(event))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(q)
	return q
}

func (q *eventQueue) push(e event) {
	heap.Push(q, e)
}

func (q *eventQueue) pop() (event, bool) {
	if q.Len() == 0 {
		return event{}, false
	}
	return heap.Pop(q).(event), true
}
