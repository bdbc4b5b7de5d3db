package sched

// unscheduled is the sentinel FirstDispatch value meaning "never dispatched".
const unscheduled = -1

// Job is one schedulable unit of CPU work. A Job lives in exactly one
// place at a time: a core slot, the pending queue, or neither once it has
// completed.
type Job struct {
	ID       int
	Arrival  int // simulator time of first appearance; unique across jobs
	Length   int // original length, immutable
	Priority int // lower value = higher urgency

	Remaining     int // mutable, preempt-aware
	FirstDispatch int // unscheduled until the job is actually placed on a core
	LastObserved  int // simulator time this job's Remaining was last reconciled
}

// newJob builds a Job as it looks the instant it arrives: full remaining
// time, never dispatched, and observed as of its own arrival.
func newJob(id, now, length, priority int) *Job {
	return &Job{
		ID:            id,
		Arrival:       now,
		Length:        length,
		Priority:      priority,
		Remaining:     length,
		FirstDispatch: unscheduled,
		LastObserved:  now,
	}
}
