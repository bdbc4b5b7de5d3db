// Package sched implements the placement/preemption core of a multi-core
// CPU job scheduler: the Dispatcher reacts to arrival, completion, and
// quantum-expiry events from an external discrete-event simulator and
// decides which pending job runs on which core next, under one of six
// classical policies.
package sched

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/kurrikov/coresched/internal/priqueue"
)

// NoChange is returned by the dispatcher's event handlers whenever the
// event produces no scheduling change: the core stays idle or keeps
// running what it already had.
const NoChange = -1

// Dispatcher is the single-threaded cooperative scheduling core. It is
// re-entered strictly by the simulator, one event at a time, in
// monotonic-nondecreasing simulator time; the mutex below guards against
// a misbehaving caller invoking the surface concurrently rather than
// against any real contention the design requires.
type Dispatcher struct {
	mu sync.Mutex

	policy  Policy
	slots   []*Job
	pending *priqueue.Queue[*Job]

	completed     int
	waitingSum    int
	turnaroundSum int
	responseSum   int

	log *logrus.Logger
}

// Option configures a Dispatcher at construction time.
type Option func(*Dispatcher)

// WithLogger injects a logger other than the package default, mainly for
// tests that want to assert on log output or silence it.
func WithLogger(log *logrus.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// StartUp allocates cores empty slots and initialises the OPQ with the
// comparator the policy dictates. It must be called exactly once, before
// any event is delivered.
func StartUp(cores int, policy Policy, opts ...Option) (*Dispatcher, error) {
	if cores <= 0 {
		return nil, errors.Errorf("sched: cores must be positive, got %d", cores)
	}

	d := &Dispatcher{
		policy:  policy,
		slots:   make([]*Job, cores),
		pending: priqueue.New(policy.comparator()),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.log.WithFields(logrus.Fields{"cores": cores, "policy": policy}).Debug("sched: started up")
	return d, nil
}

// NewJob handles a job-arrival event: it constructs the job, applies the
// idle-core / preemption / enqueue placement rules in that order, and
// returns the core id it was placed on, or NoChange if it was queued.
func (d *Dispatcher) NewJob(id, now, length, priority int) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	job := newJob(id, now, length, priority)

	if idx := d.placeOnIdleCore(job, now); idx != NoChange {
		return idx
	}

	switch d.policy {
	case PPRI:
		if idx, ok := d.preemptByPriority(job, now); ok {
			return idx
		}
	case PSJF:
		if idx, ok := d.preemptByRemaining(job, now); ok {
			return idx
		}
	}

	d.pending.Offer(job)
	d.log.WithFields(logrus.Fields{
		"decision": DecisionEnqueued,
		"job":      job.ID,
		"time":     now,
	}).Debug("sched: job enqueued")
	return NoChange
}

// placeOnIdleCore scans slots in ascending index and installs job on the
// first empty one, recording its first dispatch. Returns NoChange if no
// slot was idle.
func (d *Dispatcher) placeOnIdleCore(job *Job, now int) int {
	for i, s := range d.slots {
		if s != nil {
			continue
		}
		d.slots[i] = job
		job.FirstDispatch = now
		d.log.WithFields(logrus.Fields{
			"decision": DecisionIdlePlacement,
			"core":     i,
			"job":      job.ID,
			"time":     now,
		}).Debug("sched: job placed on idle core")
		return i
	}
	return NoChange
}

// preemptByPriority implements PPRI preemption: the victim is the
// running job with the numerically largest (lowest-urgency) priority,
// ties broken by the younger (later) arrival; a job placed this very
// tick is immune.
func (d *Dispatcher) preemptByPriority(job *Job, now int) (int, bool) {
	victim := -1
	for i, s := range d.slots {
		if s.Arrival == now {
			continue
		}
		if victim == -1 {
			victim = i
			continue
		}
		if s.Priority > d.slots[victim].Priority ||
			(s.Priority == d.slots[victim].Priority && s.Arrival > d.slots[victim].Arrival) {
			victim = i
		}
	}
	if victim == -1 || d.slots[victim].Priority <= job.Priority {
		return 0, false
	}

	evicted := d.slots[victim]
	if evicted.FirstDispatch == now {
		evicted.FirstDispatch = unscheduled
	}
	d.pending.Offer(evicted)
	d.slots[victim] = job
	job.FirstDispatch = now

	d.log.WithFields(logrus.Fields{
		"decision": DecisionPreempted,
		"core":     victim,
		"job":      job.ID,
		"victim":   evicted.ID,
		"time":     now,
	}).Info("sched: job preempted by priority")
	return victim, true
}

// preemptByRemaining implements PSJF preemption: every non-idle slot not
// placed this tick has its remaining time reconciled against how long it
// has actually run, then the victim is the one with the largest
// remaining time, ties broken by lowest slot index (first-found wins).
func (d *Dispatcher) preemptByRemaining(job *Job, now int) (int, bool) {
	for _, s := range d.slots {
		if s.Arrival == now {
			continue
		}
		s.Remaining -= now - s.LastObserved
		s.LastObserved = now
	}

	victim := -1
	for i, s := range d.slots {
		if s.Arrival == now {
			continue
		}
		if victim == -1 || s.Remaining > d.slots[victim].Remaining {
			victim = i
		}
	}
	if victim == -1 || d.slots[victim].Remaining <= job.Remaining {
		return 0, false
	}

	evicted := d.slots[victim]
	if evicted.FirstDispatch == now {
		evicted.FirstDispatch = unscheduled
	}
	d.pending.Offer(evicted)
	d.slots[victim] = job
	job.FirstDispatch = now

	d.log.WithFields(logrus.Fields{
		"decision": DecisionPreempted,
		"core":     victim,
		"job":      job.ID,
		"victim":   evicted.ID,
		"time":     now,
	}).Info("sched: job preempted by remaining time")
	return victim, true
}

// JobFinished handles a completion event: it accumulates statistics for
// the finishing job, frees its core, and — if the pending queue is
// non-empty — installs the head job on the freed core. Returns the
// installed job's id, or NoChange if the core is left idle.
func (d *Dispatcher) JobFinished(coreID, id, now int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if coreID < 0 || coreID >= len(d.slots) {
		return NoChange, errors.Errorf("sched: job_finished: invalid core id %d", coreID)
	}
	job := d.slots[coreID]
	if job == nil || job.ID != id {
		return NoChange, errors.Errorf("sched: job_finished: core %d does not hold job %d", coreID, id)
	}

	d.waitingSum += now - job.Arrival - job.Length
	d.turnaroundSum += now - job.Arrival
	d.responseSum += job.FirstDispatch - job.Arrival
	d.completed++

	d.slots[coreID] = nil

	next, ok := d.pending.Poll()
	if !ok {
		d.log.WithFields(logrus.Fields{
			"decision": DecisionIdleCore,
			"core":     coreID,
			"time":     now,
		}).Debug("sched: core left idle after completion")
		return NoChange, nil
	}

	next.LastObserved = now
	if next.FirstDispatch == unscheduled {
		next.FirstDispatch = now
	}
	d.slots[coreID] = next

	d.log.WithFields(logrus.Fields{
		"decision": DecisionCompletionDispatch,
		"core":     coreID,
		"job":      next.ID,
		"time":     now,
	}).Debug("sched: job installed after completion")
	return next.ID, nil
}

// QuantumExpired handles a quantum-expiry event, valid only under RR: it
// rotates the running job (if any) to the OPQ tail and installs the head
// of the OPQ on the core. Returns the installed job's id, or NoChange if
// the core is left idle.
func (d *Dispatcher) QuantumExpired(coreID, now int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.policy != RR {
		return NoChange, errors.Errorf("sched: quantum_expired: policy %s does not use quanta", d.policy)
	}
	if coreID < 0 || coreID >= len(d.slots) {
		return NoChange, errors.Errorf("sched: quantum_expired: invalid core id %d", coreID)
	}

	if d.slots[coreID] == nil && d.pending.Size() == 0 {
		return NoChange, nil
	}

	if d.slots[coreID] != nil {
		d.pending.Offer(d.slots[coreID])
		d.slots[coreID] = nil
	}

	next, ok := d.pending.Poll()
	if !ok {
		return NoChange, nil
	}
	if next.FirstDispatch == unscheduled {
		next.FirstDispatch = now
	}
	d.slots[coreID] = next

	d.log.WithFields(logrus.Fields{
		"decision": DecisionQuantumRotation,
		"core":     coreID,
		"job":      next.ID,
		"time":     now,
	}).Debug("sched: quantum rotated")
	return next.ID, nil
}

// AvgWaiting returns the average waiting time across all completed jobs,
// or 0 if none have completed yet.
func (d *Dispatcher) AvgWaiting() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return avg(d.waitingSum, d.completed)
}

// AvgTurnaround returns the average turnaround time across all completed
// jobs, or 0 if none have completed yet.
func (d *Dispatcher) AvgTurnaround() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return avg(d.turnaroundSum, d.completed)
}

// AvgResponse returns the average response time across all completed
// jobs, or 0 if none have completed yet.
func (d *Dispatcher) AvgResponse() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return avg(d.responseSum, d.completed)
}

func avg(sum, completed int) float64 {
	if completed == 0 {
		return 0.0
	}
	return float64(sum) / float64(completed)
}

// ShowQueue logs the current OPQ contents as id(priority) pairs, a
// diagnostic with no semantic effect — it mirrors the original
// simulator's own debug-dump format.
func (d *Dispatcher) ShowQueue() {
	d.mu.Lock()
	defer d.mu.Unlock()

	var sb strings.Builder
	for _, j := range d.pending.Values() {
		fmt.Fprintf(&sb, "%d(%d) ", j.ID, j.Priority)
	}
	d.log.Debug("sched: pending queue: " + sb.String())
}

// Cores returns the number of core slots this dispatcher was started
// with.
func (d *Dispatcher) Cores() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.slots)
}

// CoreJob reports the id of the job currently occupying coreID, if any.
// It is a read-only diagnostic accessor — callers driving the dispatcher
// purely through §6 (new_job/job_finished/quantum_expired) never need
// it, but a harness replaying a trace does, to know when a core it
// thought was running a job has in fact been preempted out from under it.
func (d *Dispatcher) CoreJob(coreID int) (id int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if coreID < 0 || coreID >= len(d.slots) || d.slots[coreID] == nil {
		return 0, false
	}
	return d.slots[coreID].ID, true
}

// CleanUp releases every still-occupied slot's job and the OPQ. After
// CleanUp no operation on this Dispatcher is valid.
func (d *Dispatcher) CleanUp() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.slots {
		d.slots[i] = nil
	}
	d.pending.Destroy()
}
