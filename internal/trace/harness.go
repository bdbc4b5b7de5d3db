package trace

import (
	"github.com/kurrikov/coresched/internal/sched"
)

// Result summarises a completed trace replay.
type Result struct {
	AvgWaiting    float64
	AvgTurnaround float64
	AvgResponse   float64
}

// Decision is one logged step of a trace replay, handed to an optional
// Recorder so a caller (the CSV writer, a test) can observe what the
// harness did without reaching into the dispatcher's internals.
type Decision struct {
	Time   int
	Kind   string
	CoreID int
	JobID  int
}

// Recorder observes each Decision as Run produces it. nil is a valid
// Recorder — Run simply skips the callback.
type Recorder func(Decision)

// Run plays file through dispatcher d exactly the way the out-of-scope
// simulator would: by calling the public surface (plus CoreJob, to detect
// a core whose occupant was preempted or rotated away) and deriving
// completion/quantum-expiry events itself, since the dispatcher's
// contract never tells a caller those times up front. pacer and rec may
// both be nil.
func Run(d *sched.Dispatcher, cfg sched.Config, file File, pacer *Pacer, rec Recorder) (Result, error) {
	eq := newEventQueue()
	seq := 0
	for _, a := range file.Arrivals {
		eq.push(event{time: a.Time, kind: eventArrival, arrival: a, seq: seq})
		seq++
	}

	remaining := make(map[int]int)
	coreGen := make(map[int]int)
	occupant := make(map[int]int)
	start := make(map[int]int)
	lastTime := 0

	emit := func(now int, kind string, coreID, jobID int) {
		if pacer != nil {
			pacer.Wait(now - lastTime)
			lastTime = now
		}
		if rec != nil {
			rec(Decision{Time: now, Kind: kind, CoreID: coreID, JobID: jobID})
		}
	}

	accountElapsed := func(coreID, now int) {
		jobID, ok := occupant[coreID]
		if !ok {
			return
		}
		elapsed := now - start[coreID]
		remaining[jobID] -= elapsed
		if remaining[jobID] < 0 {
			remaining[jobID] = 0
		}
	}

	scheduleFollowups := func(coreID, jobID, now int) {
		coreGen[coreID]++
		gen := coreGen[coreID]
		occupant[coreID] = jobID
		start[coreID] = now

		seq++
		eq.push(event{
			time: now + remaining[jobID], kind: eventCompletionAttempt,
			coreID: coreID, jobID: jobID, generation: gen, seq: seq,
		})
		if cfg.ParsePolicy() == sched.RR {
			seq++
			eq.push(event{
				time: now + cfg.Quantum, kind: eventQuantumAttempt,
				coreID: coreID, jobID: jobID, generation: gen, seq: seq,
			})
		}
	}

	for {
		e, ok := eq.pop()
		if !ok {
			break
		}

		switch e.kind {
		case eventArrival:
			a := e.arrival
			remaining[a.ID] = a.Length
			coreID := d.NewJob(a.ID, a.Time, a.Length, a.Priority)
			if coreID == sched.NoChange {
				emit(a.Time, "enqueued", -1, a.ID)
				continue
			}
			if prev, had := occupant[coreID]; had && prev != a.ID {
				accountElapsed(coreID, a.Time)
			}
			scheduleFollowups(coreID, a.ID, a.Time)
			emit(a.Time, "dispatch", coreID, a.ID)

		case eventCompletionAttempt:
			cur, ok := d.CoreJob(e.coreID)
			if !ok || cur != e.jobID || coreGen[e.coreID] != e.generation {
				continue
			}
			delete(occupant, e.coreID)
			next, err := d.JobFinished(e.coreID, e.jobID, e.time)
			if err != nil {
				return Result{}, err
			}
			emit(e.time, "finished", e.coreID, e.jobID)
			if next != sched.NoChange {
				scheduleFollowups(e.coreID, next, e.time)
				emit(e.time, "dispatch", e.coreID, next)
			}

		case eventQuantumAttempt:
			cur, ok := d.CoreJob(e.coreID)
			if !ok || cur != e.jobID || coreGen[e.coreID] != e.generation {
				continue
			}
			accountElapsed(e.coreID, e.time)
			delete(occupant, e.coreID)
			next, err := d.QuantumExpired(e.coreID, e.time)
			if err != nil {
				return Result{}, err
			}
			if next != sched.NoChange {
				scheduleFollowups(e.coreID, next, e.time)
				emit(e.time, "rotate", e.coreID, next)
			}
		}
	}

	return Result{
		AvgWaiting:    d.AvgWaiting(),
		AvgTurnaround: d.AvgTurnaround(),
		AvgResponse:   d.AvgResponse(),
	}, nil
}
