package trace

import (
	"sync/atomic"
	"time"
)

// Pacer paces trace replay against the wall clock for a live demo: each
// call to Wait sleeps long enough that simulated time advances no faster
// than realtime/speed. It is the harness's repurposing of the original
// scheduler's tick-emitting clock — there it drove preemption slices on
// a real ticker goroutine; here it just throttles how fast cmd/coretrace
// prints decisions, and nothing in the dispatcher depends on it.
type Pacer struct {
	unitsPerTick time.Duration
	ticks        atomic.Int64
}

// NewPacer builds a Pacer where one simulated time unit advances realtime
// by unitsPerTick/speed. speed <= 0 disables pacing (Wait returns
// immediately).
func NewPacer(unitsPerTick time.Duration, speed float64) *Pacer {
	if speed <= 0 {
		return &Pacer{unitsPerTick: 0}
	}
	return &Pacer{unitsPerTick: time.Duration(float64(unitsPerTick) / speed)}
}

// Wait sleeps for deltaSimTime simulated units' worth of realtime and
// counts the simulated units advanced so far.
func (p *Pacer) Wait(deltaSimTime int) {
	if p.unitsPerTick <= 0 || deltaSimTime <= 0 {
		return
	}
	p.ticks.Add(int64(deltaSimTime))
	time.Sleep(p.unitsPerTick * time.Duration(deltaSimTime))
}

// Ticks reports the total simulated time units paced through so far.
func (p *Pacer) Ticks() int64 {
	return p.ticks.Load()
}
