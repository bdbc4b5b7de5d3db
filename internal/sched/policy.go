package sched

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/kurrikov/coresched/internal/priqueue"
)

// Policy names one of the six classical scheduling disciplines the
// dispatcher can run under.
type Policy int

const (
	FCFS Policy = iota
	SJF
	PSJF
	PRI
	PPRI
	RR
)

func (p Policy) String() string {
	switch p {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case PSJF:
		return "PSJF"
	case PRI:
		return "PRI"
	case PPRI:
		return "PPRI"
	case RR:
		return "RR"
	default:
		return "UNKNOWN"
	}
}

// ParsePolicy parses a policy name case-insensitively.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FCFS":
		return FCFS, nil
	case "SJF":
		return SJF, nil
	case "PSJF":
		return PSJF, nil
	case "PRI":
		return PRI, nil
	case "PPRI":
		return PPRI, nil
	case "RR":
		return RR, nil
	default:
		return FCFS, errors.Errorf("sched: unknown policy %q", name)
	}
}

// preemptive reports whether the policy may evict a running job in favour
// of an arriving one. Only PSJF and PPRI do.
func (p Policy) preemptive() bool {
	return p == PSJF || p == PPRI
}

// comparator returns the OPQ ordering relation for this policy, per the
// policy-to-comparator table: FCFS/RR are pure FIFO, SJF/PSJF order by
// remaining time, PRI/PPRI order by priority then arrival.
func (p Policy) comparator() priqueue.Comparator[*Job] {
	switch p {
	case SJF, PSJF:
		return remainingAscending
	case PRI, PPRI:
		return priorityThenArrival
	default:
		return fifoAppend
	}
}

// fifoAppend always reports "a follows b", which degenerates Offer into
// pure FIFO append. This constant-positive-return trick is intentional:
// it is how the FCFS/RR comparator stays a pure tail-append queue.
func fifoAppend(a, b *Job) int {
	return 1
}

func remainingAscending(a, b *Job) int {
	return a.Remaining - b.Remaining
}

func priorityThenArrival(a, b *Job) int {
	if d := a.Priority - b.Priority; d != 0 {
		return d
	}
	return a.Arrival - b.Arrival
}
