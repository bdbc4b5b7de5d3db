package sched

import "testing"

func TestParsePolicyIsCaseInsensitive(t *testing.T) {
	for _, name := range []string{"fcfs", "FCFS", " FcFs "} {
		p, err := ParsePolicy(name)
		if err != nil || p != FCFS {
			t.Fatalf("ParsePolicy(%q) = (%v, %v), want (FCFS, nil)", name, p, err)
		}
	}
}

func TestParsePolicyRejectsUnknownNames(t *testing.T) {
	if _, err := ParsePolicy("not-a-policy"); err == nil {
		t.Fatal("expected an error for an unknown policy name")
	}
}

func TestPreemptiveFlagsOnlyPSJFAndPPRI(t *testing.T) {
	cases := map[Policy]bool{
		FCFS: false, SJF: false, PSJF: true, PRI: false, PPRI: true, RR: false,
	}
	for policy, want := range cases {
		if got := policy.preemptive(); got != want {
			t.Errorf("%s.preemptive() = %v, want %v", policy, got, want)
		}
	}
}

func TestFIFOComparatorIsAlwaysPositive(t *testing.T) {
	if fifoAppend(&Job{ID: 1}, &Job{ID: 2}) <= 0 {
		t.Fatal("fifoAppend must always report a as following b")
	}
}

func TestPriorityThenArrivalBreaksTiesByArrival(t *testing.T) {
	a := &Job{Priority: 1, Arrival: 5}
	b := &Job{Priority: 1, Arrival: 3}
	if priorityThenArrival(a, b) <= 0 {
		t.Fatal("equal priority should break ties by earlier arrival")
	}
}
