package priqueue

import (
	"reflect"
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestQueueStaysSortedUnderRandomOffers checks the core ordering invariant
// from the dispatcher's point of view: whatever sequence of values arrives,
// the queue is sorted by the comparator at every observation point, the way
// the OPQ must be at every event boundary.
func TestQueueStaysSortedUnderRandomOffers(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("queue is sorted after any sequence of offers", prop.ForAll(
		func(values []int) bool {
			q := New(ascending)
			for _, v := range values {
				q.Offer(v)
			}
			got := q.Values()
			return sort.IntsAreSorted(got) && len(got) == len(values)
		},
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.Property("offer rank equals the reference model's insertion point", prop.ForAll(
		func(values []int) bool {
			q := New(ascending)
			var model []int
			for _, v := range values {
				rank := q.Offer(v)
				wantRank := sort.Search(len(model), func(i int) bool { return model[i] > v })
				model = append(model, 0)
				copy(model[wantRank+1:], model[wantRank:])
				model[wantRank] = v
				if rank != wantRank {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-10, 10)),
	))

	properties.TestingRun(t)
}

// TestFIFOComparatorPreservesInsertionOrder checks that a comparator with
// no genuine ordering (the FCFS/RR case) degenerates to pure FIFO no
// matter what values are offered.
func TestFIFOComparatorPreservesInsertionOrder(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("FIFO comparator never reorders", prop.ForAll(
		func(values []int) bool {
			q := New(fifo)
			for _, v := range values {
				q.Offer(v)
			}
			return equalInts(q.Values(), values)
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.TestingRun(t)
}

// TestOfferPollRoundTripsUnderInterleaving exercises arbitrary interleaving
// of Offer/Poll against a count of live elements and checks the queue's
// size never desynchronises from it.
func TestOfferPollRoundTripsUnderInterleaving(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("size tracks the number of live elements", prop.ForAll(
		func(ops []opSpec) bool {
			q := New(ascending)
			live := 0
			for _, op := range ops {
				switch {
				case op.poll:
					if _, ok := q.Poll(); ok {
						live--
					}
				default:
					q.Offer(op.value)
					live++
				}
				if q.Size() != live {
					return false
				}
			}
			return true
		},
		gen.SliceOf(genOpSpec()),
	))

	properties.TestingRun(t)
}

type opSpec struct {
	poll  bool
	value int
}

func genOpSpec() gopter.Gen {
	combined := gopter.CombineGens(
		gen.Bool(),
		gen.IntRange(-20, 20),
	)
	return combined.FlatMap(func(vs interface{}) gopter.Gen {
		values := vs.([]interface{})
		return gen.Const(opSpec{poll: values[0].(bool), value: values[1].(int)})
	}, reflect.TypeOf(opSpec{}))
}
