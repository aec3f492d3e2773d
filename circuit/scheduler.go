package circuit

import "container/heap"

// event is one scheduled resolution: elem must be Resolve()d no earlier
// than time. seq breaks ties in insertion order (FIFO within equal times),
// grounded on the min-heap shape used by dijkstra.Dijkstra and
// graph.Dijkstra in the teacher pack, extended with an explicit sequence
// number since those heaps only ever need value order.
type event struct {
	time int
	seq  int
	elem Element
}

// eventQueue is a binary min-heap ordered by (time, seq), implementing
// container/heap.Interface.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].time != q[j].time {
		return q[i].time < q[j].time
	}
	return q[i].seq < q[j].seq
}
func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x any)   { *q = append(*q, x.(event)) }
func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// scheduler is the Circuit's event-driven propagation engine: a
// timestamp-ordered priority queue plus a step counter used to detect
// non-convergence (spec.md §4.8, §5, §7 StepLimitExceeded).
type scheduler struct {
	queue    eventQueue
	nextSeq  int
	steps    int
	clock    *eventClock
	stepHook func(step int, elem Element)
}

func newScheduler(clock *eventClock) *scheduler {
	s := &scheduler{queue: make(eventQueue, 0, 16), clock: clock}
	heap.Init(&s.queue)
	return s
}

// enqueue schedules elem for resolution at the given absolute time.
func (s *scheduler) enqueue(elem Element, time int) {
	heap.Push(&s.queue, event{time: time, seq: s.nextSeq, elem: elem})
	s.nextSeq++
}

// run drains the queue, resolving each element in ascending (time, seq)
// order: after each Resolve, every element whose listened bus actually
// changed value (as recorded via the shared eventClock's pending sink) is
// re-enqueued at this event's time plus the delay Resolve just returned.
// run returns the sum of every Resolve's returned delay (summed across the
// whole run, not just the critical path) and fails with
// ErrStepLimitExceeded once more than stepLimit steps have been processed.
func (s *scheduler) run(stepLimit int) (totalDelay int, err error) {
	for s.queue.Len() > 0 {
		ev := heap.Pop(&s.queue).(event)
		s.steps++
		if s.steps > stepLimit {
			return totalDelay, ErrStepLimitExceeded
		}
		if s.stepHook != nil {
			s.stepHook(s.steps, ev.elem)
		}

		s.clock.setTime(ev.time)
		d := ev.elem.Resolve()
		totalDelay += d

		if f, ok := ev.elem.(Faulter); ok {
			if err := f.Fault(); err != nil {
				return totalDelay, err
			}
		}

		for _, e := range s.clock.drain() {
			s.enqueue(e, ev.time+d)
		}
	}
	return totalDelay, nil
}
