package circuit

import "github.com/katalvlaran/wiresim/bitval"

// Bus (also called Wire in spec.md) carries either no value or a BitValue of
// a fixed width. A Bus belongs to exactly one Circuit, which assigns its id
// and owns its storage; Bus itself holds no lock because the whole engine is
// single-threaded per spec.md §5 — there is never a second goroutine to
// race against.
type Bus struct {
	id          int
	width       int
	value       *bitval.BitValue
	lastUpdate  int // -1 = never updated
	connections []*Bus
	listeners   []Element
	clock       *eventClock
}

// eventClock tracks the scheduler's current scheduled time (spec.md §5:
// "a bus's last_update is the timestamp at which set_value most recently
// changed its value"; that timestamp IS the scheduled time of the event
// doing the changing, not some independent per-write sequence number — two
// elements resolved at the same scheduled time must stamp the same
// last_update for Splitter's equal-timestamp contention check to ever be
// reachable). Shared by every Bus in one Circuit — per-Circuit, not
// global, per spec.md §9 ("Global-ish state"). It doubles as the sink the
// scheduler drains after every Resolve call to learn which listeners were
// newly affected by that element's bus writes.
type eventClock struct {
	currentTime int
	pending     []Element
}

// setTime records the scheduled time of the event about to be resolved;
// called by the scheduler immediately before each Resolve.
func (c *eventClock) setTime(t int) { c.currentTime = t }

// drain removes and returns every element accumulated in pending since the
// last drain.
func (c *eventClock) drain() []Element {
	p := c.pending
	c.pending = nil
	return p
}

// newBus constructs a Bus of the given width sharing clock with every other
// Bus in the same Circuit. Unexported: buses are always created through
// Circuit.NewBus so that ids and timestamps stay scoped to one Circuit.
func newBus(id, width int, clock *eventClock) *Bus {
	return &Bus{id: id, width: width, lastUpdate: -1, clock: clock}
}

// ID returns the Bus's identifier, unique within its owning Circuit.
func (b *Bus) ID() int { return b.id }

// Width returns the Bus's current width.
func (b *Bus) Width() int { return b.width }

// Value returns the Bus's current value, or nil if unset.
func (b *Bus) Value() *bitval.BitValue { return b.value }

// LastUpdate returns the timestamp of the most recent value change, or -1
// if the Bus has never changed value.
func (b *Bus) LastUpdate() int { return b.lastUpdate }

// SetWidth widens the Bus prior to simulation. Loaders call this during the
// pre-simulation width-propagation pass (spec.md §6). Narrowing is always
// rejected; widening is accepted at any time.
//
// Errors: ErrNarrowWidth if w < current width.
func (b *Bus) SetWidth(w int) error {
	if w < b.width {
		return ErrNarrowWidth
	}
	b.width = w
	return nil
}

// Connect links b and other so they share the same logical net: any
// SetValue on one is observable, with the same value and width, on the
// other. Connect is mutual, idempotent, and a no-op when b == other.
func (b *Bus) Connect(other *Bus) {
	if b == other {
		return
	}
	for _, c := range b.connections {
		if c == other {
			return // already connected
		}
	}
	b.connections = append(b.connections, other)
	other.connections = append(other.connections, b)
}

// attach registers e as a listener: whenever the Bus's value changes, e is
// enqueued for resolution. Idempotent.
func (b *Bus) attach(e Element) {
	for _, l := range b.listeners {
		if l == e {
			return
		}
	}
	b.listeners = append(b.listeners, e)
}

// connectedGroup returns every Bus transitively reachable from b via
// Connect, including b itself, using an iterative worklist with a visited
// set (rather than recursion) so that long bus chains never blow the call
// stack — grounded on gridgraph.ConnectedComponents's traversal shape.
func (b *Bus) connectedGroup() []*Bus {
	visited := map[*Bus]bool{b: true}
	queue := []*Bus{b}
	group := make([]*Bus, 0, 1)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		group = append(group, cur)
		for _, nbr := range cur.connections {
			if !visited[nbr] {
				visited[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}
	return group
}

// SetValue writes value to b. If value differs from the Bus's current
// value (nil counts as different from any concrete value), SetValue stamps
// lastUpdate with the scheduled time of the event being resolved (see
// eventClock), propagates the
// same value to every bus in b's connected group (without re-entering this
// SetValue on siblings — they are written directly), and returns the set of
// elements that must be re-resolved. A write of the same value is a no-op
// and returns no elements.
func (b *Bus) SetValue(value *bitval.BitValue) []Element {
	if valuesEqual(b.value, value) {
		return nil
	}
	ts := b.clock.currentTime
	group := b.connectedGroup()
	var affected []Element
	for _, g := range group {
		g.value = value
		g.lastUpdate = ts
		affected = append(affected, g.listeners...)
	}
	b.clock.pending = append(b.clock.pending, affected...)
	return affected
}

// Reset clears the Bus's value and timestamp.
func (b *Bus) Reset() {
	b.value = nil
	b.lastUpdate = -1
}

// valuesEqual reports whether two possibly-nil BitValue pointers represent
// the same observable value.
func valuesEqual(a, b *bitval.BitValue) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(*b)
}
