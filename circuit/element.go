package circuit

import "github.com/katalvlaran/wiresim/bitval"

// Element is the contract every node in a Circuit satisfies: gates,
// flip-flops, memories, splitters, subcircuits, and I/O ports alike. Go
// idiom favors one concrete type per element kind implementing this
// interface over a tagged-variant/discriminant encoding (see DESIGN.md for
// the Open Question resolution); dispatch happens through ordinary
// interface method calls, not a switch on a kind field.
type Element interface {
	// Label returns the element's name, or "" if unlabeled.
	Label() string

	// Delay returns the element's nonnegative propagation delay, known
	// without invoking Resolve — used by the Circuit to seed the initial
	// event queue (spec.md §4.8 step 3).
	Delay() int

	// Buses returns every Bus this element must be re-resolved on a change
	// of. For most elements this is simply its inputs; a Splitter listens
	// on every incident bus (both the wide side and every narrow side)
	// since it is simultaneously an input and an output of each.
	Buses() []*Bus

	// Resolve recomputes the element's outputs from its current inputs and
	// returns the propagation delay incurred by this call (normally equal
	// to Delay(), except for composite elements like Subcircuit whose cost
	// depends on what they just did).
	Resolve() int

	// Reset clears the element's internal state and every bus it owns as
	// an output.
	Reset()
}

// Faulter is implemented by elements that can detect a runtime condition
// the spec treats as fatal but that cannot be ruled out at construction
// time (spec.md §7's SplitterContention is the only such case: two sides
// of a Splitter disagreeing at equal timestamps). The scheduler checks
// Fault() after every Resolve call and aborts the run with it if non-nil,
// mirroring how ErrStepLimitExceeded is detected outside of any single
// element's Resolve return value.
type Faulter interface {
	Element
	Fault() error
}

// Base is the common envelope embedded by every concrete Element: label,
// input/output bus lists, and a fixed propagation delay. It implements
// Label/Delay/Buses so concrete types only need to implement Resolve and
// Reset (and, where useful, their own typed Inputs()/Outputs() accessors).
type Base struct {
	label  string
	inputs []*Bus
	output []*Bus
	delay  int
}

// NewBase constructs the shared envelope for a concrete Element.
func NewBase(label string, inputs, outputs []*Bus, delay int) Base {
	return Base{label: label, inputs: inputs, output: outputs, delay: delay}
}

// Label implements Element.
func (b Base) Label() string { return b.label }

// Delay implements Element.
func (b Base) Delay() int { return b.delay }

// Inputs returns the element's ordered input buses.
func (b Base) Inputs() []*Bus { return b.inputs }

// Outputs returns the element's ordered output buses.
func (b Base) Outputs() []*Bus { return b.output }

// Buses implements Element for the common case: listen only on inputs.
// Elements that must also listen on outputs (the Splitter) override this.
func (b Base) Buses() []*Bus { return b.inputs }

// ResetOutputs sets every owned output bus to nil/-1, the common Reset body
// for purely combinational elements with no other internal state.
func (b Base) ResetOutputs() {
	for _, o := range b.output {
		o.Reset()
	}
}

// inputValues reads every input bus's current value, in order.
func (b Base) inputValues() []*bitval.BitValue {
	vals := make([]*bitval.BitValue, len(b.inputs))
	for i, in := range b.inputs {
		vals[i] = in.Value()
	}
	return vals
}

// anyNil reports whether any value in vals is nil.
func anyNil(vals []*bitval.BitValue) bool {
	for _, v := range vals {
		if v == nil {
			return true
		}
	}
	return false
}
