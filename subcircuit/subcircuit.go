package subcircuit

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// Subcircuit wraps an inner *circuit.Circuit as a single Element in an
// outer circuit, mapping its own input/output buses positionally onto the
// inner circuit's labeled inputs/outputs in registration order — the
// hierarchical-instantiation pattern of spec.md §4.7.
//
// Resolve seeds the inner circuit's inputs from the outer input buses,
// drives the inner circuit's own propagation loop to a fixed point, then
// copies the inner outputs onto the outer output buses. Its returned delay
// is the inner resolution's total propagation delay, not a fixed constant —
// a composite element's cost depends on what its contents just did.
type Subcircuit struct {
	circuit.Base
	inner   *circuit.Circuit
	inputs  []*circuit.Bus
	outputs []*circuit.Bus
	fault   error
}

// New wraps inner as a Subcircuit element. len(inputs) and len(outputs)
// must match the inner circuit's labeled input/output counts exactly;
// position i binds to the inner circuit's i-th label in GetInputs/
// GetOutputs registration order.
//
// Errors: ErrPortCount.
func New(label string, inner *circuit.Circuit, inputs, outputs []*circuit.Bus) (*Subcircuit, error) {
	if len(inputs) != len(inner.GetInputs()) {
		return nil, ErrPortCount
	}
	if len(outputs) != len(inner.GetOutputs()) {
		return nil, ErrPortCount
	}
	return &Subcircuit{
		Base:    circuit.NewBase(label, inputs, outputs, 0),
		inner:   inner,
		inputs:  inputs,
		outputs: outputs,
	}, nil
}

// Fault implements circuit.Faulter: surfaces any error the inner circuit's
// run produced, which the outer scheduler then treats as fatal.
func (s *Subcircuit) Fault() error { return s.fault }

// Resolve implements circuit.Element.
func (s *Subcircuit) Resolve() int {
	vals := make([]bitval.BitValue, len(s.inputs))
	for i, b := range s.inputs {
		if v := b.Value(); v != nil {
			vals[i] = *v
		} else {
			vals[i] = bitval.Low(b.Width())
		}
	}

	out, stats, err := s.inner.RunPositional(vals)
	if err != nil {
		s.fault = err
		return stats.PropagationDelay
	}

	for i, b := range s.outputs {
		v := out[i]
		b.SetValue(&v)
	}
	return stats.PropagationDelay
}

// Reset implements circuit.Element: clears the outer output buses and any
// recorded fault. The inner circuit resets itself at the start of every
// RunPositional call, so there is no separate inner state to clear here.
func (s *Subcircuit) Reset() {
	s.fault = nil
	s.ResetOutputs()
}
