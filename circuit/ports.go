package circuit

import "github.com/katalvlaran/wiresim/bitval"

// InputPort is the labeled element a Circuit seeds when a client calls Run.
// It has no inputs and a single output bus; Initialize stages the value
// that the next Resolve will drive onto that bus.
type InputPort struct {
	Base
	pending *bitval.BitValue
}

// NewInputPort constructs a labeled input driving out.
func NewInputPort(label string, out *Bus) *InputPort {
	return &InputPort{Base: NewBase(label, nil, []*Bus{out}, 0)}
}

// Initialize stages value to be driven onto the port's output on the next
// Resolve; Circuit.Run uses it to seed labeled inputs.
func (p *InputPort) Initialize(value bitval.BitValue) {
	v := value
	p.pending = &v
}

// Resolve drives the staged value (if any) onto the output bus.
func (p *InputPort) Resolve() int {
	if p.pending != nil {
		p.Outputs()[0].SetValue(p.pending)
	}
	return p.Delay()
}

// Reset clears the output bus and staged value.
func (p *InputPort) Reset() {
	p.pending = nil
	p.ResetOutputs()
}

// OutputPort is the labeled element a Circuit reads from when a client
// calls Run: a single input bus, no outputs, and a transparent Resolve
// (output ports never transform data, they only report it).
type OutputPort struct {
	Base
}

// NewOutputPort constructs a labeled output observing in.
func NewOutputPort(label string, in *Bus) *OutputPort {
	return &OutputPort{Base: NewBase(label, []*Bus{in}, nil, 0)}
}

// Value returns the current value observed on the port's input bus, or nil.
func (p *OutputPort) Value() *bitval.BitValue { return p.Inputs()[0].Value() }

// Resolve is a no-op: OutputPort has no outputs to drive.
func (p *OutputPort) Resolve() int { return p.Delay() }

// Reset is a no-op: OutputPort owns no output buses.
func (p *OutputPort) Reset() {}
