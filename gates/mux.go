package gates

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// Mux selects one of N equally-wide data inputs using a ⌈log₂N⌉-wide select
// input. An out-of-range select (possible when N is not a power of 2)
// yields a null output.
type Mux struct {
	circuit.Base
	data   []*circuit.Bus
	sel    *circuit.Bus
	out    *circuit.Bus
}

// NewMux constructs a Mux over data (N >= 2 equally-wide buses) and sel
// (width ⌈log₂N⌉), driving out (same width as each data bus).
//
// Errors: ErrArity if len(data) < 2; ErrWidthMismatch if data buses disagree
// in width or out doesn't match; ErrPortCount if sel isn't exactly
// ⌈log₂N⌉ wide.
func NewMux(label string, data []*circuit.Bus, sel, out *circuit.Bus, delay int) (*Mux, error) {
	if len(data) < 2 {
		return nil, ErrArity
	}
	w := data[0].Width()
	for _, d := range data {
		if d.Width() != w {
			return nil, ErrWidthMismatch
		}
	}
	if out.Width() != w {
		return nil, ErrWidthMismatch
	}
	if sel.Width() != ceilLog2(len(data)) {
		return nil, ErrPortCount
	}
	inputs := append(append([]*circuit.Bus{}, data...), sel)
	return &Mux{
		Base: circuit.NewBase(label, inputs, []*circuit.Bus{out}, delay),
		data: data, sel: sel, out: out,
	}, nil
}

// Resolve implements circuit.Element.
func (m *Mux) Resolve() int {
	s := m.sel.Value()
	if s == nil {
		m.ResetOutputs()
		return m.Delay()
	}
	idx := int(s.ToUnsigned())
	if idx < 0 || idx >= len(m.data) {
		m.ResetOutputs()
		return m.Delay()
	}
	v := m.data[idx].Value()
	if v == nil {
		m.ResetOutputs()
		return m.Delay()
	}
	out := *v
	m.out.SetValue(&out)
	return m.Delay()
}

// Reset implements circuit.Element.
func (m *Mux) Reset() { m.ResetOutputs() }

// Demux routes one wide data input to exactly one of N outputs (selected by
// sel); every other output is driven to zero, per spec.md §4.3.
type Demux struct {
	circuit.Base
	data *circuit.Bus
	sel  *circuit.Bus
	outs []*circuit.Bus
}

// NewDemux constructs a Demux over data (width W) and sel (width
// ⌈log₂N⌉), driving N outputs (each width W).
//
// Errors: ErrArity if len(outs) < 2; ErrWidthMismatch if any output
// disagrees with data's width; ErrPortCount if sel isn't ⌈log₂N⌉ wide.
func NewDemux(label string, data, sel *circuit.Bus, outs []*circuit.Bus, delay int) (*Demux, error) {
	if len(outs) < 2 {
		return nil, ErrArity
	}
	for _, o := range outs {
		if o.Width() != data.Width() {
			return nil, ErrWidthMismatch
		}
	}
	if sel.Width() != ceilLog2(len(outs)) {
		return nil, ErrPortCount
	}
	return &Demux{
		Base: circuit.NewBase(label, []*circuit.Bus{data, sel}, outs, delay),
		data: data, sel: sel, outs: outs,
	}, nil
}

// Resolve implements circuit.Element.
func (d *Demux) Resolve() int {
	s := d.sel.Value()
	v := d.data.Value()
	zero := bitval.Low(d.data.Width())
	for i, o := range d.outs {
		if s == nil || v == nil {
			o.Reset()
			continue
		}
		idx := int(s.ToUnsigned())
		if idx == i {
			out := *v
			o.SetValue(&out)
		} else {
			out := zero
			o.SetValue(&out)
		}
	}
	return d.Delay()
}

// Reset implements circuit.Element.
func (d *Demux) Reset() { d.ResetOutputs() }

// Decoder drives exactly one of 2^k one-bit outputs high: output[i] = 1 iff
// the k-bit input equals i as unsigned.
type Decoder struct {
	circuit.Base
	in   *circuit.Bus
	outs []*circuit.Bus
}

// NewDecoder constructs a Decoder over a k-bit in, driving 2^k one-bit
// outs.
//
// Errors: ErrPortCount if len(outs) != 2^in.Width(); ErrWidthMismatch if
// any output isn't 1 bit wide.
func NewDecoder(label string, in *circuit.Bus, outs []*circuit.Bus, delay int) (*Decoder, error) {
	if len(outs) != 1<<uint(in.Width()) {
		return nil, ErrPortCount
	}
	for _, o := range outs {
		if o.Width() != 1 {
			return nil, ErrWidthMismatch
		}
	}
	return &Decoder{Base: circuit.NewBase(label, []*circuit.Bus{in}, outs, delay), in: in, outs: outs}, nil
}

// Resolve implements circuit.Element.
func (d *Decoder) Resolve() int {
	v := d.in.Value()
	if v == nil {
		d.ResetOutputs()
		return d.Delay()
	}
	idx := int(v.ToUnsigned())
	one, _ := bitval.Make(1, 1)
	zero, _ := bitval.Make(0, 1)
	for i, o := range d.outs {
		if i == idx {
			val := one
			o.SetValue(&val)
		} else {
			val := zero
			o.SetValue(&val)
		}
	}
	return d.Delay()
}

// Reset implements circuit.Element.
func (d *Decoder) Reset() { d.ResetOutputs() }

// PriorityEncoder encodes the highest-index asserted one-bit input into a
// k = ⌈log₂N⌉-bit output, gated by enable; outputs null when enable is low.
type PriorityEncoder struct {
	circuit.Base
	data   []*circuit.Bus
	enable *circuit.Bus
	out    *circuit.Bus
}

// NewPriorityEncoder constructs a PriorityEncoder over N one-bit data
// inputs and a one-bit enable, driving a ⌈log₂N⌉-bit out.
//
// Errors: ErrArity if len(data) < 2; ErrWidthMismatch if any data bus isn't
// 1 bit wide; ErrPortCount if out isn't ⌈log₂N⌉ wide.
func NewPriorityEncoder(label string, data []*circuit.Bus, enable, out *circuit.Bus, delay int) (*PriorityEncoder, error) {
	if len(data) < 2 {
		return nil, ErrArity
	}
	for _, d := range data {
		if d.Width() != 1 {
			return nil, ErrWidthMismatch
		}
	}
	if out.Width() != ceilLog2(len(data)) {
		return nil, ErrPortCount
	}
	inputs := append(append([]*circuit.Bus{}, data...), enable)
	return &PriorityEncoder{
		Base: circuit.NewBase(label, inputs, []*circuit.Bus{out}, delay),
		data: data, enable: enable, out: out,
	}, nil
}

// Resolve implements circuit.Element.
func (p *PriorityEncoder) Resolve() int {
	en := p.enable.Value()
	if en == nil || en.ToUnsigned() == 0 {
		p.ResetOutputs()
		return p.Delay()
	}
	highest := -1
	for i, d := range p.data {
		v := d.Value()
		if v != nil && v.ToUnsigned() != 0 {
			highest = i
		}
	}
	if highest < 0 {
		p.ResetOutputs()
		return p.Delay()
	}
	out, _ := bitval.Make(int64(highest), p.out.Width())
	p.out.SetValue(&out)
	return p.Delay()
}

// Reset implements circuit.Element.
func (p *PriorityEncoder) Reset() { p.ResetOutputs() }

// BitSelector picks one bit out of a W-bit input, addressed MSB-first by a
// ⌈log₂W⌉-wide selector (index 0 names the most significant bit), matching
// BitValue's own MSB-first indexing convention throughout this module.
type BitSelector struct {
	circuit.Base
	in  *circuit.Bus
	sel *circuit.Bus
	out *circuit.Bus
}

// NewBitSelector constructs a BitSelector over a W-bit in and a ⌈log₂W⌉-bit
// sel, driving a one-bit out.
//
// Errors: ErrWidthMismatch if out isn't 1 bit wide; ErrPortCount if sel
// isn't ⌈log₂W⌉ wide.
func NewBitSelector(label string, in, sel, out *circuit.Bus, delay int) (*BitSelector, error) {
	if out.Width() != 1 {
		return nil, ErrWidthMismatch
	}
	if sel.Width() != ceilLog2(in.Width()) {
		return nil, ErrPortCount
	}
	return &BitSelector{
		Base: circuit.NewBase(label, []*circuit.Bus{in, sel}, []*circuit.Bus{out}, delay),
		in:   in, sel: sel, out: out,
	}, nil
}

// Resolve implements circuit.Element.
func (b *BitSelector) Resolve() int {
	v := b.in.Value()
	s := b.sel.Value()
	if v == nil || s == nil {
		b.ResetOutputs()
		return b.Delay()
	}
	idx := int(s.ToUnsigned())
	bit, err := v.Bit(idx)
	if err != nil {
		b.ResetOutputs()
		return b.Delay()
	}
	var out bitval.BitValue
	if bit {
		out, _ = bitval.Make(1, 1)
	} else {
		out, _ = bitval.Make(0, 1)
	}
	b.out.SetValue(&out)
	return b.Delay()
}

// Reset implements circuit.Element.
func (b *BitSelector) Reset() { b.ResetOutputs() }
