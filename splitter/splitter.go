package splitter

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// op records which direction a Splitter's last Resolve propagated, per
// spec.md §4.6's prev_op state.
type op int

const (
	opNone op = iota
	opPropIn
	opPropOut
)

// Splitter is bidirectional: it decomposes wide into the N narrow buses,
// or assembles wide from them, depending on which side changed most
// recently. It is simultaneously an input and an output of every incident
// bus, so it listens on all of them (Buses() returns wide plus every
// narrow bus, not just "inputs").
//
// Ordering convention (per spec.md §4.6, preserved exactly): narrow ports
// are stored in reverse of the natural left-to-right slice order — slice 0
// of the wide bus (its most significant split segment) maps to
// narrow[N-1], not narrow[0].
type Splitter struct {
	circuit.Base
	wide   *circuit.Bus
	narrow []*circuit.Bus // narrow[j]; slice i (natural order) lives at narrow[N-1-i]
	split  []int          // split[i], natural left-to-right order, len N

	bitMappings [][]int // optional; bitMappings[i] = LSB-indexed wide bit list for slice i

	prevWide   *bitval.BitValue
	prevNarrow []*bitval.BitValue
	lastOp     op
	fault      error
}

// NewSplitter constructs a contiguous-mode Splitter: wide decomposes into
// len(split) narrow buses (narrow[] supplied in the reversed storage order
// described above), narrow[N-1-i] sized split[i]. sum(split) must equal
// wide's width.
//
// Errors: ErrPortCount if len(narrow) != len(split); ErrSplitWidth if
// sum(split) != wide.Width(); ErrNarrowWidth if any narrow bus's width
// disagrees with its declared split width.
func NewSplitter(label string, wide *circuit.Bus, narrow []*circuit.Bus, split []int, delay int) (*Splitter, error) {
	if len(narrow) != len(split) {
		return nil, ErrPortCount
	}
	n := len(split)
	sum := 0
	for _, w := range split {
		sum += w
	}
	if sum != wide.Width() {
		return nil, ErrSplitWidth
	}
	for i, w := range split {
		if narrow[n-1-i].Width() != w {
			return nil, ErrNarrowWidth
		}
	}
	all := append([]*circuit.Bus{wide}, narrow...)
	return &Splitter{
		Base:   circuit.NewBase(label, all, all, delay),
		wide:   wide, narrow: narrow, split: split,
	}, nil
}

// NewBitMappingSplitter constructs a bit-mapping-mode Splitter: narrow
// slice i (natural order, stored at narrow[N-1-i]) carries the wide bits
// named (LSB-indexed) by bitMappings[i], in the order listed (first entry
// becomes the slice's most significant bit). The same wide bit may appear
// under multiple ports.
//
// Errors: ErrPortCount if len(narrow) != len(bitMappings); ErrNarrowWidth if
// any narrow bus's width disagrees with len(bitMappings[i]).
func NewBitMappingSplitter(label string, wide *circuit.Bus, narrow []*circuit.Bus, bitMappings [][]int, delay int) (*Splitter, error) {
	if len(narrow) != len(bitMappings) {
		return nil, ErrPortCount
	}
	n := len(bitMappings)
	split := make([]int, n)
	for i, m := range bitMappings {
		split[i] = len(m)
		if narrow[n-1-i].Width() != len(m) {
			return nil, ErrNarrowWidth
		}
	}
	all := append([]*circuit.Bus{wide}, narrow...)
	return &Splitter{
		Base:        circuit.NewBase(label, all, all, delay),
		wide:        wide, narrow: narrow, split: split,
		bitMappings: bitMappings,
	}, nil
}

// Buses implements circuit.Element: the Splitter listens on both its wide
// bus and every narrow bus.
func (s *Splitter) Buses() []*circuit.Bus {
	return append([]*circuit.Bus{s.wide}, s.narrow...)
}

// Fault implements circuit.Faulter: non-nil once a SplitterContention has
// been detected, at which point the scheduler aborts the run.
func (s *Splitter) Fault() error { return s.fault }

// GetOutputs mirrors spec.md §4.6's get_outputs(): the wide bus alone when
// the last Resolve propagated narrow→wide, otherwise the narrow array —
// so a caller inspecting "what did this element just produce" sees the
// correct direction. The scheduler itself does not need this (Bus.SetValue
// already notifies every listener regardless of direction); it exists for
// external introspection/display.
func (s *Splitter) GetOutputs() []*circuit.Bus {
	if s.lastOp == opPropIn {
		return []*circuit.Bus{s.wide}
	}
	return append([]*circuit.Bus{}, s.narrow...)
}

func (s *Splitter) narrowValues() []*bitval.BitValue {
	vals := make([]*bitval.BitValue, len(s.narrow))
	for j, b := range s.narrow {
		vals[j] = b.Value()
	}
	return vals
}

func anyNarrowNil(vals []*bitval.BitValue) bool {
	for _, v := range vals {
		if v == nil {
			return true
		}
	}
	return false
}

// Resolve implements circuit.Element, following spec.md §4.6's algorithm
// exactly: infer direction from which side is (a) partially unknown, or
// (b) more recently updated; detect contention when both sides changed at
// the same timestamp and disagree.
func (s *Splitter) Resolve() int {
	wide := s.wide.Value()
	narrowVals := s.narrowValues()

	switch {
	case wide == nil && !anyNarrowNil(narrowVals):
		s.propIn(narrowVals)
	case wide != nil && anyNarrowNil(narrowVals):
		s.propOut(*wide)
	case wide != nil && !anyNarrowNil(narrowVals):
		assembled := s.assemble(narrowVals)
		if assembled != nil && wide.Equals(*assembled) {
			// consistent; nothing to do
		} else {
			tWide := s.wide.LastUpdate()
			tNarrow := minLastUpdate(s.narrow)
			switch {
			case tWide > tNarrow:
				s.propOut(*wide)
			case tNarrow > tWide:
				s.propIn(narrowVals)
			default:
				s.fault = ErrContention
			}
		}
	}

	s.prevWide = wide
	s.prevNarrow = narrowVals
	return s.Delay()
}

// Reset implements circuit.Element: clears both sides and all internal
// state, per spec.md §4.6.
func (s *Splitter) Reset() {
	s.wide.Reset()
	for _, n := range s.narrow {
		n.Reset()
	}
	s.prevWide = nil
	s.prevNarrow = nil
	s.lastOp = opNone
	s.fault = nil
}

func minLastUpdate(buses []*circuit.Bus) int {
	min := -1
	for _, b := range buses {
		u := b.LastUpdate()
		if min == -1 || u < min {
			min = u
		}
	}
	return min
}

// assemble reconstructs the wide value the current narrow values would
// produce, for the consistency check in step 4a. Returns nil if assembly
// fails (e.g. a bit-mapping conflict), which the caller treats as
// "disagreement" and falls through to the timestamp-ordering rule.
func (s *Splitter) assemble(narrowVals []*bitval.BitValue) *bitval.BitValue {
	if s.bitMappings != nil {
		v, err := s.assembleBitMapping(narrowVals)
		if err != nil {
			return nil
		}
		return &v
	}
	v := s.assembleContiguous(narrowVals)
	return &v
}

// assembleContiguous implements propIn's contiguous-mode reconstruction:
// concatenate narrow[N-1], narrow[N-2], ..., narrow[0] to recover the wide
// value in its natural MSB-to-LSB slice order (the reverse-storage
// convention makes this forward concatenation correct — see the type doc
// comment).
func (s *Splitter) assembleContiguous(narrowVals []*bitval.BitValue) bitval.BitValue {
	n := len(narrowVals)
	acc := *narrowVals[n-1]
	for j := n - 2; j >= 0; j-- {
		acc = acc.Concat(*narrowVals[j])
	}
	return acc
}

// assembleBitMapping implements propIn's bit-mapping-mode reconstruction,
// erroring with ErrBitConflict if two narrow ports assert different values
// for the same wide bit.
func (s *Splitter) assembleBitMapping(narrowVals []*bitval.BitValue) (bitval.BitValue, error) {
	w := s.wide.Width()
	bits := make([]bool, w)
	set := make([]bool, w)
	n := len(s.bitMappings)
	for i, mapping := range s.bitMappings {
		nv := narrowVals[n-1-i]
		for k, lsbIdx := range mapping {
			msbIdx := w - 1 - lsbIdx
			bit, err := nv.Bit(k)
			if err != nil {
				return bitval.BitValue{}, err
			}
			if set[msbIdx] && bits[msbIdx] != bit {
				return bitval.BitValue{}, ErrBitConflict
			}
			bits[msbIdx] = bit
			set[msbIdx] = true
		}
	}
	out, _ := bitval.FromBinary(boolsToBinaryString(bits))
	return out, nil
}

func boolsToBinaryString(bits []bool) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		if b {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// propOut splits wide into the narrow buses, contiguous or bit-mapping
// mode depending on construction.
func (s *Splitter) propOut(wide bitval.BitValue) {
	s.lastOp = opPropOut
	if s.bitMappings != nil {
		s.propOutBitMapping(wide)
		return
	}
	s.propOutContiguous(wide)
}

// propOutContiguous implements the contiguous-mode split: walking the wide
// value MSB-first, natural slice i (split[i] bits at offset
// sum(split[:i])) is written to narrow[N-1-i], so the most significant
// slice lands in narrow[N-1] and the least significant in narrow[0] — the
// inverse of assembleContiguous.
func (s *Splitter) propOutContiguous(wide bitval.BitValue) {
	n := len(s.split)
	offset := 0
	for i := 0; i < n; i++ {
		w := s.split[i]
		slice, err := wide.BitSlice(offset, offset+w)
		if err == nil {
			s.narrow[n-1-i].SetValue(&slice)
		}
		offset += w
	}
}

func (s *Splitter) propOutBitMapping(wide bitval.BitValue) {
	w := wide.Width()
	n := len(s.bitMappings)
	for i, mapping := range s.bitMappings {
		bits := make([]bool, len(mapping))
		for k, lsbIdx := range mapping {
			bit, err := wide.Bit(w - 1 - lsbIdx)
			if err != nil {
				continue
			}
			bits[k] = bit
		}
		slice, _ := bitval.FromBinary(boolsToBinaryString(bits))
		s.narrow[n-1-i].SetValue(&slice)
	}
}

// propIn merges the narrow buses into wide, contiguous or bit-mapping mode.
func (s *Splitter) propIn(narrowVals []*bitval.BitValue) {
	s.lastOp = opPropIn
	if s.bitMappings != nil {
		v, err := s.assembleBitMapping(narrowVals)
		if err != nil {
			s.fault = err
			return
		}
		s.wide.SetValue(&v)
		return
	}
	v := s.assembleContiguous(narrowVals)
	s.wide.SetValue(&v)
}
