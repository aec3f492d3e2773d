package bitval

import "fmt"

// sameWidth returns ErrWidthMismatch (wrapped with operand widths) if a and
// b differ in width.
func sameWidth(op string, a, b BitValue) error {
	if len(a.bits) != len(b.bits) {
		return fmt.Errorf("%w: %s(%d, %d)", ErrWidthMismatch, op, len(a.bits), len(b.bits))
	}
	return nil
}

// And returns the bitwise AND of a and b. Both operands must share width.
func (a BitValue) And(b BitValue) (BitValue, error) {
	if err := sameWidth("And", a, b); err != nil {
		return BitValue{}, err
	}
	out := make([]bool, len(a.bits))
	for i := range out {
		out[i] = a.bits[i] && b.bits[i]
	}
	return BitValue{bits: out}, nil
}

// Or returns the bitwise OR of a and b. Both operands must share width.
func (a BitValue) Or(b BitValue) (BitValue, error) {
	if err := sameWidth("Or", a, b); err != nil {
		return BitValue{}, err
	}
	out := make([]bool, len(a.bits))
	for i := range out {
		out[i] = a.bits[i] || b.bits[i]
	}
	return BitValue{bits: out}, nil
}

// Xor returns the bitwise XOR of a and b. Both operands must share width.
func (a BitValue) Xor(b BitValue) (BitValue, error) {
	if err := sameWidth("Xor", a, b); err != nil {
		return BitValue{}, err
	}
	out := make([]bool, len(a.bits))
	for i := range out {
		out[i] = a.bits[i] != b.bits[i]
	}
	return BitValue{bits: out}, nil
}

// Not returns the bitwise complement of the receiver. Width-preserving; it
// never fails.
func (a BitValue) Not() BitValue {
	out := make([]bool, len(a.bits))
	for i := range out {
		out[i] = !a.bits[i]
	}
	return BitValue{bits: out}
}

// Add returns a+b, wrapping at the shared width (2's-complement overflow
// semantics). Both operands must share width; there is no separate carry
// output here — callers needing carry-out use the Adder element's protocol.
func (a BitValue) Add(b BitValue) (BitValue, error) {
	if err := sameWidth("Add", a, b); err != nil {
		return BitValue{}, err
	}
	w := len(a.bits)
	out := make([]bool, w)
	carry := false
	for i := w - 1; i >= 0; i-- {
		sum := a.bits[i] != b.bits[i] != carry
		carry = (a.bits[i] && b.bits[i]) || (a.bits[i] && carry) || (b.bits[i] && carry)
		out[i] = sum
	}
	return BitValue{bits: out}, nil
}

// AddWithCarry returns a+b+cin (cin interpreted as 0/1) at the shared width,
// plus the carry-out bit. Used by the Adder/ALU elements, which must expose
// carry via their own bus protocol rather than through BitValue.Add.
func AddWithCarry(a, b BitValue, cin bool) (sum BitValue, cout bool, err error) {
	if err = sameWidth("AddWithCarry", a, b); err != nil {
		return BitValue{}, false, err
	}
	w := len(a.bits)
	out := make([]bool, w)
	carry := cin
	for i := w - 1; i >= 0; i-- {
		s := a.bits[i] != b.bits[i] != carry
		carry = (a.bits[i] && b.bits[i]) || (a.bits[i] && carry) || (b.bits[i] && carry)
		out[i] = s
	}
	return BitValue{bits: out}, carry, nil
}

// TwosCompliment returns Not().Add(1) at the receiver's width (the name
// preserves the original source's spelling, matching spec.md verbatim).
func (a BitValue) TwosCompliment() BitValue {
	one, _ := Make(1, len(a.bits))
	res, _ := a.Not().Add(one)
	return res
}

// Equals reports whether a and b have equal width and equal bits. Per
// spec.md §4.1, comparing against "no value" is false — callers must guard
// nil *BitValue before calling Equals; Equals itself only ever sees
// concrete values.
func (a BitValue) Equals(b BitValue) bool {
	if len(a.bits) != len(b.bits) {
		return false
	}
	for i := range a.bits {
		if a.bits[i] != b.bits[i] {
			return false
		}
	}
	return true
}

// GreaterThan reports whether a > b as unsigned integers. Both operands
// must share width.
func (a BitValue) GreaterThan(b BitValue) (bool, error) {
	if err := sameWidth("GreaterThan", a, b); err != nil {
		return false, err
	}
	for i := range a.bits {
		if a.bits[i] != b.bits[i] {
			return a.bits[i], nil
		}
	}
	return false, nil
}

// LessThan reports whether a < b as unsigned integers. Both operands must
// share width.
func (a BitValue) LessThan(b BitValue) (bool, error) {
	gt, err := a.GreaterThan(b)
	if err != nil {
		return false, err
	}
	if gt {
		return false, nil
	}
	return !a.Equals(b), nil
}
