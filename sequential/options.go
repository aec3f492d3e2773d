package sequential

import (
	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
)

// FlipFlopOption configures an optional port on a flip-flop/register
// constructor, following the same functional-options shape as
// circuit.RunOption.
type FlipFlopOption func(*flipFlopConfig)

type flipFlopConfig struct {
	enable *circuit.Bus
	reset  *circuit.Bus
	preset *bitval.BitValue
}

func newFlipFlopConfig(opts ...FlipFlopOption) *flipFlopConfig {
	cfg := &flipFlopConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithEnable gates edge detection behind a one-bit enable signal: the
// flip-flop only samples on a rising clock edge when enable reads high.
// Without this option the flip-flop is always enabled.
func WithEnable(enable *circuit.Bus) FlipFlopOption {
	return func(c *flipFlopConfig) { c.enable = enable }
}

// WithSyncReset wires a one-bit synchronous reset: whenever it reads high,
// Q is driven to the element's preset value on every resolve (not only on
// edges), overriding normal clocked behavior, per spec.md §4.4.
func WithSyncReset(reset *circuit.Bus) FlipFlopOption {
	return func(c *flipFlopConfig) { c.reset = reset }
}

// WithResetValue sets the value Q is driven to while a synchronous reset is
// asserted (see WithSyncReset). Zero (of Q's width) if not supplied.
// Reset() clears Q to no value; it does not drive this preset.
func WithResetValue(v bitval.BitValue) FlipFlopOption {
	return func(c *flipFlopConfig) { c.preset = &v }
}

func (c *flipFlopConfig) presetOrZero(width int) bitval.BitValue {
	if c.preset != nil {
		return *c.preset
	}
	return bitval.Low(width)
}

func (c *flipFlopConfig) enabled() bool {
	if c.enable == nil {
		return true
	}
	v := c.enable.Value()
	return v != nil && v.ToUnsigned() != 0
}

func (c *flipFlopConfig) resetAsserted() bool {
	if c.reset == nil {
		return false
	}
	v := c.reset.Value()
	return v != nil && v.ToUnsigned() != 0
}

// buses returns the optional control buses actually wired, for inclusion
// in an element's input list.
func (c *flipFlopConfig) buses() []*circuit.Bus {
	var bs []*circuit.Bus
	if c.enable != nil {
		bs = append(bs, c.enable)
	}
	if c.reset != nil {
		bs = append(bs, c.reset)
	}
	return bs
}
