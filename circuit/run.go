package circuit

import (
	"fmt"

	"github.com/katalvlaran/wiresim/bitval"
)

// HaltPredicate decides, after each half clock toggle, whether a clocked
// Run should stop. clockHigh is the state the clock was just driven to;
// cycles counts completed full low→high→low cycles. A missing predicate on
// a Circuit that contains a clock is an error (the loop would never
// terminate), per spec.md §4.8.
type HaltPredicate func(clockHigh bool, cycles int) bool

// RunOption configures one call to Circuit.Run/RunPositional, following the
// functional-options idiom used throughout the teacher pack
// (core.GraphOption, builder.BuilderOption).
type RunOption func(*runConfig)

type runConfig struct {
	stepLimit int
	halt      HaltPredicate
	stepHook  func(step int, elem Element)
}

func newRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{stepLimit: DefaultStepLimit}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithStepLimit overrides the default 1,000,000-step scheduler ceiling.
func WithStepLimit(n int) RunOption {
	return func(c *runConfig) { c.stepLimit = n }
}

// WithHaltPredicate supplies the predicate a clocked Circuit's outer loop
// evaluates after every half clock toggle. Required whenever the Circuit
// contains a clock element.
func WithHaltPredicate(h HaltPredicate) RunOption {
	return func(c *runConfig) { c.halt = h }
}

// WithStepHook installs a callback invoked once per scheduler step, before
// that step's Resolve call — useful for tracing/logging without coupling
// the circuit package to any particular logging backend.
func WithStepHook(fn func(step int, elem Element)) RunOption {
	return func(c *runConfig) { c.stepHook = fn }
}

// RunStats summarizes one Run/RunPositional call.
type RunStats struct {
	// Steps is the number of scheduler steps (Resolve calls) performed.
	Steps int
	// PropagationDelay is the sum of every Resolve's returned delay.
	PropagationDelay int
	// Cycles is the number of completed clock cycles (0 for unclocked
	// circuits).
	Cycles int
}

// Run seeds the labeled inputs named in inputs, resolves the Circuit to a
// fixed point, and returns the values of every labeled output. If the
// Circuit contains a clock element, Run drives a clocked outer loop,
// requiring WithHaltPredicate among opts.
//
// Errors: ErrBadInput if a key in inputs does not name a labeled input;
// ErrHaltPredicateRequired if the Circuit has a clock but no halt predicate
// was supplied; ErrStepLimitExceeded if the scheduler never stabilizes.
func (c *Circuit) Run(inputs map[string]bitval.BitValue, opts ...RunOption) (map[string]bitval.BitValue, RunStats, error) {
	for label := range inputs {
		if _, ok := c.inputs[label]; !ok {
			err := fmt.Errorf("%w: %q", ErrBadInput, label)
			c.logger.Fatalf("run failed: %v", err)
			return nil, RunStats{}, err
		}
	}
	stats, err := c.run(inputs, opts...)
	if err != nil {
		c.logger.Fatalf("run failed: %v", err)
		return nil, stats, err
	}
	out := make(map[string]bitval.BitValue, len(c.outputs))
	for label, port := range c.outputs {
		if v := port.Value(); v != nil {
			out[label] = *v
		}
	}
	return out, stats, nil
}

// RunPositional is Run's positional-argument form: inputs[i] seeds the i-th
// labeled input in registration order (as returned by GetInputs), and the
// result is ordered the same way by GetOutputs.
//
// Errors: ErrBadInput if len(inputs) does not match the number of labeled
// inputs, plus every error Run can return.
func (c *Circuit) RunPositional(inputs []bitval.BitValue, opts ...RunOption) ([]bitval.BitValue, RunStats, error) {
	if len(inputs) != len(c.inputOrder) {
		err := fmt.Errorf("%w: expected %d positional inputs, got %d", ErrBadInput, len(c.inputOrder), len(inputs))
		c.logger.Fatalf("run failed: %v", err)
		return nil, RunStats{}, err
	}
	named := make(map[string]bitval.BitValue, len(inputs))
	for i, label := range c.inputOrder {
		named[label] = inputs[i]
	}
	stats, err := c.run(named, opts...)
	if err != nil {
		c.logger.Fatalf("run failed: %v", err)
		return nil, stats, err
	}
	out := make([]bitval.BitValue, len(c.outputOrder))
	for i, label := range c.outputOrder {
		if v := c.outputs[label].Value(); v != nil {
			out[i] = *v
		}
	}
	return out, stats, nil
}

// run implements the resolve loop of spec.md §4.8, plus the clocked outer
// loop when the Circuit contains a clock.
func (c *Circuit) run(inputs map[string]bitval.BitValue, opts ...RunOption) (RunStats, error) {
	cfg := newRunConfig(opts...)

	// Step 1: reset every element (clears internal state and owned buses).
	for _, e := range c.elements {
		e.Reset()
	}

	sched := newScheduler(c.clock)
	sched.stepHook = cfg.stepHook

	// Step 2: initialize each named input and enqueue its port.
	for label, val := range inputs {
		port := c.inputs[label]
		port.Initialize(val)
		sched.enqueue(port, 0)
	}

	// Step 3: enqueue every other non-output element with its propagation
	// delay (pure outputs never need resolving to produce a value).
	for _, e := range c.elements {
		if _, isInput := e.(*InputPort); isInput {
			continue
		}
		if _, isOutput := e.(*OutputPort); isOutput {
			continue
		}
		sched.enqueue(e, e.Delay())
	}

	stats := RunStats{}
	delay, err := sched.run(cfg.stepLimit)
	stats.Steps += sched.steps
	stats.PropagationDelay += delay
	if err != nil {
		return stats, err
	}

	if !c.HasClock() {
		return stats, nil
	}

	if cfg.halt == nil {
		return stats, ErrHaltPredicateRequired
	}
	return c.runClocked(sched, cfg, stats)
}

// runClocked drives the outer clocked-run loop: toggle every clock element
// high, settle, evaluate the halt predicate, toggle low, settle, evaluate
// again, counting one completed cycle per low→high→low round trip.
func (c *Circuit) runClocked(sched *scheduler, cfg *runConfig, stats RunStats) (RunStats, error) {
	for {
		if done, err := c.toggleAndSettle(true, sched, cfg, &stats); err != nil || done {
			return stats, err
		}
		if done, err := c.toggleAndSettle(false, sched, cfg, &stats); err != nil || done {
			return stats, err
		}
		stats.Cycles++
	}
}

func (c *Circuit) toggleAndSettle(high bool, sched *scheduler, cfg *runConfig, stats *RunStats) (done bool, err error) {
	for _, clk := range c.clockElems {
		clk.SetClockState(high)
		sched.enqueue(clk, 0)
	}
	delay, err := sched.run(cfg.stepLimit)
	stats.Steps = sched.steps
	stats.PropagationDelay += delay
	if err != nil {
		return false, err
	}
	return cfg.halt(high, stats.Cycles), nil
}
