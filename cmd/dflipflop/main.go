// Command dflipflop demonstrates a D flip-flop's rising-edge sampling and
// synchronous reset/preset behavior.
//
// Scenario: initialize Q=0; set D=1, enable=1; a rising clock edge produces
// Q=1, Qbar=0. Asserting synchronous reset with preset=1 then forces Q=1,
// Qbar=0 regardless of the clock.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/sequential"
)

func main() {
	c := circuit.NewCircuit("dflipflop-demo")

	d := c.NewBus(1)
	clk := c.NewBus(1)
	enable := c.NewBus(1)
	reset := c.NewBus(1)
	q := c.NewBus(1)
	qbar := c.NewBus(1)

	preset := bitval.High(1)
	ff, err := sequential.NewDFlipFlop("dff1", d, clk, q, qbar,
		sequential.WithEnable(enable),
		sequential.WithSyncReset(reset),
		sequential.WithResetValue(preset),
	)
	if err != nil {
		log.Fatalf("new dflipflop: %v", err)
	}

	ff.Initialize(bitval.Low(1))
	fmt.Printf("initialize -> Q=%s Qbar=%s\n", q.Value().String(), qbar.Value().String())

	one := bitval.High(1)
	zero := bitval.Low(1)
	d.SetValue(&one)
	enable.SetValue(&one)

	clk.SetValue(&zero)
	ff.Resolve() // clk low, no edge yet
	clk.SetValue(&one)
	ff.Resolve() // rising edge, samples D
	fmt.Printf("D=1 enable=1, rising edge -> Q=%s Qbar=%s\n", q.Value().String(), qbar.Value().String())

	reset.SetValue(&one)
	clk.SetValue(&zero)
	ff.Resolve()
	fmt.Printf("sync reset asserted (preset=1) -> Q=%s Qbar=%s\n", q.Value().String(), qbar.Value().String())
}
