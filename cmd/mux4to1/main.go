// Command mux4to1 demonstrates a 4-to-1 multiplexer: four 1-bit data lines
// and a 2-bit select line, output = data[select].
//
// Scenario: data = [1,0,1,1], select = "10" (binary, decimal 2) ->
// output = data[2] = 1.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/gates"
)

func main() {
	c := circuit.NewCircuit("mux-4to1")

	data := make([]*circuit.Bus, 4)
	for i := range data {
		data[i] = c.NewBus(1)
	}
	sel := c.NewBus(2)
	out := c.NewBus(1)

	mux, err := gates.NewMux("mux1", data, sel, out, 1)
	if err != nil {
		log.Fatalf("new mux: %v", err)
	}
	if err := c.AddElement(mux); err != nil {
		log.Fatalf("add mux: %v", err)
	}

	values := []int64{1, 0, 1, 1}
	for i, v := range values {
		bv, _ := bitval.Make(v, 1)
		data[i].SetValue(&bv)
	}
	selVal, _ := bitval.FromBinary("10")
	sel.SetValue(&selVal)

	mux.Resolve()

	fmt.Printf("data=%v select=%s -> output=%s\n", values, selVal.String(), out.Value().String())
}
