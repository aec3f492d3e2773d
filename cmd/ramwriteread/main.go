// Command ramwriteread demonstrates a 4x2-bit RAM's write-then-read cycle
// and its reset behavior.
//
// Scenario: write "11" to address 01 with CS=0, WE=0; then set WE=1, OE=0,
// CS=0 and read back "11" from address 01. A subsequent Reset drives the
// output to "00" and clears all storage.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/memory"
)

func main() {
	c := circuit.NewCircuit("ram-demo")

	addr := c.NewBus(2)
	dataIn := c.NewBus(2)
	cs := c.NewBus(1)
	oe := c.NewBus(1)
	we := c.NewBus(1)
	dataOut := c.NewBus(2)

	ram, err := memory.NewRAM("ram1", 4, 2, addr, dataIn, cs, oe, we, dataOut, 1)
	if err != nil {
		log.Fatalf("new ram: %v", err)
	}

	zero := bitval.Low(1)
	one := bitval.High(1)
	addr01, _ := bitval.FromBinary("01")
	data11, _ := bitval.FromBinary("11")

	addr.SetValue(&addr01)
	dataIn.SetValue(&data11)
	cs.SetValue(&zero)
	we.SetValue(&zero)
	oe.SetValue(&one)
	ram.Resolve()
	fmt.Printf("write %s to addr %s (CS=0,WE=0) -> output unset (OE high, so no read)\n",
		data11.String(), addr01.String())

	we.SetValue(&one)
	oe.SetValue(&zero)
	ram.Resolve()
	fmt.Printf("read back (CS=0,OE=0,WE=1) -> output=%s\n", dataOut.Value().String())

	ram.Reset()
	fmt.Printf("after Reset -> output=%s\n", dataOut.Value().String())
}
