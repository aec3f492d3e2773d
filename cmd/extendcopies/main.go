// Command extendcopies demonstrates Extend's "make N copies" behavior: a
// single-bit input splatted across every bit of a wider output.
//
// Scenario: in=0 drives out="0000"; in=1 drives out="1111", on a 1-to-4
// Extend.
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/gates"
)

func main() {
	c := circuit.NewCircuit("extend-demo")
	in := c.NewBus(1)
	out := c.NewBus(4)

	ext, err := gates.NewExtend("ext1", in, out, 1)
	if err != nil {
		log.Fatalf("new extend: %v", err)
	}

	zero := bitval.Low(1)
	one := bitval.High(1)

	in.SetValue(&zero)
	ext.Resolve()
	fmt.Printf("in=%s -> out=%s\n", zero.String(), out.Value().String())

	in.SetValue(&one)
	ext.Resolve()
	fmt.Printf("in=%s -> out=%s\n", one.String(), out.Value().String())
}
