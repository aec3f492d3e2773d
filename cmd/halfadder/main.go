// Command halfadder demonstrates the single-bit half-adder end-to-end
// scenario: two 1-bit inputs A, B drive Sum = A⊕B and Carry = A∧B through
// the full Circuit.Run resolve loop, for all four input combinations.
//
// Scenario:
//
//	(A=0,B=0) -> (Sum=0,Carry=0)
//	(A=0,B=1) -> (Sum=1,Carry=0)
//	(A=1,B=0) -> (Sum=1,Carry=0)
//	(A=1,B=1) -> (Sum=0,Carry=1)
package main

import (
	"fmt"
	"log"

	"github.com/katalvlaran/wiresim/bitval"
	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/gates"
)

func main() {
	c := circuit.NewCircuit("half-adder")

	_, a, err := c.AddLabeledInput("a", 1)
	if err != nil {
		log.Fatalf("add input a: %v", err)
	}
	_, b, err := c.AddLabeledInput("b", 1)
	if err != nil {
		log.Fatalf("add input b: %v", err)
	}

	sum := c.NewBus(1)
	carry := c.NewBus(1)

	xor, err := gates.NewXor("xor1", []*circuit.Bus{a, b}, sum, 1)
	if err != nil {
		log.Fatalf("new xor: %v", err)
	}
	if err := c.AddElement(xor); err != nil {
		log.Fatalf("add xor: %v", err)
	}

	and, err := gates.NewAnd("and1", []*circuit.Bus{a, b}, carry, 1)
	if err != nil {
		log.Fatalf("new and: %v", err)
	}
	if err := c.AddElement(and); err != nil {
		log.Fatalf("add and: %v", err)
	}

	if _, err := c.AddLabeledOutput("sum", sum); err != nil {
		log.Fatalf("add output sum: %v", err)
	}
	if _, err := c.AddLabeledOutput("carry", carry); err != nil {
		log.Fatalf("add output carry: %v", err)
	}

	for _, av := range []int64{0, 1} {
		for _, bv := range []int64{0, 1} {
			ab, _ := bitval.Make(av, 1)
			bb, _ := bitval.Make(bv, 1)
			out, _, err := c.Run(map[string]bitval.BitValue{"a": ab, "b": bb})
			if err != nil {
				log.Fatalf("run(a=%d,b=%d): %v", av, bv, err)
			}
			fmt.Printf("A=%d B=%d -> Sum=%s Carry=%s\n", av, bv, out["sum"].String(), out["carry"].String())
		}
	}
}
