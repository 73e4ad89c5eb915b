// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtltest provides utility functions for testing parts.
package rtltest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/fastboy/rtl"
	"github.com/db47h/fastboy/rtl/rtllib"
)

func connString(pins []string, prefix string) string {
	var b strings.Builder
	for _, n := range pins {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(prefix)
		b.WriteString(n)
	}
	return b.String()
}

// ComparePart takes two combinational parts and compares their outputs given
// the same random inputs over iter rounds. Both parts must have the same
// Input/Output interface.
func ComparePart(t *testing.T, iter int, part1, part2 rtl.NewPartFn) {
	t.Helper()

	ps1, ps2 := part1("").PartSpec, part2("").PartSpec
	if len(ps1.Inputs) != len(ps2.Inputs) {
		t.Fatal("len(ps1.Inputs) != len(ps2.Inputs)")
	}
	if len(ps1.Outputs) != len(ps2.Outputs) {
		t.Fatal("len(ps1.Outputs) != len(ps2.Outputs)")
	}
	for i := range ps1.Inputs {
		if ps1.Inputs[i] != ps2.Inputs[i] {
			t.Fatalf("ps1.Inputs[i] = %q != ps2.Inputs[i] = %q", ps1.Inputs[i], ps2.Inputs[i])
		}
	}
	for i := range ps1.Outputs {
		if ps1.Outputs[i] != ps2.Outputs[i] {
			t.Fatalf("ps1.Outputs[i] = %q != ps2.Outputs[i] = %q", ps1.Outputs[i], ps2.Outputs[i])
		}
	}

	inputs := make([]uint64, len(ps1.Inputs))
	outputs := make([][2]uint64, len(ps1.Outputs))

	in := connString(ps1.Inputs, "")
	parts := rtl.Parts{
		part1(join(in, connString(ps1.Outputs, "p1_"))),
		part2(join(in, connString(ps2.Outputs, "p2_"))),
	}
	for i, n := range ps1.Inputs {
		k := i
		parts = append(parts, rtllib.Input(func() uint64 { return inputs[k] })("out="+n))
	}
	for i, n := range ps1.Outputs {
		k := i
		parts = append(parts,
			rtllib.Output(func(v uint64) { outputs[k][0] = v })("in=p1_"+n),
			rtllib.Output(func(v uint64) { outputs[k][1] = v })("in=p2_"+n))
	}

	c, err := rtl.NewCircuit(0, nil, parts...)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	errString := func(oname string, p1, p2 uint64) string {
		var b strings.Builder
		for i, n := range ps1.Inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%#x", n, inputs[i])
		}
		return fmt.Sprintf("\n%s => %s: %s=%#x, %s=%#x", b.String(), oname, ps1.Name, p1, ps2.Name, p2)
	}

	for i := 0; i < iter; i++ {
		for in := range inputs {
			inputs[in] = rand.Uint64()
		}
		c.Settle()
		// one more step so that probes sample the settled wires.
		c.Step()
		for o, out := range outputs {
			if out[0] != out[1] {
				t.Fatal(errString(ps1.Outputs[o], out[0], out[1]))
			}
		}
	}
}

func join(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + "," + b
}
