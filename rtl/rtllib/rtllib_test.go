// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtllib_test

import (
	"testing"

	"github.com/db47h/fastboy/rtl"
	rl "github.com/db47h/fastboy/rtl/rtllib"
	"github.com/db47h/fastboy/rtl/rtltest"
)

func TestAdder(t *testing.T) {
	ref := rl.Func2("Adder", func(a, b uint64) uint64 { return a + b })
	rtltest.ComparePart(t, 256, rl.Adder, ref)
}

func TestMux(t *testing.T) {
	ref := (&rtl.PartSpec{
		Name:    "MuxByHand",
		Inputs:  []string{"a", "b", "sel"},
		Outputs: []string{"out"},
		Mount: func(s *rtl.Socket) []rtl.Component {
			a, b, sel, out := s.Pin("a"), s.Pin("b"), s.Pin("sel"), s.Pin("out")
			return []rtl.Component{func(c *rtl.Circuit) {
				// any non-zero sel selects b
				m := uint64(0)
				if c.Get(sel) != 0 {
					m = ^m
				}
				c.Set(out, c.Get(a)&^m|c.Get(b)&m)
			}}
		}}).NewPart
	rtltest.ComparePart(t, 256, rl.Mux, ref)
}

func TestROM(t *testing.T) {
	words := []uint32{0xdeadbeef, 1, 2, 3}
	var addr, out uint64
	c, err := rtl.NewCircuit(0, nil,
		rl.Input(func() uint64 { return addr })("out=addr"),
		rl.ROM(words)("addr=addr, out=data"),
		rl.Output(func(v uint64) { out = v })("in=data"),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()

	// ROM keeps its own copy
	words[0] = 0

	for a, exp := range []uint64{0xdeadbeef, 1, 2, 3, 0xdeadbeef, 1} {
		addr = uint64(a)
		c.Settle()
		c.Step()
		if out != exp {
			t.Errorf("ROM[%d]: expected %#x, got %#x", a, exp, out)
		}
	}
}

func TestROM_empty(t *testing.T) {
	c, err := rtl.NewCircuit(0, []string{"addr"}, rl.ROM(nil)("addr=addr, out=data"))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Dispose()
	c.Settle()
	if n, _ := c.Wire("data"); c.Get(n) != 0 {
		t.Fatalf("empty ROM: expected 0, got %#x", c.Get(n))
	}
}
