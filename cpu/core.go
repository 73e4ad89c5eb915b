// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cpu implements a small clocked core on top of the rtl simulator.
//
// The core has a program counter, a single accumulator and a program ROM.
// Every rising clock edge executes the instruction at PC. It is the reference
// fastboy.Device used by the command line tools.
package cpu

import (
	"github.com/db47h/fastboy/rtl"
	rl "github.com/db47h/fastboy/rtl/rtllib"
	"github.com/pkg/errors"
)

// Config configures a Core.
type Config struct {
	// Workers is the number of goroutines updating the circuit. Values below 2
	// run the circuit on the caller's goroutine.
	Workers int
	// Program is loaded in ROM. Demo is used if empty.
	Program []uint32
}

// Core is a clocked core. It implements fastboy.Device.
type Core struct {
	c        *rtl.Circuit
	clk, rst int
	pc, acc  int
	instr    int
}

// New builds a new core.
//
// Callers must call Dispose once the core is no longer needed.
func New(cfg Config) (*Core, error) {
	prog := cfg.Program
	if len(prog) == 0 {
		prog = Demo
	}
	nextPC, err := rtl.Chip("NextPC", []string{"pc", "instr"}, []string{"next"},
		rl.Input(func() uint64 { return 4 })("out=four"),
		rl.Adder("a=pc, b=four, out=inc"),
		rl.Func1("Target", func(w uint64) uint64 { return (w >> 8 & 0xffffff) << 2 })("in=instr, out=target"),
		rl.Func1("IsJump", func(w uint64) uint64 {
			if Op(w&0xff) == JMP {
				return 1
			}
			return 0
		})("in=instr, out=jump"),
		rl.Mux("a=inc, b=target, sel=jump, out=next"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build core")
	}
	c, err := rtl.NewCircuit(cfg.Workers, []string{"clk", "rst"},
		// fetch
		rl.Func1("Fetch", func(pc uint64) uint64 { return pc >> 2 })("in=pc, out=index"),
		rl.ROM(prog)("addr=index, out=instr"),

		// execute
		rl.Func2("ALU", func(w, acc uint64) uint64 { return execute(uint32(w), acc) })("a=instr, b=acc, out=acc_next"),
		rl.Register("clk=clk, rst=rst, in=acc_next, out=acc"),

		// next pc
		nextPC("pc=pc, instr=instr, next=pc_next"),
		rl.Register("clk=clk, rst=rst, in=pc_next, out=pc"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build core")
	}

	core := &Core{c: c}
	for _, w := range []struct {
		name string
		n    *int
	}{
		{"clk", &core.clk},
		{"rst", &core.rst},
		{"pc", &core.pc},
		{"acc", &core.acc},
		{"instr", &core.instr},
	} {
		n, ok := c.Wire(w.name)
		if !ok {
			c.Dispose()
			return nil, errors.Errorf("core has no %s wire", w.name)
		}
		*w.n = n
	}
	c.Settle()
	return core, nil
}

// Dispose releases the resources held by the core.
func (c *Core) Dispose() { c.c.Dispose() }

// SetClock drives the clock pin.
func (c *Core) SetClock(high bool) { c.c.Drive(c.clk, b2u(high)) }

// SetReset drives the reset pin.
func (c *Core) SetReset(asserted bool) { c.c.Drive(c.rst, b2u(asserted)) }

// Eval settles the circuit.
func (c *Core) Eval() { c.c.Settle() }

// PC returns the program counter.
func (c *Core) PC() uint64 { return c.c.Get(c.pc) }

// RegOut returns the accumulator.
func (c *Core) RegOut() uint64 { return c.c.Get(c.acc) }

// DebugInstr returns the instruction word at PC.
func (c *Core) DebugInstr() uint32 { return uint32(c.c.Get(c.instr)) }

// Steps returns the number of simulation steps run so far.
func (c *Core) Steps() uint64 { return c.c.Steps() }

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
