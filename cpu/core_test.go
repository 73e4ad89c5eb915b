// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cpu

import (
	"testing"
	"testing/quick"

	"github.com/db47h/fastboy"
)

// model is a plain Go reference of the core.
func model(prog []uint32, cycles int) (pc, acc uint64, instr uint32) {
	for i := 0; i < cycles; i++ {
		w := prog[(pc>>2)%uint64(len(prog))]
		acc = execute(w, acc)
		if op, imm := Decode(w); op == JMP {
			pc = uint64(imm) << 2
		} else {
			pc += 4
		}
	}
	return pc, acc, prog[(pc>>2)%uint64(len(prog))]
}

func newCore(t testing.TB, cfg Config) *Core {
	t.Helper()
	c, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	fastboy.Reset(c)
	return c
}

func TestCore_reset(t *testing.T) {
	c := newCore(t, Config{})
	defer c.Dispose()

	fastboy.Pulse(c, 17)
	fastboy.Reset(c)
	if c.PC() != 0 || c.RegOut() != 0 {
		t.Fatalf("after reset: PC=%#x, RegOut=%#x", c.PC(), c.RegOut())
	}
	if c.DebugInstr() != Demo[0] {
		t.Fatalf("after reset: expected instruction %#x, got %#x", Demo[0], c.DebugInstr())
	}
}

func TestCore_model(t *testing.T) {
	c := newCore(t, Config{})
	defer c.Dispose()

	total := 0
	for _, n := range []int{1, 1, 5, 6, 40, 1000} {
		fastboy.Pulse(c, n)
		total += n
		pc, acc, instr := model(Demo, total)
		if c.PC() != pc || c.RegOut() != acc || c.DebugInstr() != instr {
			t.Fatalf("after %d cycles: expected pc=%#x acc=%#x instr=%#x, got pc=%#x acc=%#x instr=%#x",
				total, pc, acc, instr, c.PC(), c.RegOut(), c.DebugInstr())
		}
	}
}

func TestCore_program(t *testing.T) {
	prog := []uint32{
		Encode(ADDI, 3),
		Encode(MULI, 5),
		Encode(NOP, 0),
		Encode(0x7f, 0x123), // unknown, runs as NOP
		Encode(JMP, 0),
	}
	f := func(n uint8) bool {
		c := newCore(t, Config{Program: prog})
		defer c.Dispose()
		fastboy.Pulse(c, int(n))
		pc, acc, instr := model(prog, int(n))
		return c.PC() == pc && c.RegOut() == acc && c.DebugInstr() == instr
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestCore_workers(t *testing.T) {
	a := newCore(t, Config{})
	defer a.Dispose()
	b := newCore(t, Config{Workers: 3})
	defer b.Dispose()

	for i := 0; i < 50; i++ {
		fastboy.Pulse(a, 3)
		fastboy.Pulse(b, 3)
		if a.PC() != b.PC() || a.RegOut() != b.RegOut() || a.DebugInstr() != b.DebugInstr() {
			t.Fatalf("cycle %d: inline and worker cores diverge", i*3)
		}
	}
	if a.Steps() != b.Steps() {
		t.Fatalf("step counts differ: %d != %d", a.Steps(), b.Steps())
	}
}

func TestDisasm(t *testing.T) {
	td := []struct {
		w uint32
		s string
	}{
		{Encode(NOP, 0), "NOP"},
		{Encode(ADDI, 0x1234), "ADDI 0x1234"},
		{Encode(JMP, 1), "JMP 0x1"},
		{Encode(ROLI, 0x1ffffff), "ROLI 0xffffff"},
		{0x42, "OP_42"},
	}
	for _, d := range td {
		if s := Disasm(d.w); s != d.s {
			t.Errorf("Disasm(%#x): expected %q, got %q", d.w, d.s, s)
		}
	}
}

func BenchmarkCore(b *testing.B) {
	c := newCore(b, Config{})
	defer c.Dispose()
	b.ResetTimer()
	fastboy.Pulse(c, b.N)
}

func BenchmarkRunBenchmark(b *testing.B) {
	c := newCore(b, Config{})
	defer c.Dispose()
	b.ResetTimer()
	r := fastboy.RunBenchmark(c, b.N)
	b.ReportMetric(r.MHz, "MHz")
}
