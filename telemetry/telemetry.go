// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package telemetry synthesizes the register and performance readouts shown by
// the interactive consoles.
//
// Every value is a pure function of a frame counter and of values captured
// once when a console is entered. Nothing here reads the device.
package telemetry

import (
	"strconv"
	"strings"
)

// Counter is a monotonically increasing frame counter. The zero value is
// ready to use.
type Counter struct {
	n uint64
}

// Next increments the counter and returns the new value.
func (c *Counter) Next() uint64 {
	c.n++
	return c.n
}

// Value returns the current counter value.
func (c *Counter) Value() uint64 { return c.n }

// RiscvSeed holds the device outputs captured when the RISC-V console is
// entered.
type RiscvSeed struct {
	Reg   uint64
	PC    uint64
	Instr uint32
}

// RiscvFrame is the telemetry of one RISC-V console frame.
type RiscvFrame struct {
	Cycle      uint64
	PC         uint64
	X1, X2, X3 uint64
	Instr      uint32
	Type       string
	Load       int
	IPC        string
	ClockMHz   int
	CacheHit   int
}

var riscvTypes = [...]string{"ALU", "LOAD", "STORE", "BRANCH", "IMM", "JUMP", "CSR", "MUL"}

// InstrType returns the RISC-V instruction type label for frame c.
func InstrType(c uint64) string { return riscvTypes[c%uint64(len(riscvTypes))] }

// Riscv derives the RISC-V telemetry of frame c.
func Riscv(seed RiscvSeed, c uint64) RiscvFrame {
	x1 := seed.Reg + c*4
	x2 := (seed.Reg ^ c) & 0xFFFFFFFF
	return RiscvFrame{
		Cycle:    c,
		PC:       seed.PC + (c%16)*4,
		X1:       x1,
		X2:       x2,
		X3:       x1 + x2,
		Instr:    seed.Instr | uint32(c&0xFF),
		Type:     InstrType(c),
		Load:     30 + int(c%40),
		IPC:      "1." + strconv.FormatUint(c%10, 10),
		ClockMHz: 1000 + int(c%500),
		CacheHit: 90 + int(c%10),
	}
}

// X86Regs is the accumulated state of the simulated x86 registers.
type X86Regs struct {
	RIP, RAX, RCX, RDX, RFLAGS uint64
}

// InitialX86 returns the x86 registers at session start.
func InitialX86() X86Regs {
	return X86Regs{
		RIP:    0x400000,
		RAX:    0x1234567890ABCDEF,
		RCX:    0xFEDCBA0987654321,
		RDX:    0xDEADBEEFCAFEBABE,
		RFLAGS: 0x2,
	}
}

// X86Frame is the telemetry of one x86 console frame.
type X86Frame struct {
	Cycle      uint64
	Regs       X86Regs
	Mnemonic   string
	Flags      string
	Load       int
	IPC        string
	ClockMHz   int
	CacheHit   int
	BranchPred int
	TLBHit     int
	TempC      int
}

var x86Mnemonics = [...]string{
	"MOV RAX, RCX", "ADD RAX, 0x10", "CMP RDX, RAX",
	"JNE 0x401000", "PUSH RBP", "POP RBP", "CALL func",
	"RET", "XOR RAX, RAX", "LEA RDX, [RAX+4]",
	"TEST RCX, RCX", "SHR RAX, 2",
}

// Mnemonic returns the x86 instruction shown for frame c.
func Mnemonic(c uint64) string { return x86Mnemonics[c%uint64(len(x86Mnemonics))] }

// X86 derives the x86 telemetry of frame c from the registers of the
// previous frame. Registers accumulate: pass Regs of the returned frame to the
// next call.
func X86(prev X86Regs, c uint64) X86Frame {
	var r X86Regs
	r.RIP = prev.RIP + 4 + c%8
	r.RAX = prev.RAX<<1 ^ c*0x123456
	r.RCX = prev.RCX + c*0xABCDEF
	r.RDX = r.RAX ^ r.RCX
	r.RFLAGS = 0x202 | (c%16)<<4
	return X86Frame{
		Cycle:      c,
		Regs:       r,
		Mnemonic:   Mnemonic(c),
		Flags:      FlagString(r.RFLAGS),
		Load:       45 + int(c%35),
		IPC:        "2." + strconv.FormatUint(c%8, 10),
		ClockMHz:   2400 + int(c%600),
		CacheHit:   94 + int(c%6),
		BranchPred: 88 + int(c%12),
		TLBHit:     96 + int(c%4),
		TempC:      45 + int(c%20),
	}
}

var flagBits = [...]struct {
	mask   uint64
	letter byte
}{
	{0x1, 'C'},
	{0x4, 'P'},
	{0x40, 'Z'},
	{0x80, 'S'},
	{0x800, 'O'},
}

// FlagString returns the letters of the carry, parity, zero, sign and
// overflow flags set in rflags, in that order, or "None".
func FlagString(rflags uint64) string {
	var b strings.Builder
	for _, f := range flagBits {
		if rflags&f.mask != 0 {
			b.WriteByte(f.letter)
		}
	}
	if b.Len() == 0 {
		return "None"
	}
	return b.String()
}

// LoadBar returns a 20 cells gauge for a load percentage, one filled cell
// per 5%.
func LoadBar(percent int) string {
	const cells = 20
	n := percent / 5
	if n < 0 {
		n = 0
	} else if n > cells {
		n = cells
	}
	return strings.Repeat("█", n) + strings.Repeat("░", cells-n)
}
