// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cpu

import (
	"fmt"
	"math/bits"
)

// Op is an instruction opcode.
//
// Instruction words hold the opcode in bits 0-7 and a 24 bits immediate in
// bits 8-31.
type Op uint8

// Opcodes. Unknown opcodes execute as NOP.
const (
	NOP Op = iota
	ADDI
	XORI
	ROLI
	MULI
	JMP
)

var opNames = [...]string{"NOP", "ADDI", "XORI", "ROLI", "MULI", "JMP"}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("OP_%02X", uint8(op))
}

// Encode returns the instruction word for op with immediate imm. imm is
// truncated to 24 bits.
func Encode(op Op, imm uint32) uint32 {
	return uint32(op) | (imm&0xffffff)<<8
}

// Decode splits an instruction word into opcode and immediate.
func Decode(w uint32) (Op, uint32) {
	return Op(w & 0xff), w >> 8
}

// Disasm returns a textual representation of an instruction word.
func Disasm(w uint32) string {
	op, imm := Decode(w)
	if op == NOP || int(op) >= len(opNames) {
		return op.String()
	}
	return fmt.Sprintf("%s %#x", op, imm)
}

// execute returns the accumulator value after executing w.
func execute(w uint32, acc uint64) uint64 {
	op, imm := Decode(w)
	switch op {
	case ADDI:
		return acc + uint64(imm)
	case XORI:
		return acc ^ uint64(imm)
	case ROLI:
		return bits.RotateLeft64(acc, int(imm&63))
	case MULI:
		return acc * uint64(imm)
	}
	return acc
}

// Demo is the program run by a Core when none is configured. It scrambles the
// accumulator in an endless loop.
var Demo = []uint32{
	Encode(ADDI, 0x1234),
	Encode(ROLI, 13),
	Encode(XORI, 0xbeef),
	Encode(MULI, 0x9e37),
	Encode(ADDI, 1),
	Encode(ROLI, 7),
	Encode(JMP, 1),
}
