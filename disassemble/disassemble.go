// Package disassemble implements a disassembler for the 151 official 6502
// opcodes, built on top of the cpu package's decode table.
package disassemble

import (
	"fmt"

	"github.com/dmackay/mos6502/cpu"
	"github.com/dmackay/mos6502/memory"
)

// Step disassembles the instruction at pc and returns its text form along
// with the number of bytes (including the opcode byte itself) the caller
// should advance to reach the next instruction. Opcodes absent from the
// decode table - unofficial opcodes, or simply data the PC wandered into -
// disassemble as a raw ".byte" directive advancing by one.
// This does not interpret the instruction stream: a JMP target is printed
// as an address, not followed, so embedded data after a JMP will
// disassemble as whatever instructions its bytes happen to spell out.
func Step(pc uint16, mem memory.Bank) (string, int) {
	opcode := mem.Read(pc)
	mnemonic, mode, ok := cpu.Lookup(opcode)
	if !ok {
		return fmt.Sprintf(".byte $%02X", opcode), 1
	}

	return operandText(mnemonic, mode, pc, mem), 1 + mode.OperandBytes()
}

func operandText(mnemonic cpu.Mnemonic, mode cpu.AddrMode, pc uint16, mem memory.Bank) string {
	name := mnemonic.String()
	b1 := mem.Read(pc + 1)
	w := mem.ReadWordLE(pc + 1)

	switch mode {
	case cpu.Implied:
		return name
	case cpu.Accumulator:
		return fmt.Sprintf("%s A", name)
	case cpu.Immediate:
		return fmt.Sprintf("%s #$%02X", name, b1)
	case cpu.ZeroPage:
		return fmt.Sprintf("%s $%02X", name, b1)
	case cpu.ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", name, b1)
	case cpu.ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", name, b1)
	case cpu.Absolute:
		return fmt.Sprintf("%s $%04X", name, w)
	case cpu.AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", name, w)
	case cpu.AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", name, w)
	case cpu.IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", name, b1)
	case cpu.IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", name, b1)
	case cpu.Indirect:
		return fmt.Sprintf("%s ($%04X)", name, w)
	case cpu.Relative:
		target := uint16(int32(pc) + 2 + int32(int8(b1)))
		return fmt.Sprintf("%s $%04X", name, target)
	}
	return name
}
