// Package cpu implements a MOS 6502 instruction interpreter: decode,
// addressing-mode resolution, and instruction execution against a flat
// memory.Bank, paced against a wall-clock reference period via pacer.Pacer.
//
// Unlike a cycle-stepped hardware model, CPU.Step executes one entire
// instruction per call. This core only implements the 151 official
// opcodes; illegal opcodes, BCD-corrected decimal arithmetic, and
// external IRQ/NMI lines are out of scope (BRK is handled as the sole
// software interrupt).
package cpu

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dmackay/mos6502/memory"
	"github.com/dmackay/mos6502/pacer"
)

const (
	resetVector = 0xFFFC
	irqVector   = 0xFFFE // shared by IRQ and BRK; there is no separate BRK vector
	stackBase   = 0x0100
)

// DefaultClockPeriod is the wall-clock duration of one cycle at 2MHz, the
// reference clock speed used when nothing else is configured.
const DefaultClockPeriod = 500 * time.Nanosecond

// CPU holds the 6502 register file and the memory and pacing it executes
// against. The zero value is not usable; construct with New.
type CPU struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16

	mem   memory.Bank
	pacer *pacer.Pacer
}

// New returns a CPU wired to mem, pacing instruction dispatch against
// clockPeriod (the wall-clock duration of one cycle at the target clock
// speed - 0.5us for a 2MHz part). Call PowerOn before Step.
func New(mem memory.Bank, clockPeriod time.Duration) *CPU {
	return &CPU{
		mem:   mem,
		pacer: pacer.New(clockPeriod),
	}
}

// SetClockPeriod reconfigures the reference clock used for pacing.
func (c *CPU) SetClockPeriod(period time.Duration) {
	c.pacer.SetPeriod(period)
}

// PowerOn resets the register file to its documented post-reset state -
// all registers zero, P = 0, SP = 0xFF - and loads PC from the reset
// vector at resetVector, the behavior the source skipped (it left PC at
// zero rather than honoring the vector).
func (c *CPU) PowerOn() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFF
	c.P = 0
	c.PC = c.mem.ReadWordLE(resetVector)
}

// Step executes exactly one instruction: fetch the opcode at PC, decode
// it, resolve its operand, run its semantics, then block the caller until
// the instruction's paced duration has elapsed. It returns an
// UnknownOpcodeError, without advancing past the bad opcode's operand
// bytes, if the opcode byte has no decodeTable entry.
func (c *CPU) Step() error {
	opPC := c.PC
	opcode := c.fetchByte()
	entry := decodeTable[opcode]
	if entry.Mnemonic == mnemonicInvalid {
		return UnknownOpcodeError{Opcode: opcode, PC: opPC}
	}

	ref := c.resolveOperand(entry.Mode)

	cycles := entry.Cycles
	if entry.PageCross && ref.pageCrossed {
		cycles++
	}

	exec, ok := dispatch[entry.Mnemonic]
	if !ok {
		// Every Mnemonic value has a dispatch entry; reaching this means
		// decodeTable references a mnemonic instructions.go never wired up.
		panic(fmt.Sprintf("cpu: no instruction body registered for %s", entry.Mnemonic))
	}
	cycles += exec(c, ref)

	c.pacer.Pace(cycles)
	return nil
}

// Run calls Step in a loop until it returns an error other than
// UnknownOpcodeError, logging and otherwise ignoring unknown opcodes the
// way the original loop did: skip the bad byte and keep running rather
// than crashing the interpreter.
func (c *CPU) Run(debugLog *log.Logger) error {
	for {
		if err := c.Step(); err != nil {
			var unk UnknownOpcodeError
			if errors.As(err, &unk) {
				debugLog.Print(unk.Error())
				continue
			}
			return err
		}
	}
}

func (c *CPU) push(v uint8) {
	c.mem.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | hi<<8
}
