package cpu

import "fmt"

// UnknownOpcodeError is returned by Step when the opcode byte at PC has no
// entry in decodeTable - an unofficial opcode or simply uninitialized ROM
// space the program counter wandered into. Run recovers from it and
// continues at the next byte, matching the source's catch-and-log loop.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("Unexpected opcode 0x%X", e.Opcode)
}
