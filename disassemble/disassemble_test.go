package disassemble

import "testing"

// flatMemory is a minimal memory.Bank test double - see cpu's own test
// double of the same name for the pattern this is copied from.
type flatMemory struct {
	addr [65536]uint8
}

func (m *flatMemory) Read(addr uint16) uint8     { return m.addr[addr] }
func (m *flatMemory) Write(addr uint16, v uint8) { m.addr[addr] = v }
func (m *flatMemory) ReadWordLE(addr uint16) uint16 {
	return uint16(m.Read(addr)) | uint16(m.Read(addr+1))<<8
}
func (m *flatMemory) ReadWordZPWrapped(zp uint8) uint16 {
	return uint16(m.Read(uint16(zp))) | uint16(m.Read(uint16(zp+1)))<<8
}

func TestStep(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []uint8
		wantText string
		wantLen  int
	}{
		{"immediate", []uint8{0xA9, 0x42}, "LDA #$42", 2},
		{"zero page", []uint8{0x85, 0x10}, "STA $10", 2},
		{"absolute", []uint8{0x4C, 0x00, 0x80}, "JMP $8000", 3},
		{"indirect", []uint8{0x6C, 0xFF, 0x02}, "JMP ($02FF)", 3},
		{"implied", []uint8{0xEA}, "NOP", 1},
		{"accumulator", []uint8{0x0A}, "ASL A", 1},
		{"indirect x", []uint8{0xA1, 0x20}, "LDA ($20,X)", 2},
		{"indirect y", []uint8{0xB1, 0x20}, "LDA ($20),Y", 2},
		{"unofficial opcode", []uint8{0x02}, ".byte $02", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mem := &flatMemory{}
			for i, b := range tc.bytes {
				mem.Write(uint16(i), b)
			}
			text, n := Step(0, mem)
			if text != tc.wantText {
				t.Errorf("text = %q, want %q", text, tc.wantText)
			}
			if n != tc.wantLen {
				t.Errorf("length = %d, want %d", n, tc.wantLen)
			}
		})
	}
}

func TestStepRelativeBranchComputesTarget(t *testing.T) {
	mem := &flatMemory{}
	mem.Write(0x0300, 0xF0) // BEQ
	mem.Write(0x0301, 0x05) // +5

	text, n := Step(0x0300, mem)
	if want := "BEQ $0307"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
}
