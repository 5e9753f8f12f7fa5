package cpu

// dispatch maps each Mnemonic to the function implementing its semantics.
// The function receives the already-resolved operand and returns any
// cycle count beyond decodeTable's base entry (branches only; every other
// instruction's timing is fully described by the table).
var dispatch = map[Mnemonic]func(c *CPU, ref OperandRef) int{
	ADC: execADC,
	AND: func(c *CPU, ref OperandRef) int { c.A &= ref.Load(c); c.setZN(c.A); return 0 },
	ASL: execASL,
	BCC: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, !c.flag(FlagCarry)) },
	BCS: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, c.flag(FlagCarry)) },
	BEQ: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, c.flag(FlagZero)) },
	BIT: func(c *CPU, ref OperandRef) int { execBIT(c, ref); return 0 },
	BMI: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, c.flag(FlagNegative)) },
	BNE: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, !c.flag(FlagZero)) },
	BPL: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, !c.flag(FlagNegative)) },
	BRK: execBRK,
	BVC: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, !c.flag(FlagOverflow)) },
	BVS: func(c *CPU, ref OperandRef) int { return execBranch(c, ref, c.flag(FlagOverflow)) },
	CLC: func(c *CPU, _ OperandRef) int { c.setFlag(FlagCarry, false); return 0 },
	CLD: func(c *CPU, _ OperandRef) int { c.setFlag(FlagDecimal, false); return 0 },
	CLI: func(c *CPU, _ OperandRef) int { c.setFlag(FlagIRQ, false); return 0 },
	CLV: func(c *CPU, _ OperandRef) int { c.setFlag(FlagOverflow, false); return 0 },
	CMP: func(c *CPU, ref OperandRef) int { execCompare(c, c.A, ref); return 0 },
	CPX: func(c *CPU, ref OperandRef) int { execCompare(c, c.X, ref); return 0 },
	CPY: func(c *CPU, ref OperandRef) int { execCompare(c, c.Y, ref); return 0 },
	DEC: func(c *CPU, ref OperandRef) int { execIncDecMem(c, ref, -1); return 0 },
	DEX: func(c *CPU, _ OperandRef) int { c.X--; c.setZN(c.X); return 0 },
	DEY: func(c *CPU, _ OperandRef) int { c.Y--; c.setZN(c.Y); return 0 },
	EOR: func(c *CPU, ref OperandRef) int { c.A ^= ref.Load(c); c.setZN(c.A); return 0 },
	INC: func(c *CPU, ref OperandRef) int { execIncDecMem(c, ref, 1); return 0 },
	INX: func(c *CPU, _ OperandRef) int { c.X++; c.setZN(c.X); return 0 },
	INY: func(c *CPU, _ OperandRef) int { c.Y++; c.setZN(c.Y); return 0 },
	JMP: func(c *CPU, ref OperandRef) int { c.PC = ref.addr; return 0 },
	JSR: execJSR,
	LDA: func(c *CPU, ref OperandRef) int { c.A = ref.Load(c); c.setZN(c.A); return 0 },
	LDX: func(c *CPU, ref OperandRef) int { c.X = ref.Load(c); c.setZN(c.X); return 0 },
	LDY: func(c *CPU, ref OperandRef) int { c.Y = ref.Load(c); c.setZN(c.Y); return 0 },
	LSR: execLSR,
	NOP: func(c *CPU, _ OperandRef) int { return 0 },
	ORA: func(c *CPU, ref OperandRef) int { c.A |= ref.Load(c); c.setZN(c.A); return 0 },
	PHA: func(c *CPU, _ OperandRef) int { c.push(c.A); return 0 },
	PHP: func(c *CPU, _ OperandRef) int { c.push(c.P | FlagBreak | FlagUnused); return 0 },
	PLA: func(c *CPU, _ OperandRef) int { c.A = c.pop(); c.setZN(c.A); return 0 },
	PLP: func(c *CPU, _ OperandRef) int { c.P = (c.pop() &^ FlagBreak) | FlagUnused; return 0 },
	ROL: execROL,
	ROR: execROR,
	RTI: execRTI,
	RTS: func(c *CPU, _ OperandRef) int { c.PC = c.popWord() + 1; return 0 },
	SBC: execSBC,
	SEC: func(c *CPU, _ OperandRef) int { c.setFlag(FlagCarry, true); return 0 },
	SED: func(c *CPU, _ OperandRef) int { c.setFlag(FlagDecimal, true); return 0 },
	SEI: func(c *CPU, _ OperandRef) int { c.setFlag(FlagIRQ, true); return 0 },
	STA: func(c *CPU, ref OperandRef) int { ref.Store(c, c.A); return 0 },
	STX: func(c *CPU, ref OperandRef) int { ref.Store(c, c.X); return 0 },
	STY: func(c *CPU, ref OperandRef) int { ref.Store(c, c.Y); return 0 },
	TAX: func(c *CPU, _ OperandRef) int { c.X = c.A; c.setZN(c.X); return 0 },
	TAY: func(c *CPU, _ OperandRef) int { c.Y = c.A; c.setZN(c.Y); return 0 },
	TSX: func(c *CPU, _ OperandRef) int { c.X = c.SP; c.setZN(c.X); return 0 },
	TXA: func(c *CPU, _ OperandRef) int { c.A = c.X; c.setZN(c.A); return 0 },
	TXS: func(c *CPU, _ OperandRef) int { c.SP = c.X; return 0 },
	TYA: func(c *CPU, _ OperandRef) int { c.A = c.Y; c.setZN(c.A); return 0 },
}

// execBranch implements every Bxx mnemonic: ref.addr is the pre-computed
// branch target and ref.pageCrossed reports whether it falls on a
// different page than the instruction following the branch. Untaken
// branches cost nothing extra; taken branches cost one more cycle, plus a
// second if the target crosses a page.
func execBranch(c *CPU, ref OperandRef, taken bool) int {
	if !taken {
		return 0
	}
	c.PC = ref.addr
	if ref.pageCrossed {
		return 2
	}
	return 1
}

func execADC(c *CPU, ref OperandRef) int {
	a := c.A
	m := ref.Load(c)
	carry := uint16(0)
	if c.flag(FlagCarry) {
		carry = 1
	}
	sum := uint16(a) + uint16(m) + carry
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (a^result)&(m^result)&0x80 != 0)
	c.A = result
	c.setZN(result)
	return 0
}

func execSBC(c *CPU, ref OperandRef) int {
	m := ref.Load(c)
	// A - M - (1-C) is A + ^M + C, so SBC reuses ADC's carry/overflow math
	// against the one's complement of the operand.
	return execADC(c, OperandRef{kind: refImmediate, immediate: ^m})
}

func execCompare(c *CPU, reg uint8, ref OperandRef) {
	m := ref.Load(c)
	result := reg - m
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(result)
}

func execBIT(c *CPU, ref OperandRef) {
	m := ref.Load(c)
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagOverflow, m&FlagOverflow != 0)
	c.setFlag(FlagNegative, m&FlagNegative != 0)
}

func execIncDecMem(c *CPU, ref OperandRef, delta int8) {
	result := ref.Load(c) + uint8(delta)
	ref.Store(c, result)
	c.setZN(result)
}

func execASL(c *CPU, ref OperandRef) int {
	val := ref.Load(c)
	c.setFlag(FlagCarry, val&0x80 != 0)
	result := val << 1
	ref.Store(c, result)
	c.setZN(result)
	return 0
}

func execLSR(c *CPU, ref OperandRef) int {
	val := ref.Load(c)
	c.setFlag(FlagCarry, val&0x01 != 0)
	result := val >> 1
	ref.Store(c, result)
	c.setZN(result)
	return 0
}

func execROL(c *CPU, ref OperandRef) int {
	val := ref.Load(c)
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	c.setFlag(FlagCarry, val&0x80 != 0)
	result := (val << 1) | carryIn
	ref.Store(c, result)
	c.setZN(result)
	return 0
}

func execROR(c *CPU, ref OperandRef) int {
	val := ref.Load(c)
	carryIn := uint8(0)
	if c.flag(FlagCarry) {
		carryIn = 0x80
	}
	c.setFlag(FlagCarry, val&0x01 != 0)
	result := (val >> 1) | carryIn
	ref.Store(c, result)
	c.setZN(result)
	return 0
}

func execJSR(c *CPU, ref OperandRef) int {
	// PC already points past the two-byte operand, i.e. at the next
	// instruction; push PC-1 so RTS's pop+1 lands back there.
	c.pushWord(c.PC - 1)
	c.PC = ref.addr
	return 0
}

func execBRK(c *CPU, _ OperandRef) int {
	c.PC++ // BRK carries a padding byte the interrupt handler conventionally skips
	c.pushWord(c.PC)
	c.push(c.P | FlagBreak | FlagUnused)
	c.setFlag(FlagIRQ, true)
	c.PC = c.mem.ReadWordLE(irqVector)
	return 0
}

func execRTI(c *CPU, _ OperandRef) int {
	c.P = (c.pop() &^ FlagBreak) | FlagUnused
	c.PC = c.popWord()
	return 0
}
