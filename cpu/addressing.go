package cpu

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() uint8 {
	b := c.mem.Read(c.PC)
	c.PC++
	return b
}

// fetchWord reads the little-endian word at PC and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	w := c.mem.ReadWordLE(c.PC)
	c.PC += 2
	return w
}

// samePage reports whether a and b fall in the same 256 byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// resolveOperand consumes the operand bytes for mode (advancing PC past
// them) and returns an OperandRef describing where the instruction should
// read and, if applicable, write its data. This is the single addressing
// evaluator every instruction body routes through, covering all 13
// addressing modes this core supports.
func (c *CPU) resolveOperand(mode AddrMode) OperandRef {
	switch mode {
	case Implied:
		return OperandRef{kind: refNone}

	case Accumulator:
		return OperandRef{kind: refAccumulator}

	case Immediate:
		return OperandRef{kind: refImmediate, immediate: c.fetchByte()}

	case ZeroPage:
		addr := uint16(c.fetchByte())
		return OperandRef{kind: refMemory, addr: addr}

	case ZeroPageX:
		base := c.fetchByte()
		addr := uint16(base + c.X) // wraps within page zero
		return OperandRef{kind: refMemory, addr: addr}

	case ZeroPageY:
		base := c.fetchByte()
		addr := uint16(base + c.Y) // wraps within page zero
		return OperandRef{kind: refMemory, addr: addr}

	case Absolute:
		addr := c.fetchWord()
		return OperandRef{kind: refMemory, addr: addr}

	case AbsoluteX:
		base := c.fetchWord()
		addr := base + uint16(c.X)
		return OperandRef{kind: refMemory, addr: addr, pageCrossed: !samePage(base, addr)}

	case AbsoluteY:
		base := c.fetchWord()
		addr := base + uint16(c.Y)
		return OperandRef{kind: refMemory, addr: addr, pageCrossed: !samePage(base, addr)}

	case IndirectX:
		zp := c.fetchByte() + c.X // wraps within page zero before the deref
		addr := c.mem.ReadWordZPWrapped(zp)
		return OperandRef{kind: refMemory, addr: addr}

	case IndirectY:
		zp := c.fetchByte()
		base := c.mem.ReadWordZPWrapped(zp)
		addr := base + uint16(c.Y)
		return OperandRef{kind: refMemory, addr: addr, pageCrossed: !samePage(base, addr)}

	case Indirect:
		// JMP (abs) only. Reproduces the original hardware's page-wrap bug:
		// if the pointer's low byte is 0xFF the high byte of the target is
		// fetched from the start of the SAME page, not the next one.
		ptr := c.fetchWord()
		lo := c.mem.Read(ptr)
		var hiAddr uint16
		if ptr&0x00FF == 0x00FF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.mem.Read(hiAddr)
		addr := uint16(lo) | uint16(hi)<<8
		return OperandRef{kind: refMemory, addr: addr}

	case Relative:
		offset := int8(c.fetchByte())
		target := uint16(int32(c.PC) + int32(offset))
		return OperandRef{kind: refMemory, addr: target, pageCrossed: !samePage(c.PC, target)}
	}

	return OperandRef{kind: refNone}
}
