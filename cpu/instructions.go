package cpu

import "sixfiveohtwo/mask"

// https://www.nesdev.org/obelisk-6502-guide/reference.html (best)
//
// how to read obelisk guide:
// A,Z,N = A&M
// [target],[flags...] = [op]

// operand reads the byte an instruction acts on, via the addressing mode
// resolver. Instructions with no memory operand (branches, accumulator
// shifts, implied ops, JMP/JSR) never call this.
func operand(c *Cpu, mode AddressingMode) byte {
	return c.Read(resolve(c, mode))
}

// ADC - Add with Carry
func (c *Cpu) ADC(mode AddressingMode) {
	m := operand(c, mode)
	c.addToAccumulator(m)
}

// addToAccumulator implements A = A + m + carry, with the signed overflow
// formula shared by ADC and SBC (SBC feeds in m's one's complement).
func (c *Cpu) addToAccumulator(m byte) {
	var carryIn uint16
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(c.Accumulator) + uint16(m) + carryIn
	result := byte(sum)

	c.Flags.Carry = sum > 0xff
	c.Flags.Overflow = (m^result)&(result^c.Accumulator)&0x80 != 0

	c.Accumulator = result
	c.setZN(c.Accumulator)
}

// AND - Logical AND
func (c *Cpu) AND(mode AddressingMode) {
	c.Accumulator &= operand(c, mode)
	c.setZN(c.Accumulator)
}

// asl shifts v left by one, returning the result and setting Carry from the
// old bit 7. Used by both the accumulator and memory forms of ASL.
func (c *Cpu) asl(v byte) byte {
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.setZN(v)
	return v
}

// ASL - Arithmetic Shift Left
func (c *Cpu) ASL(mode AddressingMode) {
	if mode == NoneAddressing {
		c.Accumulator = c.asl(c.Accumulator)
		return
	}
	addr := resolve(c, mode)
	c.Write(addr, c.asl(c.Read(addr)))
}

// branch jumps PC by a signed 8-bit offset read from the operand byte when
// cond holds. The offset is relative to the address immediately following
// the two-byte branch instruction.
func (c *Cpu) branch(cond bool) {
	offset := int8(c.Read(c.ProgramCounter))
	if !cond {
		return
	}
	c.ProgramCounter = uint16(int32(c.ProgramCounter) + int32(offset) + 1)
}

// BCC - Branch if Carry Clear
func (c *Cpu) BCC(mode AddressingMode) { c.branch(!c.Flags.Carry) }

// BCS - Branch if Carry Set
func (c *Cpu) BCS(mode AddressingMode) { c.branch(c.Flags.Carry) }

// BEQ - Branch if Equal
func (c *Cpu) BEQ(mode AddressingMode) { c.branch(c.Flags.Zero) }

// BIT - Bit Test
func (c *Cpu) BIT(mode AddressingMode) {
	m := operand(c, mode)
	c.Flags.Zero = c.Accumulator&m == 0
	c.Flags.Overflow = m&0x40 != 0
	c.Flags.Negative = m&0x80 != 0
}

// BMI - Branch if Minus
func (c *Cpu) BMI(mode AddressingMode) { c.branch(c.Flags.Negative) }

// BNE - Branch if Not Equal
func (c *Cpu) BNE(mode AddressingMode) { c.branch(!c.Flags.Zero) }

// BPL - Branch if Positive
func (c *Cpu) BPL(mode AddressingMode) { c.branch(!c.Flags.Negative) }

// BRK signals the core to halt. Real hardware pushes PC and status and
// jumps through the IRQ vector; this core has no interrupt vectors to jump
// to, so BRK simply stops Step's caller, leaving PC one byte past the
// opcode and the stack untouched.
func (c *Cpu) BRK(mode AddressingMode) {
	c.Flags.Break = true
}

// BVC - Branch if Overflow Clear
func (c *Cpu) BVC(mode AddressingMode) { c.branch(!c.Flags.Overflow) }

// BVS - Branch if Overflow Set
func (c *Cpu) BVS(mode AddressingMode) { c.branch(c.Flags.Overflow) }

// CLC - Clear Carry Flag
func (c *Cpu) CLC(mode AddressingMode) { c.Flags.Carry = false }

// CLD - Clear Decimal Mode
func (c *Cpu) CLD(mode AddressingMode) { c.Flags.Decimal = false }

// CLI - Clear Interrupt Disable
func (c *Cpu) CLI(mode AddressingMode) { c.Flags.DisableInterrupt = false }

// CLV - Clear Overflow Flag
func (c *Cpu) CLV(mode AddressingMode) { c.Flags.Overflow = false }

// compare implements the shared CMP/CPX/CPY semantics: a register minus an
// operand, discarding the result everywhere but the flags.
func (c *Cpu) compare(reg, m byte) {
	c.Flags.Carry = reg >= m
	c.setZN(reg - m)
}

// CMP - Compare
func (c *Cpu) CMP(mode AddressingMode) { c.compare(c.Accumulator, operand(c, mode)) }

// CPX - Compare X Register
func (c *Cpu) CPX(mode AddressingMode) { c.compare(c.X, operand(c, mode)) }

// CPY - Compare Y Register
func (c *Cpu) CPY(mode AddressingMode) { c.compare(c.Y, operand(c, mode)) }

// DEC - Decrement Memory
func (c *Cpu) DEC(mode AddressingMode) {
	addr := resolve(c, mode)
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.setZN(v)
}

// DEX - Decrement X Register
func (c *Cpu) DEX(mode AddressingMode) {
	c.X--
	c.setZN(c.X)
}

// DEY - Decrement Y Register
func (c *Cpu) DEY(mode AddressingMode) {
	c.Y--
	c.setZN(c.Y)
}

// EOR - Exclusive OR
func (c *Cpu) EOR(mode AddressingMode) {
	c.Accumulator ^= operand(c, mode)
	c.setZN(c.Accumulator)
}

// INC - Increment Memory
func (c *Cpu) INC(mode AddressingMode) {
	addr := resolve(c, mode)
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.setZN(v)
}

// INX - Increment X Register
func (c *Cpu) INX(mode AddressingMode) {
	c.X++
	c.setZN(c.X)
}

// INY - Increment Y Register
func (c *Cpu) INY(mode AddressingMode) {
	c.Y++
	c.setZN(c.Y)
}

// JMP - Jump
//
// The indirect form carries real hardware's page-boundary bug: if the
// pointer's low byte is 0xff, the high byte of the target is re-read from
// the start of the same page instead of the next one.
func (c *Cpu) JMP(mode AddressingMode) {
	if mode == Absolute {
		c.ProgramCounter = c.Mem.Read16(c.ProgramCounter)
		return
	}

	ptr := c.Mem.Read16(c.ProgramCounter)
	lo := c.Read(ptr)
	var hi byte
	if byte(ptr) == 0xff {
		hi = c.Read(ptr & 0xff00)
	} else {
		hi = c.Read(ptr + 1)
	}
	c.ProgramCounter = mask.Word(hi, lo)
}

// JSR - Jump to Subroutine
func (c *Cpu) JSR(mode AddressingMode) {
	target := c.Mem.Read16(c.ProgramCounter)
	c.push16(c.ProgramCounter + 1)
	c.ProgramCounter = target
}

// LDA - Load Accumulator
func (c *Cpu) LDA(mode AddressingMode) {
	c.Accumulator = operand(c, mode)
	c.setZN(c.Accumulator)
}

// LDX - Load X Register
func (c *Cpu) LDX(mode AddressingMode) {
	c.X = operand(c, mode)
	c.setZN(c.X)
}

// LDY - Load Y Register
func (c *Cpu) LDY(mode AddressingMode) {
	c.Y = operand(c, mode)
	c.setZN(c.Y)
}

// lsr shifts v right by one, returning the result and setting Carry from
// the old bit 0.
func (c *Cpu) lsr(v byte) byte {
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.setZN(v)
	return v
}

// LSR - Logical Shift Right
func (c *Cpu) LSR(mode AddressingMode) {
	if mode == NoneAddressing {
		c.Accumulator = c.lsr(c.Accumulator)
		return
	}
	addr := resolve(c, mode)
	c.Write(addr, c.lsr(c.Read(addr)))
}

// NOP - No Operation
func (c *Cpu) NOP(mode AddressingMode) {}

// ORA - Logical Inclusive OR
func (c *Cpu) ORA(mode AddressingMode) {
	c.Accumulator |= operand(c, mode)
	c.setZN(c.Accumulator)
}

// PHA - Push Accumulator
func (c *Cpu) PHA(mode AddressingMode) { c.push(c.Accumulator) }

// PHP - Push Processor Status
//
// The byte pushed is the status register as it stands, Break included, so
// PHP followed by PLP restores every flag unchanged.
func (c *Cpu) PHP(mode AddressingMode) {
	c.push(c.Flags.StatusByte())
}

// PLA - Pull Accumulator
func (c *Cpu) PLA(mode AddressingMode) {
	c.Accumulator = c.pull()
	c.setZN(c.Accumulator)
}

// PLP - Pull Processor Status
func (c *Cpu) PLP(mode AddressingMode) {
	c.Flags.SetStatusByte(c.pull())
}

// rol rotates v left by one through Carry.
func (c *Cpu) rol(v byte) byte {
	carryIn := c.Flags.Carry
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	if carryIn {
		v |= 0x01
	}
	c.setZN(v)
	return v
}

// ROL - Rotate Left
func (c *Cpu) ROL(mode AddressingMode) {
	if mode == NoneAddressing {
		c.Accumulator = c.rol(c.Accumulator)
		return
	}
	addr := resolve(c, mode)
	c.Write(addr, c.rol(c.Read(addr)))
}

// ror rotates v right by one through Carry.
func (c *Cpu) ror(v byte) byte {
	carryIn := c.Flags.Carry
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	if carryIn {
		v |= 0x80
	}
	c.setZN(v)
	return v
}

// ROR - Rotate Right
func (c *Cpu) ROR(mode AddressingMode) {
	if mode == NoneAddressing {
		c.Accumulator = c.ror(c.Accumulator)
		return
	}
	addr := resolve(c, mode)
	c.Write(addr, c.ror(c.Read(addr)))
}

// RTI - Return from Interrupt
func (c *Cpu) RTI(mode AddressingMode) {
	c.Flags.SetStatusByte(c.pull())
	c.ProgramCounter = c.pull16()
}

// RTS - Return from Subroutine
func (c *Cpu) RTS(mode AddressingMode) {
	c.ProgramCounter = c.pull16() + 1
}

// SBC - Subtract with Carry
//
// SBC is ADC with the operand's one's complement; the carry flag doubles
// as "not borrow".
func (c *Cpu) SBC(mode AddressingMode) {
	m := operand(c, mode)
	c.addToAccumulator(^m)
}

// SEC - Set Carry Flag
func (c *Cpu) SEC(mode AddressingMode) { c.Flags.Carry = true }

// SED - Set Decimal Flag
func (c *Cpu) SED(mode AddressingMode) { c.Flags.Decimal = true }

// SEI - Set Interrupt Disable
func (c *Cpu) SEI(mode AddressingMode) { c.Flags.DisableInterrupt = true }

// STA - Store Accumulator
func (c *Cpu) STA(mode AddressingMode) { c.Write(resolve(c, mode), c.Accumulator) }

// STX - Store X Register
func (c *Cpu) STX(mode AddressingMode) { c.Write(resolve(c, mode), c.X) }

// STY - Store Y Register
func (c *Cpu) STY(mode AddressingMode) { c.Write(resolve(c, mode), c.Y) }

// TAX - Transfer Accumulator to X
func (c *Cpu) TAX(mode AddressingMode) {
	c.X = c.Accumulator
	c.setZN(c.X)
}

// TAY - Transfer Accumulator to Y
func (c *Cpu) TAY(mode AddressingMode) {
	c.Y = c.Accumulator
	c.setZN(c.Y)
}

// TSX - Transfer Stack Pointer to X
func (c *Cpu) TSX(mode AddressingMode) {
	c.X = c.Stack
	c.setZN(c.X)
}

// TXA - Transfer X to Accumulator
func (c *Cpu) TXA(mode AddressingMode) {
	c.Accumulator = c.X
	c.setZN(c.Accumulator)
}

// TXS - Transfer X to Stack Pointer
//
// Unlike every other transfer, TXS sets no flags -- the stack pointer is
// not a general-purpose register.
func (c *Cpu) TXS(mode AddressingMode) { c.Stack = c.X }

// TYA - Transfer Y to Accumulator
func (c *Cpu) TYA(mode AddressingMode) {
	c.Accumulator = c.Y
	c.setZN(c.Accumulator)
}
