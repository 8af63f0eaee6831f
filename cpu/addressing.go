package cpu

import (
	"fmt"

	"sixfiveohtwo/mask"
)

// An AddressingMode tells the Cpu where to find the operand for an
// instruction. There are 11 modes.
//
// Most instructions can index the full 64 kB range of memory, that is, 256
// pages of 256 bytes. The exception is the ZeroPage family, which is
// confined to the first page of 256 bytes.
type AddressingMode int

// https://www.nesdev.org/wiki/CPU_addressing_modes
// https://www.nesdev.org/obelisk-6502-guide/addressing.html

const (
	Immediate AddressingMode = iota
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX
	IndirectY

	// Indirect is used only by JMP, which bypasses resolve and implements
	// the addressing (including its page-wrap bug) itself.
	Indirect

	// NoneAddressing covers every instruction that takes no addressing-mode
	// operand at all: implied instructions (CLC, NOP, transfers, stack
	// ops), accumulator-mode shifts/rotates, and relative branches, all of
	// which read their own operand (if any) directly rather than through
	// resolve.
	NoneAddressing
)

// ErrBadAddressingMode is panicked by resolve when asked to compute an
// effective address for a mode that has none. Reaching this path is a bug
// in the opcode table, not a runtime data error -- no program input can
// trigger it.
type ErrBadAddressingMode struct {
	Mode AddressingMode
}

func (e ErrBadAddressingMode) Error() string {
	return fmt.Sprintf("addressing mode %d has no effective address", e.Mode)
}

// resolve computes the effective address for mode, reading whatever
// operand bytes the mode requires starting at c.ProgramCounter. resolve
// never mutates c.ProgramCounter: the dispatcher in Step alone decides how
// far to advance it, using the opcode table's Size field.
func resolve(c *Cpu, mode AddressingMode) uint16 {
	switch mode {

	case Immediate:
		return c.ProgramCounter

	case ZeroPage:
		return uint16(c.Read(c.ProgramCounter))

	case ZeroPageX:
		return uint16(c.Read(c.ProgramCounter) + c.X)

	case ZeroPageY:
		return uint16(c.Read(c.ProgramCounter) + c.Y)

	case Absolute:
		return c.Mem.Read16(c.ProgramCounter)

	case AbsoluteX:
		return c.Mem.Read16(c.ProgramCounter) + uint16(c.X)

	case AbsoluteY:
		return c.Mem.Read16(c.ProgramCounter) + uint16(c.Y)

	case IndirectX:
		ptr := c.Read(c.ProgramCounter) + c.X
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		return mask.Word(hi, lo)

	case IndirectY:
		ptr := c.Read(c.ProgramCounter)
		lo := c.Read(uint16(ptr))
		hi := c.Read(uint16(ptr + 1))
		return mask.Word(hi, lo) + uint16(c.Y)

	default:
		panic(ErrBadAddressingMode{Mode: mode})
	}
}
