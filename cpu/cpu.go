// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES, at the instruction-set level.

package cpu

import (
	"fmt"

	"sixfiveohtwo/mask"
	"sixfiveohtwo/mem"
)

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/obelisk-6502-guide/reference.html

const (
	// stackBase is the start of page 1, where the processor stack lives.
	stackBase uint16 = 0x0100

	// stackReset is the SP value after New()/Reset() -- three bytes below
	// the top of page 1, matching every 6502 reference implementation.
	stackReset byte = 0xfd

	// loadBase is the conventional address LoadProgram places program images at.
	loadBase uint16 = 0x8000

	// resetVector holds the address Reset transfers control to.
	resetVector uint16 = 0xfffc
)

// Flags are the 8 bits that make up the status register (aka P register).
// Bit 5 is unused and is not modelled here; PHP/PLP and RTI round-trip
// it as a cleared bit, which is observationally identical for every
// instruction in this core since nothing ever tests it.
//
// 7654 3210
// NV_B DIZC
type Flags struct {
	Negative         bool // bit 7
	Overflow         bool // bit 6
	Break            bool // bit 4
	Decimal          bool // bit 3; settable, never consulted by arithmetic
	DisableInterrupt bool // bit 2
	Zero             bool // bit 1
	Carry            bool // bit 0
}

// StatusByte packs Flags into the single byte PHP pushes onto the stack.
func (f Flags) StatusByte() byte {
	var b byte
	if f.Carry {
		b |= 1 << 0
	}
	if f.Zero {
		b |= 1 << 1
	}
	if f.DisableInterrupt {
		b |= 1 << 2
	}
	if f.Decimal {
		b |= 1 << 3
	}
	if f.Break {
		b |= 1 << 4
	}
	if f.Overflow {
		b |= 1 << 6
	}
	if f.Negative {
		b |= 1 << 7
	}
	return b
}

// SetStatusByte unpacks a status byte (as pulled by PLP/RTI) into f.
func (f *Flags) SetStatusByte(b byte) {
	f.Carry = b&(1<<0) != 0
	f.Zero = b&(1<<1) != 0
	f.DisableInterrupt = b&(1<<2) != 0
	f.Decimal = b&(1<<3) != 0
	f.Break = b&(1<<4) != 0
	f.Overflow = b&(1<<6) != 0
	f.Negative = b&(1<<7) != 0
}

// Cpu holds the full architectural state of the machine: the three 8-bit
// user registers, the 16-bit program counter, the 8-bit stack pointer, the
// packed status flags, and the 64 KiB memory they operate against.
//
// The Cpu has no memory of its own, aside from its registers; it interfaces
// with a Memory that provides the full address space.
type Cpu struct {
	Mem *mem.Memory

	Flags Flags

	Accumulator byte // The Accumulator represents a byte value for immediate use, similar to a local variable
	X           byte
	Y           byte

	// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, BRK, RTI) always
	// access page 1 (0x0100-0x01ff). Stack holds the low byte of that
	// address.
	Stack byte

	// ProgramCounter is a 2-byte (word) memory address that increments
	// (almost) continuously. The byte located at this address should
	// provide the Cpu with an Opcode that specifies the next instruction
	// to execute.
	ProgramCounter uint16
}

// New returns a Cpu with zeroed registers, Stack at its reset value, status
// set to DisableInterrupt only, ProgramCounter at 0, and a fresh zeroed
// 64 KiB memory.
func New() *Cpu {
	c := &Cpu{Mem: mem.New()}
	c.Stack = stackReset
	c.Flags = Flags{DisableInterrupt: true}
	return c
}

// Read reads one byte from the given addr.
func (c *Cpu) Read(addr uint16) byte {
	return c.Mem.Read8(addr)
}

// Write passes data to Mem, which actually performs the write.
func (c *Cpu) Write(addr uint16, data byte) {
	c.Mem.Write8(addr, data)
}

// LoadProgram copies program into memory starting at 0x8000 and points the
// reset vector at that same address.
func (c *Cpu) LoadProgram(program []byte) {
	c.Mem.Load(program, loadBase)
	c.Mem.Write16(resetVector, loadBase)
}

// Reset clears the Accumulator, X and Y and every status flag, then loads
// ProgramCounter from the reset vector. Unlike real hardware (and unlike
// the DisableInterrupt flag New sets), Reset clears every flag -- it exists
// to put a freshly-loaded program into a fully known state for this
// package's tests, not to model the hardware reset line precisely.
func (c *Cpu) Reset() {
	c.Accumulator = 0
	c.X = 0
	c.Y = 0
	c.Stack = stackReset
	c.Flags = Flags{}
	c.ProgramCounter = c.Mem.Read16(resetVector)
}

// push writes v to the stack and decrements Stack, wrapping at 8 bits.
func (c *Cpu) push(v byte) {
	c.Write(stackBase|uint16(c.Stack), v)
	c.Stack--
}

// pull increments Stack, wrapping at 8 bits, then reads the byte there.
func (c *Cpu) pull() byte {
	c.Stack++
	return c.Read(stackBase | uint16(c.Stack))
}

// push16 pushes a 16-bit value high-byte-first, so that pulling (low, then
// high) reconstructs the original little-endian value.
func (c *Cpu) push16(v uint16) {
	hi, lo := mask.SplitWord(v)
	c.push(hi)
	c.push(lo)
}

// pull16 is the inverse of push16.
func (c *Cpu) pull16() uint16 {
	lo := c.pull()
	hi := c.pull()
	return mask.Word(hi, lo)
}

// setZN sets Zero and Negative from v, the value produced by the
// instruction that just ran. Almost every data-producing instruction ends
// with a call to this.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = v&0x80 != 0
}

// ErrUnknownOpcode is returned by Step when the byte at ProgramCounter has
// no table entry. The core refuses to guess at undefined behaviour real
// hardware would invent per-chip.
type ErrUnknownOpcode struct {
	Byte byte
	PC   uint16
}

func (e ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("unknown opcode %#02x at %#04x", e.Byte, e.PC)
}

// Step executes exactly one instruction: fetch the opcode at
// ProgramCounter, advance ProgramCounter past the opcode byte, run the
// instruction's handler, then advance ProgramCounter by (size-1) unless the
// handler already moved it itself (branches, jumps, JSR, RTS and RTI all
// set ProgramCounter directly, and the dispatcher must not then "correct"
// it by also skipping the operand bytes a second time).
//
// Step reports halted=true once a BRK has been decoded; ProgramCounter is
// left exactly one byte past the BRK opcode, with no further adjustment.
func (c *Cpu) Step() (halted bool, err error) {
	opByte := c.Read(c.ProgramCounter)
	op, ok := Opcodes[opByte]
	if !ok {
		return false, ErrUnknownOpcode{Byte: opByte, PC: c.ProgramCounter}
	}

	c.ProgramCounter++
	pcBeforeHandler := c.ProgramCounter

	op.Instruction(c, op.Mode)

	if op.Mnemonic == "BRK" {
		return true, nil
	}

	if c.ProgramCounter == pcBeforeHandler {
		c.ProgramCounter += uint16(op.Size) - 1
	}

	return false, nil
}

// Run executes instructions until BRK is decoded or an error occurs.
func (c *Cpu) Run() error {
	return c.RunWithCallback(func(*Cpu) {})
}

// RunWithCallback invokes cb before every instruction, then executes one
// Step. cb receives mutable access to the Cpu so a host can inject
// peripheral memory writes (random numbers, input codes) between
// instructions; cb must not itself call Run or Step.
func (c *Cpu) RunWithCallback(cb func(*Cpu)) error {
	for {
		cb(c)
		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}
