package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newLoaded(program []byte) *Cpu {
	c := New()
	c.LoadProgram(program)
	c.Reset()
	return c
}

func TestLoadProgram(t *testing.T) {
	program := []byte{0xa2, 0x0a, 0x8e, 0x00, 0x00, 0xea, 0x00}
	c := newLoaded(program)
	assert.Equal(t, byte(0xa2), c.Read(0x8000))
	assert.Equal(t, byte(0x0a), c.Read(0x8001))
	assert.Equal(t, byte(0x00), c.Read(0x8006))
	assert.Equal(t, uint16(0x8000), c.ProgramCounter)

	assert.Equal(t, "LDX", Opcodes[c.Read(0x8000)].Mnemonic)
	assert.Equal(t, "BRK", Opcodes[c.Read(0x8006)].Mnemonic)
}

func TestLDAImmediateSetsZeroAndNegative(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0x00, 0x00})
	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, byte(0), c.Accumulator)
	assert.True(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)

	c = newLoaded([]byte{0xa9, 0x80, 0x00})
	_, _ = c.Step()
	assert.True(t, c.Flags.Negative)
	assert.False(t, c.Flags.Zero)
}

func TestADCImmediate(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0x01, 0x69, 0x02, 0x00})
	_, _ = c.Step() // LDA #$01
	_, _ = c.Step() // ADC #$02
	assert.Equal(t, byte(3), c.Accumulator)
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Overflow)
}

func TestADCCarryOut(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0xff, 0x69, 0x01, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0), c.Accumulator)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)
}

func TestADCSignedOverflow(t *testing.T) {
	// 0x50 + 0x50 = 0xa0: two positives summing to a negative result
	c := newLoaded([]byte{0xa9, 0x50, 0x69, 0x50, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0xa0), c.Accumulator)
	assert.True(t, c.Flags.Overflow)
	assert.True(t, c.Flags.Negative)
}

func TestSBCIsAdcWithComplement(t *testing.T) {
	// SEC; LDA #$05; SBC #$01 -> 4, no borrow
	c := newLoaded([]byte{0x38, 0xa9, 0x05, 0xe9, 0x01, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(4), c.Accumulator)
	assert.True(t, c.Flags.Carry)
}

func TestSBCWithoutCarrySetBorrowsOne(t *testing.T) {
	// CLC (no incoming borrow-complement); LDA #$05; SBC #$01 -> 3
	c := newLoaded([]byte{0x18, 0xa9, 0x05, 0xe9, 0x01, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(3), c.Accumulator)
}

func TestCMPSetsCarryAndZero(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0x05, 0xc9, 0x05, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)

	c = newLoaded([]byte{0xa9, 0x05, 0xc9, 0x06, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	assert.False(t, c.Flags.Carry)
	assert.False(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative)
}

func TestASLAccumulatorAndMemory(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0x81, 0x0a, 0x00}) // LDA #$81; ASL A
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0x02), c.Accumulator)
	assert.True(t, c.Flags.Carry)

	c = newLoaded([]byte{0xa9, 0x81, 0x85, 0x10, 0x06, 0x10, 0x00}) // LDA; STA $10; ASL $10
	_, _ = c.Step()
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0x02), c.Read(0x10))
	assert.True(t, c.Flags.Carry)
}

func TestLSRCarryFromBit0(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0x01, 0x4a, 0x00}) // LDA #$01; LSR A
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0), c.Accumulator)
	assert.True(t, c.Flags.Carry)
	assert.True(t, c.Flags.Zero)
}

func TestROLAndRORRoundTrip(t *testing.T) {
	// SEC; LDA #$40; ROL A -> carry-in becomes bit0, bit7 becomes carry-out
	c := newLoaded([]byte{0x38, 0xa9, 0x40, 0x2a, 0x00})
	_, _ = c.Step()
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0x81), c.Accumulator)
	assert.False(t, c.Flags.Carry)

	// now ROR A should undo it: SEC was consumed, carry is currently clear
	c2 := newLoaded([]byte{0xa9, 0x81, 0x6a, 0x00})
	_, _ = c2.Step()
	_, _ = c2.Step()
	assert.Equal(t, byte(0x40), c2.Accumulator)
	assert.True(t, c2.Flags.Carry)
}

func TestBranchTaken(t *testing.T) {
	// LDA #$00; BEQ +2 (skip the next instruction); LDX #$ff; LDY #$01
	program := []byte{0xa9, 0x00, 0xf0, 0x02, 0xa2, 0xff, 0xa0, 0x01, 0x00}
	c := newLoaded(program)
	_, _ = c.Step() // LDA
	pcBefore := c.ProgramCounter
	_, _ = c.Step() // BEQ, taken
	assert.Equal(t, pcBefore+2+2, c.ProgramCounter)
	_, _ = c.Step() // LDY #$01
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, byte(1), c.Y)
}

func TestBranchNotTakenAdvancesBySize(t *testing.T) {
	// LDA #$01; BEQ +4 (not taken, Zero is false); LDX #$ff
	program := []byte{0xa9, 0x01, 0xf0, 0x04, 0xa2, 0xff, 0x00}
	c := newLoaded(program)
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0), c.X) // LDX not yet executed
	_, _ = c.Step()
	assert.Equal(t, byte(0xff), c.X)
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	// JSR $8005; INX; BRK; [$8005] INY; RTS
	program := []byte{0x20, 0x05, 0x80, 0xe8, 0x00, 0xc8, 0x60}
	c := newLoaded(program)
	_, _ = c.Step() // JSR
	assert.Equal(t, uint16(0x8005), c.ProgramCounter)
	_, _ = c.Step() // INY
	assert.Equal(t, byte(1), c.Y)
	_, _ = c.Step() // RTS
	assert.Equal(t, uint16(0x8003), c.ProgramCounter)
	_, _ = c.Step() // INX
	assert.Equal(t, byte(1), c.X)
}

func TestJMPAbsolute(t *testing.T) {
	program := []byte{0x4c, 0x05, 0x80, 0xea, 0xea, 0xe8, 0x00}
	c := newLoaded(program)
	_, _ = c.Step()
	assert.Equal(t, uint16(0x8005), c.ProgramCounter)
	_, _ = c.Step()
	assert.Equal(t, byte(1), c.X)
}

func TestJMPIndirectPageBoundaryBug(t *testing.T) {
	c := New()
	// pointer at 0x30ff: real hardware re-reads the high byte from 0x3000,
	// not 0x3100
	c.Mem.Write8(0x30ff, 0x00)
	c.Mem.Write8(0x3000, 0x80)
	c.Mem.Write8(0x3100, 0xff) // decoy: must NOT be used

	program := []byte{0x6c, 0xff, 0x30}
	c.LoadProgram(program)
	c.Reset()
	_, _ = c.Step()
	assert.Equal(t, uint16(0x8000), c.ProgramCounter)
}

func TestPHAAndPLARoundTrip(t *testing.T) {
	c := newLoaded([]byte{0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68, 0x00})
	_, _ = c.Step() // LDA #$42
	_, _ = c.Step() // PHA
	_, _ = c.Step() // LDA #$00
	assert.Equal(t, byte(0), c.Accumulator)
	_, _ = c.Step() // PLA
	assert.Equal(t, byte(0x42), c.Accumulator)
}

func TestPHPAndPLPRoundTrip(t *testing.T) {
	c := newLoaded([]byte{0x38, 0x08, 0x18, 0x28, 0x00}) // SEC; PHP; CLC; PLP
	_, _ = c.Step()
	assert.True(t, c.Flags.Carry)
	_, _ = c.Step()
	_, _ = c.Step()
	assert.False(t, c.Flags.Carry)
	_, _ = c.Step()
	assert.True(t, c.Flags.Carry)
}

func TestBRKHalts(t *testing.T) {
	c := newLoaded([]byte{0xea, 0x00, 0xea})
	halted, err := c.Step()
	assert.NoError(t, err)
	assert.False(t, halted)
	halted, err = c.Step()
	assert.NoError(t, err)
	assert.True(t, halted)
	assert.Equal(t, uint16(0x8002), c.ProgramCounter)
}

func TestRunWithCallbackStopsAtBRK(t *testing.T) {
	c := newLoaded([]byte{0xe8, 0xe8, 0xe8, 0x00})
	var ticks int
	err := c.RunWithCallback(func(*Cpu) { ticks++ })
	assert.NoError(t, err)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, 4, ticks)
}

func TestUnknownOpcode(t *testing.T) {
	c := newLoaded([]byte{0x02}) // not a valid 6502 opcode
	_, err := c.Step()
	assert.Error(t, err)
	var target ErrUnknownOpcode
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, byte(0x02), target.Byte)
}

func TestStatusByteRoundTrip(t *testing.T) {
	var f Flags
	f.Carry = true
	f.Negative = true
	f.Overflow = true
	b := f.StatusByte()

	var g Flags
	g.SetStatusByte(b)
	assert.Equal(t, f, g)
}

func TestTSXAndTXSDoNotTouchMemory(t *testing.T) {
	c := newLoaded([]byte{0xa2, 0x10, 0x9a, 0xba, 0x00}) // LDX #$10; TXS; TSX
	_, _ = c.Step()
	_, _ = c.Step()
	assert.Equal(t, byte(0x10), c.Stack)
	_, _ = c.Step()
	assert.Equal(t, byte(0x10), c.X)
}

func TestThirtyMultiplicationProgram(t *testing.T) {
	// Multiplies 10 by 3 using a decrement-and-add loop, storing the
	// result at 0x0002, then halts.
	program := []byte{
		0xa2, 0x0a, 0x8e, 0x00, 0x00, // LDX #$0a; STX $0000
		0xa2, 0x03, 0x8e, 0x01, 0x00, // LDX #$03; STX $0001
		0xac, 0x00, 0x00, // LDY $0000
		0xa9, 0x00, // LDA #$00
		0x18,             // CLC
		0x6d, 0x01, 0x00, // loop: ADC $0001
		0x88,       // DEY
		0xd0, 0xfa, // BNE loop
		0x8d, 0x02, 0x00, // STA $0002
		0x00, // BRK
	}
	c := newLoaded(program)
	err := c.Run()
	assert.NoError(t, err)
	assert.Equal(t, byte(30), c.Accumulator)
	assert.Equal(t, byte(30), c.Read(0x0002))
}
