package cpu

// An Opcode is associated with a unique byte value (0x00-0xff). There are
// 256 possible opcodes (16x16), but only 151 correspond to a valid Cpu
// instruction -- some of those 151 share a Mnemonic, differing only in
// addressing mode.
//
// Multiple Opcodes may execute the same Instruction, differing only in how
// the data is to be retrieved; Step passes the Opcode's Mode to the
// Instruction, which resolves its operand through resolve.
type Opcode struct {
	Mode AddressingMode

	// Size is the total instruction length in bytes, including the opcode
	// byte itself. It cannot be derived from Mode alone: NoneAddressing
	// covers both one-byte implied instructions and two-byte branches.
	Size byte

	// Cycles is the nominal clock-cycle cost, kept for the debugger's
	// display; this core does not pace execution against it.
	Cycles byte

	Mnemonic string

	// Instruction implements the opcode. It is handed the resolved
	// addressing mode so that instructions with both a memory form and an
	// accumulator/implied form (ASL, LSR, ROL, ROR) can tell which one
	// they were dispatched as.
	Instruction func(c *Cpu, mode AddressingMode)
}

// Opcodes maps every byte value recognised by the Cpu to its Opcode.
var Opcodes = map[byte]Opcode{
	0x69: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 2, Cycles: 2, Mode: Immediate},
	0x65: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x75: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0x6D: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 3, Cycles: 4, Mode: Absolute},
	0x7D: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0x79: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0x61: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 2, Cycles: 6, Mode: IndirectX},
	0x71: {Instruction: (*Cpu).ADC, Mnemonic: "ADC", Size: 2, Cycles: 5, Mode: IndirectY},

	0x29: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 2, Cycles: 2, Mode: Immediate},
	0x25: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x35: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0x2D: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 3, Cycles: 4, Mode: Absolute},
	0x3D: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0x39: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0x21: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 2, Cycles: 6, Mode: IndirectX},
	0x31: {Instruction: (*Cpu).AND, Mnemonic: "AND", Size: 2, Cycles: 5, Mode: IndirectY},

	0x0A: {Instruction: (*Cpu).ASL, Mnemonic: "ASL", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x06: {Instruction: (*Cpu).ASL, Mnemonic: "ASL", Size: 2, Cycles: 5, Mode: ZeroPage},
	0x16: {Instruction: (*Cpu).ASL, Mnemonic: "ASL", Size: 2, Cycles: 6, Mode: ZeroPageX},
	0x0E: {Instruction: (*Cpu).ASL, Mnemonic: "ASL", Size: 3, Cycles: 6, Mode: Absolute},
	0x1E: {Instruction: (*Cpu).ASL, Mnemonic: "ASL", Size: 3, Cycles: 7, Mode: AbsoluteX},

	0x24: {Instruction: (*Cpu).BIT, Mnemonic: "BIT", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x2C: {Instruction: (*Cpu).BIT, Mnemonic: "BIT", Size: 3, Cycles: 4, Mode: Absolute},

	0x00: {Instruction: (*Cpu).BRK, Mnemonic: "BRK", Size: 1, Cycles: 7, Mode: NoneAddressing},

	0xC9: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 2, Cycles: 2, Mode: Immediate},
	0xC5: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xD5: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0xCD: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 3, Cycles: 4, Mode: Absolute},
	0xDD: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0xD9: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0xC1: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 2, Cycles: 6, Mode: IndirectX},
	0xD1: {Instruction: (*Cpu).CMP, Mnemonic: "CMP", Size: 2, Cycles: 5, Mode: IndirectY},

	0xE0: {Instruction: (*Cpu).CPX, Mnemonic: "CPX", Size: 2, Cycles: 2, Mode: Immediate},
	0xE4: {Instruction: (*Cpu).CPX, Mnemonic: "CPX", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xEC: {Instruction: (*Cpu).CPX, Mnemonic: "CPX", Size: 3, Cycles: 4, Mode: Absolute},

	0xC0: {Instruction: (*Cpu).CPY, Mnemonic: "CPY", Size: 2, Cycles: 2, Mode: Immediate},
	0xC4: {Instruction: (*Cpu).CPY, Mnemonic: "CPY", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xCC: {Instruction: (*Cpu).CPY, Mnemonic: "CPY", Size: 3, Cycles: 4, Mode: Absolute},

	0xC6: {Instruction: (*Cpu).DEC, Mnemonic: "DEC", Size: 2, Cycles: 5, Mode: ZeroPage},
	0xD6: {Instruction: (*Cpu).DEC, Mnemonic: "DEC", Size: 2, Cycles: 6, Mode: ZeroPageX},
	0xCE: {Instruction: (*Cpu).DEC, Mnemonic: "DEC", Size: 3, Cycles: 6, Mode: Absolute},
	0xDE: {Instruction: (*Cpu).DEC, Mnemonic: "DEC", Size: 3, Cycles: 7, Mode: AbsoluteX},

	0x49: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 2, Cycles: 2, Mode: Immediate},
	0x45: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x55: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0x4D: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 3, Cycles: 4, Mode: Absolute},
	0x5D: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0x59: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0x41: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 2, Cycles: 6, Mode: IndirectX},
	0x51: {Instruction: (*Cpu).EOR, Mnemonic: "EOR", Size: 2, Cycles: 5, Mode: IndirectY},

	0xE6: {Instruction: (*Cpu).INC, Mnemonic: "INC", Size: 2, Cycles: 5, Mode: ZeroPage},
	0xF6: {Instruction: (*Cpu).INC, Mnemonic: "INC", Size: 2, Cycles: 6, Mode: ZeroPageX},
	0xEE: {Instruction: (*Cpu).INC, Mnemonic: "INC", Size: 3, Cycles: 6, Mode: Absolute},
	0xFE: {Instruction: (*Cpu).INC, Mnemonic: "INC", Size: 3, Cycles: 7, Mode: AbsoluteX},

	0x4C: {Instruction: (*Cpu).JMP, Mnemonic: "JMP", Size: 3, Cycles: 3, Mode: Absolute},
	0x6C: {Instruction: (*Cpu).JMP, Mnemonic: "JMP", Size: 3, Cycles: 5, Mode: Indirect},

	0x20: {Instruction: (*Cpu).JSR, Mnemonic: "JSR", Size: 3, Cycles: 6, Mode: Absolute},

	0xA9: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 2, Cycles: 2, Mode: Immediate},
	0xA5: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xB5: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0xAD: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 3, Cycles: 4, Mode: Absolute},
	0xBD: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0xB9: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0xA1: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 2, Cycles: 6, Mode: IndirectX},
	0xB1: {Instruction: (*Cpu).LDA, Mnemonic: "LDA", Size: 2, Cycles: 5, Mode: IndirectY},

	0xA2: {Instruction: (*Cpu).LDX, Mnemonic: "LDX", Size: 2, Cycles: 2, Mode: Immediate},
	0xA6: {Instruction: (*Cpu).LDX, Mnemonic: "LDX", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xB6: {Instruction: (*Cpu).LDX, Mnemonic: "LDX", Size: 2, Cycles: 4, Mode: ZeroPageY},
	0xAE: {Instruction: (*Cpu).LDX, Mnemonic: "LDX", Size: 3, Cycles: 4, Mode: Absolute},
	0xBE: {Instruction: (*Cpu).LDX, Mnemonic: "LDX", Size: 3, Cycles: 4, Mode: AbsoluteY},

	0xA0: {Instruction: (*Cpu).LDY, Mnemonic: "LDY", Size: 2, Cycles: 2, Mode: Immediate},
	0xA4: {Instruction: (*Cpu).LDY, Mnemonic: "LDY", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xB4: {Instruction: (*Cpu).LDY, Mnemonic: "LDY", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0xAC: {Instruction: (*Cpu).LDY, Mnemonic: "LDY", Size: 3, Cycles: 4, Mode: Absolute},
	0xBC: {Instruction: (*Cpu).LDY, Mnemonic: "LDY", Size: 3, Cycles: 4, Mode: AbsoluteX},

	0x4A: {Instruction: (*Cpu).LSR, Mnemonic: "LSR", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x46: {Instruction: (*Cpu).LSR, Mnemonic: "LSR", Size: 2, Cycles: 5, Mode: ZeroPage},
	0x56: {Instruction: (*Cpu).LSR, Mnemonic: "LSR", Size: 2, Cycles: 6, Mode: ZeroPageX},
	0x4E: {Instruction: (*Cpu).LSR, Mnemonic: "LSR", Size: 3, Cycles: 6, Mode: Absolute},
	0x5E: {Instruction: (*Cpu).LSR, Mnemonic: "LSR", Size: 3, Cycles: 7, Mode: AbsoluteX},

	0xEA: {Instruction: (*Cpu).NOP, Mnemonic: "NOP", Size: 1, Cycles: 2, Mode: NoneAddressing},

	0x09: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 2, Cycles: 2, Mode: Immediate},
	0x05: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x15: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0x0D: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 3, Cycles: 4, Mode: Absolute},
	0x1D: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0x19: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0x01: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 2, Cycles: 6, Mode: IndirectX},
	0x11: {Instruction: (*Cpu).ORA, Mnemonic: "ORA", Size: 2, Cycles: 5, Mode: IndirectY},

	0x2A: {Instruction: (*Cpu).ROL, Mnemonic: "ROL", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x26: {Instruction: (*Cpu).ROL, Mnemonic: "ROL", Size: 2, Cycles: 5, Mode: ZeroPage},
	0x36: {Instruction: (*Cpu).ROL, Mnemonic: "ROL", Size: 2, Cycles: 6, Mode: ZeroPageX},
	0x2E: {Instruction: (*Cpu).ROL, Mnemonic: "ROL", Size: 3, Cycles: 6, Mode: Absolute},
	0x3E: {Instruction: (*Cpu).ROL, Mnemonic: "ROL", Size: 3, Cycles: 7, Mode: AbsoluteX},

	0x6A: {Instruction: (*Cpu).ROR, Mnemonic: "ROR", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x66: {Instruction: (*Cpu).ROR, Mnemonic: "ROR", Size: 2, Cycles: 5, Mode: ZeroPage},
	0x76: {Instruction: (*Cpu).ROR, Mnemonic: "ROR", Size: 2, Cycles: 6, Mode: ZeroPageX},
	0x6E: {Instruction: (*Cpu).ROR, Mnemonic: "ROR", Size: 3, Cycles: 6, Mode: Absolute},
	0x7E: {Instruction: (*Cpu).ROR, Mnemonic: "ROR", Size: 3, Cycles: 7, Mode: AbsoluteX},

	0x40: {Instruction: (*Cpu).RTI, Mnemonic: "RTI", Size: 1, Cycles: 6, Mode: NoneAddressing},
	0x60: {Instruction: (*Cpu).RTS, Mnemonic: "RTS", Size: 1, Cycles: 6, Mode: NoneAddressing},

	0xE9: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 2, Cycles: 2, Mode: Immediate},
	0xE5: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 2, Cycles: 3, Mode: ZeroPage},
	0xF5: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0xED: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 3, Cycles: 4, Mode: Absolute},
	0xFD: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 3, Cycles: 4, Mode: AbsoluteX},
	0xF9: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 3, Cycles: 4, Mode: AbsoluteY},
	0xE1: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 2, Cycles: 6, Mode: IndirectX},
	0xF1: {Instruction: (*Cpu).SBC, Mnemonic: "SBC", Size: 2, Cycles: 5, Mode: IndirectY},

	0x85: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x95: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0x8D: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 3, Cycles: 4, Mode: Absolute},
	0x9D: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 3, Cycles: 5, Mode: AbsoluteX},
	0x99: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 3, Cycles: 5, Mode: AbsoluteY},
	0x81: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 2, Cycles: 6, Mode: IndirectX},
	0x91: {Instruction: (*Cpu).STA, Mnemonic: "STA", Size: 2, Cycles: 6, Mode: IndirectY},

	0x86: {Instruction: (*Cpu).STX, Mnemonic: "STX", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x96: {Instruction: (*Cpu).STX, Mnemonic: "STX", Size: 2, Cycles: 4, Mode: ZeroPageY},
	0x8E: {Instruction: (*Cpu).STX, Mnemonic: "STX", Size: 3, Cycles: 4, Mode: Absolute},

	0x84: {Instruction: (*Cpu).STY, Mnemonic: "STY", Size: 2, Cycles: 3, Mode: ZeroPage},
	0x94: {Instruction: (*Cpu).STY, Mnemonic: "STY", Size: 2, Cycles: 4, Mode: ZeroPageX},
	0x8C: {Instruction: (*Cpu).STY, Mnemonic: "STY", Size: 3, Cycles: 4, Mode: Absolute},

	// clear, set
	0x18: {Instruction: (*Cpu).CLC, Mnemonic: "CLC", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x38: {Instruction: (*Cpu).SEC, Mnemonic: "SEC", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x58: {Instruction: (*Cpu).CLI, Mnemonic: "CLI", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x78: {Instruction: (*Cpu).SEI, Mnemonic: "SEI", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xB8: {Instruction: (*Cpu).CLV, Mnemonic: "CLV", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xD8: {Instruction: (*Cpu).CLD, Mnemonic: "CLD", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xF8: {Instruction: (*Cpu).SED, Mnemonic: "SED", Size: 1, Cycles: 2, Mode: NoneAddressing},

	// transfer, increment, decrement
	0xAA: {Instruction: (*Cpu).TAX, Mnemonic: "TAX", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x8A: {Instruction: (*Cpu).TXA, Mnemonic: "TXA", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xCA: {Instruction: (*Cpu).DEX, Mnemonic: "DEX", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xE8: {Instruction: (*Cpu).INX, Mnemonic: "INX", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xA8: {Instruction: (*Cpu).TAY, Mnemonic: "TAY", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x98: {Instruction: (*Cpu).TYA, Mnemonic: "TYA", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x88: {Instruction: (*Cpu).DEY, Mnemonic: "DEY", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xC8: {Instruction: (*Cpu).INY, Mnemonic: "INY", Size: 1, Cycles: 2, Mode: NoneAddressing},

	// branch
	0x10: {Instruction: (*Cpu).BPL, Mnemonic: "BPL", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0x30: {Instruction: (*Cpu).BMI, Mnemonic: "BMI", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0x50: {Instruction: (*Cpu).BVC, Mnemonic: "BVC", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0x70: {Instruction: (*Cpu).BVS, Mnemonic: "BVS", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0x90: {Instruction: (*Cpu).BCC, Mnemonic: "BCC", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0xB0: {Instruction: (*Cpu).BCS, Mnemonic: "BCS", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0xD0: {Instruction: (*Cpu).BNE, Mnemonic: "BNE", Size: 2, Cycles: 2, Mode: NoneAddressing},
	0xF0: {Instruction: (*Cpu).BEQ, Mnemonic: "BEQ", Size: 2, Cycles: 2, Mode: NoneAddressing},

	// stack
	0x9A: {Instruction: (*Cpu).TXS, Mnemonic: "TXS", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0xBA: {Instruction: (*Cpu).TSX, Mnemonic: "TSX", Size: 1, Cycles: 2, Mode: NoneAddressing},
	0x48: {Instruction: (*Cpu).PHA, Mnemonic: "PHA", Size: 1, Cycles: 3, Mode: NoneAddressing},
	0x68: {Instruction: (*Cpu).PLA, Mnemonic: "PLA", Size: 1, Cycles: 4, Mode: NoneAddressing},
	0x08: {Instruction: (*Cpu).PHP, Mnemonic: "PHP", Size: 1, Cycles: 3, Mode: NoneAddressing},
	0x28: {Instruction: (*Cpu).PLP, Mnemonic: "PLP", Size: 1, Cycles: 4, Mode: NoneAddressing},
}
