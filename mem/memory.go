// Package mem provides the flat 64 KiB address space the Cpu operates
// against.
//
// In the NES, there are 2 buses: one has 64 kB, responsible for CPU memory,
// APU, and cartridge (0x0000-0xffff); the other is responsible for graphics.
// This core only emulates the CPU, so there is only the one.
package mem

import "sixfiveohtwo/mask"

// A Memory is the entire addressable space of the machine: 65536 bytes,
// zeroed on init. There is no mirroring, no mapper, no bank switching --
// every address reads and writes exactly one byte of backing storage.
type Memory struct {
	ram [65536]byte // 64 kB (0xffff), zeroed on init
}

// New returns a zeroed Memory.
func New() *Memory {
	return &Memory{}
}

// Read8 returns the byte at addr.
func (m *Memory) Read8(addr uint16) byte {
	return m.ram[addr]
}

// Write8 stores data at addr.
//
// Memory methods take a pointer receiver so that writes through an embedded
// Memory (or a *Memory field) actually land in the caller's backing array --
// a value receiver on a struct wrapping a large array silently writes to a
// throwaway copy instead.
func (m *Memory) Write8(addr uint16, data byte) {
	m.ram[addr] = data
}

// Read16 reads a little-endian 16-bit value starting at addr: the low byte
// lives at addr, the high byte at addr+1. It does not wrap at a page
// boundary -- addr+1 may be the first byte of the next page. Callers that
// need the hardware's indirect-JMP page-wrap bug must implement it
// themselves (see cpu's JMP handler).
func (m *Memory) Read16(addr uint16) uint16 {
	lo := m.Read8(addr)
	hi := m.Read8(addr + 1)
	return mask.Word(hi, lo)
}

// Write16 stores a little-endian 16-bit value starting at addr.
func (m *Memory) Write16(addr uint16, data uint16) {
	hi, lo := mask.SplitWord(data)
	m.Write8(addr, lo)
	m.Write8(addr+1, hi)
}

// Load copies program into memory starting at addr.
func (m *Memory) Load(program []byte, addr uint16) {
	copy(m.ram[addr:], program)
}
