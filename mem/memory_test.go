package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWrite8(t *testing.T) {
	m := New()
	m.Write8(0x10, 0x55)
	assert.Equal(t, byte(0x55), m.Read8(0x10))
	assert.Equal(t, byte(0), m.Read8(0x11))
}

func TestReadWrite16LittleEndian(t *testing.T) {
	m := New()
	m.Write16(0xfffc, 0x8000)
	assert.Equal(t, byte(0x00), m.Read8(0xfffc))
	assert.Equal(t, byte(0x80), m.Read8(0xfffd))
	assert.Equal(t, uint16(0x8000), m.Read16(0xfffc))
}

func TestRead16DoesNotPageWrap(t *testing.T) {
	m := New()
	m.Write8(0x10ff, 0x34)
	m.Write8(0x1100, 0x12)
	assert.Equal(t, uint16(0x1234), m.Read16(0x10ff))
}

func TestLoad(t *testing.T) {
	m := New()
	m.Load([]byte{0xa9, 0x05, 0x00}, 0x8000)
	assert.Equal(t, byte(0xa9), m.Read8(0x8000))
	assert.Equal(t, byte(0x05), m.Read8(0x8001))
	assert.Equal(t, byte(0x00), m.Read8(0x8002))
}

func TestWriteSurvivesThroughPointer(t *testing.T) {
	// Regression guard for the teacher's value-receiver bug: writing through
	// a *Memory obtained indirectly must be visible to later reads through
	// the same pointer.
	m := New()
	var ref *Memory = m
	ref.Write8(0x20, 0x42)
	assert.Equal(t, byte(0x42), m.Read8(0x20))
}
