package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/cpu"
)

func TestSnakeNeverHalts(t *testing.T) {
	c := cpu.New()
	c.LoadProgram(Snake)
	c.Reset()

	for i := 0; i < 500; i++ {
		halted, err := c.Step()
		assert.NoError(t, err)
		assert.False(t, halted)
	}
}

func TestSnakePaintsCursorIntoGridOnKeypress(t *testing.T) {
	c := cpu.New()
	c.LoadProgram(Snake)
	c.Reset()
	c.Write(0xff, 0x01) // simulate a held key

	// With $FE never refreshed (no host driving it), the cursor starts at
	// 0 and the held key nudges it to 1 on the first pass: LDA $FE, STA
	// $00, LDA $FF, BEQ (not taken), INC $00, LDX $00, LDA $00, STA
	// $0200,X, JMP $8000 -- nine instructions.
	for i := 0; i < 9; i++ {
		_, err := c.Step()
		assert.NoError(t, err)
	}

	assert.Equal(t, byte(0x01), c.Read(0x0201))
}
