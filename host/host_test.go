package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/cpu"
)

// program reads the input byte into the accumulator, stores it at the
// start of the grid, then halts. Short and deterministic so Run's
// channel plumbing can be asserted without relying on timing.
func program() []byte {
	return []byte{
		0xA5, 0xFF, // LDA $FF
		0x8D, 0x00, 0x02, // STA $0200
		0x00, // BRK
	}
}

func TestRunClosesDoneOnHalt(t *testing.T) {
	c := cpu.New()
	c.LoadProgram(program())
	c.Reset()

	input := make(chan byte, 1)
	frames := make(chan Frame, 1)
	done := make(chan struct{})

	input <- 0x42

	errc := make(chan error, 1)
	go func() { errc <- Run(c, input, frames, done) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done was never closed")
	}

	assert.NoError(t, <-errc)
	assert.True(t, c.Flags.Break)
	assert.Equal(t, byte(0x42), c.Read(0x0200))
}

func TestRunSendsFrameReflectingRegisters(t *testing.T) {
	c := cpu.New()
	c.LoadProgram(program())
	c.Reset()

	input := make(chan byte, 1)
	frames := make(chan Frame, 4)
	done := make(chan struct{})
	input <- 0x07

	go Run(c, input, frames, done)

	<-done

	var last Frame
	for {
		select {
		case f := <-frames:
			last = f
			continue
		default:
		}
		break
	}

	assert.Equal(t, byte(0x07), last.A)
	assert.Equal(t, byte(0x07), last.Grid[0])
}

func TestDrainLatestKeepsOnlyMostRecentByte(t *testing.T) {
	c := cpu.New()
	input := make(chan byte, 4)
	input <- 0x01
	input <- 0x02
	input <- 0x03

	drainLatest(c, input)

	assert.Equal(t, byte(0x03), c.Read(inputAddr))
}

func TestDrainLatestLeavesMemoryUnchangedWhenEmpty(t *testing.T) {
	c := cpu.New()
	c.Write(inputAddr, 0x99)
	input := make(chan byte)

	drainLatest(c, input)

	assert.Equal(t, byte(0x99), c.Read(inputAddr))
}

func TestSendLatestDropsInsteadOfBlocking(t *testing.T) {
	c := cpu.New()
	frames := make(chan Frame, 1)
	frames <- Frame{A: 0xAA}

	sendLatest(c, frames)

	f := <-frames
	assert.Equal(t, byte(0xAA), f.A)
}
