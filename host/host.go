// Package host wires a Cpu to a UI over a pair of non-blocking channels, the
// concrete shape of the "host driver" the cpu package itself knows nothing
// about.
package host

import (
	"math/rand"

	"sixfiveohtwo/cpu"
)

const (
	// inputAddr is where the host writes the most recently pressed key.
	inputAddr uint16 = 0xff

	// randomAddr is refreshed with a fresh random byte in [1, 15] before
	// every instruction, the same convention the 6502 "snake" demo programs
	// use in place of real hardware RNG.
	randomAddr uint16 = 0xfe

	// frameStart/frameEnd bound the grid memory a Frame snapshots.
	frameStart uint16 = 0x0200
	frameEnd   uint16 = 0x0600
)

// Frame is a point-in-time snapshot of the grid memory and registers, sent
// from the Cpu goroutine to a UI goroutine.
type Frame struct {
	Grid [frameEnd - frameStart]byte
	A    byte
	X    byte
	Y    byte
	PC   uint16
}

// Run drives c to completion, reading the latest byte off input before each
// instruction and writing it to memory at 0xff, refreshing memory at 0xfe
// with a random byte, and publishing a Frame just before each instruction.
//
// Run returns when c halts (BRK) or a Step error occurs; on halt it closes
// done exactly once. Run blocks the calling goroutine -- callers that want
// the Cpu running concurrently with a UI must invoke it via `go host.Run(...)`.
func Run(c *cpu.Cpu, input <-chan byte, frames chan<- Frame, done chan<- struct{}) error {
	for {
		drainLatest(c, input)
		c.Write(randomAddr, byte(1+rand.Intn(15)))
		sendLatest(c, frames)

		halted, err := c.Step()
		if err != nil {
			return err
		}
		if halted {
			close(done)
			return nil
		}
	}
}

// drainLatest consumes every currently-queued byte on input, keeping only
// the last one, and writes it to inputAddr. A buffered, latest-wins input
// channel means a host UI can send keypresses as fast as it likes without
// ever blocking on a slow Cpu.
func drainLatest(c *cpu.Cpu, input <-chan byte) {
	var latest byte
	var got bool
	for {
		select {
		case b := <-input:
			latest = b
			got = true
		default:
			if got {
				c.Write(inputAddr, latest)
			}
			return
		}
	}
}

// sendLatest publishes a Frame, dropping it instead of blocking if the UI
// hasn't consumed the previous one -- the UI never faces a backlog, though
// the frame still pending may be older than the Cpu's current state.
func sendLatest(c *cpu.Cpu, frames chan<- Frame) {
	f := Frame{A: c.Accumulator, X: c.X, Y: c.Y, PC: c.ProgramCounter}
	for i := range f.Grid {
		f.Grid[i] = c.Read(frameStart + uint16(i))
	}
	select {
	case frames <- f:
	default:
	}
}
