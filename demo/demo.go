// Package demo holds a small hand-written 6502 program for cmd/snake to run
// when no ROM file is given on the command line.
package demo

// Snake reads the input byte at $FF and a random byte at $FE on every pass,
// nudges a zero-page cursor forward whenever a key is held, and writes the
// cursor value into the grid at $0200,X before looping back to the top. It
// never executes BRK -- a player only stops it by quitting the front end.
//
// Layout (loaded at $8000, see cpu.LoadProgram):
//
//	$8000  LDA $FE        ; seed A with a fresh random byte
//	$8002  STA $00        ; stash it in the zero-page cursor
//	$8004  LDA $FF        ; A = most recently pressed key
//	$8006  BEQ $800A      ; no key held -> skip the nudge
//	$8008  INC $00        ; key held -> advance the cursor
//	$800A  LDX $00
//	$800C  LDA $00
//	$800E  STA $0200,X    ; paint the grid cell under the cursor
//	$8011  JMP $8000
var Snake = []byte{
	0xA5, 0xFE,
	0x85, 0x00,
	0xA5, 0xFF,
	0xF0, 0x02,
	0xE6, 0x00,
	0xA6, 0x00,
	0xA5, 0x00,
	0x9D, 0x00, 0x02,
	0x4C, 0x00, 0x80,
}
