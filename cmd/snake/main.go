// Command snake runs or single-steps a 6502 program, either from a ROM file
// or the built-in demo, through a bubbletea front end.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/urfave/cli.v2"

	"sixfiveohtwo/cpu"
	"sixfiveohtwo/demo"
	"sixfiveohtwo/host"
)

const gridSide = 32 // 32x32 cells over the 1024-byte window at $0200

var (
	cellOn  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cellOff = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
)

func main() {
	app := &cli.App{
		Name:  "snake",
		Usage: "run or single-step a 6502 program",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to a ROM file; falls back to the built-in demo program",
			},
			&cli.StringFlag{
				Name:    "base",
				Aliases: []string{"b"},
				Usage:   "program counter at load, in hex",
				Value:   "8000",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "single-step the program instead of running it interactively",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	program, err := loadProgram(c.String("rom"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	base, err := strconv.ParseUint(c.String("base"), 16, 16)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --base %q: %v", c.String("base"), err), 1)
	}

	cp := cpu.New()

	if c.Bool("debug") {
		cp.Debug(program, uint16(base))
		return nil
	}

	cp.LoadProgram(program)
	cp.Reset()
	cp.ProgramCounter = uint16(base)
	return runInteractive(cp)
}

func loadProgram(path string) ([]byte, error) {
	if path == "" {
		return demo.Snake, nil
	}
	return os.ReadFile(path)
}

// runInteractive starts the Cpu on its own goroutine wired to a bubbletea UI
// over host's non-blocking channels, and blocks until the UI exits or the
// Cpu halts.
func runInteractive(c *cpu.Cpu) error {
	input := make(chan byte, 1)
	frames := make(chan host.Frame, 1)
	done := make(chan struct{})

	go func() {
		if err := host.Run(c, input, frames, done); err != nil {
			fmt.Fprintln(os.Stderr, "cpu halted with error:", err)
		}
	}()

	_, err := tea.NewProgram(uiModel{input: input, frames: frames, done: done}).Run()
	return err
}

type frameMsg host.Frame

type gameOverMsg struct{}

func waitForFrame(frames <-chan host.Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return gameOverMsg{}
		}
		return frameMsg(f)
	}
}

func waitForDone(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return gameOverMsg{}
	}
}

type uiModel struct {
	input  chan<- byte
	frames <-chan host.Frame
	done   <-chan struct{}

	frame host.Frame
	over  bool
}

func (m uiModel) Init() tea.Cmd {
	return tea.Batch(waitForFrame(m.frames), waitForDone(m.done))
}

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "w":
			m.press(0x77)
		case "a":
			m.press(0x61)
		case "s":
			m.press(0x73)
		case "d":
			m.press(0x64)
		}
		return m, nil

	case frameMsg:
		m.frame = host.Frame(msg)
		return m, waitForFrame(m.frames)

	case gameOverMsg:
		m.over = true
		return m, tea.Quit
	}
	return m, nil
}

// press forwards a WASD key code to the Cpu's input cell, dropping it rather
// than blocking if the Cpu hasn't drained the previous keypress yet.
func (m uiModel) press(b byte) {
	select {
	case m.input <- b:
	default:
	}
}

func (m uiModel) View() string {
	if m.over {
		return fmt.Sprintf("game over -- A=%02x X=%02x Y=%02x PC=%04x\n",
			m.frame.A, m.frame.X, m.frame.Y, m.frame.PC)
	}

	var b strings.Builder
	for y := 0; y < gridSide; y++ {
		for x := 0; x < gridSide; x++ {
			if m.frame.Grid[y*gridSide+x] != 0 {
				b.WriteString(cellOn.Render("#"))
			} else {
				b.WriteString(cellOff.Render("."))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("A=%02x X=%02x Y=%02x PC=%04x  (wasd to move, q to quit)\n",
		m.frame.A, m.frame.X, m.frame.Y, m.frame.PC))
	return b.String()
}
