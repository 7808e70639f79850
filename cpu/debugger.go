package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// An interactive single-step debugger. Space (or j) executes one
// instruction; the view shows a handful of memory pages, the register
// file, and the decoded record for the instruction about to run.

type model struct {
	cpu     *Cpu
	program string

	offset uint16 // where the program was loaded; also drives the page table
	prevPC uint16
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	if m.program != "" {
		m.cpu.LoadProgram(m.program, m.offset)
		m.cpu.PC = m.offset
	}
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			if m.cpu.Step() != Running {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory. The byte at the current PC
// is highlighted.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.cpu.Read(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Flags.Negative,
		m.cpu.Flags.Overflow,
		false, // bit 5, only exists on the stack
		false, // B, likewise
		m.cpu.Flags.Decimal,
		m.cpu.Flags.DisableInterrupt,
		m.cpu.Flags.Zero,
		m.cpu.Flags.Carry,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
%s
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
CYC: %d
N V _ B D I Z C
`,
		m.cpu.State,
		m.cpu.PC,
		m.prevPC,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
		m.cpu.SP,
		m.cpu.Cycles,
	) + flags
}

func (m model) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	rows := []string{header}

	offsets := []uint16{
		0, 16, 32, 48, 64, // zero page
		0x0100 | uint16(m.cpu.SP)&0xfff0, // stack, around SP
		m.offset,
		m.offset + 16*1,
		m.offset + 16*2,
		m.offset + 16*3,
	}
	for _, i := range offsets {
		rows = append(rows, m.renderPage(i))
	}
	return strings.Join(rows, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		m.cpu.Disassemble(m.cpu.PC),
		spew.Sdump(Decode(m.cpu.Read(m.cpu.PC))),
	)
}

// Debug loads the hex-string program into memory at the given offset, then
// starts an interactive TUI. An empty program leaves memory as the caller
// prepared it (e.g. a mapped ROM).
func (c *Cpu) Debug(program string, offset uint16) error {
	_, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		return err
	}
	return c.Err
}
