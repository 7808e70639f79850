package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nesemu/mem"
)

func TestDisassemble(t *testing.T) {
	c := &Cpu{Bus: &mem.Bus{}}
	for _, tc := range []struct {
		program string
		want    string
	}{
		{"A9 50", "LDA #$50"},
		{"85 10", "STA $10"},
		{"B5 10", "LDA $10,X"},
		{"B6 10", "LDX $10,Y"},
		{"AD 34 12", "LDA $1234"},
		{"BD 34 12", "LDA $1234,X"},
		{"B9 34 12", "LDA $1234,Y"},
		{"6C 34 12", "JMP ($1234)"},
		{"A1 10", "LDA ($10,X)"},
		{"B1 10", "LDA ($10),Y"},
		{"0A", "ASL A"},
		{"EA", "NOP"},
		{"90 20", "BCC $8022"},
		{"F0 FA", "BEQ $7FFC"},
		{"02", "JAM"},
		{"A7 10", "LAX $10"},
	} {
		c.LoadProgram(tc.program, 0x8000)
		assert.Equal(t, tc.want, c.Disassemble(0x8000), "program %q", tc.program)
	}
}

func TestTraceLine(t *testing.T) {
	c := &Cpu{Bus: &mem.Bus{}}
	c.Write(0xfffc, 0x00)
	c.Write(0xfffd, 0x80)
	c.Reset()
	c.LoadProgram("A9 50", 0x8000)

	assert.Equal(t,
		"8000  A9 50     LDA #$50        A:00 X:00 Y:00 P:24 SP:FD CYC:0",
		c.TraceLine())
}

func TestStepEmitsTrace(t *testing.T) {
	c := &Cpu{Bus: &mem.Bus{}}
	c.Write(0xfffc, 0x00)
	c.Write(0xfffd, 0x80)
	c.Reset()
	c.LoadProgram("A9 50 85 10", 0x8000)

	var buf bytes.Buffer
	c.Trace = &buf
	require.Equal(t, Running, c.Step())
	require.Equal(t, Running, c.Step())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "8000  A9 50"), "got %q", lines[0])
	assert.Contains(t, lines[0], "LDA #$50")
	assert.True(t, strings.HasPrefix(lines[1], "8002  85 10"), "got %q", lines[1])
	assert.Contains(t, lines[1], "STA $10")
	assert.Contains(t, lines[1], "A:50")
	assert.Contains(t, lines[1], "CYC:2")
}
