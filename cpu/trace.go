package cpu

// Diagnostic trace in the style of the published nestest logs, useful for
// differential testing against a known-good emulator. Not part of the
// core's semantic contract; Step emits one line per instruction when
// c.Trace is set.

import (
	"fmt"
	"strings"

	"nesemu/mask"
)

// Disassemble renders the instruction at addr as one line of assembly,
// e.g. "LDA #$50" or "STA ($10),Y". Every decodable byte renders; jam
// encodings and unmapped bytes show their sentinel mnemonic.
func (c *Cpu) Disassemble(addr uint16) string {
	oc := Decode(c.Read(addr))
	name := oc.Op.String()

	b1 := c.Read(addr + 1)
	b2 := c.Read(addr + 2)

	switch oc.Mode {
	case Implied:
		return name
	case Accumulator:
		return name + " A"
	case Immediate:
		return fmt.Sprintf("%s #$%02X", name, b1)
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", name, b1)
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", name, b1)
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", name, b1)
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", name, b1)
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", name, b1)
	case Relative:
		// show the resolved target rather than the raw offset
		target := addr + 2 + uint16(int8(b1))
		return fmt.Sprintf("%s $%04X", name, target)
	case Absolute:
		return fmt.Sprintf("%s $%04X", name, mask.Word(b2, b1))
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", name, mask.Word(b2, b1))
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", name, mask.Word(b2, b1))
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", name, mask.Word(b2, b1))
	}
	return name
}

// TraceLine formats the instruction about to execute at PC together with
// the pre-execution register state:
//
//	8000  A9 50     LDA #$50        A:00 X:00 Y:00 P:24 SP:FD CYC:0
func (c *Cpu) TraceLine() string {
	oc := Decode(c.Read(c.PC))

	raw := make([]string, 0, 3)
	for i := uint16(0); i < oc.Mode.Increment(); i++ {
		raw = append(raw, fmt.Sprintf("%02X", c.Read(c.PC+i)))
	}

	return fmt.Sprintf("%04X  %-8s  %-15s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		c.PC,
		strings.Join(raw, " "),
		c.Disassemble(c.PC),
		c.A, c.X, c.Y,
		c.status(false),
		c.SP,
		c.Cycles,
	)
}
