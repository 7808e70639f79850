package cpu

// An Operation names what an instruction does, independent of how its
// operand is addressed. The 56 official operations are joined by the
// undocumented ones that real hardware nonetheless executes, plus two
// sentinels: OpJAM (a legal halt encoding) and OpMissing (a byte the
// decoder has no mapping for).
type Operation int

const (
	OpMissing Operation = iota
	OpJAM

	OpADC
	OpAND
	OpASL
	OpBCC
	OpBCS
	OpBEQ
	OpBIT
	OpBMI
	OpBNE
	OpBPL
	OpBRK
	OpBVC
	OpBVS
	OpCLC
	OpCLD
	OpCLI
	OpCLV
	OpCMP
	OpCPX
	OpCPY
	OpDEC
	OpDEX
	OpDEY
	OpEOR
	OpINC
	OpINX
	OpINY
	OpJMP
	OpJSR
	OpLDA
	OpLDX
	OpLDY
	OpLSR
	OpNOP
	OpORA
	OpPHA
	OpPHP
	OpPLA
	OpPLP
	OpROL
	OpROR
	OpRTI
	OpRTS
	OpSBC
	OpSEC
	OpSED
	OpSEI
	OpSTA
	OpSTX
	OpSTY
	OpTAX
	OpTAY
	OpTSX
	OpTXA
	OpTXS
	OpTYA

	// undocumented
	OpSLO
	OpRLA
	OpSRE
	OpRRA
	OpLAX
	OpSAX
	OpDCP
	OpISC
	OpANC
	OpALR
	OpARR
	OpSBX
	OpUSBC
	OpLAS
	OpLXA
	OpANE
	OpTAS
	OpSHA
	OpSHX
	OpSHY
)

var opNames = map[Operation]string{
	OpMissing: "???",
	OpJAM:     "JAM",
	OpADC:     "ADC", OpAND: "AND", OpASL: "ASL", OpBCC: "BCC", OpBCS: "BCS",
	OpBEQ: "BEQ", OpBIT: "BIT", OpBMI: "BMI", OpBNE: "BNE", OpBPL: "BPL",
	OpBRK: "BRK", OpBVC: "BVC", OpBVS: "BVS", OpCLC: "CLC", OpCLD: "CLD",
	OpCLI: "CLI", OpCLV: "CLV", OpCMP: "CMP", OpCPX: "CPX", OpCPY: "CPY",
	OpDEC: "DEC", OpDEX: "DEX", OpDEY: "DEY", OpEOR: "EOR", OpINC: "INC",
	OpINX: "INX", OpINY: "INY", OpJMP: "JMP", OpJSR: "JSR", OpLDA: "LDA",
	OpLDX: "LDX", OpLDY: "LDY", OpLSR: "LSR", OpNOP: "NOP", OpORA: "ORA",
	OpPHA: "PHA", OpPHP: "PHP", OpPLA: "PLA", OpPLP: "PLP", OpROL: "ROL",
	OpROR: "ROR", OpRTI: "RTI", OpRTS: "RTS", OpSBC: "SBC", OpSEC: "SEC",
	OpSED: "SED", OpSEI: "SEI", OpSTA: "STA", OpSTX: "STX", OpSTY: "STY",
	OpTAX: "TAX", OpTAY: "TAY", OpTSX: "TSX", OpTXA: "TXA", OpTXS: "TXS",
	OpTYA: "TYA",
	OpSLO: "SLO", OpRLA: "RLA", OpSRE: "SRE", OpRRA: "RRA", OpLAX: "LAX",
	OpSAX: "SAX", OpDCP: "DCP", OpISC: "ISC", OpANC: "ANC", OpALR: "ALR",
	OpARR: "ARR", OpSBX: "SBX", OpUSBC: "USBC", OpLAS: "LAS", OpLXA: "LXA",
	OpANE: "ANE", OpTAS: "TAS", OpSHA: "SHA", OpSHX: "SHX", OpSHY: "SHY",
}

func (o Operation) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "???"
}

// An AddressingMode tells the Cpu where to find an instruction's operand.
// There are 13 possible modes.
//
// Most instructions can index the full 64 kB range of memory, that is, 256
// pages of 256 bytes. The exception is ZeroPage (and its indexed variants),
// which is confined to the first page of 256 bytes.
type AddressingMode int

// https://www.nesdev.org/wiki/CPU_addressing_modes
// https://www.middle-engine.com/blog/posts/2020/06/23/programming-the-nes-the-6502-in-detail#addressing-modes

const (
	Implied     AddressingMode = iota // no operand
	Accumulator                       // operand is A itself

	Immediate // operand is the byte after the opcode
	ZeroPage  // 0x0000-0x00ff
	ZeroPageX
	ZeroPageY // LDX, STX, and the undocumented LAX, SAX
	IndirectX // pointer in zero page, indexed before the indirection
	IndirectY // pointer in zero page, indexed after the indirection
	Relative  // signed offset, branches only

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect // JMP only
)

var modeNames = map[AddressingMode]string{
	Implied:     "imp",
	Accumulator: "acc",
	Immediate:   "imm",
	ZeroPage:    "zp",
	ZeroPageX:   "zp,x",
	ZeroPageY:   "zp,y",
	IndirectX:   "(zp,x)",
	IndirectY:   "(zp),y",
	Relative:    "rel",
	Absolute:    "abs",
	AbsoluteX:   "abs,x",
	AbsoluteY:   "abs,y",
	Indirect:    "(ind)",
}

func (m AddressingMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "?"
}

// Increment returns the number of bytes the instruction occupies: the
// opcode plus its operand payload. The Cpu advances PC by this amount after
// executing, unless the instruction set PC explicitly.
func (m AddressingMode) Increment() uint16 {
	switch m {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY,
		IndirectX, IndirectY, Relative:
		return 2
	}
	// Absolute, AbsoluteX, AbsoluteY, Indirect
	return 3
}

// An Opcode pairs an Operation with the AddressingMode a particular byte
// encoding selects, plus the base number of clock cycles the instruction
// takes. Page-cross and branch-taken penalties are added by the Cpu on top.
type Opcode struct {
	Op     Operation
	Mode   AddressingMode
	Cycles byte
}

// Opcodes maps every byte value 0x00-0xff to its Opcode. All 256 encodings
// are present: 151 official ones, the undocumented set, the multi-byte NOP
// aliases, and the twelve jam encodings.
var Opcodes = map[byte]Opcode{
	// Generated against http://www.6502.org/tutorials/6502opcodes.html and
	// https://www.nesdev.org/wiki/CPU_unofficial_opcodes

	0x69: {OpADC, Immediate, 2},
	0x65: {OpADC, ZeroPage, 3},
	0x75: {OpADC, ZeroPageX, 4},
	0x6D: {OpADC, Absolute, 4},
	0x7D: {OpADC, AbsoluteX, 4},
	0x79: {OpADC, AbsoluteY, 4},
	0x61: {OpADC, IndirectX, 6},
	0x71: {OpADC, IndirectY, 5},

	0x29: {OpAND, Immediate, 2},
	0x25: {OpAND, ZeroPage, 3},
	0x35: {OpAND, ZeroPageX, 4},
	0x2D: {OpAND, Absolute, 4},
	0x3D: {OpAND, AbsoluteX, 4},
	0x39: {OpAND, AbsoluteY, 4},
	0x21: {OpAND, IndirectX, 6},
	0x31: {OpAND, IndirectY, 5},

	0x0A: {OpASL, Accumulator, 2},
	0x06: {OpASL, ZeroPage, 5},
	0x16: {OpASL, ZeroPageX, 6},
	0x0E: {OpASL, Absolute, 6},
	0x1E: {OpASL, AbsoluteX, 7},

	0x24: {OpBIT, ZeroPage, 3},
	0x2C: {OpBIT, Absolute, 4},

	0x00: {OpBRK, Implied, 7},

	0xC9: {OpCMP, Immediate, 2},
	0xC5: {OpCMP, ZeroPage, 3},
	0xD5: {OpCMP, ZeroPageX, 4},
	0xCD: {OpCMP, Absolute, 4},
	0xDD: {OpCMP, AbsoluteX, 4},
	0xD9: {OpCMP, AbsoluteY, 4},
	0xC1: {OpCMP, IndirectX, 6},
	0xD1: {OpCMP, IndirectY, 5},

	0xE0: {OpCPX, Immediate, 2},
	0xE4: {OpCPX, ZeroPage, 3},
	0xEC: {OpCPX, Absolute, 4},

	0xC0: {OpCPY, Immediate, 2},
	0xC4: {OpCPY, ZeroPage, 3},
	0xCC: {OpCPY, Absolute, 4},

	0xC6: {OpDEC, ZeroPage, 5},
	0xD6: {OpDEC, ZeroPageX, 6},
	0xCE: {OpDEC, Absolute, 6},
	0xDE: {OpDEC, AbsoluteX, 7},

	0x49: {OpEOR, Immediate, 2},
	0x45: {OpEOR, ZeroPage, 3},
	0x55: {OpEOR, ZeroPageX, 4},
	0x4D: {OpEOR, Absolute, 4},
	0x5D: {OpEOR, AbsoluteX, 4},
	0x59: {OpEOR, AbsoluteY, 4},
	0x41: {OpEOR, IndirectX, 6},
	0x51: {OpEOR, IndirectY, 5},

	0xE6: {OpINC, ZeroPage, 5},
	0xF6: {OpINC, ZeroPageX, 6},
	0xEE: {OpINC, Absolute, 6},
	0xFE: {OpINC, AbsoluteX, 7},

	0x4C: {OpJMP, Absolute, 3},
	0x6C: {OpJMP, Indirect, 5},

	0x20: {OpJSR, Absolute, 6},

	0xA9: {OpLDA, Immediate, 2},
	0xA5: {OpLDA, ZeroPage, 3},
	0xB5: {OpLDA, ZeroPageX, 4},
	0xAD: {OpLDA, Absolute, 4},
	0xBD: {OpLDA, AbsoluteX, 4},
	0xB9: {OpLDA, AbsoluteY, 4},
	0xA1: {OpLDA, IndirectX, 6},
	0xB1: {OpLDA, IndirectY, 5},

	0xA2: {OpLDX, Immediate, 2},
	0xA6: {OpLDX, ZeroPage, 3},
	0xB6: {OpLDX, ZeroPageY, 4},
	0xAE: {OpLDX, Absolute, 4},
	0xBE: {OpLDX, AbsoluteY, 4},

	0xA0: {OpLDY, Immediate, 2},
	0xA4: {OpLDY, ZeroPage, 3},
	0xB4: {OpLDY, ZeroPageX, 4},
	0xAC: {OpLDY, Absolute, 4},
	0xBC: {OpLDY, AbsoluteX, 4},

	0x4A: {OpLSR, Accumulator, 2},
	0x46: {OpLSR, ZeroPage, 5},
	0x56: {OpLSR, ZeroPageX, 6},
	0x4E: {OpLSR, Absolute, 6},
	0x5E: {OpLSR, AbsoluteX, 7},

	0xEA: {OpNOP, Implied, 2},

	0x09: {OpORA, Immediate, 2},
	0x05: {OpORA, ZeroPage, 3},
	0x15: {OpORA, ZeroPageX, 4},
	0x0D: {OpORA, Absolute, 4},
	0x1D: {OpORA, AbsoluteX, 4},
	0x19: {OpORA, AbsoluteY, 4},
	0x01: {OpORA, IndirectX, 6},
	0x11: {OpORA, IndirectY, 5},

	0x2A: {OpROL, Accumulator, 2},
	0x26: {OpROL, ZeroPage, 5},
	0x36: {OpROL, ZeroPageX, 6},
	0x2E: {OpROL, Absolute, 6},
	0x3E: {OpROL, AbsoluteX, 7},

	0x6A: {OpROR, Accumulator, 2},
	0x66: {OpROR, ZeroPage, 5},
	0x76: {OpROR, ZeroPageX, 6},
	0x6E: {OpROR, Absolute, 6},
	0x7E: {OpROR, AbsoluteX, 7},

	0x40: {OpRTI, Implied, 6},
	0x60: {OpRTS, Implied, 6},

	0xE9: {OpSBC, Immediate, 2},
	0xE5: {OpSBC, ZeroPage, 3},
	0xF5: {OpSBC, ZeroPageX, 4},
	0xED: {OpSBC, Absolute, 4},
	0xFD: {OpSBC, AbsoluteX, 4},
	0xF9: {OpSBC, AbsoluteY, 4},
	0xE1: {OpSBC, IndirectX, 6},
	0xF1: {OpSBC, IndirectY, 5},

	0x85: {OpSTA, ZeroPage, 3},
	0x95: {OpSTA, ZeroPageX, 4},
	0x8D: {OpSTA, Absolute, 4},
	0x9D: {OpSTA, AbsoluteX, 5},
	0x99: {OpSTA, AbsoluteY, 5},
	0x81: {OpSTA, IndirectX, 6},
	0x91: {OpSTA, IndirectY, 6},

	0x86: {OpSTX, ZeroPage, 3},
	0x96: {OpSTX, ZeroPageY, 4},
	0x8E: {OpSTX, Absolute, 4},

	0x84: {OpSTY, ZeroPage, 3},
	0x94: {OpSTY, ZeroPageX, 4},
	0x8C: {OpSTY, Absolute, 4},

	// clear, set
	0x18: {OpCLC, Implied, 2},
	0x38: {OpSEC, Implied, 2},
	0x58: {OpCLI, Implied, 2},
	0x78: {OpSEI, Implied, 2},
	0xB8: {OpCLV, Implied, 2},
	0xD8: {OpCLD, Implied, 2},
	0xF8: {OpSED, Implied, 2},

	// increment, decrement, transfer
	0xAA: {OpTAX, Implied, 2},
	0x8A: {OpTXA, Implied, 2},
	0xCA: {OpDEX, Implied, 2},
	0xE8: {OpINX, Implied, 2},
	0xA8: {OpTAY, Implied, 2},
	0x98: {OpTYA, Implied, 2},
	0x88: {OpDEY, Implied, 2},
	0xC8: {OpINY, Implied, 2},

	// branch
	0x10: {OpBPL, Relative, 2},
	0x30: {OpBMI, Relative, 2},
	0x50: {OpBVC, Relative, 2},
	0x70: {OpBVS, Relative, 2},
	0x90: {OpBCC, Relative, 2},
	0xB0: {OpBCS, Relative, 2},
	0xD0: {OpBNE, Relative, 2},
	0xF0: {OpBEQ, Relative, 2},

	// stack
	0x9A: {OpTXS, Implied, 2},
	0xBA: {OpTSX, Implied, 2},
	0x48: {OpPHA, Implied, 3},
	0x68: {OpPLA, Implied, 4},
	0x08: {OpPHP, Implied, 3},
	0x28: {OpPLP, Implied, 4},

	// undocumented read-modify-write compositions
	0x07: {OpSLO, ZeroPage, 5},
	0x17: {OpSLO, ZeroPageX, 6},
	0x0F: {OpSLO, Absolute, 6},
	0x1F: {OpSLO, AbsoluteX, 7},
	0x1B: {OpSLO, AbsoluteY, 7},
	0x03: {OpSLO, IndirectX, 8},
	0x13: {OpSLO, IndirectY, 8},

	0x27: {OpRLA, ZeroPage, 5},
	0x37: {OpRLA, ZeroPageX, 6},
	0x2F: {OpRLA, Absolute, 6},
	0x3F: {OpRLA, AbsoluteX, 7},
	0x3B: {OpRLA, AbsoluteY, 7},
	0x23: {OpRLA, IndirectX, 8},
	0x33: {OpRLA, IndirectY, 8},

	0x47: {OpSRE, ZeroPage, 5},
	0x57: {OpSRE, ZeroPageX, 6},
	0x4F: {OpSRE, Absolute, 6},
	0x5F: {OpSRE, AbsoluteX, 7},
	0x5B: {OpSRE, AbsoluteY, 7},
	0x43: {OpSRE, IndirectX, 8},
	0x53: {OpSRE, IndirectY, 8},

	0x67: {OpRRA, ZeroPage, 5},
	0x77: {OpRRA, ZeroPageX, 6},
	0x6F: {OpRRA, Absolute, 6},
	0x7F: {OpRRA, AbsoluteX, 7},
	0x7B: {OpRRA, AbsoluteY, 7},
	0x63: {OpRRA, IndirectX, 8},
	0x73: {OpRRA, IndirectY, 8},

	0xC7: {OpDCP, ZeroPage, 5},
	0xD7: {OpDCP, ZeroPageX, 6},
	0xCF: {OpDCP, Absolute, 6},
	0xDF: {OpDCP, AbsoluteX, 7},
	0xDB: {OpDCP, AbsoluteY, 7},
	0xC3: {OpDCP, IndirectX, 8},
	0xD3: {OpDCP, IndirectY, 8},

	0xE7: {OpISC, ZeroPage, 5},
	0xF7: {OpISC, ZeroPageX, 6},
	0xEF: {OpISC, Absolute, 6},
	0xFF: {OpISC, AbsoluteX, 7},
	0xFB: {OpISC, AbsoluteY, 7},
	0xE3: {OpISC, IndirectX, 8},
	0xF3: {OpISC, IndirectY, 8},

	// undocumented loads and stores
	0xA7: {OpLAX, ZeroPage, 3},
	0xB7: {OpLAX, ZeroPageY, 4},
	0xAF: {OpLAX, Absolute, 4},
	0xBF: {OpLAX, AbsoluteY, 4},
	0xA3: {OpLAX, IndirectX, 6},
	0xB3: {OpLAX, IndirectY, 5},

	0x87: {OpSAX, ZeroPage, 3},
	0x97: {OpSAX, ZeroPageY, 4},
	0x8F: {OpSAX, Absolute, 4},
	0x83: {OpSAX, IndirectX, 6},

	// undocumented immediate-mode ALU combinations
	0x0B: {OpANC, Immediate, 2},
	0x2B: {OpANC, Immediate, 2}, // effectively the same as 0x0B
	0x4B: {OpALR, Immediate, 2},
	0x6B: {OpARR, Immediate, 2},
	0x8B: {OpANE, Immediate, 2},
	0xAB: {OpLXA, Immediate, 2},
	0xCB: {OpSBX, Immediate, 2},
	0xEB: {OpUSBC, Immediate, 2},

	// unstable high-byte stores
	0x9B: {OpTAS, AbsoluteY, 5},
	0x9F: {OpSHA, AbsoluteY, 5},
	0x93: {OpSHA, IndirectY, 6},
	0x9E: {OpSHX, AbsoluteY, 5},
	0x9C: {OpSHY, AbsoluteX, 5},

	0xBB: {OpLAS, AbsoluteY, 4},

	// NOP aliases, one to three bytes wide
	0x1A: {OpNOP, Implied, 2},
	0x3A: {OpNOP, Implied, 2},
	0x5A: {OpNOP, Implied, 2},
	0x7A: {OpNOP, Implied, 2},
	0xDA: {OpNOP, Implied, 2},
	0xFA: {OpNOP, Implied, 2},

	0x80: {OpNOP, Immediate, 2},
	0x82: {OpNOP, Immediate, 2},
	0x89: {OpNOP, Immediate, 2},
	0xC2: {OpNOP, Immediate, 2},
	0xE2: {OpNOP, Immediate, 2},

	0x04: {OpNOP, ZeroPage, 3},
	0x44: {OpNOP, ZeroPage, 3},
	0x64: {OpNOP, ZeroPage, 3},

	0x14: {OpNOP, ZeroPageX, 4},
	0x34: {OpNOP, ZeroPageX, 4},
	0x54: {OpNOP, ZeroPageX, 4},
	0x74: {OpNOP, ZeroPageX, 4},
	0xD4: {OpNOP, ZeroPageX, 4},
	0xF4: {OpNOP, ZeroPageX, 4},

	0x0C: {OpNOP, Absolute, 4},

	0x1C: {OpNOP, AbsoluteX, 4},
	0x3C: {OpNOP, AbsoluteX, 4},
	0x5C: {OpNOP, AbsoluteX, 4},
	0x7C: {OpNOP, AbsoluteX, 4},
	0xDC: {OpNOP, AbsoluteX, 4},
	0xFC: {OpNOP, AbsoluteX, 4},

	// jam
	0x02: {OpJAM, Implied, 2},
	0x12: {OpJAM, Implied, 2},
	0x22: {OpJAM, Implied, 2},
	0x32: {OpJAM, Implied, 2},
	0x42: {OpJAM, Implied, 2},
	0x52: {OpJAM, Implied, 2},
	0x62: {OpJAM, Implied, 2},
	0x72: {OpJAM, Implied, 2},
	0x92: {OpJAM, Implied, 2},
	0xB2: {OpJAM, Implied, 2},
	0xD2: {OpJAM, Implied, 2},
	0xF2: {OpJAM, Implied, 2},
}

// JamByte is the sentinel returned by Encode for pairs that have no byte
// encoding. Decoding it yields OpJAM, so a program assembled from an
// unsupported pair halts instead of running off into garbage.
const JamByte = 0x02

// Decode returns the Opcode a 6502 would execute for byte b. Decoding is
// total and pure: every byte maps to exactly one pair, with OpMissing as
// the fallback for bytes absent from the table.
func Decode(b byte) Opcode {
	oc, ok := Opcodes[b]
	if !ok {
		return Opcode{Op: OpMissing, Mode: Implied}
	}
	return oc
}

type opMode struct {
	op   Operation
	mode AddressingMode
}

// encodings is the inverse of Opcodes. Where several bytes share a pair
// (the NOP aliases, ANC, the jam encodings) the lowest byte is canonical,
// so Decode(Encode(op, mode)) recovers (op, mode) for every pair in the
// table.
var encodings = func() map[opMode]byte {
	enc := make(map[opMode]byte, len(Opcodes))
	for i := 0; i < 256; i++ {
		oc, ok := Opcodes[byte(i)]
		if !ok {
			continue
		}
		k := opMode{oc.Op, oc.Mode}
		if _, seen := enc[k]; !seen {
			enc[k] = byte(i)
		}
	}
	return enc
}()

// Encode returns the canonical byte encoding for (op, mode), or JamByte if
// the pair has none.
func Encode(op Operation, mode AddressingMode) byte {
	if b, ok := encodings[opMode{op, mode}]; ok {
		return b
	}
	return JamByte
}
