package cpu

// Per-instruction semantics. Each method assumes operand() has already
// computed c.addr and fetched c.m for the current addressing mode; PC
// still points at the opcode. Within one instruction memory effects happen
// in a fixed order: payload reads, operand read, the (single) RMW write,
// register updates, flag updates, PC.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html
// https://www.masswerk.at/6502/6502_instruction_set.html

import "nesemu/mask"

// A register selects one of the three general-purpose registers for the
// families (load, store, compare, inc/dec, transfer) that are otherwise
// identical across them.
type register int

const (
	regA register = iota
	regX
	regY
)

func (c *Cpu) get(r register) byte {
	switch r {
	case regX:
		return c.X
	case regY:
		return c.Y
	}
	return c.A
}

func (c *Cpu) set(r register, v byte) {
	switch r {
	case regX:
		c.X = v
	case regY:
		c.Y = v
	default:
		c.A = v
	}
}

// setZN updates the two flags that track every 8-bit result: Z if the
// value is zero, N from bit 7.
func (c *Cpu) setZN(v byte) {
	c.Flags.Zero = v == 0
	c.Flags.Negative = mask.Bit(v, 7)
}

// execute dispatches the decoded (operation, mode) pair. A pair without a
// handler faults the core; decode itself never fails.
func (c *Cpu) execute(oc Opcode) {
	switch oc.Op {

	case OpLDA:
		c.load(regA)
	case OpLDX:
		c.load(regX)
	case OpLDY:
		c.load(regY)

	case OpSTA:
		c.store(regA)
	case OpSTX:
		c.store(regX)
	case OpSTY:
		c.store(regY)

	case OpTAX:
		c.transfer(regA, regX)
	case OpTAY:
		c.transfer(regA, regY)
	case OpTXA:
		c.transfer(regX, regA)
	case OpTYA:
		c.transfer(regY, regA)
	case OpTSX:
		c.X = c.SP
		c.setZN(c.X)
	case OpTXS:
		// the one transfer that updates no flags
		c.SP = c.X

	case OpADC:
		c.adc(c.m)
	case OpSBC, OpUSBC:
		c.sbc(c.m)

	case OpAND:
		c.A &= c.m
		c.setZN(c.A)
	case OpORA:
		c.A |= c.m
		c.setZN(c.A)
	case OpEOR:
		c.A ^= c.m
		c.setZN(c.A)

	case OpCMP:
		c.compare(c.A)
	case OpCPX:
		c.compare(c.X)
	case OpCPY:
		c.compare(c.Y)

	case OpBIT:
		c.Flags.Zero = c.A&c.m == 0
		c.Flags.Negative = mask.Bit(c.m, 7)
		c.Flags.Overflow = mask.Bit(c.m, 6)

	case OpINC:
		c.rmw(c.m + 1)
	case OpDEC:
		c.rmw(c.m - 1)
	case OpINX:
		c.bump(regX, 1)
	case OpINY:
		c.bump(regY, 1)
	case OpDEX:
		c.bump(regX, 0xff)
	case OpDEY:
		c.bump(regY, 0xff)

	case OpASL:
		c.asl()
	case OpLSR:
		c.lsr()
	case OpROL:
		c.rol()
	case OpROR:
		c.ror()

	case OpCLC:
		c.Flags.Carry = false
	case OpSEC:
		c.Flags.Carry = true
	case OpCLI:
		c.Flags.DisableInterrupt = false
	case OpSEI:
		c.Flags.DisableInterrupt = true
	case OpCLV:
		c.Flags.Overflow = false
	case OpCLD:
		c.Flags.Decimal = false
	case OpSED:
		c.Flags.Decimal = true

	case OpBPL:
		c.branch(!c.Flags.Negative)
	case OpBMI:
		c.branch(c.Flags.Negative)
	case OpBVC:
		c.branch(!c.Flags.Overflow)
	case OpBVS:
		c.branch(c.Flags.Overflow)
	case OpBCC:
		c.branch(!c.Flags.Carry)
	case OpBCS:
		c.branch(c.Flags.Carry)
	case OpBNE:
		c.branch(!c.Flags.Zero)
	case OpBEQ:
		c.branch(c.Flags.Zero)

	case OpJMP:
		c.setPC(c.addr)
	case OpJSR:
		c.pushWord(c.PC + 2)
		c.setPC(c.addr)
	case OpRTS:
		c.setPC(c.popWord() + 1)
	case OpRTI:
		c.setStatus(c.pop())
		c.setPC(c.popWord())

	case OpPHA:
		c.push(c.A)
	case OpPLA:
		c.A = c.pop()
		c.setZN(c.A)
	case OpPHP:
		c.push(c.status(true))
	case OpPLP:
		c.setStatus(c.pop())

	case OpBRK:
		// the byte after a BRK is padding: the pushed return address
		// skips it
		c.pushWord(c.PC + 2)
		c.push(c.status(true))
		c.Flags.DisableInterrupt = true
		c.setPC(c.ReadWord(IRQVector))

	case OpNOP:
		// the addressing mode still consumes its payload bytes, so the
		// multi-byte aliases advance PC correctly

	// undocumented: compositions of two official operations on the same
	// operand
	case OpSLO: // ASL mem, then ORA
		v := c.shiftLeft(c.m, false)
		c.Flags.Carry = mask.Bit(c.m, 7)
		c.Write(c.addr, v)
		c.A |= v
		c.setZN(c.A)
	case OpRLA: // ROL mem, then AND
		v := c.shiftLeft(c.m, c.Flags.Carry)
		c.Flags.Carry = mask.Bit(c.m, 7)
		c.Write(c.addr, v)
		c.A &= v
		c.setZN(c.A)
	case OpSRE: // LSR mem, then EOR
		v := c.shiftRight(c.m, false)
		c.Flags.Carry = mask.Bit(c.m, 0)
		c.Write(c.addr, v)
		c.A ^= v
		c.setZN(c.A)
	case OpRRA: // ROR mem, then ADC
		v := c.shiftRight(c.m, c.Flags.Carry)
		c.Flags.Carry = mask.Bit(c.m, 0)
		c.Write(c.addr, v)
		c.adc(v)
	case OpDCP: // DEC mem, then CMP
		v := c.m - 1
		c.Write(c.addr, v)
		c.m = v
		c.compare(c.A)
	case OpISC: // INC mem, then SBC
		v := c.m + 1
		c.Write(c.addr, v)
		c.sbc(v)
	case OpLAX: // LDA, then TAX
		c.A = c.m
		c.X = c.m
		c.setZN(c.m)
	case OpSAX:
		c.Write(c.addr, c.A&c.X)

	case OpANC: // AND, with C mirroring N
		c.A &= c.m
		c.setZN(c.A)
		c.Flags.Carry = c.Flags.Negative
	case OpALR: // AND, then LSR A
		c.A &= c.m
		c.Flags.Carry = mask.Bit(c.A, 0)
		c.A >>= 1
		c.setZN(c.A)
	case OpARR: // AND, then ROR A, with C/V from the rotated result
		v := (c.A & c.m) >> 1
		if c.Flags.Carry {
			v = mask.Set(v, 7)
		}
		c.A = v
		c.setZN(c.A)
		c.Flags.Carry = mask.Bit(v, 6)
		c.Flags.Overflow = mask.Bit(v, 6) != mask.Bit(v, 5)
	case OpSBX: // (A AND X) minus operand, into X
		t := c.A & c.X
		c.Flags.Carry = t >= c.m
		c.X = t - c.m
		c.setZN(c.X)
	case OpLAS:
		v := c.m & c.SP
		c.A = v
		c.X = v
		c.SP = v
		c.setZN(v)

	// unstable: common-case formulas only
	// https://www.nesdev.org/wiki/Programming_with_unofficial_opcodes
	case OpLXA:
		v := (c.A | 0xee) & c.m
		c.A = v
		c.X = v
		c.setZN(v)
	case OpANE:
		c.A = (c.A | 0xee) & c.X & c.m
		c.setZN(c.A)
	case OpTAS:
		c.SP = c.A & c.X
		c.Write(c.addr, c.A&c.X&(mask.HiByte(c.addr)+1))
	case OpSHA:
		c.Write(c.addr, c.A&c.X&(mask.HiByte(c.addr)+1))
	case OpSHX:
		c.Write(c.addr, c.X&(mask.HiByte(c.addr)+1))
	case OpSHY:
		c.Write(c.addr, c.Y&(mask.HiByte(c.addr)+1))

	default:
		c.fault()
	}
}

func (c *Cpu) load(r register) {
	c.set(r, c.m)
	c.setZN(c.m)
}

func (c *Cpu) store(r register) {
	c.Write(c.addr, c.get(r))
}

func (c *Cpu) transfer(src, dst register) {
	v := c.get(src)
	c.set(dst, v)
	c.setZN(v)
}

// adc adds the operand and the carry into A. Binary mode only: the 2A03
// ignores the decimal flag. V is set when both inputs share a sign that
// the result does not.
func (c *Cpu) adc(v byte) {
	var carry uint16
	if c.Flags.Carry {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	r := byte(sum)
	c.Flags.Carry = sum > 0xff
	c.Flags.Overflow = (c.A^v)&0x80 == 0 && (c.A^r)&0x80 != 0
	c.A = r
	c.setZN(r)
}

// sbc is ADC of the operand's complement; the hardware borrow is the
// inverse of the carry.
func (c *Cpu) sbc(v byte) {
	c.adc(v ^ 0xff)
}

// compare computes reg - operand without storing it. C means no borrow
// (reg >= operand); N comes from bit 7 of the mod-256 difference.
func (c *Cpu) compare(reg byte) {
	c.Flags.Carry = reg >= c.m
	c.Flags.Zero = reg == c.m
	c.Flags.Negative = mask.Bit(reg-c.m, 7)
}

// rmw writes the modified value back to the instruction's single memory
// target and updates Z/N from it.
func (c *Cpu) rmw(v byte) {
	c.Write(c.addr, v)
	c.setZN(v)
}

// bump adds delta (mod 256) to a register and updates Z/N.
func (c *Cpu) bump(r register, delta byte) {
	v := c.get(r) + delta
	c.set(r, v)
	c.setZN(v)
}

// writeTarget stores a shift or rotate result in A (accumulator mode) or
// back to the addressed memory byte.
func (c *Cpu) writeTarget(v byte) {
	if c.Current.Mode == Accumulator {
		c.A = v
	} else {
		c.Write(c.addr, v)
	}
	c.setZN(v)
}

func (c *Cpu) shiftLeft(v byte, carryIn bool) byte {
	r := v << 1
	if carryIn {
		r = mask.Set(r, 0)
	}
	return r
}

func (c *Cpu) shiftRight(v byte, carryIn bool) byte {
	r := v >> 1
	if carryIn {
		r = mask.Set(r, 7)
	}
	return r
}

func (c *Cpu) asl() {
	c.Flags.Carry = mask.Bit(c.m, 7) // old bit 7
	c.writeTarget(c.shiftLeft(c.m, false))
}

func (c *Cpu) lsr() {
	c.Flags.Carry = mask.Bit(c.m, 0) // old bit 0
	c.writeTarget(c.shiftRight(c.m, false))
}

func (c *Cpu) rol() {
	carryIn := c.Flags.Carry
	c.Flags.Carry = mask.Bit(c.m, 7)
	c.writeTarget(c.shiftLeft(c.m, carryIn))
}

func (c *Cpu) ror() {
	carryIn := c.Flags.Carry
	c.Flags.Carry = mask.Bit(c.m, 0)
	c.writeTarget(c.shiftRight(c.m, carryIn))
}

// branch applies the signed relative offset to the post-instruction PC
// when cond holds. A taken branch costs one extra cycle, and one more when
// the target sits on a different page than the next instruction.
func (c *Cpu) branch(cond bool) {
	if !cond {
		return // fall through to the normal 2-byte increment
	}
	next := c.PC + 2
	target := next + uint16(int8(c.m))
	c.Cycles++
	if !mask.SamePage(next, target) {
		c.Cycles++
	}
	c.setPC(target)
}
