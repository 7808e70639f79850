package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeIsTotal(t *testing.T) {
	// every byte value decodes to a defined pair; nothing panics, nothing
	// is missing
	assert.Len(t, Opcodes, 256)
	for b := 0; b < 256; b++ {
		oc := Decode(byte(b))
		assert.NotEqual(t, OpMissing, oc.Op, "byte 0x%02X", b)
		assert.NotZero(t, oc.Cycles, "byte 0x%02X", b)
	}
}

func TestDecodeKnownBytes(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		op   Operation
		mode AddressingMode
	}{
		{0xa9, OpLDA, Immediate},
		{0x6c, OpJMP, Indirect},
		{0x91, OpSTA, IndirectY},
		{0xb6, OpLDX, ZeroPageY},
		{0x00, OpBRK, Implied},
		{0x0a, OpASL, Accumulator},
		{0x90, OpBCC, Relative},
		{0xeb, OpUSBC, Immediate},
		{0xa7, OpLAX, ZeroPage},
		{0x9b, OpTAS, AbsoluteY},
		{0x02, OpJAM, Implied},
		{0xf2, OpJAM, Implied},
		{0xfc, OpNOP, AbsoluteX},
	} {
		oc := Decode(tc.b)
		assert.Equal(t, tc.op, oc.Op, "byte 0x%02X", tc.b)
		assert.Equal(t, tc.mode, oc.Mode, "byte 0x%02X", tc.b)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	// encoding any pair used by the decoder and decoding the result must
	// recover the pair
	for b := 0; b < 256; b++ {
		oc := Decode(byte(b))
		enc := Encode(oc.Op, oc.Mode)
		back := Decode(enc)
		assert.Equal(t, oc.Op, back.Op, "byte 0x%02X via 0x%02X", b, enc)
		assert.Equal(t, oc.Mode, back.Mode, "byte 0x%02X via 0x%02X", b, enc)
	}

	// pairs with a unique encoding round-trip to the same byte
	assert.Equal(t, byte(0xa9), Encode(OpLDA, Immediate))
	assert.Equal(t, byte(0x20), Encode(OpJSR, Absolute))
}

func TestEncodeUnusedPair(t *testing.T) {
	// pairs the 6502 cannot encode map to the jam sentinel
	assert.Equal(t, byte(JamByte), Encode(OpLDA, Implied))
	assert.Equal(t, byte(JamByte), Encode(OpJSR, Immediate))
	assert.Equal(t, OpJAM, Decode(JamByte).Op)
}

func TestJamEncodings(t *testing.T) {
	jams := []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2}
	for _, b := range jams {
		assert.Equal(t, OpJAM, Decode(b).Op, "byte 0x%02X", b)
	}
}

func TestNopAliases(t *testing.T) {
	// multi-byte NOPs must report the right width so PC advances past
	// their payload
	for b, want := range map[byte]uint16{
		0xea: 1, 0x1a: 1,
		0x80: 2, 0x04: 2, 0x14: 2,
		0x0c: 3, 0x1c: 3,
	} {
		oc := Decode(b)
		assert.Equal(t, OpNOP, oc.Op, "byte 0x%02X", b)
		assert.Equal(t, want, oc.Mode.Increment(), "byte 0x%02X", b)
	}
}

func TestIncrements(t *testing.T) {
	assert.Equal(t, uint16(1), Implied.Increment())
	assert.Equal(t, uint16(1), Accumulator.Increment())
	assert.Equal(t, uint16(2), Immediate.Increment())
	assert.Equal(t, uint16(2), ZeroPage.Increment())
	assert.Equal(t, uint16(2), ZeroPageX.Increment())
	assert.Equal(t, uint16(2), ZeroPageY.Increment())
	assert.Equal(t, uint16(2), IndirectX.Increment())
	assert.Equal(t, uint16(2), IndirectY.Increment())
	assert.Equal(t, uint16(2), Relative.Increment())
	assert.Equal(t, uint16(3), Absolute.Increment())
	assert.Equal(t, uint16(3), AbsoluteX.Increment())
	assert.Equal(t, uint16(3), AbsoluteY.Increment())
	assert.Equal(t, uint16(3), Indirect.Increment())
}
