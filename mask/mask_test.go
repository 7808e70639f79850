package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert.Equal(t, uint16(0x8000), Word(0x80, 0x00))
	assert.Equal(t, uint16(0xfffc), Word(0xff, 0xfc))
	assert.Equal(t, uint16(0x0010), Word(0x00, 0x10))

	assert.Equal(t, byte(0x80), HiByte(0x8022))
	assert.Equal(t, byte(0x22), LoByte(0x8022))

	// split and recombine is an identity
	for _, w := range []uint16{0x0000, 0x00ff, 0x0100, 0x8000, 0xffff} {
		assert.Equal(t, w, Word(HiByte(w), LoByte(w)))
	}
}

func TestBit(t *testing.T) {
	assert.True(t, Bit(0b1000_0000, 7))
	assert.False(t, Bit(0b0111_1111, 7))
	assert.True(t, Bit(0b0000_0001, 0))
	assert.False(t, Bit(0b0000_0010, 0))

	assert.Equal(t, byte(0b0001_0000), Set(0, 4))
	assert.Equal(t, byte(0b1110_1111), Clear(0xff, 4))
	assert.Equal(t, byte(0xff), Set(0xff, 3))
	assert.Equal(t, byte(0), Clear(0, 3))
}

func TestSamePage(t *testing.T) {
	assert.True(t, SamePage(0x80fe, 0x80ff))
	assert.False(t, SamePage(0x80ff, 0x8100))
	assert.True(t, SamePage(0x0000, 0x00ff))
	assert.False(t, SamePage(0x01ff, 0x0200))
}

func BenchmarkWord(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Word(0x80, byte(i))
	}
}
