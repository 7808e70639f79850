package mem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	b := &Bus{}

	b.Write(0x0010, 0x42)
	assert.Equal(t, byte(0x42), b.Read(0x0010))

	// stack page and ROM window are plain storage
	b.Write(0x01ff, 0xab)
	assert.Equal(t, byte(0xab), b.Read(0x01ff))
	b.Write(0x8000, 0xa9)
	assert.Equal(t, byte(0xa9), b.Read(0x8000))
}

func TestStubRegions(t *testing.T) {
	b := &Bus{}

	// writes are observable through the latches, reads return zero
	b.Write(0x2000, 0x99)
	assert.Equal(t, byte(0x99), b.PPU[0])
	assert.Equal(t, byte(0), b.Read(0x2000))
	assert.Equal(t, byte(0), b.Ram[0x2000])

	b.Write(0x2007, 0x11)
	assert.Equal(t, byte(0x11), b.PPU[7])

	b.Write(0x4000, 0x55)
	b.Write(0x401f, 0x66)
	assert.Equal(t, byte(0x55), b.IO[0])
	assert.Equal(t, byte(0x66), b.IO[0x1f])
	assert.Equal(t, byte(0), b.Read(0x4000))
	assert.Equal(t, byte(0), b.Read(0x401f))

	// one past the stub regions is RAM again
	b.Write(0x2008, 0x77)
	assert.Equal(t, byte(0x77), b.Read(0x2008))
	b.Write(0x4020, 0x88)
	assert.Equal(t, byte(0x88), b.Read(0x4020))
}

func TestReadWord(t *testing.T) {
	b := &Bus{}
	b.Write(0xfffc, 0x00)
	b.Write(0xfffd, 0x80)
	assert.Equal(t, uint16(0x8000), b.ReadWord(0xfffc))

	b.Write(0x0010, 0x34)
	b.Write(0x0011, 0x12)
	assert.Equal(t, uint16(0x1234), b.ReadWord(0x0010))
}

func TestWriteBytes(t *testing.T) {
	b := &Bus{}
	b.WriteBytes(0x8000, []byte{0xa9, 0x50, 0x00})
	assert.Equal(t, byte(0xa9), b.Read(0x8000))
	assert.Equal(t, byte(0x50), b.Read(0x8001))
	assert.Equal(t, byte(0x00), b.Read(0x8002))
}

func TestDumpToFile(t *testing.T) {
	b := &Bus{}
	b.Write(0x0000, 0xde)
	b.Write(0xffff, 0xad)

	path := filepath.Join(t.TempDir(), "dump.bin")
	require.NoError(t, b.DumpToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 64*1024)
	assert.Equal(t, byte(0xde), data[0x0000])
	assert.Equal(t, byte(0xad), data[0xffff])
}
