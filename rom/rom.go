// Package rom loads iNES cartridge images and maps their program banks
// into the CPU address space. Only mapper 0 (linear PRG mapping) is
// supported.
//
// https://www.nesdev.org/wiki/INES
package rom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"nesemu/mask"
	"nesemu/mem"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16 * 1024
	chrBankSize = 8 * 1024

	// where the first PRG bank lands on the CPU bus
	prgWindow uint16 = 0x8000
	prgMirror uint16 = 0xc000
)

// magic opens every iNES file: "NES" followed by the MS-DOS EOF byte.
var magic = []byte{'N', 'E', 'S', 0x1a}

var (
	ErrBadMagic  = errors.New("not an iNES image")
	ErrTruncated = errors.New("image shorter than its header claims")
)

// An UnsupportedMapperError reports a cartridge needing a mapper this
// loader does not implement.
type UnsupportedMapperError struct {
	ID byte
}

func (e UnsupportedMapperError) Error() string {
	return fmt.Sprintf("unsupported mapper %d (only mapper 0 is handled)", e.ID)
}

// A Rom is a parsed cartridge image.
type Rom struct {
	PRG [][]byte // 16 kB program banks
	CHR [][]byte // 8 kB character banks (unused by the CPU core)

	Mapper         byte
	VerticalMirror bool // flags 6 bit 0
	Battery        bool // flags 6 bit 1
	HasTrainer     bool // flags 6 bit 2
}

// Load reads and parses the iNES image at path. Loader errors surface here,
// before the core ever starts.
func Load(path string) (*Rom, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes an iNES image from memory.
func Parse(data []byte) (*Rom, error) {
	if len(data) < headerSize || !bytes.Equal(data[:4], magic) {
		return nil, ErrBadMagic
	}

	header := data[:headerSize]
	r := &Rom{
		VerticalMirror: mask.Bit(header[6], 0),
		Battery:        mask.Bit(header[6], 1),
		HasTrainer:     mask.Bit(header[6], 2),
		// mapper number: low nibble in flags 6, high nibble in flags 7
		Mapper: header[7]&0xf0 | header[6]>>4,
	}
	if r.Mapper != 0 {
		return nil, UnsupportedMapperError{ID: r.Mapper}
	}

	buf := bytes.NewReader(data[headerSize:])
	if r.HasTrainer {
		// 512 bytes of trainer data precede PRG; skip them
		if _, err := buf.Seek(trainerSize, io.SeekCurrent); err != nil {
			return nil, ErrTruncated
		}
	}

	for i := byte(0); i < header[4]; i++ {
		bank := make([]byte, prgBankSize)
		if _, err := io.ReadFull(buf, bank); err != nil {
			return nil, fmt.Errorf("PRG bank %d: %w", i, ErrTruncated)
		}
		r.PRG = append(r.PRG, bank)
	}
	if len(r.PRG) == 0 {
		return nil, fmt.Errorf("no PRG banks: %w", ErrTruncated)
	}

	for i := byte(0); i < header[5]; i++ {
		bank := make([]byte, chrBankSize)
		if _, err := io.ReadFull(buf, bank); err != nil {
			return nil, fmt.Errorf("CHR bank %d: %w", i, ErrTruncated)
		}
		r.CHR = append(r.CHR, bank)
	}

	return r, nil
}

// MapInto writes the PRG banks into the bus per mapper 0: the first bank
// at 0x8000, the second at 0xc000 -- or the first mirrored there when the
// cartridge only has one.
func (r *Rom) MapInto(bus *mem.Bus) {
	bus.WriteBytes(prgWindow, r.PRG[0])
	if len(r.PRG) > 1 {
		bus.WriteBytes(prgMirror, r.PRG[1])
	} else {
		bus.WriteBytes(prgMirror, r.PRG[0])
	}
}

// Entry returns the address execution should start at: the reset vector if
// the cartridge sets one, otherwise the base of the PRG window. Callers may
// override it entirely (automated test ROMs conventionally start at
// 0xc000).
func (r *Rom) Entry(bus *mem.Bus) uint16 {
	if v := bus.ReadWord(0xfffc); v != 0 {
		return v
	}
	return prgWindow
}
