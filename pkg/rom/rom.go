// Package rom loads 6502 program images onto a mos6502.Bus. It supports two
// shapes: a flat binary copied verbatim at a chosen origin, and an iNES
// container borrowed as a convenient on-disk format for test programs (see
// SPEC_FULL.md §4.8). Nothing here is NES-specific behavior; the PRG bank is
// copied straight to memory with no mapper, PPU, or CHR handling.
package rom

import (
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/n-ulricksen/mos6502/pkg/mos6502"
)

// Header is the 16-byte iNES file header.
//
// reference: https://wiki.nesdev.com/w/index.php/INES
type Header struct {
	Name         [4]byte // Constant "NES" followed by MS-DOS end of file
	PrgRomChunks byte    // Program memory size in 16KB chunks
	ChrRomChunks byte    // Character memory size in 8KB chunks
	Mapper1      byte    // Flags 6
	Mapper2      byte    // Flags 7
	PrgRamSize   byte    // Flags 8
	TvSystem1    byte    // Flags 9
	TvSystem2    byte    // Flags 10
	Unused       [5]byte // Unused padding
}

const (
	prgChunkSize = 16 * 1024
	chrChunkSize = 8 * 1024
	trainerSize  = 512

	prgOrigin = 0x8000
	prgMirror = 0xC000
)

// HasTrainer reports whether bit 3 of Mapper1 marks a 512-byte trainer
// between the header and PRG-ROM.
func (h *Header) HasTrainer() bool {
	return h.Mapper1&(0x1<<3) != 0
}

// LoadFlat copies data onto bus starting at origin. It is a thin wrapper over
// Bus.LoadAt for callers that don't want to reach into pkg/mos6502 directly.
func LoadFlat(bus *mos6502.Bus, origin uint16, data []byte) {
	bus.LoadAt(origin, data)
}

// LoadINES reads an iNES image from r, copies its PRG-ROM bank onto bus at
// 0x8000, and returns the parsed header. CHR-ROM, trainer data, and any
// mapper beyond NROM-style mirroring are read past but discarded; none of it
// is meaningful for a bare CPU core. A single 16KB PRG bank is mirrored into
// both 0x8000 and 0xC000, matching the NROM mapper the donor format assumes,
// so a reset vector placed in the last bank's final bytes resolves
// correctly.
func LoadINES(bus *mos6502.Bus, r io.Reader) (*Header, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "rom: read image")
	}
	buf := bytes.NewReader(data)

	header := new(Header)
	if err := binary.Read(buf, binary.BigEndian, header); err != nil {
		return nil, errors.Wrap(err, "rom: parse header")
	}
	if string(header.Name[:]) != "NES\x1A" {
		return nil, errors.Errorf("rom: bad magic %q, want \"NES\\x1a\"", header.Name[:])
	}

	if header.HasTrainer() {
		if _, err := buf.Seek(trainerSize, io.SeekCurrent); err != nil {
			return nil, errors.Wrap(err, "rom: skip trainer")
		}
	}

	prg := make([]byte, prgChunkSize*int(header.PrgRomChunks))
	if err := binary.Read(buf, binary.BigEndian, prg); err != nil {
		return nil, errors.Wrap(err, "rom: read PRG-ROM")
	}

	bus.LoadAt(prgOrigin, prg)
	if header.PrgRomChunks == 1 {
		bus.LoadAt(prgMirror, prg)
	}

	return header, nil
}
