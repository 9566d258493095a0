package rom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n-ulricksen/mos6502/pkg/mos6502"
)

func buildINES(prgChunks int, prg []byte, trainer bool) []byte {
	var buf bytes.Buffer
	buf.WriteString("NES")
	buf.WriteByte(0x1A)
	buf.WriteByte(byte(prgChunks))
	buf.WriteByte(0) // CHR chunks
	mapper1 := byte(0)
	if trainer {
		mapper1 |= 0x1 << 3
	}
	buf.WriteByte(mapper1)
	buf.WriteByte(0) // Mapper2

	buf.Write(make([]byte, 3)) // Flags 8-10
	buf.Write(make([]byte, 5))

	if trainer {
		buf.Write(make([]byte, trainerSize))
	}
	buf.Write(prg)
	return buf.Bytes()
}

func TestLoadFlatCopiesBytesAtOrigin(t *testing.T) {
	bus := mos6502.NewBus()
	LoadFlat(bus, 0x0600, []byte{0xA9, 0x42})
	assert.Equal(t, byte(0xA9), bus.Read(0x0600))
	assert.Equal(t, byte(0x42), bus.Read(0x0601))
}

func TestLoadINESParsesHeaderAndCopiesPRG(t *testing.T) {
	prg := make([]byte, prgChunkSize)
	prg[0] = 0xEA
	data := buildINES(1, prg, false)

	bus := mos6502.NewBus()
	header, err := LoadINES(bus, bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, byte(1), header.PrgRomChunks)
	assert.Equal(t, byte(0xEA), bus.Read(0x8000))
}

func TestLoadINESMirrorsSingleBankInto0xC000(t *testing.T) {
	prg := make([]byte, prgChunkSize)
	prg[prgChunkSize-4] = 0x4C // occupies the reset vector region at 0xFFFC when mirrored
	data := buildINES(1, prg, false)

	bus := mos6502.NewBus()
	_, err := LoadINES(bus, bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, bus.Read(0x8000+uint16(prgChunkSize-4)), bus.Read(0xFFFC))
}

func TestLoadINESSkipsTrainer(t *testing.T) {
	prg := make([]byte, prgChunkSize)
	prg[0] = 0x99
	data := buildINES(1, prg, true)

	bus := mos6502.NewBus()
	_, err := LoadINES(bus, bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, byte(0x99), bus.Read(0x8000))
}

func TestLoadINESRejectsBadMagic(t *testing.T) {
	data := buildINES(1, make([]byte, prgChunkSize), false)
	data[0] = 'X'

	bus := mos6502.NewBus()
	_, err := LoadINES(bus, bytes.NewReader(data))
	assert.Error(t, err)
}
