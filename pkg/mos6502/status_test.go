package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusSetClearHas(t *testing.T) {
	var p Status
	p = p.Set(FlagC | FlagZ)
	assert.True(t, p.Has(FlagC))
	assert.True(t, p.Has(FlagZ))
	assert.False(t, p.Has(FlagN))

	p = p.Clear(FlagZ)
	assert.True(t, p.Has(FlagC))
	assert.False(t, p.Has(FlagZ))
}

func TestStatusSetTo(t *testing.T) {
	var p Status
	p = p.SetTo(FlagV, true)
	assert.True(t, p.Has(FlagV))
	p = p.SetTo(FlagV, false)
	assert.False(t, p.Has(FlagV))
}

func TestStatusUpdateNZ(t *testing.T) {
	var p Status
	p = p.updateNZ(0)
	assert.True(t, p.Has(FlagZ))
	assert.False(t, p.Has(FlagN))

	p = p.updateNZ(0x80)
	assert.False(t, p.Has(FlagZ))
	assert.True(t, p.Has(FlagN))

	p = p.updateNZ(0x7F)
	assert.False(t, p.Has(FlagZ))
	assert.False(t, p.Has(FlagN))
}

func TestStatusUpdateNZPreservesOtherFlags(t *testing.T) {
	p := FlagC | FlagD
	p = p.updateNZ(0)
	assert.True(t, p.Has(FlagC))
	assert.True(t, p.Has(FlagD))
}
