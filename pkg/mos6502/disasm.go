package mos6502

import (
	"fmt"
)

// Disassemble walks the opcode stream in [start, end] using the same
// opcode table and addressing-mode byte-counts the decoder uses, without
// mutating CPU or bus state beyond a local read cursor. It returns one
// formatted line per instruction keyed by the address it starts at.
//
// This is a diagnostic convenience only; the execution engine never
// consults it. Ported from the teacher's cpuDisassembler.go, but driven off
// the same AddressingMode enum the decoder uses instead of a second,
// silently-unused copy (see DESIGN.md).
func (cpu *CPU) Disassemble(start, end uint16) map[uint16]string {
	lines := make(map[uint16]string)

	// addr is wider than uint16 so the loop can detect walking past 0xFFFF
	// without wrapping back to 0 and looping forever.
	var addr uint32 = uint32(start)

	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		opcode := cpu.bus.Read(lineAddr)
		inst := opcodeTable[opcode]
		addr++

		operandStr, consumed := disasmOperand(cpu.bus, uint16(addr), inst.Mode)
		addr += uint32(consumed)

		lines[lineAddr] = fmt.Sprintf("$%04X: %s %s", lineAddr, inst.Name, operandStr)
	}

	return lines
}

// disasmOperand renders the operand text for one instruction without
// advancing any CPU state, returning the number of operand bytes consumed.
func disasmOperand(bus *Bus, addr uint16, mode AddressingMode) (string, uint16) {
	switch mode {
	case Implied:
		return "{IMP}", 0
	case Accumulator:
		return "A {ACC}", 0
	case Immediate:
		return fmt.Sprintf("#$%02X {IMM}", bus.Read(addr)), 1
	case Relative:
		offset := int8(bus.Read(addr))
		target := uint16(int32(addr+1) + int32(offset))
		return fmt.Sprintf("$%02X [%04X] {REL}", bus.Read(addr), target), 1
	case ZeroPage:
		return fmt.Sprintf("$%02X {ZP0}", bus.Read(addr)), 1
	case ZeroPageX:
		return fmt.Sprintf("$%02X,X {ZPX}", bus.Read(addr)), 1
	case ZeroPageY:
		return fmt.Sprintf("$%02X,Y {ZPY}", bus.Read(addr)), 1
	case Absolute:
		return fmt.Sprintf("$%04X {ABS}", bus.ReadWord(addr)), 2
	case AbsoluteX:
		return fmt.Sprintf("$%04X,X {ABX}", bus.ReadWord(addr)), 2
	case AbsoluteY:
		return fmt.Sprintf("$%04X,Y {ABY}", bus.ReadWord(addr)), 2
	case Indirect:
		return fmt.Sprintf("($%04X) {IND}", bus.ReadWord(addr)), 2
	case IndexedIndirect:
		return fmt.Sprintf("($%02X,X) {IZX}", bus.Read(addr)), 1
	case IndirectIndexed:
		return fmt.Sprintf("($%02X),Y {IZY}", bus.Read(addr)), 1
	default:
		return "", 0
	}
}
