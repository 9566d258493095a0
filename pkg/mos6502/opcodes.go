package mos6502

// instruction is one entry of the opcode table: a mnemonic name, the
// addressing mode the decoder should use to resolve its operand, a base
// cycle count (diagnostic only — see §1 Non-goals on cycle accuracy), and
// the execution engine method that implements it.
//
// Exec is a method value taken off *CPU with no bound receiver (e.g.
// (*CPU).opADC), so the table itself holds no CPU state and can be a single
// package-level immutable array shared by every CPU instance.
type instruction struct {
	Name   string
	Mode   AddressingMode
	Cycles byte
	Exec   func(*CPU, Operand)
}

// opcodeTable is the canonical 256-entry MOS 6502 instruction matrix.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
//
// Slots with Name "???" are illegal/undefined opcodes: they decode with
// Implied addressing (consuming only the opcode byte) and execute as a
// silent NOP that increments CPU.IllegalOpcodeCount.
var opcodeTable = [256]instruction{
	// 0x00
	{"BRK", Implied, 7, (*CPU).opBRK}, {"ORA", IndexedIndirect, 6, (*CPU).opORA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ORA", ZeroPage, 3, (*CPU).opORA}, {"ASL", ZeroPage, 5, (*CPU).opASL}, {"???", Implied, 2, (*CPU).opXXX},
	{"PHP", Implied, 3, (*CPU).opPHP}, {"ORA", Immediate, 2, (*CPU).opORA}, {"ASL", Accumulator, 2, (*CPU).opASL}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ORA", Absolute, 4, (*CPU).opORA}, {"ASL", Absolute, 6, (*CPU).opASL}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x10
	{"BPL", Relative, 2, (*CPU).opBPL}, {"ORA", IndirectIndexed, 5, (*CPU).opORA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ORA", ZeroPageX, 4, (*CPU).opORA}, {"ASL", ZeroPageX, 6, (*CPU).opASL}, {"???", Implied, 2, (*CPU).opXXX},
	{"CLC", Implied, 2, (*CPU).opCLC}, {"ORA", AbsoluteY, 4, (*CPU).opORA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ORA", AbsoluteX, 4, (*CPU).opORA}, {"ASL", AbsoluteX, 7, (*CPU).opASL}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x20
	{"JSR", Absolute, 6, (*CPU).opJSR}, {"AND", IndexedIndirect, 6, (*CPU).opAND}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"BIT", ZeroPage, 3, (*CPU).opBIT}, {"AND", ZeroPage, 3, (*CPU).opAND}, {"ROL", ZeroPage, 5, (*CPU).opROL}, {"???", Implied, 2, (*CPU).opXXX},
	{"PLP", Implied, 4, (*CPU).opPLP}, {"AND", Immediate, 2, (*CPU).opAND}, {"ROL", Accumulator, 2, (*CPU).opROL}, {"???", Implied, 2, (*CPU).opXXX},
	{"BIT", Absolute, 4, (*CPU).opBIT}, {"AND", Absolute, 4, (*CPU).opAND}, {"ROL", Absolute, 6, (*CPU).opROL}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x30
	{"BMI", Relative, 2, (*CPU).opBMI}, {"AND", IndirectIndexed, 5, (*CPU).opAND}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"AND", ZeroPageX, 4, (*CPU).opAND}, {"ROL", ZeroPageX, 6, (*CPU).opROL}, {"???", Implied, 2, (*CPU).opXXX},
	{"SEC", Implied, 2, (*CPU).opSEC}, {"AND", AbsoluteY, 4, (*CPU).opAND}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"AND", AbsoluteX, 4, (*CPU).opAND}, {"ROL", AbsoluteX, 7, (*CPU).opROL}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x40
	{"RTI", Implied, 6, (*CPU).opRTI}, {"EOR", IndexedIndirect, 6, (*CPU).opEOR}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"EOR", ZeroPage, 3, (*CPU).opEOR}, {"LSR", ZeroPage, 5, (*CPU).opLSR}, {"???", Implied, 2, (*CPU).opXXX},
	{"PHA", Implied, 3, (*CPU).opPHA}, {"EOR", Immediate, 2, (*CPU).opEOR}, {"LSR", Accumulator, 2, (*CPU).opLSR}, {"???", Implied, 2, (*CPU).opXXX},
	{"JMP", Absolute, 3, (*CPU).opJMP}, {"EOR", Absolute, 4, (*CPU).opEOR}, {"LSR", Absolute, 6, (*CPU).opLSR}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x50
	{"BVC", Relative, 2, (*CPU).opBVC}, {"EOR", IndirectIndexed, 5, (*CPU).opEOR}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"EOR", ZeroPageX, 4, (*CPU).opEOR}, {"LSR", ZeroPageX, 6, (*CPU).opLSR}, {"???", Implied, 2, (*CPU).opXXX},
	{"CLI", Implied, 2, (*CPU).opCLI}, {"EOR", AbsoluteY, 4, (*CPU).opEOR}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"EOR", AbsoluteX, 4, (*CPU).opEOR}, {"LSR", AbsoluteX, 7, (*CPU).opLSR}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x60
	{"RTS", Implied, 6, (*CPU).opRTS}, {"ADC", IndexedIndirect, 6, (*CPU).opADC}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ADC", ZeroPage, 3, (*CPU).opADC}, {"ROR", ZeroPage, 5, (*CPU).opROR}, {"???", Implied, 2, (*CPU).opXXX},
	{"PLA", Implied, 4, (*CPU).opPLA}, {"ADC", Immediate, 2, (*CPU).opADC}, {"ROR", Accumulator, 2, (*CPU).opROR}, {"???", Implied, 2, (*CPU).opXXX},
	{"JMP", Indirect, 5, (*CPU).opJMP}, {"ADC", Absolute, 4, (*CPU).opADC}, {"ROR", Absolute, 6, (*CPU).opROR}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x70
	{"BVS", Relative, 2, (*CPU).opBVS}, {"ADC", IndirectIndexed, 5, (*CPU).opADC}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ADC", ZeroPageX, 4, (*CPU).opADC}, {"ROR", ZeroPageX, 6, (*CPU).opROR}, {"???", Implied, 2, (*CPU).opXXX},
	{"SEI", Implied, 2, (*CPU).opSEI}, {"ADC", AbsoluteY, 4, (*CPU).opADC}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"ADC", AbsoluteX, 4, (*CPU).opADC}, {"ROR", AbsoluteX, 7, (*CPU).opROR}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x80
	{"???", Implied, 2, (*CPU).opXXX}, {"STA", IndexedIndirect, 6, (*CPU).opSTA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"STY", ZeroPage, 3, (*CPU).opSTY}, {"STA", ZeroPage, 3, (*CPU).opSTA}, {"STX", ZeroPage, 3, (*CPU).opSTX}, {"???", Implied, 2, (*CPU).opXXX},
	{"DEY", Implied, 2, (*CPU).opDEY}, {"???", Implied, 2, (*CPU).opXXX}, {"TXA", Implied, 2, (*CPU).opTXA}, {"???", Implied, 2, (*CPU).opXXX},
	{"STY", Absolute, 4, (*CPU).opSTY}, {"STA", Absolute, 4, (*CPU).opSTA}, {"STX", Absolute, 4, (*CPU).opSTX}, {"???", Implied, 2, (*CPU).opXXX},
	// 0x90
	{"BCC", Relative, 2, (*CPU).opBCC}, {"STA", IndirectIndexed, 6, (*CPU).opSTA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"STY", ZeroPageX, 4, (*CPU).opSTY}, {"STA", ZeroPageX, 4, (*CPU).opSTA}, {"STX", ZeroPageY, 4, (*CPU).opSTX}, {"???", Implied, 2, (*CPU).opXXX},
	{"TYA", Implied, 2, (*CPU).opTYA}, {"STA", AbsoluteY, 5, (*CPU).opSTA}, {"TXS", Implied, 2, (*CPU).opTXS}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"STA", AbsoluteX, 5, (*CPU).opSTA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	// 0xA0
	{"LDY", Immediate, 2, (*CPU).opLDY}, {"LDA", IndexedIndirect, 6, (*CPU).opLDA}, {"LDX", Immediate, 2, (*CPU).opLDX}, {"???", Implied, 2, (*CPU).opXXX},
	{"LDY", ZeroPage, 3, (*CPU).opLDY}, {"LDA", ZeroPage, 3, (*CPU).opLDA}, {"LDX", ZeroPage, 3, (*CPU).opLDX}, {"???", Implied, 2, (*CPU).opXXX},
	{"TAY", Implied, 2, (*CPU).opTAY}, {"LDA", Immediate, 2, (*CPU).opLDA}, {"TAX", Implied, 2, (*CPU).opTAX}, {"???", Implied, 2, (*CPU).opXXX},
	{"LDY", Absolute, 4, (*CPU).opLDY}, {"LDA", Absolute, 4, (*CPU).opLDA}, {"LDX", Absolute, 4, (*CPU).opLDX}, {"???", Implied, 2, (*CPU).opXXX},
	// 0xB0
	{"BCS", Relative, 2, (*CPU).opBCS}, {"LDA", IndirectIndexed, 5, (*CPU).opLDA}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"LDY", ZeroPageX, 4, (*CPU).opLDY}, {"LDA", ZeroPageX, 4, (*CPU).opLDA}, {"LDX", ZeroPageY, 4, (*CPU).opLDX}, {"???", Implied, 2, (*CPU).opXXX},
	{"CLV", Implied, 2, (*CPU).opCLV}, {"LDA", AbsoluteY, 4, (*CPU).opLDA}, {"TSX", Implied, 2, (*CPU).opTSX}, {"???", Implied, 2, (*CPU).opXXX},
	{"LDY", AbsoluteX, 4, (*CPU).opLDY}, {"LDA", AbsoluteX, 4, (*CPU).opLDA}, {"LDX", AbsoluteY, 4, (*CPU).opLDX}, {"???", Implied, 2, (*CPU).opXXX},
	// 0xC0
	{"CPY", Immediate, 2, (*CPU).opCPY}, {"CMP", IndexedIndirect, 6, (*CPU).opCMP}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"CPY", ZeroPage, 3, (*CPU).opCPY}, {"CMP", ZeroPage, 3, (*CPU).opCMP}, {"DEC", ZeroPage, 5, (*CPU).opDEC}, {"???", Implied, 2, (*CPU).opXXX},
	{"INY", Implied, 2, (*CPU).opINY}, {"CMP", Immediate, 2, (*CPU).opCMP}, {"DEX", Implied, 2, (*CPU).opDEX}, {"???", Implied, 2, (*CPU).opXXX},
	{"CPY", Absolute, 4, (*CPU).opCPY}, {"CMP", Absolute, 4, (*CPU).opCMP}, {"DEC", Absolute, 6, (*CPU).opDEC}, {"???", Implied, 2, (*CPU).opXXX},
	// 0xD0
	{"BNE", Relative, 2, (*CPU).opBNE}, {"CMP", IndirectIndexed, 5, (*CPU).opCMP}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"CMP", ZeroPageX, 4, (*CPU).opCMP}, {"DEC", ZeroPageX, 6, (*CPU).opDEC}, {"???", Implied, 2, (*CPU).opXXX},
	{"CLD", Implied, 2, (*CPU).opCLD}, {"CMP", AbsoluteY, 4, (*CPU).opCMP}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"CMP", AbsoluteX, 4, (*CPU).opCMP}, {"DEC", AbsoluteX, 7, (*CPU).opDEC}, {"???", Implied, 2, (*CPU).opXXX},
	// 0xE0
	{"CPX", Immediate, 2, (*CPU).opCPX}, {"SBC", IndexedIndirect, 6, (*CPU).opSBC}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"CPX", ZeroPage, 3, (*CPU).opCPX}, {"SBC", ZeroPage, 3, (*CPU).opSBC}, {"INC", ZeroPage, 5, (*CPU).opINC}, {"???", Implied, 2, (*CPU).opXXX},
	{"INX", Implied, 2, (*CPU).opINX}, {"SBC", Immediate, 2, (*CPU).opSBC}, {"NOP", Implied, 2, (*CPU).opNOP}, {"???", Implied, 2, (*CPU).opXXX},
	{"CPX", Absolute, 4, (*CPU).opCPX}, {"SBC", Absolute, 4, (*CPU).opSBC}, {"INC", Absolute, 6, (*CPU).opINC}, {"???", Implied, 2, (*CPU).opXXX},
	// 0xF0
	{"BEQ", Relative, 2, (*CPU).opBEQ}, {"SBC", IndirectIndexed, 5, (*CPU).opSBC}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"SBC", ZeroPageX, 4, (*CPU).opSBC}, {"INC", ZeroPageX, 6, (*CPU).opINC}, {"???", Implied, 2, (*CPU).opXXX},
	{"SED", Implied, 2, (*CPU).opSED}, {"SBC", AbsoluteY, 4, (*CPU).opSBC}, {"???", Implied, 2, (*CPU).opXXX}, {"???", Implied, 2, (*CPU).opXXX},
	{"???", Implied, 2, (*CPU).opXXX}, {"SBC", AbsoluteX, 4, (*CPU).opSBC}, {"INC", AbsoluteX, 7, (*CPU).opINC}, {"???", Implied, 2, (*CPU).opXXX},
}
