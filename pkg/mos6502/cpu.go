package mos6502

import (
	"fmt"
	"io"
	"log"
)

const (
	stackBase   uint16 = 0x0100
	resetVector uint16 = 0xFFFC
	irqVector   uint16 = 0xFFFE
	nmiVector   uint16 = 0xFFFA
)

// CPU is a MOS 6502 register file, decoder, and execution engine wired to a
// Bus. It has no notion of cycle timing or sub-instruction bus sequencing
// (see SPEC_FULL.md §1 Non-goals); Step executes one instruction to
// completion and returns its documented base cycle count for diagnostics.
type CPU struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	P       Status

	bus *Bus

	// IllegalOpcodeCount counts opcodes that decoded to the undefined table
	// slot, treated as silent NOPs.
	IllegalOpcodeCount uint64

	// Logger receives one line per executed instruction when non-nil.
	// Disabled by default so tests and library use stay quiet; set via
	// SetTraceOutput.
	Logger *log.Logger
}

// New returns a CPU wired to bus, with registers zeroed except P and SP,
// matching documented 6502 reset values.
func New(bus *Bus) *CPU {
	return &CPU{
		SP:  0xFD,
		P:   FlagU | FlagI,
		bus: bus,
	}
}

// SetTraceOutput attaches a per-instruction trace logger writing to w. Pass
// nil to disable tracing.
func (cpu *CPU) SetTraceOutput(w io.Writer) {
	if w == nil {
		cpu.Logger = nil
		return
	}
	cpu.Logger = log.New(w, "", 0)
}

// Reset restores registers to their power-on state and loads PC from the
// reset vector at 0xFFFC/0xFFFD.
func (cpu *CPU) Reset() {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xFD
	cpu.P = FlagU | FlagI
	cpu.PC = cpu.bus.ReadWord(resetVector)
}

// ReadMemory and WriteMemory pass through to the attached bus, for embedders
// that want to inspect or seed memory without a program loader.
func (cpu *CPU) ReadMemory(addr uint16) byte     { return cpu.bus.Read(addr) }
func (cpu *CPU) WriteMemory(addr uint16, v byte) { cpu.bus.Write(addr, v) }

// LoadProgram copies data onto the bus starting at origin and points PC at
// it, a convenience for tests and the CLI driver that would otherwise need
// to reach through to Bus directly.
func (cpu *CPU) LoadProgram(data []byte, origin uint16) {
	cpu.bus.LoadAt(origin, data)
	cpu.PC = origin
}

func (cpu *CPU) push(v byte) {
	cpu.bus.Write(stackBase|uint16(cpu.SP), v)
	cpu.SP--
}

func (cpu *CPU) pop() byte {
	cpu.SP++
	return cpu.bus.Read(stackBase | uint16(cpu.SP))
}

// Step fetches, decodes, and executes exactly one instruction, advancing PC
// past the opcode, its operand bytes, and (for taken branches/jumps) any
// further displacement. It returns the instruction's documented base cycle
// count, a diagnostic value only (see §1 Non-goals).
func (cpu *CPU) Step() byte {
	pc := cpu.PC
	opcode := cpu.bus.Read(cpu.PC)
	cpu.PC++

	inst := opcodeTable[opcode]
	operand := cpu.decode(inst.Mode)

	if cpu.Logger != nil {
		cpu.Logger.Print(cpu.traceLine(pc, opcode, inst))
	}

	inst.Exec(cpu, operand)

	return inst.Cycles
}

// Run calls Step repeatedly until done reports true, checked after every
// instruction (never mid-instruction). A nil done runs forever; callers
// driving free-run from a CLI should wrap a context.Context's Done channel
// in their own predicate.
func (cpu *CPU) Run(done func() bool) {
	for {
		cpu.Step()
		if done != nil && done() {
			return
		}
	}
}

// IRQ requests a maskable interrupt. It is a no-op if the interrupt-disable
// flag is set. Like NMI, it is meant to be called by an embedder between
// Step calls; the core does not sample an interrupt line on its own (§1,
// §5).
func (cpu *CPU) IRQ() {
	if cpu.P.Has(FlagI) {
		return
	}
	cpu.interrupt(irqVector)
}

// NMI requests a non-maskable interrupt; unlike IRQ it is never masked.
func (cpu *CPU) NMI() {
	cpu.interrupt(nmiVector)
}

func (cpu *CPU) interrupt(vector uint16) {
	cpu.push(byte(cpu.PC >> 8))
	cpu.push(byte(cpu.PC))
	cpu.push(byte(cpu.P.Clear(FlagB).Set(FlagU)))
	cpu.P = cpu.P.Set(FlagI)
	cpu.PC = cpu.bus.ReadWord(vector)
}

func (cpu *CPU) traceLine(pc uint16, opcode byte, inst instruction) string {
	return fmt.Sprintf("%04X  %02X  %-3s  A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, opcode, inst.Name, cpu.A, cpu.X, cpu.Y, byte(cpu.P), cpu.SP)
}
