package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/n-ulricksen/mos6502/pkg/mos6502"
	"github.com/n-ulricksen/mos6502/pkg/rom"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mos6502",
		Short: "MOS 6502 core driver — run, step, and disassemble program images",
	}

	var (
		flatOrigin uint16
		pcOverride uint16
		usePC      bool
		ines       bool
		trace      bool
		maxSteps   int
	)

	addImageFlags := func(cmd *cobra.Command) {
		cmd.Flags().Uint16Var(&flatOrigin, "origin", 0x8000, "load address for a flat image")
		cmd.Flags().Uint16Var(&pcOverride, "pc", 0, "override PC after load instead of using the reset vector")
		cmd.Flags().BoolVar(&usePC, "set-pc", false, "apply --pc instead of reading the reset vector")
		cmd.Flags().BoolVar(&ines, "ines", false, "treat the image as an iNES container")
	}

	loadImage := func(cpu *mos6502.CPU, bus *mos6502.Bus, path string) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		if ines {
			if _, err := rom.LoadINES(bus, f); err != nil {
				return err
			}
		} else {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			rom.LoadFlat(bus, flatOrigin, data)
		}

		cpu.Reset()
		if usePC {
			cpu.PC = pcOverride
		}
		return nil
	}

	runCmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Load an image and free-run until --max-steps instructions have executed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := mos6502.NewBus()
			cpu := mos6502.New(bus)
			if trace {
				cpu.SetTraceOutput(os.Stdout)
			}
			if err := loadImage(cpu, bus, args[0]); err != nil {
				return err
			}

			executed := 0
			cpu.Run(func() bool {
				executed++
				return maxSteps > 0 && executed >= maxSteps
			})

			fmt.Printf("halted after %d instructions; PC=$%04X A=$%02X X=$%02X Y=$%02X P=$%02X SP=$%02X\n",
				executed, cpu.PC, cpu.A, cpu.X, cpu.Y, byte(cpu.P), cpu.SP)
			return nil
		},
	}
	addImageFlags(runCmd)
	runCmd.Flags().BoolVar(&trace, "trace", false, "print one line per executed instruction")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "stop after this many instructions (0 = unbounded)")

	stepCmd := &cobra.Command{
		Use:   "step <image> <count>",
		Short: "Load an image and execute exactly <count> instructions, printing register state after each",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := mos6502.NewBus()
			cpu := mos6502.New(bus)
			if err := loadImage(cpu, bus, args[0]); err != nil {
				return err
			}

			var count int
			if _, err := fmt.Sscanf(args[1], "%d", &count); err != nil {
				return fmt.Errorf("parse count %q: %w", args[1], err)
			}

			for i := 0; i < count; i++ {
				pc := cpu.PC
				cycles := cpu.Step()
				fmt.Printf("$%04X  A:%02X X:%02X Y:%02X P:%02X SP:%02X  (cycles:%d)\n",
					pc, cpu.A, cpu.X, cpu.Y, byte(cpu.P), cpu.SP, cycles)
			}
			return nil
		},
	}
	addImageFlags(stepCmd)

	var disasmStart, disasmEnd uint16
	disasmCmd := &cobra.Command{
		Use:   "disasm <image>",
		Short: "Load an image and print a disassembly of [--start, --end]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bus := mos6502.NewBus()
			cpu := mos6502.New(bus)
			if err := loadImage(cpu, bus, args[0]); err != nil {
				return err
			}

			lines := cpu.Disassemble(disasmStart, disasmEnd)
			for addr := uint32(disasmStart); addr <= uint32(disasmEnd); addr++ {
				if line, ok := lines[uint16(addr)]; ok {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
	addImageFlags(disasmCmd)
	disasmCmd.Flags().Uint16Var(&disasmStart, "start", 0x8000, "first address to disassemble")
	disasmCmd.Flags().Uint16Var(&disasmEnd, "end", 0xFFFF, "last address to disassemble")

	rootCmd.AddCommand(runCmd, stepCmd, disasmCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
