// Command vecasm encodes portable SIMD/BASE instruction sequences for
// any of the supported targets and prints the machine code, plus a few
// inspection helpers for the register model and the decoders from
// golang.org/x/arch.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/xyproto/vecasm"
)

var (
	archFlag   string
	widthFlag  int
	bigFlag    bool
	debugFlag  bool
	compatFlag bool
)

func buildTarget() (*vecasm.Target, error) {
	if archFlag == "" {
		return vecasm.DetectTarget()
	}
	arch, err := vecasm.ParseArch(archFlag)
	if err != nil {
		return nil, err
	}
	t, err := vecasm.NewTarget(arch, widthFlag)
	if err != nil {
		return nil, err
	}
	if bigFlag {
		if err := t.SetBigEndian(true); err != nil {
			return nil, err
		}
	}
	if compatFlag {
		t.CompatDiv = true
		t.CompatSqr = true
		t.CompatFma = true
	}
	return t, nil
}

func main() {
	root := &cobra.Command{
		Use:   "vecasm",
		Short: "portable SIMD instruction encoder",
	}
	root.PersistentFlags().StringVarP(&archFlag, "arch", "a", "", "target architecture (x86, x86_64, arm, arm64, mips, power); default: detect")
	root.PersistentFlags().IntVarP(&widthFlag, "width", "w", 128, "SIMD width in bits (128, 256 or 512)")
	root.PersistentFlags().BoolVar(&bigFlag, "big-endian", false, "big-endian byte order (MIPS and POWER only)")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "dump parsed instructions before encoding")
	root.PersistentFlags().BoolVar(&compatFlag, "compat", false, "select the scalar-fallback divide and sqrt on AArch32")

	root.AddCommand(encodeCommand(), targetsCommand(), regsCommand(), disasmCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [instruction; instruction; ...]",
		Short: "encode portable instructions to machine code",
		Long: `Encode a semicolon- or newline-separated list of portable
instructions, for example:

  vecasm encode -a arm "MovosLD Xmm0, O(Reax), PLAIN; AddosRR Xmm0, Xmm1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTarget()
			if err != nil {
				return err
			}
			calls, err := parseProgram(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if debugFlag {
				spew.Fdump(os.Stderr, calls)
			}
			out := vecasm.NewOut(t)
			for _, c := range calls {
				if err := c.apply(out); err != nil {
					return err
				}
			}
			fmt.Printf("%s: % X\n", t, out.Bytes())
			return nil
		},
	}
}

func targetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "list the supported architecture/width combinations",
		Run: func(cmd *cobra.Command, args []string) {
			combos := []struct {
				arch   vecasm.Arch
				widths []int
			}{
				{vecasm.ArchX86, []int{128}},
				{vecasm.ArchX86_64, []int{128, 256, 512}},
				{vecasm.ArchARM, []int{128}},
				{vecasm.ArchARM64, []int{128}},
				{vecasm.ArchMIPS, []int{128}},
				{vecasm.ArchPOWER, []int{128}},
			}
			for _, c := range combos {
				for _, w := range c.widths {
					t, err := vecasm.NewTarget(c.arch, w)
					if err != nil {
						continue
					}
					fmt.Println(t)
				}
			}
		},
	}
}

func regsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regs",
		Short: "print the portable-to-hardware register mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTarget()
			if err != nil {
				return err
			}
			fmt.Printf("target %s\n\nBASE registers:\n", t)
			for r := vecasm.Reax; r <= vecasm.Redi; r++ {
				hw, _ := vecasm.GetRegister(t.Arch(), r.String())
				fmt.Printf("  %-4s -> %-5s (enc %d)\n", r, hw.Name, hw.Encoding)
			}
			fmt.Println("\nSIMD registers:")
			for i := 0; i < 16; i++ {
				name := fmt.Sprintf("Xmm%X", i)
				hw, ok := vecasm.GetVectorRegister(t.Arch(), t.SIMDWidth(), name)
				if !ok {
					break
				}
				fmt.Printf("  %-4s -> %-6s (enc %d)\n", name, hw.Name, hw.Encoding)
			}
			return nil
		},
	}
}
