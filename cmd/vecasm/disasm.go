package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/arch/arm/armasm"
	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/ppc64/ppc64asm"
	"golang.org/x/arch/x86/x86asm"

	"github.com/xyproto/vecasm"
)

func disasmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm [hex bytes]",
		Short: "disassemble machine code for the selected target",
		Long: `Decode hex-encoded machine code with the golang.org/x/arch
decoders, for example:

  vecasm disasm -a x86_64 "0F 58 C1"

MIPS has no decoder in golang.org/x/arch, so its output is raw words.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTarget()
			if err != nil {
				return err
			}
			clean := strings.NewReplacer(" ", "", "\t", "", "\n", "").Replace(strings.Join(args, ""))
			code, err := hex.DecodeString(clean)
			if err != nil {
				return fmt.Errorf("bad hex input: %w", err)
			}
			return disasm(t, code)
		},
	}
}

func disasm(t *vecasm.Target, code []byte) error {
	switch t.Arch() {
	case vecasm.ArchX86, vecasm.ArchX86_64:
		mode := 32
		if t.Arch() == vecasm.ArchX86_64 {
			mode = 64
		}
		offset := 0
		for offset < len(code) {
			inst, err := x86asm.Decode(code[offset:], mode)
			if err != nil {
				fmt.Printf("0x%04x: db 0x%02x\n", offset, code[offset])
				offset++
				continue
			}
			fmt.Printf("0x%04x: %-24s %s\n", offset, hexBytes(code[offset:offset+inst.Len]),
				x86asm.GNUSyntax(inst, uint64(offset), nil))
			offset += inst.Len
		}
		return nil
	case vecasm.ArchARM:
		return disasmWords(t, code, func(w []byte) (string, bool) {
			inst, err := armasm.Decode(w, armasm.ModeARM)
			if err != nil {
				return "", false
			}
			return armasm.GNUSyntax(inst), true
		})
	case vecasm.ArchARM64:
		return disasmWords(t, code, func(w []byte) (string, bool) {
			inst, err := arm64asm.Decode(w)
			if err != nil {
				return "", false
			}
			return arm64asm.GNUSyntax(inst), true
		})
	case vecasm.ArchPOWER:
		return disasmWords(t, code, func(w []byte) (string, bool) {
			inst, err := ppc64asm.Decode(w, t.ByteOrder())
			if err != nil {
				return "", false
			}
			return ppc64asm.GNUSyntax(inst, 0), true
		})
	case vecasm.ArchMIPS:
		// no MIPS decoder in golang.org/x/arch
		return disasmWords(t, code, func(w []byte) (string, bool) {
			return "", false
		})
	}
	return fmt.Errorf("no disassembler for %s", t.Arch())
}

// disasmWords walks fixed 4-byte instructions, printing ".word" for
// anything the decoder rejects.
func disasmWords(t *vecasm.Target, code []byte, decode func([]byte) (string, bool)) error {
	if len(code)%4 != 0 {
		return fmt.Errorf("code length %d is not a multiple of 4", len(code))
	}
	for offset := 0; offset < len(code); offset += 4 {
		w := code[offset : offset+4]
		text, ok := decode(w)
		if !ok {
			text = fmt.Sprintf(".word 0x%08x", t.ByteOrder().Uint32(w))
		}
		fmt.Printf("0x%04x: %-24s %s\n", offset, hexBytes(w), text)
	}
	return nil
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
