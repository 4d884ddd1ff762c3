// Package vecasm encodes a portable pseudo-instruction vocabulary into
// native machine code for several CPU architectures.
//
// One source sequence written against the portable mnemonics (move,
// arithmetic, compare, convert, shift, fused multiply-add and mask
// operations over BASE and SIMD registers) encodes, per target, into
// the literal instruction bytes of x86 (SSE2), x86_64 (SSE2/AVX2/
// AVX-512), ARMv7 NEON, AArch64 ASIMD, MIPS32 MSA or POWER8 VMX/VSX.
//
// The output is raw bytes appended to an in-memory buffer; placement,
// labels and linking belong to the consumer.
package vecasm

import "github.com/xyproto/vecasm/internal/engine"

// Arch identifies a target instruction set architecture.
type Arch = engine.Arch

const (
	ArchUnknown = engine.ArchUnknown
	ArchX86     = engine.ArchX86
	ArchX86_64  = engine.ArchX86_64
	ArchARM     = engine.ArchARM
	ArchARM64   = engine.ArchARM64
	ArchMIPS    = engine.ArchMIPS
	ArchPOWER   = engine.ArchPOWER
)

// ParseArch parses an architecture name (GOARCH spellings accepted).
func ParseArch(s string) (Arch, error) {
	return engine.ParseArch(s)
}
