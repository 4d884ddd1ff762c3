package vecasm

import (
	"encoding/binary"
	"fmt"
	"runtime"

	"github.com/xyproto/env/v2"
	"golang.org/x/sys/cpu"
)

// Target describes the machine code to generate: the architecture, the
// SIMD register width, instruction-word byte order and the numeric
// compatibility knobs that pick between legal encodings of the same
// portable operation.
type Target struct {
	arch      Arch
	simdWidth int  // 128, 256 or 512 bits
	bigEndian bool // MIPS and POWER only

	// CompatDiv selects the per-lane scalar VDIV fallback instead of
	// the Newton-Raphson sequence for packed fp32 divide on ARMv7.
	CompatDiv bool
	// CompatSqr selects the per-lane scalar VSQRT fallback instead of
	// the Newton-Raphson sequence for packed fp32 sqrt on ARMv7.
	CompatSqr bool
	// CompatFma selects the per-lane VFP double-precision fallback
	// instead of VFMA/VFMS for packed fp32 fused multiply-add on
	// ARMv7: each lane widens to fp64, multiplies and folds there,
	// and narrows back with a single rounding.
	CompatFma bool
}

// NewTarget validates the architecture/width combination and returns a
// Target. Width 256 and 512 exist on x86_64 only; everything else is
// 128-bit SIMD.
func NewTarget(arch Arch, simdWidth int) (*Target, error) {
	switch simdWidth {
	case 128:
	case 256, 512:
		if arch != ArchX86_64 {
			return nil, fmt.Errorf("%d-bit SIMD width is not available on %s", simdWidth, arch)
		}
	default:
		return nil, fmt.Errorf("unsupported SIMD width %d (want 128, 256 or 512)", simdWidth)
	}
	if arch == ArchUnknown {
		return nil, fmt.Errorf("unknown architecture")
	}
	return &Target{arch: arch, simdWidth: simdWidth}, nil
}

// Arch returns the target architecture.
func (t *Target) Arch() Arch { return t.arch }

// SIMDWidth returns the SIMD register width in bits.
func (t *Target) SIMDWidth() int { return t.simdWidth }

// Lanes32 returns the number of 32-bit elements per SIMD register.
func (t *Target) Lanes32() int { return t.simdWidth / 32 }

// Lanes64 returns the number of 64-bit elements per SIMD register.
func (t *Target) Lanes64() int { return t.simdWidth / 64 }

// SetBigEndian switches instruction-word emission to big-endian byte
// order. Only meaningful on MIPS and POWER, which ship in both
// incarnations; the byte-oriented and ARM targets are little-endian.
func (t *Target) SetBigEndian(big bool) error {
	if big && !t.arch.SwappableEndian() {
		return fmt.Errorf("%s has no big-endian incarnation", t.arch)
	}
	t.bigEndian = big
	return nil
}

// ByteOrder returns the byte order instruction words are emitted in.
func (t *Target) ByteOrder() binary.ByteOrder {
	if t.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String returns a compact description like "x86_64/512" or "mips32/128be".
func (t *Target) String() string {
	s := fmt.Sprintf("%s/%d", t.arch, t.simdWidth)
	if t.bigEndian {
		s += "be"
	}
	return s
}

// hasF64SIMD reports whether the target has packed 64-bit float
// operations. ARMv7 NEON is fp32/int only.
func (t *Target) hasF64SIMD() bool { return t.arch != ArchARM }

// DetectTarget builds a Target for the machine the process runs on.
// On amd64 the SIMD width follows the CPU: 512 with AVX-512F, 256 with
// AVX2, otherwise 128. Environment variables override the probe:
//
//	VECASM_ARCH        architecture name (GOARCH spellings accepted)
//	VECASM_WIDTH       SIMD width in bits
//	VECASM_BIG_ENDIAN  big-endian word emission on MIPS/POWER
func DetectTarget() (*Target, error) {
	arch := ArchUnknown
	switch runtime.GOARCH {
	case "386":
		arch = ArchX86
	case "amd64":
		arch = ArchX86_64
	case "arm":
		arch = ArchARM
	case "arm64":
		arch = ArchARM64
	case "mips", "mipsle":
		arch = ArchMIPS
	case "ppc64", "ppc64le":
		arch = ArchPOWER
	default:
		arch = ArchX86_64
	}

	width := 128
	if arch == ArchX86_64 {
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
			width = 512
		case cpu.X86.HasAVX2:
			width = 256
		}
	}

	if name := env.Str("VECASM_ARCH"); name != "" {
		parsed, err := ParseArch(name)
		if err != nil {
			return nil, err
		}
		arch = parsed
		if arch != ArchX86_64 {
			width = 128
		}
	}
	if w := env.Int("VECASM_WIDTH", 0); w != 0 {
		width = w
	}

	t, err := NewTarget(arch, width)
	if err != nil {
		return nil, err
	}
	if env.Bool("VECASM_BIG_ENDIAN") {
		if err := t.SetBigEndian(true); err != nil {
			return nil, err
		}
	}
	return t, nil
}
