package engine

import (
	"fmt"
	"strings"
)

// Architecture type
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchX86_64
	ArchARM
	ArchARM64
	ArchMIPS
	ArchPOWER
)

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX86_64:
		return "x86_64"
	case ArchARM:
		return "armv7"
	case ArchARM64:
		return "aarch64"
	case ArchMIPS:
		return "mips32"
	case ArchPOWER:
		return "power"
	case ArchUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// ParseArch parses an architecture string (like GOARCH values)
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(s) {
	case "x86", "386", "i386", "ia32":
		return ArchX86, nil
	case "x86_64", "amd64", "x86-64":
		return ArchX86_64, nil
	case "arm", "armv7", "aarch32", "arm32":
		return ArchARM, nil
	case "aarch64", "arm64":
		return ArchARM64, nil
	case "mips", "mips32", "mipsle", "mips32le":
		return ArchMIPS, nil
	case "power", "ppc64", "ppc64le", "power8":
		return ArchPOWER, nil
	default:
		return 0, fmt.Errorf("unsupported architecture: %s (supported: 386, amd64, arm, arm64, mips, ppc64)", s)
	}
}

// Is64Bit reports whether BASE registers are 64 bits wide on this architecture.
func (a Arch) Is64Bit() bool {
	switch a {
	case ArchX86_64, ArchARM64, ArchPOWER:
		return true
	default:
		return false
	}
}

// WordOriented reports whether the architecture encodes instructions as
// fixed 32-bit words rather than variable-length byte sequences.
func (a Arch) WordOriented() bool {
	switch a {
	case ArchARM, ArchARM64, ArchMIPS, ArchPOWER:
		return true
	default:
		return false
	}
}

// SwappableEndian reports whether the architecture has both little- and
// big-endian incarnations that affect instruction-word emission.
func (a Arch) SwappableEndian() bool {
	return a == ArchMIPS || a == ArchPOWER
}
