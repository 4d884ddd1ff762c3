package vecasm

import "fmt"

// VReg is a portable SIMD register. How many exist depends on the
// target: ARMv7 NEON exposes Xmm0-Xmm7, x86_64 below 512-bit width
// exposes Xmm0-XmmE, and AArch64/MIPS/POWER and 512-bit x86_64 expose
// the full Xmm0-XmmF set. The highest hardware register of each file is
// reserved as synthesis scratch and never portable.
type VReg uint8

const (
	Xmm0 VReg = iota // implicit mask register of the masked-merge ops
	Xmm1
	Xmm2
	Xmm3
	Xmm4
	Xmm5
	Xmm6
	Xmm7
	Xmm8
	Xmm9
	XmmA
	XmmB
	XmmC
	XmmD
	XmmE
	XmmF

	numVRegs
)

// String returns the portable name.
func (x VReg) String() string {
	if x < numVRegs {
		return fmt.Sprintf("Xmm%X", uint8(x))
	}
	return fmt.Sprintf("VReg(%d)", uint8(x))
}

// ParseVReg parses a portable SIMD register name like "Xmm3" or "XmmC".
func ParseVReg(name string) (VReg, bool) {
	if len(name) != 4 || name[0] != 'X' || name[1] != 'm' || name[2] != 'm' {
		return 0, false
	}
	var n uint8
	switch c := name[3]; {
	case c >= '0' && c <= '9':
		n = c - '0'
	case c >= 'A' && c <= 'F':
		n = c - 'A' + 10
	default:
		return 0, false
	}
	return VReg(n), true
}

// vregCount returns how many portable SIMD registers the target has.
func (t *Target) vregCount() int {
	switch t.arch {
	case ArchX86:
		return 7 // xmm7 is scratch
	case ArchX86_64:
		if t.simdWidth == 512 {
			return 16 // scratch lives in zmm16+
		}
		return 15 // xmm15/ymm15 is scratch
	case ArchARM:
		return 8 // q8+ is scratch
	default:
		return 16 // scratch lives in reg 16+
	}
}

// vreg returns the hardware encoding of x on the Out's target. On
// AArch32 the encoding is the even D-register number of the containing
// Q register, matching how NEON data-processing words address pairs.
func (o *Out) vreg(x VReg) uint8 {
	if int(x) >= o.target.vregCount() {
		panic(fmt.Sprintf("vecasm: %v is not available on %s", x, o.target))
	}
	if o.target.Arch() == ArchARM {
		return uint8(x) * 2
	}
	return uint8(x)
}

// vregName formats the hardware register name for trace output.
func (o *Out) vregName(x VReg) string {
	n := uint8(x)
	switch o.target.Arch() {
	case ArchX86:
		return fmt.Sprintf("xmm%d", n)
	case ArchX86_64:
		switch o.target.SIMDWidth() {
		case 512:
			return fmt.Sprintf("zmm%d", n)
		case 256:
			return fmt.Sprintf("ymm%d", n)
		}
		return fmt.Sprintf("xmm%d", n)
	case ArchARM:
		return fmt.Sprintf("q%d", n)
	case ArchARM64:
		return fmt.Sprintf("v%d", n)
	case ArchMIPS:
		return fmt.Sprintf("w%d", n)
	case ArchPOWER:
		return fmt.Sprintf("v%d", n)
	}
	return x.String()
}

// GetVectorRegister resolves a portable SIMD register name to hardware
// name, width and encoding on the given architecture and width.
func GetVectorRegister(arch Arch, simdWidth int, name string) (Register, bool) {
	x, ok := ParseVReg(name)
	if !ok {
		return Register{}, false
	}
	t, err := NewTarget(arch, simdWidth)
	if err != nil {
		return Register{}, false
	}
	if int(x) >= t.vregCount() {
		return Register{}, false
	}
	o := &Out{target: t}
	return Register{
		Name:     o.vregName(x),
		Name32:   o.vregName(x),
		Size:     simdWidth,
		Encoding: o.vreg(x),
	}, true
}

// Scratch SIMD registers (hardware numbers, not portable).
const (
	x86Tmm = 7 // 32-bit x86: xmm7

	x64Tmm  = 15 // x86_64 below 512-bit width
	x64Tmm5 = 16 // 512-bit width scratch block: zmm16..zmm19
	x64Tmm6 = 17
	x64Tmm7 = 18

	// AArch32 scratch as D-register numbers (q8..q12)
	armTmmM = 16
	armTmmC = 18
	armTmmD = 20
	armTmmE = 22
	armTmmF = 24

	a64TmmM = 16
	a64TmmC = 17
	a64TmmD = 18
	a64TmmE = 19

	mipsTmmM = 16
	mipsTmmC = 17
	mipsTmmD = 18
	mipsTmmE = 19

	ppcTmmM = 16
	ppcTmmC = 17
	ppcTmmD = 18
	ppcTmmE = 19
	ppcTmmF = 20
	ppcTmmG = 21
)

// x64Scratch returns the hardware number of the n-th scratch vector
// register on x86_64 for the active width (n = 0..2).
func (o *Out) x64Scratch(n int) uint8 {
	if o.target.SIMDWidth() == 512 {
		return uint8(x64Tmm5 + n)
	}
	if n > 0 {
		panic("vecasm: only one scratch vector register below 512-bit width")
	}
	return x64Tmm
}

// vscratch returns the first scratch vector register of the target.
func (o *Out) vscratch() uint8 {
	switch o.target.Arch() {
	case ArchX86:
		return x86Tmm
	case ArchX86_64:
		return o.x64Scratch(0)
	case ArchARM:
		return armTmmM
	case ArchARM64:
		return a64TmmM
	case ArchMIPS:
		return mipsTmmM
	default:
		return ppcTmmM
	}
}
