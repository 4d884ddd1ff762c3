package vecasm

import "fmt"

// Immediate and displacement operands carry an encoding class alongside
// the value. The class, not the value, decides which instruction form
// the resolver picks on each target: a class that fits the native
// immediate field encodes in place, anything wider synthesizes a
// scratch-register load first. Values outside the class range truncate
// silently by masking; range checking is the caller's contract, the
// same as writing the assembly by hand.

// ImmClass is the encoding class of an immediate operand.
type ImmClass uint8

const (
	ImmIC ImmClass = iota // 7-bit
	ImmIB                 // byte
	ImmIM                 // 12-bit
	ImmIG                 // 15-bit
	ImmIH                 // halfword
	ImmIV                 // 31-bit
	ImmIW                 // full word
)

func (c ImmClass) mask() int64 {
	switch c {
	case ImmIC:
		return 0x7F
	case ImmIB:
		return 0xFF
	case ImmIM:
		return 0xFFF
	case ImmIG:
		return 0x7FFF
	case ImmIH:
		return 0xFFFF
	case ImmIV:
		return 0x7FFFFFFF
	default:
		return 0xFFFFFFFF
	}
}

func (c ImmClass) String() string {
	return [...]string{"IC", "IB", "IM", "IG", "IH", "IV", "IW"}[c]
}

// Imm is an immediate operand: a value already truncated to its class.
type Imm struct {
	Val   int64
	Class ImmClass
}

func (i Imm) String() string { return fmt.Sprintf("%s(%#x)", i.Class, i.Val) }

// IC makes a 7-bit immediate (values up to 0x7F).
func IC(v int64) Imm { return Imm{v & 0x7F, ImmIC} }

// IB makes a byte immediate (values up to 0xFF).
func IB(v int64) Imm { return Imm{v & 0xFF, ImmIB} }

// IM makes a 12-bit immediate (values up to 0xFFF).
func IM(v int64) Imm { return Imm{v & 0xFFF, ImmIM} }

// IG makes a 15-bit immediate (values up to 0x7FFF).
func IG(v int64) Imm { return Imm{v & 0x7FFF, ImmIG} }

// IH makes a halfword immediate (values up to 0xFFFF).
func IH(v int64) Imm { return Imm{v & 0xFFFF, ImmIH} }

// IV makes a 31-bit immediate (values up to 0x7FFFFFFF).
func IV(v int64) Imm { return Imm{v & 0x7FFFFFFF, ImmIV} }

// IW makes a full 32-bit immediate.
func IW(v int64) Imm { return Imm{v & 0xFFFFFFFF, ImmIW} }

// DspClass is the encoding class of a memory displacement.
type DspClass uint8

const (
	DspPlain DspClass = iota // zero displacement
	DspDP                    // 12-bit, 4-byte aligned
	DspDF                    // 14-bit, 4-byte aligned
	DspDG                    // 15-bit, 4-byte aligned
	DspDH                    // 16-bit, 4-byte aligned
	DspDV                    // 31-bit, 4-byte aligned
)

func (c DspClass) String() string {
	return [...]string{"PLAIN", "DP", "DF", "DG", "DH", "DV"}[c]
}

// Dsp is a displacement operand. The value is kept raw; masking happens
// at encode time because the effective range widens with the element
// size of the operation (Q scaling: 64-bit element forms double the
// class range, keeping symbolic offsets valid when a layout grows from
// 32- to 64-bit fields).
type Dsp struct {
	Val   int32
	Class DspClass
}

func (d Dsp) String() string {
	if d.Class == DspPlain {
		return "PLAIN"
	}
	return fmt.Sprintf("%s(%#x)", d.Class, d.Val)
}

// PLAIN is the zero displacement.
var PLAIN = Dsp{0, DspPlain}

// DP makes a displacement of up to 4KB (times the Q scale).
func DP(v int32) Dsp { return Dsp{v, DspDP} }

// DF makes a displacement of up to 16KB (times the Q scale).
func DF(v int32) Dsp { return Dsp{v, DspDF} }

// DG makes a displacement of up to 32KB (times the Q scale).
func DG(v int32) Dsp { return Dsp{v, DspDG} }

// DH makes a displacement of up to 64KB (times the Q scale).
func DH(v int32) Dsp { return Dsp{v, DspDH} }

// DV makes a displacement of up to 2GB.
func DV(v int32) Dsp { return Dsp{v, DspDV} }

// masked applies the class mask at the given Q scale (1 for 32-bit
// element layouts, 2 for 64-bit). The low two bits always clear: every
// displacement is 4-byte aligned by contract.
func (d Dsp) masked(q int32) int32 {
	switch d.Class {
	case DspPlain:
		return 0
	case DspDP:
		return d.Val & (0xFFC*q | 0xC)
	case DspDF:
		return d.Val & (0x3FFC*q | 0xC)
	case DspDG:
		return d.Val & (0x7FFC*q | 0xC)
	case DspDH:
		return d.Val & (0xFFFC*q | 0xC)
	default:
		return d.Val & 0x7FFFFFFC
	}
}

// memKind tags the three addressing shapes.
type memKind uint8

const (
	memO  memKind = iota // [base]
	memM                 // [base + displacement]
	memIX                // [base + index*scale + displacement]
)

// Mem is a memory operand: the register part of the address. The
// displacement travels as a separate Dsp argument so the encoding class
// stays visible at the call site.
type Mem struct {
	Base  Reg
	Index Reg
	Scale uint8
	Kind  memKind
}

func (m Mem) String() string {
	switch m.Kind {
	case memO:
		return fmt.Sprintf("O(%v)", m.Base)
	case memM:
		return fmt.Sprintf("M(%v)", m.Base)
	default:
		return fmt.Sprintf("IX(%v,%v,%d)", m.Base, m.Index, m.Scale)
	}
}

// O makes a register-indirect operand [base]. Pair it with PLAIN.
func O(base Reg) Mem { return Mem{Base: base, Kind: memO} }

// M makes a base-plus-displacement operand [base + dsp].
func M(base Reg) Mem { return Mem{Base: base, Kind: memM} }

// IX makes a scaled-index operand [base + index*scale + dsp]. Scale
// must be 1, 2, 4 or 8. Targets without a native scaled-index mode
// synthesize the address into a scratch register first.
func IX(base, index Reg, scale uint8) Mem {
	switch scale {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("vecasm: invalid index scale %d (want 1, 2, 4 or 8)", scale))
	}
	return Mem{Base: base, Index: index, Scale: scale, Kind: memIX}
}

// log2Scale returns the shift amount for the scale factor.
func (m Mem) log2Scale() uint8 {
	switch m.Scale {
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	default:
		return 0
	}
}
