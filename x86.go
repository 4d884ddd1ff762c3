package vecasm

// x86 field packers: ModRM/SIB assembly, the legacy/VEX/EVEX prefix
// builders and the displacement resolver shared by the 32-bit and
// 64-bit backends. Register extension bits above encoding 7 are REX/VEX
// extension bits; above 15 they are EVEX extension bits. All prefix
// extension fields store the bit inverted, per the encoding.

// Mandatory prefix selector (pp field in VEX/EVEX, legacy byte before 0F).
const (
	ppNone uint8 = 0
	pp66   uint8 = 1
	ppF3   uint8 = 2
	ppF2   uint8 = 3
)

// Opcode map selector (mm field in VEX/EVEX).
const (
	map0F   uint8 = 1
	map0F38 uint8 = 2
	map0F3A uint8 = 3
)

// EVEX vector length codes (L'L field).
const (
	evexL128 = 0
	evexL256 = 1
	evexL512 = 2
)

// noVVVV marks the vvvv operand absent: the prefix builders store the
// field inverted, so zero becomes the all-ones pattern the hardware
// requires there.
const noVVVV = 0

var legacyPrefix = [4]uint8{0, 0x66, 0xF3, 0xF2}

// dispQ is the displacement class scale: doubled on 64-bit targets so
// the short classes keep covering a whole register-sized stride.
func (o *Out) dispQ() int32 {
	if o.target.arch.Is64Bit() {
		return 2
	}
	return 1
}

// modRR emits a register-direct ModRM byte.
func (o *Out) modRR(reg, rm uint8) {
	o.Write(0xC0 | (reg&7)<<3 | rm&7)
}

// modMem emits the ModRM byte, optional SIB byte and displacement for a
// memory operand. The caller has already merged any REX/VEX/EVEX
// extension bits; only the low three bits of each register land here.
// EVEX forms pass evex=true to force the plain disp32 shape (mod=10),
// which sidesteps the compressed-disp8 scaling rules entirely.
func (o *Out) modMem(reg uint8, ms Mem, disp int32, evex bool) {
	reg &= 7
	base := o.baseReg(ms.Base).Encoding & 7

	if ms.Kind == memIX {
		index := o.baseReg(ms.Index).Encoding & 7
		sib := ms.log2Scale()<<6 | index<<3 | base
		switch {
		case disp == 0 && base != 5 && !evex:
			o.Write(reg<<3 | 0x04)
			o.Write(sib)
		case disp >= -128 && disp <= 127 && !evex:
			o.Write(0x44 | reg<<3)
			o.Write(sib)
			o.Write(uint8(disp))
		default:
			o.Write(0x84 | reg<<3)
			o.Write(sib)
			o.imm32(disp)
		}
		return
	}

	// [base] and [base+disp]. Base encoding 4 (the stack pointer) is
	// not portable, so no SIB escape is ever needed here; base 5 has
	// no mod=00 form and takes the disp8=0 shape instead.
	switch {
	case disp == 0 && base != 5 && !evex:
		o.Write(reg<<3 | base)
	case disp >= -128 && disp <= 127 && !evex:
		o.Write(0x40 | reg<<3 | base)
		o.Write(uint8(disp))
	default:
		o.Write(0x80 | reg<<3 | base)
		o.imm32(disp)
	}
}

// rexIfNeeded emits a REX prefix when any extension bit or the width
// bit is set. On 32-bit x86 callers never set any of them.
func (o *Out) rexIfNeeded(w bool, reg, index, rm uint8) {
	rex := uint8(0x40)
	if w {
		rex |= 0x08
	}
	if reg&8 != 0 {
		rex |= 0x04
	}
	if index&8 != 0 {
		rex |= 0x02
	}
	if rm&8 != 0 {
		rex |= 0x01
	}
	if rex != 0x40 {
		o.Write(rex)
	}
}

// legacyOpcode emits prefix byte + 0F map escape + opcode.
func (o *Out) legacyOpcode(pp, mmap, op uint8) {
	if legacyPrefix[pp] != 0 {
		o.Write(legacyPrefix[pp])
	}
	o.Write(0x0F)
	if mmap == map0F38 {
		o.Write(0x38)
	} else if mmap == map0F3A {
		o.Write(0x3A)
	}
	o.Write(op)
}

// sseRR emits a legacy-SSE register-register instruction. REX extension
// bits are derived from the encodings, so xmm8-xmm14 work on x86_64.
// The mandatory prefix precedes REX, REX precedes the 0F escape.
func (o *Out) sseRR(pp, mmap, op uint8, reg, rm uint8) {
	if legacyPrefix[pp] != 0 {
		o.Write(legacyPrefix[pp])
	}
	o.rexIfNeeded(false, reg, 0, rm)
	o.Write(0x0F)
	if mmap == map0F38 {
		o.Write(0x38)
	} else if mmap == map0F3A {
		o.Write(0x3A)
	}
	o.Write(op)
	o.modRR(reg, rm)
}

// sseMem emits a legacy-SSE instruction with a memory operand.
func (o *Out) sseMem(pp, mmap, op uint8, reg uint8, ms Mem, ds Dsp, q int32) {
	if legacyPrefix[pp] != 0 {
		o.Write(legacyPrefix[pp])
	}
	o.rexIfNeeded(false, reg, 0, 0)
	o.Write(0x0F)
	if mmap == map0F38 {
		o.Write(0x38)
	} else if mmap == map0F3A {
		o.Write(0x3A)
	}
	o.Write(op)
	o.modMem(reg, ms, ds.masked(q), false)
}

// vexOpcode emits the three-byte VEX prefix followed by the opcode.
// Byte 1 carries inverted R/X/B and the map; byte 2 carries W, inverted
// vvvv, L and pp.
func (o *Out) vexOpcode(pp, mmap uint8, w bool, vvvv uint8, l256 bool, op uint8, reg, index, rm uint8) {
	o.Write(0xC4)
	b1 := mmap & 0x1F
	if reg&8 == 0 {
		b1 |= 0x80
	}
	if index&8 == 0 {
		b1 |= 0x40
	}
	if rm&8 == 0 {
		b1 |= 0x20
	}
	o.Write(b1)
	b2 := (^vvvv & 0x0F) << 3
	if w {
		b2 |= 0x80
	}
	if l256 {
		b2 |= 0x04
	}
	b2 |= pp
	o.Write(b2)
	o.Write(op)
}

// vexRR emits a VEX-encoded register-register instruction.
func (o *Out) vexRR(pp, mmap uint8, w bool, l256 bool, op uint8, reg, vvvv, rm uint8) {
	o.vexOpcode(pp, mmap, w, vvvv, l256, op, reg, 0, rm)
	o.modRR(reg, rm)
}

// vexMem emits a VEX-encoded instruction with a memory operand.
func (o *Out) vexMem(pp, mmap uint8, w bool, vvvv uint8, l256 bool, op uint8, reg uint8, ms Mem, ds Dsp, q int32) {
	var index uint8
	if ms.Kind == memIX {
		index = o.baseReg(ms.Index).Encoding
	}
	o.vexOpcode(pp, mmap, w, vvvv, l256, op, reg, index, o.baseReg(ms.Base).Encoding)
	o.modMem(reg, ms, ds.masked(q), false)
}

// evexOpcode emits the four-byte EVEX prefix followed by the opcode.
//
//	P0: 62
//	P1: ~R ~X ~B ~R' 0 0 m m
//	P2: W ~v ~v ~v ~v 1 p p
//	P3: z L' L b ~V' a a a
func (o *Out) evexOpcode(pp, mmap uint8, w bool, vvvv uint8, lcode uint8, aaa uint8, z bool, op uint8, reg, index, rm uint8) {
	o.Write(0x62)
	p1 := mmap & 0x03
	if reg&8 == 0 {
		p1 |= 0x80
	}
	if index&8 == 0 && rm&16 == 0 {
		p1 |= 0x40
	}
	if rm&8 == 0 {
		p1 |= 0x20
	}
	if reg&16 == 0 {
		p1 |= 0x10
	}
	o.Write(p1)
	p2 := uint8(0x04) | (^vvvv&0x0F)<<3 | pp
	if w {
		p2 |= 0x80
	}
	o.Write(p2)
	p3 := lcode<<5 | aaa&7
	if z {
		p3 |= 0x80
	}
	if vvvv&16 == 0 {
		p3 |= 0x08
	}
	o.Write(p3)
	o.Write(op)
}

// evexRR emits an EVEX-encoded register-register instruction.
func (o *Out) evexRR(pp, mmap uint8, w bool, lcode uint8, op uint8, reg, vvvv, rm uint8, aaa uint8, z bool) {
	o.evexOpcode(pp, mmap, w, vvvv, lcode, aaa, z, op, reg, 0, rm)
	o.modRR(reg, rm)
}

// evexMem emits an EVEX-encoded instruction with a memory operand.
// Memory forms stick to the mod=10 disp32 shape (see modMem).
func (o *Out) evexMem(pp, mmap uint8, w bool, vvvv uint8, lcode uint8, op uint8, reg uint8, ms Mem, ds Dsp, q int32, aaa uint8, z bool) {
	var index uint8
	if ms.Kind == memIX {
		index = o.baseReg(ms.Index).Encoding
	}
	o.evexOpcode(pp, mmap, w, vvvv, lcode, aaa, z, op, reg, index, o.baseReg(ms.Base).Encoding)
	o.modMem(reg, ms, ds.masked(q), true)
}

// x86SimdRR dispatches one portable SIMD register-register op to the
// width-appropriate encoding: legacy SSE at 128 bits, VEX at 256, EVEX
// at 512. VEX and EVEX take the three-operand shape with the
// destination doubling as first source, preserving the two-operand
// portable contract.
func (o *Out) x86SimdRR(pp, mmap, op uint8, w bool, g, s uint8) {
	switch o.target.SIMDWidth() {
	case 128:
		o.sseRR(pp, mmap, op, g, s)
	case 256:
		o.vexRR(pp, mmap, w, true, op, g, g, s)
	default:
		o.evexRR(pp, mmap, w, evexL512, op, g, g, s, 0, false)
	}
}

// x86SimdLD is the memory-source counterpart of x86SimdRR.
func (o *Out) x86SimdLD(pp, mmap, op uint8, w bool, g uint8, ms Mem, ds Dsp) {
	q := o.dispQ()
	switch o.target.SIMDWidth() {
	case 128:
		o.sseMem(pp, mmap, op, g, ms, ds, q)
	case 256:
		o.vexMem(pp, mmap, w, g, true, op, g, ms, ds, q)
	default:
		o.evexMem(pp, mmap, w, g, evexL512, op, g, ms, ds, q, 0, false)
	}
}

// x86Simd2RR dispatches a two-operand (no first-source) SIMD op, such
// as a move or a conversion: vvvv stays 1111.
func (o *Out) x86Simd2RR(pp, mmap, op uint8, w bool, reg, rm uint8) {
	switch o.target.SIMDWidth() {
	case 128:
		o.sseRR(pp, mmap, op, reg, rm)
	case 256:
		o.vexRR(pp, mmap, w, true, op, reg, noVVVV, rm)
	default:
		o.evexRR(pp, mmap, w, evexL512, op, reg, noVVVV, rm, 0, false)
	}
}

// x86Simd2Mem is the memory counterpart of x86Simd2RR; the caller
// supplies the direction through the opcode itself.
func (o *Out) x86Simd2Mem(pp, mmap, op uint8, w bool, reg uint8, ms Mem, ds Dsp) {
	q := o.dispQ()
	switch o.target.SIMDWidth() {
	case 128:
		o.sseMem(pp, mmap, op, reg, ms, ds, q)
	case 256:
		o.vexMem(pp, mmap, w, noVVVV, true, op, reg, ms, ds, q)
	default:
		o.evexMem(pp, mmap, w, noVVVV, evexL512, op, reg, ms, ds, q, 0, false)
	}
}

// BASE-op helpers. wide selects the 64-bit form (REX.W); the word
// forms never need REX on the portable register set. The displacement
// Q scale follows the operand width.

func (o *Out) x86BaseRR(op uint8, wide bool, reg, rm uint8) {
	o.rexIfNeeded(wide, reg, 0, rm)
	o.Write(op)
	o.modRR(reg, rm)
}

func (o *Out) x86BaseMem(op uint8, wide bool, reg uint8, ms Mem, ds Dsp) {
	var index uint8
	if ms.Kind == memIX {
		index = o.baseReg(ms.Index).Encoding
	}
	o.rexIfNeeded(wide, reg, index, o.baseReg(ms.Base).Encoding)
	o.Write(op)
	o.modMem(reg, ms, ds.masked(o.dispQ()), false)
}

// x86ArithDigitRI emits the group-1 immediate form (80 /digit ib or
// 81 /digit id) against a register destination. Byte-class immediates
// take the sign-extended short form.
func (o *Out) x86ArithDigitRI(digit uint8, wide bool, rm uint8, im Imm) {
	o.rexIfNeeded(wide, 0, 0, rm)
	if im.Class <= ImmIB && im.Val >= -128 && im.Val <= 127 {
		o.Write(0x83)
		o.modRR(digit, rm)
		o.Write(uint8(im.Val))
		return
	}
	o.Write(0x81)
	o.modRR(digit, rm)
	o.imm32(int32(im.Val))
}

// x86ArithDigitMI is the memory-destination form of x86ArithDigitRI.
func (o *Out) x86ArithDigitMI(digit uint8, wide bool, ms Mem, ds Dsp, im Imm) {
	var index uint8
	if ms.Kind == memIX {
		index = o.baseReg(ms.Index).Encoding
	}
	o.rexIfNeeded(wide, 0, index, o.baseReg(ms.Base).Encoding)
	if im.Class <= ImmIB && im.Val >= -128 && im.Val <= 127 {
		o.Write(0x83)
		o.modMem(digit, ms, ds.masked(o.dispQ()), false)
		o.Write(uint8(im.Val))
		return
	}
	o.Write(0x81)
	o.modMem(digit, ms, ds.masked(o.dispQ()), false)
	o.imm32(int32(im.Val))
}

// x86UnaryDigit emits an F7 /digit group-3 unary op (not, neg, mul,
// div) against a register.
func (o *Out) x86UnaryDigit(digit uint8, wide bool, rm uint8) {
	o.rexIfNeeded(wide, 0, 0, rm)
	o.Write(0xF7)
	o.modRR(digit, rm)
}

// x86ShiftDigit emits a group-2 shift: C1 /digit ib for immediate
// counts, D3 /digit for the count held in ecx.
func (o *Out) x86ShiftDigit(digit uint8, wide bool, rm uint8, count int64, byCL bool) {
	o.rexIfNeeded(wide, 0, 0, rm)
	if byCL {
		o.Write(0xD3)
		o.modRR(digit, rm)
		return
	}
	o.Write(0xC1)
	o.modRR(digit, rm)
	o.Write(uint8(count))
}

// x86AllOnes fills a vector register with all-one bits: PCMPEQD with
// itself below 512 bits, VPTERNLOGD at 512 where the integer compare
// writes a mask register instead.
func (o *Out) x86AllOnes(t uint8) {
	switch o.target.SIMDWidth() {
	case 128:
		o.sseRR(pp66, map0F, 0x76, t, t)
	case 256:
		o.vexRR(pp66, map0F, false, true, 0x76, t, t, t)
	default:
		o.evexRR(pp66, map0F3A, false, evexL512, 0x25, t, t, t, 0, false)
		o.Write(0xFF)
	}
}

// x86VShiftDigit shifts every lane of t by an immediate through the
// 0F 72/73 group: digit 6 left, 2 logical right, 4 arithmetic right.
// Arithmetic right stays in the 72 group for both widths; the qword
// form exists only as EVEX.W1. The VEX and EVEX forms carry the
// written register in vvvv.
func (o *Out) x86VShiftDigit(elem64 bool, digit, t, n uint8) {
	op := uint8(0x72)
	if elem64 {
		if digit == 4 && o.target.SIMDWidth() != 512 {
			panic("vecasm: qword arithmetic shift is 512-bit only")
		}
		if digit != 4 {
			op = 0x73
		}
	}
	switch o.target.SIMDWidth() {
	case 128:
		o.sseRR(pp66, map0F, op, digit, t)
	case 256:
		o.vexRR(pp66, map0F, false, true, op, digit, t, t)
	default:
		o.evexRR(pp66, map0F, elem64, evexL512, op, digit, t, t, 0, false)
	}
	o.Write(n)
}

// x86VShiftImm shifts every lane of t by an immediate, left or
// logical right.
func (o *Out) x86VShiftImm(elem64, left bool, t, n uint8) {
	digit := uint8(2)
	if left {
		digit = 6
	}
	o.x86VShiftDigit(elem64, digit, t, n)
}

// x86CarveConst splats the lane constant ones<<left>>right into t.
// Float constants whose bit pattern is one contiguous run (1.0, 0.5,
// 2.0) come out of two shifts of all-ones; no data segment needed.
func (o *Out) x86CarveConst(t uint8, elem64 bool, left, right uint8) {
	o.x86AllOnes(t)
	if left > 0 {
		o.x86VShiftImm(elem64, true, t, left)
	}
	if right > 0 {
		o.x86VShiftImm(elem64, false, t, right)
	}
}

// x86Splat3 builds 3.0 lanes in t by shifting all-ones down to integer
// 3 and converting in place (CVTDQ2PS, or CVTDQ2PD off the low half).
func (o *Out) x86Splat3(t uint8, elem64 bool) {
	o.x86AllOnes(t)
	o.x86VShiftImm(false, false, t, 30)
	if elem64 {
		o.x86Simd2RR(ppF3, map0F, 0xE6, false, t, t)
	} else {
		o.x86Simd2RR(ppNone, map0F, 0x5B, false, t, t)
	}
}

// x86RspAdj grows or shrinks the stack by a small byte count. The
// rounding bracket and the per-lane conversion fallback carve their
// scratch memory here, since nothing else in the portable model owns
// writable memory.
func (o *Out) x86RspAdj(n uint8, grow bool) {
	o.rexIfNeeded(o.target.arch.Is64Bit(), 0, 0, 0)
	o.Write(0x83)
	if grow {
		o.modRR(5, 4) // sub esp, n
	} else {
		o.modRR(0, 4) // add esp, n
	}
	o.Write(n)
}

// x86EspMem writes the ModRM, SIB and disp8 bytes of an [esp+disp]
// operand.
func (o *Out) x86EspMem(reg uint8, disp uint8) {
	o.Write(0x40 | (reg&7)<<3 | 0x04)
	o.Write(0x24)
	o.Write(disp)
}

// x87 helpers for the per-lane 64-bit integer conversion fallback.
// Opcode byte plus the /digit register field of the memory form.

func (o *Out) x87Mem(op uint8, digit uint8, ms Mem, ds Dsp, extra int32) {
	o.Write(op)
	disp := ds.masked(o.dispQ()) + extra
	o.modMem(digit, ms, disp, false)
}

// fldM64 loads a 64-bit float onto the x87 stack: DD /0.
func (o *Out) fldM64(ms Mem, ds Dsp, extra int32) { o.x87Mem(0xDD, 0, ms, ds, extra) }

// fstpM64 stores and pops a 64-bit float: DD /3.
func (o *Out) fstpM64(ms Mem, ds Dsp, extra int32) { o.x87Mem(0xDD, 3, ms, ds, extra) }

// fildM64 loads a 64-bit integer onto the x87 stack: DF /5.
func (o *Out) fildM64(ms Mem, ds Dsp, extra int32) { o.x87Mem(0xDF, 5, ms, ds, extra) }

// fistpM64 stores and pops a 64-bit integer (current mode): DF /7.
func (o *Out) fistpM64(ms Mem, ds Dsp, extra int32) { o.x87Mem(0xDF, 7, ms, ds, extra) }

// fisttpM64 stores and pops a 64-bit integer, always truncating: DD /1.
func (o *Out) fisttpM64(ms Mem, ds Dsp, extra int32) { o.x87Mem(0xDD, 1, ms, ds, extra) }

// x87Rsp is the stack-scratch counterpart of x87Mem.
func (o *Out) x87Rsp(op uint8, digit uint8, disp uint8) {
	o.Write(op)
	o.x86EspMem(digit, disp)
}

// x86VMoveRsp moves a whole vector register to or from the stack
// scratch at [esp+disp], unaligned since nothing guarantees the stack
// pointer beyond its ABI alignment.
func (o *Out) x86VMoveRsp(reg uint8, store bool, disp uint8) {
	op := uint8(0x10)
	if store {
		op = 0x11
	}
	if o.target.SIMDWidth() == 256 {
		o.vexOpcode(ppNone, map0F, false, noVVVV, true, op, reg, 0, 4)
	} else {
		o.rexIfNeeded(false, reg, 0, 0)
		o.Write(0x0F)
		o.Write(op)
	}
	o.x86EspMem(reg, disp)
}
