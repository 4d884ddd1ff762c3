package vecasm

// Packed shifts. The serial forms apply one count to every lane, from
// an immediate or from a scalar in memory; the variable forms shift
// each lane by the count in the matching lane of another register.
// Counts at or above the element width are form-dependent (the x86
// vector instructions saturate, scalar loops and the RISC targets
// reduce the count modulo the element width), so portable callers keep
// counts in range.
//
// Per architecture:
//
//	x86    0F 72/73 immediate group, 0F F2/D2/E2/F3/D3 by register,
//	       0F38 47/45/46 per lane (AVX2 and up; SSE2 walks the lanes
//	       through the stack with CL). The qword arithmetic right
//	       exists only at 512 bits; below that it is composed from
//	       the logical form and a sign fix.
//	ARM    VSHL/VSHR immediates; VSHL by register shifts by signed
//	       per-lane counts, so the right shifts negate first.
//	a64    SHL/USHR/SSHR immediates; USHL/SSHL by register, negated
//	       counts for the right shifts.
//	MIPS   BIT-format immediates, 3R-format by register; serial
//	       counts splat through FILL.W.
//	POWER  vsl/vsr/vsra word and doubleword forms; serial counts
//	       splat through vspltisw, or through a GPR when bit five of
//	       the count matters.

const (
	armVShlImm  = 0xF2800550 // imm6 = 32 + n
	armVShrUImm = 0xF3800050 // imm6 = 64 - n
	armVShrSImm = 0xF2800050
	armVShlRegU = 0xF3200440 // counts in Vn, data in Vm
	armVShlRegS = 0xF2200440
	armVNegS32  = 0xF3B903C0

	a64NegW = 0x6EA0B800 // NEG Vd.4s
	a64NegD = 0x6EE0B800 // NEG Vd.2d

	ppcVsrw  = 0x10000284
	ppcVsraw = 0x10000384
	ppcVsld  = 0x100005C4
	ppcVsrd  = 0x100006C4
	ppcVsrad = 0x100003C4
)

// vshiftOp carries one shift direction across the backends. The x86
// by-register opcodes pair with pp66/map0F, the per-lane opcode with
// map0F38; the ARM and a64 immediate bases take the encoded count in
// their imm6/imm7 fields.
type vshiftOp struct {
	digit uint8  // x86 immediate digit (6 left, 2 right, 4 arithmetic)
	xOpO  uint8  // x86 by-register opcode, dword lanes
	xOpQ  uint8  // x86 by-register opcode, qword lanes
	xVar  uint8  // x86 per-lane opcode
	right bool   // counts negate on the shift-by-signed-count targets
	sign  bool   // arithmetic right
	armI  uint32 // AArch32 immediate base
	armR  uint32 // AArch32 by-register base
	a64I  uint32 // a64 immediate base
	a64RO uint32 // a64 by-register, .4s
	a64RQ uint32 // a64 by-register, .2d
	mipsB uint32 // BIT-format operation selector
	mipsO uint32 // 3R by-register, words
	mipsQ uint32 // 3R by-register, doublewords
	ppcO  uint32
	ppcQ  uint32
}

var (
	shlOps = vshiftOp{6, 0xF2, 0xF3, 0x47, false, false,
		armVShlImm, armVShlRegU, 0x4F005400, 0x6EA04400, 0x6EE04400,
		0, 0x7840000D, 0x7860000D, ppcVslw, ppcVsld}
	shrOps = vshiftOp{2, 0xD2, 0xD3, 0x45, true, false,
		armVShrUImm, armVShlRegU, 0x6F000400, 0x6EA04400, 0x6EE04400,
		2, 0x7940000D, 0x7960000D, ppcVsrw, ppcVsrd}
	sraOps = vshiftOp{4, 0xE2, 0xE2, 0x46, true, true,
		armVShrSImm, armVShlRegS, 0x4F000400, 0x4EA04400, 0x4EE04400,
		1, 0x78C0000D, 0x78E0000D, ppcVsraw, ppcVsrad}
)

// dspPlus offsets a displacement, promoting PLAIN so the addend
// survives masking.
func dspPlus(ds Dsp, add int32) Dsp {
	c := ds.Class
	if c == DspPlain {
		c = DspDP
	}
	return Dsp{ds.Val + add, c}
}

// shiftImm emits the serial immediate form. The AArch32 and a64 right
// shifts have no zero-count encoding, so zero emits nothing there.
func (o *Out) shiftImm(t vshiftOp, elem64 bool, xg VReg, im Imm) {
	g := o.vreg(xg)
	mask := int64(31)
	if elem64 {
		mask = 63
	}
	n := uint8(im.Val & mask)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if t.sign && elem64 && o.target.SIMDWidth() != 512 {
			o.x86SraqImm(g, n)
			return
		}
		o.x86VShiftDigit(elem64, t.digit, g, n)
	case ArchARM:
		if t.right && n == 0 {
			return
		}
		enc := 32 + uint32(n)
		if t.right {
			enc = 64 - uint32(n)
		}
		o.armSimd2(t.armI|enc<<16, g, g)
	case ArchARM64:
		if t.right && n == 0 {
			return
		}
		var enc uint32
		if t.right {
			enc = 64 - uint32(n)
			if elem64 {
				enc = 128 - uint32(n)
			}
		} else {
			enc = 32 + uint32(n)
			if elem64 {
				enc = 64 + uint32(n)
			}
		}
		o.a64Simd2(t.a64I|enc<<16, g, g)
	case ArchMIPS:
		o.mipsBIT(t.mipsB, elem64, g, g, n)
	default:
		o.ppcSplatCount(elem64, n)
		op := t.ppcO
		if elem64 {
			op = t.ppcQ
		}
		o.ppcSimd3(op, g, g, ppcTmmM)
	}
}

// shiftLD emits the serial form with the count taken from a scalar at
// [ms+ds]: low five or six bits of a word or doubleword slot.
func (o *Out) shiftLD(t vshiftOp, elem64 bool, xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	dsl := ds
	if elem64 && o.target.bigEndian {
		dsl = dspPlus(ds, 4) // the live word of a big-endian doubleword slot
	}
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		tm := o.vscratch()
		o.x86LoadCount(elem64, tm, ms, ds)
		if t.sign && elem64 && o.target.SIMDWidth() != 512 {
			o.x86SimdRR(pp66, map0F, 0xD3, true, g, tm)
			o.x86SraqFix(g, tm)
			return
		}
		op := t.xOpO
		if elem64 {
			op = t.xOpQ
		}
		o.x86SimdRR(pp66, map0F, op, elem64, g, tm)
	case ArchARM:
		o.armLDST(0xE5900000, armTMxx, ms, ds)
		if t.right {
			o.word(0xE2600000 | armTMxx<<16 | armTMxx<<12)
		}
		o.armVDUP32(armTmmM, armTMxx)
		o.armSimd3(t.armR, g, armTmmM, g)
	case ArchARM64:
		o.a64LDST(0xB9400000, a64TMxx, ms, dsl, 4)
		if t.right {
			o.word(0x4B000000 | a64TMxx<<16 | 31<<5 | a64TMxx)
		}
		o.a64DupGPR(a64TmmM, a64TMxx, elem64)
		op := t.a64RO
		if elem64 {
			op = t.a64RQ
		}
		o.a64Simd3(op, g, g, a64TmmM)
	case ArchMIPS:
		o.mipsLDST(0x8C000000, mipsTMxx, ms, dsl)
		o.mipsFillW(mipsTmmM, mipsTMxx)
		op := t.mipsO
		if elem64 {
			op = t.mipsQ
		}
		o.word(mipsMSA3(op, g, g, mipsTmmM))
	default:
		o.ppcLDST(0x80000000, ppcTMxx, ms, dsl)
		o.ppcVSplatGPR(ppcTmmM, ppcTMxx)
		op := t.ppcO
		if elem64 {
			op = t.ppcQ
		}
		o.ppcSimd3(op, g, g, ppcTmmM)
	}
}

// shiftVarRR emits the per-lane form with counts in a register.
func (o *Out) shiftVarRR(t vshiftOp, elem64 bool, xg, xs VReg) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86ShiftVarRR(t, elem64, g, s)
	default:
		o.shiftVarReg(t, elem64, g, s)
	}
}

// shiftVarLD emits the per-lane form with counts loaded from memory.
func (o *Out) shiftVarLD(t vshiftOp, elem64 bool, xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86ShiftVarLD(t, elem64, g, ms, ds)
	case ArchARM:
		o.shiftVarReg(t, elem64, g, o.armLoadVScratch(ms, ds))
	case ArchARM64:
		o.shiftVarReg(t, elem64, g, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.shiftVarReg(t, elem64, g, o.mipsLoadVScratch(ms, ds, elem64))
	default:
		o.shiftVarReg(t, elem64, g, o.ppcLoadVScratch(ms, ds))
	}
}

// shiftVarReg handles the word-oriented targets once the counts sit in
// a vector register. Right shifts negate the counts into the scratch
// first, in place when they already live there.
func (o *Out) shiftVarReg(t vshiftOp, elem64 bool, g, c uint8) {
	switch o.target.Arch() {
	case ArchARM:
		if t.right {
			o.armSimd2(armVNegS32, armTmmM, c)
			c = armTmmM
		}
		o.armSimd3(t.armR, g, c, g)
	case ArchARM64:
		if t.right {
			op := uint32(a64NegW)
			if elem64 {
				op = a64NegD
			}
			o.a64Simd2(op, a64TmmM, c)
			c = a64TmmM
		}
		op := t.a64RO
		if elem64 {
			op = t.a64RQ
		}
		o.a64Simd3(op, g, g, c)
	case ArchMIPS:
		op := t.mipsO
		if elem64 {
			op = t.mipsQ
		}
		o.word(mipsMSA3(op, g, g, c))
	default:
		op := t.ppcO
		if elem64 {
			op = t.ppcQ
		}
		o.ppcSimd3(op, g, g, c)
	}
}

// ppcSplatCount stages a serial count in TmmM. Word counts always fit
// vspltisw (the field is signed; counts past 15 encode as their
// negative, which leaves the same low five bits). Doubleword counts
// past 15 go through a GPR so bit five survives the sign extension.
func (o *Out) ppcSplatCount(elem64 bool, n uint8) {
	if n <= 15 || !elem64 {
		v := int8(n)
		if n > 15 {
			v = int8(n) - 32
		}
		o.ppcVSplatIW(ppcTmmM, v)
		return
	}
	o.ppcImm(ppcTMxx, uint32(n))
	o.ppcVSplatGPR(ppcTmmM, ppcTMxx)
}

// x86LoadCount pulls a serial count into the low lane of tm: MOVD or
// MOVQ by element class. The 128-bit form serves every width; at 512
// the scratch lives past the VEX range, so the load goes EVEX.
func (o *Out) x86LoadCount(elem64 bool, tm uint8, ms Mem, ds Dsp) {
	pp, op, w, q := uint8(pp66), uint8(0x6E), false, int32(1)
	if elem64 {
		pp, op, w, q = ppF3, 0x7E, true, 2
	}
	switch o.target.SIMDWidth() {
	case 128:
		o.sseMem(pp, map0F, op, tm, ms, ds, q)
	case 256:
		o.vexMem(pp, map0F, false, noVVVV, false, op, tm, ms, ds, q)
	default:
		o.evexMem(pp, map0F, w, noVVVV, evexL128, op, tm, ms, ds, q, 0, false)
	}
}

// x86BorrowXmm spills a vector register outside the given live pair so
// sequences needing two scratches can run below 512 bits, where only
// one scratch register exists. x86BorrowDone reloads it.
func (o *Out) x86BorrowXmm(a, b uint8) uint8 {
	r := uint8(0)
	for r == a || r == b || r == o.vscratch() {
		r++
	}
	o.x86RspAdj(uint8(o.target.SIMDWidth()/8), true)
	o.x86VMoveRsp(r, true, 0)
	return r
}

func (o *Out) x86BorrowDone(r uint8) {
	o.x86VMoveRsp(r, false, 0)
	o.x86RspAdj(uint8(o.target.SIMDWidth()/8), false)
}

// x86SraqImm composes the qword arithmetic right immediate below 512
// bits: logical right, then the sign bits folded back in through
// sra(x,n) = (srl(x,n) ^ m) - m with m = 1 << (63-n).
func (o *Out) x86SraqImm(g, n uint8) {
	tm := o.vscratch()
	o.x86VShiftDigit(true, 2, g, n)
	o.x86CarveConst(tm, true, 63, n)
	o.x86SimdRR(pp66, map0F, 0xEF, false, g, tm)
	o.x86SimdRR(pp66, map0F, 0xFB, true, g, tm)
}

// x86SraqFix applies the same fold with the count in tm, m coming from
// a logical shift of the carved sign bit. g already holds the logical
// result.
func (o *Out) x86SraqFix(g, tm uint8) {
	b := o.x86BorrowXmm(g, tm)
	o.x86CarveConst(b, true, 63, 0)
	o.x86SimdRR(pp66, map0F, 0xD3, true, b, tm)
	o.x86SimdRR(pp66, map0F, 0xEF, false, g, b)
	o.x86SimdRR(pp66, map0F, 0xFB, true, g, b)
	o.x86BorrowDone(b)
}

// x86SravqFix is the per-lane version for 256-bit targets, where
// VPSRLVQ exists but VPSRAVQ does not.
func (o *Out) x86SravqFix(g, c uint8) {
	b := o.x86BorrowXmm(g, c)
	o.x86SimdRR(pp66, map0F38, 0x45, true, g, c)
	o.x86CarveConst(b, true, 63, 0)
	o.x86SimdRR(pp66, map0F38, 0x45, true, b, c)
	o.x86SimdRR(pp66, map0F, 0xEF, false, g, b)
	o.x86SimdRR(pp66, map0F, 0xFB, true, g, b)
	o.x86BorrowDone(b)
}

// x86ShiftVarRR resolves the per-lane register form on x86.
func (o *Out) x86ShiftVarRR(t vshiftOp, elem64 bool, g, s uint8) {
	if o.target.SIMDWidth() != 128 {
		if t.sign && elem64 && o.target.SIMDWidth() == 256 {
			o.x86SravqFix(g, s)
			return
		}
		o.x86SimdRR(pp66, map0F38, t.xVar, elem64, g, s)
		return
	}
	switch {
	case !elem64:
		o.x86ShiftLoop(t, false, g, s)
	case !t.sign:
		o.x86ShiftPatternRR(t.xOpQ, g, s)
	case o.target.Arch() == ArchX86_64:
		o.x86ShiftLoop(t, true, g, s)
	default:
		// 32-bit x86 has no 64-bit scalar shifts either: run the
		// logical pattern on the data and on the carved sign bit.
		b := o.x86BorrowXmm(g, s)
		o.x86ShiftPatternRR(0xD3, g, s)
		o.x86CarveConst(b, true, 63, 0)
		o.x86ShiftPatternRR(0xD3, b, s)
		o.x86SimdRR(pp66, map0F, 0xEF, false, g, b)
		o.x86SimdRR(pp66, map0F, 0xFB, true, g, b)
		o.x86BorrowDone(b)
	}
}

// x86ShiftVarLD resolves the per-lane memory form on x86. The 128-bit
// qword paths reread the counts from the operand instead of staging
// them, keeping the scratch free for data.
func (o *Out) x86ShiftVarLD(t vshiftOp, elem64 bool, g uint8, ms Mem, ds Dsp) {
	if o.target.SIMDWidth() != 128 {
		tm := o.vscratch()
		o.x86Simd2Mem(pp66, map0F, 0x6F, elem64, tm, ms, ds)
		if t.sign && elem64 && o.target.SIMDWidth() == 256 {
			o.x86SravqFix(g, tm)
			return
		}
		o.x86SimdRR(pp66, map0F38, t.xVar, elem64, g, tm)
		return
	}
	switch {
	case !elem64:
		tm := o.vscratch()
		o.x86Simd2Mem(pp66, map0F, 0x6F, false, tm, ms, ds)
		o.x86ShiftLoop(t, false, g, tm)
	case !t.sign:
		o.x86ShiftPatternLD(t.xOpQ, g, ms, ds)
	case o.target.Arch() == ArchX86_64:
		tm := o.vscratch()
		o.x86Simd2Mem(pp66, map0F, 0x6F, true, tm, ms, ds)
		o.x86ShiftLoop(t, true, g, tm)
	default:
		b := o.x86BorrowXmm(g, o.vscratch())
		o.x86ShiftPatternLD(0xD3, g, ms, ds)
		o.x86CarveConst(b, true, 63, 0)
		o.x86ShiftPatternLD(0xD3, b, ms, ds)
		o.x86SimdRR(pp66, map0F, 0xEF, false, g, b)
		o.x86SimdRR(pp66, map0F, 0xFB, true, g, b)
		o.x86BorrowDone(b)
	}
}

// x86ShiftLoop walks the lanes through the stack with scalar shifts,
// CL carrying each count. ECX belongs to the portable set, so it is
// saved around the loop.
func (o *Out) x86ShiftLoop(t vshiftOp, wide bool, g, c uint8) {
	digit := uint8(4)
	if t.sign {
		digit = 7
	} else if t.right {
		digit = 5
	}
	step := uint8(4)
	lanes := 4
	if wide {
		step, lanes = 8, 2
	}
	o.Write(0x51) // push ecx
	o.x86RspAdj(32, true)
	o.x86VMoveRsp(g, true, 0)
	o.x86VMoveRsp(c, true, 16)
	for k := 0; k < lanes; k++ {
		o.Write(0x8B) // mov ecx, [esp+16+step*k]
		o.x86EspMem(1, 16+step*uint8(k))
		o.rexIfNeeded(wide, 0, 0, 0)
		o.Write(0xD3) // shift [esp+step*k], cl
		o.x86EspMem(digit, step*uint8(k))
	}
	o.x86VMoveRsp(g, false, 0)
	o.x86RspAdj(32, false)
	o.Write(0x59) // pop ecx
}

// x86ShiftPatternRR applies a serial qword shift per lane at 128 bits:
// the low count drives a shifted copy, the high count comes down
// through PSHUFD and drives the original, and MOVLPS stitches the two
// halves back together.
func (o *Out) x86ShiftPatternRR(op uint8, g, c uint8) {
	tm := o.vscratch()
	o.x86Simd2RR(ppNone, map0F, 0x28, false, tm, g)
	o.x86SimdRR(pp66, map0F, op, true, tm, c)
	o.x86RspAdj(16, true)
	o.x86VMoveRsp(tm, true, 0)
	o.x86Simd2RR(pp66, map0F, 0x70, false, tm, c)
	o.Write(0xEE)
	o.x86SimdRR(pp66, map0F, op, true, g, tm)
	o.x86MovlpsRsp(g)
	o.x86RspAdj(16, false)
}

// x86ShiftPatternLD is the same stitch with both counts read straight
// from the memory operand: the serial shifts take m64 counts, so the
// low count needs no staging at all.
func (o *Out) x86ShiftPatternLD(op uint8, g uint8, ms Mem, ds Dsp) {
	tm := o.vscratch()
	o.x86Simd2RR(ppNone, map0F, 0x28, false, tm, g)
	o.sseMem(pp66, map0F, op, tm, ms, ds, 2)
	o.x86RspAdj(16, true)
	o.x86VMoveRsp(tm, true, 0)
	o.sseMem(ppF3, map0F, 0x7E, tm, ms, dspPlus(ds, 8), 2)
	o.x86SimdRR(pp66, map0F, op, true, g, tm)
	o.x86MovlpsRsp(g)
	o.x86RspAdj(16, false)
}

// x86MovlpsRsp loads the low qword of g from the stack scratch,
// leaving the high qword alone.
func (o *Out) x86MovlpsRsp(g uint8) {
	o.rexIfNeeded(false, g, 0, 0)
	o.Write(0x0F)
	o.Write(0x12)
	o.x86EspMem(g, 0)
}

// ShloxRI shifts packed 32-bit lanes left: xg = xg << n.
func (o *Out) ShloxRI(xg VReg, im Imm) { o.shiftImm(shlOps, false, xg, im) }

// ShloxLD shifts packed 32-bit lanes left by the scalar count at
// [ms+ds].
func (o *Out) ShloxLD(xg VReg, ms Mem, ds Dsp) { o.shiftLD(shlOps, false, xg, ms, ds) }

// ShroxRI shifts packed 32-bit lanes right, zero fill.
func (o *Out) ShroxRI(xg VReg, im Imm) { o.shiftImm(shrOps, false, xg, im) }

// ShroxLD shifts packed 32-bit lanes right by the count at [ms+ds],
// zero fill.
func (o *Out) ShroxLD(xg VReg, ms Mem, ds Dsp) { o.shiftLD(shrOps, false, xg, ms, ds) }

// ShronRI shifts packed 32-bit lanes right, sign fill.
func (o *Out) ShronRI(xg VReg, im Imm) { o.shiftImm(sraOps, false, xg, im) }

// ShronLD shifts packed 32-bit lanes right by the count at [ms+ds],
// sign fill.
func (o *Out) ShronLD(xg VReg, ms Mem, ds Dsp) { o.shiftLD(sraOps, false, xg, ms, ds) }

// ShlqxRI shifts packed 64-bit lanes left.
func (o *Out) ShlqxRI(xg VReg, im Imm) {
	o.require64BitElems()
	o.shiftImm(shlOps, true, xg, im)
}

// ShlqxLD shifts packed 64-bit lanes left by the scalar count at
// [ms+ds].
func (o *Out) ShlqxLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.shiftLD(shlOps, true, xg, ms, ds)
}

// ShrqxRI shifts packed 64-bit lanes right, zero fill.
func (o *Out) ShrqxRI(xg VReg, im Imm) {
	o.require64BitElems()
	o.shiftImm(shrOps, true, xg, im)
}

// ShrqxLD shifts packed 64-bit lanes right by the count at [ms+ds],
// zero fill.
func (o *Out) ShrqxLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.shiftLD(shrOps, true, xg, ms, ds)
}

// ShrqnRI shifts packed 64-bit lanes right, sign fill.
func (o *Out) ShrqnRI(xg VReg, im Imm) {
	o.require64BitElems()
	o.shiftImm(sraOps, true, xg, im)
}

// ShrqnLD shifts packed 64-bit lanes right by the count at [ms+ds],
// sign fill.
func (o *Out) ShrqnLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.shiftLD(sraOps, true, xg, ms, ds)
}

// SvloxRR shifts each 32-bit lane of xg left by the count in the
// matching lane of xs.
func (o *Out) SvloxRR(xg, xs VReg) { o.shiftVarRR(shlOps, false, xg, xs) }

// SvloxLD shifts each 32-bit lane left by the counts at [ms+ds].
func (o *Out) SvloxLD(xg VReg, ms Mem, ds Dsp) { o.shiftVarLD(shlOps, false, xg, ms, ds) }

// SvroxRR shifts each 32-bit lane right by the count in the matching
// lane of xs, zero fill.
func (o *Out) SvroxRR(xg, xs VReg) { o.shiftVarRR(shrOps, false, xg, xs) }

// SvroxLD shifts each 32-bit lane right by the counts at [ms+ds],
// zero fill.
func (o *Out) SvroxLD(xg VReg, ms Mem, ds Dsp) { o.shiftVarLD(shrOps, false, xg, ms, ds) }

// SvronRR shifts each 32-bit lane right by the count in the matching
// lane of xs, sign fill.
func (o *Out) SvronRR(xg, xs VReg) { o.shiftVarRR(sraOps, false, xg, xs) }

// SvronLD shifts each 32-bit lane right by the counts at [ms+ds],
// sign fill.
func (o *Out) SvronLD(xg VReg, ms Mem, ds Dsp) { o.shiftVarLD(sraOps, false, xg, ms, ds) }

// SvlqxRR shifts each 64-bit lane of xg left by the count in the
// matching lane of xs.
func (o *Out) SvlqxRR(xg, xs VReg) {
	o.require64BitElems()
	o.shiftVarRR(shlOps, true, xg, xs)
}

// SvlqxLD shifts each 64-bit lane left by the counts at [ms+ds].
func (o *Out) SvlqxLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.shiftVarLD(shlOps, true, xg, ms, ds)
}

// SvrqxRR shifts each 64-bit lane right by the count in the matching
// lane of xs, zero fill.
func (o *Out) SvrqxRR(xg, xs VReg) {
	o.require64BitElems()
	o.shiftVarRR(shrOps, true, xg, xs)
}

// SvrqxLD shifts each 64-bit lane right by the counts at [ms+ds],
// zero fill.
func (o *Out) SvrqxLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.shiftVarLD(shrOps, true, xg, ms, ds)
}

// SvrqnRR shifts each 64-bit lane right by the count in the matching
// lane of xs, sign fill.
func (o *Out) SvrqnRR(xg, xs VReg) {
	o.require64BitElems()
	o.shiftVarRR(sraOps, true, xg, xs)
}

// SvrqnLD shifts each 64-bit lane right by the counts at [ms+ds],
// sign fill.
func (o *Out) SvrqnLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.shiftVarLD(sraOps, true, xg, ms, ds)
}
