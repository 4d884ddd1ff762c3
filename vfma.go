package vecasm

// Packed fused multiply-add and multiply-subtract, three-operand:
// xg receives xg +/- xs*xt with a single rounding wherever the target
// fuses. The 128-bit x86 path has no fused encoding, so the product
// goes through the vector scratch and folds in with a separate add or
// subtract, rounding twice; VEX and EVEX use the 231 form which keeps
// the accumulator in the destination. On AArch32 CompatFma swaps the
// NEON VFMA/VFMS for a per-lane VFP pass in double precision, which
// rounds once on every core including those whose NEON unit flushes
// denormals.

const (
	x86FmaddOp  = 0xB8 // VFMADD231Px
	x86FnmaddOp = 0xBC // VFNMADD231Px

	armVfmaF32 = 0xF2000C50
	armVfmsF32 = 0xF2200C50

	// VFP words for the double-precision promote fallback.
	armVcvtF64S0 = 0xEEB70AC0 // VCVT.F64.F32 Dd, S(2m)
	armVcvtF64S1 = 0xEEB70AE0 // VCVT.F64.F32 Dd, S(2m+1)
	armVcvtS0F64 = 0xEEB70BC0 // VCVT.F32.F64 S(2d), Dm
	armVcvtS1F64 = 0xEEF70BC0 // VCVT.F32.F64 S(2d+1), Dm
	armVmulF64   = 0xEE200B00
	armVaddF64   = 0xEE300B00
	armVsubF64   = 0xEE300B40

	a64FmlaS = 0x4E20CC00
	a64FmlsS = 0x4EA0CC00
	a64FmlaD = 0x4E60CC00
	a64FmlsD = 0x4EE0CC00

	mipsFmaddW = 0x7900001B
	mipsFmsubW = 0x7940001B
	mipsFmaddD = 0x7920001B
	mipsFmsubD = 0x7960001B

	ppcXvmaddadp  = 0xF0000308
	ppcXvnmsubadp = 0xF0000788
)

// x86FmaRR folds a register product into g. foldOp is the SSE add or
// subtract used by the unfused 128-bit fallback.
func (o *Out) x86FmaRR(fmaOp, foldOp uint8, w bool, g, s, t uint8) {
	pp := ppNone
	if w {
		pp = pp66
	}
	switch o.target.SIMDWidth() {
	case 128:
		tm := o.vscratch()
		o.sseRR(pp, map0F, 0x28, tm, s)
		o.sseRR(pp, map0F, 0x59, tm, t)
		o.sseRR(pp, map0F, foldOp, g, tm)
	case 256:
		o.vexRR(pp66, map0F38, w, true, fmaOp, g, s, t)
	default:
		o.evexRR(pp66, map0F38, w, evexL512, fmaOp, g, s, t, 0, false)
	}
}

// x86FmaLD folds a memory product into g.
func (o *Out) x86FmaLD(fmaOp, foldOp uint8, w bool, g, s uint8, ms Mem, ds Dsp) {
	pp := ppNone
	if w {
		pp = pp66
	}
	q := o.dispQ()
	switch o.target.SIMDWidth() {
	case 128:
		tm := o.vscratch()
		o.sseRR(pp, map0F, 0x28, tm, s)
		o.sseMem(pp, map0F, 0x59, tm, ms, ds, q)
		o.sseRR(pp, map0F, foldOp, g, tm)
	case 256:
		o.vexMem(pp66, map0F38, w, s, true, fmaOp, g, ms, ds, q)
	default:
		o.evexMem(pp66, map0F38, w, s, evexL512, fmaOp, g, ms, ds, q, 0, false)
	}
}

// armFmaCompat computes each lane of g +/- s*t in double precision
// through the VFP unit: widen the multiplicand singles to scratch
// doubles, multiply there, widen the accumulator, fold, narrow back.
// One rounding total, like a true fused form. Every operand must sit
// in q0-q7 so its singles are addressable; the portable register set
// guarantees that, the vector scratch quads do not.
func (o *Out) armFmaCompat(sub bool, g, s, t uint8) {
	widen := func(d, src uint8, odd bool) {
		op := uint32(armVcvtF64S0)
		if odd {
			op = armVcvtF64S1
		}
		o.word(armMXM(op, d, 0, src))
	}
	sc := [4]uint8{armTmmC, armTmmD, armTmmE, armTmmF}
	for i, c := range sc {
		widen(c, s+uint8(i/2), i%2 == 1)
	}
	for i, c := range sc {
		widen(c+1, t+uint8(i/2), i%2 == 1)
	}
	for _, c := range sc {
		o.word(armMXM(armVmulF64, c, c, c+1))
	}
	for i, c := range sc {
		widen(c+1, g+uint8(i/2), i%2 == 1)
	}
	fold := uint32(armVaddF64)
	if sub {
		fold = armVsubF64
	}
	for _, c := range sc {
		o.word(armMXM(fold, c+1, c+1, c))
	}
	for i, c := range sc {
		op := uint32(armVcvtS0F64)
		if i%2 == 1 {
			op = armVcvtS1F64
		}
		o.word(armMXM(op, g+uint8(i/2), 0, c+1))
	}
}

// armFmaF32 routes a packed fp32 fused multiply-add or subtract to
// VFMA/VFMS, or to the double-precision fallback under CompatFma.
func (o *Out) armFmaF32(sub bool, g, s, t uint8) {
	if o.target.CompatFma {
		o.armFmaCompat(sub, g, s, t)
		return
	}
	op := uint32(armVfmaF32)
	if sub {
		op = armVfmsF32
	}
	o.armSimd3(op, g, s, t)
}

// armFmaF32LD is the memory-multiplicand form of armFmaF32. The
// compat path stages the operand in a borrowed low quad, since its
// lanes must alias the single-precision bank.
func (o *Out) armFmaF32LD(sub bool, g, s uint8, ms Mem, ds Dsp) {
	if o.target.CompatFma {
		spill := armBorrowQuad2(g, s)
		o.armVPush(spill)
		o.armVLD1(spill, o.armAddr(ms, ds))
		o.armFmaCompat(sub, g, s, spill)
		o.armVPop(spill)
		return
	}
	m := o.armLoadVScratch(ms, ds)
	op := uint32(armVfmaF32)
	if sub {
		op = armVfmsF32
	}
	o.armSimd3(op, g, s, m)
}

// FmaosRR accumulates a packed 32-bit float product: xg += xs * xt.
func (o *Out) FmaosRR(xg, xs, xt VReg) {
	g, s, t := o.vreg(xg), o.vreg(xs), o.vreg(xt)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaRR(x86FmaddOp, 0x58, false, g, s, t)
	case ArchARM:
		o.armFmaF32(false, g, s, t)
	case ArchARM64:
		o.a64Simd3(a64FmlaS, g, s, t)
	case ArchMIPS:
		o.word(mipsMSA3(mipsFmaddW, g, s, t))
	default:
		o.word(ppcVA(ppcVmaddfp, g, s, g, t))
	}
}

// FmaosLD accumulates a product with a memory multiplicand.
func (o *Out) FmaosLD(xg, xs VReg, ms Mem, ds Dsp) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaLD(x86FmaddOp, 0x58, false, g, s, ms, ds)
	case ArchARM:
		o.armFmaF32LD(false, g, s, ms, ds)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(a64FmlaS, g, s, m)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, false)
		o.word(mipsMSA3(mipsFmaddW, g, s, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.word(ppcVA(ppcVmaddfp, g, s, g, m))
	}
}

// FmsosRR subtracts a packed 32-bit float product: xg -= xs * xt.
func (o *Out) FmsosRR(xg, xs, xt VReg) {
	g, s, t := o.vreg(xg), o.vreg(xs), o.vreg(xt)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaRR(x86FnmaddOp, 0x5C, false, g, s, t)
	case ArchARM:
		o.armFmaF32(true, g, s, t)
	case ArchARM64:
		o.a64Simd3(a64FmlsS, g, s, t)
	case ArchMIPS:
		o.word(mipsMSA3(mipsFmsubW, g, s, t))
	default:
		o.word(ppcVA(ppcVnmsubfp, g, s, g, t))
	}
}

// FmsosLD subtracts a product with a memory multiplicand.
func (o *Out) FmsosLD(xg, xs VReg, ms Mem, ds Dsp) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaLD(x86FnmaddOp, 0x5C, false, g, s, ms, ds)
	case ArchARM:
		o.armFmaF32LD(true, g, s, ms, ds)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(a64FmlsS, g, s, m)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, false)
		o.word(mipsMSA3(mipsFmsubW, g, s, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.word(ppcVA(ppcVnmsubfp, g, s, g, m))
	}
}

// FmaqsRR accumulates a packed 64-bit float product: xg += xs * xt.
func (o *Out) FmaqsRR(xg, xs, xt VReg) {
	o.require64BitElems()
	g, s, t := o.vreg(xg), o.vreg(xs), o.vreg(xt)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaRR(x86FmaddOp, 0x58, true, g, s, t)
	case ArchARM64:
		o.a64Simd3(a64FmlaD, g, s, t)
	case ArchMIPS:
		o.word(mipsMSA3(mipsFmaddD, g, s, t))
	default:
		o.ppcSimd3(ppcXvmaddadp, g, s, t)
	}
}

// FmaqsLD accumulates a 64-bit product with a memory multiplicand.
func (o *Out) FmaqsLD(xg, xs VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaLD(x86FmaddOp, 0x58, true, g, s, ms, ds)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(a64FmlaD, g, s, m)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, true)
		o.word(mipsMSA3(mipsFmaddD, g, s, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcSimd3(ppcXvmaddadp, g, s, m)
	}
}

// FmsqsRR subtracts a packed 64-bit float product: xg -= xs * xt.
func (o *Out) FmsqsRR(xg, xs, xt VReg) {
	o.require64BitElems()
	g, s, t := o.vreg(xg), o.vreg(xs), o.vreg(xt)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaRR(x86FnmaddOp, 0x5C, true, g, s, t)
	case ArchARM64:
		o.a64Simd3(a64FmlsD, g, s, t)
	case ArchMIPS:
		o.word(mipsMSA3(mipsFmsubD, g, s, t))
	default:
		o.ppcSimd3(ppcXvnmsubadp, g, s, t)
	}
}

// FmsqsLD subtracts a 64-bit product with a memory multiplicand.
func (o *Out) FmsqsLD(xg, xs VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86FmaLD(x86FnmaddOp, 0x5C, true, g, s, ms, ds)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(a64FmlsD, g, s, m)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, true)
		o.word(mipsMSA3(mipsFmsubD, g, s, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcSimd3(ppcXvnmsubadp, g, s, m)
	}
}
