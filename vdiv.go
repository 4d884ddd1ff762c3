package vecasm

// Packed divide. x86, AArch64, MSA and the VSX side of POWER divide
// natively. NEON and VMX have no packed float divide: those backends
// synthesize the quotient from a reciprocal estimate refined with
// Newton-Raphson rounds, or divide each lane exactly when CompatDiv is
// set (NEON only; the scalar unit shares the low quad registers).

var (
	divosOps = simdOp{ppNone, map0F, 0x5E, false, 0, 0x6E20FC00, 0x78C0001B, 0}
	divqsOps = simdOp{pp66, map0F, 0x5E, true, 0, 0x6E60FC00, 0x78E0001B, 0xF00003C0}
)

// NEON words shared by the synthesized divide and square root.
const (
	armVrecpe  = 0xF3BB0540
	armVrecps  = 0xF2000F50
	armVmulF32 = 0xF3000D50
	armVmlaF32 = 0xF2000D50
	armVmlsF32 = 0xF2200D50
	armVorrMov = 0xF2200150
)

// VX estimate words on POWER.
const (
	ppcVrefp     = 0x1000010A
	ppcVrsqrtefp = 0x1000014A
	ppcVsubfp    = 0x1000004A
	ppcVxor      = 0x100004C4
)

// armDivF32 emits xg = xg / s on raw register numbers.
//
// The synthesized form is one VRECPE estimate, three VRECPS+VMUL
// refinement rounds on the reciprocal, a quotient multiply, then a
// residual/correction pair that recovers the bits the reciprocal
// path loses:
//
//	t = recpe(s)
//	t = t * recps(t, s)    three times
//	q = g * t
//	r = g - s*q
//	q = q + r*t
//	g = q
//
// The step count and order are fixed; consumers rely on the sequence
// byte for byte. CompatDiv takes scalar VDIV.F32 over the four lanes
// instead, giving correctly rounded quotients at scalar speed.
func (o *Out) armDivF32(g, s uint8) {
	if o.target.CompatDiv {
		for lane := uint8(0); lane < 4; lane++ {
			o.armVDIVF32(2*g+lane, 2*g+lane, 2*s+lane)
		}
		return
	}
	o.armSimd2(armVrecpe, armTmmM, s)
	for i := 0; i < 3; i++ {
		o.armSimd3(armVrecps, armTmmC, armTmmM, s)
		o.armSimd3(armVmulF32, armTmmM, armTmmM, armTmmC)
	}
	o.armSimd3(armVmulF32, armTmmC, g, armTmmM)
	o.armSimd3(armVmlsF32, g, s, armTmmC)
	o.armSimd3(armVmlaF32, armTmmC, g, armTmmM)
	o.armSimd3(armVorrMov, g, armTmmC, armTmmC)
}

// armBorrowQuad picks a low quad register distinct from g for staging
// a memory operand next to the single-precision bank.
func armBorrowQuad(g uint8) uint8 {
	if g == 14 {
		return 12
	}
	return 14
}

// armBorrowQuad2 picks a low quad register distinct from both a and b.
func armBorrowQuad2(a, b uint8) uint8 {
	for _, q := range [3]uint8{14, 12, 10} {
		if q != a && q != b {
			return q
		}
	}
	return 8
}

// ppcDivF32 emits xg = xg / s on the VMX side:
//
//	t = vrefp(s)
//	e = 1.0 - t*s; t = t*e + t    two rounds
//	g = g*t
func (o *Out) ppcDivF32(g, s uint8) {
	o.word(ppcVX(ppcVrefp, ppcTmmM, 0, s))
	o.ppcSplatFP(ppcTmmC, 1, 0)
	for i := 0; i < 2; i++ {
		o.word(ppcVA(ppcVnmsubfp, ppcTmmD, ppcTmmM, ppcTmmC, s))
		o.word(ppcVA(ppcVmaddfp, ppcTmmM, ppcTmmM, ppcTmmM, ppcTmmD))
	}
	o.word(ppcVX(ppcVxor, ppcTmmF, ppcTmmF, ppcTmmF))
	o.word(ppcVA(ppcVmaddfp, g, g, ppcTmmF, ppcTmmM))
}

// DivosRR divides packed 32-bit floats: xg = xg / xs.
func (o *Out) DivosRR(xg, xs VReg) {
	switch o.target.Arch() {
	case ArchARM:
		o.armDivF32(o.vreg(xg), o.vreg(xs))
	case ArchPOWER:
		o.ppcDivF32(o.vreg(xg), o.vreg(xs))
	default:
		o.simdBinRR(divosOps, xg, xs)
	}
}

// DivosLD divides packed 32-bit floats by a memory operand.
func (o *Out) DivosLD(xg VReg, ms Mem, ds Dsp) {
	switch o.target.Arch() {
	case ArchARM:
		g := o.vreg(xg)
		if o.target.CompatDiv {
			spill := armBorrowQuad(g)
			o.armVPush(spill)
			o.armVLD1(spill, o.armAddr(ms, ds))
			o.armDivF32(g, spill)
			o.armVPop(spill)
			return
		}
		o.armVLD1(armTmmD, o.armAddr(ms, ds))
		o.armDivF32(g, armTmmD)
	case ArchPOWER:
		o.ppcVMem(ppcLvx, ppcTmmE, ms, ds)
		o.ppcDivF32(o.vreg(xg), ppcTmmE)
	default:
		o.simdBinLD(divosOps, xg, ms, ds)
	}
}

// DivqsRR divides packed 64-bit floats.
func (o *Out) DivqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(divqsOps, xg, xs)
}

// DivqsLD divides packed 64-bit floats by a memory operand.
func (o *Out) DivqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(divqsOps, xg, ms, ds)
}
