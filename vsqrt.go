package vecasm

// Packed square root. Same backend split as the divide: native
// everywhere except NEON and VMX, which refine a reciprocal
// square-root estimate and multiply by the operand, or run scalar
// VSQRT.F32 per lane under CompatSqr.

var (
	sqrosOps = simdOp{ppNone, map0F, 0x51, false, 0, 0x6EA1F800, 0x7B26001E, 0}
	sqrqsOps = simdOp{pp66, map0F, 0x51, true, 0, 0x6EE1F800, 0x7B27001E, 0xF000032C}
)

const (
	armVrsqrte = 0xF3BB05C0
	armVrsqrts = 0xF2200F50
)

// armSqrF32 emits xd = sqrt(s) on raw register numbers.
//
// The synthesized form refines a VRSQRTE estimate twice and multiplies
// back by the operand:
//
//	t = rsqrte(s)
//	c = t*s; t = t * rsqrts(c, t)    two rounds
//	d = s * t
//
// CompatSqr takes scalar VSQRT.F32 over the four lanes.
func (o *Out) armSqrF32(d, s uint8) {
	if o.target.CompatSqr {
		for lane := uint8(0); lane < 4; lane++ {
			o.armVSQRTF32(2*d+lane, 2*s+lane)
		}
		return
	}
	o.armSimd2(armVrsqrte, armTmmM, s)
	for i := 0; i < 2; i++ {
		o.armSimd3(armVmulF32, armTmmC, armTmmM, s)
		o.armSimd3(armVrsqrts, armTmmC, armTmmC, armTmmM)
		o.armSimd3(armVmulF32, armTmmM, armTmmM, armTmmC)
	}
	o.armSimd3(armVmulF32, d, s, armTmmM)
}

// ppcSqrF32 emits xd = sqrt(s) on the VMX side:
//
//	t = vrsqrtefp(s)
//	t = t * (1.5 - 0.5*s*t*t)    two rounds
//	d = s * t
//
// The 1.5 and 0.5 constants are splatted once up front; zero lands in
// a scratch via vxor for the plain-multiply addend.
func (o *Out) ppcSqrF32(d, s uint8) {
	o.word(ppcVX(ppcVxor, ppcTmmF, ppcTmmF, ppcTmmF))
	o.word(ppcVX(ppcVrsqrtefp, ppcTmmM, 0, s))
	o.ppcSplatFP(ppcTmmC, 3, 1)
	o.ppcSplatFP(ppcTmmG, 1, 1)
	for i := 0; i < 2; i++ {
		o.word(ppcVA(ppcVmaddfp, ppcTmmD, ppcTmmM, ppcTmmF, ppcTmmM))
		o.word(ppcVA(ppcVmaddfp, ppcTmmD, ppcTmmD, ppcTmmF, s))
		o.word(ppcVA(ppcVmaddfp, ppcTmmD, ppcTmmD, ppcTmmF, ppcTmmG))
		o.word(ppcVX(ppcVsubfp, ppcTmmD, ppcTmmC, ppcTmmD))
		o.word(ppcVA(ppcVmaddfp, ppcTmmM, ppcTmmM, ppcTmmF, ppcTmmD))
	}
	o.word(ppcVA(ppcVmaddfp, d, s, ppcTmmF, ppcTmmM))
}

// SqrosRR takes the square root of packed 32-bit floats: xd = sqrt(xs).
func (o *Out) SqrosRR(xd, xs VReg) {
	switch o.target.Arch() {
	case ArchARM:
		o.armSqrF32(o.vreg(xd), o.vreg(xs))
	case ArchPOWER:
		o.ppcSqrF32(o.vreg(xd), o.vreg(xs))
	default:
		o.simdUnRR(sqrosOps, xd, xs)
	}
}

// SqrosLD takes the square root of a packed memory operand.
func (o *Out) SqrosLD(xd VReg, ms Mem, ds Dsp) {
	switch o.target.Arch() {
	case ArchARM:
		d := o.vreg(xd)
		if o.target.CompatSqr {
			spill := armBorrowQuad(d)
			o.armVPush(spill)
			o.armVLD1(spill, o.armAddr(ms, ds))
			o.armSqrF32(d, spill)
			o.armVPop(spill)
			return
		}
		o.armVLD1(armTmmD, o.armAddr(ms, ds))
		o.armSqrF32(d, armTmmD)
	case ArchPOWER:
		o.ppcVMem(ppcLvx, ppcTmmE, ms, ds)
		o.ppcSqrF32(o.vreg(xd), ppcTmmE)
	default:
		o.simdUnLD(sqrosOps, xd, ms, ds)
	}
}

// SqrqsRR takes the square root of packed 64-bit floats.
func (o *Out) SqrqsRR(xd, xs VReg) {
	o.require64BitElems()
	o.simdUnRR(sqrqsOps, xd, xs)
}

// SqrqsLD takes the square root of a packed 64-bit float memory
// operand.
func (o *Out) SqrqsLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdUnLD(sqrqsOps, xd, ms, ds)
}
