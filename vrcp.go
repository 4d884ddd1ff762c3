package vecasm

// Reciprocal and reciprocal square-root estimates with their
// Newton-Raphson step ops. The estimate seeds a refinement loop under
// caller control; one step squeezes roughly twice the accurate bits
// out of the current value.
//
// Step contract: xg holds the estimate, xs the original operand.
// Backends without a fused step instruction compose the round from
// multiplies and adds and clobber xs doing so.

var (
	rceosOps = simdOp{ppNone, map0F, 0x53, false, 0xF3BB0540, 0x4EA1D800, 0x7B2A001E, 0x1000010A}
	rseosOps = simdOp{ppNone, map0F, 0x52, false, 0xF3BB05C0, 0x6EA1D800, 0x7B28001E, 0x1000014A}
	rceqsOps = simdOp{0, 0, 0, true, 0, 0x4EE1D800, 0x7B2B001E, 0xF0000368}
	rseqsOps = simdOp{0, 0, 0, true, 0, 0x6EE1D800, 0x7B29001E, 0xF0000328}
)

// isX86 reports whether the target runs either x86 backend.
func (o *Out) isX86() bool {
	a := o.target.Arch()
	return a == ArchX86 || a == ArchX86_64
}

// RceosRR estimates packed reciprocals: xd ~= 1 / xs. Precision is
// whatever the hardware estimate gives (8 to 14 bits depending on the
// backend); refine with RcsosRR.
func (o *Out) RceosRR(xd, xs VReg) {
	if o.isX86() && o.target.SIMDWidth() == 512 {
		o.evexRR(pp66, map0F38, false, evexL512, 0x4C, o.vreg(xd), noVVVV, o.vreg(xs), 0, false)
		return
	}
	o.simdUnRR(rceosOps, xd, xs)
}

// RseosRR estimates packed reciprocal square roots: xd ~= 1/sqrt(xs).
func (o *Out) RseosRR(xd, xs VReg) {
	if o.isX86() && o.target.SIMDWidth() == 512 {
		o.evexRR(pp66, map0F38, false, evexL512, 0x4E, o.vreg(xd), noVVVV, o.vreg(xs), 0, false)
		return
	}
	o.simdUnRR(rseosOps, xd, xs)
}

// RceqsRR estimates packed 64-bit reciprocals. SSE and AVX have no
// double-precision estimate, so below 512 bits the x86 backends divide
// a carved 1.0 exactly instead; everywhere else the hardware estimate
// serves.
func (o *Out) RceqsRR(xd, xs VReg) {
	o.require64BitElems()
	if o.isX86() {
		if o.target.SIMDWidth() == 512 {
			o.evexRR(pp66, map0F38, true, evexL512, 0x4C, o.vreg(xd), noVVVV, o.vreg(xs), 0, false)
			return
		}
		d, s := o.vreg(xd), o.vreg(xs)
		t := o.vscratch()
		o.x86CarveConst(t, true, 54, 2) // 1.0
		o.x86SimdRR(pp66, map0F, 0x5E, true, t, s)
		o.movVV(d, t)
		return
	}
	o.simdUnRR(rceqsOps, xd, xs)
}

// RseqsRR estimates packed 64-bit reciprocal square roots; the
// sub-512 x86 form computes sqrt then divides, which is exact rather
// than an estimate.
func (o *Out) RseqsRR(xd, xs VReg) {
	o.require64BitElems()
	if o.isX86() {
		if o.target.SIMDWidth() == 512 {
			o.evexRR(pp66, map0F38, true, evexL512, 0x4E, o.vreg(xd), noVVVV, o.vreg(xs), 0, false)
			return
		}
		d, s := o.vreg(xd), o.vreg(xs)
		t := o.vscratch()
		o.x86Simd2RR(pp66, map0F, 0x51, true, t, s) // t = sqrt(s)
		o.x86CarveConst(d, true, 54, 2)             // d = 1.0
		o.x86SimdRR(pp66, map0F, 0x5E, true, d, t)
		return
	}
	o.simdUnRR(rseqsOps, xd, xs)
}

// RcsosRR runs one reciprocal refinement round: xg = xg*(2 - xs*xg).
func (o *Out) RcsosRR(xg, xs VReg) {
	switch o.target.Arch() {
	case ArchARM:
		g, s := o.vreg(xg), o.vreg(xs)
		o.armSimd3(armVrecps, armTmmM, g, s)
		o.armSimd3(armVmulF32, g, g, armTmmM)
	case ArchARM64:
		g, s := o.vreg(xg), o.vreg(xs)
		o.a64Simd3(0x4E20FC00, a64TmmM, g, s)
		o.a64Simd3(0x6E20DC00, g, g, a64TmmM)
	default:
		o.MulosRR(xs, xg)
		o.MulosRR(xs, xg)
		o.AddosRR(xg, xg)
		o.SubosRR(xg, xs)
	}
}

// RcsqsRR runs one 64-bit reciprocal refinement round.
func (o *Out) RcsqsRR(xg, xs VReg) {
	o.require64BitElems()
	if o.target.Arch() == ArchARM64 {
		g, s := o.vreg(xg), o.vreg(xs)
		o.a64Simd3(0x4E60FC00, a64TmmM, g, s)
		o.a64Simd3(0x6E60DC00, g, g, a64TmmM)
		return
	}
	o.MulqsRR(xs, xg)
	o.MulqsRR(xs, xg)
	o.AddqsRR(xg, xg)
	o.SubqsRR(xg, xs)
}

// RssosRR runs one reciprocal square-root refinement round:
// xg = xg*(3 - xs*xg*xg)/2.
func (o *Out) RssosRR(xg, xs VReg) {
	switch o.target.Arch() {
	case ArchARM:
		g, s := o.vreg(xg), o.vreg(xs)
		o.armSimd3(armVmulF32, armTmmM, g, s)
		o.armSimd3(armVrsqrts, armTmmM, armTmmM, g)
		o.armSimd3(armVmulF32, g, g, armTmmM)
	case ArchARM64:
		g, s := o.vreg(xg), o.vreg(xs)
		o.a64Simd3(0x6E20DC00, a64TmmM, g, s)
		o.a64Simd3(0x4EA0FC00, a64TmmM, a64TmmM, g)
		o.a64Simd3(0x6E20DC00, g, g, a64TmmM)
	case ArchMIPS:
		g, s := o.vreg(xg), o.vreg(xs)
		o.MulosRR(xs, xg)
		o.MulosRR(xs, xg)
		o.mipsSplat3(mipsTmmC, false)
		o.word(mipsMSA3(0x7840001B, mipsTmmC, mipsTmmC, s)) // 3 - xs*xg*xg
		o.word(mipsMSA3(0x7880001B, g, g, mipsTmmC))
		o.mipsAllOnes(mipsTmmC)
		o.mipsVShiftImm(false, true, mipsTmmC, 26)
		o.mipsVShiftImm(false, false, mipsTmmC, 2) // 0.5
		o.word(mipsMSA3(0x7880001B, g, g, mipsTmmC))
	case ArchPOWER:
		g, s := o.vreg(xg), o.vreg(xs)
		o.ppcMulF32(s, s, g)
		o.ppcMulF32(s, s, g)
		o.ppcSplatFP(ppcTmmC, 3, 0)
		o.word(ppcVX(ppcVsubfp, ppcTmmD, ppcTmmC, s))
		o.ppcSplatFP(ppcTmmC, 1, 1)
		o.word(ppcVX(ppcVxor, ppcTmmF, ppcTmmF, ppcTmmF))
		o.word(ppcVA(ppcVmaddfp, ppcTmmD, ppcTmmD, ppcTmmF, ppcTmmC))
		o.word(ppcVA(ppcVmaddfp, g, g, ppcTmmF, ppcTmmD))
	default:
		g, s := o.vreg(xg), o.vreg(xs)
		t := o.vscratch()
		o.x86SimdRR(ppNone, map0F, 0x59, false, s, g)
		o.x86SimdRR(ppNone, map0F, 0x59, false, s, g)
		o.x86Splat3(t, false)
		o.x86SimdRR(ppNone, map0F, 0x5C, false, t, s)
		o.x86SimdRR(ppNone, map0F, 0x59, false, g, t)
		o.x86CarveConst(t, false, 26, 2) // 0.5
		o.x86SimdRR(ppNone, map0F, 0x59, false, g, t)
	}
}

// RssqsRR runs one 64-bit reciprocal square-root refinement round.
func (o *Out) RssqsRR(xg, xs VReg) {
	o.require64BitElems()
	switch o.target.Arch() {
	case ArchARM64:
		g, s := o.vreg(xg), o.vreg(xs)
		o.a64Simd3(0x6E60DC00, a64TmmM, g, s)
		o.a64Simd3(0x4EE0FC00, a64TmmM, a64TmmM, g)
		o.a64Simd3(0x6E60DC00, g, g, a64TmmM)
	case ArchMIPS:
		g, s := o.vreg(xg), o.vreg(xs)
		o.MulqsRR(xs, xg)
		o.MulqsRR(xs, xg)
		o.mipsSplat3(mipsTmmC, true)
		o.word(mipsMSA3(0x7860001B, mipsTmmC, mipsTmmC, s))
		o.word(mipsMSA3(0x78A0001B, g, g, mipsTmmC))
		o.mipsAllOnes(mipsTmmC)
		o.mipsVShiftImm(true, true, mipsTmmC, 55)
		o.mipsVShiftImm(true, false, mipsTmmC, 2) // 0.5
		o.word(mipsMSA3(0x78A0001B, g, g, mipsTmmC))
	case ArchPOWER:
		g, s := o.vreg(xg), o.vreg(xs)
		o.MulqsRR(xs, xg)
		o.MulqsRR(xs, xg)
		o.ppcVSplatIW(ppcTmmC, 3)
		o.word(ppcXX2(0xF00003E0, vsx(ppcTmmC), vsx(ppcTmmC))) // int words to doubles
		o.word(ppcXX3(0xF0000340, vsx(ppcTmmC), vsx(ppcTmmC), vsx(s)))
		o.word(ppcXX3(0xF0000380, vsx(g), vsx(g), vsx(ppcTmmC)))
		o.ppcVSplatIW(ppcTmmC, 2)
		o.word(ppcXX2(0xF00003E0, vsx(ppcTmmC), vsx(ppcTmmC)))
		o.word(ppcXX3(0xF00003C0, vsx(g), vsx(g), vsx(ppcTmmC)))
	default:
		g, s := o.vreg(xg), o.vreg(xs)
		t := o.vscratch()
		o.x86SimdRR(pp66, map0F, 0x59, true, s, g)
		o.x86SimdRR(pp66, map0F, 0x59, true, s, g)
		o.x86Splat3(t, true)
		o.x86SimdRR(pp66, map0F, 0x5C, true, t, s)
		o.x86SimdRR(pp66, map0F, 0x59, true, g, t)
		o.x86CarveConst(t, true, 55, 2) // 0.5
		o.x86SimdRR(pp66, map0F, 0x59, true, g, t)
	}
}
