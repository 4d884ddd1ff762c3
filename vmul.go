package vecasm

// Packed multiply. The VMX side of POWER has no plain float multiply,
// so the 32-bit float forms go through vmaddfp with a zero addend
// splatted into a scratch register.

var (
	mulosOps = simdOp{ppNone, map0F, 0x59, false, 0xF3000D50, 0x6E20DC00, 0x7880001B, 0}
	mulqsOps = simdOp{pp66, map0F, 0x59, true, 0, 0x6E60DC00, 0x78A0001B, 0xF0000380}
	muloxOps = simdOp{pp66, map0F38, 0x40, false, 0xF2200950, 0x4EA09C00, 0x78400012, 0x10000089}
)

// VA-form template words shared by the multiply and the synthesized
// divide/square-root sequences.
const (
	ppcVmaddfp  = 0x1000002E
	ppcVnmsubfp = 0x1000002F
)

// ppcMulF32 emits d = a*b as vmaddfp with a zeroed TmmC.
func (o *Out) ppcMulF32(d, a, b uint8) {
	o.ppcVSplatIW(ppcTmmC, 0)
	o.word(ppcVA(ppcVmaddfp, d, a, ppcTmmC, b))
}

// MulosRR multiplies packed 32-bit floats: xg = xg * xs.
func (o *Out) MulosRR(xg, xs VReg) {
	if o.target.Arch() == ArchPOWER {
		o.ppcMulF32(o.vreg(xg), o.vreg(xg), o.vreg(xs))
		return
	}
	o.simdBinRR(mulosOps, xg, xs)
}

// MulosLD multiplies packed 32-bit floats from memory.
func (o *Out) MulosLD(xg VReg, ms Mem, ds Dsp) {
	if o.target.Arch() == ArchPOWER {
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcMulF32(o.vreg(xg), o.vreg(xg), m)
		return
	}
	o.simdBinLD(mulosOps, xg, ms, ds)
}

// MulqsRR multiplies packed 64-bit floats.
func (o *Out) MulqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(mulqsOps, xg, xs)
}

// MulqsLD multiplies packed 64-bit floats from memory.
func (o *Out) MulqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(mulqsOps, xg, ms, ds)
}

// MuloxRR multiplies packed 32-bit integers, keeping the low halves.
func (o *Out) MuloxRR(xg, xs VReg) { o.simdBinRR(muloxOps, xg, xs) }

// MuloxLD multiplies packed 32-bit integers from memory.
func (o *Out) MuloxLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(muloxOps, xg, ms, ds) }
