package vecasm

// Packed bitwise logic. The integer forms (PAND/POR/PXOR and friends)
// cover every width with plain AVX-512F at 512 bits, where the float
// forms would drag in the DQ extension. Annox and Ornox invert the
// destination, not the source; x86 PANDN already has that shape, the
// RISC targets get it by swapping the source operands of their
// clear/or-complement ops, and MSA spells the inversion out with NOR.

var (
	andoxOps = simdOp{pp66, map0F, 0xDB, false, 0xF2000150, 0x4E201C00, 0x7800001E, 0x10000404}
	annoxOps = simdOp{pp66, map0F, 0xDF, false, 0xF2100150, 0x4E601C00, 0, 0x10000444}
	orroxOps = simdOp{pp66, map0F, 0xEB, false, 0xF2200150, 0x4EA01C00, 0x7820001E, 0x10000484}
	ornoxOps = simdOp{0, 0, 0, false, 0xF2300150, 0x4EE01C00, 0, 0}
	xoroxOps = simdOp{pp66, map0F, 0xEF, false, 0xF3000150, 0x6E201C00, 0x7860001E, 0x100004C4}
)

const (
	mipsAndV = 0x7800001E
	mipsOrV  = 0x7820001E
	mipsNorV = 0x7840001E
	ppcVnor  = 0x10000504
	ppcVslw  = 0x10000184
)

// AndoxRR ands packed elements: xg &= xs.
func (o *Out) AndoxRR(xg, xs VReg) { o.simdBinRR(andoxOps, xg, xs) }

// AndoxLD ands packed elements from memory.
func (o *Out) AndoxLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(andoxOps, xg, ms, ds) }

// OrroxRR ors packed elements: xg |= xs.
func (o *Out) OrroxRR(xg, xs VReg) { o.simdBinRR(orroxOps, xg, xs) }

// OrroxLD ors packed elements from memory.
func (o *Out) OrroxLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(orroxOps, xg, ms, ds) }

// XoroxRR xors packed elements: xg ^= xs.
func (o *Out) XoroxRR(xg, xs VReg) { o.simdBinRR(xoroxOps, xg, xs) }

// XoroxLD xors packed elements from memory.
func (o *Out) XoroxLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(xoroxOps, xg, ms, ds) }

// AnnoxRR ands the complemented destination: xg = ^xg & xs.
func (o *Out) AnnoxRR(xg, xs VReg) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86SimdRR(annoxOps.pp, annoxOps.mmap, annoxOps.op, false, g, s)
	case ArchARM:
		o.armSimd3(annoxOps.arm, g, s, g)
	case ArchARM64:
		o.a64Simd3(annoxOps.a64, g, s, g)
	case ArchMIPS:
		o.word(mipsMSA3(mipsNorV, g, g, g))
		o.word(mipsMSA3(mipsAndV, g, g, s))
	default:
		o.ppcSimd3(annoxOps.ppc, g, s, g)
	}
}

// AnnoxLD ands the complemented destination with a memory operand.
func (o *Out) AnnoxLD(xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86SimdLD(annoxOps.pp, annoxOps.mmap, annoxOps.op, false, g, ms, ds)
	case ArchARM:
		m := o.armLoadVScratch(ms, ds)
		o.armSimd3(annoxOps.arm, g, m, g)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(annoxOps.a64, g, m, g)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, false)
		o.word(mipsMSA3(mipsNorV, g, g, g))
		o.word(mipsMSA3(mipsAndV, g, g, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcSimd3(annoxOps.ppc, g, m, g)
	}
}

// OrnoxRR ors the complemented destination: xg = ^xg | xs. x86 has no
// or-complement, so the destination is inverted against all-ones
// first; POWER sticks to NOR+OR rather than require the 2.07 vorc.
func (o *Out) OrnoxRR(xg, xs VReg) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		t := o.vscratch()
		o.x86AllOnes(t)
		o.x86SimdRR(pp66, map0F, 0xEF, false, g, t)
		o.x86SimdRR(pp66, map0F, 0xEB, false, g, s)
	case ArchARM:
		o.armSimd3(ornoxOps.arm, g, s, g)
	case ArchARM64:
		o.a64Simd3(ornoxOps.a64, g, s, g)
	case ArchMIPS:
		o.word(mipsMSA3(mipsNorV, g, g, g))
		o.word(mipsMSA3(mipsOrV, g, g, s))
	default:
		o.ppcSimd3(ppcVnor, g, g, g)
		o.ppcSimd3(0x10000484, g, g, s)
	}
}

// OrnoxLD ors the complemented destination with a memory operand.
func (o *Out) OrnoxLD(xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		t := o.vscratch()
		o.x86AllOnes(t)
		o.x86SimdRR(pp66, map0F, 0xEF, false, g, t)
		o.x86SimdLD(pp66, map0F, 0xEB, false, g, ms, ds)
	case ArchARM:
		m := o.armLoadVScratch(ms, ds)
		o.armSimd3(ornoxOps.arm, g, m, g)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(ornoxOps.a64, g, m, g)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, false)
		o.word(mipsMSA3(mipsNorV, g, g, g))
		o.word(mipsMSA3(mipsOrV, g, g, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcSimd3(ppcVnor, g, g, g)
		o.ppcSimd3(0x10000484, g, g, m)
	}
}

// NotoxRx complements every bit in place: xg = ^xg.
func (o *Out) NotoxRx(xg VReg) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		t := o.vscratch()
		o.x86AllOnes(t)
		o.x86SimdRR(pp66, map0F, 0xEF, false, g, t)
	case ArchARM:
		o.armSimd2(0xF3B005C0, g, g)
	case ArchARM64:
		o.a64Simd2(0x6E205800, g, g)
	case ArchMIPS:
		o.word(mipsMSA3(mipsNorV, g, g, g))
	default:
		o.ppcSimd3(ppcVnor, g, g, g)
	}
}

// NegosRx negates packed 32-bit floats in place by flipping the sign
// bit. ARM and AArch64 have a float negate; the others build the sign
// mask from shifted all-ones (or flip the bit directly on MSA).
func (o *Out) NegosRx(xg VReg) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		t := o.vscratch()
		o.x86CarveConst(t, false, 31, 0)
		o.x86SimdRR(pp66, map0F, 0xEF, false, g, t)
	case ArchARM:
		o.armSimd2(0xF3B907C0, g, g)
	case ArchARM64:
		o.a64Simd2(0x6EA0F800, g, g)
	case ArchMIPS:
		o.mipsVBitFlip(false, g, 31)
	default:
		o.ppcVSplatIW(ppcTmmC, -1)
		o.ppcSimd3(ppcVslw, ppcTmmC, ppcTmmC, ppcTmmC)
		o.ppcSimd3(0x100004C4, g, g, ppcTmmC)
	}
}

// NegqsRx negates packed 64-bit floats in place.
func (o *Out) NegqsRx(xg VReg) {
	o.require64BitElems()
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		t := o.vscratch()
		o.x86CarveConst(t, true, 63, 0)
		o.x86SimdRR(pp66, map0F, 0xEF, true, g, t)
	case ArchARM64:
		o.a64Simd2(0x6EE0F800, g, g)
	case ArchMIPS:
		o.mipsVBitFlip(true, g, 63)
	default:
		o.ppcSimd2(0xF00007E4, g, g)
	}
}
