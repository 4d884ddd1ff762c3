package vecasm

// Packed float compares filling each lane with all-ones or all-zeros.
// x86 has the full predicate set in the CMPPS/CMPPD immediate; the
// RISC targets only encode eq/ge/gt, so less-than flavors swap their
// sources and not-equal complements an equality compare. MSA is the
// mirror image: it encodes eq/ne/lt/le and swaps for the greater-than
// flavors. At 512 bits the x86 compare writes a mask register, which a
// zeroing VPTERNLOG immediately spreads back into vector lanes.

type vcmpOp struct {
	imm   uint8 // x86 compare predicate
	arm   uint32
	a64   uint32
	mips  uint32
	ppc   uint32
	swap  bool // reverse sources on ARM, AArch64, POWER
	mswap bool // reverse sources on MSA
	not   bool // complement the result on ARM, AArch64, POWER
}

var (
	ceqosOps = vcmpOp{0x00, 0xF2000E40, 0x4E20E400, 0x7880001A, 0x100000C6, false, false, false}
	cneosOps = vcmpOp{0x04, 0xF2000E40, 0x4E20E400, 0x78C0001C, 0x100000C6, false, false, true}
	cltosOps = vcmpOp{0x01, 0xF3200E40, 0x6EA0E400, 0x7900001A, 0x100002C6, true, false, false}
	cleosOps = vcmpOp{0x02, 0xF3000E40, 0x6E20E400, 0x7980001A, 0x100001C6, true, false, false}
	cgtosOps = vcmpOp{0x06, 0xF3200E40, 0x6EA0E400, 0x7900001A, 0x100002C6, false, true, false}
	cgeosOps = vcmpOp{0x05, 0xF3000E40, 0x6E20E400, 0x7980001A, 0x100001C6, false, true, false}

	ceqqsOps = vcmpOp{0x00, 0, 0x4E60E400, 0x78A0001A, 0xF0000318, false, false, false}
	cneqsOps = vcmpOp{0x04, 0, 0x4E60E400, 0x78E0001C, 0xF0000318, false, false, true}
	cltqsOps = vcmpOp{0x01, 0, 0x6EE0E400, 0x7920001A, 0xF0000358, true, false, false}
	cleqsOps = vcmpOp{0x02, 0, 0x6E60E400, 0x79A0001A, 0xF0000398, true, false, false}
	cgtqsOps = vcmpOp{0x06, 0, 0x6EE0E400, 0x7920001A, 0xF0000358, false, true, false}
	cgeqsOps = vcmpOp{0x05, 0, 0x6E60E400, 0x79A0001A, 0xF0000398, false, true, false}
)

// x86CmpExpand512 spreads the k1 compare result back into full vector
// lanes with a zeroing ternary-logic fill.
func (o *Out) x86CmpExpand512(w bool, g uint8) {
	o.evexRR(pp66, map0F3A, w, evexL512, 0x25, g, g, g, 1, true)
	o.Write(0xFF)
}

func (o *Out) simdCmpRR(t vcmpOp, w bool, xg, xs VReg) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		pp := ppNone
		if w {
			pp = pp66
		}
		if o.target.SIMDWidth() == 512 {
			o.evexRR(pp, map0F, w, evexL512, 0xC2, 1, g, s, 0, false)
			o.Write(t.imm)
			o.x86CmpExpand512(w, g)
			return
		}
		o.x86SimdRR(pp, map0F, 0xC2, w, g, s)
		o.Write(t.imm)
	case ArchARM:
		n, m := g, s
		if t.swap {
			n, m = s, g
		}
		o.armSimd3(t.arm, g, n, m)
		if t.not {
			o.armSimd2(0xF3B005C0, g, g)
		}
	case ArchARM64:
		n, m := g, s
		if t.swap {
			n, m = s, g
		}
		o.a64Simd3(t.a64, g, n, m)
		if t.not {
			o.a64Simd2(0x6E205800, g, g)
		}
	case ArchMIPS:
		ws, wt := g, s
		if t.mswap {
			ws, wt = s, g
		}
		o.word(mipsMSA3(t.mips, g, ws, wt))
	default:
		a, b := g, s
		if t.swap {
			a, b = s, g
		}
		o.ppcSimd3(t.ppc, g, a, b)
		if t.not {
			o.ppcSimd3(ppcVnor, g, g, g)
		}
	}
}

func (o *Out) simdCmpLD(t vcmpOp, w bool, xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		pp := ppNone
		if w {
			pp = pp66
		}
		if o.target.SIMDWidth() == 512 {
			o.evexMem(pp, map0F, w, g, evexL512, 0xC2, 1, ms, ds, o.dispQ(), 0, false)
			o.Write(t.imm)
			o.x86CmpExpand512(w, g)
			return
		}
		o.x86SimdLD(pp, map0F, 0xC2, w, g, ms, ds)
		o.Write(t.imm)
	case ArchARM:
		m := o.armLoadVScratch(ms, ds)
		n := g
		if t.swap {
			n, m = m, g
		}
		o.armSimd3(t.arm, g, n, m)
		if t.not {
			o.armSimd2(0xF3B005C0, g, g)
		}
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		n := g
		if t.swap {
			n, m = m, g
		}
		o.a64Simd3(t.a64, g, n, m)
		if t.not {
			o.a64Simd2(0x6E205800, g, g)
		}
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, w)
		ws := g
		if t.mswap {
			ws, m = m, g
		}
		o.word(mipsMSA3(t.mips, g, ws, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		a := g
		if t.swap {
			a, m = m, g
		}
		o.ppcSimd3(t.ppc, g, a, m)
		if t.not {
			o.ppcSimd3(ppcVnor, g, g, g)
		}
	}
}

// CeqosRR sets lanes where packed 32-bit floats compare equal.
func (o *Out) CeqosRR(xg, xs VReg) { o.simdCmpRR(ceqosOps, false, xg, xs) }

// CeqosLD compares for equality against a memory operand.
func (o *Out) CeqosLD(xg VReg, ms Mem, ds Dsp) { o.simdCmpLD(ceqosOps, false, xg, ms, ds) }

// CneosRR sets lanes where packed 32-bit floats differ.
func (o *Out) CneosRR(xg, xs VReg) { o.simdCmpRR(cneosOps, false, xg, xs) }

// CneosLD compares for inequality against a memory operand.
func (o *Out) CneosLD(xg VReg, ms Mem, ds Dsp) { o.simdCmpLD(cneosOps, false, xg, ms, ds) }

// CltosRR sets lanes where xg sorts below xs.
func (o *Out) CltosRR(xg, xs VReg) { o.simdCmpRR(cltosOps, false, xg, xs) }

// CltosLD compares less-than against a memory operand.
func (o *Out) CltosLD(xg VReg, ms Mem, ds Dsp) { o.simdCmpLD(cltosOps, false, xg, ms, ds) }

// CleosRR sets lanes where xg sorts below or equal to xs.
func (o *Out) CleosRR(xg, xs VReg) { o.simdCmpRR(cleosOps, false, xg, xs) }

// CleosLD compares less-or-equal against a memory operand.
func (o *Out) CleosLD(xg VReg, ms Mem, ds Dsp) { o.simdCmpLD(cleosOps, false, xg, ms, ds) }

// CgtosRR sets lanes where xg sorts above xs.
func (o *Out) CgtosRR(xg, xs VReg) { o.simdCmpRR(cgtosOps, false, xg, xs) }

// CgtosLD compares greater-than against a memory operand.
func (o *Out) CgtosLD(xg VReg, ms Mem, ds Dsp) { o.simdCmpLD(cgtosOps, false, xg, ms, ds) }

// CgeosRR sets lanes where xg sorts above or equal to xs.
func (o *Out) CgeosRR(xg, xs VReg) { o.simdCmpRR(cgeosOps, false, xg, xs) }

// CgeosLD compares greater-or-equal against a memory operand.
func (o *Out) CgeosLD(xg VReg, ms Mem, ds Dsp) { o.simdCmpLD(cgeosOps, false, xg, ms, ds) }

// CeqqsRR sets lanes where packed 64-bit floats compare equal.
func (o *Out) CeqqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdCmpRR(ceqqsOps, true, xg, xs)
}

// CeqqsLD compares 64-bit floats for equality against memory.
func (o *Out) CeqqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdCmpLD(ceqqsOps, true, xg, ms, ds)
}

// CneqsRR sets lanes where packed 64-bit floats differ.
func (o *Out) CneqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdCmpRR(cneqsOps, true, xg, xs)
}

// CneqsLD compares 64-bit floats for inequality against memory.
func (o *Out) CneqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdCmpLD(cneqsOps, true, xg, ms, ds)
}

// CltqsRR sets lanes where 64-bit xg sorts below xs.
func (o *Out) CltqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdCmpRR(cltqsOps, true, xg, xs)
}

// CltqsLD compares 64-bit less-than against memory.
func (o *Out) CltqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdCmpLD(cltqsOps, true, xg, ms, ds)
}

// CleqsRR sets lanes where 64-bit xg sorts below or equal to xs.
func (o *Out) CleqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdCmpRR(cleqsOps, true, xg, xs)
}

// CleqsLD compares 64-bit less-or-equal against memory.
func (o *Out) CleqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdCmpLD(cleqsOps, true, xg, ms, ds)
}

// CgtqsRR sets lanes where 64-bit xg sorts above xs.
func (o *Out) CgtqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdCmpRR(cgtqsOps, true, xg, xs)
}

// CgtqsLD compares 64-bit greater-than against memory.
func (o *Out) CgtqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdCmpLD(cgtqsOps, true, xg, ms, ds)
}

// CgeqsRR sets lanes where 64-bit xg sorts above or equal to xs.
func (o *Out) CgeqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdCmpRR(cgeqsOps, true, xg, xs)
}

// CgeqsLD compares 64-bit greater-or-equal against memory.
func (o *Out) CgeqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdCmpLD(cgeqsOps, true, xg, ms, ds)
}
