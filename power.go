package vecasm

// POWER field packers: D/X-form word assembly, addis-based
// displacement splitting, VMX (VX/VA) and VSX (XX2/XX3) register
// placement. BASE ops follow the 64-bit ABI; r0 never serves as a base
// or destination since RA=0 reads as zero in D-form addressing.

// ppcD packs a D-form word: op | rt<<21 | ra<<16 | imm16.
func ppcD(op uint32, rt, ra uint8, imm uint32) uint32 {
	return op | uint32(rt)<<21 | uint32(ra)<<16 | imm&0xFFFF
}

// ppcX packs an X-form word with the target in bits 25:21:
// op | rt<<21 | ra<<16 | rb<<11.
func ppcX(op uint32, rt, ra, rb uint8) uint32 {
	return op | uint32(rt)<<21 | uint32(ra)<<16 | uint32(rb)<<11
}

// ppcXS packs the logical X-form shape where the source sits in bits
// 25:21 and the destination in 20:16 (and, or, xor, shifts).
func ppcXS(op uint32, ra, rs, rb uint8) uint32 {
	return op | uint32(rs)<<21 | uint32(ra)<<16 | uint32(rb)<<11
}

// ppcMov emits mr rd, rs as OR with itself.
func (o *Out) ppcMov(rd, rs uint8) {
	o.word(ppcXS(0x7C000378, rd, rs, rs))
}

// ppcImm loads a 32-bit constant: li for small signed values, lis plus
// ori otherwise.
func (o *Out) ppcImm(rt uint8, v uint32) {
	if int32(v) >= -0x8000 && int32(v) <= 0x7FFF {
		o.word(ppcD(0x38000000, rt, 0, v))
		return
	}
	o.word(ppcD(0x3C000000, rt, 0, v>>16))
	if v&0xFFFF != 0 {
		o.word(ppcD(0x60000000, rt, rt, v))
	}
}

// ppcSldi emits a left shift by a constant via rldicr.
func (o *Out) ppcSldi(rd, rs uint8, sh uint8) {
	me := 63 - sh
	o.word(0x78000004 | uint32(rs)<<21 | uint32(rd)<<16 |
		uint32(sh&31)<<11 | uint32(me&31)<<6 | uint32(me>>5)<<5 | uint32(sh>>5)<<1)
}

// ppcMemBase folds a scaled-index operand through TDxx.
func (o *Out) ppcMemBase(ms Mem) uint8 {
	base := o.baseReg(ms.Base).Encoding
	if ms.Kind != memIX {
		return base
	}
	index := o.baseReg(ms.Index).Encoding
	if s := ms.log2Scale(); s != 0 {
		o.ppcSldi(ppcTDxx, index, s)
		index = ppcTDxx
	}
	o.word(ppcX(0x7C000214, ppcTDxx, base, index))
	return ppcTDxx
}

// ppcSplitDisp splits a displacement into a sign-compensated high half
// for addis and a signed low half for the access itself.
func ppcSplitDisp(disp int32) (hi, lo uint32) {
	h := (disp + 0x8000) >> 16
	return uint32(h), uint32(disp - h<<16)
}

// ppcLDST emits a D-form load or store, inserting one addis when the
// displacement exceeds the signed-16 field. DS-form ops (ld, std, lwa)
// keep their XO in the low bits; masked displacements always clear
// them.
func (o *Out) ppcLDST(op uint32, rt uint8, ms Mem, ds Dsp) {
	base := o.ppcMemBase(ms)
	disp := ds.masked(2)
	if disp <= 0x7FFF {
		o.word(ppcD(op, rt, base, uint32(disp)))
		return
	}
	hi, lo := ppcSplitDisp(disp)
	o.word(ppcD(0x3C000000, ppcTDxx, base, hi))
	o.word(ppcD(op, rt, ppcTDxx, lo))
}

// ppcVX packs a VX-form SIMD word: op | vd<<21 | va<<16 | vb<<11.
func ppcVX(op uint32, vd, va, vb uint8) uint32 {
	return op | uint32(vd)<<21 | uint32(va)<<16 | uint32(vb)<<11
}

// ppcVA packs a VA-form word with the extra vc field at bits 10:6.
func ppcVA(op uint32, vd, va, vb, vc uint8) uint32 {
	return op | uint32(vd)<<21 | uint32(va)<<16 | uint32(vb)<<11 | uint32(vc)<<6
}

// ppcXX3 packs a VSX XX3-form word. Register arguments are VSX numbers
// 0-63; VMX registers map to the upper half, so the extension bits come
// from bit 5 of each number.
func ppcXX3(op uint32, xt, xa, xb uint8) uint32 {
	return op | uint32(xt&31)<<21 | uint32(xa&31)<<16 | uint32(xb&31)<<11 |
		uint32(xa>>5)<<2 | uint32(xb>>5)<<1 | uint32(xt>>5)
}

// ppcXX2 packs a VSX XX2-form word (no A operand).
func ppcXX2(op uint32, xt, xb uint8) uint32 {
	return op | uint32(xt&31)<<21 | uint32(xb&31)<<11 |
		uint32(xb>>5)<<1 | uint32(xt>>5)
}

// vsx converts a VMX register number to its VSX number.
func vsx(v uint8) uint8 { return v + 32 }

// ppcSimd3 routes a three-register SIMD word to the right packer: VSX
// ops (major 60) get XX3 fields with the VMX alias offset, everything
// else is VX-form.
func (o *Out) ppcSimd3(op uint32, vd, va, vb uint8) {
	if op>>26 == 60 {
		o.word(ppcXX3(op, vsx(vd), vsx(va), vsx(vb)))
		return
	}
	o.word(ppcVX(op, vd, va, vb))
}

// ppcSimd2 routes a two-register SIMD word: XX2 for VSX, VX with the
// source in the vb slot otherwise.
func (o *Out) ppcSimd2(op uint32, vd, vb uint8) {
	if op>>26 == 60 {
		o.word(ppcXX2(op, vsx(vd), vsx(vb)))
		return
	}
	o.word(ppcVX(op, vd, 0, vb))
}

// VMX load/store templates (lvx, stvx).
const (
	ppcLvx  = 0x7C0000CE
	ppcStvx = 0x7C0001CE
)

// ppcLoadVScratch pulls a memory operand into the TmmM vector scratch.
func (o *Out) ppcLoadVScratch(ms Mem, ds Dsp) uint8 {
	o.ppcVMem(ppcLvx, ppcTmmM, ms, ds)
	return ppcTmmM
}

// ppcVMem emits lvx or stvx against base+disp: the zero-displacement
// form addresses through RA=0/RB=base, otherwise the displacement is
// synthesized into TIxx and paired with the base.
func (o *Out) ppcVMem(op uint32, vd uint8, ms Mem, ds Dsp) {
	base := o.ppcMemBase(ms)
	disp := ds.masked(2)
	if disp == 0 {
		o.word(ppcX(op, vd, 0, base))
		return
	}
	o.ppcImm(ppcTIxx, uint32(disp))
	o.word(ppcX(op, vd, base, ppcTIxx))
}

// ppcVSplatIW emits vspltisw vd, simm5 for small splat constants.
func (o *Out) ppcVSplatIW(vd uint8, simm int8) {
	o.word(0x1000038C | uint32(vd)<<21 | uint32(uint8(simm)&0x1F)<<16)
}

// ppcVCfsx emits vcfsx vd, vb, scale: signed word to float with a
// power-of-two downscale.
func (o *Out) ppcVCfsx(vd, vb uint8, scale uint8) {
	o.word(0x1000034A | uint32(vd)<<21 | uint32(scale)<<16 | uint32(vb)<<11)
}

// ppcVSplatGPR replicates the low word of a GPR across every lane of
// vd: mtvsrwz lands the word in doubleword element 0 of the VSR,
// xxspltw fans out word element 1. Doubleword lanes see the value in
// both halves, which keeps low-six-bit shift counts intact.
func (o *Out) ppcVSplatGPR(vd, ra uint8) {
	x := vsx(vd)
	o.word(0x7C0001E6 | uint32(x&31)<<21 | uint32(ra)<<16 | uint32(x>>5))
	o.word(ppcXX2(0xF0000290|1<<16, x, x))
}

// ppcSplatFP builds the splat constant n/2^scale in float form; the
// synthesized divide and square-root sequences get their 1.0, 0.5 and
// 3.0 this way instead of owning a constant pool.
func (o *Out) ppcSplatFP(vd uint8, n int8, scale uint8) {
	o.ppcVSplatIW(vd, n)
	o.ppcVCfsx(vd, vd, scale)
}

// mffs saves the FPSCR into an FPR; mtfsf restores all eight nibbles
// from one. The rounding-mode bracket parks the old FPSCR in f0, which
// nothing else here touches.
func (o *Out) ppcMFFS(frt uint8) { o.word(0xFC00048E | uint32(frt)<<21) }

func (o *Out) ppcMTFSF(frb uint8) { o.word(0xFC00058E | 0xFF<<17 | uint32(frb)<<11) }

// mtfsfi writes one immediate nibble into FPSCR field 7, whose low two
// bits hold the rounding mode.
func (o *Out) ppcMTFSFI(mode uint32) {
	o.word(0xFC00010C | 7<<23 | (mode&0xF)<<12)
}

// ppcBC emits a conditional branch: bc BO,BI,offset with the offset in
// words relative to the branch itself.
func (o *Out) ppcBC(bo, bi uint8, words int32) {
	o.word(0x40000000 | uint32(bo)<<21 | uint32(bi)<<16 | uint32(words)<<2&0xFFFC)
}

// ppcB emits an unconditional branch, offset in words relative to the
// branch itself.
func (o *Out) ppcB(words int32) {
	o.word(0x48000000 | uint32(words)<<2&0x03FFFFFC)
}
