package vecasm

// Conversions between packed floats and same-width signed integers,
// plus rounding to integral values in float form. Each operation comes
// in four strengths:
//
//   - z/p/m forms always honor their named direction, through a native
//     directed instruction where the ISA has one and through a rounding
//     bracket where it does not.
//   - n forms assume the ambient mode still sits at the power-on
//     default (nearest-even) and take the cheapest path there.
//   - t/d forms follow the ambient mode, whatever it is. VMX encodes
//     the direction in the opcode, so on POWER the fp32 ambient forms
//     mean nearest.
//   - r forms take the direction as an argument.
//
// AArch32 NEON rounds fp32 to integral by passing through int32, so
// those forms are exact only for values inside the int32 range. The
// x86 fp64<->int64 forms below 512-bit width walk the lanes through
// x87, whose control word the rounding bracket keeps in step with
// MXCSR.

const (
	armVcvtSF32 = 0xF3BB0740 // VCVT.S32.F32 q, truncating
	armVcvtFS32 = 0xF3BB0640 // VCVT.F32.S32 q

	mipsFtruncSW = 0x7B22001E
	mipsFtintSW  = 0x7B38001E
	mipsFfintSW  = 0x7B3C001E
	mipsFrintW   = 0x7B2C001E
	mipsMsaDfD   = 0x10000 // .w form -> .d form

	ppcVctsxs     = 0x100003CA
	ppcXvcvdpsxds = 0xF0000760
	ppcXvcvsxddp  = 0xF00007E0

	a64SzD = 0x400000 // .4s form -> .2d form
)

// Directed-form tables indexed by RoundMode (nearest, minus, plus,
// zero). The POWER fp64 nearest slot holds the current-mode form since
// VSX has no nearest-even round; rnQsDir brackets it when the direction
// must hold.
var (
	a64Frint  = [4]uint32{0x4E218800, 0x4E219800, 0x4EA18800, 0x4EA19800}
	a64Fcvt   = [4]uint32{0x4E21A800, 0x4E21B800, 0x4EA1A800, 0x4EA1B800}
	ppcVrfi   = [4]uint32{0x1000020A, 0x100002CA, 0x1000028A, 0x1000024A}
	ppcXvrdpi = [4]uint32{0xF00003AC, 0xF00003E4, 0xF00003A4, 0xF0000364}
)

const a64FrintI = 0x6EA19800 // FRINTI, ambient mode

// x86RoundImm emits ROUNDPS/ROUNDPD (VRNDSCALE at 512 bits) with an
// explicit rounding immediate: the mode value for directed rounding,
// 0x04 to follow MXCSR.
func (o *Out) x86RoundImm(w bool, d, s, imm uint8) {
	op := uint8(0x08)
	if w {
		op = 0x09
	}
	o.x86Simd2RR(pp66, map0F3A, op, w, d, s)
	o.Write(imm)
}

// x86RoundImmLD is the memory-source form of x86RoundImm.
func (o *Out) x86RoundImmLD(w bool, d uint8, ms Mem, ds Dsp, imm uint8) {
	op := uint8(0x08)
	if w {
		op = 0x09
	}
	o.x86Simd2Mem(pp66, map0F3A, op, w, d, ms, ds)
	o.Write(imm)
}

// x86CvtQStack converts 64-bit lanes through the x87 unit: store the
// source vector to stack scratch, run the load/store x87 pair over each
// lane in place, load the result. The pairs are FLD+FISTTP (truncate),
// FLD+FISTP (x87 control word mode) and FILD+FSTP (int to fp).
func (o *Out) x86CvtQStack(d, s uint8, ldOp, ldDigit, stOp, stDigit uint8) {
	scratch := uint8(o.target.SIMDWidth() / 8)
	o.x86RspAdj(scratch, true)
	o.x86VMoveRsp(s, true, 0)
	for k := 0; k < o.target.Lanes64(); k++ {
		o.x87Rsp(ldOp, ldDigit, uint8(8*k))
		o.x87Rsp(stOp, stDigit, uint8(8*k))
	}
	o.x86VMoveRsp(d, false, 0)
	o.x86RspAdj(scratch, false)
}

// armCvtrLanes converts four fp32 lanes to int32 one at a time with
// VCVTR, which honors FPSCR. Both quads must sit in q0-q7 so that
// their lanes alias the single-precision bank; the portable register
// set guarantees that, scratch quads do not.
func (o *Out) armCvtrLanes(d, s uint8) {
	for lane := uint8(0); lane < 4; lane++ {
		o.armVCVTRSW(2*d+lane, 2*s+lane)
	}
}

// armCvtrLoad runs armCvtrLanes against a memory source staged in a
// borrowed low quad, since the usual TmmM scratch sits outside the
// single-precision bank.
func (o *Out) armCvtrLoad(d uint8, ms Mem, ds Dsp) {
	spill := armBorrowQuad(d)
	o.armVPush(spill)
	o.armVLD1(spill, o.armAddr(ms, ds))
	o.armCvtrLanes(d, spill)
	o.armVPop(spill)
}

// rnOsDir rounds fp32 lanes to integral values in the given direction.
func (o *Out) rnOsDir(mode RoundMode, xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImm(false, d, s, uint8(mode))
	case ArchARM:
		if mode == RoundZero {
			o.armSimd2(armVcvtSF32, d, s)
		} else {
			o.FctrlEnter(mode)
			o.armCvtrLanes(d, s)
			o.FctrlLeave()
		}
		o.armSimd2(armVcvtFS32, d, d)
	case ArchARM64:
		o.a64Simd2(a64Frint[mode], d, s)
	case ArchMIPS:
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFrintW, d, s))
		o.FctrlLeave()
	default:
		o.word(ppcVX(ppcVrfi[mode], d, 0, s))
	}
}

// rnOsDirLD is the memory-source form of rnOsDir.
func (o *Out) rnOsDirLD(mode RoundMode, xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImmLD(false, d, ms, ds, uint8(mode))
	case ArchARM:
		if mode == RoundZero {
			o.armSimd2(armVcvtSF32, d, o.armLoadVScratch(ms, ds))
		} else {
			o.FctrlEnter(mode)
			o.armCvtrLoad(d, ms, ds)
			o.FctrlLeave()
		}
		o.armSimd2(armVcvtFS32, d, d)
	case ArchARM64:
		o.a64Simd2(a64Frint[mode], d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFrintW, d, o.mipsLoadVScratch(ms, ds, false)))
		o.FctrlLeave()
	default:
		o.word(ppcVX(ppcVrfi[mode], d, 0, o.ppcLoadVScratch(ms, ds)))
	}
}

// cvtOsDir converts fp32 lanes to int32 in the given direction.
func (o *Out) cvtOsDir(mode RoundMode, xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if mode != RoundZero {
			o.x86RoundImm(false, d, s, uint8(mode))
			s = d
		}
		o.x86Simd2RR(ppF3, map0F, 0x5B, false, d, s)
	case ArchARM:
		if mode == RoundZero {
			o.armSimd2(armVcvtSF32, d, s)
			return
		}
		o.FctrlEnter(mode)
		o.armCvtrLanes(d, s)
		o.FctrlLeave()
	case ArchARM64:
		o.a64Simd2(a64Fcvt[mode], d, s)
	case ArchMIPS:
		if mode == RoundZero {
			o.word(mipsMSA2(mipsFtruncSW, d, s))
			return
		}
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFtintSW, d, s))
		o.FctrlLeave()
	default:
		if mode != RoundZero {
			o.word(ppcVX(ppcVrfi[mode], d, 0, s))
			s = d
		}
		o.word(ppcVX(ppcVctsxs, d, 0, s))
	}
}

// cvtOsDirLD is the memory-source form of cvtOsDir.
func (o *Out) cvtOsDirLD(mode RoundMode, xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if mode == RoundZero {
			o.x86Simd2Mem(ppF3, map0F, 0x5B, false, d, ms, ds)
			return
		}
		o.x86RoundImmLD(false, d, ms, ds, uint8(mode))
		o.x86Simd2RR(ppF3, map0F, 0x5B, false, d, d)
	case ArchARM:
		if mode == RoundZero {
			o.armSimd2(armVcvtSF32, d, o.armLoadVScratch(ms, ds))
			return
		}
		o.FctrlEnter(mode)
		o.armCvtrLoad(d, ms, ds)
		o.FctrlLeave()
	case ArchARM64:
		o.a64Simd2(a64Fcvt[mode], d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, false)
		if mode == RoundZero {
			o.word(mipsMSA2(mipsFtruncSW, d, m))
			return
		}
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFtintSW, d, m))
		o.FctrlLeave()
	default:
		m := o.ppcLoadVScratch(ms, ds)
		if mode != RoundZero {
			o.word(ppcVX(ppcVrfi[mode], d, 0, m))
			m = d
		}
		o.word(ppcVX(ppcVctsxs, d, 0, m))
	}
}

// RnzosRR rounds fp32 lanes toward zero: xd = trunc(xs).
func (o *Out) RnzosRR(xd, xs VReg) { o.rnOsDir(RoundZero, xd, xs) }

// RnzosLD rounds a packed fp32 memory operand toward zero.
func (o *Out) RnzosLD(xd VReg, ms Mem, ds Dsp) { o.rnOsDirLD(RoundZero, xd, ms, ds) }

// RnposRR rounds fp32 lanes toward plus infinity: xd = ceil(xs).
func (o *Out) RnposRR(xd, xs VReg) { o.rnOsDir(RoundPlus, xd, xs) }

// RnposLD rounds a packed fp32 memory operand toward plus infinity.
func (o *Out) RnposLD(xd VReg, ms Mem, ds Dsp) { o.rnOsDirLD(RoundPlus, xd, ms, ds) }

// RnmosRR rounds fp32 lanes toward minus infinity: xd = floor(xs).
func (o *Out) RnmosRR(xd, xs VReg) { o.rnOsDir(RoundMinus, xd, xs) }

// RnmosLD rounds a packed fp32 memory operand toward minus infinity.
func (o *Out) RnmosLD(xd VReg, ms Mem, ds Dsp) { o.rnOsDirLD(RoundMinus, xd, ms, ds) }

// RnnosRR rounds fp32 lanes to the nearest integral value, assuming
// the ambient mode is still nearest-even.
func (o *Out) RnnosRR(xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImm(false, d, s, uint8(RoundNearest))
	case ArchARM:
		o.armCvtrLanes(d, s)
		o.armSimd2(armVcvtFS32, d, d)
	case ArchARM64:
		o.a64Simd2(a64Frint[RoundNearest], d, s)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW, d, s))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, s))
	}
}

// RnnosLD rounds a packed fp32 memory operand to nearest.
func (o *Out) RnnosLD(xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImmLD(false, d, ms, ds, uint8(RoundNearest))
	case ArchARM:
		o.armCvtrLoad(d, ms, ds)
		o.armSimd2(armVcvtFS32, d, d)
	case ArchARM64:
		o.a64Simd2(a64Frint[RoundNearest], d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW, d, o.mipsLoadVScratch(ms, ds, false)))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, o.ppcLoadVScratch(ms, ds)))
	}
}

// RndosRR rounds fp32 lanes to integral values in the ambient mode.
func (o *Out) RndosRR(xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImm(false, d, s, 0x04)
	case ArchARM:
		o.armCvtrLanes(d, s)
		o.armSimd2(armVcvtFS32, d, d)
	case ArchARM64:
		o.a64Simd2(a64FrintI, d, s)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW, d, s))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, s))
	}
}

// RndosLD rounds a packed fp32 memory operand in the ambient mode.
func (o *Out) RndosLD(xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImmLD(false, d, ms, ds, 0x04)
	case ArchARM:
		o.armCvtrLoad(d, ms, ds)
		o.armSimd2(armVcvtFS32, d, d)
	case ArchARM64:
		o.a64Simd2(a64FrintI, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW, d, o.mipsLoadVScratch(ms, ds, false)))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, o.ppcLoadVScratch(ms, ds)))
	}
}

// RnrosRR rounds fp32 lanes to integral values in the given direction.
func (o *Out) RnrosRR(xd, xs VReg, mode RoundMode) { o.rnOsDir(mode, xd, xs) }

// CvzosRR converts fp32 lanes to int32, truncating: xd = int32(xs).
func (o *Out) CvzosRR(xd, xs VReg) { o.cvtOsDir(RoundZero, xd, xs) }

// CvzosLD converts a packed fp32 memory operand to int32, truncating.
func (o *Out) CvzosLD(xd VReg, ms Mem, ds Dsp) { o.cvtOsDirLD(RoundZero, xd, ms, ds) }

// CvposRR converts fp32 lanes to int32, rounding toward plus infinity.
func (o *Out) CvposRR(xd, xs VReg) { o.cvtOsDir(RoundPlus, xd, xs) }

// CvposLD converts a packed fp32 memory operand toward plus infinity.
func (o *Out) CvposLD(xd VReg, ms Mem, ds Dsp) { o.cvtOsDirLD(RoundPlus, xd, ms, ds) }

// CvmosRR converts fp32 lanes to int32, rounding toward minus infinity.
func (o *Out) CvmosRR(xd, xs VReg) { o.cvtOsDir(RoundMinus, xd, xs) }

// CvmosLD converts a packed fp32 memory operand toward minus infinity.
func (o *Out) CvmosLD(xd VReg, ms Mem, ds Dsp) { o.cvtOsDirLD(RoundMinus, xd, ms, ds) }

// CvnosRR converts fp32 lanes to int32, rounding to nearest under the
// default ambient mode.
func (o *Out) CvnosRR(xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2RR(pp66, map0F, 0x5B, false, d, s)
	case ArchARM:
		o.armCvtrLanes(d, s)
	case ArchARM64:
		o.a64Simd2(a64Fcvt[RoundNearest], d, s)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW, d, s))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, s))
		o.word(ppcVX(ppcVctsxs, d, 0, d))
	}
}

// CvnosLD converts a packed fp32 memory operand to int32, nearest.
func (o *Out) CvnosLD(xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(pp66, map0F, 0x5B, false, d, ms, ds)
	case ArchARM:
		o.armCvtrLoad(d, ms, ds)
	case ArchARM64:
		o.a64Simd2(a64Fcvt[RoundNearest], d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW, d, o.mipsLoadVScratch(ms, ds, false)))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, o.ppcLoadVScratch(ms, ds)))
		o.word(ppcVX(ppcVctsxs, d, 0, d))
	}
}

// CvtosRR converts fp32 lanes to int32 in the ambient mode.
func (o *Out) CvtosRR(xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2RR(pp66, map0F, 0x5B, false, d, s)
	case ArchARM:
		o.armCvtrLanes(d, s)
	case ArchARM64:
		o.a64Simd2(a64FrintI, d, s)
		o.a64Simd2(a64Fcvt[RoundZero], d, d)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW, d, s))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, s))
		o.word(ppcVX(ppcVctsxs, d, 0, d))
	}
}

// CvtosLD converts a packed fp32 memory operand in the ambient mode.
func (o *Out) CvtosLD(xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(pp66, map0F, 0x5B, false, d, ms, ds)
	case ArchARM:
		o.armCvtrLoad(d, ms, ds)
	case ArchARM64:
		o.a64Simd2(a64FrintI, d, o.a64LoadVScratch(ms, ds))
		o.a64Simd2(a64Fcvt[RoundZero], d, d)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW, d, o.mipsLoadVScratch(ms, ds, false)))
	default:
		o.word(ppcVX(ppcVrfi[RoundNearest], d, 0, o.ppcLoadVScratch(ms, ds)))
		o.word(ppcVX(ppcVctsxs, d, 0, d))
	}
}

// CvrosRR converts fp32 lanes to int32 in the given direction.
func (o *Out) CvrosRR(xd, xs VReg, mode RoundMode) { o.cvtOsDir(mode, xd, xs) }

// CvnonRR converts int32 lanes to fp32, rounding to nearest: NEON and
// VMX encode nearest directly, the others follow the default ambient
// mode.
func (o *Out) CvnonRR(xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2RR(ppNone, map0F, 0x5B, false, d, s)
	case ArchARM:
		o.armSimd2(armVcvtFS32, d, s)
	case ArchARM64:
		o.a64Simd2(0x4E21D800, d, s) // SCVTF
	case ArchMIPS:
		o.word(mipsMSA2(mipsFfintSW, d, s))
	default:
		o.ppcVCfsx(d, s, 0)
	}
}

// CvnonLD converts a packed int32 memory operand to fp32.
func (o *Out) CvnonLD(xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(ppNone, map0F, 0x5B, false, d, ms, ds)
	case ArchARM:
		o.armSimd2(armVcvtFS32, d, o.armLoadVScratch(ms, ds))
	case ArchARM64:
		o.a64Simd2(0x4E21D800, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFfintSW, d, o.mipsLoadVScratch(ms, ds, false)))
	default:
		o.ppcVCfsx(d, o.ppcLoadVScratch(ms, ds), 0)
	}
}

// CvtonRR converts int32 lanes to fp32 in the ambient mode. NEON and
// VMX ignore the control register here, so on those targets this is
// CvnonRR under another name.
func (o *Out) CvtonRR(xd, xs VReg) { o.CvnonRR(xd, xs) }

// CvtonLD converts a packed int32 memory operand to fp32, ambient mode.
func (o *Out) CvtonLD(xd VReg, ms Mem, ds Dsp) { o.CvnonLD(xd, ms, ds) }

// rnQsDir rounds fp64 lanes to integral values in the given direction.
func (o *Out) rnQsDir(mode RoundMode, xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImm(true, d, s, uint8(mode))
	case ArchARM64:
		o.a64Simd2(a64Frint[mode]|a64SzD, d, s)
	case ArchMIPS:
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFrintW|mipsMsaDfD, d, s))
		o.FctrlLeave()
	default:
		if mode == RoundNearest {
			o.FctrlEnter(mode)
			o.ppcSimd2(ppcXvrdpi[RoundNearest], d, s)
			o.FctrlLeave()
			return
		}
		o.ppcSimd2(ppcXvrdpi[mode], d, s)
	}
}

// rnQsDirLD is the memory-source form of rnQsDir.
func (o *Out) rnQsDirLD(mode RoundMode, xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImmLD(true, d, ms, ds, uint8(mode))
	case ArchARM64:
		o.a64Simd2(a64Frint[mode]|a64SzD, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, true)
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFrintW|mipsMsaDfD, d, m))
		o.FctrlLeave()
	default:
		m := o.ppcLoadVScratch(ms, ds)
		if mode == RoundNearest {
			o.FctrlEnter(mode)
			o.ppcSimd2(ppcXvrdpi[RoundNearest], d, m)
			o.FctrlLeave()
			return
		}
		o.ppcSimd2(ppcXvrdpi[mode], d, m)
	}
}

// cvtQsDir converts fp64 lanes to int64 in the given direction. The
// x86 targets below 512-bit width round in vector form first (exact,
// since truncation of an integral value never moves it) and then walk
// the lanes through x87 FISTTP.
func (o *Out) cvtQsDir(mode RoundMode, xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if mode != RoundZero {
			o.x86RoundImm(true, d, s, uint8(mode))
			s = d
		}
		if o.target.SIMDWidth() == 512 {
			o.evexRR(pp66, map0F, true, evexL512, 0x7A, d, noVVVV, s, 0, false)
			return
		}
		o.x86CvtQStack(d, s, 0xDD, 0, 0xDD, 1)
	case ArchARM64:
		o.a64Simd2(a64Fcvt[mode]|a64SzD, d, s)
	case ArchMIPS:
		if mode == RoundZero {
			o.word(mipsMSA2(mipsFtruncSW|mipsMsaDfD, d, s))
			return
		}
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFtintSW|mipsMsaDfD, d, s))
		o.FctrlLeave()
	default:
		if mode != RoundZero {
			o.rnQsDir(mode, xd, xs)
			s = d
		}
		o.ppcSimd2(ppcXvcvdpsxds, d, s)
	}
}

// cvtQsDirLD is the memory-source form of cvtQsDir. The sub-512 x86
// path loads the vector into the destination first and converts in
// place.
func (o *Out) cvtQsDirLD(mode RoundMode, xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			if mode == RoundZero {
				o.evexMem(pp66, map0F, true, noVVVV, evexL512, 0x7A, d, ms, ds, o.dispQ(), 0, false)
				return
			}
			o.x86RoundImmLD(true, d, ms, ds, uint8(mode))
			o.evexRR(pp66, map0F, true, evexL512, 0x7A, d, noVVVV, d, 0, false)
			return
		}
		if mode == RoundZero {
			o.x86Simd2Mem(pp66, map0F, 0x28, true, d, ms, ds)
		} else {
			o.x86RoundImmLD(true, d, ms, ds, uint8(mode))
		}
		o.x86CvtQStack(d, d, 0xDD, 0, 0xDD, 1)
	case ArchARM64:
		o.a64Simd2(a64Fcvt[mode]|a64SzD, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, true)
		if mode == RoundZero {
			o.word(mipsMSA2(mipsFtruncSW|mipsMsaDfD, d, m))
			return
		}
		o.FctrlEnter(mode)
		o.word(mipsMSA2(mipsFtintSW|mipsMsaDfD, d, m))
		o.FctrlLeave()
	default:
		m := o.ppcLoadVScratch(ms, ds)
		if mode != RoundZero {
			if mode == RoundNearest {
				o.FctrlEnter(mode)
				o.ppcSimd2(ppcXvrdpi[RoundNearest], d, m)
				o.FctrlLeave()
			} else {
				o.ppcSimd2(ppcXvrdpi[mode], d, m)
			}
			m = d
		}
		o.ppcSimd2(ppcXvcvdpsxds, d, m)
	}
}

// RnzqsRR rounds fp64 lanes toward zero.
func (o *Out) RnzqsRR(xd, xs VReg) { o.rnQsDir(RoundZero, xd, xs) }

// RnzqsLD rounds a packed fp64 memory operand toward zero.
func (o *Out) RnzqsLD(xd VReg, ms Mem, ds Dsp) { o.rnQsDirLD(RoundZero, xd, ms, ds) }

// RnpqsRR rounds fp64 lanes toward plus infinity.
func (o *Out) RnpqsRR(xd, xs VReg) { o.rnQsDir(RoundPlus, xd, xs) }

// RnpqsLD rounds a packed fp64 memory operand toward plus infinity.
func (o *Out) RnpqsLD(xd VReg, ms Mem, ds Dsp) { o.rnQsDirLD(RoundPlus, xd, ms, ds) }

// RnmqsRR rounds fp64 lanes toward minus infinity.
func (o *Out) RnmqsRR(xd, xs VReg) { o.rnQsDir(RoundMinus, xd, xs) }

// RnmqsLD rounds a packed fp64 memory operand toward minus infinity.
func (o *Out) RnmqsLD(xd VReg, ms Mem, ds Dsp) { o.rnQsDirLD(RoundMinus, xd, ms, ds) }

// RnnqsRR rounds fp64 lanes to nearest under the default ambient mode.
func (o *Out) RnnqsRR(xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImm(true, d, s, uint8(RoundNearest))
	case ArchARM64:
		o.a64Simd2(a64Frint[RoundNearest]|a64SzD, d, s)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW|mipsMsaDfD, d, s))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, s)
	}
}

// RnnqsLD rounds a packed fp64 memory operand to nearest.
func (o *Out) RnnqsLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImmLD(true, d, ms, ds, uint8(RoundNearest))
	case ArchARM64:
		o.a64Simd2(a64Frint[RoundNearest]|a64SzD, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW|mipsMsaDfD, d, o.mipsLoadVScratch(ms, ds, true)))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, o.ppcLoadVScratch(ms, ds))
	}
}

// RndqsRR rounds fp64 lanes to integral values in the ambient mode.
func (o *Out) RndqsRR(xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImm(true, d, s, 0x04)
	case ArchARM64:
		o.a64Simd2(a64FrintI|a64SzD, d, s)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW|mipsMsaDfD, d, s))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, s)
	}
}

// RndqsLD rounds a packed fp64 memory operand in the ambient mode.
func (o *Out) RndqsLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RoundImmLD(true, d, ms, ds, 0x04)
	case ArchARM64:
		o.a64Simd2(a64FrintI|a64SzD, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFrintW|mipsMsaDfD, d, o.mipsLoadVScratch(ms, ds, true)))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, o.ppcLoadVScratch(ms, ds))
	}
}

// RnrqsRR rounds fp64 lanes to integral values in the given direction.
func (o *Out) RnrqsRR(xd, xs VReg, mode RoundMode) { o.rnQsDir(mode, xd, xs) }

// CvzqsRR converts fp64 lanes to int64, truncating.
func (o *Out) CvzqsRR(xd, xs VReg) { o.cvtQsDir(RoundZero, xd, xs) }

// CvzqsLD converts a packed fp64 memory operand to int64, truncating.
func (o *Out) CvzqsLD(xd VReg, ms Mem, ds Dsp) { o.cvtQsDirLD(RoundZero, xd, ms, ds) }

// CvpqsRR converts fp64 lanes to int64, rounding toward plus infinity.
func (o *Out) CvpqsRR(xd, xs VReg) { o.cvtQsDir(RoundPlus, xd, xs) }

// CvpqsLD converts a packed fp64 memory operand toward plus infinity.
func (o *Out) CvpqsLD(xd VReg, ms Mem, ds Dsp) { o.cvtQsDirLD(RoundPlus, xd, ms, ds) }

// CvmqsRR converts fp64 lanes to int64, rounding toward minus infinity.
func (o *Out) CvmqsRR(xd, xs VReg) { o.cvtQsDir(RoundMinus, xd, xs) }

// CvmqsLD converts a packed fp64 memory operand toward minus infinity.
func (o *Out) CvmqsLD(xd VReg, ms Mem, ds Dsp) { o.cvtQsDirLD(RoundMinus, xd, ms, ds) }

// CvnqsRR converts fp64 lanes to int64, rounding to nearest under the
// default ambient mode. Below 512 bits the x86 targets go through x87
// FISTP, whose control word the rounding bracket maintains.
func (o *Out) CvnqsRR(xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.evexRR(pp66, map0F, true, evexL512, 0x7B, d, noVVVV, s, 0, false)
			return
		}
		o.x86CvtQStack(d, s, 0xDD, 0, 0xDF, 7)
	case ArchARM64:
		o.a64Simd2(a64Fcvt[RoundNearest]|a64SzD, d, s)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW|mipsMsaDfD, d, s))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, s)
		o.ppcSimd2(ppcXvcvdpsxds, d, d)
	}
}

// CvnqsLD converts a packed fp64 memory operand to int64, nearest.
func (o *Out) CvnqsLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.evexMem(pp66, map0F, true, noVVVV, evexL512, 0x7B, d, ms, ds, o.dispQ(), 0, false)
			return
		}
		o.x86Simd2Mem(pp66, map0F, 0x28, true, d, ms, ds)
		o.x86CvtQStack(d, d, 0xDD, 0, 0xDF, 7)
	case ArchARM64:
		o.a64Simd2(a64Fcvt[RoundNearest]|a64SzD, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW|mipsMsaDfD, d, o.mipsLoadVScratch(ms, ds, true)))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, o.ppcLoadVScratch(ms, ds))
		o.ppcSimd2(ppcXvcvdpsxds, d, d)
	}
}

// CvtqsRR converts fp64 lanes to int64 in the ambient mode.
func (o *Out) CvtqsRR(xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.evexRR(pp66, map0F, true, evexL512, 0x7B, d, noVVVV, s, 0, false)
			return
		}
		o.x86CvtQStack(d, s, 0xDD, 0, 0xDF, 7)
	case ArchARM64:
		o.a64Simd2(a64FrintI|a64SzD, d, s)
		o.a64Simd2(a64Fcvt[RoundZero]|a64SzD, d, d)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW|mipsMsaDfD, d, s))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, s)
		o.ppcSimd2(ppcXvcvdpsxds, d, d)
	}
}

// CvtqsLD converts a packed fp64 memory operand in the ambient mode.
func (o *Out) CvtqsLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.evexMem(pp66, map0F, true, noVVVV, evexL512, 0x7B, d, ms, ds, o.dispQ(), 0, false)
			return
		}
		o.x86Simd2Mem(pp66, map0F, 0x28, true, d, ms, ds)
		o.x86CvtQStack(d, d, 0xDD, 0, 0xDF, 7)
	case ArchARM64:
		o.a64Simd2(a64FrintI|a64SzD, d, o.a64LoadVScratch(ms, ds))
		o.a64Simd2(a64Fcvt[RoundZero]|a64SzD, d, d)
	case ArchMIPS:
		o.word(mipsMSA2(mipsFtintSW|mipsMsaDfD, d, o.mipsLoadVScratch(ms, ds, true)))
	default:
		o.ppcSimd2(ppcXvrdpi[RoundNearest], d, o.ppcLoadVScratch(ms, ds))
		o.ppcSimd2(ppcXvcvdpsxds, d, d)
	}
}

// CvrqsRR converts fp64 lanes to int64 in the given direction.
func (o *Out) CvrqsRR(xd, xs VReg, mode RoundMode) { o.cvtQsDir(mode, xd, xs) }

// CvnqnRR converts int64 lanes to fp64, rounding to nearest under the
// default ambient mode. Below 512 bits the x86 targets go through x87
// FILD/FSTP.
func (o *Out) CvnqnRR(xd, xs VReg) {
	o.require64BitElems()
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.evexRR(ppF3, map0F, true, evexL512, 0xE6, d, noVVVV, s, 0, false)
			return
		}
		o.x86CvtQStack(d, s, 0xDF, 5, 0xDD, 3)
	case ArchARM64:
		o.a64Simd2(0x4E21D800|a64SzD, d, s) // SCVTF .2d
	case ArchMIPS:
		o.word(mipsMSA2(mipsFfintSW|mipsMsaDfD, d, s))
	default:
		o.ppcSimd2(ppcXvcvsxddp, d, s)
	}
}

// CvnqnLD converts a packed int64 memory operand to fp64.
func (o *Out) CvnqnLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.evexMem(ppF3, map0F, true, noVVVV, evexL512, 0xE6, d, ms, ds, o.dispQ(), 0, false)
			return
		}
		o.x86Simd2Mem(pp66, map0F, 0x28, true, d, ms, ds)
		o.x86CvtQStack(d, d, 0xDF, 5, 0xDD, 3)
	case ArchARM64:
		o.a64Simd2(0x4E21D800|a64SzD, d, o.a64LoadVScratch(ms, ds))
	case ArchMIPS:
		o.word(mipsMSA2(mipsFfintSW|mipsMsaDfD, d, o.mipsLoadVScratch(ms, ds, true)))
	default:
		o.ppcSimd2(ppcXvcvsxddp, d, o.ppcLoadVScratch(ms, ds))
	}
}

// CvtqnRR converts int64 lanes to fp64 in the ambient mode.
func (o *Out) CvtqnRR(xd, xs VReg) { o.CvnqnRR(xd, xs) }

// CvtqnLD converts a packed int64 memory operand to fp64, ambient mode.
func (o *Out) CvtqnLD(xd VReg, ms Mem, ds Dsp) { o.CvnqnLD(xd, ms, ds) }
