package vecasm

// BASE compare and branch. Jump offsets are signed byte distances
// measured from the end of the emitted branch instruction (from the
// end of the delay-slot NOP on MIPS), matching the raw rel32 an x86
// Jcc carries.
//
// The portable split-cmp/jcc contract on flagless targets: MIPS and
// POWER have no (usable) sticky flags across the pair, so Cmpwx there
// parks the left operand in TLxx and the right in TRxx, and the jump
// emits the real compare-and-branch. The pair must therefore stay
// adjacent, with no BASE op that lands in those scratch registers in
// between; the same rule the hardware flag register imposes on x86.

// Cond selects a branch condition for the conditional jumps.
type Cond uint8

const (
	CondEQ Cond = iota
	CondNE
	CondLT // signed
	CondLE
	CondGT
	CondGE
	CondLO // unsigned
	CondLS
	CondHI
	CondHS
)

// String returns the portable condition suffix.
func (c Cond) String() string {
	names := [...]string{"eq", "ne", "lt", "le", "gt", "ge", "lo", "ls", "hi", "hs"}
	if int(c) < len(names) {
		return names[c]
	}
	return "??"
}

func (c Cond) signed() bool { return c >= CondLT && c <= CondGE }

// x86 Jcc opcode byte (0x0F-prefixed long form).
var x86CondOp = [...]uint8{0x84, 0x85, 0x8C, 0x8E, 0x8F, 0x8D, 0x82, 0x86, 0x87, 0x83}

// ARM/AArch64 condition field.
var armCondCode = [...]uint32{
	armCondEQ, armCondNE, armCondLT, armCondLE, armCondGT, armCondGE,
	armCondCC, armCondLS, armCondHI, armCondCS,
}

// cmpRaw stages or performs a BASE comparison of two registers.
func (o *Out) cmpRaw(l, r uint8, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86BaseRR(0x3B, wide, l, r)
	case ArchARM:
		o.word(armDP(0xE1500000, 0, l, r))
	case ArchARM64:
		// subs zr, l, r
		o.word(a64R3(a64W(0x6B000000, wide), a64ZR, l, r))
	case ArchMIPS:
		o.mipsMov(mipsTLxx, l)
		o.mipsMov(mipsTRxx, r)
	default:
		o.ppcMov(ppcTLxx, l)
		o.ppcMov(ppcTRxx, r)
	}
}

// CmpwxRR compares two BASE registers.
func (o *Out) CmpwxRR(rs, rt Reg) {
	o.cmpRaw(o.baseReg(rs).Encoding, o.baseReg(rt).Encoding, false)
}

// CmpwxRI compares a BASE register against an immediate.
func (o *Out) CmpwxRI(rs Reg, im Imm) {
	l := o.baseReg(rs).Encoding
	v := int32(im.Val)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86ArithDigitRI(7, false, l, im)
	case ArchARM:
		o.armDPImm(0xE3500000, 0xE1500000, 0, l, uint32(v))
	case ArchARM64:
		if v >= 0 && v <= 0xFFF {
			// subs zr, rn, #imm
			o.word(0x7100001F | uint32(v)<<10 | uint32(l)<<5)
			return
		}
		o.a64Imm(a64TIxx, uint64(uint32(v)), false)
		o.word(a64R3(0x6B000000, a64ZR, l, a64TIxx))
	case ArchMIPS:
		o.mipsMov(mipsTLxx, l)
		o.mipsImm(mipsTRxx, uint32(v))
	default:
		o.ppcMov(ppcTLxx, l)
		o.ppcImm(ppcTRxx, uint32(v))
	}
}

// CmpwxLD compares a register against a value loaded from memory.
func (o *Out) CmpwxLD(rs Reg, ms Mem, ds Dsp) {
	l := o.baseReg(rs).Encoding
	if o.isX86() {
		o.x86BaseMem(0x3B, false, l, ms, ds)
		return
	}
	r := o.scratchR()
	switch o.target.Arch() {
	case ArchMIPS:
		o.baseLoad(mipsTRxx, ms, ds, false)
		o.mipsMov(mipsTLxx, l)
		return
	case ArchPOWER:
		o.baseLoad(ppcTRxx, ms, ds, false)
		o.ppcMov(ppcTLxx, l)
		return
	}
	o.baseLoad(r, ms, ds, false)
	o.cmpRaw(l, r, false)
}

// CmpwxST compares a value in memory against a register (memory on
// the left).
func (o *Out) CmpwxST(rs Reg, md Mem, dd Dsp) {
	r := o.baseReg(rs).Encoding
	if o.isX86() {
		o.x86BaseMem(0x39, false, r, md, dd)
		return
	}
	switch o.target.Arch() {
	case ArchMIPS:
		o.baseLoad(mipsTLxx, md, dd, false)
		o.mipsMov(mipsTRxx, r)
		return
	case ArchPOWER:
		o.baseLoad(ppcTLxx, md, dd, false)
		o.ppcMov(ppcTRxx, r)
		return
	}
	m := o.scratchM()
	o.baseLoad(m, md, dd, false)
	o.cmpRaw(m, r, false)
}

// jccOffsetWords converts an end-relative byte offset to the word
// immediate of a single branch instruction.
func branchWords(offset int32) int32 { return offset / 4 }

// mipsCondBranch emits the real compare-and-branch for the staged
// TLxx/TRxx pair, delay slots included.
func (o *Out) mipsCondBranch(cc Cond, offset int32) {
	w := branchWords(offset) + 1
	switch cc {
	case CondEQ:
		o.mipsBEQ(mipsTLxx, mipsTRxx, w)
	case CondNE:
		o.mipsBNE(mipsTLxx, mipsTRxx, w)
	default:
		slt := uint32(0x2B) // sltu
		if cc.signed() {
			slt = 0x2A
		}
		a, b := uint8(mipsTLxx), uint8(mipsTRxx)
		taken := true
		switch cc {
		case CondLT, CondLO:
			// slt TD, TL, TR; bne TD, $0
		case CondGE, CondHS:
			taken = false
		case CondGT, CondHI:
			a, b = b, a
		case CondLE, CondLS:
			a, b = b, a
			taken = false
		}
		o.word(mipsR(slt, mipsTDxx, a, b))
		if taken {
			o.mipsBNE(mipsTDxx, mipsZero, w)
		} else {
			o.mipsBEQ(mipsTDxx, mipsZero, w)
		}
	}
	o.mipsNop()
}

// ppcCondBranch emits cmpw or cmplw on the staged pair followed by the
// conditional branch.
func (o *Out) ppcCondBranch(cc Cond, offset int32) {
	cmp := uint32(0x7C000040) // cmplw
	if cc.signed() || cc == CondEQ || cc == CondNE {
		cmp = 0x7C000000 // cmpw
	}
	o.word(ppcX(cmp, 0, ppcTLxx, ppcTRxx))
	var bo, bi uint8
	switch cc {
	case CondEQ:
		bo, bi = 12, 2
	case CondNE:
		bo, bi = 4, 2
	case CondLT, CondLO:
		bo, bi = 12, 0
	case CondGE, CondHS:
		bo, bi = 4, 0
	case CondGT, CondHI:
		bo, bi = 12, 1
	case CondLE, CondLS:
		bo, bi = 4, 1
	}
	o.ppcBC(bo, bi, branchWords(offset)+1)
}

// JccXX emits a conditional jump on the outcome of the preceding
// compare. offset is the signed byte distance from the end of the
// branch.
func (o *Out) JccXX(cc Cond, offset int32) {
	if int(cc) >= len(x86CondOp) {
		panic("vecasm: unknown branch condition")
	}
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.Write(0x0F)
		o.Write(x86CondOp[cc])
		o.imm32(offset)
	case ArchARM:
		o.armB(armCondCode[cc], branchWords(offset)-1)
	case ArchARM64:
		o.a64BCond(armCondCode[cc], branchWords(offset)+1)
	case ArchMIPS:
		o.mipsCondBranch(cc, offset)
	default:
		o.ppcCondBranch(cc, offset)
	}
}

// JeqxxXX jumps if the compared values were equal.
func (o *Out) JeqxxXX(offset int32) { o.JccXX(CondEQ, offset) }

// JnexxXX jumps if the compared values differed.
func (o *Out) JnexxXX(offset int32) { o.JccXX(CondNE, offset) }

// JltxxXX jumps on signed less-than.
func (o *Out) JltxxXX(offset int32) { o.JccXX(CondLT, offset) }

// JlexxXX jumps on signed less-or-equal.
func (o *Out) JlexxXX(offset int32) { o.JccXX(CondLE, offset) }

// JgtxxXX jumps on signed greater-than.
func (o *Out) JgtxxXX(offset int32) { o.JccXX(CondGT, offset) }

// JgexxXX jumps on signed greater-or-equal.
func (o *Out) JgexxXX(offset int32) { o.JccXX(CondGE, offset) }

// JloxxXX jumps on unsigned below.
func (o *Out) JloxxXX(offset int32) { o.JccXX(CondLO, offset) }

// JlsxxXX jumps on unsigned below-or-equal.
func (o *Out) JlsxxXX(offset int32) { o.JccXX(CondLS, offset) }

// JhixxXX jumps on unsigned above.
func (o *Out) JhixxXX(offset int32) { o.JccXX(CondHI, offset) }

// JhsxxXX jumps on unsigned above-or-equal.
func (o *Out) JhsxxXX(offset int32) { o.JccXX(CondHS, offset) }

// JmpxxXX jumps unconditionally.
func (o *Out) JmpxxXX(offset int32) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.Write(0xE9)
		o.imm32(offset)
	case ArchARM:
		o.armB(armCondAL, branchWords(offset)-1)
	case ArchARM64:
		o.a64B(branchWords(offset) + 1)
	case ArchMIPS:
		o.mipsBEQ(mipsZero, mipsZero, branchWords(offset)+1)
		o.mipsNop()
	default:
		o.ppcB(branchWords(offset) + 1)
	}
}

// CmjwxRR fuses a register compare with a conditional jump.
func (o *Out) CmjwxRR(rs, rt Reg, cc Cond, offset int32) {
	o.CmpwxRR(rs, rt)
	o.JccXX(cc, offset)
}

// CmjwxRI fuses an immediate compare with a conditional jump.
func (o *Out) CmjwxRI(rs Reg, im Imm, cc Cond, offset int32) {
	o.CmpwxRI(rs, im)
	o.JccXX(cc, offset)
}

// CmjwxLD fuses a memory compare with a conditional jump.
func (o *Out) CmjwxLD(rs Reg, ms Mem, ds Dsp, cc Cond, offset int32) {
	o.CmpwxLD(rs, ms, ds)
	o.JccXX(cc, offset)
}

// ArithJmpOp selects the operation an arithmetic-and-jump applies
// before testing its result against zero.
type ArithJmpOp uint8

const (
	ArjAdd ArithJmpOp = iota
	ArjSub
)

func (o *Out) arjTail(rg Reg, cc Cond, offset int32) {
	o.CmpwxRI(rg, IC(0))
	o.JccXX(cc, offset)
}

// ArjwxRI applies op to a register with an immediate, then jumps on
// the result compared against zero.
func (o *Out) ArjwxRI(rg Reg, im Imm, op ArithJmpOp, cc Cond, offset int32) {
	if op == ArjAdd {
		o.AddwxRI(rg, im)
	} else {
		o.SubwxRI(rg, im)
	}
	o.arjTail(rg, cc, offset)
}

// ArjwxRR applies op register-to-register, then jumps on the result.
func (o *Out) ArjwxRR(rg, rs Reg, op ArithJmpOp, cc Cond, offset int32) {
	if op == ArjAdd {
		o.AddwxRR(rg, rs)
	} else {
		o.SubwxRR(rg, rs)
	}
	o.arjTail(rg, cc, offset)
}

// ArjwxLD applies op with a memory source, then jumps on the result.
func (o *Out) ArjwxLD(rg Reg, ms Mem, ds Dsp, op ArithJmpOp, cc Cond, offset int32) {
	if op == ArjAdd {
		o.AddwxLD(rg, ms, ds)
	} else {
		o.SubwxLD(rg, ms, ds)
	}
	o.arjTail(rg, cc, offset)
}
