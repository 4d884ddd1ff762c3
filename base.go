package vecasm

import "github.com/xyproto/vecasm/internal/engine"

// Shared BASE-op plumbing: the per-architecture scalar load/store
// resolvers and the immediate-application helpers the arithmetic,
// logic and compare families dispatch through. The wide flag selects
// the 64-bit register forms on 64-bit targets; on 32-bit targets the
// xx-suffixed portable ops collapse onto the wx forms, so wide never
// reaches a backend that cannot honor it.
//
// 32-bit results in 64-bit registers follow the documented per-target
// policy: x86_64 and AArch64 zero-extend (32-bit register writes clear
// the upper half architecturally), POWER sign-extends (the wx load is
// lwa), and the 32-bit MIPS target has no upper half to disagree
// about.

// baseOp describes one two-source BASE operation across the backends.
type baseOp struct {
	x86Rm uint8  // x86 opcode, reg <- reg/mem direction
	x86Mr uint8  // x86 opcode, mem <- reg direction
	digit uint8  // x86 group-1 /digit for the immediate forms
	arm   uint32 // AArch32 data-processing register template
	armI  uint32 // AArch32 data-processing immediate template
	a64   uint32 // AArch64 register template (32-bit form)
	a64I  uint32 // AArch64 imm12 template, 0 when none exists
	mips  uint32 // MIPS SPECIAL funct template
	mipsI uint32 // MIPS I-type opcode, 0 when none exists
	mipsS bool   // MIPS I-type immediate sign-extends
	ppc   uint32 // POWER register template
	ppcX  bool   // POWER template is X-form (RT dest) not XS-form
	ppcI  uint32 // POWER D-form opcode, 0 when none exists
	ppcS  bool   // POWER D-form immediate sign-extends
	swap  bool   // POWER subf shape: RT = RB - RA
}

// baseLoad pulls a BASE-width scalar from memory into a raw hardware
// register.
func (o *Out) baseLoad(rt uint8, ms Mem, ds Dsp, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86BaseMem(0x8B, wide, rt, ms, ds)
	case ArchARM:
		o.armLDST(0xE5900000, rt, ms, ds)
	case ArchARM64:
		if wide {
			o.a64LDST(0xF9400000, rt, ms, ds, 8)
		} else {
			o.a64LDST(0xB9400000, rt, ms, ds, 4)
		}
	case ArchMIPS:
		o.mipsLDST(0x8C000000, rt, ms, ds)
	default:
		if wide {
			o.ppcLDST(0xE8000000, rt, ms, ds)
		} else {
			o.ppcLDST(0xE8000002, rt, ms, ds) // lwa, sign-extending
		}
	}
}

// baseStore writes a BASE-width scalar from a raw hardware register to
// memory.
func (o *Out) baseStore(rt uint8, md Mem, dd Dsp, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86BaseMem(0x89, wide, rt, md, dd)
	case ArchARM:
		o.armLDST(0xE5800000, rt, md, dd)
	case ArchARM64:
		if wide {
			o.a64LDST(0xF9000000, rt, md, dd, 8)
		} else {
			o.a64LDST(0xB9000000, rt, md, dd, 4)
		}
	case ArchMIPS:
		o.mipsLDST(0xAC000000, rt, md, dd)
	default:
		if wide {
			o.ppcLDST(0xF8000000, rt, md, dd)
		} else {
			o.ppcLDST(0x90000000, rt, md, dd)
		}
	}
}

// armDPImm applies a data-processing op with an immediate, going
// through the rotated encoding when the value has one and through a
// TIxx constant load plus the register form otherwise.
func (o *Out) armDPImm(immOp, regOp uint32, rd, rn uint8, v uint32) {
	if enc, ok := engine.ARMRotImm(v); ok {
		o.word(immOp | uint32(rn)<<16 | uint32(rd)<<12 | enc)
		return
	}
	o.armImm(armTIxx, v)
	o.word(armDP(regOp, rd, rn, armTIxx))
}

// baseRRraw emits rg = rg OP rs on raw hardware registers.
func (o *Out) baseRRraw(t baseOp, g, s uint8, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86BaseRR(t.x86Rm, wide, g, s)
	case ArchARM:
		o.word(armDP(t.arm, g, g, s))
	case ArchARM64:
		o.word(a64R3(a64W(t.a64, wide), g, g, s))
	case ArchMIPS:
		o.word(mipsR(t.mips, g, g, s))
	default:
		switch {
		case t.swap:
			o.word(ppcX(t.ppc, g, s, g))
		case t.ppcX:
			o.word(ppcX(t.ppc, g, g, s))
		default:
			o.word(ppcXS(t.ppc, g, g, s))
		}
	}
}

// baseRIraw emits rg = rg OP imm on a raw hardware register. Values
// outside the native immediate field synthesize through the TIxx
// scratch, one extra instruction on the RISC targets.
func (o *Out) baseRIraw(t baseOp, g uint8, im Imm, wide bool) {
	v := int32(im.Val)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86ArithDigitRI(t.digit, wide, g, im)
	case ArchARM:
		o.armDPImm(t.armI, t.arm, g, g, uint32(v))
	case ArchARM64:
		if t.a64I != 0 && v >= 0 && v <= 0xFFF {
			o.word(a64W(t.a64I, wide) | uint32(v)<<10 | uint32(g)<<5 | uint32(g))
			return
		}
		o.a64Imm(a64TIxx, uint64(uint32(v)), wide)
		o.word(a64R3(a64W(t.a64, wide), g, g, a64TIxx))
	case ArchMIPS:
		if t.mipsI != 0 && mipsImmFits(v, t.mipsS) {
			o.word(mipsI(t.mipsI, g, g, uint32(v)))
			return
		}
		o.mipsImm(mipsTIxx, uint32(v))
		o.word(mipsR(t.mips, g, g, mipsTIxx))
	default:
		if t.ppcI != 0 && ppcImmFits(v, t.ppcS) {
			o.word(ppcD(t.ppcI, g, g, uint32(v)))
			return
		}
		o.ppcImm(ppcTIxx, uint32(v))
		o.baseRRraw(t, g, ppcTIxx, wide)
	}
}

func mipsImmFits(v int32, signed bool) bool {
	if signed {
		return v >= -0x8000 && v <= 0x7FFF
	}
	return v >= 0 && v <= 0xFFFF
}

func ppcImmFits(v int32, signed bool) bool {
	if signed {
		return v >= -0x8000 && v <= 0x7FFF
	}
	return v >= 0 && v <= 0xFFFF
}

// baseRR applies a binary op register-to-register.
func (o *Out) baseRR(t baseOp, rg, rs Reg, wide bool) {
	o.baseRRraw(t, o.baseReg(rg).Encoding, o.baseReg(rs).Encoding, wide)
}

// baseRI applies a binary op with an immediate source.
func (o *Out) baseRI(t baseOp, rg Reg, im Imm, wide bool) {
	o.baseRIraw(t, o.baseReg(rg).Encoding, im, wide)
}

// baseLD applies a binary op with a memory source: rg = rg OP [ms+ds].
// x86 folds the load into the instruction; the RISC targets stage the
// operand through TMxx.
func (o *Out) baseLD(t baseOp, rg Reg, ms Mem, ds Dsp, wide bool) {
	g := o.baseReg(rg).Encoding
	if o.isX86() {
		o.x86BaseMem(t.x86Rm, wide, g, ms, ds)
		return
	}
	o.baseLoad(o.scratchM(), ms, ds, wide)
	o.baseRRraw(t, g, o.scratchM(), wide)
}

// baseST applies a binary op with a memory destination:
// [md+dd] = [md+dd] OP rs.
func (o *Out) baseST(t baseOp, rs Reg, md Mem, dd Dsp, wide bool) {
	s := o.baseReg(rs).Encoding
	if o.isX86() {
		o.x86BaseMem(t.x86Mr, wide, s, md, dd)
		return
	}
	m := o.scratchM()
	o.baseLoad(m, md, dd, wide)
	o.baseRRraw(t, m, s, wide)
	o.baseStore(m, md, dd, wide)
}

// baseMI applies a binary op with a memory destination and an
// immediate source: [md+dd] = [md+dd] OP imm.
func (o *Out) baseMI(t baseOp, md Mem, dd Dsp, im Imm, wide bool) {
	if o.isX86() {
		o.x86ArithDigitMI(t.digit, wide, md, dd, im)
		return
	}
	m := o.scratchM()
	o.baseLoad(m, md, dd, wide)
	o.baseRIraw(t, m, im, wide)
	o.baseStore(m, md, dd, wide)
}

// scratchM returns the TMxx BASE scratch register of the target.
func (o *Out) scratchM() uint8 {
	switch o.target.Arch() {
	case ArchARM:
		return armTMxx
	case ArchARM64:
		return a64TMxx
	case ArchMIPS:
		return mipsTMxx
	case ArchPOWER:
		return ppcTMxx
	}
	panic("vecasm: no BASE scratch register on " + o.target.String())
}

// wide reports whether the xx-suffixed address-width ops use the
// 64-bit register forms on this target; on the 32-bit targets they
// collapse onto the 32-bit encodings.
func (o *Out) wide() bool {
	return o.target.arch.Is64Bit()
}
