package vecasm

// Packed moves. Memory forms assume the natural alignment of the
// target's vector width; the displacement class is masked before
// encoding like everywhere else.

// MovosRR copies a full vector register: xd = xs.
func (o *Out) MovosRR(xd, xs VReg) {
	o.movVV(o.vreg(xd), o.vreg(xs))
}

// MovosLD loads a full vector from memory: xd = [ms+ds].
func (o *Out) MovosLD(xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(ppNone, map0F, 0x28, false, d, ms, ds)
	case ArchARM:
		o.armVLD1(d, o.armAddr(ms, ds))
	case ArchARM64:
		o.a64LDST(a64LdrQ, d, ms, ds, 16)
	case ArchMIPS:
		o.mipsMSALDST(mipsLdW, d, ms, ds, 4)
	default:
		o.ppcVMem(ppcLvx, d, ms, ds)
	}
}

// MovosST stores a full vector to memory: [md+dd] = xs.
func (o *Out) MovosST(xs VReg, md Mem, dd Dsp) {
	s := o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(ppNone, map0F, 0x29, false, s, md, dd)
	case ArchARM:
		o.armVST1(s, o.armAddr(md, dd))
	case ArchARM64:
		o.a64LDST(a64StrQ, s, md, dd, 16)
	case ArchMIPS:
		o.mipsMSALDST(mipsStW, s, md, dd, 4)
	default:
		o.ppcVMem(ppcStvx, s, md, dd)
	}
}

// MovqsRR copies a full vector register in the 64-bit element family.
func (o *Out) MovqsRR(xd, xs VReg) {
	o.require64BitElems()
	o.movVV(o.vreg(xd), o.vreg(xs))
}

// MovqsLD loads a full vector, 64-bit element family.
func (o *Out) MovqsLD(xd VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(pp66, map0F, 0x28, true, d, ms, ds)
	case ArchARM64:
		o.a64LDST(a64LdrQ, d, ms, ds, 16)
	case ArchMIPS:
		o.mipsMSALDST(mipsLdD, d, ms, ds, 8)
	default:
		o.ppcVMem(ppcLvx, d, ms, ds)
	}
}

// MovqsST stores a full vector, 64-bit element family.
func (o *Out) MovqsST(xs VReg, md Mem, dd Dsp) {
	o.require64BitElems()
	s := o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(pp66, map0F, 0x29, true, s, md, dd)
	case ArchARM64:
		o.a64LDST(a64StrQ, s, md, dd, 16)
	case ArchMIPS:
		o.mipsMSALDST(mipsStD, s, md, dd, 8)
	default:
		o.ppcVMem(ppcStvx, s, md, dd)
	}
}

// movVV copies between raw vector register numbers; the synthesized
// divide, square-root and mask sequences move scratch registers
// through this.
func (o *Out) movVV(d, s uint8) {
	if d == s {
		return
	}
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2RR(ppNone, map0F, 0x28, false, d, s)
	case ArchARM:
		o.armSimd3(0xF2200150, d, s, s)
	case ArchARM64:
		o.a64Simd3(0x4EA01C00, d, s, s)
	case ArchMIPS:
		o.word(mipsMSA3(0x7820001E, d, s, s))
	default:
		o.word(ppcVX(0x10000484, d, s, s))
	}
}

// storeVScratch writes a raw vector register to memory, the
// counterpart of the scratch loads in the arch files.
func (o *Out) storeVScratch(s uint8, md Mem, dd Dsp, elem64 bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if elem64 {
			o.x86Simd2Mem(pp66, map0F, 0x29, true, s, md, dd)
		} else {
			o.x86Simd2Mem(ppNone, map0F, 0x29, false, s, md, dd)
		}
	case ArchARM:
		o.armVST1(s, o.armAddr(md, dd))
	case ArchARM64:
		o.a64LDST(a64StrQ, s, md, dd, 16)
	case ArchMIPS:
		if elem64 {
			o.mipsMSALDST(mipsStD, s, md, dd, 8)
		} else {
			o.mipsMSALDST(mipsStW, s, md, dd, 4)
		}
	default:
		o.ppcVMem(ppcStvx, s, md, dd)
	}
}
