package vecasm

// BASE register moves, loads and stores, plus effective-address
// computation. The wx forms operate on 32-bit data everywhere; the xx
// forms use the full register on 64-bit targets and collapse onto the
// wx encodings on 32-bit ones.

// MovwxRI loads an immediate into a BASE register.
func (o *Out) MovwxRI(rd Reg, im Imm) {
	o.movRIraw(o.baseReg(rd).Encoding, im, false)
}

// MovxxRI is the address-width form of MovwxRI.
func (o *Out) MovxxRI(rd Reg, im Imm) {
	o.movRIraw(o.baseReg(rd).Encoding, im, o.wide())
}

func (o *Out) movRIraw(rd uint8, im Imm, wide bool) {
	v := int32(im.Val)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.rexIfNeeded(wide, 0, 0, rd)
		o.Write(0xC7)
		o.modRR(0, rd)
		o.imm32(v)
	case ArchARM:
		o.armImm(rd, uint32(v))
	case ArchARM64:
		if wide {
			o.a64Imm(rd, uint64(v), true)
		} else {
			o.a64Imm(rd, uint64(uint32(v)), false)
		}
	case ArchMIPS:
		o.mipsImm(rd, uint32(v))
	default:
		o.ppcImm(rd, uint32(v))
	}
}

// MovwxMI stores an immediate directly to memory.
func (o *Out) MovwxMI(md Mem, dd Dsp, im Imm) { o.movMIraw(md, dd, im, false) }

// MovxxMI is the address-width form of MovwxMI.
func (o *Out) MovxxMI(md Mem, dd Dsp, im Imm) { o.movMIraw(md, dd, im, o.wide()) }

func (o *Out) movMIraw(md Mem, dd Dsp, im Imm, wide bool) {
	if o.isX86() {
		o.rexIfNeeded(wide, 0, 0, 0)
		o.Write(0xC7)
		o.modMem(0, md, dd.masked(o.dispQ()), false)
		o.imm32(int32(im.Val))
		return
	}
	var t uint8
	switch o.target.Arch() {
	case ArchARM:
		t = armTIxx
		o.armImm(t, uint32(int32(im.Val)))
	case ArchARM64:
		t = a64TIxx
		o.a64Imm(t, uint64(uint32(int32(im.Val))), wide)
	case ArchMIPS:
		t = mipsTIxx
		o.mipsImm(t, uint32(int32(im.Val)))
	default:
		t = ppcTIxx
		o.ppcImm(t, uint32(int32(im.Val)))
	}
	o.baseStore(t, md, dd, wide)
}

// MovwxRR copies one BASE register to another.
func (o *Out) MovwxRR(rd, rs Reg) { o.movRRraw(o.baseReg(rd).Encoding, o.baseReg(rs).Encoding, false) }

// MovxxRR is the address-width form of MovwxRR.
func (o *Out) MovxxRR(rd, rs Reg) {
	o.movRRraw(o.baseReg(rd).Encoding, o.baseReg(rs).Encoding, o.wide())
}

func (o *Out) movRRraw(rd, rs uint8, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86BaseRR(0x8B, wide, rd, rs)
	case ArchARM:
		o.armMov(rd, rs)
	case ArchARM64:
		o.a64Mov(rd, rs, wide)
	case ArchMIPS:
		o.mipsMov(rd, rs)
	default:
		o.ppcMov(rd, rs)
	}
}

// MovwxLD loads a 32-bit value from memory into a BASE register.
// AArch64 and x86_64 zero-extend the upper half, POWER sign-extends.
func (o *Out) MovwxLD(rd Reg, ms Mem, ds Dsp) {
	o.baseLoad(o.baseReg(rd).Encoding, ms, ds, false)
}

// MovxxLD is the address-width load.
func (o *Out) MovxxLD(rd Reg, ms Mem, ds Dsp) {
	o.baseLoad(o.baseReg(rd).Encoding, ms, ds, o.wide())
}

// MovwxST stores the low 32 bits of a BASE register to memory.
func (o *Out) MovwxST(rs Reg, md Mem, dd Dsp) {
	o.baseStore(o.baseReg(rs).Encoding, md, dd, false)
}

// MovxxST is the address-width store.
func (o *Out) MovxxST(rs Reg, md Mem, dd Dsp) {
	o.baseStore(o.baseReg(rs).Encoding, md, dd, o.wide())
}

// AdrxxLD loads the effective address ms+ds into a BASE register
// without touching memory.
func (o *Out) AdrxxLD(rd Reg, ms Mem, ds Dsp) {
	d := o.baseReg(rd).Encoding
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.rexIfNeeded(o.wide(), d, 0, 0)
		o.Write(0x8D)
		o.modMem(d, ms, ds.masked(o.dispQ()), false)
	case ArchARM:
		base := o.armMemBase(ms)
		o.armAddImm(d, base, uint32(ds.masked(1)))
	case ArchARM64:
		base := o.a64MemBase(ms)
		o.a64AddImm(d, base, uint64(uint32(ds.masked(2))), true)
	case ArchMIPS:
		base := o.mipsMemBase(ms)
		disp := ds.masked(1)
		if disp >= -0x8000 && disp <= 0x7FFF {
			o.word(mipsI(0x24000000, d, base, uint32(disp)))
		} else {
			o.mipsImm(mipsTIxx, uint32(disp))
			o.word(mipsR(0x00000021, d, base, mipsTIxx))
		}
	default:
		base := o.ppcMemBase(ms)
		disp := ds.masked(2)
		if disp >= -0x8000 && disp <= 0x7FFF {
			o.word(ppcD(0x38000000, d, base, uint32(disp)))
		} else {
			hi, lo := ppcSplitDisp(disp)
			o.word(ppcD(0x3C000000, d, base, hi)) // addis
			o.word(ppcD(0x38000000, d, d, lo))
		}
	}
}
