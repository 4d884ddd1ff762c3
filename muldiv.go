package vecasm

// BASE multiply and divide. The widening and dividing forms follow the
// x86 fixed-register contract on every target: the dividend (and the
// low product) lives in Reax, the high product and the remainder land
// in Redx, and the divisor may be neither. On targets whose divide
// does not produce a remainder the quotient is folded back through a
// dividend snapshot held in the TLxx scratch, which is why the
// remainder forms must immediately follow their matching divide.

// mulLowRaw emits g = g * s, low half only.
func (o *Out) mulLowRaw(g, s uint8, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.rexIfNeeded(wide, g, 0, s)
		o.Write(0x0F)
		o.Write(0xAF) // imul r, rm
		o.modRR(g, s)
	case ArchARM:
		// MUL rd, rm, rs
		o.word(0xE0000090 | uint32(g)<<16 | uint32(s)<<8 | uint32(g))
	case ArchARM64:
		// madd rd, rn, rm, zr
		o.word(a64R3(a64W(0x1B007C00, wide), g, g, s))
	case ArchMIPS:
		o.word(0x70000002 | uint32(g)<<21 | uint32(s)<<16 | uint32(g)<<11)
	default:
		if wide {
			o.word(ppcX(0x7C0001D2, g, g, s)) // mulld
		} else {
			o.word(ppcX(0x7C0001D6, g, g, s)) // mullw
		}
	}
}

// MulwxRR multiplies two BASE registers, keeping the low 32 bits.
func (o *Out) MulwxRR(rg, rs Reg) {
	o.mulLowRaw(o.baseReg(rg).Encoding, o.baseReg(rs).Encoding, false)
}

// MulwxLD multiplies by a value loaded from memory.
func (o *Out) MulwxLD(rg Reg, ms Mem, ds Dsp) {
	g := o.baseReg(rg).Encoding
	if o.isX86() {
		o.rexIfNeeded(false, g, 0, 0)
		o.Write(0x0F)
		o.Write(0xAF)
		o.modMem(g, ms, ds.masked(o.dispQ()), false)
		return
	}
	o.baseLoad(o.scratchM(), ms, ds, false)
	o.mulLowRaw(g, o.scratchM(), false)
}

// MulxxRR is the address-width form of MulwxRR.
func (o *Out) MulxxRR(rg, rs Reg) {
	o.mulLowRaw(o.baseReg(rg).Encoding, o.baseReg(rs).Encoding, o.wide())
}

// MulxxLD is the address-width form of MulwxLD.
func (o *Out) MulxxLD(rg Reg, ms Mem, ds Dsp) {
	g := o.baseReg(rg).Encoding
	if o.isX86() {
		o.rexIfNeeded(o.wide(), g, 0, 0)
		o.Write(0x0F)
		o.Write(0xAF)
		o.modMem(g, ms, ds.masked(o.dispQ()), false)
		return
	}
	o.baseLoad(o.scratchM(), ms, ds, o.wide())
	o.mulLowRaw(g, o.scratchM(), o.wide())
}

// checkDivOperand rejects the registers the widening contract reserves.
func (o *Out) checkDivOperand(rs Reg) {
	if rs == Reax || rs == Redx {
		panic("vecasm: widening mul/div operand may not be Reax or Redx")
	}
}

// mulWideRaw emits Redx:Reax = Reax * s.
func (o *Out) mulWideRaw(s uint8, signed bool) {
	ax := o.baseReg(Reax).Encoding
	dx := o.baseReg(Redx).Encoding
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		digit := uint8(4)
		if signed {
			digit = 5
		}
		o.x86UnaryDigit(digit, false, s)
	case ArchARM:
		op := uint32(0xE0800090) // umull
		if signed {
			op = 0xE0C00090 // smull
		}
		o.word(op | uint32(dx)<<16 | uint32(ax)<<12 | uint32(s)<<8 | uint32(ax))
	case ArchARM64:
		op := uint32(0x9BA07C00) // umaddl xd, wn, wm, zr
		if signed {
			op = 0x9B207C00
		}
		o.word(a64R3(op, a64TMxx, ax, s))
		// Redx = product >> 32, Reax = low word (zero-extending move)
		o.word(0xD360FC00 | uint32(a64TMxx)<<5 | uint32(dx)) // ubfm/lsr #32
		o.a64Mov(ax, a64TMxx, false)
	case ArchMIPS:
		funct := uint32(0x19) // multu
		if signed {
			funct = 0x18
		}
		o.word(uint32(ax)<<21 | uint32(s)<<16 | funct)
		o.word(uint32(ax)<<11 | 0x12) // mflo
		o.word(uint32(dx)<<11 | 0x10) // mfhi
	default:
		op := uint32(0x7C000016) // mulhwu
		if signed {
			op = 0x7C000096 // mulhw
		}
		o.word(ppcX(op, ppcTMxx, ax, s))
		o.word(ppcX(0x7C0001D6, ax, ax, s)) // mullw
		o.ppcMov(dx, ppcTMxx)
	}
}

// MulwxXR widens: Redx:Reax = Reax * rs, unsigned.
func (o *Out) MulwxXR(rs Reg) {
	o.checkDivOperand(rs)
	o.mulWideRaw(o.baseReg(rs).Encoding, false)
}

// MulwnXR widens signed.
func (o *Out) MulwnXR(rs Reg) {
	o.checkDivOperand(rs)
	o.mulWideRaw(o.baseReg(rs).Encoding, true)
}

// MulwxXM widens with a memory operand.
func (o *Out) MulwxXM(ms Mem, ds Dsp) {
	if o.isX86() {
		o.rexIfNeeded(false, 0, 0, 0)
		o.Write(0xF7)
		o.modMem(4, ms, ds.masked(o.dispQ()), false)
		return
	}
	o.baseLoad(o.scratchM(), ms, ds, false)
	o.mulWideRaw(o.scratchM(), false)
}

// MulwnXM widens signed with a memory operand.
func (o *Out) MulwnXM(ms Mem, ds Dsp) {
	if o.isX86() {
		o.rexIfNeeded(false, 0, 0, 0)
		o.Write(0xF7)
		o.modMem(5, ms, ds.masked(o.dispQ()), false)
		return
	}
	o.baseLoad(o.scratchM(), ms, ds, false)
	o.mulWideRaw(o.scratchM(), true)
}

// divRaw emits Reax = Reax / s with the remainder in Redx. On targets
// without a remainder-producing divide the dividend is snapshotted in
// TLxx and the remainder reconstructed as dividend - quotient*divisor.
func (o *Out) divRaw(s uint8, signed bool) {
	ax := o.baseReg(Reax).Encoding
	dx := o.baseReg(Redx).Encoding
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if signed {
			o.Write(0x99) // cdq: sign-extend eax into edx
			o.x86UnaryDigit(7, false, s)
		} else {
			o.x86BaseRR(0x33, false, dx, dx) // xor edx, edx
			o.x86UnaryDigit(6, false, s)
		}
	case ArchARM:
		o.armMov(armTLxx, ax)
		op := uint32(0xE730F010) // udiv rd, rn, rm
		if signed {
			op = 0xE710F010 // sdiv
		}
		o.word(op | uint32(ax)<<16 | uint32(s)<<8 | armTLxx)
		// mls rd, rn, rm, ra: Redx = TLxx - Reax*rs
		o.word(0xE0600090 | uint32(dx)<<16 | armTLxx<<12 | uint32(ax)<<8 | uint32(s))
	case ArchARM64:
		o.a64Mov(a64TLxx, ax, false)
		op := uint32(0x1AC00800) // udiv
		if signed {
			op = 0x1AC00C00
		}
		o.word(a64R3(op, ax, a64TLxx, s))
		// msub: Redx = TLxx - Reax*rs
		o.word(a64R3(0x1B008000, dx, ax, s) | uint32(a64TLxx)<<10)
	case ArchMIPS:
		funct := uint32(0x1B) // divu
		if signed {
			funct = 0x1A
		}
		o.word(uint32(ax)<<21 | uint32(s)<<16 | funct)
		o.word(uint32(ax)<<11 | 0x12) // mflo: quotient
		o.word(uint32(dx)<<11 | 0x10) // mfhi: remainder
	default:
		o.ppcMov(ppcTLxx, ax)
		op := uint32(0x7C000396) // divwu
		if signed {
			op = 0x7C0003D6 // divw
		}
		o.word(ppcX(op, ax, ppcTLxx, s))
		o.word(ppcX(0x7C0001D6, ppcTMxx, ax, s))       // mullw
		o.word(ppcX(0x7C000050, dx, ppcTMxx, ppcTLxx)) // subf
	}
}

// DivwxXR divides Reax by rs unsigned: quotient to Reax, remainder to
// Redx.
func (o *Out) DivwxXR(rs Reg) {
	o.checkDivOperand(rs)
	o.divRaw(o.baseReg(rs).Encoding, false)
}

// DivwnXR divides signed.
func (o *Out) DivwnXR(rs Reg) {
	o.checkDivOperand(rs)
	o.divRaw(o.baseReg(rs).Encoding, true)
}

// DivwxXM divides by a value loaded from memory.
func (o *Out) DivwxXM(ms Mem, ds Dsp) {
	if o.isX86() {
		dx := o.baseReg(Redx).Encoding
		o.x86BaseRR(0x33, false, dx, dx)
		o.rexIfNeeded(false, 0, 0, 0)
		o.Write(0xF7)
		o.modMem(6, ms, ds.masked(o.dispQ()), false)
		return
	}
	o.baseLoad(o.scratchR(), ms, ds, false)
	o.divRaw(o.scratchR(), false)
}

// DivwnXM divides signed by a value loaded from memory.
func (o *Out) DivwnXM(ms Mem, ds Dsp) {
	if o.isX86() {
		o.Write(0x99)
		o.rexIfNeeded(false, 0, 0, 0)
		o.Write(0xF7)
		o.modMem(7, ms, ds.masked(o.dispQ()), false)
		return
	}
	o.baseLoad(o.scratchR(), ms, ds, false)
	o.divRaw(o.scratchR(), true)
}

// RemwxXR completes an unsigned divide with the same divisor: the
// divide already leaves the remainder in Redx on every target, so
// nothing is emitted. The call documents the pairing and keeps the
// register reservation checked.
func (o *Out) RemwxXR(rs Reg) { o.checkDivOperand(rs) }

// RemwnXR completes a signed divide; see RemwxXR.
func (o *Out) RemwnXR(rs Reg) { o.checkDivOperand(rs) }

// scratchR is the right-operand scratch used to stage memory divisors.
func (o *Out) scratchR() uint8 {
	switch o.target.Arch() {
	case ArchARM:
		return armTRxx
	case ArchARM64:
		return a64TRxx
	case ArchMIPS:
		return mipsTRxx
	case ArchPOWER:
		return ppcTRxx
	}
	panic("vecasm: no staging register on " + o.target.String())
}
