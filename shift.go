package vecasm

// BASE shifts. The register-count forms go through CL on x86 (the
// hardware has no other encoding), so the count register there must be
// Recx; the RISC targets accept any register.

const (
	armLSL = 0x00
	armLSR = 0x20
	armASR = 0x40
)

// armShiftImm emits MOV rd, rd, <type> #n. A zero count is a plain
// move, which the callers skip.
func (o *Out) armShiftImm(typ uint32, g uint8, n uint8) {
	o.word(armDP(0xE1A00000, g, 0, g) | uint32(n)<<7 | typ)
}

// armShiftReg emits MOV rd, rd, <type> rs.
func (o *Out) armShiftReg(typ uint32, g, s uint8) {
	o.word(armDP(0xE1A00000, g, 0, g) | uint32(s)<<8 | typ | 0x10)
}

// a64Bfm emits the UBFM/SBFM aliases for immediate shifts.
func (o *Out) a64Bfm(sbfm, wide bool, g uint8, immr, imms uint32) {
	op := uint32(0x53000000)
	if sbfm {
		op = 0x13000000
	}
	if wide {
		op |= 0x80400000 // sf and N
	}
	o.word(op | immr<<16 | imms<<10 | uint32(g)<<5 | uint32(g))
}

func (o *Out) shiftImmRaw(kind uint8, g uint8, n uint8, wide bool) {
	if n == 0 {
		return
	}
	bits := uint32(32)
	if wide {
		bits = 64
	}
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		digit := [3]uint8{4, 5, 7}[kind]
		o.x86ShiftDigit(digit, wide, g, int64(n), false)
	case ArchARM:
		o.armShiftImm([3]uint32{armLSL, armLSR, armASR}[kind], g, n)
	case ArchARM64:
		switch kind {
		case 0: // lsl
			o.a64Bfm(false, wide, g, (bits-uint32(n))%bits, bits-1-uint32(n))
		case 1: // lsr
			o.a64Bfm(false, wide, g, uint32(n), bits-1)
		default: // asr
			o.a64Bfm(true, wide, g, uint32(n), bits-1)
		}
	case ArchMIPS:
		funct := [3]uint32{0x00, 0x02, 0x03}[kind]
		o.word(mipsShift(funct, g, g, n))
	default:
		if wide {
			switch kind {
			case 0:
				o.ppcSldi(g, g, n)
			case 1: // rldicl rd,rs,64-n,n
				sh := uint32(64-n) % 64
				o.word(ppcD(0x78000000, g, g, 0) | (sh&0x1F)<<11 | (sh>>5)<<1 | uint32(n&0x1F)<<6 | uint32(n>>5)<<5)
			default: // sradi
				o.word(ppcXS(0x7C000674, g, g, 0) | uint32(n&0x1F)<<11 | uint32(n>>5)<<1)
			}
			return
		}
		switch kind {
		case 0: // slwi: rlwinm rd,rs,n,0,31-n
			o.word(ppcD(0x54000000, g, g, 0) | uint32(n)<<11 | (31-uint32(n))<<1)
		case 1: // srwi: rlwinm rd,rs,32-n,n,31
			o.word(ppcD(0x54000000, g, g, 0) | (32-uint32(n))<<11 | uint32(n)<<6 | 31<<1)
		default: // srawi
			o.word(ppcXS(0x7C000670, g, g, 0) | uint32(n)<<11)
		}
	}
}

func (o *Out) shiftRegRaw(kind uint8, g Reg, s Reg, wide bool) {
	ge := o.baseReg(g).Encoding
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if s != Recx {
			panic("vecasm: x86 register shift counts must live in Recx")
		}
		digit := [3]uint8{4, 5, 7}[kind]
		o.x86ShiftDigit(digit, wide, ge, 0, true)
	case ArchARM:
		o.armShiftReg([3]uint32{armLSL, armLSR, armASR}[kind], ge, o.baseReg(s).Encoding)
	case ArchARM64:
		op := [3]uint32{0x1AC02000, 0x1AC02400, 0x1AC02800}[kind]
		o.word(a64R3(a64W(op, wide), ge, ge, o.baseReg(s).Encoding))
	case ArchMIPS:
		funct := [3]uint32{0x04, 0x06, 0x07}[kind]
		// sllv rd, rt, rs: the count rides in rs
		o.word(mipsR(funct, ge, o.baseReg(s).Encoding, ge))
	default:
		var op uint32
		if wide {
			op = [3]uint32{0x7C000036, 0x7C000436, 0x7C000634}[kind]
		} else {
			op = [3]uint32{0x7C000030, 0x7C000430, 0x7C000630}[kind]
		}
		o.word(ppcXS(op, ge, ge, o.baseReg(s).Encoding))
	}
}

// ShlwxRI shifts a BASE register left by an immediate count.
func (o *Out) ShlwxRI(rg Reg, im Imm) {
	o.shiftImmRaw(0, o.baseReg(rg).Encoding, uint8(im.Val&0x1F), false)
}

// ShrwxRI shifts right logically by an immediate count.
func (o *Out) ShrwxRI(rg Reg, im Imm) {
	o.shiftImmRaw(1, o.baseReg(rg).Encoding, uint8(im.Val&0x1F), false)
}

// ShrwnRI shifts right arithmetically by an immediate count.
func (o *Out) ShrwnRI(rg Reg, im Imm) {
	o.shiftImmRaw(2, o.baseReg(rg).Encoding, uint8(im.Val&0x1F), false)
}

// ShlwxRR shifts left by a register count. On x86 the count register
// must be Recx.
func (o *Out) ShlwxRR(rg, rs Reg) { o.shiftRegRaw(0, rg, rs, false) }

// ShrwxRR shifts right logically by a register count.
func (o *Out) ShrwxRR(rg, rs Reg) { o.shiftRegRaw(1, rg, rs, false) }

// ShrwnRR shifts right arithmetically by a register count.
func (o *Out) ShrwnRR(rg, rs Reg) { o.shiftRegRaw(2, rg, rs, false) }

// ShlxxRI is the address-width form of ShlwxRI.
func (o *Out) ShlxxRI(rg Reg, im Imm) {
	o.shiftImmRaw(0, o.baseReg(rg).Encoding, uint8(im.Val&o.shiftMask()), o.wide())
}

// ShrxxRI is the address-width form of ShrwxRI.
func (o *Out) ShrxxRI(rg Reg, im Imm) {
	o.shiftImmRaw(1, o.baseReg(rg).Encoding, uint8(im.Val&o.shiftMask()), o.wide())
}

// ShrxnRI is the address-width form of ShrwnRI.
func (o *Out) ShrxnRI(rg Reg, im Imm) {
	o.shiftImmRaw(2, o.baseReg(rg).Encoding, uint8(im.Val&o.shiftMask()), o.wide())
}

// ShlxxRR is the address-width form of ShlwxRR.
func (o *Out) ShlxxRR(rg, rs Reg) { o.shiftRegRaw(0, rg, rs, o.wide()) }

// ShrxxRR is the address-width form of ShrwxRR.
func (o *Out) ShrxxRR(rg, rs Reg) { o.shiftRegRaw(1, rg, rs, o.wide()) }

// ShrxnRR is the address-width form of ShrwnRR.
func (o *Out) ShrxnRR(rg, rs Reg) { o.shiftRegRaw(2, rg, rs, o.wide()) }

func (o *Out) shiftMask() int64 {
	if o.wide() {
		return 0x3F
	}
	return 0x1F
}
