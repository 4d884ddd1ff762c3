package vecasm

// BASE bitwise operations. AArch64 has no simple immediate field for
// logical ops (bitmask immediates cover a different lattice), so the
// immediate forms there always synthesize through TIxx.

var andBaseOp = baseOp{
	x86Rm: 0x23, x86Mr: 0x21, digit: 4,
	arm: 0xE0000000, armI: 0xE2000000,
	a64:  0x0A000000,
	mips: 0x00000024, mipsI: 0x30000000,
	ppc: 0x7C000038, ppcI: 0x70000000,
}

var orrBaseOp = baseOp{
	x86Rm: 0x0B, x86Mr: 0x09, digit: 1,
	arm: 0xE1800000, armI: 0xE3800000,
	a64:  0x2A000000,
	mips: 0x00000025, mipsI: 0x34000000,
	ppc: 0x7C000378, ppcI: 0x60000000,
}

var xorBaseOp = baseOp{
	x86Rm: 0x33, x86Mr: 0x31, digit: 6,
	arm: 0xE0200000, armI: 0xE2200000,
	a64:  0x4A000000,
	mips: 0x00000026, mipsI: 0x38000000,
	ppc: 0x7C000278, ppcI: 0x68000000,
}

// AndwxRI masks a BASE register with an immediate.
func (o *Out) AndwxRI(rg Reg, im Imm) { o.baseRI(andBaseOp, rg, im, false) }

// AndwxMI masks a value in memory with an immediate.
func (o *Out) AndwxMI(md Mem, dd Dsp, im Imm) { o.baseMI(andBaseOp, md, dd, im, false) }

// AndwxRR ands one BASE register into another.
func (o *Out) AndwxRR(rg, rs Reg) { o.baseRR(andBaseOp, rg, rs, false) }

// AndwxLD ands a value loaded from memory into a register.
func (o *Out) AndwxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(andBaseOp, rg, ms, ds, false) }

// AndwxST ands a register into a value in memory.
func (o *Out) AndwxST(rs Reg, md Mem, dd Dsp) { o.baseST(andBaseOp, rs, md, dd, false) }

// AndxxRI is the address-width form of AndwxRI.
func (o *Out) AndxxRI(rg Reg, im Imm) { o.baseRI(andBaseOp, rg, im, o.wide()) }

// AndxxRR is the address-width form of AndwxRR.
func (o *Out) AndxxRR(rg, rs Reg) { o.baseRR(andBaseOp, rg, rs, o.wide()) }

// AndxxLD is the address-width form of AndwxLD.
func (o *Out) AndxxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(andBaseOp, rg, ms, ds, o.wide()) }

// OrrwxRI ors an immediate into a BASE register.
func (o *Out) OrrwxRI(rg Reg, im Imm) { o.baseRI(orrBaseOp, rg, im, false) }

// OrrwxMI ors an immediate into a value in memory.
func (o *Out) OrrwxMI(md Mem, dd Dsp, im Imm) { o.baseMI(orrBaseOp, md, dd, im, false) }

// OrrwxRR ors one BASE register into another.
func (o *Out) OrrwxRR(rg, rs Reg) { o.baseRR(orrBaseOp, rg, rs, false) }

// OrrwxLD ors a value loaded from memory into a register.
func (o *Out) OrrwxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(orrBaseOp, rg, ms, ds, false) }

// OrrwxST ors a register into a value in memory.
func (o *Out) OrrwxST(rs Reg, md Mem, dd Dsp) { o.baseST(orrBaseOp, rs, md, dd, false) }

// OrrxxRI is the address-width form of OrrwxRI.
func (o *Out) OrrxxRI(rg Reg, im Imm) { o.baseRI(orrBaseOp, rg, im, o.wide()) }

// OrrxxRR is the address-width form of OrrwxRR.
func (o *Out) OrrxxRR(rg, rs Reg) { o.baseRR(orrBaseOp, rg, rs, o.wide()) }

// OrrxxLD is the address-width form of OrrwxLD.
func (o *Out) OrrxxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(orrBaseOp, rg, ms, ds, o.wide()) }

// XorwxRI xors an immediate into a BASE register.
func (o *Out) XorwxRI(rg Reg, im Imm) { o.baseRI(xorBaseOp, rg, im, false) }

// XorwxMI xors an immediate into a value in memory.
func (o *Out) XorwxMI(md Mem, dd Dsp, im Imm) { o.baseMI(xorBaseOp, md, dd, im, false) }

// XorwxRR xors one BASE register into another.
func (o *Out) XorwxRR(rg, rs Reg) { o.baseRR(xorBaseOp, rg, rs, false) }

// XorwxLD xors a value loaded from memory into a register.
func (o *Out) XorwxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(xorBaseOp, rg, ms, ds, false) }

// XorwxST xors a register into a value in memory.
func (o *Out) XorwxST(rs Reg, md Mem, dd Dsp) { o.baseST(xorBaseOp, rs, md, dd, false) }

// XorxxRI is the address-width form of XorwxRI.
func (o *Out) XorxxRI(rg Reg, im Imm) { o.baseRI(xorBaseOp, rg, im, o.wide()) }

// XorxxRR is the address-width form of XorwxRR.
func (o *Out) XorxxRR(rg, rs Reg) { o.baseRR(xorBaseOp, rg, rs, o.wide()) }

// XorxxLD is the address-width form of XorwxLD.
func (o *Out) XorxxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(xorBaseOp, rg, ms, ds, o.wide()) }

// NotwxRX inverts every bit of a BASE register.
func (o *Out) NotwxRX(rg Reg) { o.notRaw(o.baseReg(rg).Encoding, false) }

// NotxxRX is the address-width form of NotwxRX.
func (o *Out) NotxxRX(rg Reg) { o.notRaw(o.baseReg(rg).Encoding, o.wide()) }

func (o *Out) notRaw(g uint8, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86UnaryDigit(2, wide, g)
	case ArchARM:
		o.word(armDP(0xE1E00000, g, 0, g)) // mvn
	case ArchARM64:
		// orn rd, zr, rm
		o.word(a64R3(a64W(0x2A200000, wide), g, a64ZR, g))
	case ArchMIPS:
		o.word(mipsR(0x00000027, g, g, mipsZero)) // nor
	default:
		o.word(ppcXS(0x7C0000F8, g, g, g)) // nor rd,rs,rs
	}
}

// NotwxMX inverts a value in memory in place.
func (o *Out) NotwxMX(md Mem, dd Dsp) { o.notMem(md, dd, false) }

// NotxxMX is the address-width form of NotwxMX.
func (o *Out) NotxxMX(md Mem, dd Dsp) { o.notMem(md, dd, o.wide()) }

func (o *Out) notMem(md Mem, dd Dsp, wide bool) {
	if o.isX86() {
		o.rexIfNeeded(wide, 0, 0, 0)
		o.Write(0xF7)
		o.modMem(2, md, dd.masked(o.dispQ()), false)
		return
	}
	m := o.scratchM()
	o.baseLoad(m, md, dd, wide)
	o.notRaw(m, wide)
	o.baseStore(m, md, dd, wide)
}

// NegwxRX negates a BASE register (two's complement).
func (o *Out) NegwxRX(rg Reg) { o.negRaw(o.baseReg(rg).Encoding, false) }

// NegxxRX is the address-width form of NegwxRX.
func (o *Out) NegxxRX(rg Reg) { o.negRaw(o.baseReg(rg).Encoding, o.wide()) }

func (o *Out) negRaw(g uint8, wide bool) {
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86UnaryDigit(3, wide, g)
	case ArchARM:
		o.word(armDP(0xE2600000, g, g, 0)) // rsb rd, rn, #0
	case ArchARM64:
		o.word(a64R3(a64W(0x4B000000, wide), g, a64ZR, g)) // sub rd, zr, rm
	case ArchMIPS:
		o.word(mipsR(0x00000023, g, mipsZero, g)) // subu rd, $0, rs
	default:
		o.word(ppcX(0x7C0000D0, g, g, 0)) // neg
	}
}

// NegwxMX negates a value in memory in place.
func (o *Out) NegwxMX(md Mem, dd Dsp) { o.negMem(md, dd, false) }

// NegxxMX is the address-width form of NegwxMX.
func (o *Out) NegxxMX(md Mem, dd Dsp) { o.negMem(md, dd, o.wide()) }

func (o *Out) negMem(md Mem, dd Dsp, wide bool) {
	if o.isX86() {
		o.rexIfNeeded(wide, 0, 0, 0)
		o.Write(0xF7)
		o.modMem(3, md, dd.masked(o.dispQ()), false)
		return
	}
	m := o.scratchM()
	o.baseLoad(m, md, dd, wide)
	o.negRaw(m, wide)
	o.baseStore(m, md, dd, wide)
}
