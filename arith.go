package vecasm

// BASE add and subtract in every operand shape: register-immediate,
// memory-immediate, register-register, memory-source and
// memory-destination.

var addOp = baseOp{
	x86Rm: 0x03, x86Mr: 0x01, digit: 0,
	arm: 0xE0800000, armI: 0xE2800000,
	a64: 0x0B000000, a64I: 0x11000000,
	mips: 0x00000021, mipsI: 0x24000000, mipsS: true,
	ppc: 0x7C000214, ppcX: true, ppcI: 0x38000000, ppcS: true,
}

var subOp = baseOp{
	x86Rm: 0x2B, x86Mr: 0x29, digit: 5,
	arm: 0xE0400000, armI: 0xE2400000,
	a64: 0x4B000000, a64I: 0x51000000,
	mips: 0x00000023,
	ppc:  0x7C000050, swap: true, // subf RT,RA,RB computes RB-RA
}

// AddwxRI adds an immediate to a BASE register.
func (o *Out) AddwxRI(rg Reg, im Imm) { o.baseRI(addOp, rg, im, false) }

// AddwxMI adds an immediate to a value in memory.
func (o *Out) AddwxMI(md Mem, dd Dsp, im Imm) { o.baseMI(addOp, md, dd, im, false) }

// AddwxRR adds one BASE register into another.
func (o *Out) AddwxRR(rg, rs Reg) { o.baseRR(addOp, rg, rs, false) }

// AddwxLD adds a value loaded from memory into a register.
func (o *Out) AddwxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(addOp, rg, ms, ds, false) }

// AddwxST adds a register into a value in memory.
func (o *Out) AddwxST(rs Reg, md Mem, dd Dsp) { o.baseST(addOp, rs, md, dd, false) }

// AddxxRI is the address-width form of AddwxRI.
func (o *Out) AddxxRI(rg Reg, im Imm) { o.baseRI(addOp, rg, im, o.wide()) }

// AddxxMI is the address-width form of AddwxMI.
func (o *Out) AddxxMI(md Mem, dd Dsp, im Imm) { o.baseMI(addOp, md, dd, im, o.wide()) }

// AddxxRR is the address-width form of AddwxRR.
func (o *Out) AddxxRR(rg, rs Reg) { o.baseRR(addOp, rg, rs, o.wide()) }

// AddxxLD is the address-width form of AddwxLD.
func (o *Out) AddxxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(addOp, rg, ms, ds, o.wide()) }

// AddxxST is the address-width form of AddwxST.
func (o *Out) AddxxST(rs Reg, md Mem, dd Dsp) { o.baseST(addOp, rs, md, dd, o.wide()) }

// SubwxRI subtracts an immediate from a BASE register.
func (o *Out) SubwxRI(rg Reg, im Imm) { o.baseRI(subOp, rg, im, false) }

// SubwxMI subtracts an immediate from a value in memory.
func (o *Out) SubwxMI(md Mem, dd Dsp, im Imm) { o.baseMI(subOp, md, dd, im, false) }

// SubwxRR subtracts one BASE register from another.
func (o *Out) SubwxRR(rg, rs Reg) { o.baseRR(subOp, rg, rs, false) }

// SubwxLD subtracts a value loaded from memory.
func (o *Out) SubwxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(subOp, rg, ms, ds, false) }

// SubwxST subtracts a register from a value in memory.
func (o *Out) SubwxST(rs Reg, md Mem, dd Dsp) { o.baseST(subOp, rs, md, dd, false) }

// SubxxRI is the address-width form of SubwxRI.
func (o *Out) SubxxRI(rg Reg, im Imm) { o.baseRI(subOp, rg, im, o.wide()) }

// SubxxMI is the address-width form of SubwxMI.
func (o *Out) SubxxMI(md Mem, dd Dsp, im Imm) { o.baseMI(subOp, md, dd, im, o.wide()) }

// SubxxRR is the address-width form of SubwxRR.
func (o *Out) SubxxRR(rg, rs Reg) { o.baseRR(subOp, rg, rs, o.wide()) }

// SubxxLD is the address-width form of SubwxLD.
func (o *Out) SubxxLD(rg Reg, ms Mem, ds Dsp) { o.baseLD(subOp, rg, ms, ds, o.wide()) }

// SubxxST is the address-width form of SubwxST.
func (o *Out) SubxxST(rs Reg, md Mem, dd Dsp) { o.baseST(subOp, rs, md, dd, o.wide()) }
