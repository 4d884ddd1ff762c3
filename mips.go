package vecasm

// MIPS32 field packers: R-type and I-type word assembly, LUI/ORI
// constant synthesis, the signed-16 load/store resolver and the MSA
// register field placement. Branches always get their delay slot
// filled with a NOP here; nothing reorders into it.

// mipsR packs a SPECIAL-class word: funct | rs<<21 | rt<<16 | rd<<11.
// The funct template carries the opcode and function fields.
func mipsR(funct uint32, rd, rs, rt uint8) uint32 {
	return funct | uint32(rs)<<21 | uint32(rt)<<16 | uint32(rd)<<11
}

// mipsI packs an immediate-class word: op | rs<<21 | rt<<16 | imm16.
func mipsI(op uint32, rt, rs uint8, imm uint32) uint32 {
	return op | uint32(rs)<<21 | uint32(rt)<<16 | imm&0xFFFF
}

// mipsShift packs a shift-amount word: funct | rt<<16 | rd<<11 | sa<<6.
func mipsShift(funct uint32, rd, rt, sa uint8) uint32 {
	return funct | uint32(rt)<<16 | uint32(rd)<<11 | uint32(sa)<<6
}

// mipsMov emits OR rd, rs, $0.
func (o *Out) mipsMov(rd, rs uint8) {
	o.word(mipsR(0x00000025, rd, rs, 0))
}

// mipsNop fills a branch delay slot.
func (o *Out) mipsNop() { o.word(0) }

// mipsImm loads a 32-bit constant into rt: ADDIU from $0 for small
// signed values, ORI from $0 for small unsigned ones, LUI plus ORI for
// the rest.
func (o *Out) mipsImm(rt uint8, v uint32) {
	switch {
	case int32(v) >= -0x8000 && int32(v) <= 0x7FFF:
		o.word(mipsI(0x24000000, rt, 0, v))
	case v <= 0xFFFF:
		o.word(mipsI(0x34000000, rt, 0, v))
	default:
		o.word(mipsI(0x3C000000, rt, 0, v>>16))
		if v&0xFFFF != 0 {
			o.word(mipsI(0x34000000, rt, rt, v))
		}
	}
}

// mipsMemBase folds a scaled-index operand through TDxx: SLL the index
// by the scale, ADDU the base.
func (o *Out) mipsMemBase(ms Mem) uint8 {
	base := o.baseReg(ms.Base).Encoding
	if ms.Kind != memIX {
		return base
	}
	index := o.baseReg(ms.Index).Encoding
	if s := ms.log2Scale(); s != 0 {
		o.word(mipsShift(0x00000000, mipsTDxx, index, s))
		index = mipsTDxx
	}
	o.word(mipsR(0x00000021, mipsTDxx, base, index))
	return mipsTDxx
}

// mipsLDST emits a load or store with the signed-16 offset form when
// the displacement fits, otherwise synthesizes the address into TDxx.
// Masked displacements are non-negative, so the fit test is one-sided.
func (o *Out) mipsLDST(op uint32, rt uint8, ms Mem, ds Dsp) {
	base := o.mipsMemBase(ms)
	disp := uint32(ds.masked(1))
	if disp <= 0x7FFF {
		o.word(mipsI(op, rt, base, disp))
		return
	}
	o.mipsImm(mipsTIxx, disp)
	o.word(mipsR(0x00000021, mipsTDxx, base, mipsTIxx))
	o.word(mipsI(op, rt, mipsTDxx, 0))
}

// mipsAddr materializes base+index+disp into a register for MSA
// accesses that fall outside the short offset form.
func (o *Out) mipsAddr(ms Mem, ds Dsp) uint8 {
	base := o.mipsMemBase(ms)
	disp := uint32(ds.masked(1))
	if disp == 0 {
		return base
	}
	if int32(disp) <= 0x7FFF {
		o.word(mipsI(0x24000000, mipsTDxx, base, disp))
		return mipsTDxx
	}
	o.mipsImm(mipsTIxx, disp)
	o.word(mipsR(0x00000021, mipsTDxx, base, mipsTIxx))
	return mipsTDxx
}

// mipsMSA3 packs a three-register MSA word: op | wt<<16 | ws<<11 |
// wd<<6. The op template carries the MSA major opcode, the data format
// and the minor opcode.
func mipsMSA3(op uint32, wd, ws, wt uint8) uint32 {
	return op | uint32(wt)<<16 | uint32(ws)<<11 | uint32(wd)<<6
}

// mipsMSA2 packs a two-register MSA word: op | ws<<11 | wd<<6.
func mipsMSA2(op uint32, wd, ws uint8) uint32 {
	return op | uint32(ws)<<11 | uint32(wd)<<6
}

// mipsMSALDST emits LD/ST through the scaled signed-10 offset form
// when possible, otherwise through a synthesized address. The op
// template carries the minor opcode and data format; size is the
// element width the offset scales by.
func (o *Out) mipsMSALDST(op uint32, wd uint8, ms Mem, ds Dsp, size int32) {
	base := o.mipsMemBase(ms)
	disp := ds.masked(1)
	if disp%size == 0 && disp/size >= -0x200 && disp/size <= 0x1FF {
		o.word(op | (uint32(disp/size)&0x3FF)<<16 | uint32(base)<<11 | uint32(wd)<<6)
		return
	}
	addr := o.mipsAddr(ms, ds)
	o.word(op | uint32(addr)<<11 | uint32(wd)<<6)
}

// MSA vector load/store templates (MI10 form, minor and data format in
// the low six bits).
const (
	mipsLdW = 0x78000022
	mipsLdD = 0x78000023
	mipsStW = 0x78000026
	mipsStD = 0x78000027
)

// mipsLoadVScratch pulls a memory operand into the TmmM vector
// scratch, scaling the short offset by the element width.
func (o *Out) mipsLoadVScratch(ms Mem, ds Dsp, elem64 bool) uint8 {
	if elem64 {
		o.mipsMSALDST(mipsLdD, mipsTmmM, ms, ds, 8)
	} else {
		o.mipsMSALDST(mipsLdW, mipsTmmM, ms, ds, 4)
	}
	return mipsTmmM
}

// mipsAllOnes fills a vector register with ones by comparing it equal
// to itself (CEQ.W).
func (o *Out) mipsAllOnes(t uint8) {
	o.word(mipsMSA3(0x7840000F, t, t, t))
}

// mipsBIT packs a BIT-format word (minor 0x09): the three-bit
// operation selector sits at 25:23 and the data format shares the
// seven-bit field with the shift amount. SLLI=0, SRAI=1, SRLI=2,
// BNEGI=5.
func (o *Out) mipsBIT(op uint32, elem64 bool, wd, ws, n uint8) {
	dfm := uint32(0x40 | n&0x1F)
	if elem64 {
		dfm = uint32(n & 0x3F)
	}
	o.word(0x78000000 | op<<23 | dfm<<16 | uint32(ws)<<11 | uint32(wd)<<6 | 0x09)
}

// mipsVShiftImm shifts every lane of t by an immediate (SLLI or SRLI).
func (o *Out) mipsVShiftImm(elem64, left bool, t, n uint8) {
	op := uint32(2) // SRLI
	if left {
		op = 0 // SLLI
	}
	o.mipsBIT(op, elem64, t, t, n)
}

// mipsVBitFlip toggles bit n in every lane of t (BNEGI), the cheapest
// way to flip float sign bits.
func (o *Out) mipsVBitFlip(elem64 bool, t, n uint8) {
	o.mipsBIT(5, elem64, t, t, n)
}

// mipsFillW replicates the low word of a GPR across every 32-bit lane
// of wd (2R FILL.W). FILL.D needs a 64-bit GPR, so doubleword counts
// are staged as word pairs instead.
func (o *Out) mipsFillW(wd, rs uint8) {
	o.word(0x7B02001E | uint32(rs)<<11 | uint32(wd)<<6)
}

// mipsSplat3 builds 3.0 lanes by carving integer 3 from all-ones and
// converting in place (FFINT_S).
func (o *Out) mipsSplat3(t uint8, elem64 bool) {
	o.mipsAllOnes(t)
	if elem64 {
		o.mipsVShiftImm(true, false, t, 62)
		o.word(mipsMSA2(0x7B3D001E, t, t))
	} else {
		o.mipsVShiftImm(false, false, t, 30)
		o.word(mipsMSA2(0x7B3C001E, t, t))
	}
}

// cfcmsa/ctcmsa move MSACSR (control register 1) to and from a GPR.
// The rounding mode sits in MSACSR bits 1:0.
func (o *Out) mipsCFCMSA(rd uint8) {
	o.word(0x78FE0019 | 1<<11 | uint32(rd)<<6)
}

func (o *Out) mipsCTCMSA(rs uint8) {
	o.word(0x783E0019 | uint32(rs)<<11 | 1<<6)
}

// cfc1/ctc1 move FCSR ($31) for the scalar FPU side; the BASE convert
// fallback brackets the rounding mode through these.
func (o *Out) mipsCFC1(rt uint8) {
	o.word(0x44400000 | uint32(rt)<<16 | 31<<11)
}

func (o *Out) mipsCTC1(rt uint8) {
	o.word(0x44C00000 | uint32(rt)<<16 | 31<<11)
}

// mipsBEQ and mipsBNE branch on a register pair over a signed word
// offset, delay slot filled by the caller or via mipsNop.
func (o *Out) mipsBEQ(rs, rt uint8, words int32) {
	o.word(mipsI(0x10000000, rt, rs, uint32(words)))
}

func (o *Out) mipsBNE(rs, rt uint8, words int32) {
	o.word(mipsI(0x14000000, rt, rs, uint32(words)))
}
