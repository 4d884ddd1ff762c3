package vecasm

// AArch64 field packers: register field placement, MOVZ/MOVK constant
// synthesis, the scaled-offset load/store resolver and system register
// access. BASE op templates come in 32-bit form; wide callers set the
// sf bit through a64W.

// AArch64 condition field values.
const (
	a64CondEQ = 0x0
	a64CondNE = 0x1
	a64CondHS = 0x2
	a64CondLO = 0x3
	a64CondHI = 0x8
	a64CondLS = 0x9
	a64CondGE = 0xA
	a64CondLT = 0xB
	a64CondGT = 0xC
	a64CondLE = 0xD
)

// a64W widens a 32-bit BASE op template to the 64-bit form.
func a64W(op uint32, wide bool) uint32 {
	if wide {
		return op | 0x80000000
	}
	return op
}

// a64R3 packs a three-register word: op | Rm<<16 | Rn<<5 | Rd.
func a64R3(op uint32, rd, rn, rm uint8) uint32 {
	return op | uint32(rm)<<16 | uint32(rn)<<5 | uint32(rd)
}

// a64R2 packs a two-register word: op | Rn<<5 | Rd.
func a64R2(op uint32, rd, rn uint8) uint32 {
	return op | uint32(rn)<<5 | uint32(rd)
}

// a64Mov emits MOV rd, rm as ORR with the zero register.
func (o *Out) a64Mov(rd, rm uint8, wide bool) {
	o.word(a64R3(a64W(0x2A000000, wide), rd, a64ZR, rm))
}

// a64Imm loads a constant into rt with MOVZ followed by MOVK for each
// further nonzero 16-bit chunk. Negative 32-bit values take MOVN so
// the upper half stays sign-correct without extra chunks.
func (o *Out) a64Imm(rt uint8, v uint64, wide bool) {
	if v == 0 {
		o.word(a64W(0x52800000, wide) | uint32(rt))
		return
	}
	if !wide && int32(v) < 0 && int32(v) >= -0x10000 {
		o.word(0x12800000 | (^uint32(v)&0xFFFF)<<5 | uint32(rt))
		return
	}
	chunks := 2
	if wide {
		chunks = 4
	}
	emitted := false
	for i := 0; i < chunks; i++ {
		chunk := uint32(v>>(16*i)) & 0xFFFF
		if chunk == 0 {
			continue
		}
		op := uint32(0x72800000) // MOVK
		if !emitted {
			op = 0x52800000 // MOVZ
			emitted = true
		}
		o.word(a64W(op, wide) | uint32(i)<<21 | chunk<<5 | uint32(rt))
	}
}

// a64AddImm emits ADD rd, rn, #v using the imm12 form, the shifted
// imm12 form, or a synthesized constant in TIxx plus a register ADD.
func (o *Out) a64AddImm(rd, rn uint8, v uint64, wide bool) {
	switch {
	case v <= 0xFFF:
		o.word(a64W(0x11000000, wide) | uint32(v)<<10 | uint32(rn)<<5 | uint32(rd))
	case v&0xFFF == 0 && v <= 0xFFF000:
		o.word(a64W(0x11400000, wide) | uint32(v>>12)<<10 | uint32(rn)<<5 | uint32(rd))
	default:
		o.a64Imm(a64TIxx, v, wide)
		o.word(a64R3(a64W(0x0B000000, wide), rd, rn, a64TIxx))
	}
}

// a64MemBase folds a scaled-index operand into TDxx and returns the
// effective base register.
func (o *Out) a64MemBase(ms Mem) uint8 {
	base := o.baseReg(ms.Base).Encoding
	if ms.Kind != memIX {
		return base
	}
	index := o.baseReg(ms.Index).Encoding
	shift := uint32(ms.log2Scale()) << 10
	// ADD TDxx, base, index, LSL #scale
	o.word(a64R3(0x8B000000, a64TDxx, base, index) | shift)
	return a64TDxx
}

// a64LDST emits a load or store through the unsigned scaled-offset
// form when the displacement is aligned and in range, otherwise
// synthesizes the address into TDxx first. size is the access width in
// bytes and also the imm12 scale.
func (o *Out) a64LDST(op uint32, rt uint8, ms Mem, ds Dsp, size uint32) {
	base := o.a64MemBase(ms)
	disp := uint32(ds.masked(2))
	if disp%size == 0 && disp/size <= 0xFFF {
		o.word(op | (disp/size)<<10 | uint32(base)<<5 | uint32(rt))
		return
	}
	o.a64AddImm(a64TDxx, base, uint64(disp), true)
	o.word(op | uint32(a64TDxx)<<5 | uint32(rt))
}

// a64Addr materializes the full effective address into a register for
// sequences that step through memory themselves.
func (o *Out) a64Addr(ms Mem, ds Dsp) uint8 {
	base := o.a64MemBase(ms)
	disp := uint32(ds.masked(2))
	if disp == 0 {
		return base
	}
	o.a64AddImm(a64TDxx, base, uint64(disp), true)
	return a64TDxx
}

// a64Simd3 emits a three-register ASIMD op: op | Vm<<16 | Vn<<5 | Vd.
func (o *Out) a64Simd3(op uint32, vd, vn, vm uint8) {
	o.word(a64R3(op, vd, vn, vm))
}

// a64Simd2 emits a two-register ASIMD op: op | Vn<<5 | Vd.
func (o *Out) a64Simd2(op uint32, vd, vn uint8) {
	o.word(a64R2(op, vd, vn))
}

// Vector register load/store templates (LDR/STR Qt, unsigned offset).
const (
	a64LdrQ = 0x3DC00000
	a64StrQ = 0x3D800000
)

// a64LoadVScratch pulls a memory operand into the TmmM vector scratch.
func (o *Out) a64LoadVScratch(ms Mem, ds Dsp) uint8 {
	o.a64LDST(a64LdrQ, a64TmmM, ms, ds, 16)
	return a64TmmM
}

// a64DupGPR replicates a general register across every lane of vd:
// DUP Vd.4s, Wn or DUP Vd.2d, Xn.
func (o *Out) a64DupGPR(vd, rn uint8, elem64 bool) {
	op := uint32(0x4E040C00)
	if elem64 {
		op = 0x4E080C00
	}
	o.word(a64R2(op, vd, rn))
}

// a64MRSFPCR reads FPCR into xt; a64MSRFPCR writes xt into FPCR. The
// rounding mode lives in FPCR bits 23:22.
func (o *Out) a64MRSFPCR(rt uint8) { o.word(0xD53B4400 | uint32(rt)) }
func (o *Out) a64MSRFPCR(rt uint8) { o.word(0xD51B4400 | uint32(rt)) }

// a64Push and a64Pop spill one X register through the stack, moving SP
// by sixteen to keep the alignment the ABI demands.
func (o *Out) a64Push(rt uint8) { o.word(0xF81F0C00 | 31<<5 | uint32(rt)) }
func (o *Out) a64Pop(rt uint8)  { o.word(0xF8410400 | 31<<5 | uint32(rt)) }

// a64B emits an unconditional branch over a signed word offset.
func (o *Out) a64B(words int32) {
	o.word(0x14000000 | uint32(words)&0x03FFFFFF)
}

// a64BCond emits B.cond with a signed word offset in imm19.
func (o *Out) a64BCond(cond uint32, words int32) {
	o.word(0x54000000 | (uint32(words)&0x7FFFF)<<5 | cond)
}

// a64CBZ and a64CBNZ branch on a register compare against zero.
func (o *Out) a64CBZ(rt uint8, words int32, wide bool) {
	o.word(a64W(0x34000000, wide) | (uint32(words)&0x7FFFF)<<5 | uint32(rt))
}

func (o *Out) a64CBNZ(rt uint8, words int32, wide bool) {
	o.word(a64W(0x35000000, wide) | (uint32(words)&0x7FFFF)<<5 | uint32(rt))
}
