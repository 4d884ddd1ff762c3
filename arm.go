package vecasm

import "github.com/xyproto/vecasm/internal/engine"

// AArch32 field packers: data-processing words, the rotated-immediate
// and MOVW/MOVT constant synthesis, the load/store displacement
// resolver and the NEON D/N/M register packing. All words go through
// Out.word, so they land in memory in the target byte order.

// ARM condition field values (bits 31:28).
const (
	armCondEQ = 0x0
	armCondNE = 0x1
	armCondCS = 0x2
	armCondCC = 0x3
	armCondHI = 0x8
	armCondLS = 0x9
	armCondGE = 0xA
	armCondLT = 0xB
	armCondGT = 0xC
	armCondLE = 0xD
	armCondAL = 0xE
)

// armDP packs a data-processing word in the register form:
// op | Rn<<16 | Rd<<12 | Rm. The op template carries cond=AL, the
// class bits and the opcode.
func armDP(op uint32, rd, rn, rm uint8) uint32 {
	return op | uint32(rn)<<16 | uint32(rd)<<12 | uint32(rm)
}

// armMov emits MOV rd, rm.
func (o *Out) armMov(rd, rm uint8) {
	o.word(armDP(0xE1A00000, rd, 0, rm))
}

// armImm loads a 32-bit constant into rt using the shortest sequence:
// one MOV with a rotated immediate when the value encodes, otherwise
// MOVW plus (when the upper half is nonzero) MOVT.
func (o *Out) armImm(rt uint8, v uint32) {
	if enc, ok := engine.ARMRotImm(v); ok {
		o.word(0xE3A00000 | uint32(rt)<<12 | enc)
		return
	}
	if enc, ok := engine.ARMRotImm(^v); ok {
		o.word(0xE3E00000 | uint32(rt)<<12 | enc)
		return
	}
	lo := v & 0xFFFF
	hi := v >> 16
	o.word(0xE3000000 | (lo&0xF000)<<4 | uint32(rt)<<12 | lo&0x0FFF)
	if hi != 0 {
		o.word(0xE3400000 | (hi&0xF000)<<4 | uint32(rt)<<12 | hi&0x0FFF)
	}
}

// armAddImm emits ADD rd, rn, #v trying the rotated form first and
// falling back to a constant load into TIxx plus a register ADD.
func (o *Out) armAddImm(rd, rn uint8, v uint32) {
	if enc, ok := engine.ARMRotImm(v); ok {
		o.word(0xE2800000 | uint32(rn)<<16 | uint32(rd)<<12 | enc)
		return
	}
	if enc, ok := engine.ARMRotImm(-v); ok {
		o.word(0xE2400000 | uint32(rn)<<16 | uint32(rd)<<12 | enc)
		return
	}
	o.armImm(armTIxx, v)
	o.word(armDP(0xE0800000, rd, rn, armTIxx))
}

// armBicImm emits BIC rd, rn, #v, falling back to a constant load into
// TIxx plus the register form when the value does not rotate-encode.
func (o *Out) armBicImm(rd, rn uint8, v uint32) {
	if enc, ok := engine.ARMRotImm(v); ok {
		o.word(0xE3C00000 | uint32(rn)<<16 | uint32(rd)<<12 | enc)
		return
	}
	o.armImm(armTIxx, v)
	o.word(armDP(0xE1C00000, rd, rn, armTIxx))
}

// armOrrImm emits ORR rd, rn, #v with the same fallback.
func (o *Out) armOrrImm(rd, rn uint8, v uint32) {
	if enc, ok := engine.ARMRotImm(v); ok {
		o.word(0xE3800000 | uint32(rn)<<16 | uint32(rd)<<12 | enc)
		return
	}
	o.armImm(armTIxx, v)
	o.word(armDP(0xE1800000, rd, rn, armTIxx))
}

// armMemBase folds a memory operand down to a single base register,
// emitting the scaled-index ADD when needed. The returned register is
// either the operand's own base or the TDxx scratch.
func (o *Out) armMemBase(ms Mem) uint8 {
	base := o.baseReg(ms.Base).Encoding
	if ms.Kind != memIX {
		return base
	}
	index := o.baseReg(ms.Index).Encoding
	shift := uint32(ms.log2Scale()) << 7
	o.word(armDP(0xE0800000, armTDxx, base, index) | shift)
	return armTDxx
}

// armAddr materializes base+index+disp into a register. SIMD loads and
// stores need this because VLD1/VST1 only address through a bare [Rn].
func (o *Out) armAddr(ms Mem, ds Dsp) uint8 {
	base := o.armMemBase(ms)
	disp := uint32(ds.masked(1))
	if disp == 0 {
		return base
	}
	o.armAddImm(armTDxx, base, disp)
	return armTDxx
}

// armLDST emits a word load or store with displacement-tier selection:
// the unsigned 12-bit offset form when the displacement fits, otherwise
// an address synthesis through TDxx followed by a zero-offset access.
// The op template is the U=1 immediate form (LDR 0xE5900000,
// STR 0xE5800000).
func (o *Out) armLDST(op uint32, rt uint8, ms Mem, ds Dsp) {
	base := o.armMemBase(ms)
	disp := uint32(ds.masked(1))
	if disp <= 0xFFF {
		o.word(op | uint32(base)<<16 | uint32(rt)<<12 | disp)
		return
	}
	o.armAddImm(armTDxx, base, disp)
	o.word(op | uint32(armTDxx)<<16 | uint32(rt)<<12)
}

// armMXM packs the three NEON register fields of a data-processing
// word. Register numbers are D numbers; bit 4 of each lands in the
// D/N/M extension bits.
func armMXM(op uint32, vd, vn, vm uint8) uint32 {
	return op |
		uint32(vd&0x0F)<<12 | uint32(vd&0x10)<<18 |
		uint32(vn&0x0F)<<16 | uint32(vn&0x10)<<3 |
		uint32(vm&0x0F) | uint32(vm&0x10)<<1
}

// armSimd3 emits a three-register NEON op on quad registers.
func (o *Out) armSimd3(op uint32, vd, vn, vm uint8) {
	o.word(armMXM(op, vd, vn, vm))
}

// armSimd2 emits a two-register NEON op (Vd, Vm shape).
func (o *Out) armSimd2(op uint32, vd, vm uint8) {
	o.word(armMXM(op, vd, 0, vm))
}

// armVLD1 loads a quad register from the address in rn: VLD1.32
// {d,d+1}, [rn:128].
func (o *Out) armVLD1(vd, rn uint8) {
	o.word(0xF4200AAF | uint32(vd&0x0F)<<12 | uint32(vd&0x10)<<18 | uint32(rn&0x0F)<<16)
}

// armVST1 stores a quad register to the address in rn.
func (o *Out) armVST1(vd, rn uint8) {
	o.word(0xF4000AAF | uint32(vd&0x0F)<<12 | uint32(vd&0x10)<<18 | uint32(rn&0x0F)<<16)
}

// armLoadVScratch pulls a memory operand into the TmmM quad scratch
// and returns its register number.
func (o *Out) armLoadVScratch(ms Mem, ds Dsp) uint8 {
	addr := o.armAddr(ms, ds)
	o.armVLD1(armTmmM, addr)
	return armTmmM
}

// armVDUP32 replicates an ARM core register across every 32-bit lane
// of a quad: VDUP.32 qd, rt. The destination field sits in the Vn slot
// of the transfer encoding.
func (o *Out) armVDUP32(vd, rt uint8) {
	o.word(0xEEA00B10 | uint32(vd&0x0F)<<16 | uint32(vd>>4)<<7 | uint32(rt)<<12)
}

// armSRegFields packs the Sd/Sn/Sm fields of a VFP word. VFP single
// registers split into a four-bit field and one extension bit each.
func armSRegFields(op uint32, sd, sn, sm uint8) uint32 {
	return op |
		uint32(sd>>1)<<12 | uint32(sd&1)<<22 |
		uint32(sn>>1)<<16 | uint32(sn&1)<<7 |
		uint32(sm>>1) | uint32(sm&1)<<5
}

// armVDIVF32 emits the scalar VDIV.F32 sd, sn, sm used by the
// per-lane compatibility divide. Only quad registers q0-q7 alias the
// single-precision bank, which the portable register set guarantees.
func (o *Out) armVDIVF32(sd, sn, sm uint8) {
	o.word(armSRegFields(0xEE800A00, sd, sn, sm))
}

// armVSQRTF32 emits the scalar VSQRT.F32 sd, sm.
func (o *Out) armVSQRTF32(sd, sm uint8) {
	o.word(armSRegFields(0xEEB10AC0, sd, 0, sm))
}

// armVCVTRSW emits the scalar VCVTR.S32.F32 sd, sm, which rounds in the
// mode FPSCR currently selects. NEON's vector convert is truncate-only
// on ARMv7, so the mode-honoring conversions go lane by lane through
// this form.
func (o *Out) armVCVTRSW(sd, sm uint8) {
	o.word(armSRegFields(0xEEBD0A40, sd, 0, sm))
}

// armVMRS reads FPSCR into rt; armVMSR writes rt into FPSCR.
func (o *Out) armVMRS(rt uint8) { o.word(0xEEF10A10 | uint32(rt)<<12) }
func (o *Out) armVMSR(rt uint8) { o.word(0xEEE10A10 | uint32(rt)<<12) }

// armVPush and armVPop spill one quad register (a D-register pair) to
// the stack. The compatibility divide and square root borrow a low
// quad through these when their source comes from memory, since only
// q0-q7 alias the single-precision bank.
func (o *Out) armVPush(vd uint8) {
	o.word(0xED2D0B04 | uint32(vd&0x0F)<<12 | uint32(vd&0x10)<<18)
}

func (o *Out) armVPop(vd uint8) {
	o.word(0xECBD0B04 | uint32(vd&0x0F)<<12 | uint32(vd&0x10)<<18)
}

// armB emits a branch with the given condition over a signed word
// offset (already divided by four, relative to PC+8).
func (o *Out) armB(cond uint32, words int32) {
	o.word(cond<<28 | 0x0A000000 | uint32(words)&0x00FFFFFF)
}
