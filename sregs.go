package vecasm

// SregsSA and SregsLA spill and refill the entire SIMD register bank,
// scratch registers included, to a caller-provided save area. The
// effective address ms+ds is materialized into Reax, which then walks
// the area one vector at a time; Reax is clobbered on every target.
// The save area must hold vregCount+len(scratch) vectors at the
// target's width and alignment.

// scratchVBank lists the hardware numbers of the target's scratch
// vector registers in spill order.
func (o *Out) scratchVBank() []uint8 {
	switch o.target.Arch() {
	case ArchX86:
		return []uint8{x86Tmm}
	case ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			return []uint8{x64Tmm5, x64Tmm6, x64Tmm7}
		}
		return []uint8{x64Tmm}
	case ArchARM:
		return []uint8{armTmmM, armTmmC, armTmmD, armTmmE, armTmmF}
	case ArchARM64:
		return []uint8{a64TmmM, a64TmmC, a64TmmD, a64TmmE}
	case ArchMIPS:
		return []uint8{mipsTmmM, mipsTmmC, mipsTmmD, mipsTmmE}
	default:
		return []uint8{ppcTmmM, ppcTmmC, ppcTmmD, ppcTmmE, ppcTmmF, ppcTmmG}
	}
}

// loadVRaw reads a full vector from memory into a raw hardware
// register number, the mirror of storeVScratch.
func (o *Out) loadVRaw(d uint8, ms Mem, ds Dsp) {
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

// sregsWalk runs fn over every portable and scratch vector register,
// stepping Reax by one vector width in between.
func (o *Out) sregsWalk(ms Mem, ds Dsp, fn func(v uint8)) {
	o.AdrxxLD(Reax, ms, ds)
	step := IB(int64(o.target.SIMDWidth() / 8))
	for i := 0; i < o.target.vregCount(); i++ {
		fn(o.vreg(VReg(i)))
		o.AddxxRI(Reax, step)
	}
	for _, v := range o.scratchVBank() {
		fn(v)
		o.AddxxRI(Reax, step)
	}
}

// SregsSA stores the full SIMD bank to the save area at ms+ds.
func (o *Out) SregsSA(ms Mem, ds Dsp) {
	o.sregsWalk(ms, ds, func(v uint8) {
		o.storeVScratch(v, O(Reax), PLAIN, false)
	})
}

// SregsLA reloads the full SIMD bank from the save area at ms+ds.
func (o *Out) SregsLA(ms Mem, ds Dsp) {
	o.sregsWalk(ms, ds, func(v uint8) {
		o.loadVRaw(v, O(Reax), PLAIN)
	})
}
