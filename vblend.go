package vecasm

// Masked merge under the implicit mask in Xmm0. Mask lanes must be
// all-ones or all-zeros, the shape the packed compares produce; lanes
// set in the mask take the source, clear lanes keep the destination.
// The x86 blends key on the lane sign bit and the vector-select
// hardware elsewhere is fully bitwise, so both agree on well-formed
// masks.

// x86BlendRR blends s into g under xmm0 at 128 or 256 bits.
func (o *Out) x86BlendRR(g, s uint8) {
	if o.target.SIMDWidth() == 128 {
		o.sseRR(pp66, map0F38, 0x14, g, s) // blendvps, xmm0 implicit
		return
	}
	o.vexRR(pp66, map0F3A, false, true, 0x4A, g, g, s) // vblendvps
	o.Write(0x00)                                      // mask register in imm[7:4]
}

// x86MaskK1 materializes the Xmm0 mask into k1 for the EVEX forms:
// vptestmd k1, zmm0, zmm0 sets a bit wherever a lane is nonzero.
func (o *Out) x86MaskK1() {
	o.evexRR(pp66, map0F38, false, evexL512, 0x27, 1, 0, 0, 0, false)
}

// MmvoxRR merges xs into xg where the Xmm0 mask lanes are set.
func (o *Out) MmvoxRR(xg, xs VReg) {
	g, s := o.vreg(xg), o.vreg(xs)
	m := o.vreg(Xmm0)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		if o.target.SIMDWidth() == 512 {
			o.x86MaskK1()
			// vmovdqa32 zg{k1}, zs merging
			o.evexRR(pp66, map0F, false, evexL512, 0x6F, g, noVVVV, s, 1, false)
			return
		}
		o.x86BlendRR(g, s)
	case ArchARM:
		o.armSimd3(0xF3200150, g, s, m) // vbit
	case ArchARM64:
		o.a64Simd3(0x6EA01C00, g, s, m) // bit
	case ArchMIPS:
		o.word(mipsMSA3(0x7880001E, g, s, m)) // bmnz.v
	default:
		o.word(ppcVA(0x1000002A, g, g, s, m)) // vsel
	}
}

// MmvoxLD merges a vector loaded from memory into xg under the Xmm0
// mask.
func (o *Out) MmvoxLD(xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	m := o.vreg(Xmm0)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		switch o.target.SIMDWidth() {
		case 128:
			o.sseMem(pp66, map0F38, 0x14, g, ms, ds, o.dispQ())
		case 256:
			o.vexMem(pp66, map0F3A, false, g, true, 0x4A, g, ms, ds, o.dispQ())
			o.Write(0x00)
		default:
			o.x86MaskK1()
			// vmovups zg{k1}, [m] merging load
			o.evexMem(ppNone, map0F, false, noVVVV, evexL512, 0x10, g, ms, ds, o.dispQ(), 1, false)
		}
	case ArchARM:
		t := o.armLoadVScratch(ms, ds)
		o.armSimd3(0xF3200150, g, t, m)
	case ArchARM64:
		t := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(0x6EA01C00, g, t, m)
	case ArchMIPS:
		t := o.mipsLoadVScratch(ms, ds, false)
		o.word(mipsMSA3(0x7880001E, g, t, m))
	default:
		t := o.ppcLoadVScratch(ms, ds)
		o.word(ppcVA(0x1000002A, g, g, t, m))
	}
}

// MmvoxST merges xs into the vector in memory under the Xmm0 mask:
// unselected lanes of the destination survive.
func (o *Out) MmvoxST(xs VReg, md Mem, dd Dsp) {
	s := o.vreg(xs)
	m := o.vreg(Xmm0)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		switch o.target.SIMDWidth() {
		case 128:
			t := o.vscratch()
			o.sseMem(ppNone, map0F, 0x28, t, md, dd, o.dispQ())
			o.sseRR(pp66, map0F38, 0x14, t, s)
			o.sseMem(ppNone, map0F, 0x29, t, md, dd, o.dispQ())
		case 256:
			t := o.vscratch()
			o.vexMem(ppNone, map0F, false, noVVVV, true, 0x28, t, md, dd, o.dispQ())
			o.vexRR(pp66, map0F3A, false, true, 0x4A, t, t, s)
			o.Write(0x00)
			o.vexMem(ppNone, map0F, false, noVVVV, true, 0x29, t, md, dd, o.dispQ())
		default:
			o.x86MaskK1()
			// vmovups [m]{k1}, zs masked store
			o.evexMem(ppNone, map0F, false, noVVVV, evexL512, 0x11, s, md, dd, o.dispQ(), 1, false)
		}
	case ArchARM:
		t := o.armLoadVScratch(md, dd)
		o.armSimd3(0xF3200150, t, s, m)
		o.storeVScratch(t, md, dd, false)
	case ArchARM64:
		t := o.a64LoadVScratch(md, dd)
		o.a64Simd3(0x6EA01C00, t, s, m)
		o.storeVScratch(t, md, dd, false)
	case ArchMIPS:
		t := o.mipsLoadVScratch(md, dd, false)
		o.word(mipsMSA3(0x7880001E, t, s, m))
		o.storeVScratch(t, md, dd, false)
	default:
		t := o.ppcLoadVScratch(md, dd)
		o.word(ppcVA(0x1000002A, t, t, s, m))
		o.storeVScratch(t, md, dd, false)
	}
}
