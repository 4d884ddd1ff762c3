package vecasm

// MkjoxRX reduces a packed mask and branches on it: jump when every
// lane is clear (MaskNone) or when every lane is set (MaskFull). Mask
// lanes must be all-ones or all-zeros, the shape the packed compares
// and logic ops produce. The reduction lands in Reax on the targets
// that need a scalar detour, so Reax is clobbered there; the offset
// follows the BASE branch convention (signed bytes from the end of the
// emitted sequence).

// MaskCond selects which degenerate mask state takes the branch.
type MaskCond uint8

const (
	MaskNone MaskCond = iota
	MaskFull
)

// String returns the portable condition name.
func (m MaskCond) String() string {
	if m == MaskNone {
		return "none"
	}
	return "full"
}

// x86MaskBits is the movmskps result when every lane is set.
func (o *Out) x86MaskBits() int64 {
	switch o.target.SIMDWidth() {
	case 128:
		return 0x0F
	case 256:
		return 0xFF
	default:
		return 0xFFFF
	}
}

// MkjoxRX tests the mask in xs and jumps when it matches mask.
func (o *Out) MkjoxRX(xs VReg, mask MaskCond, offset int32) {
	s := o.vreg(xs)
	ax := o.baseReg(Reax).Encoding
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		switch o.target.SIMDWidth() {
		case 128:
			o.sseRR(ppNone, map0F, 0x50, ax, s) // movmskps
		case 256:
			o.vexRR(ppNone, map0F, false, true, 0x50, ax, noVVVV, s)
		default:
			// vptestmd k1, zs, zs; kmovw eax, k1
			o.evexRR(pp66, map0F38, false, evexL512, 0x27, 1, s, s, 0, false)
			o.vexRR(ppNone, map0F, false, false, 0x93, ax, noVVVV, 1)
		}
		want := int64(0)
		if mask == MaskFull {
			want = o.x86MaskBits()
		}
		o.CmpwxRI(Reax, IH(want))
		o.JccXX(CondEQ, offset)
	case ArchARM:
		// Narrow 4x32 to 4x8, pull the packed bytes into Reax and add
		// the mask constant: the sum is zero exactly when the state
		// matches (0 + 0 for none, 0xFFFFFFFF + 1 for full).
		o.armSimd2(0xF3B60200, armTmmM, s)       // vmovn.i32
		o.armSimd2(0xF3B20200, armTmmM, armTmmM) // vmovn.i16
		o.word(0xEE100B10 | (armTmmM&0x0F)<<16 | (armTmmM&0x10)<<3 | uint32(ax)<<12)
		imm := uint32(0)
		if mask == MaskFull {
			imm = 1
		}
		o.word(0xE2900000 | uint32(ax)<<16 | uint32(ax)<<12 | imm) // adds
		o.armB(armCondEQ, branchWords(offset)-1)
	case ArchARM64:
		// Same trick with a 16-bit narrow: the four lane masks fill
		// the low 64 bits of Reax.
		o.a64Simd2(0x0E612800, a64TmmM, s) // xtn v.4h, v.4s
		o.word(0x4E083C00 | uint32(a64TmmM)<<5 | uint32(ax))
		imm := uint32(0)
		if mask == MaskFull {
			imm = 1
		}
		o.word(0xB100001F | imm<<10 | uint32(ax)<<5) // adds xzr (cmn)
		o.a64BCond(a64CondEQ, branchWords(offset)+1)
	case ArchMIPS:
		// The MSA branches test the vector directly: BZ.V for the
		// all-clear state, BNZ.W for no-lane-zero, which is all-set
		// when lanes are well-formed.
		w := branchWords(offset) + 1
		if mask == MaskNone {
			o.word(0x45600000 | uint32(s)<<16 | uint32(w)&0xFFFF)
		} else {
			o.word(0x47C00000 | uint32(s)<<16 | uint32(w)&0xFFFF)
		}
		o.mipsNop()
	default:
		// vcmpequw. against zero drives CR6: bit 24 when every lane
		// compared equal (mask empty), bit 26 when none did (mask
		// full).
		o.word(ppcVX(0x100004C4, ppcTmmF, ppcTmmF, ppcTmmF)) // vxor: zero
		o.word(ppcVX(0x10000486, ppcTmmM, s, ppcTmmF))       // vcmpequw.
		bi := uint8(26)
		if mask == MaskNone {
			bi = 24
		}
		o.ppcBC(12, bi, branchWords(offset)+1)
	}
}
