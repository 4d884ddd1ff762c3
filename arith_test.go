package vecasm

import "testing"

func TestAddSubX86RR(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AddwxRR(Reax, Recx)
	o.SubwxRR(Redx, Rebx)
	expectBytes(t, o, []byte{0x03, 0xC1, 0x2B, 0xD3})
}

func TestAddX8664Wide(t *testing.T) {
	o := newOut(t, ArchX86_64, 128)
	o.AddxxRR(Rebx, Resi)
	expectBytes(t, o, []byte{0x48, 0x03, 0xDE})
}

func TestAddSubX86Imm(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	// byte-class immediates take the sign-extended 83 form
	o.AddwxRI(Reax, IB(1))
	expectBytes(t, o, []byte{0x83, 0xC0, 0x01})

	o.Reset()
	o.AddwxRI(Reax, IH(0x1000))
	expectBytes(t, o, []byte{0x81, 0xC0, 0x00, 0x10, 0x00, 0x00})

	o.Reset()
	o.SubwxRI(Redx, IB(4))
	expectBytes(t, o, []byte{0x83, 0xEA, 0x04})
}

func TestAddX86Memory(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AddwxLD(Reax, M(Rebx), DP(4))
	expectBytes(t, o, []byte{0x03, 0x43, 0x04})

	o.Reset()
	o.AddwxST(Recx, O(Resi), PLAIN)
	expectBytes(t, o, []byte{0x01, 0x0E})

	o.Reset()
	o.AddwxMI(M(Rebp), DP(8), IB(5))
	expectBytes(t, o, []byte{0x83, 0x45, 0x08, 0x05})
}

func TestAddSubARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.AddwxRR(Reax, Recx)
	o.SubwxRI(Reax, IB(1))
	expectWords(t, o, []uint32{0xE0800001, 0xE2400001})
}

func TestAddSubARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.AddwxRI(Recx, IM(0x123))
	expectWords(t, o, []uint32{0x11048C21})

	o.Reset()
	o.AddxxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x8B010000})

	o.Reset()
	o.SubwxRR(Rebx, Redx)
	expectWords(t, o, []uint32{0x4B020063})
}

func TestAddSubMIPS(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.AddwxRI(Rebp, IG(0x100))
	expectWords(t, o, []uint32{0x25080100}) // addiu t0, t0, 0x100

	// subu has no immediate form: the value stages through TIxx
	o.Reset()
	o.SubwxRI(Reax, IB(4))
	expectWords(t, o, []uint32{0x24190004, 0x00992023})
}

func TestAddSubPOWER(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.AddwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x7DCE7A14}) // add r14, r14, r15

	// subf RT,RA,RB computes RB-RA, so the operands swap
	o.Reset()
	o.SubwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x7DCF7050}) // subf r14, r15, r14
}

func TestAddMemoryStagesOnRISC(t *testing.T) {
	// load into TMxx, operate, (store back for ST forms)
	o := newOut(t, ArchARM, 128)
	o.AddwxLD(Reax, O(Rebx), PLAIN)
	expectWords(t, o, []uint32{
		0xE5938000, // ldr r8, [r3]
		0xE0800008, // add r0, r0, r8
	})

	o.Reset()
	o.AddwxST(Recx, O(Rebx), PLAIN)
	expectWords(t, o, []uint32{
		0xE5938000, // ldr r8, [r3]
		0xE0888001, // add r8, r8, r1
		0xE5838000, // str r8, [r3]
	})
}
