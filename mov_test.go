package vecasm

import "testing"

func TestMovRIX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MovwxRI(Reax, IW(0x12345678))
	// C7 /0 id
	expectBytes(t, o, []byte{0xC7, 0xC0, 0x78, 0x56, 0x34, 0x12})
}

func TestMovRIX8664Wide(t *testing.T) {
	o := newOut(t, ArchX86_64, 128)
	o.MovxxRI(Redx, IB(9))
	expectBytes(t, o, []byte{0x48, 0xC7, 0xC2, 0x09, 0x00, 0x00, 0x00})
}

func TestMovRIARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MovwxRI(Recx, IB(1))
	expectWords(t, o, []uint32{0xE3A01001})

	// no rotated encoding: MOVW plus MOVT
	o.Reset()
	o.MovwxRI(Reax, IW(0x12345678))
	expectWords(t, o, []uint32{0xE3050678, 0xE3410234})
}

func TestMovRIMIPSAndPOWER(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.MovwxRI(Reax, IG(0x7FFF))
	expectWords(t, o, []uint32{0x24047FFF}) // addiu a0, $0, 0x7fff

	o = newOut(t, ArchPOWER, 128)
	o.MovwxRI(Reax, IG(0x1234))
	expectWords(t, o, []uint32{0x39C01234}) // li r14, 0x1234

	// wide constant splits into lui/ori and lis/ori
	o = newOut(t, ArchMIPS, 128)
	o.MovwxRI(Recx, IW(0x00050678))
	expectWords(t, o, []uint32{0x3C050005, 0x34A50678})
}

func TestMovRR(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MovwxRR(Reax, Recx)
	expectBytes(t, o, []byte{0x8B, 0xC1})

	o = newOut(t, ArchX86_64, 128)
	o.MovxxRR(Reax, Recx)
	expectBytes(t, o, []byte{0x48, 0x8B, 0xC1})

	o = newOut(t, ArchARM, 128)
	o.MovwxRR(Rebx, Resi)
	expectWords(t, o, []uint32{0xE1A03005}) // mov r3, r5

	o = newOut(t, ArchMIPS, 128)
	o.MovwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x00A02025}) // or a0, a1, $0

	o = newOut(t, ArchPOWER, 128)
	o.MovwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x7DEE7B78}) // mr r14, r15
}

func TestMovLDSTX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MovwxLD(Recx, M(Rebx), DP(8))
	expectBytes(t, o, []byte{0x8B, 0x4B, 0x08})

	// base ebp has no mod=00 form; a zero displacement rides as disp8
	o.Reset()
	o.MovwxST(Redx, O(Rebp), PLAIN)
	expectBytes(t, o, []byte{0x89, 0x55, 0x00})
}

func TestMovLDPOWERSignExtends(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.MovwxLD(Reax, O(Rebx), PLAIN)
	// lwa r14, 0(r17): DS-form opcode 58 with subcode 2
	expectWords(t, o, []uint32{0xE9D10002})

	o.Reset()
	o.MovxxLD(Reax, O(Rebx), PLAIN)
	expectWords(t, o, []uint32{0xE9D10000}) // ld
}

func TestAdrxxLD(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AdrxxLD(Reax, IX(Rebx, Recx, 4), DP(4))
	expectBytes(t, o, []byte{0x8D, 0x44, 0x8B, 0x04})

	o = newOut(t, ArchMIPS, 128)
	o.AdrxxLD(Redx, M(Rebp), DP(0x40))
	expectWords(t, o, []uint32{0x25060040}) // addiu a2, t0, 0x40

	o = newOut(t, ArchPOWER, 128)
	o.AdrxxLD(Redx, M(Rebp), DP(0x40))
	expectWords(t, o, []uint32{0x3A120040}) // addi r16, r18, 0x40
}

func TestMovNonPortableRegisterPanics(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	mustPanic(t, "Reg(12)", func() { o.MovwxRR(Reg(12), Reax) })
}
