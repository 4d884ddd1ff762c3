package vecasm

import "testing"

func TestMaskJumpX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MkjoxRX(Xmm2, MaskNone, 8)
	expectBytes(t, o, []byte{
		0x0F, 0x50, 0xC2, // movmskps eax, xmm2
		0x81, 0xF8, 0x00, 0x00, 0x00, 0x00, // cmp eax, 0
		0x0F, 0x84, 0x08, 0x00, 0x00, 0x00, // je +8
	})

	o.Reset()
	o.MkjoxRX(Xmm2, MaskFull, 8)
	expectBytes(t, o, []byte{
		0x0F, 0x50, 0xC2,
		0x81, 0xF8, 0x0F, 0x00, 0x00, 0x00, // all four lane bits
		0x0F, 0x84, 0x08, 0x00, 0x00, 0x00,
	})
}

func TestMaskJumpARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MkjoxRX(Xmm0, MaskFull, 0)
	expectWords(t, o, []uint32{
		0xF3F60200, // vmovn.i32 d16, q0
		0xF3F20220, // vmovn.i16 d16, q8
		0xEE100B90, // vmov r0, d16[0]
		0xE2900001, // adds r0, r0, #1
		0x0AFFFFFF, // beq
	})
}

func TestMaskJumpARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.MkjoxRX(Xmm1, MaskNone, 4)
	expectWords(t, o, []uint32{
		0x0E612830, // xtn v16.4h, v1.4s
		0x4E083E00, // mov x0, v16.d[0]
		0xB100001F, // cmn x0, #0
		0x54000040, // b.eq +2 words
	})
}

func TestMaskJumpMIPS(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.MkjoxRX(Xmm1, MaskNone, 8)
	expectWords(t, o, []uint32{
		0x45610003, // bz.v w1, +3
		0x00000000,
	})

	o.Reset()
	o.MkjoxRX(Xmm1, MaskFull, 8)
	expectWords(t, o, []uint32{
		0x47C10003, // bnz.w w1, +3
		0x00000000,
	})
}

func TestMaskJumpPOWER(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.MkjoxRX(Xmm1, MaskNone, 4)
	expectWords(t, o, []uint32{
		0x1294A4C4, // vxor v20, v20, v20
		0x1201A486, // vcmpequw. v16, v1, v20
		0x41980008, // branch on CR6 all-equal
	})
}
