package vecasm

import "testing"

func TestMovPackedX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MovosRR(Xmm1, Xmm2)
	o.MovosLD(Xmm0, M(Rebx), DP(16))
	o.MovosST(Xmm2, M(Resi), PLAIN)
	expectBytes(t, o, []byte{
		0x0F, 0x28, 0xCA, // movaps xmm1, xmm2
		0x0F, 0x28, 0x43, 0x10, // movaps xmm0, [ebx+16]
		0x0F, 0x29, 0x16, // movaps [esi], xmm2
	})
}

func TestMovPackedX86Vex(t *testing.T) {
	o := newOut(t, ArchX86_64, 256)
	o.MovosRR(Xmm1, Xmm2)
	expectBytes(t, o, []byte{0xC4, 0xE1, 0x7C, 0x28, 0xCA}) // vmovaps ymm1, ymm2
}

func TestMovPackedSameRegisterElides(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.MovosRR(Xmm3, Xmm3)
	if o.Len() != 0 {
		t.Errorf("self move emitted %d bytes", o.Len())
	}
}

func TestMovPackedRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MovosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2220152}) // vorr q0, q1, q1

	o = newOut(t, ArchARM64, 128)
	o.MovosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x4EA11C20}) // orr v0.16b, v1.16b, v1.16b

	o = newOut(t, ArchMIPS, 128)
	o.MovosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7821081E}) // move.v w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.MovosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x10010C84}) // vor v0, v1, v1
}

func TestMovPackedRISCMemory(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MovosLD(Xmm0, M(Rebx), PLAIN)
	expectWords(t, o, []uint32{0xF4230AAF}) // vld1.32 {d0,d1}, [r3:128]

	o = newOut(t, ArchMIPS, 128)
	o.MovosLD(Xmm0, M(Rebx), DP(16))
	expectWords(t, o, []uint32{0x78043822}) // ld.w w0, 16($a3)

	o = newOut(t, ArchPOWER, 128)
	o.MovosLD(Xmm2, M(Rebx), PLAIN)
	expectWords(t, o, []uint32{0x7C4088CE}) // lvx v2, 0, r17
}

func TestMovPackedF64X86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MovqsLD(Xmm1, M(Rebx), DP(8))
	o.MovqsST(Xmm1, M(Rebx), DP(8))
	expectBytes(t, o, []byte{
		0x66, 0x0F, 0x28, 0x4B, 0x08, // movapd xmm1, [ebx+8]
		0x66, 0x0F, 0x29, 0x4B, 0x08, // movapd [ebx+8], xmm1
	})
}
