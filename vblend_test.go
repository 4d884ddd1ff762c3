package vecasm

import "testing"

func TestMaskedMergeX86Widths(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MmvoxRR(Xmm1, Xmm2)
	expectBytes(t, o, []byte{0x66, 0x0F, 0x38, 0x14, 0xCA}) // blendvps, xmm0 implicit

	o = newOut(t, ArchX86_64, 256)
	o.MmvoxRR(Xmm1, Xmm2)
	// vblendvps ymm1, ymm1, ymm2, ymm0
	expectBytes(t, o, []byte{0xC4, 0xE3, 0x75, 0x4A, 0xCA, 0x00})

	o = newOut(t, ArchX86_64, 512)
	o.MmvoxRR(Xmm1, Xmm2)
	expectBytes(t, o, []byte{
		0x62, 0xF2, 0x7D, 0x48, 0x27, 0xC8, // vptestmd k1, zmm0, zmm0
		0x62, 0xF1, 0x7D, 0x49, 0x6F, 0xCA, // vmovdqa32 zmm1{k1}, zmm2
	})
}

func TestMaskedMergeX86Memory(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MmvoxLD(Xmm1, M(Rebx), DP(4))
	expectBytes(t, o, []byte{0x66, 0x0F, 0x38, 0x14, 0x4B, 0x04})
}

func TestMaskedMergeRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MmvoxRR(Xmm1, Xmm2)
	expectWords(t, o, []uint32{0xF3242150}) // vbit q1, q2, q0

	o = newOut(t, ArchARM64, 128)
	o.MmvoxRR(Xmm1, Xmm2)
	expectWords(t, o, []uint32{0x6EA01C41}) // bit v1.16b, v2.16b, v0.16b

	o = newOut(t, ArchMIPS, 128)
	o.MmvoxRR(Xmm1, Xmm2)
	expectWords(t, o, []uint32{0x7880105E}) // bmnz.v w1, w2, w0

	o = newOut(t, ArchPOWER, 128)
	o.MmvoxRR(Xmm1, Xmm2)
	expectWords(t, o, []uint32{0x1021102A}) // vsel v1, v1, v2, v0
}
