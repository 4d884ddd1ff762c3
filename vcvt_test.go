package vecasm

import "testing"

func TestConvertTruncatingX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.CvzosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0xF3, 0x0F, 0x5B, 0xC1}) // cvttps2dq
}

func TestConvertNearestX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.CvnosRR(Xmm0, Xmm1)
	o.CvnonRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{
		0x66, 0x0F, 0x5B, 0xC1, // cvtps2dq
		0x0F, 0x5B, 0xC1, // cvtdq2ps
	})
}

// Directed conversions without a truncating opcode round to integral
// first, then convert the already-exact values.
func TestConvertDirectedX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.CvmosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{
		0x66, 0x0F, 0x3A, 0x08, 0xC1, 0x01, // roundps xmm0, xmm1, 1
		0xF3, 0x0F, 0x5B, 0xC0, // cvttps2dq xmm0, xmm0
	})
}

func TestRoundAmbientX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.RndosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0x3A, 0x08, 0xC1, 0x04})
}

func TestConvertTruncatingRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.CvzosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF3BB0742}) // vcvt.s32.f32 q0, q1

	o = newOut(t, ArchARM64, 128)
	o.CvzosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x4EA1B820}) // fcvtzs v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.CvzosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7B22081E}) // ftrunc_s.w w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.CvzosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x10000BCA}) // vctsxs v0, v1, 0
}

func TestConvertIntToFloatRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.CvnonRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF3BB0642}) // vcvt.f32.s32 q0, q1

	o = newOut(t, ArchARM64, 128)
	o.CvnonRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x4E21D820}) // scvtf v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.CvnonRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7B3C081E}) // ffint_s.w w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.CvnonRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x10000B4A}) // vcfsx v0, v1, 0
}

// VMX has no nearest-even float-to-int, so the nearest form rounds to
// integral first and truncates the exact result.
func TestConvertNearestPOWER(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.CvnosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0x10000A0A, // vrfin v0, v1
		0x100003CA, // vctsxs v0, v0, 0
	})
}

func TestRoundDirectedARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.RnmosRR(Xmm0, Xmm1)
	o.RnposRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0x4E219820, // frintm v0.4s, v1.4s
		0x4EA18820, // frintp v0.4s, v1.4s
	})
}
