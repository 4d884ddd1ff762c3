package vecasm

import "testing"

func TestDivPackedNative(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.DivosRR(Xmm1, Xmm2)
	expectBytes(t, o, []byte{0x0F, 0x5E, 0xCA}) // divps

	o = newOut(t, ArchARM64, 128)
	o.DivosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6E21FC00}) // fdiv v0.4s, v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.DivosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x78C1001B}) // fdiv.w w0, w0, w1
}

func TestDivPackedARMRefined(t *testing.T) {
	// NEON has no packed divide: one reciprocal estimate, three
	// refinement rounds, the quotient multiply, then the
	// residual/correction pair that recovers the low bits.
	o := newOut(t, ArchARM, 128)
	o.DivosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0xF3FB0542, // vrecpe.f32 q8, q1
		0xF2402FD2, // vrecps.f32 q9, q8, q1
		0xF3400DF2, // vmul.f32 q8, q8, q9
		0xF2402FD2,
		0xF3400DF2,
		0xF2402FD2,
		0xF3400DF2,
		0xF3402D70, // vmul.f32 q9, q0, q8 (quotient)
		0xF2220D72, // vmls.f32 q0, q1, q9 (residual)
		0xF2402D70, // vmla.f32 q9, q0, q8 (correction)
		0xF22201F2, // vorr q0, q9, q9
	})
}

func TestDivPackedARMCompat(t *testing.T) {
	tgt, err := NewTarget(ArchARM, 128)
	if err != nil {
		t.Fatal(err)
	}
	tgt.CompatDiv = true
	o := NewOut(tgt)
	o.DivosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0xEE800A02, // vdiv.f32 s0, s0, s4
		0xEEC00AA2, // vdiv.f32 s1, s1, s5
		0xEE811A03, // vdiv.f32 s2, s2, s6
		0xEEC11AA3, // vdiv.f32 s3, s3, s7
	})
}

func TestDivPackedF64(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.DivqsRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0x5E, 0xC1}) // divpd

	o = newOut(t, ArchPOWER, 128)
	o.DivqsRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF0000BC7}) // xvdivdp vs32, vs32, vs33

	o = newOut(t, ArchARM, 128)
	mustPanic(t, "f64 divide on NEON", func() { o.DivqsRR(Xmm0, Xmm1) })
}
