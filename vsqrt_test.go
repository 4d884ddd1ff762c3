package vecasm

import "testing"

func TestSqrtPackedNative(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.SqrosRR(Xmm1, Xmm2)
	expectBytes(t, o, []byte{0x0F, 0x51, 0xCA}) // sqrtps

	o = newOut(t, ArchARM64, 128)
	o.SqrosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6EA1F820}) // fsqrt v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.SqrosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7B26081E}) // fsqrt.w w0, w1
}

func TestSqrtPackedARMRefined(t *testing.T) {
	// Two refinement rounds on the VRSQRTE estimate, then multiply back
	// by the operand to turn 1/sqrt into sqrt.
	o := newOut(t, ArchARM, 128)
	o.SqrosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0xF3FB05C2, // vrsqrte.f32 q8, q1
		0xF3402DD2, // vmul.f32 q9, q8, q1
		0xF2622FF0, // vrsqrts.f32 q9, q9, q8
		0xF3400DF2, // vmul.f32 q8, q8, q9
		0xF3402DD2,
		0xF2622FF0,
		0xF3400DF2,
		0xF3020D70, // vmul.f32 q0, q1, q8
	})
}

func TestSqrtPackedARMCompat(t *testing.T) {
	tgt, err := NewTarget(ArchARM, 128)
	if err != nil {
		t.Fatal(err)
	}
	tgt.CompatSqr = true
	o := NewOut(tgt)
	o.SqrosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0xEEB10AC2, // vsqrt.f32 s0, s4
		0xEEF10AE2, // vsqrt.f32 s1, s5
		0xEEB11AC3, // vsqrt.f32 s2, s6
		0xEEF11AE3, // vsqrt.f32 s3, s7
	})
}

func TestSqrtPackedPOWERRefined(t *testing.T) {
	// VMX refines the rsqrt estimate with t' = t * (1.5 - 0.5*s*t*t);
	// every multiply folds through vmaddfp over the zeroed v20, so the
	// estimate update must not re-add t.
	o := newOut(t, ArchPOWER, 128)
	o.SqrosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0x1294A4C4, // vxor v20, v20, v20
		0x1200094A, // vrsqrtefp v16, v1
		0x1223038C, // vspltisw v17, 3
		0x12218B4A, // vcfsx v17, v17, 1 (1.5)
		0x12A1038C, // vspltisw v21, 1
		0x12A1AB4A, // vcfsx v21, v21, 1 (0.5)
		0x1250A42E, // vmaddfp v18, v16, v20, v16 (t*t)
		0x1252A06E, // vmaddfp v18, v18, v20, v1  (s*t*t)
		0x1252A56E, // vmaddfp v18, v18, v20, v21 (0.5*s*t*t)
		0x1251904A, // vsubfp  v18, v17, v18
		0x1210A4AE, // vmaddfp v16, v16, v20, v18 (t *= delta)
		0x1250A42E,
		0x1252A06E,
		0x1252A56E,
		0x1251904A,
		0x1210A4AE,
		0x1001A42E, // vmaddfp v0, v1, v20, v16 (d = s*t)
	})
}

func TestSqrtPackedF64(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.SqrqsRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0x51, 0xC1}) // sqrtpd

	o = newOut(t, ArchARM, 128)
	mustPanic(t, "f64 square root on NEON", func() { o.SqrqsRR(Xmm0, Xmm1) })
}
