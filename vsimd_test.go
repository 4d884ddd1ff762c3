package vecasm

import "testing"

func TestSubPacked(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.SubosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x0F, 0x5C, 0xC1}) // subps

	o = newOut(t, ArchX86, 128)
	o.SuboxRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0xFA, 0xC1}) // psubd

	o = newOut(t, ArchARM, 128)
	o.SubosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2200D42}) // vsub.f32 q0, q0, q1

	o = newOut(t, ArchARM64, 128)
	o.SuboxRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6EA18400}) // sub v0.4s, v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.SubosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7841001B}) // fsub.w w0, w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.SubosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x1000084A}) // vsubfp v0, v0, v1
}

func TestMulPacked(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MulosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x0F, 0x59, 0xC1}) // mulps

	o = newOut(t, ArchX86, 128)
	o.MuloxRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0x38, 0x40, 0xC1}) // pmulld

	o = newOut(t, ArchARM64, 128)
	o.MulosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6E21DC00}) // fmul v0.4s, v0.4s, v1.4s
}

// VMX has no plain float multiply, so the POWER form zeroes a scratch
// and folds through vmaddfp.
func TestMulPackedPOWERSynthesized(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.MulosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0x1220038C, // vspltisw v17, 0
		0x1000886E, // vmaddfp v0, v0, v17, v1
	})
}

func TestMinMaxPacked(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MinosRR(Xmm0, Xmm1)
	o.MaxosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{
		0x0F, 0x5D, 0xC1, // minps
		0x0F, 0x5F, 0xC1, // maxps
	})

	o = newOut(t, ArchARM, 128)
	o.MinosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2200F42}) // vmin.f32 q0, q0, q1

	o = newOut(t, ArchARM64, 128)
	o.MaxosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x4E21F400}) // fmax v0.4s, v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.MinosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7B01001B}) // fmin.w w0, w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.MaxosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x10000C0A}) // vmaxfp v0, v0, v1
}

func TestLogicPacked(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AndoxRR(Xmm0, Xmm1)
	o.OrroxRR(Xmm0, Xmm1)
	o.XoroxRR(Xmm0, Xmm1)
	o.AnnoxRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{
		0x66, 0x0F, 0xDB, 0xC1, // pand
		0x66, 0x0F, 0xEB, 0xC1, // por
		0x66, 0x0F, 0xEF, 0xC1, // pxor
		0x66, 0x0F, 0xDF, 0xC1, // pandn
	})

	o = newOut(t, ArchARM, 128)
	o.AndoxRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2000152}) // vand q0, q0, q1

	o = newOut(t, ArchARM64, 128)
	o.XoroxRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6E211C00}) // eor v0.16b, v0.16b, v1.16b
}

func TestComparePackedX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.CeqosRR(Xmm0, Xmm1)
	o.CgtosRR(Xmm0, Xmm1)
	o.CltosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{
		0x0F, 0xC2, 0xC1, 0x00, // cmpeqps
		0x0F, 0xC2, 0xC1, 0x06, // cmpnleps
		0x0F, 0xC2, 0xC1, 0x01, // cmpltps
	})

	o = newOut(t, ArchX86, 128)
	o.CeqqsRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0xC2, 0xC1, 0x00}) // cmpeqpd
}

func TestComparePackedRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.CeqosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2000E42}) // vceq.f32 q0, q0, q1

	// not-equal complements the equality compare
	o = newOut(t, ArchARM, 128)
	o.CneosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2000E42, 0xF3B005C0}) // vceq + vmvn

	// less-than swaps sources into the greater-than form
	o = newOut(t, ArchARM64, 128)
	o.CltosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6EA0E420}) // fcmgt v0.4s, v1.4s, v0.4s

	// MSA encodes lt directly and swaps for gt instead
	o = newOut(t, ArchMIPS, 128)
	o.CgtosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7900081A}) // fclt.w w0, w1, w0

	o = newOut(t, ArchPOWER, 128)
	o.CneosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{
		0x100008C6, // vcmpeqfp v0, v0, v1
		0x10000504, // vnor v0, v0, v0
	})
}

func TestFmaPacked(t *testing.T) {
	// SSE has no fused form: product builds in the scratch and folds
	// in with a separate add.
	o := newOut(t, ArchX86, 128)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	expectBytes(t, o, []byte{
		0x0F, 0x28, 0xF9, // movaps xmm7, xmm1
		0x0F, 0x59, 0xFA, // mulps xmm7, xmm2
		0x0F, 0x58, 0xC7, // addps xmm0, xmm7
	})

	o = newOut(t, ArchX86_64, 256)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	expectBytes(t, o, []byte{0xC4, 0xE2, 0x75, 0xB8, 0xC2}) // vfmadd231ps

	o = newOut(t, ArchARM, 128)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	expectWords(t, o, []uint32{0xF2020C54}) // vfma.f32 q0, q1, q2

	o = newOut(t, ArchARM64, 128)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	expectWords(t, o, []uint32{0x4E22CC20}) // fmla v0.4s, v1.4s, v2.4s

	o = newOut(t, ArchMIPS, 128)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	expectWords(t, o, []uint32{0x7902081B}) // fmadd.w w0, w1, w2

	o = newOut(t, ArchPOWER, 128)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	expectWords(t, o, []uint32{0x100100AE}) // vmaddfp v0, v1, v2, v0
}

func TestFmaPackedARMCompat(t *testing.T) {
	tgt, err := NewTarget(ArchARM, 128)
	if err != nil {
		t.Fatal(err)
	}
	tgt.CompatFma = true
	o := NewOut(tgt)
	o.FmaosRR(Xmm0, Xmm1, Xmm2)
	// widen multiplicands, multiply as doubles, widen accumulator,
	// fold, narrow back: one rounding per lane.
	expected := []uint32{
		0xEEF72AC2, // vcvt.f64.f32 d18, s4
		0xEEF74AE2, // vcvt.f64.f32 d20, s5
		0xEEF76AC3, // vcvt.f64.f32 d22, s6
		0xEEF78AE3, // vcvt.f64.f32 d24, s7
		0xEEF73AC4, // vcvt.f64.f32 d19, s8
		0xEEF75AE4, // vcvt.f64.f32 d21, s9
		0xEEF77AC5, // vcvt.f64.f32 d23, s10
		0xEEF79AE5, // vcvt.f64.f32 d25, s11
		0xEE622BA3, // vmul.f64 d18, d18, d19
		0xEE644BA5, // vmul.f64 d20, d20, d21
		0xEE666BA7, // vmul.f64 d22, d22, d23
		0xEE688BA9, // vmul.f64 d24, d24, d25
		0xEEF73AC0, // vcvt.f64.f32 d19, s0
		0xEEF75AE0, // vcvt.f64.f32 d21, s1
		0xEEF77AC1, // vcvt.f64.f32 d23, s2
		0xEEF79AE1, // vcvt.f64.f32 d25, s3
		0xEE733BA2, // vadd.f64 d19, d19, d18
		0xEE755BA4, // vadd.f64 d21, d21, d20
		0xEE777BA6, // vadd.f64 d23, d23, d22
		0xEE799BA8, // vadd.f64 d25, d25, d24
		0xEEB70BE3, // vcvt.f32.f64 s0, d19
		0xEEF70BE5, // vcvt.f32.f64 s1, d21
		0xEEB71BE7, // vcvt.f32.f64 s2, d23
		0xEEF71BE9, // vcvt.f32.f64 s3, d25
	}
	expectWords(t, o, expected)

	// the subtract flavor differs only in the fold words
	o.Reset()
	o.FmsosRR(Xmm0, Xmm1, Xmm2)
	for i := 16; i < 20; i++ {
		expected[i] += 0x40 // vadd.f64 -> vsub.f64
	}
	expectWords(t, o, expected)
}

func TestVectorShiftImm(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.ShloxRI(Xmm1, IB(4))
	o.ShroxRI(Xmm1, IB(2))
	o.ShronRI(Xmm1, IB(3))
	expectBytes(t, o, []byte{
		0x66, 0x0F, 0x72, 0xF1, 0x04, // pslld xmm1, 4
		0x66, 0x0F, 0x72, 0xD1, 0x02, // psrld xmm1, 2
		0x66, 0x0F, 0x72, 0xE1, 0x03, // psrad xmm1, 3
	})

	o = newOut(t, ArchARM, 128)
	o.ShloxRI(Xmm0, IB(4))
	expectWords(t, o, []uint32{0xF2A40550}) // vshl.i32 q0, q0, #4

	o = newOut(t, ArchARM64, 128)
	o.ShloxRI(Xmm0, IB(4))
	o.ShronRI(Xmm0, IB(3))
	expectWords(t, o, []uint32{
		0x4F245400, // shl v0.4s, v0.4s, #4
		0x4F3D0400, // sshr v0.4s, v0.4s, #3
	})

	o = newOut(t, ArchMIPS, 128)
	o.ShloxRI(Xmm1, IB(4))
	expectWords(t, o, []uint32{0x78440849}) // slli.w w1, w1, 4
}

// The AArch32 and a64 right shifts have no zero-count encoding.
func TestVectorShiftRightZeroCount(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.ShroxRI(Xmm0, IB(0))
	expectWords(t, o, []uint32{})

	o = newOut(t, ArchARM64, 128)
	o.ShronRI(Xmm0, IB(0))
	expectWords(t, o, []uint32{})
}

func TestReciprocalEstimates(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.RceosRR(Xmm0, Xmm1)
	o.RseosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{
		0x0F, 0x53, 0xC1, // rcpps
		0x0F, 0x52, 0xC1, // rsqrtps
	})

	o = newOut(t, ArchARM, 128)
	o.RceosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF3BB0542}) // vrecpe.f32 q0, q1

	o = newOut(t, ArchARM64, 128)
	o.RseosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x6EA1D820}) // frsqrte v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.RceosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7B2A081E}) // frcp.w w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.RseosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x1000094A}) // vrsqrtefp v0, v1
}
