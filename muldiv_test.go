package vecasm

import "testing"

func TestMulLowX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MulwxRR(Reax, Recx)
	o.MulwxLD(Reax, M(Rebx), DP(4))
	expectBytes(t, o, []byte{
		0x0F, 0xAF, 0xC1, // imul eax, ecx
		0x0F, 0xAF, 0x43, 0x04, // imul eax, [ebx+4]
	})

	o = newOut(t, ArchX86_64, 128)
	o.MulxxRR(Rebx, Resi)
	expectBytes(t, o, []byte{0x48, 0x0F, 0xAF, 0xDE})
}

func TestMulLowRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MulwxRR(Recx, Redx)
	expectWords(t, o, []uint32{0xE0010291}) // mul r1, r1, r2

	o = newOut(t, ArchMIPS, 128)
	o.MulwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x70852002}) // mul a0, a0, a1

	o = newOut(t, ArchPOWER, 128)
	o.MulwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x7DCE79D6}) // mullw r14, r14, r15
}

func TestMulWideX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.MulwxXR(Recx)
	expectBytes(t, o, []byte{0xF7, 0xE1}) // mul ecx

	o.Reset()
	o.MulwnXR(Rebx)
	expectBytes(t, o, []byte{0xF7, 0xEB}) // imul ebx
}

func TestMulWideARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.MulwxXR(Rebx)
	expectWords(t, o, []uint32{0xE0820390}) // umull r0, r2, r0, r3
}

func TestMulWideARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.MulwnXR(Recx)
	expectWords(t, o, []uint32{
		0x9B217C09, // smull x9, w0, w1
		0xD360FD22, // lsr x2, x9, #32
		0x2A0903E0, // mov w0, w9
	})
}

func TestDivX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.DivwxXR(Recx)
	o.RemwxXR(Recx) // remainder already in Redx, no bytes
	expectBytes(t, o, []byte{
		0x33, 0xD2, // xor edx, edx
		0xF7, 0xF1, // div ecx
	})

	o.Reset()
	o.DivwnXR(Rebx)
	expectBytes(t, o, []byte{
		0x99,       // cdq
		0xF7, 0xFB, // idiv ebx
	})
}

func TestDivReservedOperands(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	mustPanic(t, "divisor in Reax", func() { o.DivwxXR(Reax) })
	mustPanic(t, "divisor in Redx", func() { o.DivwnXR(Redx) })
	mustPanic(t, "remainder operand in Redx", func() { o.RemwnXR(Redx) })
}

func TestDivARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.DivwxXR(Recx)
	expectWords(t, o, []uint32{
		0xE1A0B000, // mov r11, r0 (dividend snapshot)
		0xE730F11B, // udiv r0, r11, r1
		0xE062B091, // mls r2, r1, r0, r11
	})
}

func TestDivARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.DivwxXR(Recx)
	o.RemwxXR(Recx)
	expectWords(t, o, []uint32{
		0x2A0003EC, // mov w12, w0
		0x1AC10980, // udiv w0, w12, w1
		0x1B01B002, // msub w2, w0, w1, w12
	})
	if o.Len() != 12 {
		t.Errorf("remainder form emitted bytes: total %d", o.Len())
	}
}

func TestDivMIPS(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.DivwxXR(Recx)
	expectWords(t, o, []uint32{
		0x0085001B, // divu a0, a1
		0x00002012, // mflo a0
		0x00003010, // mfhi a2
	})
}

func TestDivPOWER(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.DivwxXR(Recx)
	expectWords(t, o, []uint32{
		0x7DC87378, // mr r8, r14
		0x7DC87B96, // divwu r14, r8, r15
		0x7D6E79D6, // mullw r11, r14, r15
		0x7E0B4050, // subf r16, r11, r8
	})
}
