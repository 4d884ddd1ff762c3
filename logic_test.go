package vecasm

import "testing"

func TestLogicX86RR(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AndwxRR(Reax, Recx)
	o.OrrwxRR(Reax, Recx)
	o.XorwxRR(Reax, Recx)
	expectBytes(t, o, []byte{0x23, 0xC1, 0x0B, 0xC1, 0x33, 0xC1})
}

func TestLogicX86Imm(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AndwxRI(Redx, IB(0x0F))
	expectBytes(t, o, []byte{0x83, 0xE2, 0x0F})

	o.Reset()
	o.OrrwxRI(Rebx, IH(0x8000))
	expectBytes(t, o, []byte{0x81, 0xCB, 0x00, 0x80, 0x00, 0x00})
}

func TestLogicMIPSImmForms(t *testing.T) {
	// andi/ori/xori zero-extend, so the immediate forms apply to
	// unsigned 16-bit values
	o := newOut(t, ArchMIPS, 128)
	o.AndwxRI(Reax, IH(0xFFFF))
	expectWords(t, o, []uint32{0x3084FFFF}) // andi a0, a0, 0xffff

	o = newOut(t, ArchPOWER, 128)
	o.OrrwxRI(Recx, IH(0x00FF))
	expectWords(t, o, []uint32{0x61EF00FF}) // ori r15, r15, 0xff
}

func TestNotNeg(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.NotwxRX(Redx)
	o.NegwxRX(Rebx)
	expectBytes(t, o, []byte{0xF7, 0xD2, 0xF7, 0xDB})

	o = newOut(t, ArchARM, 128)
	o.NotwxRX(Reax)
	o.NegwxRX(Recx)
	expectWords(t, o, []uint32{
		0xE1E00000, // mvn r0, r0
		0xE2611000, // rsb r1, r1, #0
	})

	o = newOut(t, ArchARM64, 128)
	o.NegwxRX(Recx)
	expectWords(t, o, []uint32{0x4B0103E1}) // sub w1, wzr, w1

	o = newOut(t, ArchMIPS, 128)
	o.NotwxRX(Reax)
	expectWords(t, o, []uint32{0x00802027}) // nor a0, a0, $0

	o = newOut(t, ArchPOWER, 128)
	o.NegwxRX(Reax)
	expectWords(t, o, []uint32{0x7DCE00D0}) // neg r14, r14
}

func TestNotMemInPlace(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.NotwxMX(M(Rebx), DP(4))
	expectBytes(t, o, []byte{0xF7, 0x53, 0x04})

	o = newOut(t, ArchARM64, 128)
	o.NegwxMX(O(Rebx), PLAIN)
	expectWords(t, o, []uint32{
		0xB9400069, // ldr w9, [x3]
		0x4B0903E9, // sub w9, wzr, w9
		0xB9000069, // str w9, [x3]
	})
}
