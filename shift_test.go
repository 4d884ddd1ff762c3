package vecasm

import "testing"

func TestShiftX86Imm(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.ShlwxRI(Reax, IB(4))
	o.ShrwxRI(Recx, IB(1))
	o.ShrwnRI(Redx, IB(2))
	expectBytes(t, o, []byte{
		0xC1, 0xE0, 0x04,
		0xC1, 0xE9, 0x01,
		0xC1, 0xFA, 0x02,
	})
}

func TestShiftZeroCountEmitsNothing(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.ShlwxRI(Reax, IC(0))
	if o.Len() != 0 {
		t.Errorf("zero shift emitted %d bytes", o.Len())
	}
}

func TestShiftX86RegisterCount(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.ShlwxRR(Reax, Recx)
	expectBytes(t, o, []byte{0xD3, 0xE0})

	// the count has no encoding outside CL
	mustPanic(t, "count in Rebx", func() { o.ShrwxRR(Reax, Rebx) })
}

func TestShiftARMImm(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.ShlwxRI(Reax, IB(3))
	o.ShrwnRI(Recx, IB(7))
	expectWords(t, o, []uint32{
		0xE1A00180, // mov r0, r0, lsl #3
		0xE1A013C1, // mov r1, r1, asr #7
	})
}

func TestShiftARM64Bfm(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.ShrwxRI(Reax, IB(5))
	expectWords(t, o, []uint32{0x53057C00}) // lsr w0, w0, #5

	o.Reset()
	o.ShlwxRI(Reax, IB(8))
	// lsl w0, w0, #8 = ubfm w0, w0, #24, #23
	expectWords(t, o, []uint32{0x53185C00})

	o.Reset()
	o.ShrxnRI(Recx, IB(3))
	// asr x1, x1, #3 = sbfm x1, x1, #3, #63
	expectWords(t, o, []uint32{0x9343FC21})
}

func TestShiftMIPSAndPOWERImm(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.ShlwxRI(Reax, IB(2))
	expectWords(t, o, []uint32{0x00042080}) // sll a0, a0, 2

	o = newOut(t, ArchPOWER, 128)
	o.ShlwxRI(Reax, IB(4))
	expectWords(t, o, []uint32{0x55CE2036}) // slwi r14, r14, 4

	o.Reset()
	o.ShrwnRI(Reax, IB(1))
	expectWords(t, o, []uint32{0x7DCE0E70}) // srawi r14, r14, 1
}

func TestShiftRegisterRISC(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.ShlwxRR(Reax, Rebx)
	expectWords(t, o, []uint32{0x1AC32000}) // lslv w0, w0, w3

	o = newOut(t, ArchMIPS, 128)
	o.ShrwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x00A42006}) // srlv a0, a0, a1

	o = newOut(t, ArchPOWER, 128)
	o.ShlwxRR(Reax, Recx)
	expectWords(t, o, []uint32{0x7DCE7830}) // slw r14, r14, r15
}
