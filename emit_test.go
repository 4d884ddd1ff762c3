package vecasm

import "testing"

func TestWordByteOrder(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.word(0x11223344)
	expectBytes(t, o, []byte{0x44, 0x33, 0x22, 0x11})

	o.Reset()
	if err := o.Target().SetBigEndian(true); err != nil {
		t.Fatal(err)
	}
	o.word(0x11223344)
	expectBytes(t, o, []byte{0x11, 0x22, 0x33, 0x44})
}

func TestImm32AlwaysLittleEndian(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.imm32(-2)
	expectBytes(t, o, []byte{0xFE, 0xFF, 0xFF, 0xFF})
}

func TestResetKeepsTarget(t *testing.T) {
	o := newOut(t, ArchX86_64, 256)
	o.AddosRR(Xmm0, Xmm1)
	if o.Len() == 0 {
		t.Fatal("nothing encoded")
	}
	o.Reset()
	if o.Len() != 0 {
		t.Errorf("Len after Reset = %d", o.Len())
	}
	if o.Target().SIMDWidth() != 256 {
		t.Error("target lost across Reset")
	}
}
