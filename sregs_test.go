package vecasm

import "testing"

func TestSregsSaveX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.SregsSA(M(Rebx), PLAIN)

	expected := []byte{0x8D, 0x03} // lea eax, [ebx]
	for v := byte(0); v < 8; v++ { // xmm0-xmm6 plus the xmm7 scratch
		expected = append(expected,
			0x0F, 0x29, v<<3, // movaps [eax], xmmN
			0x83, 0xC0, 0x10, // add eax, 16
		)
	}
	expectBytes(t, o, expected)
}

func TestSregsReloadX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.SregsLA(M(Rebx), PLAIN)

	expected := []byte{0x8D, 0x03}
	for v := byte(0); v < 8; v++ {
		expected = append(expected,
			0x0F, 0x28, v<<3, // movaps xmmN, [eax]
			0x83, 0xC0, 0x10,
		)
	}
	expectBytes(t, o, expected)
}

func TestSregsBankSizes(t *testing.T) {
	// the reload must mirror the spill byte for byte in length
	cases := []struct {
		arch  Arch
		width int
	}{
		{ArchX86, 128},
		{ArchX86_64, 256},
		{ArchX86_64, 512},
		{ArchARM, 128},
		{ArchARM64, 128},
		{ArchMIPS, 128},
		{ArchPOWER, 128},
	}
	for _, c := range cases {
		o := newOut(t, c.arch, c.width)
		o.SregsSA(M(Rebx), PLAIN)
		save := o.Len()
		o.Reset()
		o.SregsLA(M(Rebx), PLAIN)
		if o.Len() != save {
			t.Errorf("%v/%d: save %d bytes, reload %d", c.arch, c.width, save, o.Len())
		}
	}
}
