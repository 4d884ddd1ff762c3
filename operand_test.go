package vecasm

import "testing"

func TestImmConstructorsMaskToClass(t *testing.T) {
	cases := []struct {
		im   Imm
		want int64
	}{
		{IC(0xFF), 0x7F},
		{IB(0x1FF), 0xFF},
		{IM(0xFFFF), 0xFFF},
		{IG(0xFFFF), 0x7FFF},
		{IH(0x1FFFF), 0xFFFF},
		{IV(-1), 0x7FFFFFFF},
		{IW(-1), 0xFFFFFFFF},
	}
	for _, c := range cases {
		if c.im.Val != c.want {
			t.Errorf("%v: expected value %#x, got %#x", c.im.Class, c.want, c.im.Val)
		}
	}
}

func TestDspMaskedScalesWithQ(t *testing.T) {
	// DP covers 12 bits at Q=1 and 13 at Q=2; the low two bits always
	// clear.
	if got := DP(0xFFF).masked(1); got != 0xFFC {
		t.Errorf("DP q=1: expected 0xFFC, got %#x", got)
	}
	if got := DP(0x1FFC).masked(2); got != 0x1FFC {
		t.Errorf("DP q=2: expected 0x1FFC, got %#x", got)
	}
	if got := DH(0x12346).masked(1); got != 0x2344 {
		t.Errorf("DH q=1: expected 0x2344, got %#x", got)
	}
	if got := DV(0x7FFFFFFF).masked(1); got != 0x7FFFFFFC {
		t.Errorf("DV: expected 0x7FFFFFFC, got %#x", got)
	}
	if got := PLAIN.masked(2); got != 0 {
		t.Errorf("PLAIN: expected 0, got %#x", got)
	}
}

func TestIXRejectsBadScale(t *testing.T) {
	mustPanic(t, "IX scale 3", func() { IX(Reax, Recx, 3) })
	for _, s := range []uint8{1, 2, 4, 8} {
		m := IX(Reax, Recx, s)
		if m.Scale != s {
			t.Errorf("scale %d not preserved", s)
		}
	}
}

func TestMemString(t *testing.T) {
	if s := O(Reax).String(); s != "O(Reax)" {
		t.Errorf("O: got %q", s)
	}
	if s := M(Rebx).String(); s != "M(Rebx)" {
		t.Errorf("M: got %q", s)
	}
	if s := IX(Rebx, Recx, 4).String(); s != "IX(Rebx,Recx,4)" {
		t.Errorf("IX: got %q", s)
	}
}

func TestParseRegAndVReg(t *testing.T) {
	if r, ok := ParseReg("Rebp"); !ok || r != Rebp {
		t.Errorf("ParseReg(Rebp) = %v, %v", r, ok)
	}
	if _, ok := ParseReg("rax"); ok {
		t.Error("ParseReg accepted a hardware name")
	}
	if x, ok := ParseVReg("XmmC"); !ok || x != XmmC {
		t.Errorf("ParseVReg(XmmC) = %v, %v", x, ok)
	}
	if _, ok := ParseVReg("Xmm"); ok {
		t.Error("ParseVReg accepted a short name")
	}
}
