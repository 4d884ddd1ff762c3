package engine

import "testing"

func TestFitsSigned(t *testing.T) {
	cases := []struct {
		v     int64
		width uint
		want  bool
	}{
		{127, 8, true},
		{128, 8, false},
		{-128, 8, true},
		{-129, 8, false},
		{0x7FFF, 16, true},
		{0x8000, 16, false},
		{-0x8000, 16, true},
		{1 << 40, 32, false},
		{1 << 40, 64, true},
		{-1, 1, true},
		{0, 1, true},
		{1, 1, false},
	}
	for _, c := range cases {
		if got := FitsSigned(c.v, c.width); got != c.want {
			t.Errorf("FitsSigned(%d, %d) = %v, want %v", c.v, c.width, got, c.want)
		}
	}
}

func TestFitsUnsigned(t *testing.T) {
	cases := []struct {
		v     int64
		width uint
		want  bool
	}{
		{255, 8, true},
		{256, 8, false},
		{-1, 8, false},
		{0xFFFF, 16, true},
		{0x10000, 16, false},
		{-1, 64, false},
		{1 << 62, 64, true},
	}
	for _, c := range cases {
		if got := FitsUnsigned(c.v, c.width); got != c.want {
			t.Errorf("FitsUnsigned(%d, %d) = %v, want %v", c.v, c.width, got, c.want)
		}
	}
}

func TestARMRotImm(t *testing.T) {
	cases := []struct {
		v   uint32
		enc uint32
		ok  bool
	}{
		{0, 0, true},
		{0xFF, 0xFF, true},
		{0x3FC, 0xFFF, true},      // 0xFF ror 30
		{0xFF000000, 0x4FF, true}, // 0xFF ror 8
		{0x101, 0, false},
		{0x102, 0, false},
	}
	for _, c := range cases {
		enc, ok := ARMRotImm(c.v)
		if ok != c.ok || (ok && enc != c.enc) {
			t.Errorf("ARMRotImm(%#x) = %#x, %v, want %#x, %v", c.v, enc, ok, c.enc, c.ok)
		}
	}
}

func TestField(t *testing.T) {
	const word = 0xE59F1004
	if got := Field(word, 31, 28); got != 0xE {
		t.Errorf("cond field = %#x", got)
	}
	if got := Field(word, 15, 12); got != 1 {
		t.Errorf("rd field = %#x", got)
	}
	if got := Field(word, 11, 0); got != 4 {
		t.Errorf("imm12 field = %#x", got)
	}
}
