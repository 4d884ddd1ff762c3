package vecasm

import (
	"encoding/binary"
	"testing"
)

func TestNewTargetValidation(t *testing.T) {
	if _, err := NewTarget(ArchX86_64, 512); err != nil {
		t.Errorf("x86_64/512: %v", err)
	}
	if _, err := NewTarget(ArchARM64, 256); err == nil {
		t.Error("arm64/256 should be rejected")
	}
	if _, err := NewTarget(ArchX86, 512); err == nil {
		t.Error("x86/512 should be rejected")
	}
	if _, err := NewTarget(ArchMIPS, 64); err == nil {
		t.Error("width 64 should be rejected")
	}
	if _, err := NewTarget(ArchUnknown, 128); err == nil {
		t.Error("unknown arch should be rejected")
	}
}

func TestTargetLanes(t *testing.T) {
	tg, _ := NewTarget(ArchX86_64, 512)
	if tg.Lanes32() != 16 || tg.Lanes64() != 8 {
		t.Errorf("512-bit lanes: got %d/%d", tg.Lanes32(), tg.Lanes64())
	}
	tg, _ = NewTarget(ArchARM, 128)
	if tg.Lanes32() != 4 {
		t.Errorf("128-bit lanes: got %d", tg.Lanes32())
	}
}

func TestSetBigEndian(t *testing.T) {
	tg, _ := NewTarget(ArchPOWER, 128)
	if err := tg.SetBigEndian(true); err != nil {
		t.Fatalf("power big-endian: %v", err)
	}
	if tg.ByteOrder() != binary.BigEndian {
		t.Error("byte order did not switch")
	}
	if tg.String() != "power8/128be" && tg.String() != "power/128be" {
		// arch naming comes from the engine package; just require the
		// be suffix
		if s := tg.String(); len(s) < 2 || s[len(s)-2:] != "be" {
			t.Errorf("String() = %q, want be suffix", s)
		}
	}

	tg, _ = NewTarget(ArchARM64, 128)
	if err := tg.SetBigEndian(true); err == nil {
		t.Error("arm64 big-endian should be rejected")
	}
	tg, _ = NewTarget(ArchMIPS, 128)
	if err := tg.SetBigEndian(true); err != nil {
		t.Errorf("mips big-endian: %v", err)
	}
}

func TestVRegCountPerTarget(t *testing.T) {
	cases := []struct {
		arch  Arch
		width int
		count int
	}{
		{ArchX86, 128, 7},
		{ArchX86_64, 128, 15},
		{ArchX86_64, 512, 16},
		{ArchARM, 128, 8},
		{ArchARM64, 128, 16},
		{ArchMIPS, 128, 16},
		{ArchPOWER, 128, 16},
	}
	for _, c := range cases {
		tg, err := NewTarget(c.arch, c.width)
		if err != nil {
			t.Fatalf("%v/%d: %v", c.arch, c.width, err)
		}
		if got := tg.vregCount(); got != c.count {
			t.Errorf("%v/%d: expected %d vector registers, got %d", c.arch, c.width, c.count, got)
		}
	}
}

func TestVRegOutOfRangePanics(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	mustPanic(t, "Xmm8 on arm", func() { o.MovosRR(Xmm0, Xmm8) })
	o = newOut(t, ArchX86, 128)
	mustPanic(t, "Xmm7 on x86", func() { o.AddosRR(Xmm7, Xmm0) })
}

func TestGetRegisterMapping(t *testing.T) {
	hw, ok := GetRegister(ArchMIPS, "Reax")
	if !ok || hw.Name != "a0" || hw.Encoding != 4 {
		t.Errorf("mips Reax: %+v, %v", hw, ok)
	}
	hw, ok = GetRegister(ArchPOWER, "Redi")
	if !ok || hw.Encoding != 20 {
		t.Errorf("power Redi: %+v, %v", hw, ok)
	}
	if _, ok := GetRegister(ArchX86, "Resp"); ok {
		t.Error("stack pointer must not resolve")
	}
}

func TestGetVectorRegisterMapping(t *testing.T) {
	hw, ok := GetVectorRegister(ArchX86_64, 256, "Xmm3")
	if !ok || hw.Name != "ymm3" || hw.Size != 256 {
		t.Errorf("x86_64/256 Xmm3: %+v, %v", hw, ok)
	}
	// ARM quad registers are addressed by even D numbers.
	hw, ok = GetVectorRegister(ArchARM, 128, "Xmm3")
	if !ok || hw.Encoding != 6 || hw.Name != "q3" {
		t.Errorf("arm Xmm3: %+v, %v", hw, ok)
	}
	if _, ok := GetVectorRegister(ArchARM, 128, "Xmm8"); ok {
		t.Error("arm Xmm8 must not resolve")
	}
}
