package main

import (
	"testing"

	"github.com/xyproto/vecasm"
)

func mustOut(t *testing.T, arch vecasm.Arch) *vecasm.Out {
	t.Helper()
	tgt, err := vecasm.NewTarget(arch, 128)
	if err != nil {
		t.Fatal(err)
	}
	return vecasm.NewOut(tgt)
}

func TestParseProgramEncodes(t *testing.T) {
	src := "# scale a counter\nMovwxRI Reax, IW(5); AddwxRR Reax, Recx"
	calls, err := parseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 {
		t.Fatalf("parsed %d calls, want 2", len(calls))
	}

	out := mustOut(t, vecasm.ArchX86)
	for _, c := range calls {
		if err := c.apply(out); err != nil {
			t.Fatal(err)
		}
	}
	expected := []byte{
		0xC7, 0xC0, 0x05, 0x00, 0x00, 0x00, // mov eax, 5
		0x03, 0xC1, // add eax, ecx
	}
	got := out.Bytes()
	if len(got) != len(expected) {
		t.Fatalf("encoded %d bytes, want %d: % X", len(got), len(expected), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("byte %d = %#02x, want %#02x", i, got[i], expected[i])
		}
	}
}

func TestParseOperandForms(t *testing.T) {
	src := "AddwxLD Redx, IX(Rebx, Recx, 4), DP(8)\nCmjwxRI Reax, IC(1), lt, 4\nMkjoxRX Xmm2, full, 8"
	calls, err := parseProgram(src)
	if err != nil {
		t.Fatal(err)
	}
	out := mustOut(t, vecasm.ArchX86_64)
	for _, c := range calls {
		if err := c.apply(out); err != nil {
			t.Fatalf("%s: %v", c.Name, err)
		}
	}
	if out.Len() == 0 {
		t.Fatal("no bytes emitted")
	}
}

func TestParseUnknownInstruction(t *testing.T) {
	calls, err := parseProgram("Frobnicate Reax")
	if err != nil {
		t.Fatal(err)
	}
	out := mustOut(t, vecasm.ArchX86)
	if err := calls[0].apply(out); err == nil {
		t.Fatal("unknown instruction did not error")
	}
}

func TestParseBadOperand(t *testing.T) {
	if _, err := parseProgram("MovwxRI Reax, bogus"); err == nil {
		t.Fatal("bad operand did not error")
	}
	if _, err := parseProgram("MovwxRI Reax, IW(xyz)"); err == nil {
		t.Fatal("bad immediate did not error")
	}
}

func TestParseOperandCountMismatch(t *testing.T) {
	calls, err := parseProgram("AddwxRR Reax")
	if err != nil {
		t.Fatal(err)
	}
	out := mustOut(t, vecasm.ArchX86)
	if err := calls[0].apply(out); err == nil {
		t.Fatal("operand count mismatch did not error")
	}
}

func TestParseEncoderPanicBecomesError(t *testing.T) {
	calls, err := parseProgram("DivwxXR Reax")
	if err != nil {
		t.Fatal(err)
	}
	out := mustOut(t, vecasm.ArchX86)
	if err := calls[0].apply(out); err == nil {
		t.Fatal("reserved divisor did not error")
	}
}
