package vecasm

import (
	"strings"
	"testing"

	"golang.org/x/arch/arm64/arm64asm"
	"golang.org/x/arch/ppc64/ppc64asm"
	"golang.org/x/arch/x86/x86asm"
)

func TestAddPackedX86Widths(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AddosRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x0F, 0x58, 0xC1}) // addps

	o = newOut(t, ArchX86_64, 128)
	o.AddosRR(Xmm8, Xmm9)
	expectBytes(t, o, []byte{0x45, 0x0F, 0x58, 0xC1})

	o = newOut(t, ArchX86_64, 256)
	o.AddosRR(Xmm2, Xmm3)
	expectBytes(t, o, []byte{0xC4, 0xE1, 0x6C, 0x58, 0xD3}) // vaddps ymm

	o = newOut(t, ArchX86_64, 512)
	o.AddosRR(Xmm1, Xmm2)
	expectBytes(t, o, []byte{0x62, 0xF1, 0x74, 0x48, 0x58, 0xCA}) // vaddps zmm
}

func TestAddPackedX86F64(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AddqsRR(Xmm0, Xmm1)
	expectBytes(t, o, []byte{0x66, 0x0F, 0x58, 0xC1}) // addpd
}

func TestAddPackedX86Memory(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.AddosLD(Xmm0, M(Rebx), DP(8))
	expectBytes(t, o, []byte{0x0F, 0x58, 0x43, 0x08})
}

func TestAddPackedRISC(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.AddosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF2000D42}) // vadd.f32 q0, q0, q1

	o = newOut(t, ArchARM64, 128)
	o.AddosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x4E21D400}) // fadd v0.4s, v0.4s, v1.4s

	o = newOut(t, ArchMIPS, 128)
	o.AddosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x7801001B}) // fadd.w w0, w0, w1

	o = newOut(t, ArchPOWER, 128)
	o.AddosRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0x1000080A}) // vaddfp v0, v0, v1
}

func TestAddPackedPOWERF64(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.AddqsRR(Xmm0, Xmm1)
	expectWords(t, o, []uint32{0xF0000B07}) // xvadddp vs32, vs32, vs33
}

func TestAddPackedF64Unsupported(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	mustPanic(t, "f64 on NEON", func() { o.AddqsRR(Xmm0, Xmm1) })
}

// The stream decoders in x/arch read back what the encoders emit, so a
// disagreement points at the byte layout rather than a transcribed
// constant.

func TestAddRoundTripX86(t *testing.T) {
	o := newOut(t, ArchX86_64, 128)
	o.AddosRR(Xmm3, Xmm5)
	inst, err := x86asm.Decode(o.Bytes(), 64)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if inst.Op != x86asm.ADDPS {
		t.Errorf("decoded %v, want ADDPS", inst.Op)
	}
	if inst.Len != o.Len() {
		t.Errorf("decoded %d bytes of %d", inst.Len, o.Len())
	}
}

func TestAddRoundTripARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.AddosRR(Xmm2, Xmm7)
	inst, err := arm64asm.Decode(o.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := arm64asm.GNUSyntax(inst); !strings.Contains(got, "fadd") {
		t.Errorf("decoded %q, want an fadd", got)
	}
}

func TestAddRoundTripPOWER(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.AddosRR(Xmm1, Xmm4)
	inst, err := ppc64asm.Decode(o.Bytes(), o.Target().ByteOrder())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := ppc64asm.GNUSyntax(inst, 0); !strings.Contains(got, "vaddfp") {
		t.Errorf("decoded %q, want a vaddfp", got)
	}
}
