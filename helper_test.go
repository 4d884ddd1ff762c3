package vecasm

import "testing"

// newOut builds an encoder for the given architecture and width,
// failing the test on an invalid combination.
func newOut(t *testing.T, arch Arch, width int) *Out {
	t.Helper()
	target, err := NewTarget(arch, width)
	if err != nil {
		t.Fatalf("NewTarget(%v, %d): %v", arch, width, err)
	}
	return NewOut(target)
}

// expectBytes compares the encoded buffer against the expected machine
// code byte for byte.
func expectBytes(t *testing.T, out *Out, expected []byte) {
	t.Helper()
	got := out.Bytes()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d bytes, got %d: % X", len(expected), len(got), got)
	}
	for i, b := range expected {
		if got[i] != b {
			t.Errorf("Byte %d: expected 0x%02X, got 0x%02X", i, b, got[i])
		}
	}
}

// expectWords reassembles the buffer as 32-bit instruction words in
// the target's byte order and compares.
func expectWords(t *testing.T, out *Out, expected []uint32) {
	t.Helper()
	got := out.Bytes()
	if len(got) != 4*len(expected) {
		t.Fatalf("Expected %d words (%d bytes), got %d bytes: % X",
			len(expected), 4*len(expected), len(got), got)
	}
	order := out.Target().ByteOrder()
	for i, w := range expected {
		g := order.Uint32(got[4*i : 4*i+4])
		if g != w {
			t.Errorf("Word %d: expected 0x%08X, got 0x%08X", i, w, g)
		}
	}
}

// mustPanic fails the test unless fn panics.
func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
