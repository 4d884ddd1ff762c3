package engine

import "math/bits"

// FitsSigned reports whether v is representable as a signed two's
// complement immediate of the given bit width.
func FitsSigned(v int64, width uint) bool {
	if width >= 64 {
		return true
	}
	limit := int64(1) << (width - 1)
	return v >= -limit && v < limit
}

// FitsUnsigned reports whether v is representable as an unsigned
// immediate of the given bit width.
func FitsUnsigned(v int64, width uint) bool {
	if v < 0 {
		return false
	}
	if width >= 64 {
		return true
	}
	return v < int64(1)<<width
}

// ARMRotImm encodes v as an AArch32 data-processing immediate: an 8-bit
// value rotated right by an even amount. The second result is false when
// v has no such encoding.
func ARMRotImm(v uint32) (uint32, bool) {
	for rot := uint32(0); rot < 32; rot += 2 {
		rotated := bits.RotateLeft32(v, int(rot))
		if rotated <= 0xFF {
			return (rot/2)<<8 | rotated, true
		}
	}
	return 0, false
}

// Field extracts the inclusive bit range [hi:lo] from a 32-bit
// instruction word. Used by tests to take encoded words apart.
func Field(word uint32, hi, lo uint) uint32 {
	return (word >> lo) & ((1 << (hi - lo + 1)) - 1)
}
