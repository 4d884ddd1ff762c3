package vecasm

import (
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
)

// VerboseMode makes every encoder narrate the instruction it encodes
// and the bytes it produces on stderr, assembler-listing style.
// Initialized from the VECASM_VERBOSE environment variable.
var VerboseMode = env.Bool("VECASM_VERBOSE")

// Out encodes portable pseudo-instructions for one target into an
// in-memory code buffer. Methods append bytes; nothing is ever patched
// or reordered, so the buffer contents after any call are final.
//
// Misuse (a register the target does not have, an operation outside
// the target's support matrix, a reserved register passed where the
// contract forbids it) panics immediately with a precise message.
// A silently wrong byte stream would execute as a different
// instruction, which is strictly worse than not generating one.
type Out struct {
	target     *Target
	code       []byte
	fctrlDepth int
}

// NewOut returns an encoder that appends code for the given target.
func NewOut(target *Target) *Out {
	return &Out{target: target}
}

// Target returns the target this encoder generates for.
func (o *Out) Target() *Target { return o.target }

// Bytes returns the encoded machine code.
func (o *Out) Bytes() []byte { return o.code }

// Len returns the number of bytes encoded so far.
func (o *Out) Len() int { return len(o.code) }

// Reset discards the buffer contents and keeps the target.
func (o *Out) Reset() { o.code = o.code[:0] }

// Write appends a single byte.
func (o *Out) Write(b uint8) {
	o.code = append(o.code, b)
	if VerboseMode {
		fmt.Fprintf(os.Stderr, " %02x", b)
	}
}

// word appends one 32-bit instruction word in the target's byte order.
func (o *Out) word(w uint32) {
	if o.target.bigEndian {
		o.Write(uint8(w >> 24))
		o.Write(uint8(w >> 16))
		o.Write(uint8(w >> 8))
		o.Write(uint8(w))
		return
	}
	o.Write(uint8(w))
	o.Write(uint8(w >> 8))
	o.Write(uint8(w >> 16))
	o.Write(uint8(w >> 24))
}

// imm32 appends a 32-bit immediate/displacement field, always
// little-endian: on the byte-oriented targets immediates trail the
// opcode in memory order regardless of word emission.
func (o *Out) imm32(v int32) {
	o.Write(uint8(v))
	o.Write(uint8(v >> 8))
	o.Write(uint8(v >> 16))
	o.Write(uint8(v >> 24))
}

// imm16 appends a 16-bit little-endian immediate field.
func (o *Out) imm16(v int16) {
	o.Write(uint8(v))
	o.Write(uint8(v >> 8))
}
