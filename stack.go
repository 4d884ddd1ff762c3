package vecasm

// StackSA and StackLA save and restore the whole portable BASE bank on
// the hardware stack, so generated code can call out without tracking
// which registers the surrounding sequence holds live. x86 still has
// PUSHA/POPA; x86_64 dropped them, so the bank is pushed one register
// at a time there; ARM uses a block store; the remaining targets
// adjust the stack pointer once and fill the frame with plain stores.

// x86_64 push order, restored in reverse. rsp itself is excluded.
var x64StackOrder = [...]Reg{Reax, Recx, Redx, Rebx, Rebp, Resi, Redi}

// armStackMask covers r0-r6 for STMDB/LDMIA.
const armStackMask = 0x007F

// StackSA saves all portable BASE registers to the stack.
func (o *Out) StackSA() {
	switch o.target.Arch() {
	case ArchX86:
		o.Write(0x60) // pusha
	case ArchX86_64:
		for _, r := range x64StackOrder {
			o.Write(0x50 + o.baseReg(r).Encoding)
		}
	case ArchARM:
		// stmdb sp!, {r0-r6}
		o.word(0xE92D0000 | armStackMask)
	case ArchARM64:
		// stp pairs keep SP 16-byte aligned; the odd seventh register
		// gets a pre-indexed slot of its own.
		o.word(0xA9BF0000 | 1<<10 | 31<<5 | 0) // stp x0, x1, [sp, -16]!
		o.word(0xA9BF0000 | 3<<10 | 31<<5 | 2) // stp x2, x3
		o.word(0xA9BF0000 | 5<<10 | 31<<5 | 4) // stp x4, x5
		o.a64Push(6)
	case ArchMIPS:
		o.word(mipsI(0x24000000, mipsSP, mipsSP, uint32(0x10000-32))) // addiu sp, -32
		for i, r := range x64StackOrder {
			o.word(mipsI(0xAC000000, o.baseReg(r).Encoding, mipsSP, uint32(i*4)))
		}
	default:
		o.word(ppcD(0x38000000, ppcSP, ppcSP, uint32(0x10000-64))) // addi r1, r1, -64
		for i, r := range x64StackOrder {
			o.word(ppcD(0xF8000000, o.baseReg(r).Encoding, ppcSP, uint32(i*8))) // std
		}
	}
}

// StackLA restores the portable BASE bank saved by StackSA.
func (o *Out) StackLA() {
	switch o.target.Arch() {
	case ArchX86:
		o.Write(0x61) // popa
	case ArchX86_64:
		for i := len(x64StackOrder) - 1; i >= 0; i-- {
			o.Write(0x58 + o.baseReg(x64StackOrder[i]).Encoding)
		}
	case ArchARM:
		// ldmia sp!, {r0-r6}
		o.word(0xE8BD0000 | armStackMask)
	case ArchARM64:
		o.a64Pop(6)
		o.word(0xA8C10000 | 5<<10 | 31<<5 | 4) // ldp x4, x5, [sp], 16
		o.word(0xA8C10000 | 3<<10 | 31<<5 | 2) // ldp x2, x3
		o.word(0xA8C10000 | 1<<10 | 31<<5 | 0) // ldp x0, x1
	case ArchMIPS:
		for i := len(x64StackOrder) - 1; i >= 0; i-- {
			r := x64StackOrder[i]
			o.word(mipsI(0x8C000000, o.baseReg(r).Encoding, mipsSP, uint32(i*4)))
		}
		o.word(mipsI(0x24000000, mipsSP, mipsSP, 32))
	default:
		for i := len(x64StackOrder) - 1; i >= 0; i-- {
			r := x64StackOrder[i]
			o.word(ppcD(0xE8000000, o.baseReg(r).Encoding, ppcSP, uint32(i*8))) // ld
		}
		o.word(ppcD(0x38000000, ppcSP, ppcSP, 64))
	}
}
