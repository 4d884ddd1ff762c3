package vecasm

import "testing"

func TestStackX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.StackSA()
	o.StackLA()
	expectBytes(t, o, []byte{0x60, 0x61}) // pusha / popa
}

func TestStackX86_64(t *testing.T) {
	o := newOut(t, ArchX86_64, 128)
	o.StackSA()
	expectBytes(t, o, []byte{0x50, 0x51, 0x52, 0x53, 0x55, 0x56, 0x57})

	o.Reset()
	o.StackLA()
	expectBytes(t, o, []byte{0x5F, 0x5E, 0x5D, 0x5B, 0x5A, 0x59, 0x58})
}

func TestStackARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.StackSA()
	o.StackLA()
	expectWords(t, o, []uint32{
		0xE92D007F, // stmdb sp!, {r0-r6}
		0xE8BD007F, // ldmia sp!, {r0-r6}
	})
}

func TestStackARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.StackSA()
	expectWords(t, o, []uint32{
		0xA9BF07E0, // stp x0, x1, [sp, #-16]!
		0xA9BF0FE2, // stp x2, x3, [sp, #-16]!
		0xA9BF17E4, // stp x4, x5, [sp, #-16]!
		0xF81F0FE6, // str x6, [sp, #-16]!
	})

	o.Reset()
	o.StackLA()
	expectWords(t, o, []uint32{
		0xF84107E6, // ldr x6, [sp], #16
		0xA8C117E4, // ldp x4, x5, [sp], #16
		0xA8C10FE2, // ldp x2, x3, [sp], #16
		0xA8C107E0, // ldp x0, x1, [sp], #16
	})
}

func TestStackMIPS(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.StackSA()
	expectWords(t, o, []uint32{
		0x27BDFFE0, // addiu sp, sp, -32
		0xAFA40000, 0xAFA50004, 0xAFA60008, 0xAFA7000C,
		0xAFA80010, 0xAFA90014, 0xAFAA0018,
	})

	o.Reset()
	o.StackLA()
	expectWords(t, o, []uint32{
		0x8FAA0018, 0x8FA90014, 0x8FA80010, 0x8FA7000C,
		0x8FA60008, 0x8FA50004, 0x8FA40000,
		0x27BD0020, // addiu sp, sp, 32
	})
}

func TestStackPOWER(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.StackSA()
	expectWords(t, o, []uint32{
		0x3821FFC0, // addi r1, r1, -64
		0xF9C10000, 0xF9E10008, 0xFA010010, 0xFA210018,
		0xFA410020, 0xFA610028, 0xFA810030,
	})

	o.Reset()
	o.StackLA()
	expectWords(t, o, []uint32{
		0xEA810030, 0xEA610028, 0xEA410020, 0xEA210018,
		0xEA010010, 0xE9E10008, 0xE9C10000,
		0x38210040, // addi r1, r1, 64
	})
}
