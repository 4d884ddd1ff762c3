package vecasm

import "testing"

func TestCmpJccX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.CmpwxRR(Reax, Recx)
	o.JeqxxXX(0x10)
	expectBytes(t, o, []byte{
		0x3B, 0xC1,
		0x0F, 0x84, 0x10, 0x00, 0x00, 0x00,
	})

	o.Reset()
	o.CmpwxRI(Resi, IB(7))
	o.JgtxxXX(-0x20)
	expectBytes(t, o, []byte{
		0x83, 0xFE, 0x07,
		0x0F, 0x8F, 0xE0, 0xFF, 0xFF, 0xFF,
	})

	o.Reset()
	o.JmpxxXX(-8)
	expectBytes(t, o, []byte{0xE9, 0xF8, 0xFF, 0xFF, 0xFF})
}

func TestCmpJccARM(t *testing.T) {
	o := newOut(t, ArchARM, 128)
	o.CmpwxRR(Reax, Recx)
	o.JeqxxXX(0)
	expectWords(t, o, []uint32{
		0xE1500001, // cmp r0, r1
		0x0AFFFFFF, // beq . (pc-relative adjust folds to -1 words)
	})

	o.Reset()
	o.CmpwxRI(Recx, IB(5))
	expectWords(t, o, []uint32{0xE3510005}) // cmp r1, #5

	o.Reset()
	o.JmpxxXX(8)
	expectWords(t, o, []uint32{0xEA000001})
}

func TestCmpJccARM64(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.CmpwxRR(Reax, Recx)
	o.JeqxxXX(4)
	expectWords(t, o, []uint32{
		0x6B01001F, // subs wzr, w0, w1
		0x54000040, // b.eq +2 words
	})

	o.Reset()
	o.CmpwxRI(Recx, IB(7))
	expectWords(t, o, []uint32{0x71001C3F}) // subs wzr, w1, #7

	o.Reset()
	o.JmpxxXX(8)
	expectWords(t, o, []uint32{0x14000003})
}

func TestCmpJccMIPSStaging(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.CmjwxRR(Reax, Recx, CondEQ, 8)
	expectWords(t, o, []uint32{
		0x00805825, // or $11, $4, $0 (stage left)
		0x00A06025, // or $12, $5, $0 (stage right)
		0x116C0003, // beq $11, $12, +3
		0x00000000, // delay slot
	})
}

func TestCmpJccMIPSOrderedSwap(t *testing.T) {
	// gt has no direct slt form; operands swap and the branch tests the
	// sltu/slt result against zero.
	o := newOut(t, ArchMIPS, 128)
	o.CmjwxRR(Reax, Recx, CondGT, 4)
	expectWords(t, o, []uint32{
		0x00805825, // or $11, $4, $0
		0x00A06025, // or $12, $5, $0
		0x018B782A, // slt $15, $12, $11
		0x15E00002, // bne $15, $0, +2
		0x00000000,
	})
}

func TestCmpJccMIPSJmp(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.JmpxxXX(8)
	expectWords(t, o, []uint32{
		0x10000003, // beq $0, $0, +3
		0x00000000,
	})
}

func TestCmpJccPOWERSigned(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.CmjwxRI(Reax, IC(1), CondLT, 4)
	expectWords(t, o, []uint32{
		0x7DC87378, // mr r8, r14 (stage left)
		0x39200001, // li r9, 1 (stage right)
		0x7C084800, // cmpw cr0, r8, r9
		0x41800008, // blt +2 words
	})
}

func TestCmpJccPOWERUnsigned(t *testing.T) {
	o := newOut(t, ArchPOWER, 128)
	o.CmjwxRR(Reax, Recx, CondHI, 8)
	expectWords(t, o, []uint32{
		0x7DC87378, // mr r8, r14
		0x7DE97B78, // mr r9, r15
		0x7C084840, // cmplw cr0, r8, r9
		0x4181000C, // bgt +3 words
	})

	o.Reset()
	o.JmpxxXX(12)
	expectWords(t, o, []uint32{0x48000010})
}

func TestArithJump(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.ArjwxRI(Recx, IB(1), ArjSub, CondNE, 0x20)
	expectBytes(t, o, []byte{
		0x83, 0xE9, 0x01, // sub ecx, 1
		0x83, 0xF9, 0x00, // cmp ecx, 0
		0x0F, 0x85, 0x20, 0x00, 0x00, 0x00,
	})
}

func TestJccUnknownCondition(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	mustPanic(t, "condition out of range", func() { o.JccXX(Cond(99), 0) })
}
