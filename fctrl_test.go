package vecasm

import "testing"

func TestFctrlEnterX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.FctrlEnter(RoundZero)
	expectBytes(t, o, []byte{
		0x83, 0xEC, 0x08, // sub esp, 8
		0x0F, 0xAE, 0x5C, 0x24, 0x04, // stmxcsr [esp+4]
		0xD9, 0x7C, 0x24, 0x02, // fnstcw [esp+2]
		0xC7, 0x44, 0x24, 0x00, 0x80, 0x7F, 0x00, 0x00, // mov dword [esp], masked|rz
		0x0F, 0xAE, 0x54, 0x24, 0x00, // ldmxcsr [esp]
		0x66, 0xC7, 0x44, 0x24, 0x00, 0x7F, 0x0F, // mov word [esp], fcw|rz
		0xD9, 0x6C, 0x24, 0x00, // fldcw [esp]
	})
}

func TestFctrlLeaveX86(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	o.FctrlEnter(RoundPlus)
	o.Reset()
	o.FctrlLeave()
	expectBytes(t, o, []byte{
		0x0F, 0xAE, 0x54, 0x24, 0x04, // ldmxcsr [esp+4]
		0xD9, 0x6C, 0x24, 0x02, // fldcw [esp+2]
		0x83, 0xC4, 0x08, // add esp, 8
	})
}

func TestFctrlBracketsNest(t *testing.T) {
	o := newOut(t, ArchARM64, 128)
	o.FctrlEnter(RoundMinus)
	o.FctrlEnter(RoundPlus)
	o.FctrlLeave()
	o.FctrlLeave()
	mustPanic(t, "unmatched leave", func() { o.FctrlLeave() })
}

func TestFctrlInvalidMode(t *testing.T) {
	o := newOut(t, ArchX86, 128)
	mustPanic(t, "mode out of range", func() { o.FctrlEnter(RoundMode(7)) })
}

func TestWithRounding(t *testing.T) {
	o := newOut(t, ArchMIPS, 128)
	o.WithRounding(RoundZero, func(o *Out) {
		o.AddosRR(Xmm0, Xmm1)
	})
	if o.Len() == 0 {
		t.Fatal("bracket emitted nothing")
	}
	// the bracket must balance so a fresh leave still panics
	mustPanic(t, "leave outside bracket", func() { o.FctrlLeave() })
}
