package vecasm

import "fmt"

// RoundMode selects an IEEE rounding direction for the bracketed
// operations. The numeric values follow the x86 MXCSR/ROUNDPS order;
// every other ISA numbers the modes differently and translates through
// the tables below.
type RoundMode uint8

const (
	RoundNearest RoundMode = iota // to nearest, ties to even
	RoundMinus                    // toward minus infinity
	RoundPlus                     // toward plus infinity
	RoundZero                     // toward zero
)

// String returns the mode name.
func (m RoundMode) String() string {
	switch m {
	case RoundNearest:
		return "nearest"
	case RoundMinus:
		return "minus"
	case RoundPlus:
		return "plus"
	case RoundZero:
		return "zero"
	}
	return fmt.Sprintf("RoundMode(%d)", uint8(m))
}

// Hardware rounding-control values indexed by RoundMode.
var (
	armRMode = [4]uint32{0, 2, 1, 3} // FPSCR/FPCR bits 23:22
	mipsRM   = [4]uint32{0, 3, 2, 1} // MSACSR bits 1:0
	ppcRN    = [4]uint32{0, 3, 2, 1} // FPSCR bits 1:0
)

// Control-register images with all exceptions masked, the processor
// defaults. The rounding-control field sits at bits 14:13 of MXCSR and
// bits 11:10 of the x87 control word, with the same mode encoding as
// RoundMode in both.
const (
	x86MxcsrDefault = 0x1F80
	x86FcwDefault   = 0x037F
)

// FctrlEnter switches the target's SIMD rounding mode, saving the
// previous control state on the hardware stack so brackets nest LIFO.
// Between Enter and the matching FctrlLeave the stack pointer must not
// move by other means. The bracket costs a handful of instructions on
// every target and no registers: x86 swaps both MXCSR and the x87
// control word (restoring the exact saved values, entering with the
// default exception masks), POWER parks the old FPSCR in f0 on the
// stack, and the RISC targets splice the mode field into the saved
// control word.
func (o *Out) FctrlEnter(mode RoundMode) {
	if mode > RoundZero {
		panic(fmt.Sprintf("vecasm: invalid rounding mode %d", mode))
	}
	o.fctrlDepth++
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86RspAdj(8, true)
		o.Write(0x0F) // stmxcsr [esp+4]
		o.Write(0xAE)
		o.x86EspMem(3, 4)
		o.Write(0xD9) // fnstcw [esp+2]
		o.x86EspMem(7, 2)
		o.Write(0xC7) // mov dword [esp], default|rc
		o.x86EspMem(0, 0)
		o.imm32(int32(x86MxcsrDefault | uint32(mode)<<13))
		o.Write(0x0F) // ldmxcsr [esp]
		o.Write(0xAE)
		o.x86EspMem(2, 0)
		o.Write(0x66) // mov word [esp], default|rc
		o.Write(0xC7)
		o.x86EspMem(0, 0)
		fcw := x86FcwDefault | uint16(mode)<<10
		o.Write(uint8(fcw))
		o.Write(uint8(fcw >> 8))
		o.Write(0xD9) // fldcw [esp]
		o.x86EspMem(5, 0)
	case ArchARM:
		o.armVMRS(armTMxx)
		o.word(0xE92D0000 | 1<<armTMxx) // push {TMxx}
		o.armBicImm(armTMxx, armTMxx, 0x3<<22)
		if armRMode[mode] != 0 {
			o.armOrrImm(armTMxx, armTMxx, armRMode[mode]<<22)
		}
		o.armVMSR(armTMxx)
	case ArchARM64:
		o.a64MRSFPCR(a64TMxx)
		o.a64Push(a64TMxx)
		o.a64Imm(a64TIxx, 0x3<<22, false)
		o.word(a64R3(0x8A200000, a64TMxx, a64TMxx, a64TIxx)) // bic
		if armRMode[mode] != 0 {
			o.a64Imm(a64TIxx, uint64(armRMode[mode])<<22, false)
			o.word(a64R3(0xAA000000, a64TMxx, a64TMxx, a64TIxx)) // orr
		}
		o.a64MSRFPCR(a64TMxx)
	case ArchMIPS:
		o.mipsCFCMSA(mipsTMxx)
		o.word(mipsI(0x24000000, mipsSP, mipsSP, 0xFFF8)) // addiu sp, sp, -8
		o.word(mipsI(0xAC000000, mipsTMxx, mipsSP, 0))    // sw
		o.word(mipsShift(0x00000002, mipsTDxx, mipsTMxx, 2))
		o.word(mipsShift(0x00000000, mipsTDxx, mipsTDxx, 2))
		if mipsRM[mode] != 0 {
			o.word(mipsI(0x34000000, mipsTDxx, mipsTDxx, mipsRM[mode]))
		}
		o.mipsCTCMSA(mipsTDxx)
	default:
		o.ppcMFFS(0)
		o.word(ppcD(0xDC000000, 0, ppcSP, 0xFFF0)) // stfdu f0, -16(r1)
		o.ppcMTFSFI(ppcRN[mode])
	}
}

// FctrlLeave restores the rounding state saved by the matching
// FctrlEnter.
func (o *Out) FctrlLeave() {
	if o.fctrlDepth == 0 {
		panic("vecasm: FctrlLeave without FctrlEnter")
	}
	o.fctrlDepth--
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.Write(0x0F) // ldmxcsr [esp+4]
		o.Write(0xAE)
		o.x86EspMem(2, 4)
		o.Write(0xD9) // fldcw [esp+2]
		o.x86EspMem(5, 2)
		o.x86RspAdj(8, false)
	case ArchARM:
		o.word(0xE8BD0000 | 1<<armTMxx) // pop {TMxx}
		o.armVMSR(armTMxx)
	case ArchARM64:
		o.a64Pop(a64TMxx)
		o.a64MSRFPCR(a64TMxx)
	case ArchMIPS:
		o.word(mipsI(0x8C000000, mipsTMxx, mipsSP, 0)) // lw
		o.word(mipsI(0x24000000, mipsSP, mipsSP, 8))
		o.mipsCTCMSA(mipsTMxx)
	default:
		o.word(ppcD(0xC8000000, 0, ppcSP, 0)) // lfd f0, 0(r1)
		o.word(ppcD(0x38000000, ppcSP, ppcSP, 16))
		o.ppcMTFSF(0)
	}
}

// WithRounding brackets fn between FctrlEnter and FctrlLeave.
func (o *Out) WithRounding(mode RoundMode, fn func(*Out)) {
	o.FctrlEnter(mode)
	fn(o)
	o.FctrlLeave()
}
