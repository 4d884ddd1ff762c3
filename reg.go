package vecasm

import "fmt"

// Reg is a portable BASE (general-purpose) register. The seven portable
// registers exist on every target; the table below maps each to the
// hardware register backing it. The stack pointer is never portable and
// a handful of hardware registers per target are reserved as scratch
// for synthesized multi-instruction sequences.
type Reg uint8

const (
	Reax Reg = iota // accumulator; implicit operand of widening mul/div
	Recx            // counter; implicit shift-count register on x86
	Redx            // implicit high half of widening mul/div on x86
	Rebx
	Rebp
	Resi
	Redi

	numBaseRegs
)

// String returns the portable name.
func (r Reg) String() string {
	names := [...]string{"Reax", "Recx", "Redx", "Rebx", "Rebp", "Resi", "Redi"}
	if int(r) < len(names) {
		return names[r]
	}
	return fmt.Sprintf("Reg(%d)", uint8(r))
}

// Register describes the hardware register a portable register maps to
// on one architecture.
type Register struct {
	Name     string // natural-width hardware name ("rax", "x3", "t0")
	Name32   string // 32-bit alias where the architecture has one
	Size     int    // natural width in bits
	Encoding uint8  // hardware register number
}

var x86BaseRegisters = [numBaseRegs]Register{
	Reax: {"eax", "eax", 32, 0},
	Recx: {"ecx", "ecx", 32, 1},
	Redx: {"edx", "edx", 32, 2},
	Rebx: {"ebx", "ebx", 32, 3},
	Rebp: {"ebp", "ebp", 32, 5},
	Resi: {"esi", "esi", 32, 6},
	Redi: {"edi", "edi", 32, 7},
}

var x8664BaseRegisters = [numBaseRegs]Register{
	Reax: {"rax", "eax", 64, 0},
	Recx: {"rcx", "ecx", 64, 1},
	Redx: {"rdx", "edx", 64, 2},
	Rebx: {"rbx", "ebx", 64, 3},
	Rebp: {"rbp", "ebp", 64, 5},
	Resi: {"rsi", "esi", 64, 6},
	Redi: {"rdi", "edi", 64, 7},
}

var armBaseRegisters = [numBaseRegs]Register{
	Reax: {"r0", "r0", 32, 0},
	Recx: {"r1", "r1", 32, 1},
	Redx: {"r2", "r2", 32, 2},
	Rebx: {"r3", "r3", 32, 3},
	Rebp: {"r4", "r4", 32, 4},
	Resi: {"r5", "r5", 32, 5},
	Redi: {"r6", "r6", 32, 6},
}

var arm64BaseRegisters = [numBaseRegs]Register{
	Reax: {"x0", "w0", 64, 0},
	Recx: {"x1", "w1", 64, 1},
	Redx: {"x2", "w2", 64, 2},
	Rebx: {"x3", "w3", 64, 3},
	Rebp: {"x4", "w4", 64, 4},
	Resi: {"x5", "w5", 64, 5},
	Redi: {"x6", "w6", 64, 6},
}

var mipsBaseRegisters = [numBaseRegs]Register{
	Reax: {"a0", "a0", 32, 4},
	Recx: {"a1", "a1", 32, 5},
	Redx: {"a2", "a2", 32, 6},
	Rebx: {"a3", "a3", 32, 7},
	Rebp: {"t0", "t0", 32, 8},
	Resi: {"t1", "t1", 32, 9},
	Redi: {"t2", "t2", 32, 10},
}

var powerBaseRegisters = [numBaseRegs]Register{
	Reax: {"r14", "r14", 64, 14},
	Recx: {"r15", "r15", 64, 15},
	Redx: {"r16", "r16", 64, 16},
	Rebx: {"r17", "r17", 64, 17},
	Rebp: {"r18", "r18", 64, 18},
	Resi: {"r19", "r19", 64, 19},
	Redi: {"r20", "r20", 64, 20},
}

func baseRegisterTable(arch Arch) *[numBaseRegs]Register {
	switch arch {
	case ArchX86:
		return &x86BaseRegisters
	case ArchX86_64:
		return &x8664BaseRegisters
	case ArchARM:
		return &armBaseRegisters
	case ArchARM64:
		return &arm64BaseRegisters
	case ArchMIPS:
		return &mipsBaseRegisters
	case ArchPOWER:
		return &powerBaseRegisters
	}
	return nil
}

// GetRegister resolves a portable BASE register name ("Reax") to the
// hardware register backing it on the given architecture.
func GetRegister(arch Arch, name string) (Register, bool) {
	r, ok := ParseReg(name)
	if !ok {
		return Register{}, false
	}
	table := baseRegisterTable(arch)
	if table == nil {
		return Register{}, false
	}
	return table[r], true
}

// ParseReg parses a portable BASE register name.
func ParseReg(name string) (Reg, bool) {
	switch name {
	case "Reax":
		return Reax, true
	case "Recx":
		return Recx, true
	case "Redx":
		return Redx, true
	case "Rebx":
		return Rebx, true
	case "Rebp":
		return Rebp, true
	case "Resi":
		return Resi, true
	case "Redi":
		return Redi, true
	}
	return 0, false
}

// baseReg returns the hardware register for r on the Out's target.
// Unknown registers are a caller bug and panic immediately: silently
// encoding the wrong register number would produce a byte stream that
// executes as a different instruction.
func (o *Out) baseReg(r Reg) Register {
	if r >= numBaseRegs {
		panic(fmt.Sprintf("vecasm: %v is not a portable BASE register", r))
	}
	return baseRegisterTable(o.target.Arch())[r]
}

// Scratch BASE registers, one set per architecture. These carry the
// synthesized pieces of multi-instruction sequences (large immediates,
// out-of-range displacements, compare operands on flagless targets) and
// are never visible through the portable register set.
const (
	// AArch32: r8-r12
	armTMxx = 8  // resolved memory address
	armTIxx = 9  // synthesized immediate
	armTDxx = 10 // synthesized displacement
	armTLxx = 11 // left compare operand / flags shadow
	armTRxx = 12 // right compare operand
	armSP   = 13
	armLR   = 14
	armPC   = 15

	// AArch64: x9-x13, zero register 31
	a64TMxx = 9
	a64TIxx = 10
	a64TDxx = 11
	a64TLxx = 12
	a64TRxx = 13
	a64ZR   = 31

	// MIPS32: t8/t9/t7 + t3/t4, hardwired zero $0
	mipsTMxx = 24
	mipsTIxx = 25
	mipsTDxx = 15
	mipsTLxx = 11
	mipsTRxx = 12
	mipsZero = 0
	mipsSP   = 29

	// POWER: r10-r12 + r8/r9; r0 is avoided entirely because RA=0
	// reads as literal zero in D-form addressing
	ppcTMxx = 11
	ppcTIxx = 12
	ppcTDxx = 10
	ppcTLxx = 8
	ppcTRxx = 9
	ppcSP   = 1
)
