package vecasm

// simdOp describes one packed operation across all six backends: the
// x86 prefix/map/opcode triple (with the EVEX width bit) plus complete
// op templates, register fields zeroed, for the word-oriented targets.
// The w bit doubles as the 64-bit element marker, so it also selects
// the displacement scale on the memory forms. Ops whose shape is not
// uniform across backends (divide, square root, compares with
// expansion, conversions) are spelled out in their own families
// instead.
type simdOp struct {
	pp, mmap, op uint8
	w            bool
	arm          uint32
	a64          uint32
	mips         uint32
	ppc          uint32
}

// require64BitElems guards the 64-bit element families on targets
// without them.
func (o *Out) require64BitElems() {
	if !o.target.hasF64SIMD() {
		panic("vecasm: 64-bit SIMD elements not supported on " + o.target.String())
	}
}

// simdBinRR emits the destructive two-operand form xg = xg OP xs.
func (o *Out) simdBinRR(t simdOp, xg, xs VReg) {
	g, s := o.vreg(xg), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86SimdRR(t.pp, t.mmap, t.op, t.w, g, s)
	case ArchARM:
		o.armSimd3(t.arm, g, g, s)
	case ArchARM64:
		o.a64Simd3(t.a64, g, g, s)
	case ArchMIPS:
		o.word(mipsMSA3(t.mips, g, g, s))
	default:
		o.ppcSimd3(t.ppc, g, g, s)
	}
}

// simdBinLD emits xg = xg OP [mem]. The word-oriented targets stage
// the operand through the TmmM scratch first.
func (o *Out) simdBinLD(t simdOp, xg VReg, ms Mem, ds Dsp) {
	g := o.vreg(xg)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86SimdLD(t.pp, t.mmap, t.op, t.w, g, ms, ds)
	case ArchARM:
		m := o.armLoadVScratch(ms, ds)
		o.armSimd3(t.arm, g, g, m)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd3(t.a64, g, g, m)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, t.w)
		o.word(mipsMSA3(t.mips, g, g, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcSimd3(t.ppc, g, g, m)
	}
}

// simdUnRR emits the two-register form xd = OP xs.
func (o *Out) simdUnRR(t simdOp, xd, xs VReg) {
	d, s := o.vreg(xd), o.vreg(xs)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2RR(t.pp, t.mmap, t.op, t.w, d, s)
	case ArchARM:
		o.armSimd2(t.arm, d, s)
	case ArchARM64:
		o.a64Simd2(t.a64, d, s)
	case ArchMIPS:
		o.word(mipsMSA2(t.mips, d, s))
	default:
		o.ppcSimd2(t.ppc, d, s)
	}
}

// simdUnLD emits xd = OP [mem].
func (o *Out) simdUnLD(t simdOp, xd VReg, ms Mem, ds Dsp) {
	d := o.vreg(xd)
	switch o.target.Arch() {
	case ArchX86, ArchX86_64:
		o.x86Simd2Mem(t.pp, t.mmap, t.op, t.w, d, ms, ds)
	case ArchARM:
		m := o.armLoadVScratch(ms, ds)
		o.armSimd2(t.arm, d, m)
	case ArchARM64:
		m := o.a64LoadVScratch(ms, ds)
		o.a64Simd2(t.a64, d, m)
	case ArchMIPS:
		m := o.mipsLoadVScratch(ms, ds, t.w)
		o.word(mipsMSA2(t.mips, d, m))
	default:
		m := o.ppcLoadVScratch(ms, ds)
		o.ppcSimd2(t.ppc, d, m)
	}
}
