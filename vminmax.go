package vecasm

// Packed float min/max. Every backend has these natively; NaN
// propagation follows whatever the hardware does, which differs
// between the x86 (second-operand-wins) and RISC forms.

var (
	minosOps = simdOp{ppNone, map0F, 0x5D, false, 0xF2200F40, 0x4EA0F400, 0x7B00001B, 0x1000044A}
	maxosOps = simdOp{ppNone, map0F, 0x5F, false, 0xF2000F40, 0x4E20F400, 0x7B80001B, 0x1000040A}
	minqsOps = simdOp{pp66, map0F, 0x5D, true, 0, 0x4EE0F400, 0x7B20001B, 0xF0000740}
	maxqsOps = simdOp{pp66, map0F, 0x5F, true, 0, 0x4E60F400, 0x7BA0001B, 0xF0000700}
)

// MinosRR keeps the smaller packed 32-bit floats: xg = min(xg, xs).
func (o *Out) MinosRR(xg, xs VReg) { o.simdBinRR(minosOps, xg, xs) }

// MinosLD keeps the smaller floats against a memory operand.
func (o *Out) MinosLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(minosOps, xg, ms, ds) }

// MaxosRR keeps the larger packed 32-bit floats: xg = max(xg, xs).
func (o *Out) MaxosRR(xg, xs VReg) { o.simdBinRR(maxosOps, xg, xs) }

// MaxosLD keeps the larger floats against a memory operand.
func (o *Out) MaxosLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(maxosOps, xg, ms, ds) }

// MinqsRR keeps the smaller packed 64-bit floats.
func (o *Out) MinqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(minqsOps, xg, xs)
}

// MinqsLD keeps the smaller 64-bit floats against a memory operand.
func (o *Out) MinqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(minqsOps, xg, ms, ds)
}

// MaxqsRR keeps the larger packed 64-bit floats.
func (o *Out) MaxqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(maxqsOps, xg, xs)
}

// MaxqsLD keeps the larger 64-bit floats against a memory operand.
func (o *Out) MaxqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(maxqsOps, xg, ms, ds)
}
