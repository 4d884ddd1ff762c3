package vecasm

// Packed subtraction: 32/64-bit floats and 32/64-bit integers.

var (
	subosOps = simdOp{ppNone, map0F, 0x5C, false, 0xF2200D40, 0x4EA0D400, 0x7840001B, 0x1000004A}
	subqsOps = simdOp{pp66, map0F, 0x5C, true, 0, 0x4EE0D400, 0x7860001B, 0xF0000340}
	suboxOps = simdOp{pp66, map0F, 0xFA, false, 0xF3200840, 0x6EA08400, 0x78C0000E, 0x10000480}
	subqxOps = simdOp{pp66, map0F, 0xFB, true, 0, 0x6EE08400, 0x78E0000E, 0x100004C0}
)

// SubosRR subtracts packed 32-bit floats: xg = xg - xs.
func (o *Out) SubosRR(xg, xs VReg) { o.simdBinRR(subosOps, xg, xs) }

// SubosLD subtracts packed 32-bit floats from memory.
func (o *Out) SubosLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(subosOps, xg, ms, ds) }

// SubqsRR subtracts packed 64-bit floats.
func (o *Out) SubqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(subqsOps, xg, xs)
}

// SubqsLD subtracts packed 64-bit floats from memory.
func (o *Out) SubqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(subqsOps, xg, ms, ds)
}

// SuboxRR subtracts packed 32-bit integers.
func (o *Out) SuboxRR(xg, xs VReg) { o.simdBinRR(suboxOps, xg, xs) }

// SuboxLD subtracts packed 32-bit integers from memory.
func (o *Out) SuboxLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(suboxOps, xg, ms, ds) }

// SubqxRR subtracts packed 64-bit integers.
func (o *Out) SubqxRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(subqxOps, xg, xs)
}

// SubqxLD subtracts packed 64-bit integers from memory.
func (o *Out) SubqxLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(subqxOps, xg, ms, ds)
}
