package vecasm

// Packed addition: 32/64-bit floats and 32/64-bit integers.

var (
	addosOps = simdOp{ppNone, map0F, 0x58, false, 0xF2000D40, 0x4E20D400, 0x7800001B, 0x1000000A}
	addqsOps = simdOp{pp66, map0F, 0x58, true, 0, 0x4E60D400, 0x7820001B, 0xF0000300}
	addoxOps = simdOp{pp66, map0F, 0xFE, false, 0xF2200840, 0x4EA08400, 0x7840000E, 0x10000080}
	addqxOps = simdOp{pp66, map0F, 0xD4, true, 0, 0x4EE08400, 0x7860000E, 0x100000C0}
)

// AddosRR adds packed 32-bit floats: xg = xg + xs.
func (o *Out) AddosRR(xg, xs VReg) { o.simdBinRR(addosOps, xg, xs) }

// AddosLD adds packed 32-bit floats from memory: xg = xg + [ms+ds].
func (o *Out) AddosLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(addosOps, xg, ms, ds) }

// AddqsRR adds packed 64-bit floats.
func (o *Out) AddqsRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(addqsOps, xg, xs)
}

// AddqsLD adds packed 64-bit floats from memory.
func (o *Out) AddqsLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(addqsOps, xg, ms, ds)
}

// AddoxRR adds packed 32-bit integers.
func (o *Out) AddoxRR(xg, xs VReg) { o.simdBinRR(addoxOps, xg, xs) }

// AddoxLD adds packed 32-bit integers from memory.
func (o *Out) AddoxLD(xg VReg, ms Mem, ds Dsp) { o.simdBinLD(addoxOps, xg, ms, ds) }

// AddqxRR adds packed 64-bit integers.
func (o *Out) AddqxRR(xg, xs VReg) {
	o.require64BitElems()
	o.simdBinRR(addqxOps, xg, xs)
}

// AddqxLD adds packed 64-bit integers from memory.
func (o *Out) AddqxLD(xg VReg, ms Mem, ds Dsp) {
	o.require64BitElems()
	o.simdBinLD(addqxOps, xg, ms, ds)
}
