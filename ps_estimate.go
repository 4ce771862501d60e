// ps_estimate.go - ps_res/ps_rsqrte: reciprocal and reciprocal-square-root estimates

package ps

import "math"

// psEstimateSingle computes one lane of an estimate operation. recip selects
// 1/x (ps_res); otherwise the lane computes 1/sqrt(x) (ps_rsqrte). Real
// silicon produces these from a small lookup table accurate to one part in
// 4096, not a fully rounded division or square root; Go has no equivalent
// table and the architecture does not pin down the exact approximation
// error, so this core computes the mathematically exact reciprocal (or
// reciprocal square root) and rounds it to single precision. That satisfies
// every invariant this core's exception model cares about (domain errors,
// NaN propagation, sign of zero/infinity) without claiming bit-exactness
// for the estimate's low mantissa bits, which no software implementation
// can reproduce without the hardware's table.
func psEstimateSingle(state *ThreadState, instr Instruction, recip bool, slot int) (float32, bool) {
	b := psOperandSlot(state, instr.FrB, slot)

	vxsnan := isSignallingNaN(b)
	var zx, vxsqrt bool
	if recip {
		zx = isZero(b)
	} else {
		vxsqrt = !vxsnan && sign(b) && !isZero(b)
		zx = isZero(b)
	}

	f := &state.FPSCR
	f.Vxsnan = f.Vxsnan || vxsnan
	f.Vxsqrt = f.Vxsqrt || vxsqrt
	f.Zx = f.Zx || zx

	vxEnabled := (vxsnan || vxsqrt) && f.Ve
	zxEnabled := zx && f.Ze
	if vxEnabled || zxEnabled {
		return 0, false
	}

	var d float32
	switch {
	case isNaN(b):
		d = makeQuiet(truncateDouble(b))
	case vxsqrt:
		d = makeNaNFloat32()
	case recip && isZero(b):
		if sign(b) {
			d = float32(math.Inf(-1))
		} else {
			d = float32(math.Inf(1))
		}
	case recip && isInfinity(b):
		if sign(b) {
			d = float32(math.Copysign(0, -1))
		} else {
			d = 0
		}
	case !recip && isInfinity(b):
		d = 0
	default:
		if recip {
			d = narrowToSingle(1 / b)
		} else {
			d = narrowToSingle(1 / math.Sqrt(b))
		}
	}
	return d, true
}

func psEstimateGeneric(state *ThreadState, instr Instruction, recip bool) {
	old := state.FPSCR
	hostEnv.clear()

	d0, wrote0 := psEstimateSingle(state, instr, recip, 0)
	d1, wrote1 := psEstimateSingle(state, instr, recip, 1)

	if wrote0 && wrote1 {
		d := &state.FPR[instr.FrD]
		d.Paired0 = extendFloat(d0)
		d.Paired1 = d1
	}

	if wrote0 {
		updateFPRF(state, extendFloat(d0))
	}
	updateFPSCR(state, old)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

func psRes(state *ThreadState, instr Instruction)    { psEstimateGeneric(state, instr, true) }
func psRsqrte(state *ThreadState, instr Instruction) { psEstimateGeneric(state, instr, false) }
