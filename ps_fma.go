// ps_fma.go - ps_madd/ps_madds0/ps_madds1/ps_msub/ps_nmadd/ps_nmsub

package ps

type fmaFlags int

const (
	fmaFlagNone   fmaFlags = 0
	fmaFlagSub    fmaFlags = 1 << 0 // subtract b from the product instead of adding it
	fmaFlagNegate fmaFlags = 1 << 1 // negate the final result
)

// fmaSingle computes one slot of a*c±b (subject to flags), reading operands
// A and B from slotAB and operand C from slotC, all from the registers
// named in instr. The multiply and add share one rounding step via
// math.FMA, matching the architecture's single-rounding fused multiply-add.
func fmaSingle(state *ThreadState, instr Instruction, flags fmaFlags, slotAB, slotC int) (float32, bool) {
	a := psOperandSlot(state, instr.FrA, slotAB)
	c := psOperandSlot(state, instr.FrC, slotC)
	b := psOperandSlot(state, instr.FrB, slotAB)

	if flags&fmaFlagSub != 0 {
		b = -b
	}

	vxsnan := isSignallingNaN(a) || isSignallingNaN(b) || isSignallingNaN(c)
	vximz := (isInfinity(a) && isZero(c)) || (isZero(a) && isInfinity(c))

	// The product's sign without computing it: sign(a)^sign(c). Avoids
	// classifying a*c by its (possibly overflowed) numeric value.
	productNegative := sign(a) != sign(c)
	vxisi := (isInfinity(a) || isInfinity(c)) && isInfinity(b) && productNegative != sign(b)

	f := &state.FPSCR
	f.Vxsnan = f.Vxsnan || vxsnan
	f.Vximz = f.Vximz || vximz
	f.Vxisi = f.Vxisi || vxisi

	vxEnabled := (vxsnan || vximz || vxisi) && f.Ve
	if vxEnabled {
		return 0, false
	}

	var d float32
	switch {
	case isNaN(a):
		d = makeQuiet(truncateDouble(a))
	case isNaN(b):
		d = makeQuiet(truncateDouble(b))
	case isNaN(c):
		d = makeQuiet(truncateDouble(c))
	case vximz || vxisi:
		d = makeNaNFloat32()
	default:
		r := fusedMultiplyAdd(a, c, b)
		if flags&fmaFlagNegate != 0 {
			r = -r
		}
		d = narrowToSingle(r)
	}
	return d, true
}

// fmaGeneric computes both slots and commits atomically, matching
// psArithGeneric's write-gate behavior.
func fmaGeneric(state *ThreadState, instr Instruction, flags fmaFlags, slotC0, slotC1 int) {
	old := state.FPSCR
	hostEnv.clear()

	d0, wrote0 := fmaSingle(state, instr, flags, 0, slotC0)
	d1, wrote1 := fmaSingle(state, instr, flags, 1, slotC1)

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

func psMadd(state *ThreadState, instr Instruction) {
	fmaGeneric(state, instr, fmaFlagNone, 0, 1)
}
func psMadds0(state *ThreadState, instr Instruction) {
	fmaGeneric(state, instr, fmaFlagNone, 0, 0)
}
func psMadds1(state *ThreadState, instr Instruction) {
	fmaGeneric(state, instr, fmaFlagNone, 1, 1)
}
func psMsub(state *ThreadState, instr Instruction) {
	fmaGeneric(state, instr, fmaFlagSub, 0, 1)
}
func psNmadd(state *ThreadState, instr Instruction) {
	fmaGeneric(state, instr, fmaFlagNegate, 0, 1)
}
func psNmsub(state *ThreadState, instr Instruction) {
	fmaGeneric(state, instr, fmaFlagSub|fmaFlagNegate, 0, 1)
}
