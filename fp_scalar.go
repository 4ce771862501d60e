// fp_scalar.go - scalar single-precision FPU instructions, slot-0-only PS arithmetic

package ps

// scalarArith runs one PS arithmetic operator with only slot 0 populated:
// the architecture's scalar single-precision instructions (fadds and its
// siblings) are the same hardware execute unit as ps_add/ps_sub/ps_mul/
// ps_div with frD's lane 1 left alone. psArithSingle already separates the
// two lanes, so this just calls it once and writes through to frD[0]
// without touching frD[1].
func scalarArith(state *ThreadState, instr Instruction, op psOp) {
	old := state.FPSCR
	hostEnv.clear()

	d0, wrote0 := psArithSingle(state, instr, op, 0, 0)
	if wrote0 {
		state.FPR[instr.FrD].Paired0 = extendFloat(d0)
		updateFPRF(state, extendFloat(d0))
	}
	updateFPSCR(state, old)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

func fAdds(state *ThreadState, instr Instruction) { scalarArith(state, instr, psAdd) }
func fSubs(state *ThreadState, instr Instruction) { scalarArith(state, instr, psSub) }
func fMuls(state *ThreadState, instr Instruction) { scalarArith(state, instr, psMul) }
func fDivs(state *ThreadState, instr Instruction) { scalarArith(state, instr, psDiv) }

// scalarFMA is fmaGeneric's slot-0-only counterpart, grounding fmadds and
// its negate/subtract siblings the same way scalarArith grounds fadds.
func scalarFMA(state *ThreadState, instr Instruction, flags fmaFlags) {
	old := state.FPSCR
	hostEnv.clear()

	d0, wrote0 := fmaSingle(state, instr, flags, 0, 0)
	if wrote0 {
		state.FPR[instr.FrD].Paired0 = extendFloat(d0)
		updateFPRF(state, extendFloat(d0))
	}
	updateFPSCR(state, old)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

func fMadds(state *ThreadState, instr Instruction)   { scalarFMA(state, instr, fmaFlagNone) }
func fMsubs(state *ThreadState, instr Instruction)   { scalarFMA(state, instr, fmaFlagSub) }
func fNmadds(state *ThreadState, instr Instruction)  { scalarFMA(state, instr, fmaFlagNegate) }
func fNmsubs(state *ThreadState, instr Instruction)  { scalarFMA(state, instr, fmaFlagSub|fmaFlagNegate) }

// scalarMoveGeneric is psMoveGeneric's slot-0-only counterpart: fmr/fneg/
// fabs/fnabs operate on lane 0 only and never touch frD's lane 1.
func scalarMoveGeneric(state *ThreadState, instr Instruction, mode moveMode) {
	b := &state.FPR[instr.FrB]

	ps0IsSNaN := isSignallingNaN(b.Paired0)
	var b0 uint32
	if ps0IsSNaN {
		b0 = truncateDoubleBits(b.Idw())
	} else {
		b0 = float32Bits(truncateDouble(b.Paired0))
	}

	var d0 uint32
	switch mode {
	case moveDirect:
		d0 = b0
	case moveNegate:
		d0 = b0 ^ 0x80000000
	case moveAbsolute:
		d0 = b0 &^ 0x80000000
	case moveNegAbsolute:
		d0 = b0 | 0x80000000
	}

	d := &state.FPR[instr.FrD]
	if ps0IsSNaN {
		d.SetIdw(extendFloatNaNBits(d0))
	} else {
		d.Paired0 = extendFloat(float32FromBits(d0))
	}

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

func fMr(state *ThreadState, instr Instruction)   { scalarMoveGeneric(state, instr, moveDirect) }
func fNeg(state *ThreadState, instr Instruction)  { scalarMoveGeneric(state, instr, moveNegate) }
func fAbs(state *ThreadState, instr Instruction)  { scalarMoveGeneric(state, instr, moveAbsolute) }
func fNabs(state *ThreadState, instr Instruction) { scalarMoveGeneric(state, instr, moveNegAbsolute) }

// fRsp rounds frB's lane 0 to single precision and stores it in frD's lane
// 0, the "round to single precision" instruction the JIT file's
// truncateToSingle helper grounds: a signalling NaN sets VXSNAN and is
// quieted (any NaN result is quiet), an ordinary value rounds and any inexactness/overflow/underflow from that
// rounding step folds into FPSCR exactly like an arithmetic result does.
func fRsp(state *ThreadState, instr Instruction) {
	old := state.FPSCR
	hostEnv.clear()

	b := &state.FPR[instr.FrB]
	vxsnan := isSignallingNaN(b.Paired0)

	f := &state.FPSCR
	f.Vxsnan = f.Vxsnan || vxsnan

	if vxsnan && f.Ve {
		updateFPSCR(state, old)
		if instr.Rc {
			updateFloatConditionRegister(state)
		}
		return
	}

	d := &state.FPR[instr.FrD]
	var result float64
	switch {
	case isNaN(b.Paired0):
		result = extendFloat(makeQuiet(truncateDouble(b.Paired0)))
	default:
		result = extendFloat(narrowToSingle(b.Paired0))
	}
	d.Paired0 = result

	updateFPRF(state, result)
	updateFPSCR(state, old)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}
