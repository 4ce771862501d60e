// ps_sum.go - ps_sum0/ps_sum1: cross-lane add with a same-lane carry

package ps

// psSum0 computes d = A.paired0 + B.paired1 through the ordinary add
// pipeline and, if the write gate didn't fire, places d in lane 0 while
// lane 1 is a raw bit copy of frC's lane 1 — not a conversion, so any NaN
// there survives untouched, exactly as a pass-through register copy would.
func psSum0(state *ThreadState, instr Instruction) {
	old := state.FPSCR
	hostEnv.clear()

	d, wrote := psArithSingle(state, instr, psAdd, 0, 1)
	if wrote {
		dst := &state.FPR[instr.FrD]
		dst.Paired0 = extendFloat(d)
		dst.Paired1 = state.FPR[instr.FrC].Paired1
		updateFPRF(state, extendFloat(d))
	}
	updateFPSCR(state, old)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

// psSum1 computes the same sum for lane 1, and derives lane 0 from frC's
// lane 0: a NaN there just rounds through truncate_double (matching the
// spec's literal handling, distinct from the quiet-NaN priority the
// arithmetic pipeline uses for its own operands), while an ordinary value
// converts to single precision without letting that conversion's
// inexact/overflow flags leak into FPSCR beyond what the sum itself raised.
func psSum1(state *ThreadState, instr Instruction) {
	old := state.FPSCR
	hostEnv.clear()

	d, wrote := psArithSingle(state, instr, psAdd, 0, 1)
	if !wrote {
		updateFPSCR(state, old)
		if instr.Rc {
			updateFloatConditionRegister(state)
		}
		return
	}

	c := state.FPR[instr.FrC].Paired0

	var ps0 float32
	if isNaN(c) {
		ps0 = truncateDouble(c)
	} else {
		inexactBefore, overflowBefore := hostEnv.inexact, hostEnv.overflow
		ps0 = narrowToSingle(c)
		hostEnv.inexact = inexactBefore
		hostEnv.overflow = overflowBefore
	}

	dst := &state.FPR[instr.FrD]
	dst.Paired0 = extendFloat(ps0)
	dst.Paired1 = d

	updateFPRF(state, extendFloat(d))
	updateFPSCR(state, old)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}
