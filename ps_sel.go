// ps_sel.go - ps_sel: per-lane select on the sign of frA

package ps

// psSel writes frC's lane where the matching lane of frA is >= 0.0 (and not
// NaN) and frB's lane otherwise. The comparison never raises any FPSCR
// exception bit, signalling NaN included; that asymmetry with the
// arithmetic family is architectural, not an oversight.
func psSel(state *ThreadState, instr Instruction) {
	selectLane := func(a float64, c, b float32) float32 {
		// IEEE comparison, not a sign-bit test: -0.0 counts as >= 0.0 here,
		// same as the hardware compare this instruction is built on.
		if !isNaN(a) && a >= 0 {
			return c
		}
		return b
	}

	a0 := psOperandSlot(state, instr.FrA, 0)
	a1 := psOperandSlot(state, instr.FrA, 1)
	c0 := truncateDouble(psOperandSlot(state, instr.FrC, 0))
	b0 := truncateDouble(psOperandSlot(state, instr.FrB, 0))
	// Lane 1 is already single precision; copy it directly instead of
	// routing through psOperandSlot's extendFloat+truncateDouble round trip,
	// which would quiet a signalling NaN that a pure bit-copy must preserve.
	c1 := state.FPR[instr.FrC].Paired1
	b1 := state.FPR[instr.FrB].Paired1

	d := &state.FPR[instr.FrD]
	d.Paired0 = extendFloat(selectLane(a0, c0, b0))
	d.Paired1 = selectLane(a1, c1, b1)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}
