// ps_merge.go - ps_merge00/01/10/11: lane shuffle across frA and frB

package ps

type mergeSource int

const (
	mergeA0 mergeSource = iota
	mergeA1
	mergeB0
	mergeB1
)

// readMergeLane reads one operand lane for a merge. Lane-1 sources are
// already single precision and are copied verbatim. Lane-0 sources are
// double precision and need a width conversion: an ordinary value rounds
// (static_cast<float>), but a signalling NaN is bit-reshaped instead, so
// its payload survives exactly rather than being disturbed by a rounding
// step that was never meant to touch a NaN's mantissa bits.
func readMergeLane(state *ThreadState, reg uint8, src mergeSource) float32 {
	fr := &state.FPR[reg]
	switch src {
	case mergeA1, mergeB1:
		return fr.Paired1
	default:
		if isSignallingNaN(fr.Paired0) {
			return float32FromBits(truncateDoubleBits(fr.Idw()))
		}
		return truncateDouble(fr.Paired0)
	}
}

// psMergeGeneric writes src0 into frD's lane 0 and src1 into frD's lane 1.
// No FPSCR arithmetic bit is ever touched by a merge; rc only mirrors the
// existing summary bits to CR1.
func psMergeGeneric(state *ThreadState, instr Instruction, src0, src1 mergeSource) {
	regFor := func(src mergeSource) uint8 {
		if src == mergeA0 || src == mergeA1 {
			return instr.FrA
		}
		return instr.FrB
	}

	v0 := readMergeLane(state, regFor(src0), src0)
	v1 := readMergeLane(state, regFor(src1), src1)

	d := &state.FPR[instr.FrD]
	d.Paired0 = extendFloat(v0)
	d.Paired1 = v1

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

func psMerge00(state *ThreadState, instr Instruction) {
	psMergeGeneric(state, instr, mergeA0, mergeB0)
}
func psMerge01(state *ThreadState, instr Instruction) {
	psMergeGeneric(state, instr, mergeA0, mergeB1)
}
func psMerge10(state *ThreadState, instr Instruction) {
	psMergeGeneric(state, instr, mergeA1, mergeB0)
}
func psMerge11(state *ThreadState, instr Instruction) {
	psMergeGeneric(state, instr, mergeA1, mergeB1)
}
