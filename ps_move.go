// ps_move.go - ps_mr/ps_neg/ps_abs/ps_nabs: paired sign-bit manipulation

package ps

type moveMode int

const (
	moveDirect moveMode = iota
	moveNegate
	moveAbsolute
	moveNegAbsolute
)

// psMoveGeneric implements the shared shape of the four move instructions:
// read frB as two raw 32-bit lanes (rounding lane 0 unless it is a
// signalling NaN, in which case the bits are reshaped rather than rounded
// so the payload survives), apply the sign-bit operation, and write back.
func psMoveGeneric(state *ThreadState, instr Instruction, mode moveMode) {
	b := &state.FPR[instr.FrB]

	ps0IsSNaN := isSignallingNaN(b.Paired0)
	var b0 uint32
	if ps0IsSNaN {
		b0 = truncateDoubleBits(b.Idw())
	} else {
		b0 = float32Bits(truncateDouble(b.Paired0))
	}
	b1 := b.IwPaired1()

	var d0, d1 uint32
	switch mode {
	case moveDirect:
		d0, d1 = b0, b1
	case moveNegate:
		d0, d1 = b0^0x80000000, b1^0x80000000
	case moveAbsolute:
		d0, d1 = b0&^0x80000000, b1&^0x80000000
	case moveNegAbsolute:
		d0, d1 = b0|0x80000000, b1|0x80000000
	}

	d := &state.FPR[instr.FrD]
	if ps0IsSNaN {
		d.SetIdw(extendFloatNaNBits(d0))
	} else {
		d.Paired0 = extendFloat(float32FromBits(d0))
	}
	d.SetIwPaired1(d1)

	if instr.Rc {
		updateFloatConditionRegister(state)
	}
}

func psMr(state *ThreadState, instr Instruction)   { psMoveGeneric(state, instr, moveDirect) }
func psNeg(state *ThreadState, instr Instruction)  { psMoveGeneric(state, instr, moveNegate) }
func psAbs(state *ThreadState, instr Instruction)  { psMoveGeneric(state, instr, moveAbsolute) }
func psNabs(state *ThreadState, instr Instruction) { psMoveGeneric(state, instr, moveNegAbsolute) }
