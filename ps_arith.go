// ps_arith.go - ps_add/ps_sub/ps_mul/ps_div/ps_muls0/ps_muls1

package ps

// psOp identifies which arithmetic operator a slot computation uses. It is
// the monomorphization parameter the original template took as a
// compile-time argument; here it's a small enum switched over, which is
// plenty for four operators that don't justify runtime dispatch through
// function values.
type psOp int

const (
	psAdd psOp = iota
	psSub
	psMul
	psDiv
)

// psOperandSlot reads slot (0 or 1) of register reg, extending lane 1 to
// double precision.
func psOperandSlot(state *ThreadState, reg uint8, slot int) float64 {
	fr := &state.FPR[reg]
	if slot == 0 {
		return fr.Paired0
	}
	return extendFloat(fr.Paired1)
}

// psArithSingle computes one result slot for op, reading operand A from
// frA and operand B from frB (or frC for ps_mul and its slot-selected
// variants). It raises the relevant invalid/zero-divide sub-flags into
// state.FPSCR and returns false when the write-gate suppressed the result.
func psArithSingle(state *ThreadState, instr Instruction, op psOp, slotA, slotB int) (float32, bool) {
	a := psOperandSlot(state, instr.FrA, slotA)

	bReg := instr.FrB
	if op == psMul {
		bReg = instr.FrC
	}
	b := psOperandSlot(state, bReg, slotB)

	vxsnan := isSignallingNaN(a) || isSignallingNaN(b)
	var vxisi, vximz, vxidi, vxzdz, zx bool
	switch op {
	case psAdd:
		vxisi = isInfinity(a) && isInfinity(b) && sign(a) != sign(b)
	case psSub:
		vxisi = isInfinity(a) && isInfinity(b) && sign(a) == sign(b)
	case psMul:
		vximz = (isInfinity(a) && isZero(b)) || (isZero(a) && isInfinity(b))
	case psDiv:
		vxidi = isInfinity(a) && isInfinity(b)
		vxzdz = isZero(a) && isZero(b)
		zx = !(vxzdz || vxsnan) && isZero(b)
	}

	f := &state.FPSCR
	f.Vxsnan = f.Vxsnan || vxsnan
	f.Vxisi = f.Vxisi || vxisi
	f.Vximz = f.Vximz || vximz
	f.Vxidi = f.Vxidi || vxidi
	f.Vxzdz = f.Vxzdz || vxzdz
	f.Zx = f.Zx || zx

	vxEnabled := (vxsnan || vxisi || vximz || vxidi || vxzdz) && f.Ve
	zxEnabled := zx && f.Ze
	if vxEnabled || zxEnabled {
		return 0, false
	}

	var d float32
	switch {
	case isNaN(a):
		d = makeQuiet(truncateDouble(a))
	case isNaN(b):
		d = makeQuiet(truncateDouble(b))
	case vxisi || vximz || vxidi || vxzdz:
		d = makeNaNFloat32()
	default:
		var r float64
		switch op {
		case psAdd:
			r = a + b
		case psSub:
			r = a - b
		case psMul:
			r = a * b
		case psDiv:
			r = a / b
		}
		d = narrowToSingle(r)
	}
	return d, true
}

// psArithGeneric computes both result slots and commits them atomically:
// if either slot's write-gate fired, neither lane of frD is written.
func psArithGeneric(state *ThreadState, instr Instruction, op psOp, slotB0, slotB1 int) {
	old := state.FPSCR
	hostEnv.clear()

	d0, wrote0 := psArithSingle(state, instr, op, 0, slotB0)
	d1, wrote1 := psArithSingle(state, instr, op, 1, slotB1)

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

func psAddExec(state *ThreadState, instr Instruction)   { psArithGeneric(state, instr, psAdd, 0, 1) }
func psSubExec(state *ThreadState, instr Instruction)   { psArithGeneric(state, instr, psSub, 0, 1) }
func psMulExec(state *ThreadState, instr Instruction)   { psArithGeneric(state, instr, psMul, 0, 1) }
func psDivExec(state *ThreadState, instr Instruction)   { psArithGeneric(state, instr, psDiv, 0, 1) }
func psMuls0Exec(state *ThreadState, instr Instruction) { psArithGeneric(state, instr, psMul, 0, 0) }
func psMuls1Exec(state *ThreadState, instr Instruction) { psArithGeneric(state, instr, psMul, 1, 1) }
