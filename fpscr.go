// fpscr.go - the floating-point status and control register, and its update engine

package ps

// FPSCR holds the sticky exception flags, enable bits, and summary bits the
// PS instructions read and update. Fields match the architectural names
// rather than a packed bitfield, since nothing outside this core ever needs
// the raw 32-bit encoding except for display (Value below).
type FPSCR struct {
	// Invalid-operation sub-flags (sticky).
	Vxsnan bool // signalling NaN operand
	Vxisi  bool // ∞ − ∞
	Vximz  bool // ∞ × 0
	Vxidi  bool // ∞ / ∞
	Vxzdz  bool // 0 / 0
	Vxsqrt bool // sqrt of a negative
	Vxcvi  bool // invalid integer convert (no PS op raises this; kept for the VX formula)
	Vxsoft bool // software-requested invalid (no PS op raises this; kept for the VX formula)
	Vxvc   bool // invalid compare (no PS op raises this; kept for the VX formula)

	Zx bool // zero-divide (sticky)
	Ox bool // overflow (sticky)
	Ux bool // underflow (sticky)
	Xx bool // inexact (sticky)

	Ve, Ze, Oe, Ue, Xe bool // exception enables

	Fprf uint8 // 5-bit class+sign of the last result

	Fx, Fex, Vx bool // summary bits

	Rn uint8 // rounding mode; owned by the dispatcher, tracked here for completeness

	// Cr1Fex/Cr1Vx/Cr1Ox are the condition-register-1 shadow updated when an
	// instruction's rc bit is set (mirrors FPSCR[FEX/VX/OX]).
	Cr1Fex, Cr1Vx, Cr1Ox bool
}

// Value packs the named fields into the architectural 32-bit encoding, for
// display/debug purposes only; nothing in this core reads it back.
func (f FPSCR) Value() uint32 {
	var v uint32
	setBit := func(cond bool, bit uint) {
		if cond {
			v |= 1 << bit
		}
	}
	setBit(f.Rn&1 != 0, 0)
	setBit(f.Rn&2 != 0, 1)
	setBit(f.Xe, 2)
	setBit(f.Ue, 3)
	setBit(f.Ze, 4)
	setBit(f.Oe, 5)
	setBit(f.Ve, 6)
	setBit(f.Vxcvi, 7)
	setBit(f.Vxsqrt, 8)
	setBit(f.Vxsoft, 9)
	v |= uint32(f.Fprf&0x1F) << 11
	setBit(f.Vxvc, 18)
	setBit(f.Vximz, 19)
	setBit(f.Vxzdz, 20)
	setBit(f.Vxidi, 21)
	setBit(f.Vxisi, 22)
	setBit(f.Vxsnan, 23)
	setBit(f.Xx, 24)
	setBit(f.Zx, 25)
	setBit(f.Ux, 26)
	setBit(f.Ox, 27)
	setBit(f.Vx, 28)
	setBit(f.Fex, 29)
	setBit(f.Fx, 30)
	return v
}

// classifyFPRF encodes the class and sign of a result (already narrowed to
// single precision and extended back to double) into the 5-bit FPRF code.
func classifyFPRF(x float64) uint8 {
	switch {
	case isNaN(x):
		return 0x11 // QNaN
	case isInfinity(x):
		if sign(x) {
			return 0x09 // -Infinity
		}
		return 0x05 // +Infinity
	case isZero(x):
		if sign(x) {
			return 0x12 // -Zero
		}
		return 0x02 // +Zero
	default:
		denorm := absFloat64(x) < minNormalFloat32
		switch {
		case sign(x) && denorm:
			return 0x18 // -Denormal
		case sign(x):
			return 0x08 // -Normal
		case denorm:
			return 0x14 // +Denormal
		default:
			return 0x04 // +Normal
		}
	}
}

// updateFPRF sets FPSCR.Fprf from the class/sign of result.
func updateFPRF(state *ThreadState, result float64) {
	state.FPSCR.Fprf = classifyFPRF(result)
}

// updateFPSCR folds the simulated host exception flags into the sticky
// overflow/underflow/inexact fields, recomputes the VX/FEX summary bits,
// and sets FX if any sticky bit became newly set relative to old. Called
// once per instruction, after the per-slot vx*/zx predicates have already
// been OR'd into state.FPSCR by the caller.
func updateFPSCR(state *ThreadState, old FPSCR) {
	f := &state.FPSCR

	if hostEnv.overflow {
		f.Ox = true
	}
	if hostEnv.underflow {
		f.Ux = true
	}
	if hostEnv.inexact {
		f.Xx = true
	}

	f.Vx = f.Vxsnan || f.Vxisi || f.Vximz || f.Vxzdz || f.Vxidi ||
		f.Vxvc || f.Vxsoft || f.Vxsqrt || f.Vxcvi
	f.Fex = (f.Vx && f.Ve) || (f.Ox && f.Oe) || (f.Ux && f.Ue) ||
		(f.Zx && f.Ze) || (f.Xx && f.Xe)

	if stickyNewlySet(*f, old) {
		f.Fx = true
	}
}

func stickyNewlySet(cur, old FPSCR) bool {
	return (cur.Vxsnan && !old.Vxsnan) ||
		(cur.Vxisi && !old.Vxisi) ||
		(cur.Vximz && !old.Vximz) ||
		(cur.Vxidi && !old.Vxidi) ||
		(cur.Vxzdz && !old.Vxzdz) ||
		(cur.Vxsqrt && !old.Vxsqrt) ||
		(cur.Vxcvi && !old.Vxcvi) ||
		(cur.Vxsoft && !old.Vxsoft) ||
		(cur.Vxvc && !old.Vxvc) ||
		(cur.Zx && !old.Zx) ||
		(cur.Ox && !old.Ox) ||
		(cur.Ux && !old.Ux) ||
		(cur.Xx && !old.Xx)
}

// updateFloatConditionRegister mirrors FPSCR[FEX/VX/OX] into the CR1 shadow.
// Called whenever an instruction's rc bit is set.
func updateFloatConditionRegister(state *ThreadState) {
	state.FPSCR.Cr1Fex = state.FPSCR.Fex
	state.FPSCR.Cr1Vx = state.FPSCR.Vx
	state.FPSCR.Cr1Ox = state.FPSCR.Ox
}
