package ps

import (
	"math"
	"testing"
)

func TestPsSelPicksFrCWhenFrANonNegative(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: -1.0}                     // frA
	st.FPR[3] = FPR{Paired0: 10.0, Paired1: 20.0}                    // frC
	st.FPR[2] = FPR{Paired0: -10.0, Paired1: -20.0}                  // frB
	psSel(st, Instruction{FrD: 0, FrA: 1, FrC: 3, FrB: 2})

	if st.FPR[0].Paired0 != 10.0 {
		t.Errorf("ps_sel lane0 = %v, want frC[0]=10 (frA[0] >= 0)", st.FPR[0].Paired0)
	}
	if st.FPR[0].Paired1 != -20.0 {
		t.Errorf("ps_sel lane1 = %v, want frB[1]=-20 (frA[1] < 0)", st.FPR[0].Paired1)
	}
}

func TestPsSelNegativeZeroSelectsFrC(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: math.Copysign(0, -1)}
	st.FPR[3] = FPR{Paired0: 1.0}
	st.FPR[2] = FPR{Paired0: 2.0}
	psSel(st, Instruction{FrD: 0, FrA: 1, FrC: 3, FrB: 2})

	if st.FPR[0].Paired0 != 1.0 {
		t.Errorf("ps_sel(-0.0) should compare as >= 0 and pick frC, got %v", st.FPR[0].Paired0)
	}
}

func TestPsSelNaNSelectsFrB(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: math.NaN()}
	st.FPR[3] = FPR{Paired0: 1.0}
	st.FPR[2] = FPR{Paired0: 2.0}
	psSel(st, Instruction{FrD: 0, FrA: 1, FrC: 3, FrB: 2})

	if st.FPR[0].Paired0 != 2.0 {
		t.Errorf("ps_sel(NaN) should pick frB, got %v", st.FPR[0].Paired0)
	}
}

func TestPsSelLane1PreservesSignallingNaNPayload(t *testing.T) {
	st := newState()
	snanBits := uint32(0x7F800001)
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: 0} // frA: both lanes select frC
	st.FPR[3] = FPR{Paired0: 1.0, Paired1: math.Float32frombits(snanBits)}
	st.FPR[2] = FPR{Paired0: -1.0, Paired1: 0}
	psSel(st, Instruction{FrD: 0, FrA: 1, FrC: 3, FrB: 2})

	got := math.Float32bits(st.FPR[0].Paired1)
	if got != snanBits {
		t.Errorf("ps_sel lane1 sNaN payload = %x, want bit-exact copy %x", got, snanBits)
	}
}
