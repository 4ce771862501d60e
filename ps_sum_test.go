package ps

import "testing"

func TestPsSum0PlacesSumInLane0(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: 9}
	st.FPR[2] = FPR{Paired0: 9, Paired1: 2.0}
	st.FPR[3] = FPR{Paired0: 9, Paired1: 7.0}
	psSum0(st, Instruction{FrD: 0, FrA: 1, FrB: 2, FrC: 3})

	if st.FPR[0].Paired0 != 3.0 {
		t.Errorf("ps_sum0 lane0 = %v, want 3 (frA[0]+frB[1])", st.FPR[0].Paired0)
	}
	if st.FPR[0].Paired1 != 7.0 {
		t.Errorf("ps_sum0 lane1 = %v, want 7 (carried from frC[1])", st.FPR[0].Paired1)
	}
}

func TestPsSum1PlacesSumInLane1(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: 9}
	st.FPR[2] = FPR{Paired0: 9, Paired1: 2.0}
	st.FPR[3] = FPR{Paired0: 7.0, Paired1: 9}
	psSum1(st, Instruction{FrD: 0, FrA: 1, FrB: 2, FrC: 3})

	if st.FPR[0].Paired1 != 3.0 {
		t.Errorf("ps_sum1 lane1 = %v, want 3 (frA[0]+frB[1])", st.FPR[0].Paired1)
	}
	if st.FPR[0].Paired0 != 7.0 {
		t.Errorf("ps_sum1 lane0 = %v, want 7 (carried from frC[0])", st.FPR[0].Paired0)
	}
}

func TestPsSumCarryDoesNotLeakInexactWhenFPSCRWasClean(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: 0}
	st.FPR[2] = FPR{Paired0: 0, Paired1: 1.0}
	st.FPR[3] = FPR{Paired0: 0, Paired1: 0.1} // ps_sum0 carries frC's lane 1 as a bit copy, so no narrowing of this value takes place
	psSum0(st, Instruction{FrD: 0, FrA: 1, FrB: 2, FrC: 3})

	if st.FPSCR.Xx {
		t.Errorf("carried lane's rounding leaked XX into FPSCR despite a clean starting state")
	}
}
