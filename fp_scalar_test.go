package ps

import "testing"

func TestFAddsOnlyTouchesLane0(t *testing.T) {
	st := newState()
	st.FPR[0] = FPR{Paired0: 9, Paired1: 99}
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: 11}
	st.FPR[2] = FPR{Paired0: 2.0, Paired1: 22}
	fAdds(st, Instruction{FrD: 0, FrA: 1, FrB: 2})

	if st.FPR[0].Paired0 != 3.0 {
		t.Errorf("fadds lane0 = %v, want 3", st.FPR[0].Paired0)
	}
	if st.FPR[0].Paired1 != 99 {
		t.Errorf("fadds touched lane1: %v, want unchanged 99", st.FPR[0].Paired1)
	}
}

func TestFMulsAndFDivs(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 6.0}
	st.FPR[2] = FPR{Paired0: 3.0}
	fMuls(st, Instruction{FrD: 0, FrA: 1, FrC: 2})
	if st.FPR[0].Paired0 != 18.0 {
		t.Errorf("fmuls = %v, want 18", st.FPR[0].Paired0)
	}

	fDivs(st, Instruction{FrD: 0, FrA: 1, FrB: 2})
	if st.FPR[0].Paired0 != 2.0 {
		t.Errorf("fdivs = %v, want 2", st.FPR[0].Paired0)
	}
}

func TestFMaddsSingleRounding(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 2.0}
	st.FPR[3] = FPR{Paired0: 3.0}
	st.FPR[2] = FPR{Paired0: 1.0}
	fMadds(st, Instruction{FrD: 0, FrA: 1, FrC: 3, FrB: 2})
	if st.FPR[0].Paired0 != 7.0 {
		t.Errorf("fmadds = %v, want 7", st.FPR[0].Paired0)
	}
}

func TestFNegFAbsFNabsLane0Only(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: -2.5, Paired1: 42}

	st.FPR[0] = FPR{Paired1: 1}
	fNeg(st, Instruction{FrD: 0, FrB: 1})
	if st.FPR[0].Paired0 != 2.5 || st.FPR[0].Paired1 != 1 {
		t.Errorf("fneg = %+v, want lane0=2.5 lane1 untouched", st.FPR[0])
	}

	st.FPR[0] = FPR{Paired1: 1}
	fAbs(st, Instruction{FrD: 0, FrB: 1})
	if st.FPR[0].Paired0 != 2.5 {
		t.Errorf("fabs = %v, want 2.5", st.FPR[0].Paired0)
	}

	st.FPR[0] = FPR{Paired1: 1}
	fNabs(st, Instruction{FrD: 0, FrB: 1})
	if st.FPR[0].Paired0 != -2.5 {
		t.Errorf("fnabs = %v, want -2.5", st.FPR[0].Paired0)
	}
}

func TestFRspRoundsAndUpdatesFPRF(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: -1.0}
	fRsp(st, Instruction{FrD: 0, FrB: 1})

	if st.FPR[0].Paired0 != -1.0 {
		t.Errorf("frsp(-1.0) = %v, want -1.0", st.FPR[0].Paired0)
	}
	if st.FPSCR.Fprf != 0x08 {
		t.Errorf("frsp did not set FPRF to -Normal, got %#x", st.FPSCR.Fprf)
	}
}

func TestFRspSignallingNaNSetsVxsnan(t *testing.T) {
	st := newState()
	snanBits := uint32(0x7F800001)
	st.FPR[1] = FPR{Paired0: extendFloat(float32FromBits(snanBits))}
	fRsp(st, Instruction{FrD: 0, FrB: 1})

	if !st.FPSCR.Vxsnan {
		t.Errorf("frsp on signalling NaN did not set VXSNAN")
	}
	if isSignallingNaN(st.FPR[0].Paired0) {
		t.Errorf("frsp result should be quieted")
	}
}
