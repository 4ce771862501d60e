package ps

import "testing"

func TestExecuteKnownMnemonic(t *testing.T) {
	st := newState()
	st.FPR[1] = FPR{Paired0: 1.0, Paired1: 2.0}
	st.FPR[2] = FPR{Paired0: 3.0, Paired1: 4.0}
	if ok := Execute(st, "ps_add", Instruction{FrD: 0, FrA: 1, FrB: 2}); !ok {
		t.Fatal("Execute(\"ps_add\", ...) reported unrecognized")
	}
	if st.FPR[0].Paired0 != 4.0 {
		t.Errorf("Execute(\"ps_add\") lane0 = %v, want 4", st.FPR[0].Paired0)
	}
}

func TestExecuteUnknownMnemonic(t *testing.T) {
	st := newState()
	if ok := Execute(st, "not_a_real_opcode", Instruction{}); ok {
		t.Error("Execute reported success for an unregistered mnemonic")
	}
}

func TestAllExpectedMnemonicsRegistered(t *testing.T) {
	want := []string{
		"ps_mr", "ps_neg", "ps_abs", "ps_nabs",
		"ps_add", "ps_sub", "ps_mul", "ps_div", "ps_muls0", "ps_muls1",
		"ps_sum0", "ps_sum1",
		"ps_madd", "ps_madds0", "ps_madds1", "ps_msub", "ps_nmadd", "ps_nmsub",
		"ps_merge00", "ps_merge01", "ps_merge10", "ps_merge11",
		"ps_res", "ps_rsqrte", "ps_sel",
		"fadds", "fsubs", "fmuls", "fdivs",
		"fmadds", "fmsubs", "fnmadds", "fnmsubs",
		"fmr", "fneg", "fabs", "fnabs", "frsp",
	}
	for _, name := range want {
		if _, ok := instructionTable[name]; !ok {
			t.Errorf("mnemonic %q is not registered", name)
		}
	}
}
