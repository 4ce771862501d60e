// instruction.go - mnemonic-to-executor dispatch table

package ps

// Executor runs one decoded PS or scalar-FPU instruction against state.
type Executor func(state *ThreadState, instr Instruction)

var instructionTable = map[string]Executor{}

// registerInstruction adds name to the dispatch table. It panics on a
// duplicate name, since that can only mean two opcodes were given the same
// mnemonic by mistake; every name here is a compile-time constant supplied
// by this package's own init, never by caller input.
func registerInstruction(name string, exec Executor) {
	if _, exists := instructionTable[name]; exists {
		panic("ps: duplicate instruction registration: " + name)
	}
	instructionTable[name] = exec
}

func init() {
	registerInstruction("ps_mr", psMr)
	registerInstruction("ps_neg", psNeg)
	registerInstruction("ps_abs", psAbs)
	registerInstruction("ps_nabs", psNabs)

	registerInstruction("ps_add", psAddExec)
	registerInstruction("ps_sub", psSubExec)
	registerInstruction("ps_mul", psMulExec)
	registerInstruction("ps_div", psDivExec)
	registerInstruction("ps_muls0", psMuls0Exec)
	registerInstruction("ps_muls1", psMuls1Exec)

	registerInstruction("ps_sum0", psSum0)
	registerInstruction("ps_sum1", psSum1)

	registerInstruction("ps_madd", psMadd)
	registerInstruction("ps_madds0", psMadds0)
	registerInstruction("ps_madds1", psMadds1)
	registerInstruction("ps_msub", psMsub)
	registerInstruction("ps_nmadd", psNmadd)
	registerInstruction("ps_nmsub", psNmsub)

	registerInstruction("ps_merge00", psMerge00)
	registerInstruction("ps_merge01", psMerge01)
	registerInstruction("ps_merge10", psMerge10)
	registerInstruction("ps_merge11", psMerge11)

	registerInstruction("ps_res", psRes)
	registerInstruction("ps_rsqrte", psRsqrte)

	registerInstruction("ps_sel", psSel)

	registerInstruction("fadds", fAdds)
	registerInstruction("fsubs", fSubs)
	registerInstruction("fmuls", fMuls)
	registerInstruction("fdivs", fDivs)
	registerInstruction("fmadds", fMadds)
	registerInstruction("fmsubs", fMsubs)
	registerInstruction("fnmadds", fNmadds)
	registerInstruction("fnmsubs", fNmsubs)
	registerInstruction("fmr", fMr)
	registerInstruction("fneg", fNeg)
	registerInstruction("fabs", fAbs)
	registerInstruction("fnabs", fNabs)
	registerInstruction("frsp", fRsp)
}

// Execute looks up mnemonic in the dispatch table and runs it against
// state. It reports whether the mnemonic was recognized.
func Execute(state *ThreadState, mnemonic string, instr Instruction) bool {
	exec, ok := instructionTable[mnemonic]
	if !ok {
		return false
	}
	exec(state, instr)
	return true
}
