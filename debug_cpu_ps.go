// debug_cpu_ps.go - register/FPSCR inspection surface for an interactive monitor

package ps

import (
	"fmt"
	"sort"
)

// PSRegisterInfo describes one paired register for display, the PS
// equivalent of a general-purpose RegisterInfo in a whole-CPU debugger.
type PSRegisterInfo struct {
	Name    string // "FR0".."FR31"
	Paired0 float64
	Paired1 float32
}

// DebugPSCore wraps a ThreadState with the read/write surface an
// interactive front end needs. The wrapped state stays reachable through
// the exported State field.
type DebugPSCore struct {
	State *ThreadState
}

// NewDebugPSCore wraps state for inspection and stepping.
func NewDebugPSCore(state *ThreadState) *DebugPSCore {
	return &DebugPSCore{State: state}
}

// Registers returns all 32 paired registers in FR0..FR31 order.
func (d *DebugPSCore) Registers() []PSRegisterInfo {
	out := make([]PSRegisterInfo, 32)
	for i := range d.State.FPR {
		out[i] = PSRegisterInfo{
			Name:    fmt.Sprintf("FR%d", i),
			Paired0: d.State.FPR[i].Paired0,
			Paired1: d.State.FPR[i].Paired1,
		}
	}
	return out
}

// Register looks up one register by name ("FR0".."FR31").
func (d *DebugPSCore) Register(name string) (PSRegisterInfo, bool) {
	var idx int
	if _, err := fmt.Sscanf(name, "FR%d", &idx); err != nil {
		return PSRegisterInfo{}, false
	}
	if idx < 0 || idx >= len(d.State.FPR) {
		return PSRegisterInfo{}, false
	}
	return PSRegisterInfo{
		Name:    name,
		Paired0: d.State.FPR[idx].Paired0,
		Paired1: d.State.FPR[idx].Paired1,
	}, true
}

// SetRegister writes both lanes of the named register directly, bypassing
// any instruction semantics; it exists for the monitor to seed test
// operands, not for simulating execution.
func (d *DebugPSCore) SetRegister(name string, p0 float64, p1 float32) bool {
	var idx int
	if _, err := fmt.Sscanf(name, "FR%d", &idx); err != nil {
		return false
	}
	if idx < 0 || idx >= len(d.State.FPR) {
		return false
	}
	d.State.FPR[idx] = FPR{Paired0: p0, Paired1: p1}
	return true
}

// FPSCR returns a copy of the current status/control register.
func (d *DebugPSCore) FPSCR() FPSCR {
	return d.State.FPSCR
}

// Step executes one instruction by mnemonic and reports whether it was
// recognized, the same boolean Execute reports.
func (d *DebugPSCore) Step(mnemonic string, instr Instruction) bool {
	return Execute(d.State, mnemonic, instr)
}

// Mnemonics returns every registered instruction name, sorted for
// deterministic listing in a REPL's help output.
func (d *DebugPSCore) Mnemonics() []string {
	names := make([]string, 0, len(instructionTable))
	for name := range instructionTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
