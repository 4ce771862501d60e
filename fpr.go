// fpr.go - the 32-entry paired floating-point register file

package ps

import "math"

// FPR is one paired-single register: two independent lanes. Paired0 is
// always either a value representable as float32 extended to float64, or a
// NaN whose payload must be preserved exactly through moves; Paired1 is
// always a true float32.
type FPR struct {
	Paired0 float64
	Paired1 float32
}

// Idw is the raw 64-bit view of lane 0.
func (r FPR) Idw() uint64 { return math.Float64bits(r.Paired0) }

// SetIdw writes lane 0 from its raw 64-bit view.
func (r *FPR) SetIdw(bits uint64) { r.Paired0 = math.Float64frombits(bits) }

// IwPaired1 is the raw 32-bit view of lane 1.
func (r FPR) IwPaired1() uint32 { return math.Float32bits(r.Paired1) }

// SetIwPaired1 writes lane 1 from its raw 32-bit view.
func (r *FPR) SetIwPaired1(bits uint32) { r.Paired1 = math.Float32frombits(bits) }

// Instruction carries the decoded operand-register fields and record bit
// an outer decoder would extract from a PS opcode. Decode/encode is an
// external concern; executors only ever consume an already-decoded record.
type Instruction struct {
	FrA, FrB, FrC, FrD uint8
	Rc                 bool
}

// ThreadState owns one emulated thread's FPR file and FPSCR. PS executors
// mutate only state.FPR[instr.FrD] and state.FPSCR.
type ThreadState struct {
	FPR   [32]FPR
	FPSCR FPSCR
}

// NewThreadState returns a thread state with a zeroed register file, as the
// enclosing dispatcher would provide at thread start.
func NewThreadState() *ThreadState {
	return &ThreadState{}
}
