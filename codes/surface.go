package codes

import "github.com/perclft/QECBench/circuit"

// surfaceZPlaquette and surfaceXPlaquette are the two example checks of
// the toy 3x3 patch, listed by data qubit index (row-major layout).
var (
	surfaceZPlaquette = [4]int{0, 1, 3, 4}
	surfaceXPlaquette = [4]int{4, 5, 7, 8}
)

// Surface3x3 is a skeleton 3x3 surface-code-like patch. Not a full
// planar code: one example Z-plaquette, one example X-plaquette, no
// decoder.
type Surface3x3 struct {
	circ    *circuit.Circuit
	data    *circuit.Register
	readout *circuit.Register
	ancilla *circuit.Register
	synd    *circuit.ClassicalRegister
	logic   *circuit.ClassicalRegister
}

func NewSurface3x3() *Surface3x3 {
	c := circuit.New("surface3x3_memory_skeleton")
	s := &Surface3x3{circ: c}
	s.data = c.AddRegister("data", 9)
	s.readout = c.AddRegister("readout", 1)
	s.ancilla = c.AddRegister("ancilla", 4)
	s.synd = c.AddClassicalRegister("synd", 4)
	s.logic = c.AddClassicalRegister("logic", 2)
	return s
}

func (s *Surface3x3) ID() string                { return IDSurface3x3 }
func (s *Surface3x3) Name() string              { return "3x3 surface code patch (skeleton)" }
func (s *Surface3x3) Circuit() *circuit.Circuit { return s.circ }
func (s *Surface3x3) OutputFile() string        { return "surface3x3_memory_skeleton.qasm" }

// EncodeLogicalZero is a placeholder; the surface-code logical zero
// preparation is not implemented yet.
func (s *Surface3x3) EncodeLogicalZero() {}

// SyndromeRound resets the ancillas and measures the two example
// plaquettes: the Z-type check by CX into ancilla 0, the X-type check
// by an H-sandwiched CZ chain on ancilla 1. The remaining checks and
// the decoder are not implemented yet.
func (s *Surface3x3) SyndromeRound() {
	c := s.circ
	c.Barrier(s.data, s.ancilla)
	for _, a := range s.ancilla.Qubits() {
		c.Reset(a)
	}

	for _, d := range surfaceZPlaquette {
		c.CX(s.data.Qubit(d), s.ancilla.Qubit(0))
	}
	c.Measure(s.ancilla.Qubit(0), s.synd.Bit(0))

	c.H(s.ancilla.Qubit(1))
	for _, d := range surfaceXPlaquette {
		c.CZ(s.ancilla.Qubit(1), s.data.Qubit(d))
	}
	c.H(s.ancilla.Qubit(1))
	c.Measure(s.ancilla.Qubit(1), s.synd.Bit(1))
}

// LogicalReadout measures the data parity into logic bit k.
func (s *Surface3x3) LogicalReadout(k int) {
	parityReadout(s.circ, s.data, s.readout, s.logic, k)
}

// Construct builds the benchmark schedule.
func (s *Surface3x3) Construct() {
	s.EncodeLogicalZero()
	s.SyndromeRound()
	s.LogicalReadout(0)
	s.SyndromeRound()
	s.LogicalReadout(1)
}
