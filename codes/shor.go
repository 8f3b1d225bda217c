package codes

import "github.com/perclft/QECBench/circuit"

// ShorNine is a skeleton Shor [[9,1,3]] memory benchmark with the same
// placeholder shape as the Steane skeleton.
type ShorNine struct {
	circ    *circuit.Circuit
	data    *circuit.Register
	readout *circuit.Register
	ancilla *circuit.Register
	synd    *circuit.ClassicalRegister
	logic   *circuit.ClassicalRegister
}

func NewShorNine() *ShorNine {
	c := circuit.New("shor_memory_skeleton")
	s := &ShorNine{circ: c}
	s.data = c.AddRegister("data", 9)
	s.readout = c.AddRegister("readout", 1)
	s.ancilla = c.AddRegister("ancilla", 8)
	s.synd = c.AddClassicalRegister("synd", 8)
	s.logic = c.AddClassicalRegister("logic", 2)
	return s
}

func (s *ShorNine) ID() string                { return IDShor }
func (s *ShorNine) Name() string              { return "Shor [[9,1,3]] code (skeleton)" }
func (s *ShorNine) Circuit() *circuit.Circuit { return s.circ }
func (s *ShorNine) OutputFile() string        { return "shor_memory_skeleton.qasm" }

// EncodeLogicalZero is a placeholder; the Shor encoder is not
// implemented yet.
func (s *ShorNine) EncodeLogicalZero() {}

// SyndromeRound resets the ancillas and measures a single placeholder
// Z0 Z1 stabilizer.
func (s *ShorNine) SyndromeRound() {
	c := s.circ
	c.Barrier(s.data, s.ancilla)
	for _, a := range s.ancilla.Qubits() {
		c.Reset(a)
	}

	c.CX(s.data.Qubit(0), s.ancilla.Qubit(0))
	c.CX(s.data.Qubit(1), s.ancilla.Qubit(0))
	c.Measure(s.ancilla.Qubit(0), s.synd.Bit(0))
}

// LogicalReadout measures the data parity into logic bit k.
func (s *ShorNine) LogicalReadout(k int) {
	parityReadout(s.circ, s.data, s.readout, s.logic, k)
}

// Construct builds the benchmark schedule.
func (s *ShorNine) Construct() {
	s.EncodeLogicalZero()
	s.SyndromeRound()
	s.LogicalReadout(0)
	s.SyndromeRound()
	s.LogicalReadout(1)
}
