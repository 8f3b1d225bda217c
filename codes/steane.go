package codes

import "github.com/perclft/QECBench/circuit"

// SteaneSeven is a skeleton Steane [[7,1,3]] memory benchmark: the
// register layout and schedule are in place, the encoder is empty and
// the syndrome round measures a single placeholder stabilizer.
type SteaneSeven struct {
	circ    *circuit.Circuit
	data    *circuit.Register
	readout *circuit.Register
	ancilla *circuit.Register // 3 X-type, 3 Z-type
	synd    *circuit.ClassicalRegister
	logic   *circuit.ClassicalRegister
}

func NewSteaneSeven() *SteaneSeven {
	c := circuit.New("steane_memory_skeleton")
	s := &SteaneSeven{circ: c}
	s.data = c.AddRegister("data", 7)
	s.readout = c.AddRegister("readout", 1)
	s.ancilla = c.AddRegister("ancilla", 6)
	s.synd = c.AddClassicalRegister("synd", 6)
	s.logic = c.AddClassicalRegister("logic", 2)
	return s
}

func (s *SteaneSeven) ID() string                { return IDSteane }
func (s *SteaneSeven) Name() string              { return "Steane [[7,1,3]] code (skeleton)" }
func (s *SteaneSeven) Circuit() *circuit.Circuit { return s.circ }
func (s *SteaneSeven) OutputFile() string        { return "steane_memory_skeleton.qasm" }

// EncodeLogicalZero is a placeholder; the Steane encoder is not
// implemented yet.
func (s *SteaneSeven) EncodeLogicalZero() {}

// SyndromeRound resets the ancillas and measures a single placeholder
// Z0 Z1 stabilizer. The remaining five stabilizers and the decoder are
// not implemented yet.
func (s *SteaneSeven) SyndromeRound() {
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
func (s *SteaneSeven) LogicalReadout(k int) {
	parityReadout(s.circ, s.data, s.readout, s.logic, k)
}

// Construct builds the benchmark schedule.
func (s *SteaneSeven) Construct() {
	s.EncodeLogicalZero()
	s.SyndromeRound()
	s.LogicalReadout(0)
	s.SyndromeRound()
	s.LogicalReadout(1)
}
