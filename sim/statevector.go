// Dense statevector backend for the local simulator

package sim

import (
	"math"
	"math/cmplx"
)

// StateVector holds 2^n complex amplitudes over n qubits, all qubits
// starting in |0>. Qubit q corresponds to amplitude index bit 1<<q.
type StateVector struct {
	amps      []complex128
	numQubits int
}

func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{amps: amps, numQubits: numQubits}
}

func (s *StateVector) NumQubits() int { return s.numQubits }

// Amplitude returns the amplitude of the given basis state.
func (s *StateVector) Amplitude(basis int) complex128 { return s.amps[basis] }

func (s *StateVector) H(q int) {
	f := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = f * (a0 + a1)
			s.amps[j] = f * (a0 - a1)
		}
	}
}

func (s *StateVector) X(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *StateVector) Y(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = -1i*s.amps[j], 1i*s.amps[i]
		}
	}
}

func (s *StateVector) Z(q int) {
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

func (s *StateVector) CX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

func (s *StateVector) CZ(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.amps {
		if i&cBit != 0 && i&tBit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
}

// Prob1 returns the probability of reading 1 on the qubit.
func (s *StateVector) Prob1(q int) float64 {
	bit := 1 << q
	p := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a * cmplx.Conj(a))
		}
	}
	return p
}

// MeasureWith collapses the qubit using r in [0,1) as the random draw
// and returns the observed bit.
func (s *StateVector) MeasureWith(q int, r float64) int {
	p1 := s.Prob1(q)

	outcome := 0
	norm := math.Sqrt(1 - p1)
	if r < p1 {
		outcome = 1
		norm = math.Sqrt(p1)
	}

	bit := 1 << q
	for i := range s.amps {
		set := i&bit != 0
		if (outcome == 1) != set {
			s.amps[i] = 0
		} else if norm > 0 {
			s.amps[i] /= complex(norm, 0)
		}
	}
	return outcome
}
