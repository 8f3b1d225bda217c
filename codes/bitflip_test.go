package codes

import (
	"testing"

	"github.com/perclft/QECBench/sim"
)

// TestBitFlipTableMatchesStabilizers rebuilds the decoding table from
// the parity checks: an X error on data qubit q flips exactly the
// syndrome bits of the stabilizers containing q, first stabilizer most
// significant.
func TestBitFlipTableMatchesStabilizers(t *testing.T) {
	for q := 0; q < 3; q++ {
		syndrome := 0
		for i, stab := range bitFlipStabilizers {
			for _, d := range stab {
				if d == q {
					syndrome |= 1 << (len(bitFlipStabilizers) - 1 - i)
				}
			}
		}
		if syndrome == 0 {
			t.Errorf("X on data[%d] is invisible to the stabilizers", q)
			continue
		}
		if got := bitFlipCorrections[syndrome]; got != q {
			t.Errorf("syndrome %02b corrects data[%d], want data[%d]", syndrome, got, q)
		}
	}
	if bitFlipCorrections[0] != -1 {
		t.Errorf("syndrome 00 must mean no correction")
	}
}

func TestBitFlipStructure(t *testing.T) {
	f := NewThreeQubitBitFlip()
	f.Construct()
	c := f.Circuit()

	if c.NumQubits() != 6 {
		t.Errorf("qubits = %d, want 6 (3 data + 1 readout + 2 ancilla)", c.NumQubits())
	}
	if c.NumClbits() != 4 {
		t.Errorf("clbits = %d, want 4", c.NumClbits())
	}
	// Two syndrome rounds of two measurements plus two logical readouts.
	if got := c.CountGate("measure"); got != 6 {
		t.Errorf("measure count = %d, want 6", got)
	}
	if got := c.CountGate("barrier"); got != 2 {
		t.Errorf("barrier count = %d, want 2", got)
	}

	conds := 0
	for _, in := range c.Instructions() {
		if in.CondReg != nil {
			conds++
		}
	}
	if conds != 6 {
		t.Errorf("conditional corrections = %d, want 6 (3 per round)", conds)
	}
}

func TestBitFlipMemoryNoError(t *testing.T) {
	f := NewThreeQubitBitFlip()
	f.Construct()

	counts := mustSimulate(t, f, 100)
	if counts["00 00"] != 100 {
		t.Errorf("counts = %v, want every shot \"00 00\"", counts)
	}
}

func TestBitFlipCorrectsSingleX(t *testing.T) {
	for q := 0; q < 3; q++ {
		f := NewThreeQubitBitFlip()
		f.InjectError(PauliX, q)
		f.Construct()

		counts := mustSimulate(t, f, 100)
		// The first round removes the flip, so the second round sees a
		// clean state and both logical readouts stay 0.
		if counts["00 00"] != 100 {
			t.Errorf("X on data[%d]: counts = %v, want every shot \"00 00\"", q, counts)
		}
	}
}

func TestBitFlipLogicalOne(t *testing.T) {
	f := NewThreeQubitBitFlip()
	f.PrepareLogicalOne()
	f.Construct()

	counts := mustSimulate(t, f, 100)
	if counts["00 11"] != 100 {
		t.Errorf("counts = %v, want every shot \"00 11\"", counts)
	}
}

func TestBitFlipLogicalOneSurvivesX(t *testing.T) {
	f := NewThreeQubitBitFlip()
	f.PrepareLogicalOne()
	f.InjectError(PauliX, 1)
	f.Construct()

	counts := mustSimulate(t, f, 100)
	if counts["00 11"] != 100 {
		t.Errorf("counts = %v, want every shot \"00 11\"", counts)
	}
}

func mustSimulate(t *testing.T, c Code, shots int) sim.Counts {
	t.Helper()
	s := sim.New()
	s.Shots = shots
	s.Seed = 1
	counts, err := s.Run(c.Circuit())
	if err != nil {
		t.Fatalf("simulate %s: %v", c.ID(), err)
	}
	if counts.Total() != shots {
		t.Fatalf("simulate %s: total %d, want %d", c.ID(), counts.Total(), shots)
	}
	return counts
}
