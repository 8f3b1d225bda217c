package codes

import "testing"

// anticommutes reports whether the single-qubit Paulis a and b
// anticommute. Identity commutes with everything; distinct non-identity
// Paulis anticommute.
func anticommutes(a, b byte) bool {
	return a != 'I' && b != 'I' && a != b
}

// TestFiveQubitTableMatchesGenerators recomputes every table entry from
// the stabilizer strings: the syndrome of a Pauli error is the pattern
// of generators it anticommutes with, first generator most significant.
func TestFiveQubitTableMatchesGenerators(t *testing.T) {
	for _, p := range []Pauli{PauliX, PauliY, PauliZ} {
		for q := 0; q < 5; q++ {
			syndrome := 0
			for a, stab := range fiveQubitStabilizers {
				if anticommutes(stab[q], byte(p)) {
					syndrome |= 1 << (len(fiveQubitStabilizers) - 1 - a)
				}
			}
			if syndrome == 0 {
				t.Errorf("%s on data[%d] is invisible to the generators", p, q)
				continue
			}
			got := fiveQubitCorrections[syndrome]
			if got.Pauli != p || got.Qubit != q {
				t.Errorf("syndrome %04b corrects %s data[%d], want %s data[%d]",
					syndrome, got.Pauli, got.Qubit, p, q)
			}
		}
	}
}

// TestFiveQubitTableBijective checks that the fifteen non-zero
// syndromes name fifteen distinct single-qubit recoveries and that
// syndrome zero names none.
func TestFiveQubitTableBijective(t *testing.T) {
	if (fiveQubitCorrections[0] != Correction{}) {
		t.Errorf("syndrome 0000 must mean no correction")
	}
	seen := make(map[Correction]int)
	for syndrome := 1; syndrome < len(fiveQubitCorrections); syndrome++ {
		corr := fiveQubitCorrections[syndrome]
		if corr.Pauli != PauliX && corr.Pauli != PauliY && corr.Pauli != PauliZ {
			t.Errorf("syndrome %04b has no recovery", syndrome)
			continue
		}
		if prev, dup := seen[corr]; dup {
			t.Errorf("recovery %s data[%d] claimed by syndromes %04b and %04b",
				corr.Pauli, corr.Qubit, prev, syndrome)
		}
		seen[corr] = syndrome
	}
	if len(seen) != 15 {
		t.Errorf("table covers %d recoveries, want 15", len(seen))
	}
}

func TestFiveQubitStructure(t *testing.T) {
	f := NewFiveQubit()
	f.Construct()
	c := f.Circuit()

	if c.NumQubits() != 10 {
		t.Errorf("qubits = %d, want 10 (5 data + 1 readout + 4 ancilla)", c.NumQubits())
	}
	if c.NumClbits() != 6 {
		t.Errorf("clbits = %d, want 6", c.NumClbits())
	}
	// Two rounds of four syndrome measurements plus two readouts.
	if got := c.CountGate("measure"); got != 10 {
		t.Errorf("measure count = %d, want 10", got)
	}
	// Four H per basis change, two changes per round, two rounds.
	if got := c.CountGate("h"); got != 16 {
		t.Errorf("h count = %d, want 16", got)
	}

	conds := 0
	for _, in := range c.Instructions() {
		if in.CondReg != nil {
			conds++
		}
	}
	if conds != 30 {
		t.Errorf("conditional corrections = %d, want 30 (15 per round)", conds)
	}
}

// TestFiveQubitSecondRoundClean runs the full schedule. The first round
// projects the raw |00000> state into a stabilizer eigenspace and the
// table correction returns it to the codespace, so the second round
// must read syndrome 0000, and both logical readouts must agree since
// no error happens between them.
func TestFiveQubitSecondRoundClean(t *testing.T) {
	f := NewFiveQubit()
	f.Construct()

	counts := mustSimulate(t, f, 200)
	for key := range counts {
		switch key {
		case "0000 00", "0000 11":
		default:
			t.Errorf("unexpected outcome %q in %v", key, counts)
		}
	}
}

// TestFiveQubitCorrectsInjectedPaulis injects each of the fifteen
// single-qubit errors between the two rounds. The second round must
// read exactly the error's signature, and the correction it triggers
// must leave the logical value unchanged between the two readouts.
func TestFiveQubitCorrectsInjectedPaulis(t *testing.T) {
	for _, p := range []Pauli{PauliX, PauliY, PauliZ} {
		for q := 0; q < 5; q++ {
			sig := make([]byte, len(fiveQubitStabilizers))
			for a, stab := range fiveQubitStabilizers {
				sig[a] = '0'
				if anticommutes(stab[q], byte(p)) {
					sig[a] = '1'
				}
			}
			syndStr := string(sig)

			f := NewFiveQubit()
			f.SyndromeRound()
			f.LogicalReadout(0)
			f.InjectError(p, q)
			f.SyndromeRound()
			f.LogicalReadout(1)

			counts := mustSimulate(t, f, 50)
			for key := range counts {
				switch key {
				case syndStr + " 00", syndStr + " 11":
				default:
					t.Errorf("%s on data[%d]: unexpected outcome %q, want syndrome %s in %v",
						p, q, key, syndStr, counts)
				}
			}
		}
	}
}
