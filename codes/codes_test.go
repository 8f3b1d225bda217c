package codes

import (
	"strings"
	"testing"
)

func TestIDsAndAllAgree(t *testing.T) {
	ids := IDs()
	all := All()
	if len(ids) != len(all) {
		t.Fatalf("IDs() has %d entries, All() has %d", len(ids), len(all))
	}
	for i, c := range all {
		if c.ID() != ids[i] {
			t.Errorf("All()[%d].ID() = %q, want %q", i, c.ID(), ids[i])
		}
	}
}

func TestByID(t *testing.T) {
	for _, id := range IDs() {
		c, ok := ByID(id)
		if !ok {
			t.Errorf("ByID(%q) not found", id)
			continue
		}
		if c.ID() != id {
			t.Errorf("ByID(%q).ID() = %q", id, c.ID())
		}
	}
	if _, ok := ByID("sevenqubit"); ok {
		t.Errorf("ByID accepted an unknown id")
	}
}

func TestCodeShapes(t *testing.T) {
	tests := []struct {
		id        string
		qubits    int
		clbits    int
		circName  string
		skeletons bool
	}{
		{IDBitFlip, 6, 4, "bitflip_memory_small", false},
		{IDFiveQubit, 10, 6, "fivequbit_memory_small", false},
		{IDSteane, 14, 8, "steane_memory_skeleton", true},
		{IDShor, 18, 10, "shor_memory_skeleton", true},
		{IDSurface3x3, 14, 6, "surface3x3_memory_skeleton", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			code, ok := ByID(tt.id)
			if !ok {
				t.Fatalf("ByID(%q) not found", tt.id)
			}
			code.Construct()
			c := code.Circuit()

			if c.NumQubits() != tt.qubits {
				t.Errorf("qubits = %d, want %d", c.NumQubits(), tt.qubits)
			}
			if c.NumClbits() != tt.clbits {
				t.Errorf("clbits = %d, want %d", c.NumClbits(), tt.clbits)
			}
			if c.Name != tt.circName {
				t.Errorf("circuit name = %q, want %q", c.Name, tt.circName)
			}
			if code.OutputFile() != tt.circName+".qasm" {
				t.Errorf("output file = %q", code.OutputFile())
			}
			if tt.skeletons && !strings.Contains(code.Name(), "skeleton") {
				t.Errorf("skeleton code name %q should say so", code.Name())
			}

			qasm := c.QASM()
			if !strings.HasPrefix(qasm, "OPENQASM 3.0;\ninclude \"stdgates.inc\";\n") {
				t.Errorf("QASM header missing:\n%s", qasm[:min(len(qasm), 80)])
			}
			if !strings.Contains(qasm, "bit[2] logic;") {
				t.Errorf("logic register declaration missing")
			}
		})
	}
}

// The skeleton circuits apply no gates before their parity checks, so
// every measurement reads 0 deterministically.
func TestSkeletonsSimulateToZero(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{IDSteane, "000000 00"},
		{IDShor, "00000000 00"},
		{IDSurface3x3, "0000 00"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			code, _ := ByID(tt.id)
			code.Construct()
			counts := mustSimulate(t, code, 2)
			if counts[tt.want] != 2 {
				t.Errorf("counts = %v, want every shot %q", counts, tt.want)
			}
		})
	}
}

func TestSimulateHelper(t *testing.T) {
	code := NewThreeQubitBitFlip()
	code.Construct()
	counts, err := Simulate(code, 10)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if counts.Total() != 10 {
		t.Errorf("total = %d, want 10", counts.Total())
	}
}

func TestPauliString(t *testing.T) {
	if PauliX.String() != "X" || PauliY.String() != "Y" || PauliZ.String() != "Z" {
		t.Errorf("Pauli rendering broken")
	}
	if Pauli('Q').String() != "I" {
		t.Errorf("unknown Pauli should render as I")
	}
}

func TestInjectErrorRejectsUnknownPauli(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown Pauli")
		}
	}()
	f := NewThreeQubitBitFlip()
	f.InjectError(Pauli('Q'), 0)
}
