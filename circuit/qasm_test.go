package circuit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildCorrectionDemo() *Circuit {
	c := New("demo")
	data := c.AddRegister("data", 3)
	ancilla := c.AddRegister("ancilla", 1)
	synd := c.AddClassicalRegister("synd", 2)

	c.H(data.Qubit(0))
	c.Barrier(data, ancilla)
	c.Reset(ancilla.Qubit(0))
	c.CX(data.Qubit(0), ancilla.Qubit(0))
	c.Measure(ancilla.Qubit(0), synd.Bit(0))
	c.When(synd, 2).X(data.Qubit(0))
	return c
}

func TestQASMGolden(t *testing.T) {
	want := `OPENQASM 3.0;
include "stdgates.inc";

bit[2] synd;
qubit[3] data;
qubit[1] ancilla;

h data[0];
barrier data[0], data[1], data[2], ancilla[0];
reset ancilla[0];
cx data[0], ancilla[0];
synd[0] = measure ancilla[0];
if (synd == 2) {
  x data[0];
}
`
	got := buildCorrectionDemo().QASM()
	if got != want {
		t.Errorf("QASM mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestQASMDeclarationOrder(t *testing.T) {
	c := New("order")
	c.AddRegister("data", 5)
	c.AddRegister("readout", 1)
	c.AddClassicalRegister("synd", 4)
	c.AddClassicalRegister("logic", 2)

	qasm := c.QASM()
	decls := []string{
		"bit[4] synd;",
		"bit[2] logic;",
		"qubit[5] data;",
		"qubit[1] readout;",
	}
	last := -1
	for _, d := range decls {
		idx := strings.Index(qasm, d)
		if idx < 0 {
			t.Fatalf("declaration %q missing from:\n%s", d, qasm)
		}
		if idx < last {
			t.Errorf("declaration %q out of order", d)
		}
		last = idx
	}
}

func TestDumpQASM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.qasm")
	if err := buildCorrectionDemo().DumpQASM(path); err != nil {
		t.Fatalf("DumpQASM: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "OPENQASM 3.0;\n") {
		t.Errorf("file does not start with version header")
	}
	if !strings.Contains(string(data), "if (synd == 2) {") {
		t.Errorf("conditional block missing from dumped file")
	}
}
