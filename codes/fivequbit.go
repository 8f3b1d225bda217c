package codes

import "github.com/perclft/QECBench/circuit"

// fiveQubitStabilizers are the four generators of the [[5,1,3]] code,
// one row per ancilla, one column per data qubit.
var fiveQubitStabilizers = [4]string{
	"XZZXI",
	"IXZZX",
	"XIXZZ",
	"ZXIXZ",
}

// Correction is one entry of a decoding table: a single-qubit Pauli
// recovery on one data qubit. The zero value means no correction.
type Correction struct {
	Pauli Pauli
	Qubit int
}

// fiveQubitCorrections maps the 4-bit syndrome value (first stabilizer
// most significant) to the unique single-qubit recovery. Every non-zero
// syndrome names exactly one of the fifteen single-qubit Paulis;
// syndrome 0 means no error. Validated against the generator table in
// the tests.
var fiveQubitCorrections = [16]Correction{
	0b0001: {PauliX, 0},
	0b1000: {PauliX, 1},
	0b1100: {PauliX, 2},
	0b0110: {PauliX, 3},
	0b0011: {PauliX, 4},

	0b1010: {PauliZ, 0},
	0b0101: {PauliZ, 1},
	0b0010: {PauliZ, 2},
	0b1001: {PauliZ, 3},
	0b0100: {PauliZ, 4},

	0b1011: {PauliY, 0},
	0b1101: {PauliY, 1},
	0b1110: {PauliY, 2},
	0b1111: {PauliY, 3},
	0b0111: {PauliY, 4},
}

// FiveQubit is the [[5,1,3]] five-qubit code with a dynamic
// lookup-table decoder covering every single-qubit Pauli error.
type FiveQubit struct {
	circ    *circuit.Circuit
	data    *circuit.Register
	readout *circuit.Register
	ancilla *circuit.Register
	synd    *circuit.ClassicalRegister
	logic   *circuit.ClassicalRegister
}

func NewFiveQubit() *FiveQubit {
	c := circuit.New("fivequbit_memory_small")
	f := &FiveQubit{circ: c}
	f.data = c.AddRegister("data", 5)
	f.readout = c.AddRegister("readout", 1)
	f.ancilla = c.AddRegister("ancilla", 4)
	f.synd = c.AddClassicalRegister("synd", 4)
	f.logic = c.AddClassicalRegister("logic", 2)
	return f
}

func (f *FiveQubit) ID() string                { return IDFiveQubit }
func (f *FiveQubit) Name() string              { return "five-qubit code" }
func (f *FiveQubit) Circuit() *circuit.Circuit { return f.circ }
func (f *FiveQubit) OutputFile() string        { return "fivequbit_memory_small.qasm" }

// InjectError appends a deliberate Pauli fault on data qubit q.
func (f *FiveQubit) InjectError(p Pauli, q int) {
	injectError(f.circ, f.data, p, q)
}

// SyndromeRound appends one round of syndrome extraction and dynamic
// correction. Each ancilla is reset and put in |+>, entangled with the
// data qubits per its stabilizer row (CX for X, CZ for Z), rotated back
// to the Z basis and measured. The corrections then apply the lookup
// table as one conditional Pauli gate per non-zero syndrome.
func (f *FiveQubit) SyndromeRound() {
	c := f.circ

	for a := range fiveQubitStabilizers {
		c.Reset(f.ancilla.Qubit(a))
	}
	for a := range fiveQubitStabilizers {
		c.H(f.ancilla.Qubit(a))
	}

	for a, stab := range fiveQubitStabilizers {
		anc := f.ancilla.Qubit(a)
		for d := 0; d < len(stab); d++ {
			switch stab[d] {
			case 'X':
				c.CX(anc, f.data.Qubit(d))
			case 'Z':
				c.CZ(anc, f.data.Qubit(d))
			}
		}
	}

	for a := range fiveQubitStabilizers {
		c.H(f.ancilla.Qubit(a))
	}
	for a := range fiveQubitStabilizers {
		c.Measure(f.ancilla.Qubit(a), f.synd.Bit(a))
	}

	for syndrome := 1; syndrome < len(fiveQubitCorrections); syndrome++ {
		corr := fiveQubitCorrections[syndrome]
		cond := c.When(f.synd, syndrome)
		switch corr.Pauli {
		case PauliX:
			cond.X(f.data.Qubit(corr.Qubit))
		case PauliY:
			cond.Y(f.data.Qubit(corr.Qubit))
		case PauliZ:
			cond.Z(f.data.Qubit(corr.Qubit))
		}
	}
}

// LogicalReadout measures the data parity into logic bit k.
func (f *FiveQubit) LogicalReadout(k int) {
	parityReadout(f.circ, f.data, f.readout, f.logic, k)
}

// Construct builds the benchmark schedule:
// syndrome -> readout -> syndrome -> readout.
func (f *FiveQubit) Construct() {
	f.SyndromeRound()
	f.LogicalReadout(0)
	f.SyndromeRound()
	f.LogicalReadout(1)
}
