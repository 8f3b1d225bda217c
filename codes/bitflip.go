package codes

import "github.com/perclft/QECBench/circuit"

// bitFlipCorrections maps the 2-bit syndrome value to the data qubit
// the decoder flips, -1 meaning no correction:
//
//	00 -> none, 01 -> data[2], 10 -> data[0], 11 -> data[1]
var bitFlipCorrections = [4]int{-1, 2, 0, 1}

// bitFlipStabilizers lists the data qubits in each Z-type parity check:
// S0 = Z0 Z1, S1 = Z1 Z2.
var bitFlipStabilizers = [2][2]int{{0, 1}, {1, 2}}

// ThreeQubitBitFlip is the 3-qubit bit-flip repetition code with a
// working dynamic decoder.
//
// Logical encoding: |0_L> = |000>, |1_L> = |111> (prepared by X on all
// data qubits when desired).
type ThreeQubitBitFlip struct {
	circ    *circuit.Circuit
	data    *circuit.Register
	readout *circuit.Register
	ancilla *circuit.Register
	synd    *circuit.ClassicalRegister
	logic   *circuit.ClassicalRegister
}

func NewThreeQubitBitFlip() *ThreeQubitBitFlip {
	c := circuit.New("bitflip_memory_small")
	f := &ThreeQubitBitFlip{circ: c}
	f.data = c.AddRegister("data", 3)
	f.readout = c.AddRegister("readout", 1)
	f.ancilla = c.AddRegister("ancilla", 2)
	f.synd = c.AddClassicalRegister("synd", 2)
	f.logic = c.AddClassicalRegister("logic", 2)
	return f
}

func (f *ThreeQubitBitFlip) ID() string                { return IDBitFlip }
func (f *ThreeQubitBitFlip) Name() string              { return "3-qubit bit-flip code" }
func (f *ThreeQubitBitFlip) Circuit() *circuit.Circuit { return f.circ }
func (f *ThreeQubitBitFlip) OutputFile() string        { return "bitflip_memory_small.qasm" }

// PrepareLogicalOne flips every data qubit, preparing |1_L> = |111>.
func (f *ThreeQubitBitFlip) PrepareLogicalOne() {
	for _, q := range f.data.Qubits() {
		f.circ.X(q)
	}
}

// InjectError appends a deliberate Pauli fault on data qubit q.
func (f *ThreeQubitBitFlip) InjectError(p Pauli, q int) {
	injectError(f.circ, f.data, p, q)
}

// SyndromeRound appends one round of syndrome extraction and dynamic
// correction. Both ancillas are reset, each Z-type stabilizer is folded
// into its ancilla by CX and measured into the syndrome register, then
// the lookup table is applied as conditional X corrections.
func (f *ThreeQubitBitFlip) SyndromeRound() {
	c := f.circ
	c.Barrier(f.data, f.ancilla)

	for i, stab := range bitFlipStabilizers {
		anc := f.ancilla.Qubit(i)
		c.Reset(anc)
		for _, d := range stab {
			c.CX(f.data.Qubit(d), anc)
		}
		c.Measure(anc, f.synd.Bit(i))
	}

	for syndrome, q := range bitFlipCorrections {
		if q < 0 {
			continue
		}
		c.When(f.synd, syndrome).X(f.data.Qubit(q))
	}
}

// LogicalReadout measures the data parity into logic bit k.
func (f *ThreeQubitBitFlip) LogicalReadout(k int) {
	parityReadout(f.circ, f.data, f.readout, f.logic, k)
}

// Construct builds the benchmark schedule:
// syndrome -> readout -> syndrome -> readout.
func (f *ThreeQubitBitFlip) Construct() {
	f.SyndromeRound()
	f.LogicalReadout(0)
	f.SyndromeRound()
	f.LogicalReadout(1)
}
