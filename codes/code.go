// QEC memory benchmark codes
// Five small codes sharing one construction interface: repeated
// syndrome rounds with dynamic decoding, logical readout by parity

package codes

import (
	"fmt"

	"github.com/perclft/QECBench/circuit"
	"github.com/perclft/QECBench/sim"
)

// Pauli identifies a single-qubit correction operator.
type Pauli byte

const (
	PauliX Pauli = 'X'
	PauliY Pauli = 'Y'
	PauliZ Pauli = 'Z'
)

func (p Pauli) String() string {
	switch p {
	case PauliX, PauliY, PauliZ:
		return string(byte(p))
	default:
		return "I"
	}
}

// Code is the surface every benchmark code exposes. Construct builds
// the fixed memory schedule: syndrome round, logical readout 0,
// syndrome round, logical readout 1.
type Code interface {
	ID() string
	Name() string
	Circuit() *circuit.Circuit
	Construct()
	SyndromeRound()
	LogicalReadout(k int)
	OutputFile() string
}

// Code IDs accepted by qecgen and the daemons.
const (
	IDBitFlip    = "bitflip"
	IDFiveQubit  = "fivequbit"
	IDSteane     = "steane"
	IDShor       = "shor"
	IDSurface3x3 = "surface3x3"
)

// IDs returns the known code IDs in generation order.
func IDs() []string {
	return []string{IDBitFlip, IDFiveQubit, IDSteane, IDShor, IDSurface3x3}
}

// All returns a fresh instance of every benchmark code.
func All() []Code {
	return []Code{
		NewThreeQubitBitFlip(),
		NewFiveQubit(),
		NewSteaneSeven(),
		NewShorNine(),
		NewSurface3x3(),
	}
}

// ByID returns a fresh instance of the named code.
func ByID(id string) (Code, bool) {
	switch id {
	case IDBitFlip:
		return NewThreeQubitBitFlip(), true
	case IDFiveQubit:
		return NewFiveQubit(), true
	case IDSteane:
		return NewSteaneSeven(), true
	case IDShor:
		return NewShorNine(), true
	case IDSurface3x3:
		return NewSurface3x3(), true
	default:
		return nil, false
	}
}

// Simulate runs the code's circuit for the given number of shots.
func Simulate(c Code, shots int) (sim.Counts, error) {
	s := sim.New()
	s.Shots = shots
	return s.Run(c.Circuit())
}

// parityReadout folds the parity of the data qubits into a freshly
// reset readout qubit and measures it into logic bit k. All five codes
// read their logical Z value this way (majority vote by parity).
func parityReadout(c *circuit.Circuit, data, readout *circuit.Register, logic *circuit.ClassicalRegister, k int) {
	c.Reset(readout.Qubit(0))
	for _, q := range data.Qubits() {
		c.CX(q, readout.Qubit(0))
	}
	c.Measure(readout.Qubit(0), logic.Bit(k))
}

// injectError appends a deliberate Pauli fault on a data qubit so a
// following syndrome round has something to decode.
func injectError(c *circuit.Circuit, data *circuit.Register, p Pauli, q int) {
	switch p {
	case PauliX:
		c.X(data.Qubit(q))
	case PauliY:
		c.Y(data.Qubit(q))
	case PauliZ:
		c.Z(data.Qubit(q))
	default:
		panic(fmt.Sprintf("codes: unknown Pauli %q", byte(p)))
	}
}
