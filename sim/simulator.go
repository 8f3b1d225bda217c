// Shot-based circuit simulation with classical conditioning

package sim

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/perclft/QECBench/circuit"
)

// Counts maps a measurement outcome to its frequency over all shots.
// Keys are the classical registers' bit strings in declaration order,
// space separated, each register's first bit leftmost.
type Counts map[string]int

// Total returns the number of shots recorded in the counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Sorted returns outcomes ordered by descending frequency, ties broken
// by key.
func (c Counts) Sorted() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c[keys[i]] != c[keys[j]] {
			return c[keys[i]] > c[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Simulator runs a circuit shot by shot on a dense statevector. Every
// shot replays the full instruction list, honoring measurement collapse
// and conditional corrections. Single-threaded and synchronous.
type Simulator struct {
	Shots int
	Seed  int64 // 0 means time-based seeding
}

func New() *Simulator {
	return &Simulator{Shots: 1024}
}

// Run simulates the circuit and returns the outcome counts.
func (s *Simulator) Run(c *circuit.Circuit) (Counts, error) {
	shots := s.Shots
	if shots <= 0 {
		shots = 1024
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	counts := make(Counts)
	for shot := 0; shot < shots; shot++ {
		key, err := s.runShot(c, rng)
		if err != nil {
			return nil, err
		}
		counts[key]++
	}
	return counts, nil
}

func (s *Simulator) runShot(c *circuit.Circuit, rng *rand.Rand) (string, error) {
	state := NewStateVector(c.NumQubits())
	cbits := make([]byte, c.NumClbits())

	for _, in := range c.Instructions() {
		if in.CondReg != nil && in.CondReg.Value(cbits) != in.CondVal {
			continue
		}

		switch in.Gate {
		case "h":
			state.H(in.Qubits[0])
		case "x":
			state.X(in.Qubits[0])
		case "y":
			state.Y(in.Qubits[0])
		case "z":
			state.Z(in.Qubits[0])
		case "cx":
			state.CX(in.Qubits[0], in.Qubits[1])
		case "cz":
			state.CZ(in.Qubits[0], in.Qubits[1])
		case "reset":
			if state.MeasureWith(in.Qubits[0], rng.Float64()) == 1 {
				state.X(in.Qubits[0])
			}
		case "measure":
			cbits[in.Clbit] = byte(state.MeasureWith(in.Qubits[0], rng.Float64()))
		case "barrier":
			// Scheduling hint only.
		default:
			return "", fmt.Errorf("unsupported gate %q", in.Gate)
		}
	}

	regs := c.ClassicalRegisters()
	parts := make([]string, len(regs))
	for i, r := range regs {
		parts[i] = r.Bits(cbits)
	}
	return strings.Join(parts, " "), nil
}
