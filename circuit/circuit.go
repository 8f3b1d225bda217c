// Circuit container for QEC benchmark generation
// Registers, gate sequences, and classically-conditioned corrections

package circuit

import "fmt"

// ------------------------------------------------------------------
// Registers
// ------------------------------------------------------------------

// Register is a named group of qubits. Allocation order on a circuit
// fixes the global index of every qubit: Offset is the global index of
// the register's first qubit.
type Register struct {
	Name   string
	Size   int
	Offset int
}

// Qubit returns the global index of the i-th qubit in the register.
func (r *Register) Qubit(i int) int {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("circuit: qubit %d out of range for register %s[%d]", i, r.Name, r.Size))
	}
	return r.Offset + i
}

// Qubits returns the global indices of every qubit in the register.
func (r *Register) Qubits() []int {
	qs := make([]int, r.Size)
	for i := range qs {
		qs[i] = r.Offset + i
	}
	return qs
}

// ClassicalRegister is a named group of classical bits.
//
// The value of a register reads its bits in declaration order with the
// first bit most significant. Syndrome bits are measured in stabilizer
// order, so a 2-bit syndrome register holding S0=1, S1=0 has value 0b10.
// The decoding tables in the codes package are keyed by this convention.
type ClassicalRegister struct {
	Name   string
	Size   int
	Offset int
}

// Bit returns the global index of the i-th bit in the register.
func (r *ClassicalRegister) Bit(i int) int {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("circuit: bit %d out of range for register %s[%d]", i, r.Name, r.Size))
	}
	return r.Offset + i
}

// Value interprets the register's slice of the global classical bit
// array as an integer, first bit most significant.
func (r *ClassicalRegister) Value(global []byte) int {
	v := 0
	for i := 0; i < r.Size; i++ {
		v = v<<1 | int(global[r.Offset+i]&1)
	}
	return v
}

// Bits renders the register's slice of the global classical bit array
// as a bit string, first bit leftmost.
func (r *ClassicalRegister) Bits(global []byte) string {
	buf := make([]byte, r.Size)
	for i := 0; i < r.Size; i++ {
		buf[i] = '0' + global[r.Offset+i]&1
	}
	return string(buf)
}

// ------------------------------------------------------------------
// Instructions
// ------------------------------------------------------------------

// Instruction is one entry of a circuit's gate sequence. Qubits are
// global indices. Clbit is the destination bit for "measure" and -1
// otherwise. A non-nil CondReg makes the instruction conditional: it
// executes only when CondReg's value equals CondVal.
type Instruction struct {
	Gate    string
	Qubits  []int
	Clbit   int
	CondReg *ClassicalRegister
	CondVal int
}

// ------------------------------------------------------------------
// Circuit
// ------------------------------------------------------------------

// Circuit holds quantum and classical registers plus an append-only
// instruction list. It is a plain container: building is sequential and
// synchronous, and all decoding logic lives in the conditional
// instructions themselves.
type Circuit struct {
	Name string

	qregs     []*Register
	cregs     []*ClassicalRegister
	ops       []Instruction
	numQubits int
	numClbits int
}

func New(name string) *Circuit {
	return &Circuit{Name: name}
}

// AddRegister allocates a quantum register at the end of the current
// qubit index space.
func (c *Circuit) AddRegister(name string, size int) *Register {
	if size <= 0 {
		panic(fmt.Sprintf("circuit: register %s must have positive size", name))
	}
	r := &Register{Name: name, Size: size, Offset: c.numQubits}
	c.qregs = append(c.qregs, r)
	c.numQubits += size
	return r
}

// AddClassicalRegister allocates a classical register at the end of the
// current classical bit index space.
func (c *Circuit) AddClassicalRegister(name string, size int) *ClassicalRegister {
	if size <= 0 {
		panic(fmt.Sprintf("circuit: register %s must have positive size", name))
	}
	r := &ClassicalRegister{Name: name, Size: size, Offset: c.numClbits}
	c.cregs = append(c.cregs, r)
	c.numClbits += size
	return r
}

func (c *Circuit) NumQubits() int { return c.numQubits }
func (c *Circuit) NumClbits() int { return c.numClbits }

func (c *Circuit) NumInstructions() int { return len(c.ops) }

// Instructions returns the gate sequence in append order.
func (c *Circuit) Instructions() []Instruction { return c.ops }

// Registers returns the quantum registers in allocation order.
func (c *Circuit) Registers() []*Register { return c.qregs }

// ClassicalRegisters returns the classical registers in allocation order.
func (c *Circuit) ClassicalRegisters() []*ClassicalRegister { return c.cregs }

// CountGate returns how many instructions use the named gate.
func (c *Circuit) CountGate(gate string) int {
	n := 0
	for _, in := range c.ops {
		if in.Gate == gate {
			n++
		}
	}
	return n
}

func (c *Circuit) checkQubit(q int) {
	if q < 0 || q >= c.numQubits {
		panic(fmt.Sprintf("circuit: qubit %d out of range (circuit has %d)", q, c.numQubits))
	}
}

func (c *Circuit) checkClbit(b int) {
	if b < 0 || b >= c.numClbits {
		panic(fmt.Sprintf("circuit: classical bit %d out of range (circuit has %d)", b, c.numClbits))
	}
}

func (c *Circuit) append(gate string, clbit int, cond *ClassicalRegister, condVal int, qubits ...int) {
	for _, q := range qubits {
		c.checkQubit(q)
	}
	if clbit >= 0 {
		c.checkClbit(clbit)
	}
	c.ops = append(c.ops, Instruction{
		Gate:    gate,
		Qubits:  qubits,
		Clbit:   clbit,
		CondReg: cond,
		CondVal: condVal,
	})
}

// ------------------------------------------------------------------
// Gate appends
// ------------------------------------------------------------------

func (c *Circuit) H(q int) { c.append("h", -1, nil, 0, q) }
func (c *Circuit) X(q int) { c.append("x", -1, nil, 0, q) }
func (c *Circuit) Y(q int) { c.append("y", -1, nil, 0, q) }
func (c *Circuit) Z(q int) { c.append("z", -1, nil, 0, q) }

func (c *Circuit) CX(control, target int) {
	if control == target {
		panic("circuit: cx control and target must differ")
	}
	c.append("cx", -1, nil, 0, control, target)
}

func (c *Circuit) CZ(control, target int) {
	if control == target {
		panic("circuit: cz control and target must differ")
	}
	c.append("cz", -1, nil, 0, control, target)
}

// Reset returns the qubit to |0>, discarding its state.
func (c *Circuit) Reset(q int) { c.append("reset", -1, nil, 0, q) }

// Measure reads the qubit in the Z basis into the classical bit.
func (c *Circuit) Measure(q, clbit int) { c.append("measure", clbit, nil, 0, q) }

// Barrier marks a scheduling boundary across the given registers. The
// simulator ignores it; it survives into the QASM artifact.
func (c *Circuit) Barrier(regs ...*Register) {
	var qubits []int
	for _, r := range regs {
		qubits = append(qubits, r.Qubits()...)
	}
	c.append("barrier", -1, nil, 0, qubits...)
}

// ------------------------------------------------------------------
// Conditional execution
// ------------------------------------------------------------------

// Conditional appends gates that execute only when a classical register
// equals a constant. This is the dynamic-decoding primitive: syndrome
// lookup tables become one conditional correction per table entry.
type Conditional struct {
	c     *Circuit
	reg   *ClassicalRegister
	value int
}

// When opens a conditional branch on reg == value.
func (c *Circuit) When(reg *ClassicalRegister, value int) *Conditional {
	if value < 0 || value >= 1<<reg.Size {
		panic(fmt.Sprintf("circuit: value %d does not fit register %s[%d]", value, reg.Name, reg.Size))
	}
	return &Conditional{c: c, reg: reg, value: value}
}

func (b *Conditional) X(q int) { b.c.append("x", -1, b.reg, b.value, q) }
func (b *Conditional) Y(q int) { b.c.append("y", -1, b.reg, b.value, q) }
func (b *Conditional) Z(q int) { b.c.append("z", -1, b.reg, b.value, q) }
