// OpenQASM 3.0 serialization of circuit containers

package circuit

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// QASM renders the circuit as OpenQASM 3.0: register declarations, the
// gate sequence in append order, and one if-block per conditional
// correction.
func (c *Circuit) QASM() string {
	var sb strings.Builder

	sb.WriteString("OPENQASM 3.0;\n")
	sb.WriteString("include \"stdgates.inc\";\n\n")

	for _, r := range c.cregs {
		fmt.Fprintf(&sb, "bit[%d] %s;\n", r.Size, r.Name)
	}
	for _, r := range c.qregs {
		fmt.Fprintf(&sb, "qubit[%d] %s;\n", r.Size, r.Name)
	}
	sb.WriteString("\n")

	for _, in := range c.ops {
		if in.CondReg != nil {
			fmt.Fprintf(&sb, "if (%s == %d) {\n  ", in.CondReg.Name, in.CondVal)
			c.writeOp(&sb, in)
			sb.WriteString("}\n")
			continue
		}
		c.writeOp(&sb, in)
	}

	return sb.String()
}

func (c *Circuit) writeOp(sb *strings.Builder, in Instruction) {
	switch in.Gate {
	case "measure":
		fmt.Fprintf(sb, "%s = measure %s;\n", c.clbitName(in.Clbit), c.qubitName(in.Qubits[0]))
	case "reset":
		fmt.Fprintf(sb, "reset %s;\n", c.qubitName(in.Qubits[0]))
	case "barrier":
		fmt.Fprintf(sb, "barrier %s;\n", c.operandList(in.Qubits))
	default:
		fmt.Fprintf(sb, "%s %s;\n", in.Gate, c.operandList(in.Qubits))
	}
}

func (c *Circuit) operandList(qubits []int) string {
	names := make([]string, len(qubits))
	for i, q := range qubits {
		names[i] = c.qubitName(q)
	}
	return strings.Join(names, ", ")
}

func (c *Circuit) qubitName(q int) string {
	for _, r := range c.qregs {
		if q >= r.Offset && q < r.Offset+r.Size {
			return fmt.Sprintf("%s[%d]", r.Name, q-r.Offset)
		}
	}
	return fmt.Sprintf("q[%d]", q)
}

func (c *Circuit) clbitName(b int) string {
	for _, r := range c.cregs {
		if b >= r.Offset && b < r.Offset+r.Size {
			return fmt.Sprintf("%s[%d]", r.Name, b-r.Offset)
		}
	}
	return fmt.Sprintf("c[%d]", b)
}

// WriteQASM serializes the circuit to the writer.
func (c *Circuit) WriteQASM(w io.Writer) error {
	_, err := io.WriteString(w, c.QASM())
	return err
}

// DumpQASM writes the circuit to a file, one artifact per circuit.
func (c *Circuit) DumpQASM(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	if err := c.WriteQASM(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return f.Close()
}
