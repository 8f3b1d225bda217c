// qecgen - QEC memory benchmark generator
// Builds the five benchmark circuits and dumps one QASM artifact each

package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/perclft/QECBench/codes"
	"github.com/perclft/QECBench/sim"
)

func main() {
	outDir := flag.String("out", ".", "Output directory for QASM artifacts")
	codeList := flag.String("codes", strings.Join(codes.IDs(), ","), "Comma-separated code IDs to generate")
	simulate := flag.Bool("simulate", false, "Run the statevector simulator after generating")
	shots := flag.Int("shots", 1024, "Shots per simulated circuit")
	flag.Parse()

	for _, id := range strings.Split(*codeList, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		code, ok := codes.ByID(id)
		if !ok {
			log.Fatalf("Unknown code ID %q (known: %s)", id, strings.Join(codes.IDs(), ", "))
		}
		code.Construct()

		circ := code.Circuit()
		path := filepath.Join(*outDir, code.OutputFile())
		if err := circ.DumpQASM(path); err != nil {
			log.Fatalf("Failed to dump %s: %v", id, err)
		}

		fmt.Printf("⚡ %-34s %2d qubits, %3d ops -> %s\n",
			code.Name(), circ.NumQubits(), circ.NumInstructions(), path)

		if *simulate {
			s := sim.New()
			s.Shots = *shots
			counts, err := s.Run(circ)
			if err != nil {
				log.Fatalf("Simulation failed for %s: %v", id, err)
			}
			printCounts(counts)
		}
	}
}

func printCounts(counts sim.Counts) {
	for _, key := range counts.Sorted() {
		fmt.Printf("   [%s] %d\n", key, counts[key])
	}
}
