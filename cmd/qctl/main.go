package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/perclft/QECBench/codes"
	"github.com/perclft/QECBench/sim"
)

// JobFile is the JSON job description qctl runs: which code, how many
// shots, and any deliberate faults to inject before the first round.
type JobFile struct {
	Code       string `json:"code"`
	Shots      int    `json:"shots"`
	Seed       int64  `json:"seed"`
	PrepareOne bool   `json:"prepare_one"`
	Inject     []struct {
		Pauli string `json:"pauli"`
		Qubit int    `json:"qubit"`
	} `json:"inject"`
}

// Codes with a working decoder also support state preparation and fault
// injection. The skeletons do not.
type onePreparer interface {
	PrepareLogicalOne()
}

type faultInjector interface {
	InjectError(p codes.Pauli, q int)
}

func main() {
	fileArg := flag.String("file", "", "Path to benchmark job JSON file")
	qasmOnly := flag.Bool("qasm", false, "Print the circuit QASM instead of simulating")
	flag.Parse()

	if *fileArg == "" {
		fmt.Println("❌ Usage: qctl -file <job.json> [-qasm]")
		os.Exit(1)
	}

	data, err := os.ReadFile(*fileArg)
	if err != nil {
		log.Fatalf("Failed to read file: %v", err)
	}

	var job JobFile
	if err := json.Unmarshal(data, &job); err != nil {
		log.Fatalf("Invalid JSON format: %v", err)
	}

	code, ok := codes.ByID(job.Code)
	if !ok {
		log.Fatalf("Unknown code %q (known: %v)", job.Code, codes.IDs())
	}

	if job.PrepareOne {
		p, ok := code.(onePreparer)
		if !ok {
			log.Fatalf("Code %q does not support logical-one preparation", job.Code)
		}
		p.PrepareLogicalOne()
	}
	for _, in := range job.Inject {
		inj, ok := code.(faultInjector)
		if !ok {
			log.Fatalf("Code %q does not support fault injection", job.Code)
		}
		if len(in.Pauli) != 1 {
			log.Fatalf("Invalid Pauli %q (want X, Y or Z)", in.Pauli)
		}
		inj.InjectError(codes.Pauli(in.Pauli[0]), in.Qubit)
	}
	code.Construct()

	if *qasmOnly {
		fmt.Print(code.Circuit().QASM())
		return
	}

	shots := job.Shots
	if shots <= 0 {
		shots = 1024
	}
	s := sim.New()
	s.Shots = shots
	s.Seed = job.Seed

	fmt.Printf("⚡ Running '%s' (%d qubits, %d shots)\n", code.Name(), code.Circuit().NumQubits(), shots)
	start := time.Now()
	counts, err := s.Run(code.Circuit())
	if err != nil {
		log.Fatalf("💥 Simulation Error: %v", err)
	}
	fmt.Printf("✅ Done in %s\n", time.Since(start))

	fmt.Println("\n--- 🔬 Measurement Register ---")
	for _, key := range counts.Sorted() {
		fmt.Printf(" [%s] -> %d\n", key, counts[key])
	}
}
