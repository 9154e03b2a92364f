// Command lfsr drives linear feedback shift registers, their property tests and
// the composite keystream generators from the command line.
//
// # Commands
//
// run: Step a register and print its output.
//
//	lfsr run --taps=5,3 --state=11110 --cycles=31
//	lfsr run --taps="x^5 + x^2 + 1" --conf=galois --info
//
// test: Run the property battery on a register or a given sequence.
//
//	lfsr test --taps=5,3 --state=11110
//	lfsr test --sequence=1110010
//
// a51, geffe, geffe3: Produce keystream from the composite generators.
//
//	lfsr a51 --key=random --bits=64
//	lfsr geffe --component=5,3 --component=5,2 --selector=7,6 --bits=32
//	lfsr geffe3 --r1=5,3 --r2=5,2 --r3=3,2 --classic
//
// polys, search: List known primitive polynomials or search for them.
//
//	lfsr polys --degree=8 --images
//	lfsr search --degree=10 --workers=8
//
// encrypt: XOR a file with an A5/1 keystream derived from a secret.
//
//	lfsr encrypt --secret=passphrase --in=plain.txt --out=cipher.bin
//
// # Configuration
//
// All commands accept a YAML file via --config. Flags override file values.
//
//	log:
//	  level: debug
//	register:
//	  taps: [5, 3]
//	  init_state: "11110"
//	  configuration: fibonacci
//	generator:
//	  a51_key: random
//	  seed: 42
//	survey:
//	  degree: 8
//	  workers: 4
//	metrics_file: /var/lib/node_exporter/lfsr.prom
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Interrupting a long search cancels its workers.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
