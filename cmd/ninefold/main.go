// ninefold scores the structural forward/backward symmetry (Ω) of digit
// sequences.
//
// Usage:
//
//	ninefold analyze [file] [--digits=314159...] [--mode=fixed|sliding] [-o table|markdown|json|yaml]
//	ninefold batch <file>... [--parallel=N]
//	ninefold calibrate [--trials=N] [--length=N] [--seed=N]
//	ninefold encode <dna> [--scheme=pair|simple] [--analyze]
//	ninefold cache list|purge
//
// Global flags --config, --cache, --log-level and --log-format apply to
// every command; flags override the config file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
