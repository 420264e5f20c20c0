/*
Package machina is a deterministic single-tape Turing machine simulator.

It loads a declarative description of states and transitions (JSON, YAML or
TOML), seeds an input string onto an unbounded bidirectional tape, and steps
the machine until it halts: in a final state with no applicable rule
(accept), in a non-final state with no applicable rule (reject), or at an
explicit step ceiling (inconclusive). Halting is always an ordinary result,
never an error.

# Concept

A model is a set of named states, exactly one marked as start, each carrying
an ordered list of transition rules {cons, prod, move, next}. Lookup scans
exact rules first, then falls back to the wildcard rule (`*` by default);
declaration order is the tie-break. Unwritten tape cells read as the blank
symbol (`_` by default). Both sentinels can be remapped per model.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/machina"
	)

	func main() {
		sim, err := machina.Load("busy-beaver.yaml", machina.WithStepLimit(10000))
		if err != nil {
			log.Fatal(err)
		}

		res, err := sim.Run("1101")
		if err != nil {
			log.Fatal(err)
		}

		id := sim.Identifier()
		fmt.Println(res.Status, res.Steps, id.State, id.Tape.Cells)
	}

The core is single-threaded and synchronous; for batch verification build
one Simulator per goroutine, they share nothing.
*/
package machina
