/*
Package sigcast is the typed-value layer of a signal graph: it lets generic graph code read, display and trace values whose concrete type it does not know.

# Concept

Every value type is identified by an explicit domain.TypeKey and registered once, at bootstrap, with three functions: parse text into a value, render the value for people (display) and render it for trace files (trace). Signals hold one value each and delegate their Set, Get and Trace calls to the entry of their key. Scalars are registered from their standard textual conversion; vectors and matrices use a bracketed literal grammar.

# Key Features

  - Explicit type keys: identity is a string chosen by the application, so independently built packages agree on it.
  - Atomic updates: a failed Set never changes the value a reader sees.
  - Closed error kinds: UnknownType, DuplicateRegistration, MalformedLiteral and ConversionFailure.
  - Observability: structured logging through log/slog and Prometheus counters per type and operation.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/sigcast"
		"github.com/aretw0/sigcast/pkg/domain"
	)

	func main() {
		eng, err := sigcast.New()
		if err != nil {
			log.Fatal(err)
		}
		defer eng.Close()

		pos, err := eng.NewSignal("position", domain.KeyVector)
		if err != nil {
			log.Fatal(err)
		}
		if err := pos.Set("[3](0.5, 1, -2)"); err != nil {
			log.Fatal(err)
		}

		out, _ := pos.Get()
		fmt.Print(out) // [ 0.5 1 -2  ];
	}
*/
package sigcast
