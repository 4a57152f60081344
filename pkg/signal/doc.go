/*
Package signal provides the container that carries one typed value between
nodes of a signal graph.

A Signal knows its value only through a domain.TypeKey. Set, Get and Trace
resolve that key in a registry.Registry and delegate to the entry found
there, so graph code can read and write any registered type as text:

	sig, _ := signal.New("gain", domain.KeyDouble, reg)
	_ = sig.Set("42.0")
	out, _ := sig.Get() // "42\n"

A failed Set leaves the previous value in place. Typed wraps a Signal for
callers that know the payload type statically, and Table indexes signals by
name for loaders and command line tools.
*/
package signal
