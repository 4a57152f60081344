/*
Package domain contains the vocabulary shared by every layer of sigcast.

It defines the TypeKey used to identify value types in a cast registry and the
closed set of error kinds raised while parsing, rendering and resolving
signal values. This package is kept free of I/O and external dependencies.

# Error kinds

  - UnknownType: a registry lookup missed.
  - DuplicateRegistration: a key already holds a live cast entry.
  - MalformedLiteral: the vector/matrix literal grammar was violated.
  - ConversionFailure: a scalar textual read did not consume its input.

Use KindOf to switch over the kinds, or errors.Is against the sentinels.
*/
package domain
