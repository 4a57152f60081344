// Package cast builds registry entries from typed codecs.
//
// Scalars use DefaultCodec, which relies on the type's standard textual
// conversion. Structured types supply their own Codec; the vector and matrix
// codecs read the literal grammar of package literal and render a bracketed
// display form and a flat trace form:
//
//	get:   [ 0 0 1 0 0  ];
//	trace: 0 0 1 0 0
//
// Neither rendering matches the input literal; they are for people and for
// trace files respectively.
package cast
