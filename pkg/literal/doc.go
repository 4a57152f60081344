/*
Package literal recognizes the bracketed text syntax used to set vector and
matrix signals.

Vectors declare their size in brackets and list their elements in parentheses:

	[5](0, 0, 1, 0, 0)
	[3](1.5 -2 3e2)

Matrices declare rows and columns and list one parenthesized group per row:

	[2,3]((1,2,3)(4,5,6))

Elements may be separated by any run of commas and whitespace. Rows need no
separator between them, but one is tolerated. The declared sizes must match
the elements actually listed.

Every failure is a *domain.MalformedLiteralError carrying the byte offset of
the first unmet expectation; errors.Is(err, domain.ErrMalformedLiteral) holds
for all of them. The parser is stateless and safe for concurrent use.
*/
package literal
