package literal

import (
	"fmt"

	"github.com/aretw0/sigcast/pkg/linalg"
)

// ParseMatrix parses a matrix literal of the form "[R,C]((r0...)(r1...)...)".
// Rows are assembled in order, so the result is row-major. Storage is only
// allocated once every row has been read with the declared column count.
func ParseMatrix(s string) (linalg.Matrix, error) {
	sc := &scanner{in: s}

	if err := sc.expect('['); err != nil {
		return linalg.Matrix{}, err
	}
	rows, err := sc.size()
	if err != nil {
		return linalg.Matrix{}, err
	}
	if err := sc.expect(','); err != nil {
		return linalg.Matrix{}, err
	}
	cols, err := sc.size()
	if err != nil {
		return linalg.Matrix{}, err
	}
	if err := sc.expect(']'); err != nil {
		return linalg.Matrix{}, err
	}
	if err := sc.expect('('); err != nil {
		return linalg.Matrix{}, err
	}

	var data []float64
	read := 0
	for {
		sc.skipSeparators()
		if sc.eof() {
			return linalg.Matrix{}, sc.fail("')' to close matrix")
		}
		if sc.peek() == ')' {
			if read != rows {
				return linalg.Matrix{}, sc.fail(fmt.Sprintf("%d rows, got %d", rows, read))
			}
			sc.pos++
			break
		}
		if read == rows {
			return linalg.Matrix{}, sc.fail("')' to close matrix")
		}
		if sc.peek() != '(' {
			return linalg.Matrix{}, sc.fail(fmt.Sprintf("'(' to open row %d", read+1))
		}
		sc.pos++

		vals, err := sc.elements(fmt.Sprintf("')' to close row %d", read+1), cols)
		if err != nil {
			return linalg.Matrix{}, err
		}
		data = append(data, vals...)
		read++
	}

	if err := sc.end(); err != nil {
		return linalg.Matrix{}, err
	}
	return linalg.MatrixFromRowMajor(rows, cols, data)
}
