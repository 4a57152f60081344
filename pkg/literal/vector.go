package literal

import (
	"fmt"

	"github.com/aretw0/sigcast/pkg/linalg"
)

// ParseVector parses a vector literal of the form "[N](v0, v1, ...)".
func ParseVector(s string) (linalg.Vector, error) {
	sc := &scanner{in: s}

	if err := sc.expect('['); err != nil {
		return nil, err
	}
	n, err := sc.size()
	if err != nil {
		return nil, err
	}
	if err := sc.expect(']'); err != nil {
		return nil, err
	}
	if err := sc.expect('('); err != nil {
		return nil, err
	}

	vals, err := sc.elements("')'", n)
	if err != nil {
		return nil, err
	}
	if err := sc.end(); err != nil {
		return nil, err
	}
	return linalg.Vector(vals), nil
}

// elements reads a separated list of numbers up to and including the closing
// parenthesis. The opening parenthesis has already been consumed. closer
// describes the missing ')' in errors; want is the declared element count.
// Every element takes at least one byte, so capacity never exceeds what is
// left of the input.
func (s *scanner) elements(closer string, want int) ([]float64, error) {
	vals := make([]float64, 0, min(want, len(s.in)-s.pos))

	s.skipSpace()
	if s.peek() == ')' {
		s.pos++
		return vals, s.checkCount(len(vals), want, s.pos-1)
	}

	for {
		v, ok := s.number()
		if !ok {
			return nil, s.fail("number")
		}
		vals = append(vals, v)

		sep := s.skipSeparators()
		switch {
		case s.eof():
			return nil, s.fail(closer)
		case s.peek() == ')':
			closeAt := s.pos
			s.pos++
			return vals, s.checkCount(len(vals), want, closeAt)
		case !sep:
			return nil, s.fail(closer)
		}
	}
}

func (s *scanner) checkCount(got, want, at int) error {
	if got == want {
		return nil
	}
	s.pos = at
	return s.fail(fmt.Sprintf("%d elements, got %d", want, got))
}

// end accepts trailing whitespace only.
func (s *scanner) end() error {
	s.skipSpace()
	if !s.eof() {
		return s.fail("end of input after ')'")
	}
	return nil
}
