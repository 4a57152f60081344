package literal

import (
	"strconv"
	"strings"

	"github.com/aretw0/sigcast/pkg/domain"
)

// scanner walks a literal left to right. Whitespace before every token is
// skipped, the way a formatted stream read would.
type scanner struct {
	in  string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.in) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.in[s.pos]
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.in[s.pos]) {
		s.pos++
	}
}

// skipSeparators consumes a run of commas and whitespace and reports whether
// anything was consumed.
func (s *scanner) skipSeparators() bool {
	start := s.pos
	for !s.eof() && (s.in[s.pos] == ',' || isSpace(s.in[s.pos])) {
		s.pos++
	}
	return s.pos > start
}

// accept consumes c if it is the next non-space byte.
func (s *scanner) accept(c byte) bool {
	s.skipSpace()
	if s.peek() != c || s.eof() {
		return false
	}
	s.pos++
	return true
}

func (s *scanner) fail(expected string) error {
	return &domain.MalformedLiteralError{Input: s.in, Pos: s.pos, Expected: expected}
}

func (s *scanner) expect(c byte) error {
	if !s.accept(c) {
		return s.fail("'" + string(c) + "'")
	}
	return nil
}

// size reads a non-negative decimal integer.
func (s *scanner) size() (int, error) {
	s.skipSpace()
	start := s.pos
	end := start
	if end < len(s.in) && (s.in[end] == '+' || s.in[end] == '-') {
		end++
	}
	digits := end
	for end < len(s.in) && isDigit(s.in[end]) {
		end++
	}
	if end == digits {
		return 0, s.fail("integer size")
	}
	n, err := strconv.Atoi(s.in[start:end])
	if err != nil {
		return 0, s.fail("integer size")
	}
	if n < 0 {
		return 0, s.fail("non-negative size")
	}
	s.pos = end
	return n, nil
}

// number reads the longest prefix that forms one floating point value.
func (s *scanner) number() (float64, bool) {
	s.skipSpace()
	end := scanFloat(s.in, s.pos)
	if end == s.pos {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.in[s.pos:end], 64)
	if err != nil {
		// Out of range values still parse to ±Inf; anything else is not a number.
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}
	s.pos = end
	return v, true
}

// scanFloat returns the end offset of the float token starting at i, or i if
// there is none.
func scanFloat(in string, i int) int {
	start := i
	if i < len(in) && (in[i] == '+' || in[i] == '-') {
		i++
	}
	rest := strings.ToLower(in[i:])
	for _, word := range []string{"infinity", "inf", "nan"} {
		if strings.HasPrefix(rest, word) {
			return i + len(word)
		}
	}

	mantissa := i
	for i < len(in) && isDigit(in[i]) {
		i++
	}
	if i < len(in) && in[i] == '.' {
		i++
		for i < len(in) && isDigit(in[i]) {
			i++
		}
	}
	// A lone sign or dot is not a number.
	if i == mantissa || (i == mantissa+1 && in[mantissa] == '.') {
		return start
	}

	if i < len(in) && (in[i] == 'e' || in[i] == 'E') {
		j := i + 1
		if j < len(in) && (in[j] == '+' || in[j] == '-') {
			j++
		}
		if j < len(in) && isDigit(in[j]) {
			for j < len(in) && isDigit(in[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
