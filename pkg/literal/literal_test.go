package literal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sigcast/pkg/domain"
	"github.com/aretw0/sigcast/pkg/linalg"
	"github.com/aretw0/sigcast/pkg/literal"
)

func TestParseVector(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  linalg.Vector
	}{
		{"commas", "[5](0,0,1,0,0)", linalg.Vector{0, 0, 1, 0, 0}},
		{"spaces", "[5](0 0 1 0 0)", linalg.Vector{0, 0, 1, 0, 0}},
		{"mixed separators", "[5](0, 0 ,, 1\n0\t0)", linalg.Vector{0, 0, 1, 0, 0}},
		{"newline per element", "[3](1\n2\n3)", linalg.Vector{1, 2, 3}},
		{"leading whitespace", "  [ 2 ] ( 1.5 , -2 ) ", linalg.Vector{1.5, -2}},
		{"exponents", "[3](1e3,-2.5E-1,.5)", linalg.Vector{1000, -0.25, 0.5}},
		{"trailing separator", "[2](1, 2, )", linalg.Vector{1, 2}},
		{"empty", "[0]()", linalg.Vector{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literal.ParseVector(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVector_SpecialValues(t *testing.T) {
	got, err := literal.ParseVector("[3](inf,-inf,nan)")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, math.IsInf(got[0], 1))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.IsNaN(got[2]))
}

func TestParseVector_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pos      int
		expected string
	}{
		{"missing open bracket", "test", 0, "'['"},
		{"empty input", "", 0, "'['"},
		{"missing size", "[test", 1, "integer size"},
		{"negative size", "[-1](1)", 1, "non-negative size"},
		{"missing close bracket", "[5[", 2, "']'"},
		{"missing open paren", "[5]test", 3, "'('"},
		{"truncated after separator", "[5](1, ", 7, "')'"},
		{"truncated after value", "[5](1", 5, "')'"},
		{"wrong closer", "[5](1,2,3,4,5]", 13, "')'"},
		{"non numeric element", "[2](1,x)", 6, "number"},
		{"too few elements", "[5](1,2,3)", 9, "5 elements, got 3"},
		{"too many elements", "[2](1,2,3)", 9, "2 elements, got 3"},
		{"trailing characters", "[2](1,2)x", 8, "end of input after ')'"},
		{"huge size", "[100000000000000000](1)", 22, "100000000000000000 elements, got 1"},
		{"size out of int range", "[99999999999999999999](1)", 1, "integer size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := literal.ParseVector(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMalformedLiteral))
			assert.Equal(t, domain.KindMalformedLiteral, domain.KindOf(err))

			var litErr *domain.MalformedLiteralError
			require.ErrorAs(t, err, &litErr)
			assert.Equal(t, tt.pos, litErr.Pos)
			assert.Equal(t, tt.expected, litErr.Expected)
			assert.Equal(t, tt.input, litErr.Input)
		})
	}
}

func TestParseMatrix(t *testing.T) {
	m, err := literal.ParseMatrix("[5,3]((1,2,3)(4,5,6)(7,8,9)(10,11,12)(13,14,15))")
	require.NoError(t, err)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 3, m.Cols())

	want := make([]float64, 15)
	for i := range want {
		want[i] = float64(i + 1)
	}
	assert.Equal(t, want, m.RawRowMajor())
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, linalg.Vector{13, 14, 15}, m.Row(4))
}

func TestParseMatrix_RowSeparators(t *testing.T) {
	m, err := literal.ParseMatrix("[3,1]((1)(2),(3))")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, m.RawRowMajor())

	m, err = literal.ParseMatrix("[2,2]( (1 2)\n (3, 4) )")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, m.RawRowMajor())
}

func TestParseMatrix_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pos      int
		expected string
	}{
		{"missing open bracket", "test", 0, "'['"},
		{"missing rows", "[test", 1, "integer size"},
		{"missing comma", "[5[", 2, "','"},
		{"missing cols", "[5,c", 3, "integer size"},
		{"missing close bracket", "[5,3[", 4, "']'"},
		{"missing open paren", "[5,3]test", 5, "'('"},
		{"missing row open", "[5,3](test", 6, "'(' to open row 1"},
		{"unterminated row", "[5,3]((1,", 9, "')' to close row 1"},
		{"wrong row closer", "[5,3]((1,2,3]", 12, "')' to close row 1"},
		{"wrong third row closer", "[5,1]((1)(2)(3[", 14, "')' to close row 3"},
		{"fourth row malformed", "[5,1]((1)(2)(3)[", 15, "'(' to open row 4"},
		{"extra input after rows", "[3,1]((1)(2),(3)[", 16, "')' to close matrix"},
		{"unterminated matrix", "[1,1]((1)", 9, "')' to close matrix"},
		{"short row", "[2,2]((1)(2,3))", 8, "2 elements, got 1"},
		{"missing rows at close", "[3,1]((1)(2))", 12, "3 rows, got 2"},
		{"trailing characters", "[1,1]((1)) ;", 11, "end of input after ')'"},
		{"huge shape", "[100000000000,100000000000]((1))", 30, "100000000000 elements, got 1"},
		{"huge row count", "[100000000000,0](()())", 21, "100000000000 rows, got 2"},
		{"overflowing shape", "[9223372036854775807,9223372036854775807]((1))", 44, "9223372036854775807 elements, got 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := literal.ParseMatrix(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedLiteral)

			var litErr *domain.MalformedLiteralError
			require.ErrorAs(t, err, &litErr)
			assert.Equal(t, tt.pos, litErr.Pos)
			assert.Equal(t, tt.expected, litErr.Expected)
		})
	}
}
