package cast

import (
	"strings"

	"github.com/aretw0/sigcast/pkg/linalg"
	"github.com/aretw0/sigcast/pkg/literal"
)

// VectorCodec reads vector literals and renders vectors as "[ v0 v1 ... ];".
func VectorCodec() Codec[linalg.Vector] {
	return Codec[linalg.Vector]{
		Parse:   literal.ParseVector,
		Display: displayVector,
		Trace:   traceVector,
	}
}

// MatrixCodec reads matrix literals and renders matrices row by row.
func MatrixCodec() Codec[linalg.Matrix] {
	return Codec[linalg.Matrix]{
		Parse:   literal.ParseMatrix,
		Display: displayMatrix,
		Trace:   traceMatrix,
	}
}

func displayVector(v linalg.Vector) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, x := range v {
		b.WriteString(FormatFloat(x))
		b.WriteByte(' ')
	}
	b.WriteString(" ];\n")
	return b.String()
}

func traceVector(v linalg.Vector) string {
	var b strings.Builder
	for _, x := range v {
		b.WriteString(FormatFloat(x))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}

func displayMatrix(m linalg.Matrix) string {
	var b strings.Builder
	b.WriteString("[ ")
	for i := 0; i < m.Rows(); i++ {
		b.WriteString("[ ")
		for j := 0; j < m.Cols(); j++ {
			b.WriteString(FormatFloat(m.At(i, j)))
			b.WriteByte(' ')
		}
		if i != m.Rows()-1 {
			b.WriteString("]; ")
		} else {
			b.WriteString("] ")
		}
	}
	b.WriteString(" ];\n")
	return b.String()
}

func traceMatrix(m linalg.Matrix) string {
	var b strings.Builder
	for _, x := range m.RawRowMajor() {
		b.WriteString(FormatFloat(x))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	return b.String()
}
