// Package linalg holds the dense numeric containers carried by vector and
// matrix signals. Arithmetic is out of scope; only shape and storage live here.
package linalg

import (
	"fmt"
	"math"
)

// Vector is a dense column vector.
type Vector []float64

// Unit returns the size-n vector whose i-th element is 1.
func Unit(n, i int) Vector {
	v := make(Vector, n)
	if i >= 0 && i < n {
		v[i] = 1
	}
	return v
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns a copy of v that shares no storage with it.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return append(Vector{}, v...)
}

// Matrix is a dense matrix stored row-major.
type Matrix struct {
	rows, cols int
	data       []float64
}

// MatrixFromRowMajor wraps data, stored row-major, as a rows×cols matrix.
// The matrix takes ownership of data.
func MatrixFromRowMajor(rows, cols int, data []float64) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("negative shape %dx%d", rows, cols)
	}
	if cols != 0 && rows > math.MaxInt/cols || len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("%d values do not fill a %dx%d matrix", len(data), rows, cols)
	}
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// Clone returns a copy of m that shares no storage with it.
func (m Matrix) Clone() Matrix {
	m.data = m.RawRowMajor()
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set stores x at row i, column j.
func (m Matrix) Set(i, j int, x float64) { m.data[i*m.cols+j] = x }

// Row returns a copy of row i.
func (m Matrix) Row(i int) Vector {
	out := make(Vector, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// RawRowMajor returns a copy of the backing storage in row-major order.
func (m Matrix) RawRowMajor() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}
