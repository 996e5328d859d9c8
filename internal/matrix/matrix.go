// Package matrix implements the dense row-major matrix consumed by the
// activation kernels.
//
// Matrix is a value-semantics wrapper around gonum's mat.Dense: every
// operation except Set and SetRow returns freshly allocated storage, so a
// caller can hand a matrix to any function in this module and keep using it.
//
// Unlike mat.Dense, a Matrix may have zero rows or zero columns.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/neural/internal/parallel"
)

// rowConfig is the split policy for row loops. It is never modified.
var rowConfig = parallel.DefaultConfig()

// Matrix is a rows × cols grid of float64 values.
type Matrix struct {
	rows, cols int
	dense      *mat.Dense // nil when rows*cols == 0
}

// New creates a zero-filled rows × cols matrix.
// Panics if either dimension is negative.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative dimension %dx%d", rows, cols))
	}
	m := &Matrix{rows: rows, cols: cols}
	if rows > 0 && cols > 0 {
		m.dense = mat.NewDense(rows, cols, nil)
	}
	return m
}

// FromSlice creates a rows × cols matrix from row-major data.
// The data is copied.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative dimension %dx%d", ErrShapeMismatch, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrShapeMismatch, len(data), rows, cols)
	}
	m := New(rows, cols)
	if m.dense != nil {
		copy(m.dense.RawMatrix().Data, data)
	}
	return m, nil
}

// FromRows creates a matrix from a slice of equally sized rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return FromSlice(len(rows), cols, data)
}

// Diag creates a square matrix with v on its diagonal.
func Diag(v []float64) *Matrix {
	n := len(v)
	m := New(n, n)
	for i, x := range v {
		m.dense.Set(i, i, x)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// Len returns rows*cols.
func (m *Matrix) Len() int { return m.rows * m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.dense.At(i, j)
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.dense.Set(i, j, v)
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index [%d,%d] out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

// Row returns a copy of row i as a 1 × cols matrix.
func (m *Matrix) Row(i int) *Matrix {
	row, err := FromSlice(1, m.cols, m.RowData(i))
	if err != nil {
		panic(fmt.Sprintf("matrix: row %d: %v", i, err))
	}
	return row
}

// RowData returns a copy of row i as a slice.
func (m *Matrix) RowData(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d", i, m.rows, m.cols))
	}
	out := make([]float64, m.cols)
	if m.dense != nil {
		copy(out, m.dense.RawRowView(i))
	}
	return out
}

// SetRow overwrites row i with the single row of src.
func (m *Matrix) SetRow(i int, src *Matrix) error {
	if src.rows != 1 || src.cols != m.cols {
		return fmt.Errorf("%w: cannot write %dx%d into a row of %dx%d",
			ErrShapeMismatch, src.rows, src.cols, m.rows, m.cols)
	}
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matrix: row %d out of range for %dx%d", i, m.rows, m.cols))
	}
	if m.dense != nil {
		m.dense.SetRow(i, src.dense.RawRowView(0))
	}
	return nil
}

// Data returns a row-major copy of the elements.
func (m *Matrix) Data() []float64 {
	out := make([]float64, m.Len())
	for i := 0; i < m.rows && m.dense != nil; i++ {
		copy(out[i*m.cols:(i+1)*m.cols], m.dense.RawRowView(i))
	}
	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols}
	if m.dense != nil {
		out.dense = mat.DenseCopyOf(m.dense)
	}
	return out
}

// T returns the transpose as a new matrix.
func (m *Matrix) T() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows}
	if m.dense != nil {
		out.dense = mat.DenseCopyOf(m.dense.T())
	}
	return out
}

// Mul returns the matrix product m·b.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if m.cols != b.rows {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d",
			ErrShapeMismatch, m.rows, m.cols, b.rows, b.cols)
	}
	// An empty inner dimension still yields a rows × cols zero matrix.
	if m.dense == nil || b.dense == nil {
		return New(m.rows, b.cols), nil
	}
	var product mat.Dense
	product.Mul(m.dense, b.dense)
	return &Matrix{rows: m.rows, cols: b.cols, dense: &product}, nil
}

// Sub returns m − b.
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	if err := SameShape(m, b); err != nil {
		return nil, err
	}
	if m.dense == nil {
		return New(m.rows, m.cols), nil
	}
	var diff mat.Dense
	diff.Sub(m.dense, b.dense)
	return &Matrix{rows: m.rows, cols: m.cols, dense: &diff}, nil
}

// Apply returns a new matrix holding fn(v) for every element v of m.
func (m *Matrix) Apply(fn func(v float64) float64) *Matrix {
	out := m.Clone()
	if out.dense == nil {
		return out
	}
	parallel.For(out.rows, func(i int) {
		row := out.dense.RawRowView(i)
		for j, v := range row {
			row[j] = fn(v)
		}
	}, rowConfig)
	return out
}

// MapRows returns a copy of m after calling fn on each of its rows. fn
// receives the copy's row storage and modifies it in place; rows may be
// handed to fn concurrently, so fn must only touch the slice it is given.
func (m *Matrix) MapRows(fn func(row []float64)) *Matrix {
	out := m.Clone()
	if out.dense == nil {
		// Rows of an empty-width matrix are still visited.
		for i := 0; i < out.rows; i++ {
			fn([]float64{})
		}
		return out
	}
	parallel.For(out.rows, func(i int) {
		fn(out.dense.RawRowView(i))
	}, rowConfig)
	return out
}

// ApplyPair returns a new matrix holding fn(a, b) for every pair of
// same-position elements of m and other.
func (m *Matrix) ApplyPair(other *Matrix, fn func(a, b float64) float64) (*Matrix, error) {
	if err := SameShape(m, other); err != nil {
		return nil, err
	}
	out := m.Clone()
	if out.dense == nil {
		return out, nil
	}
	parallel.For(out.rows, func(i int) {
		row := out.dense.RawRowView(i)
		src := other.dense.RawRowView(i)
		for j, v := range row {
			row[j] = fn(v, src[j])
		}
	}, rowConfig)
	return out, nil
}

// Equal reports whether m and b have the same shape and identical elements.
func (m *Matrix) Equal(b *Matrix) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	if m.dense == nil {
		return true
	}
	return mat.Equal(m.dense, b.dense)
}

// EqualApprox reports whether m and b have the same shape and every pair of
// elements is within tol, absolutely or relatively.
func (m *Matrix) EqualApprox(b *Matrix, tol float64) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	if m.dense == nil {
		return true
	}
	return mat.EqualApprox(m.dense, b.dense, tol)
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	if m.dense == nil {
		return fmt.Sprintf("[](%dx%d)", m.rows, m.cols)
	}
	return fmt.Sprintf("%v", mat.Formatted(m.dense, mat.Squeeze()))
}

// SameShape returns an error wrapping ErrShapeMismatch unless a and b have
// identical dimensions.
func SameShape(a, b *Matrix) error {
	if a.rows != b.rows || a.cols != b.cols {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	return nil
}
