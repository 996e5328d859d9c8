package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/neural/internal/matrix"
)

func TestSoftmax_Example(t *testing.T) {
	out := Forward(rows(t, []float64{1, 2, 3}), Softmax)
	assert.InDeltaSlice(t, []float64{0.0900, 0.2447, 0.6652}, out.Data(), 1e-4)

	grad, err := Backward(out, rows(t, []float64{1, 0, 0}), Softmax)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.0819, -0.0220, -0.0599}, grad.Data(), 1e-4)

	// Same thing written as out ⊙ (e0 − out[0]).
	s := out.Data()
	want := []float64{s[0] * (1 - s[0]), s[1] * (0 - s[0]), s[2] * (0 - s[0])}
	assert.InDeltaSlice(t, want, grad.Data(), 1e-12)
}

func TestSoftmax_Simplex(t *testing.T) {
	out := ForwardSoftmax(sample(t, 5, 7))

	for i := 0; i < out.Rows(); i++ {
		row := out.RowData(i)
		assert.InDelta(t, 1.0, floats.Sum(row), 1e-9, "row %d", i)
		for j, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "row %d col %d", i, j)
		}
	}
}

func TestSoftmax_RowsIndependent(t *testing.T) {
	m := rows(t, []float64{1, 2, 3}, []float64{100, 100, 100})
	out := ForwardSoftmax(m)

	single := ForwardSoftmax(rows(t, []float64{1, 2, 3}))
	assert.Equal(t, single.Data(), out.RowData(0))
	assert.InDeltaSlice(t, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, out.RowData(1), 1e-15)
}

func TestSoftmax_ZeroSumRow(t *testing.T) {
	// Every e^x underflows to 0.
	out := ForwardSoftmax(rows(t, []float64{-1000, -1000}, []float64{0, 0}))
	assert.Equal(t, []float64{0, 0}, out.RowData(0))
	assert.Equal(t, []float64{0.5, 0.5}, out.RowData(1))
}

func TestSoftmax_EmptyRows(t *testing.T) {
	out := ForwardSoftmax(matrix.New(2, 0))
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 0, c)

	grad, err := BackwardSoftmax(out, matrix.New(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, grad.Rows())
}

func TestSoftmaxJacobian_Symmetric(t *testing.T) {
	out := ForwardSoftmax(rows(t, []float64{0.3, -1.2, 2.5, 0.0}))
	jac, err := SoftmaxJacobian(out)
	require.NoError(t, err)

	m := out.Cols()
	require.Equal(t, m, jac.Rows())
	require.Equal(t, m, jac.Cols())

	s := out.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			assert.Equal(t, jac.At(i, j), jac.At(j, i), "J[%d][%d]", i, j)

			delta := 0.0
			if i == j {
				delta = 1
			}
			assert.InDelta(t, s[j]*(delta-s[i]), jac.At(i, j), 1e-15)
		}
		assert.InDelta(t, 0.0, floats.Sum(jac.RowData(i)), 1e-9, "row %d", i)
		assert.InDelta(t, 0.0, floats.Sum(jac.T().RowData(i)), 1e-9, "col %d", i)
	}
}

func TestSoftmaxJacobian_RequiresSingleRow(t *testing.T) {
	_, err := SoftmaxJacobian(matrix.New(2, 3))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBackwardSoftmax_MatchesClosedForm(t *testing.T) {
	out := ForwardSoftmax(sample(t, 4, 5))
	g := sample(t, 4, 5).Apply(func(v float64) float64 { return math.Sin(v) })

	grad, err := BackwardSoftmax(out, g)
	require.NoError(t, err)

	// grad_j = s_j · (g_j − Σ_i g_i·s_i)
	for i := 0; i < out.Rows(); i++ {
		s, gi := out.RowData(i), g.RowData(i)
		dot := floats.Dot(s, gi)
		for j := range s {
			assert.InDelta(t, s[j]*(gi[j]-dot), grad.At(i, j), 1e-12, "row %d col %d", i, j)
		}
	}
}

func TestBackwardSoftmax_ManyRows(t *testing.T) {
	// Enough rows for the row loop to fan out on multi-core machines.
	out := ForwardSoftmax(sample(t, 300, 4))
	g := sample(t, 300, 4)

	grad, err := BackwardSoftmax(out, g)
	require.NoError(t, err)

	for i := 0; i < out.Rows(); i++ {
		want, err := BackwardSoftmax(out.Row(i), g.Row(i))
		require.NoError(t, err)
		assert.Equal(t, want.Data(), grad.RowData(i), "row %d", i)
	}
}

func TestBackwardSoftmax_ShapeMismatch(t *testing.T) {
	_, err := BackwardSoftmax(matrix.New(1, 3), matrix.New(1, 4))
	require.ErrorIs(t, err, ErrShapeMismatch)
}
