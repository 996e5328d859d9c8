package activation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/neural/internal/matrix"
)

func rows(t testing.TB, values ...[]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(values)
	require.NoError(t, err)
	return m
}

// sample returns a deterministic rows × cols matrix with mixed signs and no
// zeros, so ReLU-family kernels stay away from their kink.
func sample(t testing.TB, r, c int) *matrix.Matrix {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		v := float64((i*7)%11) - 5.5 // -5.5 .. 4.5
		data[i] = v / 2
	}
	m, err := matrix.FromSlice(r, c, data)
	require.NoError(t, err)
	return m
}

// namedKernels lists each activation's kernels by name, independent of the
// dispatch table.
var namedKernels = map[Activation]struct {
	forward  func(*matrix.Matrix) *matrix.Matrix
	backward func(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error)
}{
	Linear:    {ForwardLinear, BackwardLinear},
	Logistic:  {ForwardLogistic, BackwardLogistic},
	Tanh:      {ForwardTanh, BackwardTanh},
	ReLU:      {ForwardReLU, BackwardReLU},
	LeakyReLU: {ForwardLeakyReLU, BackwardLeakyReLU},
	Softmax:   {ForwardSoftmax, BackwardSoftmax},
}
