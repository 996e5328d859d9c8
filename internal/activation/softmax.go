package activation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/neural/internal/matrix"
	"github.com/born-ml/neural/internal/parallel"
)

// rowConfig is the split policy for the per-row Jacobian loop.
var rowConfig = parallel.DefaultConfig()

// ForwardSoftmax normalizes each row of input to e^x / Σ e^x.
//
// Inputs are exponentiated as given, without subtracting the row maximum.
// A row whose exponentials sum to exactly zero (an empty row, or one where
// every e^x underflowed) comes out as all zeros.
func ForwardSoftmax(input *matrix.Matrix) *matrix.Matrix {
	return input.MapRows(softmaxRow)
}

func softmaxRow(row []float64) {
	for j, x := range row {
		row[j] = math.Exp(x)
	}
	sum := floats.Sum(row)
	for j := range row {
		if sum == 0 {
			row[j] = 0
		} else {
			row[j] /= sum
		}
	}
}

// SoftmaxJacobian returns the M×M Jacobian of softmax at a 1×M output row:
//
//	J = diag(out) − outᵀ·out,  J[i][j] = out[j]·(δij − out[i])
func SoftmaxJacobian(outRow *matrix.Matrix) (*matrix.Matrix, error) {
	if outRow.Rows() != 1 {
		return nil, fmt.Errorf("softmax jacobian: %w: want a single row, got %dx%d",
			ErrShapeMismatch, outRow.Rows(), outRow.Cols())
	}

	outer, err := outRow.T().Mul(outRow)
	if err != nil {
		return nil, fmt.Errorf("softmax jacobian: %w", err)
	}
	jacobian, err := matrix.Diag(outRow.RowData(0)).Sub(outer)
	if err != nil {
		return nil, fmt.Errorf("softmax jacobian: %w", err)
	}
	return jacobian, nil
}

// BackwardSoftmax returns, for every row i, prevGrad_i · J(out_i).
//
// Softmax couples every output in a row to every input in that row, so the
// gradient is a row-vector times Jacobian product rather than an
// elementwise scale.
func BackwardSoftmax(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.SameShape(out, prevGrad); err != nil {
		return nil, fmt.Errorf("softmax backward: %w", err)
	}

	grad := matrix.New(out.Dims())
	errs := make([]error, out.Rows())
	parallel.For(out.Rows(), func(i int) {
		errs[i] = softmaxRowGrad(grad, out, prevGrad, i)
	}, rowConfig)

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("softmax backward: %w", err)
	}
	return grad, nil
}

// softmaxRowGrad writes row i of the softmax gradient into grad.
func softmaxRowGrad(grad, out, prevGrad *matrix.Matrix, i int) error {
	jacobian, err := SoftmaxJacobian(out.Row(i))
	if err != nil {
		return err
	}
	product, err := prevGrad.Row(i).Mul(jacobian)
	if err != nil {
		return err
	}
	return grad.SetRow(i, product)
}
