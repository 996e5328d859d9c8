package activation

import (
	"fmt"
	"math"

	"github.com/born-ml/neural/internal/matrix"
)

// LeakySlope is the slope LeakyReLU applies to non-positive inputs.
const LeakySlope = 0.01

// ForwardLinear returns a copy of input.
func ForwardLinear(input *matrix.Matrix) *matrix.Matrix {
	return input.Clone()
}

// BackwardLinear returns a copy of prevGrad.
func BackwardLinear(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.SameShape(out, prevGrad); err != nil {
		return nil, fmt.Errorf("linear backward: %w", err)
	}
	return prevGrad.Clone(), nil
}

// ForwardLogistic applies σ(x) = 1 / (1 + e^-x).
func ForwardLogistic(input *matrix.Matrix) *matrix.Matrix {
	return input.Apply(func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	})
}

// BackwardLogistic scales prevGrad by σ' = out·(1 − out).
func BackwardLogistic(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	return backwardElementwise("logistic", out, prevGrad, func(f float64) float64 {
		return f * (1.0 - f)
	})
}

// ForwardTanh applies tanh(x).
func ForwardTanh(input *matrix.Matrix) *matrix.Matrix {
	return input.Apply(math.Tanh)
}

// BackwardTanh scales prevGrad by tanh' = 1 − out².
func BackwardTanh(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	return backwardElementwise("tanh", out, prevGrad, func(f float64) float64 {
		return 1.0 - f*f
	})
}

// ForwardReLU applies max(0, x).
func ForwardReLU(input *matrix.Matrix) *matrix.Matrix {
	return input.Apply(func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

// BackwardReLU passes prevGrad through where out > 0 and zeroes it elsewhere.
//
// A zero output gets derivative 0: it can only come from a non-positive input,
// which is the flat side of the function.
func BackwardReLU(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	return backwardElementwise("relu", out, prevGrad, func(f float64) float64 {
		if f > 0 {
			return 1
		}
		return 0
	})
}

// ForwardLeakyReLU applies x for x > 0 and LeakySlope·x otherwise.
func ForwardLeakyReLU(input *matrix.Matrix) *matrix.Matrix {
	return input.Apply(func(x float64) float64 {
		if x > 0 {
			return x
		}
		return LeakySlope * x
	})
}

// BackwardLeakyReLU scales prevGrad by 1 where out > 0 and by LeakySlope
// elsewhere, including at a zero output.
func BackwardLeakyReLU(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	return backwardElementwise("lrelu", out, prevGrad, func(f float64) float64 {
		if f > 0 {
			return 1
		}
		return LeakySlope
	})
}

// backwardElementwise returns prevGrad[i][j] · deriv(out[i][j]).
func backwardElementwise(name string, out, prevGrad *matrix.Matrix, deriv func(out float64) float64) (*matrix.Matrix, error) {
	grad, err := prevGrad.ApplyPair(out, func(g, f float64) float64 {
		return g * deriv(f)
	})
	if err != nil {
		return nil, fmt.Errorf("%s backward: %w", name, err)
	}
	return grad, nil
}
