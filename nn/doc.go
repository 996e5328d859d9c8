// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides layer activations and the matrix type they operate on.
//
// # Overview
//
// This package contains:
//   - Activations: Linear, Logistic, Tanh, ReLU, LeakyReLU, Softmax
//   - Dispatch: Forward and Backward, selected by an Activation tag
//   - Matrix: dense row-major float64 matrix (backed by gonum)
//
// # Basic Usage
//
//	import "github.com/born-ml/neural/nn"
//
//	func main() {
//	    z, _ := nn.MatrixFromRows([][]float64{{1, 2, 3}})
//
//	    // Forward pass: keep the output, backward needs it
//	    out := nn.Forward(z, nn.Softmax)
//
//	    // Backward pass: gradient w.r.t. z from gradient w.r.t. out
//	    grad, err := nn.Backward(out, dLdOut, nn.Softmax)
//	}
//
// # Activations
//
// Elementwise:
//
//	nn.Linear     f(x) = x
//	nn.Logistic   f(x) = 1 / (1 + e^-x)
//	nn.Tanh       f(x) = tanh(x)
//	nn.ReLU       f(x) = max(0, x)
//	nn.LeakyReLU  f(x) = x if x > 0 else 0.01x
//
// Row-wise:
//
//	nn.Softmax    f(x)_j = e^x_j / Σ_k e^x_k  (per row)
//
// # Gradients
//
// Backward derivatives are computed from the forward output. A layer must
// therefore store what Forward returned, not its pre-activation input.
// Softmax backward multiplies each gradient row by the Jacobian of the
// matching output row; see SoftmaxJacobian.
//
// # Errors
//
// Backward returns an error wrapping ErrShapeMismatch when out and prevGrad
// differ in shape. An Activation outside the declared constants makes
// Forward and Backward panic; use ParseActivation or Activation.Validate
// when the tag comes from configuration.
package nn
