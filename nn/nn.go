// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/neural/internal/activation"
	"github.com/born-ml/neural/internal/matrix"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix = matrix.Matrix

// NewMatrix creates a zero-filled rows × cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// MatrixFromSlice creates a matrix from row-major data.
//
// Example:
//
//	m, err := nn.MatrixFromSlice(2, 2, []float64{1, 2, 3, 4})
func MatrixFromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// MatrixFromRows creates a matrix from equally sized rows.
func MatrixFromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// Activation selects the nonlinearity applied by a layer.
type Activation = activation.Activation

// Kernel is the forward/backward pair of one activation.
type Kernel = activation.Kernel

// Activations
const (
	Linear    = activation.Linear
	Logistic  = activation.Logistic
	Tanh      = activation.Tanh
	ReLU      = activation.ReLU
	LeakyReLU = activation.LeakyReLU
	Softmax   = activation.Softmax
)

// LeakySlope is the slope LeakyReLU applies to non-positive inputs.
const LeakySlope = activation.LeakySlope

// Errors
var (
	ErrShapeMismatch          = activation.ErrShapeMismatch
	ErrUnrecognizedActivation = activation.ErrUnrecognizedActivation
)

// Forward applies the activation kind to a pre-activation matrix.
//
// Example:
//
//	out := nn.Forward(z, nn.ReLU)
func Forward(input *Matrix, kind Activation) *Matrix {
	return activation.Forward(input, kind)
}

// Backward returns the gradient with respect to the pre-activation input.
// out is what Forward returned and prevGrad the gradient with respect to it.
//
// Example:
//
//	grad, err := nn.Backward(out, dLdOut, nn.ReLU)
func Backward(out, prevGrad *Matrix, kind Activation) (*Matrix, error) {
	return activation.Backward(out, prevGrad, kind)
}

// SoftmaxJacobian returns the M×M softmax Jacobian at a 1×M output row.
func SoftmaxJacobian(outRow *Matrix) (*Matrix, error) {
	return activation.SoftmaxJacobian(outRow)
}

// ParseActivation returns the activation with the given name
// (linear, logistic, tanh, relu, lrelu, softmax, or a common alias).
func ParseActivation(name string) (Activation, error) {
	return activation.Parse(name)
}

// Activations returns every supported activation.
func Activations() []Activation {
	return activation.All()
}
