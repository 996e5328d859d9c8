package activation

import (
	"fmt"

	"github.com/born-ml/neural/internal/matrix"
)

// Kernel is a forward/backward pair for one activation.
type Kernel interface {
	// Forward returns the activated output for a pre-activation matrix.
	Forward(input *matrix.Matrix) *matrix.Matrix

	// Backward returns the gradient with respect to the pre-activation,
	// given the forward output and the gradient with respect to that output.
	// out and prevGrad must have the same shape.
	Backward(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error)
}

type kernel struct {
	forward  func(*matrix.Matrix) *matrix.Matrix
	backward func(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error)
}

func (k kernel) Forward(input *matrix.Matrix) *matrix.Matrix {
	return k.forward(input)
}

func (k kernel) Backward(out, prevGrad *matrix.Matrix) (*matrix.Matrix, error) {
	return k.backward(out, prevGrad)
}

// Indexed by Activation; the array length ties it to the enumeration.
var kernels = [numActivations]kernel{
	Linear:    {ForwardLinear, BackwardLinear},
	Logistic:  {ForwardLogistic, BackwardLogistic},
	Tanh:      {ForwardTanh, BackwardTanh},
	ReLU:      {ForwardReLU, BackwardReLU},
	LeakyReLU: {ForwardLeakyReLU, BackwardLeakyReLU},
	Softmax:   {ForwardSoftmax, BackwardSoftmax},
}

// Kernel returns the forward/backward pair for a.
//
// Panics if a is not a declared constant: tags are fixed when a network is
// built, so a bad one is a construction bug. Call Validate first when the tag
// comes from outside the program.
func (a Activation) Kernel() Kernel {
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("activation: %v", err))
	}
	return kernels[a]
}

// Forward applies the activation kind to input.
func Forward(input *matrix.Matrix, kind Activation) *matrix.Matrix {
	return kind.Kernel().Forward(input)
}

// Backward applies the gradient of activation kind. out is the matrix
// Forward returned and prevGrad the gradient flowing back from the next layer.
func Backward(out, prevGrad *matrix.Matrix, kind Activation) (*matrix.Matrix, error) {
	return kind.Kernel().Backward(out, prevGrad)
}
