package activation

import (
	"errors"

	"github.com/born-ml/neural/internal/matrix"
)

var (
	// ErrShapeMismatch is returned by backward kernels when out and prevGrad
	// differ in shape, and by SoftmaxJacobian when given more than one row.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	// ErrUnrecognizedActivation marks a tag outside the Activation enumeration.
	ErrUnrecognizedActivation = errors.New("unrecognized activation")
)
