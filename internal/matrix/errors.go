package matrix

import "errors"

// ErrShapeMismatch is returned when two matrices that must agree in shape do not.
var ErrShapeMismatch = errors.New("shape mismatch")
