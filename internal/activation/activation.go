// Package activation implements layer activations and their gradients.
//
// Forward kernels map a layer's pre-activation matrix to its activated
// output. Backward kernels take that activated output together with the
// gradient arriving from the next layer and return the gradient for the
// previous one. Derivatives are computed from the forward output, not the
// pre-activation input, so a layer must keep its forward output around
// until its backward pass.
//
// Kernels never modify their arguments; each call allocates its result.
package activation

import (
	"fmt"
	"strings"
)

// Activation selects the nonlinearity applied by a layer.
type Activation int

// Supported activations.
const (
	Linear    Activation = iota // f(x) = x
	Logistic                    // f(x) = 1 / (1 + e^-x)
	Tanh                        // f(x) = tanh(x)
	ReLU                        // f(x) = max(0, x)
	LeakyReLU                   // f(x) = x if x > 0 else LeakySlope·x
	Softmax                     // row-wise e^x / Σ e^x

	numActivations
)

var names = [numActivations]string{
	Linear:    "linear",
	Logistic:  "logistic",
	Tanh:      "tanh",
	ReLU:      "relu",
	LeakyReLU: "lrelu",
	Softmax:   "softmax",
}

var aliases = map[string]Activation{
	"identity":   Linear,
	"sigmoid":    Logistic,
	"leaky_relu": LeakyReLU,
	"leakyrelu":  LeakyReLU,
}

// All returns every activation in declaration order.
func All() []Activation {
	all := make([]Activation, numActivations)
	for i := range all {
		all[i] = Activation(i)
	}
	return all
}

// String returns the canonical lowercase name.
func (a Activation) String() string {
	if a.Validate() != nil {
		return fmt.Sprintf("Activation(%d)", int(a))
	}
	return names[a]
}

// Validate returns an error wrapping ErrUnrecognizedActivation if a is not
// one of the declared constants.
func (a Activation) Validate() error {
	if a < 0 || a >= numActivations {
		return fmt.Errorf("%w: %d", ErrUnrecognizedActivation, int(a))
	}
	return nil
}

// Parse returns the activation with the given name. Matching ignores case and
// accepts the canonical names plus identity, sigmoid, leaky_relu and leakyrelu.
func Parse(name string) (Activation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if n == key {
			return Activation(i), nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedActivation, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []byte(names[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
