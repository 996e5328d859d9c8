// Package main provides the neural CLI for evaluating activations by hand.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/neural/nn"
)

const version = "v0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "neural %s\n", version)
	case "forward":
		err = runForward(args[1:], stdout)
	case "backward":
		err = runBackward(args[1:], stdout)
	case "jacobian":
		err = runJacobian(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}

	if err != nil {
		fmt.Fprintf(stderr, "neural: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "neural %s - activation forward/backward calculator\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                          Show version")
	fmt.Fprintln(w, "  forward  <kind> <matrix>         Apply an activation")
	fmt.Fprintln(w, "  backward <kind> <out> <grad>     Apply an activation's gradient")
	fmt.Fprintln(w, "  jacobian <row>                   Softmax Jacobian of an output row")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Kinds: linear, logistic, tanh, relu, lrelu, softmax")
	fmt.Fprintln(w, "Matrices: rows separated by ';', values by ',' (e.g. \"1,2;3,4\")")
}

func runForward(args []string, w io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("forward: want <kind> <matrix>, got %d arguments", len(args))
	}
	kind, err := nn.ParseActivation(args[0])
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	input, err := parseMatrix(args[1])
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	return printMatrix(w, nn.Forward(input, kind))
}

func runBackward(args []string, w io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("backward: want <kind> <out> <grad>, got %d arguments", len(args))
	}
	kind, err := nn.ParseActivation(args[0])
	if err != nil {
		return fmt.Errorf("backward: %w", err)
	}
	out, err := parseMatrix(args[1])
	if err != nil {
		return fmt.Errorf("backward: out: %w", err)
	}
	prevGrad, err := parseMatrix(args[2])
	if err != nil {
		return fmt.Errorf("backward: grad: %w", err)
	}
	grad, err := nn.Backward(out, prevGrad, kind)
	if err != nil {
		return err
	}
	return printMatrix(w, grad)
}

func runJacobian(args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("jacobian: want <row>, got %d arguments", len(args))
	}
	row, err := parseMatrix(args[0])
	if err != nil {
		return fmt.Errorf("jacobian: %w", err)
	}
	jacobian, err := nn.SoftmaxJacobian(row)
	if err != nil {
		return err
	}
	return printMatrix(w, jacobian)
}

// parseMatrix reads "1,2;3,4" as a 2×2 matrix.
func parseMatrix(s string) (*nn.Matrix, error) {
	var rows [][]float64
	for _, line := range strings.Split(s, ";") {
		var row []float64
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", field, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return nn.MatrixFromRows(rows)
}

func printMatrix(w io.Writer, m *nn.Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		fields := make([]string, m.Cols())
		for j, v := range m.RowData(i) {
			fields[j] = strconv.FormatFloat(v, 'g', 6, 64)
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}
