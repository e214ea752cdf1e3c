package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dsrt-go/dsrt/internal/abi"
	"github.com/dsrt-go/dsrt/internal/host"
	"github.com/dsrt-go/dsrt/internal/kernel"
)

// Result is the outcome of one kernel operation. Exactly one of Scalar,
// Vector or Matrix is set.
type Result struct {
	Op     string    `json:"op"`
	Scalar *float64  `json:"scalar,omitempty"`
	Vector []float64 `json:"vector,omitempty"`
	Matrix []float64 `json:"matrix,omitempty"`
}

// Values returns the result as a flat slice.
func (r Result) Values() []float64 {
	switch {
	case r.Scalar != nil:
		return []float64{*r.Scalar}
	case r.Matrix != nil:
		return r.Matrix
	default:
		return r.Vector
	}
}

func (r Result) String() string {
	switch {
	case r.Scalar != nil:
		return formatFloat(*r.Scalar)
	case r.Matrix != nil:
		var sb strings.Builder
		for row := 0; row < 4; row++ {
			if row > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(formatList(r.Matrix[row*4:row*4+4], " "))
		}
		return sb.String()
	default:
		return "(" + formatList(r.Vector, ", ") + ")"
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatList(vals []float64, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, sep)
}

type opSpec struct {
	arity int
	run   func(ctx context.Context, k host.Kernel, args []float64) (Result, error)
}

func scalarResult(v float64, err error) (Result, error) {
	return Result{Scalar: &v}, err
}

func vecArg(args []float64) kernel.Vec3 {
	return kernel.Vec3(args[:3])
}

func matArg(args []float64) kernel.Mat4 {
	return kernel.Mat4(args[:16])
}

var ops = map[string]opSpec{
	abi.SymAdd: {2, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		return scalarResult(k.Add(ctx, args[0], args[1]))
	}},
	abi.SymDot3: {6, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		return scalarResult(k.Dot3(ctx, vecArg(args), vecArg(args[3:])))
	}},
	abi.SymLength3: {3, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		return scalarResult(k.Length3(ctx, vecArg(args)))
	}},
	abi.SymCross: {6, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		v, err := k.Cross(ctx, vecArg(args), vecArg(args[3:]))
		return Result{Vector: v[:]}, err
	}},
	abi.SymNormalize: {3, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		v, err := k.Normalize(ctx, vecArg(args))
		return Result{Vector: v[:]}, err
	}},
	abi.SymMat4Identity: {0, func(ctx context.Context, k host.Kernel, _ []float64) (Result, error) {
		m, err := k.Mat4Identity(ctx)
		return Result{Matrix: m[:]}, err
	}},
	abi.SymMat4Transpose: {16, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		m, err := k.Mat4Transpose(ctx, matArg(args))
		return Result{Matrix: m[:]}, err
	}},
	abi.SymMat4Multiply: {32, func(ctx context.Context, k host.Kernel, args []float64) (Result, error) {
		m, err := k.Mat4Multiply(ctx, matArg(args), matArg(args[16:]))
		return Result{Matrix: m[:]}, err
	}},
}

// OpNames returns the operation names in export order.
func OpNames() []string {
	return slices.Clone(abi.Symbols)
}

// Evaluate runs op on k with the given arguments.
func Evaluate(ctx context.Context, k host.Kernel, op string, args []float64) (Result, error) {
	entry, ok := ops[op]
	if !ok {
		return Result{}, fmt.Errorf("unknown operation %q: must be one of %v", op, OpNames())
	}
	if len(args) != entry.arity {
		return Result{}, fmt.Errorf("%s: expected %d arguments, got %d", op, entry.arity, len(args))
	}

	res, err := entry.run(ctx, k, args)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op, err)
	}
	res.Op = op
	return res, nil
}

// ParseArgs parses decimal float arguments.
func ParseArgs(args []string) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}
