// Package mathops provides the scientific helpers served alongside the
// expression evaluator: factorial and Fibonacci on arbitrary-precision
// integers, descriptive statistics, quadratic roots, angle conversion, and
// trigonometric wrappers.
package mathops

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Factorial returns n!. n must be non-negative.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errors.New("factorial is not defined for negative numbers")
	}
	return new(big.Int).MulRange(1, int64(n)), nil
}

// Fibonacci returns the nth Fibonacci number, with Fibonacci(0) == 0 and
// Fibonacci(1) == 1. n must be non-negative.
func Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, errors.New("fibonacci is not defined for negative indices")
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

// Root is one solution of a quadratic equation.
type Root struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag,omitempty"`
}

// Quadratic describes the solutions of ax² + bx + c = 0.
type Quadratic struct {
	Equation     string  `json:"equation"`
	Discriminant float64 `json:"discriminant"`
	Solutions    [2]Root `json:"solutions"`
}

// SolveQuadratic solves ax² + bx + c = 0. a must be nonzero. A negative
// discriminant yields a conjugate pair of complex roots.
func SolveQuadratic(a, b, c float64) (*Quadratic, error) {
	if a == 0 {
		return nil, errors.New("coefficient 'a' cannot be zero in a quadratic equation")
	}
	q := &Quadratic{
		Equation:     fmt.Sprintf("%gx² + %gx + %g = 0", a, b, c),
		Discriminant: b*b - 4*a*c,
	}
	if q.Discriminant >= 0 {
		d := math.Sqrt(q.Discriminant)
		q.Solutions[0] = Root{Real: (-b + d) / (2 * a)}
		q.Solutions[1] = Root{Real: (-b - d) / (2 * a)}
	} else {
		re := -b / (2 * a)
		im := math.Sqrt(-q.Discriminant) / (2 * a)
		q.Solutions[0] = Root{Real: re, Imag: im}
		q.Solutions[1] = Root{Real: re, Imag: -im}
	}
	return q, nil
}

// ConvertAngle converts an angle between deg, rad, and grad, passing through
// radians as the intermediate unit.
func ConvertAngle(angle float64, from, to string) (float64, error) {
	var rad float64
	switch from {
	case "deg":
		rad = angle * (math.Pi / 180)
	case "grad":
		rad = angle * (math.Pi / 200)
	case "rad":
		rad = angle
	default:
		return 0, fmt.Errorf("unknown angle unit %q: units must be one of deg, rad, grad", from)
	}
	switch to {
	case "deg":
		return rad * (180 / math.Pi), nil
	case "grad":
		return rad * (200 / math.Pi), nil
	case "rad":
		return rad, nil
	}
	return 0, fmt.Errorf("unknown angle unit %q: units must be one of deg, rad, grad", to)
}

// Trig applies sin, cos, or tan to an angle in radians.
func Trig(angle float64, fn string) (float64, error) {
	switch fn {
	case "sin":
		return math.Sin(angle), nil
	case "cos":
		return math.Cos(angle), nil
	case "tan":
		return math.Tan(angle), nil
	}
	return 0, fmt.Errorf("unknown trigonometric function %q", fn)
}

// Hyperbolic applies sinh, cosh, or tanh to an angle in radians.
func Hyperbolic(angle float64, fn string) (float64, error) {
	switch fn {
	case "sinh":
		return math.Sinh(angle), nil
	case "cosh":
		return math.Cosh(angle), nil
	case "tanh":
		return math.Tanh(angle), nil
	}
	return 0, fmt.Errorf("unknown hyperbolic function %q", fn)
}
