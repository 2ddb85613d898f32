package expr

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Const resolves a named constant. The recognized names are "pi" and "e".
func Const(name string) (float64, bool) {
	switch name {
	case "pi":
		return math.Pi, true
	case "e":
		return math.E, true
	}
	return 0, false
}

// ResolveOperand converts a tool-layer operand into a number. Numeric values
// pass through, the strings "pi" and "e" resolve to the corresponding
// constants, and anything else is an InvalidOperandError. Resolution happens
// here, once; no symbolic value ever reaches Unary or Binary.
func ResolveOperand(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &InvalidOperandError{Value: v}
		}
		return f, nil
	case string:
		if c, ok := Const(v); ok {
			return c, nil
		}
		return 0, &InvalidOperandError{Value: v}
	}
	return 0, &InvalidOperandError{Value: v}
}

// Unary applies a named unary operation to a. The only unary operation is
// "sqrt".
func Unary(op string, a float64) (float64, error) {
	switch op {
	case "sqrt":
		if a < 0 {
			return 0, &DomainError{X: a, Op: "sqrt"}
		}
		return math.Sqrt(a), nil
	}
	return 0, &UnknownOperationError{Op: op}
}

// Binary applies a named binary operation to a and b. For "log" the result
// is the logarithm of b in base a; the base must be positive and not 1, and
// b must be positive. Exponentiation of a negative base by a non-integer
// exponent has no real result and is a DomainError.
func Binary(op string, a, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, &DivisionByZeroError{}
		}
		return a / b, nil
	case "**":
		if a == 0 && b < 0 {
			return 0, &DivisionByZeroError{}
		}
		r := math.Pow(a, b)
		if math.IsNaN(r) && !math.IsNaN(a) && !math.IsNaN(b) {
			return 0, &DomainError{X: a, Arg: 1, Op: "**"}
		}
		return r, nil
	case "log":
		if a <= 0 || a == 1 {
			return 0, &DomainError{X: a, Arg: 1, Op: "log"}
		}
		if b <= 0 {
			return 0, &DomainError{X: b, Arg: 2, Op: "log"}
		}
		return math.Log(b) / math.Log(a), nil
	}
	return 0, &UnknownOperationError{Op: op}
}

// FormatResult renders a result the way the calculator reports it: values
// with no fractional part print as integers, so sqrt(4) reports "2" rather
// than "2.0".
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// UnknownOperationError is an error indicating an operation name outside the
// dispatch table.
type UnknownOperationError struct {
	// Op is the operation name that was not understood.
	Op string
}

func (err *UnknownOperationError) Error() string {
	return "unknown operation " + strconv.Quote(err.Op)
}

// InvalidOperandError is an error indicating an operand that is neither a
// number nor a recognized constant name.
type InvalidOperandError struct {
	// Value is the operand that could not be resolved.
	Value any
}

func (err *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand: %v", err.Value)
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument, or 0 for unary operations.
	Arg int
	// Op is the operation name.
	Op string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Op != "" {
		r += " of " + err.Op
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// DivisionByZeroError is an error indicating a division with a zero divisor.
type DivisionByZeroError struct{}

func (err *DivisionByZeroError) Error() string {
	return "division by zero"
}
