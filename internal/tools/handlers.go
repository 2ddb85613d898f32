package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcp-suite/mathserver/expr"
	"github.com/mcp-suite/mathserver/mathops"
)

// Every handler reports bad input and math failures as MCP error results
// rather than Go errors, so a bad call never tears down the session.

func handleCalculate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := req.RequireString("expression")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := expr.Evaluate(expression)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(expr.FormatResult(v)), nil
}

func handleUnary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op, err := req.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a, err := operandArg(req, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := expr.Unary(op, a)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(expr.FormatResult(v)), nil
}

func handleBinary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op, err := req.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	a, err := operandArg(req, "a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := operandArg(req, "b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := expr.Binary(op, a, b)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(expr.FormatResult(v)), nil
}

func handleFactorial(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := req.RequireInt("n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	r, err := mathops.Factorial(n)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(r.String()), nil
}

func handleFibonacci(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := req.RequireInt("n")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	r, err := mathops.Fibonacci(n)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(r.String()), nil
}

func handleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	numbers, err := numbersArg(req, "numbers")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	r, err := mathops.Statistics(numbers)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(r)
}

func handleQuadratic(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := req.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := req.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := req.RequireFloat("c")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	r, err := mathops.SolveQuadratic(a, b, c)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(r)
}

// angleReading pairs a value with its unit in the angle_convert payload.
type angleReading struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func handleAngleConvert(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	angle, err := req.RequireFloat("angle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	from, err := req.RequireString("from_unit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := req.RequireString("to_unit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	converted, err := mathops.ConvertAngle(angle, from, to)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(struct {
		Original  angleReading `json:"original"`
		Converted angleReading `json:"converted"`
	}{
		Original:  angleReading{Value: angle, Unit: from},
		Converted: angleReading{Value: converted, Unit: to},
	})
}

func handleTrig(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	angle, err := req.RequireFloat("angle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fn, err := req.RequireString("function")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := mathops.Trig(angle, fn)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(expr.FormatResult(v)), nil
}

func handleHyperbolic(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	angle, err := req.RequireFloat("angle")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	fn, err := req.RequireString("function")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	v, err := mathops.Hyperbolic(angle, fn)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(expr.FormatResult(v)), nil
}

// operandArg fetches a required argument that may be a number or a constant
// name and resolves it to a number.
func operandArg(req mcp.CallToolRequest, key string) (float64, error) {
	v, ok := req.GetArguments()[key]
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", key)
	}
	return expr.ResolveOperand(v)
}

// numbersArg fetches a required array argument and converts its elements to
// floats.
func numbersArg(req mcp.CallToolRequest, key string) ([]float64, error) {
	v, ok := req.GetArguments()[key]
	if !ok {
		return nil, fmt.Errorf("required argument %q not found", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("argument %q must be an array of numbers", key)
	}
	numbers := make([]float64, len(raw))
	for i, e := range raw {
		f, ok := e.(float64)
		if !ok {
			return nil, fmt.Errorf("argument %q must contain only numbers, got %v", key, e)
		}
		numbers[i] = f
	}
	return numbers, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
