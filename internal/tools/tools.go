// Package tools binds the math packages to the MCP tool surface.
package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Operand parameters accept a JSON number or a constant name, so their
// schemas are written out raw; the property builders have no union type.
var (
	unarySchema = json.RawMessage(`{
		"type": "object",
		"properties": {
			"a": {
				"type": ["number", "string"],
				"description": "The number to operate on, or the constant name 'pi' or 'e'"
			},
			"operation": {
				"type": "string",
				"enum": ["sqrt"],
				"description": "The operation to perform"
			}
		},
		"required": ["a", "operation"]
	}`)
	binarySchema = json.RawMessage(`{
		"type": "object",
		"properties": {
			"a": {
				"type": ["number", "string"],
				"description": "First operand: a number or the constant name 'pi' or 'e'"
			},
			"b": {
				"type": ["number", "string"],
				"description": "Second operand: a number or the constant name 'pi' or 'e'"
			},
			"operation": {
				"type": "string",
				"enum": ["+", "-", "*", "/", "**", "log"],
				"description": "The operation to perform. 'log' computes the logarithm of b in base a."
			}
		},
		"required": ["a", "b", "operation"]
	}`)
)

// Register defines every tool and its handler on s.
func Register(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("calculate",
		mcp.WithDescription("Evaluate a mathematical expression. The available operations are +, -, *, /, **, sqrt(x) and log(x, base), with parentheses for grouping."),
		mcp.WithString("expression",
			mcp.Required(),
			mcp.Description("The expression to evaluate, e.g. \"2 + 3 * 4\""),
		),
	), handleCalculate)

	s.AddTool(mcp.NewToolWithRawSchema("unary_operation",
		"Perform a unary operation on a number.", unarySchema,
	), handleUnary)

	s.AddTool(mcp.NewToolWithRawSchema("binary_operation",
		"Perform a basic arithmetic operation on two numbers.", binarySchema,
	), handleBinary)

	s.AddTool(mcp.NewTool("factorial",
		mcp.WithDescription("Calculate the factorial of a non-negative integer."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("A non-negative integer")),
	), handleFactorial)

	s.AddTool(mcp.NewTool("fibonacci",
		mcp.WithDescription("Calculate the nth Fibonacci number."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("A non-negative position in the Fibonacci sequence")),
	), handleFibonacci)

	s.AddTool(mcp.NewTool("stats",
		mcp.WithDescription("Calculate statistical measures (mean, median, mode, min, max, range, variance, standard deviation) for a list of numbers."),
		mcp.WithArray("numbers",
			mcp.Required(),
			mcp.Description("The numbers to analyze"),
			mcp.Items(map[string]any{"type": "number"}),
		),
	), handleStats)

	s.AddTool(mcp.NewTool("quadratic",
		mcp.WithDescription("Solve a quadratic equation of the form ax² + bx + c = 0."),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("Coefficient of x², must be nonzero")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Coefficient of x")),
		mcp.WithNumber("c", mcp.Required(), mcp.Description("Constant term")),
	), handleQuadratic)

	s.AddTool(mcp.NewTool("angle_convert",
		mcp.WithDescription("Convert an angle between degrees, radians, and gradians."),
		mcp.WithNumber("angle", mcp.Required(), mcp.Description("The angle value to convert")),
		mcp.WithString("from_unit", mcp.Required(), mcp.Description("The unit to convert from"), mcp.Enum("deg", "rad", "grad")),
		mcp.WithString("to_unit", mcp.Required(), mcp.Description("The unit to convert to"), mcp.Enum("deg", "rad", "grad")),
	), handleAngleConvert)

	s.AddTool(mcp.NewTool("trig",
		mcp.WithDescription("Apply a trigonometric function to an angle in radians."),
		mcp.WithNumber("angle", mcp.Required(), mcp.Description("The angle in radians")),
		mcp.WithString("function", mcp.Required(), mcp.Description("The function to apply"), mcp.Enum("sin", "cos", "tan")),
	), handleTrig)

	s.AddTool(mcp.NewTool("hyperbolic",
		mcp.WithDescription("Apply a hyperbolic function to an angle in radians."),
		mcp.WithNumber("angle", mcp.Required(), mcp.Description("The angle in radians")),
		mcp.WithString("function", mcp.Required(), mcp.Description("The function to apply"), mcp.Enum("sinh", "cosh", "tanh")),
	), handleHyperbolic)
}
