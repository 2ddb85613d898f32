package tools

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("unexpected content: %#v", res.Content)
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is not text: %#v", res.Content[0])
	}
	return tc.Text
}

func TestHandleCalculate(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{"precedence", "2 + 3 * 4", "14"},
		{"integral-sqrt", "sqrt(4)", "2"},
		{"right-assoc-pow", "2 ** 3 ** 2", "512"},
		{"fraction", "1 / 8", "0.125"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := handleCalculate(context.Background(), callReq("calculate", map[string]any{"expression": c.expr}))
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if res.IsError {
				t.Fatalf("%q reported an error: %s", c.expr, textOf(t, res))
			}
			if got := textOf(t, res); got != c.want {
				t.Errorf("%q: want %q, got %q", c.expr, c.want, got)
			}
		})
	}
}

func TestHandleCalculateErrors(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
	}{
		{"missing-arg", map[string]any{}},
		{"division-by-zero", map[string]any{"expression": "5 / 0"}},
		{"unclosed", map[string]any{"expression": "(2 + 3"}},
		{"empty", map[string]any{"expression": ""}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := handleCalculate(context.Background(), callReq("calculate", c.args))
			if err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if !res.IsError {
				t.Errorf("no error result for %v: %s", c.args, textOf(t, res))
			}
		})
	}
}

func TestHandleBinaryConstants(t *testing.T) {
	res, err := handleBinary(context.Background(), callReq("binary_operation", map[string]any{
		"a": "pi", "b": 2.0, "operation": "*",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.IsError {
		t.Fatalf("error result: %s", textOf(t, res))
	}
	if got := textOf(t, res); !strings.HasPrefix(got, "6.28318") {
		t.Errorf("pi * 2: got %q", got)
	}

	res, err = handleBinary(context.Background(), callReq("binary_operation", map[string]any{
		"a": "seven", "b": 2.0, "operation": "*",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("invalid operand accepted")
	}
}

func TestHandleUnary(t *testing.T) {
	res, err := handleUnary(context.Background(), callReq("unary_operation", map[string]any{
		"a": 16.0, "operation": "sqrt",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := textOf(t, res); got != "4" {
		t.Errorf("sqrt(16): got %q", got)
	}

	res, err = handleUnary(context.Background(), callReq("unary_operation", map[string]any{
		"a": -4.0, "operation": "sqrt",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("sqrt of a negative accepted")
	}
}

func TestHandleFactorial(t *testing.T) {
	res, err := handleFactorial(context.Background(), callReq("factorial", map[string]any{"n": 25.0}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := textOf(t, res); got != "15511210043330985984000000" {
		t.Errorf("25!: got %q", got)
	}

	res, err = handleFactorial(context.Background(), callReq("factorial", map[string]any{"n": -1.0}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("negative factorial accepted")
	}
}

func TestHandleStats(t *testing.T) {
	res, err := handleStats(context.Background(), callReq("stats", map[string]any{
		"numbers": []any{1.0, 2.0, 2.0, 3.0, 4.0},
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if res.IsError {
		t.Fatalf("error result: %s", textOf(t, res))
	}
	var got struct {
		Mean   float64  `json:"mean"`
		Median float64  `json:"median"`
		Mode   *float64 `json:"mode"`
	}
	if err := json.Unmarshal([]byte(textOf(t, res)), &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Mean != 2.4 || got.Median != 2 {
		t.Errorf("wrong stats: %+v", got)
	}
	if got.Mode == nil || *got.Mode != 2 {
		t.Errorf("wrong mode: %v", got.Mode)
	}

	res, err = handleStats(context.Background(), callReq("stats", map[string]any{
		"numbers": []any{1.0, "two"},
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("non-numeric array accepted")
	}
}

func TestHandleQuadratic(t *testing.T) {
	res, err := handleQuadratic(context.Background(), callReq("quadratic", map[string]any{
		"a": 1.0, "b": -5.0, "c": 6.0,
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got struct {
		Discriminant float64 `json:"discriminant"`
		Solutions    []struct {
			Real float64 `json:"real"`
		} `json:"solutions"`
	}
	if err := json.Unmarshal([]byte(textOf(t, res)), &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Discriminant != 1 || len(got.Solutions) != 2 || got.Solutions[0].Real != 3 || got.Solutions[1].Real != 2 {
		t.Errorf("wrong solutions: %+v", got)
	}
}

func TestHandleAngleConvert(t *testing.T) {
	res, err := handleAngleConvert(context.Background(), callReq("angle_convert", map[string]any{
		"angle": 200.0, "from_unit": "grad", "to_unit": "deg",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got struct {
		Converted struct {
			Value float64 `json:"value"`
			Unit  string  `json:"unit"`
		} `json:"converted"`
	}
	if err := json.Unmarshal([]byte(textOf(t, res)), &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Converted.Unit != "deg" || math.Abs(got.Converted.Value-180) > 1e-9 {
		t.Errorf("wrong conversion: %+v", got)
	}
}

func TestHandleTrig(t *testing.T) {
	res, err := handleTrig(context.Background(), callReq("trig", map[string]any{
		"angle": 0.0, "function": "cos",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := textOf(t, res); got != "1" {
		t.Errorf("cos(0): got %q", got)
	}

	res, err = handleTrig(context.Background(), callReq("trig", map[string]any{
		"angle": 0.0, "function": "sec",
	}))
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !res.IsError {
		t.Error("unknown function accepted")
	}
}
