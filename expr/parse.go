package expr

import (
	"strconv"
	"strings"
	"unicode"
)

// expression := term (('+' | '-') term)*
// term       := factor (('*' | '/') factor)*
// factor     := 'sqrt' '(' expression ')'
//             | 'log' '(' expression ',' expression ')'
//             | '(' expression ')' ['**' factor]
//             | number ['**' factor]
// number     := ['-'] digit+ ['.' digit+]

// Evaluate parses an expression and returns its numeric value. Parsing and
// evaluation happen in a single left-to-right pass; the first failure aborts
// the call with one of the error types in this package, all of which
// implement InputError or come from the operation dispatcher.
func Evaluate(expression string) (float64, error) {
	s := stripSpace(expression)
	if s == "" {
		return 0, &EmptyExpressionError{}
	}
	v, pos, err := parseExpr(s, 0)
	if err != nil {
		return 0, err
	}
	if pos < len(s) {
		return 0, &TrailingError{Col: pos, Char: s[pos]}
	}
	return v, nil
}

// stripSpace removes every whitespace rune, including whitespace interior to
// would-be tokens.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseExpr parses the lowest precedence tier, left-associative + and -.
func parseExpr(s string, pos int) (float64, int, error) {
	v, pos, err := parseTerm(s, pos)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		op := string(s[pos])
		rhs, next, err := parseTerm(s, pos+1)
		if err != nil {
			return 0, next, err
		}
		pos = next
		v, err = Binary(op, v, rhs)
		if err != nil {
			return 0, pos, err
		}
	}
	return v, pos, nil
}

// parseTerm parses left-associative * and /.
func parseTerm(s string, pos int) (float64, int, error) {
	v, pos, err := parseFactor(s, pos)
	if err != nil {
		return 0, pos, err
	}
	for pos < len(s) && (s[pos] == '*' || s[pos] == '/') {
		op := string(s[pos])
		rhs, next, err := parseFactor(s, pos+1)
		if err != nil {
			return 0, next, err
		}
		pos = next
		v, err = Binary(op, v, rhs)
		if err != nil {
			return 0, pos, err
		}
	}
	return v, pos, nil
}

// parseFactor parses a function call, a parenthesized group, or a numeric
// literal. Only groups and literals may carry a ** exponent.
func parseFactor(s string, pos int) (float64, int, error) {
	if strings.HasPrefix(s[pos:], "sqrt") {
		return parseSqrt(s, pos+len("sqrt"))
	}
	if strings.HasPrefix(s[pos:], "log") {
		return parseLog(s, pos+len("log"))
	}
	if pos < len(s) && s[pos] == '(' {
		v, next, err := parseExpr(s, pos+1)
		if err != nil {
			return 0, next, err
		}
		if next >= len(s) || s[next] != ')' {
			return 0, next, &MissingParenError{Col: next}
		}
		return parsePow(s, next+1, v)
	}
	return parseNumber(s, pos)
}

// parseSqrt parses the parenthesized argument of sqrt and applies it.
func parseSqrt(s string, pos int) (float64, int, error) {
	if pos >= len(s) || s[pos] != '(' {
		return 0, pos, &MissingParenError{Col: pos, Func: "sqrt", Open: true}
	}
	arg, next, err := parseExpr(s, pos+1)
	if err != nil {
		return 0, next, err
	}
	if next >= len(s) || s[next] != ')' {
		return 0, next, &MissingParenError{Col: next, Func: "sqrt"}
	}
	v, err := Unary("sqrt", arg)
	if err != nil {
		return 0, next, err
	}
	return v, next + 1, nil
}

// parseLog parses the two comma-separated arguments of log. The second
// argument is the effective base: log(x, y) dispatches Binary("log", y, x),
// the logarithm of x in base y.
func parseLog(s string, pos int) (float64, int, error) {
	if pos >= len(s) || s[pos] != '(' {
		return 0, pos, &MissingParenError{Col: pos, Func: "log", Open: true}
	}
	first, next, err := parseExpr(s, pos+1)
	if err != nil {
		return 0, next, err
	}
	if next >= len(s) || s[next] != ',' {
		return 0, next, &MissingSeparatorError{Col: next, Func: "log"}
	}
	second, next, err := parseExpr(s, next+1)
	if err != nil {
		return 0, next, err
	}
	if next >= len(s) || s[next] != ')' {
		return 0, next, &MissingParenError{Col: next, Func: "log"}
	}
	v, err := Binary("log", second, first)
	if err != nil {
		return 0, next, err
	}
	return v, next + 1, nil
}

// parseNumber scans an optional leading minus followed by digits and dots
// and lets strconv decide validity, so "1.2.3" and a bare "-" fail as
// malformed numbers rather than splitting into further tokens.
func parseNumber(s string, pos int) (float64, int, error) {
	start := pos
	if pos < len(s) && s[pos] == '-' {
		pos++
	}
	for pos < len(s) && (s[pos] >= '0' && s[pos] <= '9' || s[pos] == '.') {
		pos++
	}
	if start == pos {
		return 0, start, &NumberError{Col: start}
	}
	text := s[start:pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, start, &NumberError{Col: start, Text: text}
	}
	return parsePow(s, pos, v)
}

// parsePow applies a trailing ** exponent to v, recursing into parseFactor
// rather than parseTerm so that chained exponents associate to the right.
func parsePow(s string, pos int, v float64) (float64, int, error) {
	if !strings.HasPrefix(s[pos:], "**") {
		return v, pos, nil
	}
	exp, next, err := parseFactor(s, pos+2)
	if err != nil {
		return 0, next, err
	}
	r, err := Binary("**", v, exp)
	if err != nil {
		return 0, next, err
	}
	return r, next, nil
}
