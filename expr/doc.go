// Package expr implements a small arithmetic expression evaluator.
//
// The syntax is a flat calculator grammar: numeric literals, the binary
// operators + - * / **, parentheses, and the functions sqrt(x) and
// log(x, base). A leading - is part of the numeric literal it precedes, so
// "5 - -3" is 5 minus the literal -3. Exponentiation is right-associative
// and may follow a number or a parenthesized group.
//
// All whitespace is removed before parsing, even inside what would
// otherwise be separate tokens: "1 0" evaluates as 10.
//
// Evaluation is a single recursive-descent pass with no backtracking and no
// state shared between calls. Recursion depth is bounded by the nesting
// depth of the input.
package expr
