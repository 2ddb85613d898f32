package expr

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid expression text implements InputError. The position is the
// byte offset into the expression after whitespace removal.
type InputError interface {
	error
	// Pos returns the offset of the input that caused the error.
	Pos() int
}

// EmptyExpressionError is an error indicating that the expression was empty
// after whitespace removal. It implements InputError.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// MissingParenError is an error indicating an absent parenthesis. It
// implements InputError.
type MissingParenError struct {
	// Col is the position where the parenthesis was expected.
	Col int
	// Func is the function whose argument list is affected, if any.
	Func string
	// Open is whether the missing parenthesis is the opening one.
	Open bool
}

func (err *MissingParenError) Error() string {
	if err.Open {
		return errpos(err.Col, err.Func+" requires parentheses")
	}
	if err.Func != "" {
		return errpos(err.Col, "missing closing parenthesis for "+err.Func)
	}
	return errpos(err.Col, "missing closing parenthesis")
}

func (err *MissingParenError) Pos() int {
	return err.Col
}

// MissingSeparatorError is an error indicating a function argument list
// without the comma it requires. It implements InputError.
type MissingSeparatorError struct {
	// Col is the position where the comma was expected.
	Col int
	// Func is the function being called.
	Func string
}

func (err *MissingSeparatorError) Error() string {
	return errpos(err.Col, err.Func+" requires two arguments separated by a comma")
}

func (err *MissingSeparatorError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that is absent or
// malformed where one was required. It implements InputError.
type NumberError struct {
	// Col is the position where the literal starts.
	Col int
	// Text is the scanned literal text. Empty if no characters could be
	// consumed at all.
	Text string
}

func (err *NumberError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "expected number")
	}
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating characters left over after a complete
// parse. It implements InputError.
type TrailingError struct {
	// Col is the position of the first unconsumed character.
	Col int
	// Char is the first unconsumed character.
	Char byte
}

func (err *TrailingError) Error() string {
	return "unexpected character at position " + strconv.Itoa(err.Col) + ": " + strconv.Quote(string(err.Char))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*MissingParenError)(nil)
	_ InputError = (*MissingSeparatorError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*TrailingError)(nil)
)
