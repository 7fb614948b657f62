package gasmvm

import "errors"

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrEmptyControlStack = errors.New("empty control stack")
	ErrBadInstruction    = errors.New("bad instruction")
	ErrBadRadix          = errors.New("bad radix")
)
