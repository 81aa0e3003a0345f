package latex

import (
	"errors"
	"fmt"
)

// ErrUnterminatedArgument is returned when a braced argument has no matching close brace.
var ErrUnterminatedArgument = errors.New("unterminated braced argument")

// ErrExpectedBrace is returned when an argument was expected but no '{' is present.
var ErrExpectedBrace = errors.New("expected '{'")

// ParseError records where in the input a structural error occurred.
type ParseError struct {
	Pos int   // byte offset of the opening (or expected) brace in the text being parsed
	Err error // one of the sentinel errors above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
