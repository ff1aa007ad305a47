package anyrange

import "fmt"

var (
	ErrSyntax   = &NotationError{"invalid range syntax"}
	ErrOverflow = &NotationError{"range bound does not fit the index type"}
)

// NotationError is the kind of a parse failure. Compare with errors.Is
// against ErrSyntax or ErrOverflow.
type NotationError struct {
	Msg string
}

func (e *NotationError) Error() string {
	return e.Msg
}

func (e *NotationError) Is(target error) bool {
	if targetErr, ok := target.(*NotationError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}

// ParseError records the input that failed to parse. It unwraps to a
// wrapped ErrSyntax or ErrOverflow.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse range %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
