package array

import (
	"errors"
	"fmt"
)

var (
	// ErrValueType indicates an element is not one of the two accepted
	// secret-integer variants.
	ErrValueType = errors.New("array: value is not a secret integer")

	// ErrIndexOutOfRange indicates an indexed operation outside the valid
	// range, or a reduction over an empty sequence.
	ErrIndexOutOfRange = errors.New("array: index out of range")
)

// Error wraps an underlying error with the operation that raised it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("array.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// opErr wraps err with the failing operation name.
func opErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// boundsErr reports an out-of-range index for op.
func boundsErr(op string, index, length int) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length),
	}
}
