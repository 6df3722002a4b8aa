package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *InvalidArgumentError through errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnderflow is matched by every *UnderflowError through errors.Is.
	ErrUnderflow = errors.New("underflow")
)

// InvalidArgumentError is returned when an operation is given a key that has no place
// in the total order, a bound like that, or an out of range index.
// Nothing is modified when it is returned.
type InvalidArgumentError struct {
	Op     string //name of the operation, like "Put" or "Select".
	Reason string
	Err    error //optional cause, like InvalidSliceError.
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Trees: %s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("Trees: %s: %s", e.Op, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// UnderflowError is returned when a query or removal needs at least one element but
// the tree is empty.
type UnderflowError struct {
	Op string
	// asArg makes the error match ErrInvalidArgument too. Floor and Ceiling treat a query on
	// an empty tree as a usage error of the argument.
	asArg bool
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("Trees: %s: tree is empty", e.Op)
}

func (e *UnderflowError) Is(target error) bool {
	return target == ErrUnderflow || (e.asArg && target == ErrInvalidArgument)
}

// InvalidSliceError reports the first position where a slice given to From isn't strictly
// ascending: Prev should be less than Next.
type InvalidSliceError[K any] struct {
	Index      int
	Prev, Next K
}

func (e InvalidSliceError[K]) Error() string {
	return fmt.Sprintf("keys[%d]=%v is not less than keys[%d]=%v", e.Index-1, e.Prev, e.Index, e.Next)
}

func absentKey(op string) error {
	return &InvalidArgumentError{Op: op, Reason: "key is not part of the total order"}
}
