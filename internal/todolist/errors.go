package todolist

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrTypeMismatch = errors.New("not a todo item")
	ErrInvalidIndex = errors.New("invalid index")
)

// TypeMismatchError reports a value that does not satisfy the list's element type.
type TypeMismatchError struct {
	Value any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: got %T", ErrTypeMismatch, e.Value)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// IndexError reports a reference to a position the list does not have.
// Ref holds the caller's raw text when the index never parsed as an integer.
type IndexError struct {
	Index int
	Ref   string
	Size  int
}

func (e *IndexError) Error() string {
	ref := e.Ref
	if ref == "" {
		ref = strconv.Itoa(e.Index)
	}
	return fmt.Sprintf("%s: %s (size %d)", ErrInvalidIndex, ref, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }
