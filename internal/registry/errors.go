package registry

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrStorage      = errors.New("storage error")
)

// Error is returned by every Service operation.
// Kind is one of ErrInvalidInput, ErrNotFound, ErrStorage.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports the kind, errors.Is(err, ErrNotFound)
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidInput(msg string) *Error {
	return &Error{Kind: ErrInvalidInput, Msg: msg}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

func storageError(err error) *Error {
	return &Error{Kind: ErrStorage, Msg: err.Error(), Err: err}
}
