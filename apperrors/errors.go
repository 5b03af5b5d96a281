package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure and decides its HTTP status
type Kind int

const (
	KindValidation Kind = iota + 1
	KindIntegrity
	KindNotFound
	KindConnection
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindIntegrity:
		return "integrity"
	case KindNotFound:
		return "not_found"
	case KindConnection:
		return "connection"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindIntegrity:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Error carries a user-facing message and, optionally, the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Public is the text shown to API callers. The cause is appended because
// callers of this API are expected to see the storage error text.
func (e *Error) Public() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// KindOf returns the kind of the first *Error in err's chain, or KindStorage.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

func HTTPStatus(err error) int {
	return KindOf(err).HTTPStatus()
}

func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
