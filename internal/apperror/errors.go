package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping. Services return these;
// the HTTP layer decides status codes, nothing else inspects them.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindNotFound
	KindForbidden
	KindValidation
	KindInvalidTarget
	KindUpstream
	KindServerConfiguration
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func InvalidTarget(message string) *Error {
	return &Error{Kind: KindInvalidTarget, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func ServerConfiguration(message string) *Error {
	return &Error{Kind: KindServerConfiguration, Message: message}
}

// KindOf extracts the kind from anywhere in the wrap chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}
