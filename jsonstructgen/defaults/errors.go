package defaults

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// CodeParse means default text cannot be read as the target kind.
	CodeParse ErrorCode = "parse_error"

	// CodeMalformedType means a type descriptor lacks something synthesis
	// needs, such as an enum without a backing type. It points at a defect
	// in type resolution, not at the schema author's input.
	CodeMalformedType ErrorCode = "malformed_type"
)

var (
	// ErrParse matches every *Error with CodeParse.
	ErrParse = errors.New("default value parse error")

	// ErrMalformedType matches every *Error with CodeMalformedType.
	ErrMalformedType = errors.New("malformed type descriptor")
)

// Error reports a default that could not be synthesized.
type Error struct {
	Code    ErrorCode
	Message string

	// Property is the schema property name, once known.
	Property string

	// Value is the raw default text.
	Value string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Property != "" {
		msg = fmt.Sprintf("property %q: %s", e.Property, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the ErrParse and ErrMalformedType sentinels by code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrParse:
		return e.Code == CodeParse
	case ErrMalformedType:
		return e.Code == CodeMalformedType
	}
	return false
}

// WithProperty returns a copy of e annotated with the property name.
func (e *Error) WithProperty(name string) *Error {
	c := *e
	c.Property = name
	return &c
}

func parseError(message, value string, err error) *Error {
	return &Error{Code: CodeParse, Message: message, Value: value, Err: err}
}

func malformedType(format string, args ...any) *Error {
	return &Error{Code: CodeMalformedType, Message: fmt.Sprintf(format, args...)}
}

// withProperty annotates err with the property name when it is an *Error.
func withProperty(err error, name string) error {
	var de *Error
	if errors.As(err, &de) && de.Property == "" {
		return de.WithProperty(name)
	}
	return err
}
