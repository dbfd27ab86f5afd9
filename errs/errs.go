// Package errs defines the error vocabulary shared by the quality routines.
package errs

import (
	"errors"
	"fmt"
)

// Error codes used across the library.
const (
	// CodeConfiguration marks an invalid parameter (e.g. a window size
	// that is non-positive or exceeds the series length).
	CodeConfiguration = "CONFIGURATION"
	// CodeInputShape marks series that cannot be aligned: mismatched
	// lengths, non-increasing timestamps, or an empty series where a
	// non-empty one is required.
	CodeInputShape = "INPUT_SHAPE"
)

// Error is a structured library error with a code, a message, and an
// optional wrapped cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an existing error.
func Wrap(code string, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Cause: err}
}

// Configuration creates an invalid-parameter error.
func Configuration(message string) *Error {
	return New(CodeConfiguration, message)
}

// Configurationf creates an invalid-parameter error with a formatted message.
func Configurationf(format string, args ...interface{}) *Error {
	return Newf(CodeConfiguration, format, args...)
}

// InputShape creates a misaligned-input error.
func InputShape(message string) *Error {
	return New(CodeInputShape, message)
}

// InputShapef creates a misaligned-input error with a formatted message.
func InputShapef(format string, args ...interface{}) *Error {
	return Newf(CodeInputShape, format, args...)
}

// Code returns the code of err if it is (or wraps) an Error, otherwise "".
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsConfiguration reports whether err carries the configuration code.
func IsConfiguration(err error) bool {
	return Code(err) == CodeConfiguration
}

// IsInputShape reports whether err carries the input-shape code.
func IsInputShape(err error) bool {
	return Code(err) == CodeInputShape
}
