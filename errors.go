package autop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType defines the category of an error returned by FormatReader.
type ErrorType string

// Error types
const (
	ReadError       ErrorType = "read"
	DecodeError     ErrorType = "decode"
	ValidationError ErrorType = "validation"
)

// ErrInputTooLarge is returned when a reader holds more than MaxInputSize bytes.
var ErrInputTooLarge = errors.New("input too large")

// WrapError wraps err with its category and the function it came from.
func WrapError(err error, errorType ErrorType, funcName, message string) error {
	if err == nil {
		return nil
	}
	if message == "" {
		return fmt.Errorf("[%s:%s] %w", errorType, funcName, err)
	}
	return fmt.Errorf("[%s:%s] %s: %w", errorType, funcName, message, err)
}

// IsErrorType reports whether err was wrapped with the given category.
func IsErrorType(err error, errorType ErrorType) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "["+string(errorType)+":")
}

// IsReadError returns true if the error is a read error
func IsReadError(err error) bool {
	return IsErrorType(err, ReadError)
}

// IsDecodeError returns true if the error is a decode error
func IsDecodeError(err error) bool {
	return IsErrorType(err, DecodeError)
}

// IsValidationError returns true if the error is a validation error
func IsValidationError(err error) bool {
	return IsErrorType(err, ValidationError)
}
