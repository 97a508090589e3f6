package pagelens

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are machine-readable classifications attached to domain errors.
// Transport layers translate them to their own vocabulary (HTTP status
// codes, CLI exit messages) without string matching.
const (
	EINVALID     = "invalid"          // validation failed
	ENOTFOUND    = "not_found"        // entity does not exist
	EINTERNAL    = "internal"         // internal error
	ETOOLARGE    = "input_too_large"  // raw markup exceeds the size ceiling
	EUNPARSABLE  = "unparsable_input" // raw markup is not decodable text
	EUNAVAILABLE = "unavailable"      // upstream fetch failed
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagelens error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
