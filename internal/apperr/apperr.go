// Package apperr defines the classified error kinds shared by all domain
// services. Handlers map these to HTTP responses; anything else is treated
// as unclassified and surfaces as a bare 500.
package apperr

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "RESOURCE_NOT_FOUND"
)

type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound marks a referenced entity as absent (404, RESOURCE_NOT_FOUND).
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: msg}
}

// Conflict marks a violated business invariant such as a duplicate email or
// a second address for the same user (400, VALIDATION_ERROR).
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

// BadRequest marks malformed input detected past the validation layer.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

// As extracts a classified error, if err carries one.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsDuplicate reports whether err is a unique-constraint violation from the
// storage engine. Matching on the message avoids driver-specific error
// types; gorm.ErrDuplicatedKey is checked first where the dialect supports
// translation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
