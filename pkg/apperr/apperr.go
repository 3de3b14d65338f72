// Package apperr defines the business error taxonomy shared by the
// services and the HTTP layer.
//
// Every business-rule failure is one of four kinds: NotFound (a
// referenced entity does not exist), Validation (caller-supplied data
// breaks a rule), Conflict (a state collision such as overlapping
// membership ranges), or Internal (anything else). Each error carries a
// stable machine-readable code alongside its message.
package apperr

import "errors"

// Kind classifies a business error. Kind itself satisfies error so
// callers can match a whole class with errors.Is(err, apperr.KindConflict).
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION_ERROR"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL_ERROR"
)

func (k Kind) Error() string { return string(k) }

// Error is a typed business error with a stable code.
type Error struct {
	kind    Kind
	code    string
	message string
}

func (e *Error) Error() string { return e.message }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the machine-readable code for the API envelope.
func (e *Error) Code() string { return e.code }

// Is matches either the exact error value or its Kind.
func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.kind == k
	}
	return false
}

// NotFound returns a NotFound error, e.g. NotFound("member not found").
func NotFound(message string) *Error {
	return &Error{kind: KindNotFound, code: string(KindNotFound), message: message}
}

// Validation returns a Validation error for a broken business rule.
func Validation(message string) *Error {
	return &Error{kind: KindValidation, code: string(KindValidation), message: message}
}

// Conflict returns a Conflict error.
func Conflict(message string) *Error {
	return &Error{kind: KindConflict, code: string(KindConflict), message: message}
}

// New builds an error with an explicit kind and code, for cases like
// duplicate-key conflicts that keep the legacy DUPLICATE code.
func New(kind Kind, code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

// As extracts an *Error from err, or nil.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
