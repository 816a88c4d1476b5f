// Package apperr defines the closed error set handlers are allowed to
// surface. The response boundary matches on Kind exhaustively, so a new
// kind cannot be added without deciding its client-visible shape.
package apperr

import "fmt"

type Kind int

const (
	// KindValidation is malformed input; reported with field-level detail.
	KindValidation Kind = iota
	// KindAuth is missing/invalid credentials; reported generically.
	KindAuth
	// KindNotFound is an operation on a nonexistent resource.
	KindNotFound
	// KindInternal is everything else; detail is logged, never leaked.
	KindInternal
)

// Error is a tagged application error.
type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string][]string // field errors, KindValidation only
	Err    error               // wrapped cause, KindInternal only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a field-level validation error.
func Validation(msg string, fields map[string][]string) *Error {
	return &Error{Kind: KindValidation, Msg: msg, Fields: fields}
}

// ValidationField is the single-field convenience form.
func ValidationField(field, detail string) *Error {
	return Validation("Validation failed", map[string][]string{field: {detail}})
}

// Auth builds an authentication error. msg is for logs; clients always
// receive the generic unauthorized shape.
func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Msg: msg}
}

// NotFound builds a missing-resource error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Internal wraps an unexpected failure.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}
