// Package apperr defines the error kinds every service operation surfaces.
// Handlers translate them to HTTP status codes exactly once, at the boundary.
package apperr

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrStorage        = errors.New("storage error")
)

// Error carries a client-safe message tagged with one of the kinds above.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Unwrap() error { return e.kind }

func Validation(msg string) error     { return &Error{kind: ErrValidation, msg: msg} }
func Authentication(msg string) error { return &Error{kind: ErrAuthentication, msg: msg} }
func NotFound(msg string) error       { return &Error{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) error       { return &Error{kind: ErrConflict, msg: msg} }

// Storage wraps an underlying persistence failure. The cause is kept for
// logging; Error() stays generic so query details never reach clients.
func Storage(cause error) error {
	return &Error{kind: errors.Join(ErrStorage, cause), msg: "storage error"}
}
