package apperrors

import "errors"

// Authentication errors. Invalid credentials deliberately collapses "unknown
// identifier" and "wrong password" into one value so login failures carry no
// enumeration signal.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid or expired session")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrCSRFMismatch     = errors.New("invalid security token")
)

// Validation errors
var (
	ErrPasswordRequired = errors.New("password is required")
	ErrBadRequest       = errors.New("bad request")
)

// Not-found errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrRouteNotFound   = errors.New("route not found")
	ErrBusNotFound     = errors.New("bus not found")
)

// Duplicate-key errors, one per unique column so controllers can surface an
// exact "already exists" message.
var (
	ErrRollNumberExists = errors.New("roll number already exists")
	ErrBusNumberExists  = errors.New("bus number already exists")
	ErrUsernameExists   = errors.New("username already exists")
)
