package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserLocked = errors.New("inactive user")
var ErrInactiveUser = errors.New("inactive user")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenExpired = errors.New("token expired")
var ErrInvalidToken = errors.New("invalid token")
var ErrForbidden = errors.New("not enough permissions")

// ValidationError reports a boundary-validation failure (weak password,
// unknown role). It maps to 400 rather than the generic sentinel errors above.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
