package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid authentication.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates that the stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInternal indicates an unexpected internal failure that should not leak details.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP status code alongside a message, for failures that
// originate below the handler layer but still map to a specific response.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewBadRequestError creates an AppError with a 400 status.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError creates an AppError with a 401 status.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewInternalServerError creates an AppError with a 500 status.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// NewGatewayTimeoutError creates an AppError with a 504 status.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}
