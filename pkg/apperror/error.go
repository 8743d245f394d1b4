package apperror

import "net/http"

// AppError is an error carrying the HTTP status it should surface as.
// Usecases return these; the error middleware maps them onto the response
// envelope. Err holds the underlying cause for server-side logging and is
// never serialized to clients.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the cause to errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers validation failures and duplicate submissions.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized covers missing or bad credentials.
func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden covers authenticated callers lacking the required role.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

// NotFound covers missing resources, including jobs hidden from non-owners.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal wraps an unexpected failure behind a fixed client-facing message.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
