package errors

import "net/http"

// HTTPError is an error that knows how it should be rendered to clients.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError builds an HTTPError. code doubles as the HTTP status when it
// is a valid one, otherwise the status falls back to 400.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if status < 100 || status > 599 {
		status = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

// NewHTTPErrorWithStatus builds an HTTPError with an explicit business code.
func NewHTTPErrorWithStatus(code int, message string, status int) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return e.Message
}
