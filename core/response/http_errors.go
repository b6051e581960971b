package response

import (
	"maps"
	"net/http"
	"strings"
)

// HTTPError is an error that knows the response it should produce.
// It is written as {"status": 404, "code": "not_found", "error": "..."}.
type HTTPError struct {
	Status  int            `json:"status"`
	Code    string         `json:"code"`
	Message string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// Error returns the client-facing message.
func (e HTTPError) Error() string { return e.Message }

// StatusCode returns the HTTP status.
func (e HTTPError) StatusCode() int { return e.Status }

// WithMessage returns a copy of e carrying message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of e with details replacing the existing ones.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = maps.Clone(details)
	return e
}

// WithError returns a copy of e with err recorded under details["cause"].
func (e HTTPError) WithError(err error) HTTPError {
	details := maps.Clone(e.Details)
	if details == nil {
		details = make(map[string]any, 1)
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// statusError builds the canonical error for status. The code is the
// status text in snake case.
func statusError(status int) HTTPError {
	text := http.StatusText(status)
	return HTTPError{
		Status:  status,
		Code:    strings.ReplaceAll(strings.ToLower(text), " ", "_"),
		Message: text,
	}
}

var (
	ErrBadRequest            = statusError(http.StatusBadRequest)
	ErrNotFound              = statusError(http.StatusNotFound)
	ErrMethodNotAllowed      = statusError(http.StatusMethodNotAllowed)
	ErrRequestEntityTooLarge = statusError(http.StatusRequestEntityTooLarge)
	ErrUnsupportedMediaType  = statusError(http.StatusUnsupportedMediaType)
	ErrUnprocessableEntity   = statusError(http.StatusUnprocessableEntity)
	ErrTooManyRequests       = statusError(http.StatusTooManyRequests)
	ErrInternalServerError   = statusError(http.StatusInternalServerError)
	ErrNotImplemented        = statusError(http.StatusNotImplemented)
	ErrBadGateway            = statusError(http.StatusBadGateway)
	ErrServiceUnavailable    = statusError(http.StatusServiceUnavailable)
	ErrGatewayTimeout        = statusError(http.StatusGatewayTimeout)
)

var httpErrorsByStatus = func() map[int]HTTPError {
	m := make(map[int]HTTPError)
	for _, e := range []HTTPError{
		ErrBadRequest, ErrNotFound, ErrMethodNotAllowed, ErrRequestEntityTooLarge,
		ErrUnsupportedMediaType, ErrUnprocessableEntity, ErrTooManyRequests,
		ErrInternalServerError, ErrNotImplemented, ErrBadGateway,
		ErrServiceUnavailable, ErrGatewayTimeout,
	} {
		m[e.Status] = e
	}
	return m
}()
