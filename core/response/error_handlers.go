package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/blockmail/core/handler"
)

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// Rule maps errors matching Target to an HTTPError.
type Rule struct {
	Target error
	Err    HTTPError
}

// Map returns a Rule matching target with errors.Is.
func Map(target error, httpErr HTTPError) Rule {
	return Rule{Target: target, Err: httpErr}
}

// Convert turns any error into an HTTPError. An HTTPError in the chain wins,
// then the first matching rule, then a StatusCode() method, then 500.
// Client errors (4xx) carry the original error text as their message;
// server errors keep the generic status text.
func Convert(err error, rules ...Rule) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	base, matched := ErrInternalServerError, false
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			base, matched = rule.Err, true
			break
		}
	}
	if !matched {
		var sc statusCode
		if errors.As(err, &sc) {
			if e, ok := httpErrorsByStatus[sc.StatusCode()]; ok {
				base = e
			}
		}
	}

	if base.Status < http.StatusInternalServerError {
		return base.WithMessage(err.Error())
	}
	return base
}

// ErrorHandler writes errors as plain text.
func ErrorHandler(rules ...Rule) handler.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		httpErr := Convert(err, rules...)
		_ = StringWithStatus(httpErr.Error(), httpErr.Status)(w, r)
	}
}

// JSONErrorHandler writes errors as {"status", "code", "error"} objects.
func JSONErrorHandler(rules ...Rule) handler.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		httpErr := Convert(err, rules...)
		_ = JSONWithStatus(httpErr, httpErr.Status)(w, r)
	}
}
