package handler

import "net/http"

// Response renders an HTTP response. It sets headers, writes the status code
// and the body. A returned error is passed to the route's ErrorHandler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc builds a Response for a request.
type HandlerFunc func(r *http.Request) Response

// ErrorHandler writes a response for an error returned by a handler.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Wrap adapts h to http.HandlerFunc. A nil Response is treated as 204.
// Errors from the Response go to onError, or to a plain 500 when onError is nil.
func Wrap(h HandlerFunc, onError ErrorHandler, mw ...Middleware) http.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	if onError == nil {
		onError = defaultErrorHandler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if resp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err := resp(w, r); err != nil {
			onError(w, r, err)
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
