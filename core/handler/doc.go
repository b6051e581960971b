// Package handler defines the function types used by the HTTP API.
//
// Handlers build a Response instead of writing to the ResponseWriter
// directly. The Response renders itself and returns an error, which Wrap
// routes to an ErrorHandler:
//
//	func health(r *http.Request) handler.Response {
//		return response.String("ok")
//	}
//
//	r.Get("/health", handler.Wrap(health, response.JSONErrorHandler()))
//
// Middleware values wrap a HandlerFunc and are applied in the order given,
// the first one outermost.
package handler
