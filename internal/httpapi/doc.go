// Package httpapi exposes the renderer over HTTP.
//
//	POST /render         document JSON in, text/html out
//	POST /previews       document JSON in, 201 {"id", "url", "expires_at"}
//	GET  /previews/{id}  stored HTML, or 404 once expired
//	POST /send           {"to", "subject", "tag", "document"}, 202 with the delivery result
//	GET  /health         200 "ok"
//	GET  /health/ready   200 "ready", or 503 when a dependency check fails
//
// Errors are JSON objects of the form {"status": 400, "code": "bad_request", "error": "..."}.
package httpapi
