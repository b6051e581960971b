package health

import (
	"net/http"

	"github.com/dmitrymomot/blockmail/core/handler"
	"github.com/dmitrymomot/blockmail/core/response"
)

// Liveness reports that the process is serving. It never checks dependencies.
func Liveness(*http.Request) handler.Response {
	return response.String("ok")
}
