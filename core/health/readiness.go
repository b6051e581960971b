package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/blockmail/core/handler"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/core/response"
)

// Check tests one dependency.
type Check func(context.Context) error

// Readiness answers "ready" when every check passes and 503 otherwise.
func Readiness(log *slog.Logger, checks ...Check) handler.HandlerFunc {
	return func(r *http.Request) handler.Response {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				return response.Error(response.ErrServiceUnavailable)
			}
		}
		return response.String("ready")
	}
}
