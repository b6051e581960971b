package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/blockmail/core/handler"
	"github.com/dmitrymomot/blockmail/core/logger"
	"github.com/dmitrymomot/blockmail/core/response"
)

// RequestID is a logger.ContextExtractor that tags records with the id set
// by the request id middleware. Request logs rely on it, so pass it to the
// logger handed to WithLogger.
func RequestID(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	return logger.RequestID(id), id != ""
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		a.log.LogAttrs(r.Context(), level, "http request",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.StatusCode(status),
			logger.ClientIP(r.RemoteAddr),
			logger.BytesOut(int64(ww.BytesWritten())),
			logger.Elapsed(start),
		)
	})
}

// logErrors records server-side failures before the error response is written.
func (a *API) logErrors(next handler.ErrorHandler) handler.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if httpErr := response.Convert(err, errorRules...); httpErr.Status >= 500 {
			a.log.ErrorContext(r.Context(), "request failed",
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
		}
		next(w, r, err)
	}
}
