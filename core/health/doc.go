// Package health provides liveness and readiness handlers.
//
//	r.Get("/health", handler.Wrap(health.Liveness, onError))
//	r.Get("/health/ready", handler.Wrap(health.Readiness(log, redis.Healthcheck(client)), onError))
//
// Readiness runs every check with the request context and answers 503 on
// the first failure.
package health
