// Package logger builds *slog.Logger instances and provides attribute
// helpers for the renderer, the mail pipeline and the HTTP layer.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithProduction("blockmail"),
//		logger.WithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))),
//	)
//
//	log.Info("email sent",
//		logger.Recipient(params.SendTo),
//		logger.Tag(params.Tag),
//		logger.Elapsed(start),
//	)
//
// WithDevelopment gives text output at debug level; WithProduction gives
// JSON at info level. Both tag records with the service name.
//
// # Custom Handlers
//
// WithHandler plugs in any slog.Handler. The CLI uses it to route records
// through a terminal friendly handler:
//
//	log := logger.New(logger.WithHandler(charmlog.NewWithOptions(os.Stderr, charmlog.Options{})))
//
// # Context Values
//
//	log := logger.New(logger.WithContextValue("request_id", requestIDKey{}))
//	log.InfoContext(ctx, "rendered") // adds request_id when ctx carries it
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for empty input, which slog drops, so
// they are safe to pass unconditionally:
//
//	log.Error("delivery failed", logger.Error(err)) // no-op attr when err is nil
//
// Recipient masks the local part of an address before it reaches the log.
package logger
