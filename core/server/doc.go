// Package server wraps http.Server with graceful shutdown and env-driven
// configuration.
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Start binds the listener before serving, so address errors surface
// immediately. Stop drains in-flight requests within the shutdown timeout
// (30s by default). Setting SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE
// serves HTTPS with TLS 1.2 as the minimum version.
package server
