// Package redis opens go-redis clients for the preview store.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := preview.NewRedisStore(client, preview.WithTTL(time.Hour))
//
// Connect accepts redis:// and rediss:// URLs and pings the server before
// returning. A failed ping is retried REDIS_RETRY_ATTEMPTS times with the
// wait doubling from REDIS_RETRY_INTERVAL, all bounded by
// REDIS_CONNECT_TIMEOUT.
//
// Healthcheck returns a check for the readiness endpoint.
package redis
