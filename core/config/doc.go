// Package config fills configuration structs from environment variables.
//
//	var cfg smtp.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A .env file in the working directory is read once, before the first Load.
// Variables already set in the environment take precedence over it. Each
// struct type is parsed once and later Load calls return the cached value.
// Parse skips both the .env file and the cache, which suits tests that use
// t.Setenv. Reset clears the cache.
//
// Struct tags follow github.com/caarlos0/env: env, envDefault, and the
// required option.
package config
