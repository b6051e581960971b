package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/config"
)

// Tests in this file mutate the process environment and the package
// cache, so they do not run in parallel.

type previewConfig struct {
	Store string        `env:"TEST_PREVIEW_STORE" envDefault:"memory"`
	TTL   time.Duration `env:"TEST_PREVIEW_TTL" envDefault:"24h"`
}

type requiredConfig struct {
	Token string `env:"TEST_REQUIRED_TOKEN,required"`
}

func TestLoad_DefaultsAndCache(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_PREVIEW_STORE", "redis")

	var cfg previewConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, 24*time.Hour, cfg.TTL)

	t.Setenv("TEST_PREVIEW_STORE", "memory")

	var again previewConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "redis", again.Store, "cached value should be returned")

	config.Reset()
	var fresh previewConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, "memory", fresh.Store)
}

func TestLoad_Required(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsing)

	assert.Panics(t, func() {
		config.MustLoad(&requiredConfig{})
	})

	t.Setenv("TEST_REQUIRED_TOKEN", "secret")
	assert.NotPanics(t, func() {
		var ok requiredConfig
		config.MustLoad(&ok)
		assert.Equal(t, "secret", ok.Token)
	})
}

func TestLoad_NilTarget(t *testing.T) {
	var cfg *previewConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrParsing)
}

func TestParse_BypassesCache(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_PREVIEW_TTL", "5m")

	var cached previewConfig
	require.NoError(t, config.Load(&cached))

	t.Setenv("TEST_PREVIEW_TTL", "10m")

	var parsed previewConfig
	require.NoError(t, config.Parse(&parsed))
	assert.Equal(t, 10*time.Minute, parsed.TTL)

	t.Setenv("TEST_PREVIEW_TTL", "bogus")
	assert.ErrorIs(t, config.Parse(&parsed), config.ErrParsing)
}
