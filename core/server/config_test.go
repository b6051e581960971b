package server_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/blockmail/core/config"
	"github.com/dmitrymomot/blockmail/core/server"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     server.Config
		opts    []server.Option
		wantErr error
	}{
		{name: "defaults", cfg: server.DefaultConfig()},
		{name: "zero timeouts keep package defaults", cfg: server.Config{Addr: ":8080"}},
		{name: "options override config", cfg: server.DefaultConfig(), opts: []server.Option{server.WithShutdownTimeout(time.Second)}},
		{name: "tls skipped without key", cfg: server.Config{Addr: ":8080", TLSCertFile: "cert.pem"}},
		{name: "missing address", cfg: server.Config{ReadTimeout: time.Second}, wantErr: server.ErrMissingAddress},
		{name: "unreadable certificate", cfg: server.Config{Addr: ":8080", TLSCertFile: "/nonexistent/cert.pem", TLSKeyFile: "/nonexistent/key.pem"}, wantErr: server.ErrFailedLoadCert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, err := server.NewFromConfig(tt.cfg, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Addr, srv.Addr())
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := server.DefaultConfig()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, server.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, server.DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, server.DefaultIdleTimeout, cfg.IdleTimeout)
	assert.Equal(t, server.DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, server.DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
	assert.Empty(t, cfg.TLSCertFile)
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "5s")

	var cfg server.Config
	require.NoError(t, config.Parse(&cfg))

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, server.DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, server.DefaultMaxHeaderBytes, cfg.MaxHeaderBytes)
}
