package profiler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_StartAndShutdown(t *testing.T) {
	tests := []struct {
		name string
		port int
	}{
		{
			name: "start and shutdown on port 0 (random)",
			port: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := New(tt.port)

			ctx := context.Background()
			require.NoError(t, server.Start(ctx), "Start() error")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			assert.NoError(t, server.Shutdown(shutdownCtx), "Shutdown() error")
		})
	}
}

func TestServer_CanceledContext(t *testing.T) {
	server := New(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := server.Start(ctx)
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
	_ = server.Shutdown(context.Background())
}

func TestServer_ListensOnLoopback(t *testing.T) {
	server := New(0)
	require.NoError(t, server.Start(context.Background()))
	defer func() { _ = server.Shutdown(context.Background()) }()

	assert.Contains(t, server.Addr(), "127.0.0.1:")
}

func TestServer_PprofEndpoints(t *testing.T) {
	server := New(0)

	ctx := context.Background()
	require.NoError(t, server.Start(ctx), "Start() error")
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	baseURL := "http://" + server.Addr()

	tests := []struct {
		name     string
		endpoint string
	}{
		{
			name:     "index",
			endpoint: "/debug/pprof/",
		},
		{
			name:     "cmdline",
			endpoint: "/debug/pprof/cmdline",
		},
		{
			name:     "symbol",
			endpoint: "/debug/pprof/symbol",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(baseURL + tt.endpoint)
			require.NoError(t, err, "GET %s error", tt.endpoint)
			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s status = %v, want %v", tt.endpoint, resp.StatusCode, http.StatusOK)
		})
	}
}
