package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a2sh3r/holdengine/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:           "localhost:0",
		LogLevel:             "error",
		SecretKey:            "secret",
		RateLimit:            100,
		RateBurst:            100,
		PriceCacheTTL:        time.Minute,
		PlatformAccount:      "platform",
		DefaultFeePercentage: 10,
		TOSDeadline:          10 * time.Minute,
		StaleTicketAge:       12 * time.Hour,
		StuckTicketAge:       15 * time.Minute,
		SweepInterval:        time.Hour,
	}
}

func TestNewApp(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr bool
	}{
		{
			name:   "память без redis",
			mutate: func(cfg *config.Config) {},
		},
		{
			name: "redis недоступен",
			mutate: func(cfg *config.Config) {
				cfg.RedisURL = "redis://127.0.0.1:1/0"
			},
		},
		{
			name: "ключ депозитов",
			mutate: func(cfg *config.Config) {
				cfg.DepositKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
			},
		},
		{
			name: "неверный ключ депозитов",
			mutate: func(cfg *config.Config) {
				cfg.DepositKey = "short"
			},
			wantErr: true,
		},
		{
			name: "без ключа подписи",
			mutate: func(cfg *config.Config) {
				cfg.SecretKey = ""
			},
			wantErr: true,
		},
		{
			name: "неверный уровень логов",
			mutate: func(cfg *config.Config) {
				cfg.LogLevel = "loud"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			a, err := NewApp(context.Background(), cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, a.db)
			assert.Nil(t, a.redis)
		})
	}
}

func TestNewApp_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisURL = "redis://" + mr.Addr()

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, a.redis)
	require.NoError(t, a.Shutdown(context.Background()))
}

func TestApp_ServesMetrics(t *testing.T) {
	a, err := NewApp(context.Background(), testConfig())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	a.server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")

	w = httptest.NewRecorder()
	a.server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/deposits", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApp_RunAndShutdown(t *testing.T) {
	cfg := testConfig()
	cfg.RunAddress = "127.0.0.1:0"
	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.Run(ctx))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	assert.NoError(t, a.Shutdown(shutdownCtx))
}
