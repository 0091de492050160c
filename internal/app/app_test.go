package app

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"superstar/internal/config"
	"superstar/internal/domain"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	return &config.Config{
		HTTP:    config.HTTP{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second},
		Log:     config.Log{Level: "info"},
		Storage: config.Storage{Driver: driver, Path: filepath.Join(t.TempDir(), "db", "superstar.db"), Key: "superstar-orders"},
		Metrics: config.Metrics{Enabled: true, Namespace: "superstar"},
	}
}

func TestNew_SQLitePersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.DriverSQLite)

	a, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, a.Store.ListOrders(), 4)
	_, err = a.Orders.UpdateStatus(ctx, "ORD-1004", domain.OrderStatusCancelled)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	b, err := New(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer b.Close()
	o, err := b.Orders.GetOrder(ctx, "ORD-1004")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, o.Status)
}

func TestNew_MemoryAndMetrics(t *testing.T) {
	a, err := New(context.Background(), testConfig(t, config.DriverMemory), zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	w := httptest.NewRecorder()
	a.Server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "superstar_store_orders 4")
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), testConfig(t, "postgres"), zerolog.Nop())
	assert.Error(t, err)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRun_StopsOnCancelWithOpenEventStream(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	cfg.HTTP.Addr = freeAddr(t)
	cfg.HTTP.ShutdownTimeout = 2 * time.Second
	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	base := "http://" + cfg.HTTP.Addr
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(base + "/api/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	r := bufio.NewReader(resp.Body)
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event:ready") {
			break
		}
	}

	start := time.Now()
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.Less(t, time.Since(start), cfg.HTTP.ShutdownTimeout)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNew_GinModeFollowsLogLevel(t *testing.T) {
	prev := gin.Mode()
	defer gin.SetMode(prev)

	cfg := testConfig(t, config.DriverMemory)
	cfg.Log.Level = "debug"
	gin.SetMode(gin.TestMode)
	_, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, gin.TestMode, gin.Mode())

	cfg.Log.Level = "info"
	_, err = New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
}
