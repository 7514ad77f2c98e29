package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/hrsite/pkg/metric"
)

func serveMux(t *testing.T, opts ...Option) *http.ServeMux {
	t.Helper()
	s, ok := New(opts...).(*server)
	require.True(t, ok)
	return s.mux
}

func TestDefaults(t *testing.T) {
	s := New().(*server)
	assert.Equal(t, DefaultPort, s.port)
	assert.Equal(t, DefaultReadTimeout, s.readTimeout)
	assert.Equal(t, DefaultShutdownTimeout, s.shutdownTimeout)
	assert.Equal(t, DefaultMaxHeaderBytes, s.maxHeaderBytes)
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.Addr())
}

func TestSimpleHealth(t *testing.T) {
	mux := serveMux(t, WithSimpleHealth())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestReadiness(t *testing.T) {
	var notReady error
	mux := serveMux(t, WithReadiness(ReadinessFunc(func(context.Context) error { return notReady })))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	notReady = errors.New("menu not loaded")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "menu not loaded", rec.Body.String())
}

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metric.NewCounterWithRegistry(reg, "test_total", "test").Increment()

	mux := serveMux(t, WithRegistry(reg), WithPrometheusMetrics())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hrsite_test_total 1")
}

func TestServeAndShutdown(t *testing.T) {
	srv := New(
		WithPort(0),
		WithShutdownTimeout(time.Second),
		WithHandler("/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("hello"))
		})),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, srv.IsRunning, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", srv.Addr().(*net.TCPAddr).Port))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, srv.IsRunning())
}

func TestServeBadTLS(t *testing.T) {
	srv := New(WithPort(0), WithTLS(TLSConfig{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}))
	err := srv.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS certificate")
}
