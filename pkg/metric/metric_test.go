package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCounterWithRegistry(reg, "menu_toggles_total", "Menu toggles", "menu", "state")

	c.Increment("desktop", "open")
	c.Increment("desktop", "open")
	c.Increment("sidebar", "close")

	assert.Equal(t, 2.0, c.Value("desktop", "open"))
	assert.Equal(t, 1.0, c.Value("sidebar", "close"))
	assert.Equal(t, 0.0, c.Value("sidebar", "open"))
}

func TestCounterDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCounterWithRegistry(reg, "dup_total", "dup")
	assert.Panics(t, func() { NewCounterWithRegistry(reg, "dup_total", "dup") })
}

func TestGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewGaugeWithRegistry(reg, "sessions_active", "Active sessions")

	g.Inc()
	g.Inc()
	g.Dec()
	assert.Equal(t, 1.0, g.Value())

	g.Set(7)
	assert.Equal(t, 7.0, g.Value())
}

func TestGetHandlerForRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCounterWithRegistry(reg, "page_views_total", "Page views", "page").Increment("landing")

	rec := httptest.NewRecorder()
	GetHandlerForRegistry(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hrsite_page_views_total{page="landing"} 1`)
}
