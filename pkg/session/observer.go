package session

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/hrsite/pkg/menu"
	"github.com/mchmarny/hrsite/pkg/metric"
)

// Metrics counts menu state transitions across all sessions.
type Metrics struct {
	Toggles     metric.IncrementalCounter
	Navigations metric.IncrementalCounter
	Dismissals  metric.IncrementalCounter
}

// NewMetrics registers the menu counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Toggles:     metric.NewCounterWithRegistry(reg, "menu_toggles_total", "Menu branch toggles.", "menu", "state"),
		Navigations: metric.NewCounterWithRegistry(reg, "menu_navigations_total", "Navigations requested from a menu.", "menu"),
		Dismissals:  metric.NewCounterWithRegistry(reg, "menu_dismissals_total", "Menus closed by outside interaction.", "menu"),
	}
}

var _ menu.Observer = (*Metrics)(nil)

func (m *Metrics) OnToggle(name string, k menu.Key, expanded bool) {
	state := "close"
	if expanded {
		state = "open"
	}
	slog.Debug("menu toggled", "menu", name, "key", k.String(), "state", state)
	m.Toggles.Increment(name, state)
}

func (m *Metrics) OnNavigate(name string, path string) {
	slog.Debug("menu navigated", "menu", name, "path", path)
	m.Navigations.Increment(name)
}

func (m *Metrics) OnDismiss(name string) {
	slog.Debug("menu dismissed", "menu", name)
	m.Dismissals.Increment(name)
}
