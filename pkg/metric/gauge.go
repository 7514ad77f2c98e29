package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

type Gauge struct {
	Name string
	Help string

	g prometheus.Gauge
}

func (g *Gauge) Set(v float64) {
	g.g.Set(v)
}

func (g *Gauge) Inc() {
	g.g.Inc()
}

func (g *Gauge) Dec() {
	g.g.Dec()
}

// Value returns the current gauge value. Intended for tests.
func (g *Gauge) Value() float64 {
	var m dto.Metric
	if err := g.g.Write(&m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

func NewGaugeWithRegistry(reg prometheus.Registerer, name, help string) *Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      name,
		Help:      help,
	})

	reg.MustRegister(g)

	return &Gauge{
		Name: name,
		Help: help,
		g:    g,
	}
}
