// Package prom adapts deque.Metrics / boundedset.Metrics to Prometheus.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gbrey/gridgain/boundedset"
	"github.com/gbrey/gridgain/deque"
)

// Adapter implements both deque.Metrics and boundedset.Metrics: the two
// interfaces share an identical method set by design (see
// deque/metrics.go), so a single registration exports counters/gauges
// for whichever container it is attached to. Safe for concurrent use;
// all Prometheus metric types are goroutine-safe.
type Adapter struct {
	pushes  prometheus.Counter
	pops    prometheus.Counter
	unlinks prometheus.Counter
	size    prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem (e.g. "gridgain", "deque")
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pushes_total",
			Help:        "Elements pushed/added",
			ConstLabels: constLabels,
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pops_total",
			Help:        "Elements popped",
			ConstLabels: constLabels,
		}),
		unlinks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "unlinks_total",
			Help:        "Nodes physically unlinked or elements evicted",
			ConstLabels: constLabels,
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size",
			Help:        "Approximate current size",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.pushes, a.pops, a.unlinks, a.size)
	return a
}

func (a *Adapter) OnPush()      { a.pushes.Inc() }
func (a *Adapter) OnPop()       { a.pops.Inc() }
func (a *Adapter) OnUnlink()    { a.unlinks.Inc() }
func (a *Adapter) OnSize(n int) { a.size.Set(float64(n)) }

var (
	_ deque.Metrics      = (*Adapter)(nil)
	_ boundedset.Metrics = (*Adapter)(nil)
)
