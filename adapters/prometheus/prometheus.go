// Package prometheus implements the runtime's metrics interfaces on top of
// the Prometheus client library.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/troupe-go/core/metrics"
)

// Default histogram buckets for latency metrics (in seconds).
var defaultBuckets = []float64{
	.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10,
}

// timer wraps a Prometheus observer to implement the Timer interface.
type timer struct {
	o     prometheus.Observer
	start time.Time
}

func newTimer(o prometheus.Observer) metrics.Timer {
	return &timer{o: o, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.o.Observe(time.Since(t.start).Seconds())
}

// counter adapts a Prometheus counter to the Counter interface.
type counter struct {
	c prometheus.Counter
}

func (c counter) Inc()              { c.c.Inc() }
func (c counter) Add(delta float64) { c.c.Add(delta) }

// gauge adapts a Prometheus gauge to the Gauge interface.
type gauge struct {
	g prometheus.Gauge
}

func (g gauge) Set(value float64) { g.g.Set(value) }
func (g gauge) Inc()              { g.g.Inc() }
func (g gauge) Dec()              { g.g.Dec() }

func boolToStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
