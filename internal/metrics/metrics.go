// Package metrics records shell renders in Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NoRoute is the route label used when a path matched nothing.
const NoRoute = "none"

type Recorder struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the render metrics with reg.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pageshell",
			Name:      "renders_total",
			Help:      "Shell renders by selected route and outcome.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pageshell",
			Name:      "render_duration_seconds",
			Help:      "Shell render time by selected route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	for _, c := range []prometheus.Collector{r.renders, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ObserveRender(route string, elapsed time.Duration, err error) {
	if route == "" {
		route = NoRoute
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.renders.WithLabelValues(route, status).Inc()
	r.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}
