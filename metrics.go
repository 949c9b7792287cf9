package cwumee

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics of the bridge. A nil *Metrics records nothing.
type Metrics struct {
	requests      *prometheus.CounterVec
	responseBytes *prometheus.HistogramVec
}

// NewMetrics creates the bridge collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cwumee",
			Subsystem: "bridge",
			Name:      "requests_total",
			Help:      "Requests sent through the bridge by route, variant and outcome.",
		}, []string{"route", "variant", "outcome"}),
		responseBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cwumee",
			Subsystem: "bridge",
			Name:      "response_bytes",
			Help:      "Size of successful host responses.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}, []string{"route"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.responseBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(route Route, variant string, err error, responseBytes int) {
	if m == nil {
		return
	}
	if variant == "" {
		variant = string(RouteChain)
	}
	m.requests.WithLabelValues(string(route), variant, outcome(err)).Inc()
	if err == nil {
		m.responseBytes.WithLabelValues(string(route)).Observe(float64(responseBytes))
	}
}
