// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/mbadberg/growatt-bridge/internal/poller"
)

var (
	fieldValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "growatt_field_value",
			Help: "Last published value of an inverter field.",
		},
		[]string{"inverter", "field"},
	)
	inverterOnline = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "growatt_inverter_online",
			Help: "1 while the last poll cycle succeeded.",
		},
		[]string{"inverter"},
	)
	inverterAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "growatt_inverter_available",
			Help: "1 until the failure threshold is crossed.",
		},
		[]string{"inverter"},
	)
	pollCycles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "growatt_poll_cycles_total",
			Help: "Poll cycles by outcome.",
		},
		[]string{"inverter", "outcome"},
	)
	pollDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "growatt_poll_duration_seconds",
			Help:    "Wall time of one poll cycle.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"inverter"},
	)
)

func init() {
	prometheus.MustRegister(fieldValue, inverterOnline, inverterAvailable, pollCycles, pollDuration)
}

// Observe updates all per-inverter metrics from one poll record.
func Observe(rec poller.Record) {
	outcome := "ok"
	if !rec.Online {
		outcome = "error"
	}
	pollCycles.WithLabelValues(rec.Name, outcome).Inc()
	pollDuration.WithLabelValues(rec.Name).Observe(rec.Took.Seconds())

	inverterOnline.WithLabelValues(rec.Name).Set(boolGauge(rec.Online))
	inverterAvailable.WithLabelValues(rec.Name).Set(boolGauge(rec.Available))

	for field, v := range rec.Values {
		fieldValue.WithLabelValues(rec.Name, field).Set(v)
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Serve exposes /metrics on the given address. Runs until the process
// exits; listen failures are fatal since the operator asked for it.
func Serve(listen string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.WithField("listen", listen).Info("metrics endpoint up")
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.WithError(err).Fatal("metrics listener failed")
	}
}
