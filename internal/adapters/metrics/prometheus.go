// Package metrics records bot activity as Prometheus metrics.
package metrics

import (
	"convbot/internal/core/domain"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "convbot"

const (
	statusSuccess   = "success"
	statusDecode    = "decode_error"
	statusEncode    = "encode_error"
	statusTransport = "transport_error"
)

type Recorder struct {
	updatesTotal       *prometheus.CounterVec
	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
}

// NewRecorder creates the bot's collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		updatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "updates_total",
				Help:      "Total number of routed updates by kind",
			},
			[]string{"kind"},
		),
		conversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "conversions_total",
				Help:      "Total number of image conversions by target format and outcome",
			},
			[]string{"format", "status"},
		),
		conversionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "conversion_duration_seconds",
				Help:      "Duration of image conversions in seconds",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"format"},
		),
	}

	reg.MustRegister(r.updatesTotal, r.conversionsTotal, r.conversionDuration)

	return r
}

func (r *Recorder) CountUpdate(kind domain.UpdateKind) {
	r.updatesTotal.WithLabelValues(string(kind)).Inc()
}

func (r *Recorder) ObserveConversion(format domain.Format, err error, elapsed time.Duration) {
	r.conversionsTotal.WithLabelValues(string(format), conversionStatus(err)).Inc()
	r.conversionDuration.WithLabelValues(string(format)).Observe(elapsed.Seconds())
}

func conversionStatus(err error) string {
	switch {
	case err == nil:
		return statusSuccess
	case errors.Is(err, domain.ErrDecode):
		return statusDecode
	case errors.Is(err, domain.ErrEncode):
		return statusEncode
	default:
		return statusTransport
	}
}
