package animate

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what the driver does. The zero value is not usable,
// create it with NewMetrics.
type Metrics struct {
	Started  prometheus.Counter
	Frames   prometheus.Counter
	Skipped  prometheus.Counter
	InFlight prometheus.Gauge
}

// NewMetrics creates the driver metrics and registers them with reg.
// reg may be nil, in which case nothing is registered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Started: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Subsystem: "animate",
			Name:      "animations_started_total",
			Help:      "Number of animations begun.",
		}),
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Subsystem: "animate",
			Name:      "frames_rendered_total",
			Help:      "Number of frames rendered, including final frames.",
		}),
		Skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bstviz",
			Subsystem: "animate",
			Name:      "animations_skipped_total",
			Help:      "Number of animations ended early by a skip.",
		}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstviz",
			Subsystem: "animate",
			Name:      "animations_in_flight",
			Help:      "1 while an animation is running.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Started, m.Frames, m.Skipped, m.InFlight)
	}

	return m
}
