package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

// ControllerCollector counts control loop activity. Updated by the control
// loop, scraped by prometheus.
type ControllerCollector struct {
	UpdateCount     prometheus.Counter
	SuppressedCount prometheus.Counter
}

func NewControllerCollector() *ControllerCollector {
	return &ControllerCollector{
		UpdateCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: controllerSubsystem,
			Name:      "updates_total",
			Help:      "Number of completed control loop iterations",
		}),
		SuppressedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: controllerSubsystem,
			Name:      "suppressed_writes_total",
			Help:      "Number of PWM writes skipped by the hysteresis gate",
		}),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	collector.UpdateCount.Describe(ch)
	collector.SuppressedCount.Describe(ch)
}

func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	collector.UpdateCount.Collect(ch)
	collector.SuppressedCount.Collect(ch)
}
