package statistics

import (
	"github.com/prometheus/client_golang/prometheus"

	"pwmfand/internal/fans"
)

const fanSubsystem = "fan"

type FanCollector struct {
	fan fans.Fan
	pwm *prometheus.Desc
}

func NewFanCollector(fan fans.Fan) *FanCollector {
	return &FanCollector{
		fan: fan,
		pwm: prometheus.NewDesc(prometheus.BuildFQName(namespace, fanSubsystem, "pwm"),
			"Current PWM value of the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.pwm
}

func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	pwm, err := collector.fan.GetPwm()
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(collector.pwm, prometheus.GaugeValue, float64(pwm), collector.fan.GetId())
}
