package statistics

import (
	"github.com/prometheus/client_golang/prometheus"

	"pwmfand/internal/sensors"
)

const sensorSubsystem = "sensor"

type SensorCollector struct {
	sensor sensors.Sensor
	temp   *prometheus.Desc
}

func NewSensorCollector(sensor sensors.Sensor) *SensorCollector {
	return &SensorCollector{
		sensor: sensor,
		temp: prometheus.NewDesc(prometheus.BuildFQName(namespace, sensorSubsystem, "temp"),
			"Temperature value of the sensor in milli-degrees celsius",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temp
}

func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	value, err := collector.sensor.GetValue()
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(collector.temp, prometheus.GaugeValue, float64(value), collector.sensor.GetId())
}
