package configuration

import (
	"fmt"
)

func (c Configuration) validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("pollInterval must be positive, got %s", c.PollInterval)
	}
	if len(c.SensorName) <= 0 {
		return fmt.Errorf("sensorName must not be empty")
	}
	if len(c.FanName) <= 0 {
		return fmt.Errorf("fanName must not be empty")
	}
	if c.Statistics.Enabled {
		if c.Statistics.Port <= 0 || c.Statistics.Port >= 65535 {
			return fmt.Errorf("statistics.port must be in (0, 65535), got %d", c.Statistics.Port)
		}
	}
	return nil
}
