package sensors

import (
	"pwmfand/internal/hwmon"
	"pwmfand/internal/util"
)

type HwmonSensor struct {
	Label string
	Input string
}

func NewHwmonSensor(device hwmon.Device) *HwmonSensor {
	return &HwmonSensor{
		Label: device.Name,
		Input: device.TempInputPath(),
	}
}

func (sensor HwmonSensor) GetId() string {
	return sensor.Label
}

func (sensor HwmonSensor) GetValue() (int, error) {
	return util.ReadIntFromFile(sensor.Input)
}
