package fans

import (
	"pwmfand/internal/hwmon"
	"pwmfand/internal/ui"
	"pwmfand/internal/util"
)

type HwMonFan struct {
	Label     string
	PwmOutput string
}

func NewHwMonFan(device hwmon.Device) *HwMonFan {
	return &HwMonFan{
		Label:     device.Name,
		PwmOutput: device.PwmPath(),
	}
}

func (fan HwMonFan) GetId() string {
	return fan.Label
}

func (fan HwMonFan) GetPwm() (int, error) {
	return util.ReadIntFromFile(fan.PwmOutput)
}

// SetPwm writes the given value to the fan's pwm attribute, clamping it into
// [MinPwmValue, MaxPwmValue] first.
func (fan *HwMonFan) SetPwm(pwm int) error {
	if pwm < MinPwmValue {
		ui.Warning("Cannot set %s below %d, using %d instead of %d", fan.Label, MinPwmValue, MinPwmValue, pwm)
		pwm = MinPwmValue
	} else if pwm > MaxPwmValue {
		ui.Warning("Cannot set %s above %d, using %d instead of %d", fan.Label, MaxPwmValue, MaxPwmValue, pwm)
		pwm = MaxPwmValue
	}

	ui.Debug("Setting %s to %d ...", fan.Label, pwm)
	return util.WriteIntToFile(pwm, fan.PwmOutput)
}
