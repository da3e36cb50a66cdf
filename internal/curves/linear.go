package curves

import (
	"math"

	"pwmfand/internal/fans"
)

// LinearSpeedCurve maps a temperature in milli-degrees celsius onto a PWM
// value. Below MinTemp the fan runs at MinSpeed, above MaxTemp at full
// speed, in between the value is interpolated linearly.
type LinearSpeedCurve struct {
	// MinTemp is the temperature below which MinSpeed is used, in milli-degrees celsius
	MinTemp int
	// MaxTemp is the temperature at which the fan runs at full speed, in milli-degrees celsius
	MaxTemp int
	// MinSpeed is the PWM floor used at or below MinTemp
	MinSpeed int
}

func NewLinearSpeedCurve(minTemp int, maxTemp int, minSpeed int) *LinearSpeedCurve {
	return &LinearSpeedCurve{
		MinTemp:  minTemp,
		MaxTemp:  maxTemp,
		MinSpeed: minSpeed,
	}
}

// Evaluate computes the target PWM value for the given temperature.
// Fractional results are rounded half away from zero.
func (c *LinearSpeedCurve) Evaluate(milliDeg int) int {
	if milliDeg <= c.MinTemp {
		return c.MinSpeed
	}
	if milliDeg >= c.MaxTemp {
		// full throttle if max temp is reached
		return fans.MaxPwmValue
	}

	ratio := float64(milliDeg-c.MinTemp) / float64(c.MaxTemp-c.MinTemp)
	return c.MinSpeed + int(math.Round(ratio*float64(fans.MaxPwmValue-c.MinSpeed)))
}
