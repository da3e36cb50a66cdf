package sensors

const (
	// MinValidTemp is the lowest plausible sample in milli-degrees celsius.
	MinValidTemp = -30000
	// MaxValidTemp is the highest plausible sample in milli-degrees celsius.
	MaxValidTemp = 150000
)

type Sensor interface {
	GetId() string

	// GetValue returns the current temperature in milli-degrees celsius
	GetValue() (int, error)
}

// IsValidTemp reports whether a sample lies within the plausible sensor
// domain. Values outside it indicate a broken sensor, not noise.
func IsValidTemp(milliDeg int) bool {
	return milliDeg >= MinValidTemp && milliDeg <= MaxValidTemp
}
