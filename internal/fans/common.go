package fans

const (
	MaxPwmValue = 255
	MinPwmValue = 0
)

type Fan interface {
	GetId() string

	// GetPwm returns the current PWM value of this fan
	GetPwm() (int, error)
	SetPwm(pwm int) (err error)
}
