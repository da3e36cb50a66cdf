package curves

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pwmfand/internal/fans"
)

func TestLinearCurveBelowMinTemp(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 0)

	// WHEN
	result := curve.Evaluate(20000)

	// THEN
	assert.Equal(t, 0, result)
}

func TestLinearCurveAtMinTemp(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 0)

	// WHEN
	result := curve.Evaluate(40000)

	// THEN
	assert.Equal(t, 0, result)
}

func TestLinearCurveAtMaxTemp(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 0)

	// WHEN
	result := curve.Evaluate(80000)

	// THEN
	assert.Equal(t, fans.MaxPwmValue, result)
}

func TestLinearCurveAboveMaxTemp(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 0)

	// WHEN
	result := curve.Evaluate(120000)

	// THEN
	assert.Equal(t, fans.MaxPwmValue, result)
}

func TestLinearCurveMidpoint(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 0)

	// WHEN
	result := curve.Evaluate(60000)

	// THEN
	// 0.5 * 255 = 127.5, rounded half away from zero
	assert.Equal(t, 128, result)
}

func TestLinearCurveWithMinSpeed(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 50)

	// WHEN / THEN
	assert.Equal(t, 50, curve.Evaluate(30000))
	assert.Equal(t, 50, curve.Evaluate(40000))
	// 50 + 0.5 * 205 = 152.5, rounded to 153
	assert.Equal(t, 153, curve.Evaluate(60000))
	assert.Equal(t, 255, curve.Evaluate(80000))
}

func TestLinearCurveMonotonic(t *testing.T) {
	// GIVEN
	curve := NewLinearSpeedCurve(40000, 80000, 0)

	// WHEN / THEN
	last := -1
	for temp := 30000; temp <= 90000; temp += 500 {
		value := curve.Evaluate(temp)
		assert.GreaterOrEqual(t, value, last, "curve must not decrease at %d", temp)
		assert.GreaterOrEqual(t, value, fans.MinPwmValue)
		assert.LessOrEqual(t, value, fans.MaxPwmValue)
		last = value
	}
}
