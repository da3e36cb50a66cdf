package configuration

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func loadDefaults() {
	viper.Reset()
	setDefaultValues()
	LoadConfig()
}

func TestDefaultValues(t *testing.T) {
	// WHEN
	loadDefaults()

	// THEN
	assert.Equal(t, "/sys/class/hwmon", CurrentConfig.HwmonPath)
	assert.Equal(t, "cpu", CurrentConfig.SensorName)
	assert.Equal(t, "pwmfan", CurrentConfig.FanName)
	assert.Equal(t, 10*time.Second, CurrentConfig.PollInterval)
	assert.False(t, CurrentConfig.Statistics.Enabled)
}

func TestDefaultConfigIsValid(t *testing.T) {
	// GIVEN
	loadDefaults()

	// WHEN
	err := Validate()

	// THEN
	assert.NoError(t, err)
}

func TestPollIntervalFromString(t *testing.T) {
	// GIVEN
	loadDefaults()
	viper.Set("PollInterval", "2s")

	// WHEN
	LoadConfig()

	// THEN
	assert.Equal(t, 2*time.Second, CurrentConfig.PollInterval)
}

func TestValidateRejectsNonPositivePollInterval(t *testing.T) {
	// GIVEN
	loadDefaults()
	CurrentConfig.PollInterval = 0

	// WHEN
	err := Validate()

	// THEN
	assert.Error(t, err)
}

func TestValidateRejectsBadStatisticsPort(t *testing.T) {
	// GIVEN
	loadDefaults()
	CurrentConfig.Statistics.Enabled = true
	CurrentConfig.Statistics.Port = -1

	// WHEN
	err := Validate()

	// THEN
	assert.Error(t, err)
}
