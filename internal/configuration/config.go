package configuration

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"pwmfand/internal/hwmon"
	"pwmfand/internal/ui"
)

type Configuration struct {
	// HwmonPath is the root directory of the kernel hwmon class
	HwmonPath string `json:"hwmonPath"`

	// SensorName is the hwmon name of the temperature source
	SensorName string `json:"sensorName"`
	// FanName is the hwmon name of the PWM sink
	FanName string `json:"fanName"`

	// PollInterval is the time between two control loop iterations
	PollInterval time.Duration `json:"pollInterval"`

	Statistics StatisticsConfig `json:"statistics"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("pwmfand")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/pwmfand/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("HwmonPath", hwmon.DefaultPath)
	viper.SetDefault("SensorName", "cpu")
	viper.SetDefault("FanName", "pwmfan")
	viper.SetDefault("PollInterval", 10*time.Second)

	viper.SetDefault("Statistics.Enabled", false)
	viper.SetDefault("Statistics.Port", 9000)
}

// DetectAndReadConfigFile reads the config file if one exists. A missing
// file is fine, the defaults cover everything; a broken one is not.
func DetectAndReadConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			ui.Fatal("Error reading config file: %v", err)
		}
	} else {
		ui.Info("Using configuration file at: %s", viper.ConfigFileUsed())
	}
}

func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		)),
	)
	if err != nil {
		ui.Fatal("Unable to decode configuration: %v", err)
	}
}

func Validate() error {
	return CurrentConfig.validate()
}
