package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pwmfand/cmd/global"
	"pwmfand/internal"
	"pwmfand/internal/configuration"
	"pwmfand/internal/fans"
	"pwmfand/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "pwmfand min_temp max_temp [min_fan_speed]",
	Short: "A daemon to control a fan based on a temperature sensor.",
	Long: `pwmfand is a small daemon that regulates the duty cycle of a PWM fan
proportionally to a CPU temperature sensor, both exposed via sysfs hwmon.
Temperatures are given in milli-degrees celsius, the fan speed floor as a
PWM value (0-255).`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		params, err := parseControlParameters(args)
		if err != nil {
			return err
		}

		configuration.DetectAndReadConfigFile()
		configuration.LoadConfig()
		if err := configuration.Validate(); err != nil {
			ui.Error("Config validation error: %v", err)
			os.Exit(1)
		}

		internal.RunDaemon(params)
		return nil
	},
}

// parseControlParameters validates the positional arguments:
// min_temp max_temp [min_fan_speed]
func parseControlParameters(args []string) (params internal.ControlParameters, err error) {
	minTemp, err := strconv.Atoi(args[0])
	if err != nil {
		return params, fmt.Errorf("min_temp is not a number: %s", args[0])
	}
	maxTemp, err := strconv.Atoi(args[1])
	if err != nil {
		return params, fmt.Errorf("max_temp is not a number: %s", args[1])
	}
	if minTemp >= maxTemp {
		return params, fmt.Errorf("min_temp (%d) must be below max_temp (%d)", minTemp, maxTemp)
	}

	minFanSpeed := 0
	if len(args) > 2 {
		minFanSpeed, err = strconv.Atoi(args[2])
		if err != nil {
			return params, fmt.Errorf("min_fan_speed is not a number: %s", args[2])
		}
		if minFanSpeed < fans.MinPwmValue || minFanSpeed > fans.MaxPwmValue {
			return params, fmt.Errorf("min_fan_speed (%d) must be in [%d, %d]", minFanSpeed, fans.MinPwmValue, fans.MaxPwmValue)
		}
	}

	return internal.ControlParameters{
		MinTemp:     minTemp,
		MaxTemp:     maxTemp,
		MinFanSpeed: minFanSpeed,
	}, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&global.CfgFile, "config", "c", "", "config file (default is $HOME/pwmfand.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig(global.CfgFile)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
