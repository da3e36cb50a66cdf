package cmd

import (
	"bytes"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"pwmfand/cmd/global"
	"pwmfand/internal/configuration"
	"pwmfand/internal/hwmon"
	"pwmfand/internal/ui"
	"pwmfand/internal/util"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect hwmon devices",
	Long:  `Lists all hwmon devices with their name, temperature and PWM attributes`,
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		configuration.LoadConfig()

		devices, err := hwmon.ListDevices(configuration.CurrentConfig.HwmonPath)
		if err != nil {
			ui.Fatal("Error detecting devices: %v", err)
		}

		var rows [][]string
		for _, device := range devices {
			rows = append(rows, []string{
				device.Path,
				device.Name,
				readAttribute(device.TempInputPath()),
				readAttribute(device.PwmPath()),
			})
		}

		tab := table.Table{
			Headers: []string{"Device", "Name", "Temp", "PWM"},
			Rows:    rows,
		}

		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			ui.Fatal("Error printing table: %v", tableErr)
		}
		ui.Printf("%s", buf.String())
	},
}

func readAttribute(path string) string {
	value, err := util.ReadIntFromFile(path)
	if err != nil {
		return "N/A"
	}
	return strconv.Itoa(value)
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
