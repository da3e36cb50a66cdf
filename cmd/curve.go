package cmd

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"

	"pwmfand/cmd/global"
	"pwmfand/internal/curves"
	"pwmfand/internal/ui"
)

var curveCmd = &cobra.Command{
	Use:   "curve min_temp max_temp [min_fan_speed]",
	Short: "Print the resulting fan curve to console",
	Long:  `Plots the temperature to PWM mapping the daemon would apply for the given parameters`,
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		params, err := parseControlParameters(args)
		if err != nil {
			return err
		}

		curve := curves.NewLinearSpeedCurve(params.MinTemp, params.MaxTemp, params.MinFanSpeed)

		tab := table.Table{
			Headers: []string{"", ""},
			Rows: [][]string{
				{"Min temp", strconv.Itoa(params.MinTemp)},
				{"Max temp", strconv.Itoa(params.MaxTemp)},
				{"Min fan speed", strconv.Itoa(params.MinFanSpeed)},
			},
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

		// plot a bit beyond both bounds so the flat regions are visible
		margin := (params.MaxTemp - params.MinTemp) / 4
		start := params.MinTemp - margin
		stop := params.MaxTemp + margin
		step := (stop - start) / 100
		if step < 1 {
			step = 1
		}

		var values []float64
		for temp := start; temp <= stop; temp += step {
			values = append(values, float64(curve.Evaluate(temp)))
		}

		caption := "temperature (milli-degrees celsius) -> PWM"
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln("%s", graph)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
