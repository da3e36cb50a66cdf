package ui

import (
	"github.com/pterm/pterm"
	"os"
)

func ExamplePrintfln() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "commanding pwm %d"
	a := 128
	Printfln(msg, a)
	// Output:
	// commanding pwm 128
}

func ExampleDebug() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()
	pterm.PrintDebugMessages = true

	msg := "sampled %d"
	a := 60000
	Debug(msg, a)
	// Output:
	// DEBUG: sampled 60000
}

func ExampleInfo() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "using device: %s"
	a := "hwmon1"
	Info(msg, a)
	// Output:
	// INFO: using device: hwmon1
}

func ExampleWarning() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "clamping pwm value: %d"
	a := 300
	Warning(msg, a)
	// Output:
	// WARNING: clamping pwm value: 300
}

func ExampleError() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "reading sensor: %v"
	a := os.ErrClosed
	Error(msg, a)
	// Output:
	// ERROR: reading sensor: file already closed
}
