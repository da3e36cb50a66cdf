package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pwmfand/internal/configuration"
	"pwmfand/internal/controller"
	"pwmfand/internal/curves"
	"pwmfand/internal/fans"
	"pwmfand/internal/hwmon"
	"pwmfand/internal/sensors"
	"pwmfand/internal/statistics"
	"pwmfand/internal/ui"
)

// ControlParameters are the user supplied bounds of the linear mapping.
// MinTemp must be strictly below MaxTemp, which cmd enforces before the
// daemon starts.
type ControlParameters struct {
	// MinTemp in milli-degrees celsius
	MinTemp int
	// MaxTemp in milli-degrees celsius
	MaxTemp int
	// MinFanSpeed is the PWM floor used at or below MinTemp
	MinFanSpeed int
}

func RunDaemon(params ControlParameters) {
	if os.Geteuid() != 0 {
		ui.Warning("pwmfand requires root permissions to modify fan speeds, expect write failures")
	}

	config := configuration.CurrentConfig

	sensorDevice, err := hwmon.FindDevice(config.HwmonPath, config.SensorName)
	if err != nil {
		ui.Error("Unable to find temperature device: %v", err)
		os.Exit(1)
	}
	ui.Info("Using temperature device: %s", sensorDevice.Path)

	fanDevice, err := hwmon.FindDevice(config.HwmonPath, config.FanName)
	if err != nil {
		ui.Error("Unable to find fan device: %v", err)
		os.Exit(1)
	}
	ui.Info("Using fan device: %s", fanDevice.Path)

	sensor := sensors.NewHwmonSensor(sensorDevice)
	fan := fans.NewHwMonFan(fanDevice)
	curve := curves.NewLinearSpeedCurve(params.MinTemp, params.MaxTemp, params.MinFanSpeed)

	controllerStats := statistics.NewControllerCollector()
	statistics.Register(controllerStats)
	statistics.Register(statistics.NewSensorCollector(sensor))
	statistics.Register(statistics.NewFanCollector(fan))

	fanController := controller.NewFanController(sensor, fan, curve, config.PollInterval, controllerStats)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			addr := fmt.Sprintf(":%d", config.Statistics.Port)
			server := &http.Server{Addr: addr, Handler: promhttp.Handler()}

			g.Add(func() error {
				ui.Info("Serving statistics on %s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping statistics server: %v", err)
				}
			})
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			if err != nil {
				ui.Error("Fan controller stopped: %v", err)
			}
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		// === signal handling
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received termination signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		os.Exit(1)
	}
	ui.Info("Done.")
	os.Exit(0)
}
