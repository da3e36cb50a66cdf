package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pwmfand/internal/curves"
	"pwmfand/internal/fans"
	"pwmfand/internal/sensors"
	"pwmfand/internal/statistics"
	"pwmfand/internal/ui"
)

var ErrSensorOutOfRange = errors.New("temperature outside expected range")

type FanController interface {
	// Run starts the control loop and blocks until the context is cancelled
	// or a fault occurs. In both cases the fan is commanded to full speed
	// before returning.
	Run(ctx context.Context) error

	// UpdateFanSpeed runs a single read/decide/write cycle.
	UpdateFanSpeed() error
}

type fanController struct {
	sensor       sensors.Sensor
	fan          fans.Fan
	curve        *curves.LinearSpeedCurve
	pollInterval time.Duration
	stats        *statistics.ControllerCollector
	lastSetPwm   int
}

func NewFanController(
	sensor sensors.Sensor,
	fan fans.Fan,
	curve *curves.LinearSpeedCurve,
	pollInterval time.Duration,
	stats *statistics.ControllerCollector,
) FanController {
	return &fanController{
		sensor:       sensor,
		fan:          fan,
		curve:        curve,
		pollInterval: pollInterval,
		stats:        stats,
	}
}

func (f *fanController) Run(ctx context.Context) error {
	fan := f.fan

	// seed the hysteresis gate with whatever speed is currently in effect,
	// so the first decision is relative to reality
	currentPwm, err := fan.GetPwm()
	if err != nil {
		return fmt.Errorf("reading initial speed of %s: %w", fan.GetId(), err)
	}
	f.lastSetPwm = currentPwm
	ui.Info("Current speed of %s: %d", fan.GetId(), currentPwm)

	// whatever ends the loop, leave the fan at full speed. An over-spinning
	// fan is the safe failure mode for thermal protection.
	defer func() {
		ui.Info("Setting %s to full speed", fan.GetId())
		if failsafeErr := fan.SetPwm(fans.MaxPwmValue); failsafeErr != nil {
			ui.Error("Failed to set %s to full speed: %v", fan.GetId(), failsafeErr)
		}
	}()

	ui.Info("Starting controller loop for fan '%s'", fan.GetId())

	tick := time.Tick(f.pollInterval)
	for {
		if err = f.UpdateFanSpeed(); err != nil {
			return err
		}

		// cancellation is observed between iterations, so shutdown can lag
		// a termination request by up to one poll interval
		select {
		case <-ctx.Done():
			ui.Info("Stopping controller loop for fan '%s'", fan.GetId())
			return nil
		case <-tick:
		}
	}
}

func (f *fanController) UpdateFanSpeed() error {
	temp, err := f.sensor.GetValue()
	if err != nil {
		return fmt.Errorf("reading sensor %s: %w", f.sensor.GetId(), err)
	}
	if !sensors.IsValidTemp(temp) {
		return fmt.Errorf("%w: %d", ErrSensorOutOfRange, temp)
	}

	target := f.curve.Evaluate(temp)

	diff := target - f.lastSetPwm
	if diff >= 1 || diff <= -1 {
		if err = f.fan.SetPwm(target); err != nil {
			return fmt.Errorf("setting speed of %s: %w", f.fan.GetId(), err)
		}
		f.lastSetPwm = target
	} else {
		ui.Debug("Keeping %s at %d (target %d)", f.fan.GetId(), f.lastSetPwm, target)
		if f.stats != nil {
			f.stats.SuppressedCount.Inc()
		}
	}

	if f.stats != nil {
		f.stats.UpdateCount.Inc()
	}
	return nil
}
