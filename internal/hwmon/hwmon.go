package hwmon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pwmfand/internal/util"
)

// DefaultPath is where the kernel exposes one directory per hwmon device.
const DefaultPath = "/sys/class/hwmon"

const (
	AttributeName      = "name"
	AttributeTempInput = "temp1_input"
	AttributePwm       = "pwm1"
)

var ErrNotFound = errors.New("no hwmon device with matching name")

// Device is a single resolved hwmon device directory.
type Device struct {
	// Name is the trimmed first line of the device's "name" attribute.
	Name string
	// Path is the device directory, e.g. /sys/class/hwmon/hwmon1.
	Path string
}

func (d Device) TempInputPath() string {
	return filepath.Join(d.Path, AttributeTempInput)
}

func (d Device) PwmPath() string {
	return filepath.Join(d.Path, AttributePwm)
}

// FindDevice scans the hwmon root for the first device whose "name"
// attribute equals name. Matching is exact on the trimmed first line of the
// attribute. Hidden entries are skipped. The scan uses whatever order the
// directory listing yields, so when several devices carry the same name the
// winner is arbitrary but stable for a given listing.
//
// A device directory without a readable "name" attribute is treated as an
// I/O fault rather than skipped; a broken tree should be fixed, not guessed
// around.
func FindDevice(root string, name string) (Device, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return Device{}, fmt.Errorf("reading hwmon root %s: %w", root, err)
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		devicePath := filepath.Join(root, entry.Name())
		deviceName, err := util.ReadFirstLine(filepath.Join(devicePath, AttributeName))
		if err != nil {
			return Device{}, fmt.Errorf("reading name of %s: %w", devicePath, err)
		}

		if deviceName == name {
			return Device{
				Name: deviceName,
				Path: devicePath,
			}, nil
		}
	}

	return Device{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ListDevices returns all hwmon devices found under root, in directory
// listing order. Entries without a readable "name" attribute are included
// with an empty Name so callers can still show them.
func ListDevices(root string) ([]Device, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading hwmon root %s: %w", root, err)
	}

	var devices []Device
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		devicePath := filepath.Join(root, entry.Name())
		deviceName, _ := util.ReadFirstLine(filepath.Join(devicePath, AttributeName))

		devices = append(devices, Device{
			Name: deviceName,
			Path: devicePath,
		})
	}

	return devices, nil
}
