package sim

import "errors"

// Domain errors for the sim package, checked with errors.Is().
var (
	// ErrNotFound is returned when no device with the given name exists.
	ErrNotFound = errors.New("sim: device not found")

	// ErrDuplicateName is returned when adding a device whose name is taken.
	ErrDuplicateName = errors.New("sim: duplicate device name")

	// ErrInvalidName is returned when a device name is empty.
	ErrInvalidName = errors.New("sim: device name cannot be empty")

	// ErrNotThermostat is returned when a temperature operation targets a
	// device that is not a thermostat.
	ErrNotThermostat = errors.New("sim: device is not a thermostat")
)
