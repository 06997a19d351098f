package device

import "errors"

// Domain errors for the device package, checked with errors.Is():
//
//	if errors.Is(err, device.ErrInactive) {
//	    // guard rejected: device was off
//	}
var (
	// ErrInactive is returned when a guarded operation is attempted on an
	// inactive device. The operation is a no-op; state is unchanged.
	ErrInactive = errors.New("device: inactive")

	// ErrTemperatureRange is returned when a requested temperature falls
	// outside [MinTemperature, MaxTemperature]. State is unchanged.
	ErrTemperatureRange = errors.New("device: temperature out of range")

	// ErrUnknownKind is returned when a kind string is not recognised.
	ErrUnknownKind = errors.New("device: unknown kind")
)
