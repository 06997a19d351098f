package device

import "fmt"

// Kind identifies a concrete device variant.
type Kind string

// Device kinds.
const (
	KindLight      Kind = "light"
	KindThermostat Kind = "thermostat"
	KindLock       Kind = "lock"
	KindGarageDoor Kind = "garage_door"
)

// ParseKind converts a string (typically from configuration) into a Kind.
// Returns ErrUnknownKind for unrecognised values.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLight, KindThermostat, KindLock, KindGarageDoor:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Status reports a device's condition after an operation. It is the payload
// of the notification side channel: Detail carries the human-readable text,
// the remaining fields carry the same information in structured form.
//
// Temperature is set only for thermostats.
type Status struct {
	Kind        Kind   `json:"kind"`
	Active      bool   `json:"active"`
	Detail      string `json:"detail"`
	Temperature *int   `json:"temperature,omitempty"`
}

// Control is the two-operation contract shared by every device variant.
//
// It is a generic constraint over the closed set of concrete pointer types,
// not a runtime interface: instantiating a function with Control resolves
// the method calls at compile time against the concrete variant. Callers
// must know which variant they hold to interpret "activate" correctly
// (a Lock's active condition is unlocked, a GarageDoor's is open).
type Control interface {
	*Light | *Thermostat | *Lock | *GarageDoor

	// Activate moves the device into its active condition. Always succeeds.
	Activate() Status

	// Deactivate moves the device into its inactive condition. Always succeeds.
	Deactivate() Status

	// State reports the current condition without changing it.
	State() Status
}

// Cycle runs the device through a full activate/deactivate round trip and
// returns the status after each transition, in order. After Cycle the
// device's active condition is back to the inactive default.
func Cycle[D Control](d D) []Status {
	return []Status{d.Activate(), d.Deactivate()}
}
