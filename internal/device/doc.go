// Package device implements the simulated device variants for HomeSim Core.
//
// Four variants exist: Light, Thermostat, Lock and GarageDoor. Each is a
// plain value type holding its own private state, and each exposes the same
// two-operation control surface:
//
//   - Activate moves the device into its "active" condition
//     (light on, thermostat on, lock UNLOCKED, garage door OPEN)
//   - Deactivate moves it into its "inactive" condition
//     (light off, thermostat off, lock LOCKED, garage door CLOSED)
//
// # Static dispatch
//
// The shared surface is expressed as the Control generic constraint, a closed
// union of the four concrete pointer types. It is never used as a runtime
// interface value: call sites always hold the concrete type, so every call
// resolves at compile time and no variant pays for an interface indirection.
// Note the contract is shared shape, not shared meaning — "activate" on a
// Lock means unlock, which only callers of the concrete type can interpret.
//
// # Notifications
//
// Every operation returns a Status describing the device's new condition
// (or, for a rejected thermostat set, why nothing changed). Rendering a
// Status — console text, structured log, MQTT payload — is an observer
// concern; see the notify package.
//
// # Value semantics
//
// Devices contain only bools and ints, so an assignment produces a fully
// independent copy. Mutating a copy never affects the original.
//
// # Concurrency
//
// A device instance is single-owner and not safe for concurrent use. Owners
// that share instances across goroutines must provide their own exclusion;
// the sim.Roster does exactly that.
//
// # Usage
//
//	light := device.NewLight()
//	status := light.Activate() // "Light is ON"
//
//	therm := device.NewThermostat()
//	therm.Activate()
//	if _, err := therm.SetTemperature(25); err != nil {
//	    // errors.Is(err, device.ErrInactive) or device.ErrTemperatureRange
//	}
package device
