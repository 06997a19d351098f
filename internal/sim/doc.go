// Package sim hosts the simulated installation: a roster of named device
// instances built from configuration.
//
// The Roster owns its devices. Each device kind is held in its own set, so
// every operation is dispatched against the concrete type — there is no
// runtime interface table between the roster and the devices. A single
// mutex guards the roster, satisfying the devices' single-owner rule while
// letting observers (the metrics collector) read snapshots concurrently.
//
// Every state transition is forwarded to the configured notify.Notifier as
// an Event; operational failures (unknown device, rejected thermostat set)
// are returned to the caller as sentinel errors.
package sim
