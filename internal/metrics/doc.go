// Package metrics exposes the simulated installation to Prometheus.
//
// Collector implements prometheus.Collector over roster snapshots; Server
// serves the exposition and a health probe over HTTP. The surface is
// read-only — it observes device state and never controls it.
//
// Exposed series:
//
//	homesim_device_active{id,name,kind}              1 active, 0 inactive
//	homesim_thermostat_temperature_celsius{id,name}  current setpoint
//	homesim_devices{kind}                            roster size per kind
package metrics
