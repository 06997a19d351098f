// Package config loads and validates HomeSim Core configuration.
//
// Configuration is read from a YAML file, merged over hardcoded defaults,
// and finally overridden by HOMESIM_* environment variables:
//
//	sim:
//	  name: "demo-home"
//	  devices:
//	    - name: "hallway-light"
//	      kind: "light"
//	    - name: "living-room-thermostat"
//	      kind: "thermostat"
//	mqtt:
//	  enabled: false
//	metrics:
//	  enabled: true
//	  port: 9190
//	logging:
//	  level: "info"
//	  format: "text"
//
// Load returns an error if the file cannot be read or parsed, or if
// Validate rejects the merged result (duplicate device names, unknown
// device kinds, out-of-range ports or QoS).
package config
