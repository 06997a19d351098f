// Package mqtt wraps paho.mqtt.golang for HomeSim Core's outbound
// telemetry.
//
// The client publishes device state notifications and the simulator's own
// online/offline status; it deliberately has no subscription surface, since
// the simulator accepts no commands over the network. Connection handling
// includes auto-reconnect with exponential backoff and a Last Will and
// Testament so consumers can tell a crash from a graceful shutdown.
//
// Topic layout (see topics.go):
//
//	homesim/state/{kind}/{name}   retained per-device state, JSON
//	homesim/system/status         retained online/offline status
//
// Usage:
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil { ... }
//	defer client.Close()
//	err = client.PublishRetained(mqtt.Topics{}.DeviceState("light", "hall"), payload)
//
// All methods are safe for concurrent use.
package mqtt
