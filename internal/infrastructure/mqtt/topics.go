package mqtt

import "fmt"

// Topic prefixes for the HomeSim MQTT namespace.
const (
	// TopicPrefix is the base for all HomeSim topics.
	TopicPrefix = "homesim"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "homesim/system"
)

// Topics provides builders for HomeSim MQTT topics. Using these helpers
// keeps topic naming consistent between the publisher and any consumer.
//
//	topics := mqtt.Topics{}
//	stateTopic := topics.DeviceState("light", "hallway-light")
//	// Returns: "homesim/state/light/hallway-light"
type Topics struct{}

// DeviceState returns the retained state topic for a device instance.
//
// Example: homesim/state/thermostat/living-room
func (Topics) DeviceState(kind, name string) string {
	return fmt.Sprintf("%s/state/%s/%s", TopicPrefix, kind, name)
}

// SystemStatus returns the simulator status topic.
//
// Example: homesim/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// AllDeviceStates returns a subscription pattern matching every device
// state topic. Provided for downstream consumers.
//
// Pattern: homesim/state/+/+
func (Topics) AllDeviceStates() string {
	return fmt.Sprintf("%s/state/+/+", TopicPrefix)
}

// KindStates returns a subscription pattern matching all state topics for
// one device kind.
//
// Pattern: homesim/state/lock/+
func (Topics) KindStates(kind string) string {
	return fmt.Sprintf("%s/state/%s/+", TopicPrefix, kind)
}
