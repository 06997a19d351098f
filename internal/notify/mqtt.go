package notify

import (
	"encoding/json"

	"github.com/mwhitby/homesim-core/internal/infrastructure/mqtt"
)

// Publisher is the subset of the MQTT client used to publish state events.
type Publisher interface {
	PublishRetained(topic string, payload []byte) error
}

// MQTT publishes events as retained JSON messages so late subscribers see
// each device's last reported state. Topics follow the scheme
// homesim/state/{kind}/{name}.
type MQTT struct {
	publisher Publisher
	logger    Logger
}

// NewMQTT creates an MQTT-backed notifier. The logger is used for delivery
// failures, which are not propagated.
func NewMQTT(publisher Publisher, logger Logger) *MQTT {
	return &MQTT{publisher: publisher, logger: logger}
}

// Notify publishes the event. Marshal or publish failures are logged and
// otherwise ignored: the notification channel never feeds back into device
// state.
func (m *MQTT) Notify(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		m.logger.Warn("failed to encode state event", "device", event.Name, "error", err)
		return
	}

	topic := mqtt.Topics{}.DeviceState(string(event.Status.Kind), event.Name)
	if err := m.publisher.PublishRetained(topic, payload); err != nil {
		m.logger.Warn("failed to publish state event",
			"device", event.Name,
			"topic", topic,
			"error", err,
		)
	}
}
