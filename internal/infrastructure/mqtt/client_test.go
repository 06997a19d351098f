package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mwhitby/homesim-core/internal/infrastructure/config"
)

func TestTopics(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "device state", got: topics.DeviceState("light", "hallway-light"), want: "homesim/state/light/hallway-light"},
		{name: "system status", got: topics.SystemStatus(), want: "homesim/system/status"},
		{name: "all device states", got: topics.AllDeviceStates(), want: "homesim/state/+/+"},
		{name: "kind states", got: topics.KindStates("lock"), want: "homesim/state/lock/+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestPublish_Validation(t *testing.T) {
	// A zero-value client is never connected, so validation paths can be
	// exercised without a broker.
	c := &Client{}

	if err := c.Publish("", []byte("x"), 0, false); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic: error = %v, want ErrInvalidTopic", err)
	}

	if err := c.Publish("homesim/state/light/a", []byte("x"), 3, false); !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("qos 3: error = %v, want ErrInvalidQoS", err)
	}

	big := make([]byte, maxPayloadSize+1)
	if err := c.Publish("homesim/state/light/a", big, 0, false); !errors.Is(err, ErrPublishFailed) {
		t.Errorf("oversized payload: error = %v, want ErrPublishFailed", err)
	}

	if err := c.Publish("homesim/state/light/a", []byte("x"), 0, false); !errors.Is(err, ErrNotConnected) {
		t.Errorf("disconnected: error = %v, want ErrNotConnected", err)
	}
}

func TestHealthCheck_Disconnected(t *testing.T) {
	c := &Client{}

	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HealthCheck(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     8883,
			TLS:      true,
			ClientID: "homesim-test",
		},
		Auth: config.MQTTAuthConfig{Username: "sim", Password: "secret"},
		QoS:  1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     60,
		},
	}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 {
		t.Fatalf("len(Servers) = %d, want 1", len(opts.Servers))
	}
	if got := opts.Servers[0].String(); got != "ssl://broker.local:8883" {
		t.Errorf("broker URL = %q, want %q", got, "ssl://broker.local:8883")
	}
	if opts.ClientID != "homesim-test" {
		t.Errorf("ClientID = %q, want %q", opts.ClientID, "homesim-test")
	}
	if opts.Username != "sim" {
		t.Errorf("Username = %q, want %q", opts.Username, "sim")
	}
	if opts.TLSConfig == nil {
		t.Error("TLSConfig should be set when TLS is enabled")
	}
}

func TestBuildStatusPayload(t *testing.T) {
	var decoded map[string]string

	payload := buildStatusPayload("homesim-core", "offline", "graceful_shutdown")
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded["status"] != "offline" || decoded["reason"] != "graceful_shutdown" {
		t.Errorf("payload = %q, want offline/graceful_shutdown", payload)
	}
	if decoded["timestamp"] == "" {
		t.Error("payload should carry a timestamp")
	}

	payload = buildStatusPayload("homesim-core", "online", "")
	if strings.Contains(payload, "reason") {
		t.Errorf("online payload should omit reason: %q", payload)
	}
}
