package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mwhitby/homesim-core/internal/device"
)

// Config is the root configuration structure for HomeSim Core.
// All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	Sim     SimConfig     `yaml:"sim"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig describes the simulated installation.
type SimConfig struct {
	Name    string         `yaml:"name"`
	Devices []DeviceConfig `yaml:"devices"`
}

// DeviceConfig describes one simulated device instance. Devices always
// start in their documented default state; only identity is configurable.
type DeviceConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

// MQTTConfig contains MQTT broker connection settings. When disabled, state
// notifications are rendered to the log only.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings, in seconds.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// MetricsConfig contains settings for the metrics/health HTTP server.
type MetricsConfig struct {
	Enabled  bool                 `yaml:"enabled"`
	Host     string               `yaml:"host"`
	Port     int                  `yaml:"port"`
	Timeouts MetricsTimeoutConfig `yaml:"timeouts"`
}

// MetricsTimeoutConfig contains HTTP timeout settings, in seconds.
type MetricsTimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern HOMESIM_SECTION_KEY, e.g.
// HOMESIM_MQTT_HOST, HOMESIM_METRICS_PORT.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults: one device of each
// kind, MQTT disabled, metrics disabled.
func defaultConfig() *Config {
	return &Config{
		Sim: SimConfig{
			Name: "homesim",
			Devices: []DeviceConfig{
				{Name: "light", Kind: string(device.KindLight)},
				{Name: "thermostat", Kind: string(device.KindThermostat)},
				{Name: "front-door", Kind: string(device.KindLock)},
				{Name: "garage", Kind: string(device.KindGarageDoor)},
			},
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "homesim-core",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		Metrics: MetricsConfig{
			Host: "0.0.0.0",
			Port: 9190,
			Timeouts: MetricsTimeoutConfig{
				Read:  10,
				Write: 10,
				Idle:  60,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Variables follow the pattern HOMESIM_SECTION_KEY.
func applyEnvOverrides(cfg *Config) {
	// Sim
	if v := os.Getenv("HOMESIM_SIM_NAME"); v != "" {
		cfg.Sim.Name = v
	}

	// MQTT
	if v := os.Getenv("HOMESIM_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("HOMESIM_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("HOMESIM_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// Metrics
	if v := os.Getenv("HOMESIM_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Sim.Name == "" {
		errs = append(errs, "sim.name is required")
	}

	seen := make(map[string]bool, len(c.Sim.Devices))
	for i, d := range c.Sim.Devices {
		if d.Name == "" {
			errs = append(errs, fmt.Sprintf("sim.devices[%d].name is required", i))
			continue
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Sprintf("sim.devices[%d].name %q is duplicated", i, d.Name))
		}
		seen[d.Name] = true
		if _, err := device.ParseKind(d.Kind); err != nil {
			errs = append(errs, fmt.Sprintf("sim.devices[%d].kind %q is not a known device kind", i, d.Kind))
		}
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.Enabled && (c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535) {
		errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
	}

	if c.Metrics.Enabled && (c.Metrics.Port < 1 || c.Metrics.Port > 65535) {
		errs = append(errs, "metrics.port must be between 1 and 65535")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// ReadTimeout returns the metrics server read timeout as a Duration.
func (m MetricsConfig) ReadTimeout() time.Duration {
	return time.Duration(m.Timeouts.Read) * time.Second
}

// WriteTimeout returns the metrics server write timeout as a Duration.
func (m MetricsConfig) WriteTimeout() time.Duration {
	return time.Duration(m.Timeouts.Write) * time.Second
}

// IdleTimeout returns the metrics server idle timeout as a Duration.
func (m MetricsConfig) IdleTimeout() time.Duration {
	return time.Duration(m.Timeouts.Idle) * time.Second
}
