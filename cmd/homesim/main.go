// HomeSim Core - Simulated Home Device Lab
//
// This is the main entry point for the HomeSim Core application: a small
// simulator for on/off-controllable devices (lights, thermostats, smart
// locks, garage doors). On startup it builds the configured device roster,
// drives every device through a demonstration lifecycle, and — when enabled —
// publishes state notifications over MQTT and serves Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mwhitby/homesim-core/internal/device"
	"github.com/mwhitby/homesim-core/internal/infrastructure/config"
	"github.com/mwhitby/homesim-core/internal/infrastructure/logging"
	"github.com/mwhitby/homesim-core/internal/infrastructure/mqtt"
	"github.com/mwhitby/homesim-core/internal/metrics"
	"github.com/mwhitby/homesim-core/internal/notify"
	"github.com/mwhitby/homesim-core/internal/sim"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting HomeSim Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)

	// Notifiers: structured log always; MQTT when enabled.
	notifiers := notify.Multi{notify.NewLog(log.With("component", "notify"))}

	if cfg.MQTT.Enabled {
		mqttClient, mqttErr := mqtt.Connect(cfg.MQTT)
		if mqttErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", mqttErr)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
		notifiers = append(notifiers, notify.NewMQTT(mqttClient, log.With("component", "mqtt")))
	}

	// Build the device roster from configuration.
	roster := sim.NewRoster(notifiers)
	roster.SetLogger(log)
	for _, d := range cfg.Sim.Devices {
		kind, kindErr := device.ParseKind(d.Kind)
		if kindErr != nil {
			return fmt.Errorf("device %q: %w", d.Name, kindErr)
		}
		if _, addErr := roster.Add(d.Name, kind); addErr != nil {
			return fmt.Errorf("adding device %q: %w", d.Name, addErr)
		}
	}
	log.Info("roster built", "site", cfg.Sim.Name, "devices", roster.Len())

	if cfg.Metrics.Enabled {
		metricsServer, metricsErr := metrics.New(metrics.Deps{
			Config:    cfg.Metrics,
			Logger:    log.With("component", "metrics"),
			Collector: metrics.NewCollector(roster),
		})
		if metricsErr != nil {
			return fmt.Errorf("creating metrics server: %w", metricsErr)
		}
		if startErr := metricsServer.Start(ctx); startErr != nil {
			return fmt.Errorf("starting metrics server: %w", startErr)
		}
		defer func() {
			log.Info("stopping metrics server")
			if closeErr := metricsServer.Close(); closeErr != nil {
				log.Error("error closing metrics server", "error", closeErr)
			}
		}()
	}

	// Exercise every device through its lifecycle.
	if err := roster.Walkthrough(ctx); err != nil {
		return fmt.Errorf("running walkthrough: %w", err)
	}

	// With background services enabled, keep serving until a signal
	// arrives; otherwise the demonstration run is complete.
	if cfg.Metrics.Enabled || cfg.MQTT.Enabled {
		log.Info("walkthrough complete, serving until interrupted")
		<-ctx.Done()
		log.Info("shutdown signal received")
	}

	return nil
}

// getConfigPath returns the config file path, preferring the
// HOMESIM_CONFIG environment variable over the default.
func getConfigPath() string {
	if path := os.Getenv("HOMESIM_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
