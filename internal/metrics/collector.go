package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mwhitby/homesim-core/internal/device"
	"github.com/mwhitby/homesim-core/internal/sim"
)

const namespace = "homesim"

// Snapshotter supplies point-in-time device statuses. *sim.Roster satisfies it.
type Snapshotter interface {
	Snapshot() []sim.InstanceStatus
}

// Collector implements prometheus.Collector over roster snapshots. Metrics
// are gathered on scrape; nothing is cached between scrapes.
type Collector struct {
	roster Snapshotter

	deviceActiveDesc *prometheus.Desc
	temperatureDesc  *prometheus.Desc
	deviceCountDesc  *prometheus.Desc
}

// NewCollector creates a collector reading from the given roster.
func NewCollector(roster Snapshotter) *Collector {
	return &Collector{
		roster: roster,

		deviceActiveDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "device", "active"),
			"Whether the device is in its active condition (1 = on/unlocked/open, 0 = off/locked/closed)",
			[]string{"id", "name", "kind"}, nil,
		),
		temperatureDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "thermostat", "temperature_celsius"),
			"Current thermostat setpoint in degrees Celsius",
			[]string{"id", "name"}, nil,
		),
		deviceCountDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "devices"),
			"Number of simulated devices in the roster",
			[]string{"kind"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.deviceActiveDesc
	ch <- c.temperatureDesc
	ch <- c.deviceCountDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[device.Kind]float64)

	for _, inst := range c.roster.Snapshot() {
		counts[inst.Status.Kind]++

		active := 0.0
		if inst.Status.Active {
			active = 1.0
		}
		ch <- prometheus.MustNewConstMetric(
			c.deviceActiveDesc,
			prometheus.GaugeValue,
			active,
			inst.ID, inst.Name, string(inst.Status.Kind),
		)

		if inst.Status.Temperature != nil {
			ch <- prometheus.MustNewConstMetric(
				c.temperatureDesc,
				prometheus.GaugeValue,
				float64(*inst.Status.Temperature),
				inst.ID, inst.Name,
			)
		}
	}

	for kind, count := range counts {
		ch <- prometheus.MustNewConstMetric(
			c.deviceCountDesc,
			prometheus.GaugeValue,
			count,
			string(kind),
		)
	}
}
