package sim

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mwhitby/homesim-core/internal/device"
	"github.com/mwhitby/homesim-core/internal/notify"
)

// Logger defines the logging interface used by the Roster.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// noopNotifier discards events.
type noopNotifier struct{}

func (noopNotifier) Notify(notify.Event) {}

// InstanceStatus is a point-in-time view of one roster device, used by
// observers such as the metrics collector. It contains copies only.
type InstanceStatus struct {
	ID     string
	Name   string
	Status device.Status
}

// Roster owns the simulated device instances, keyed by name.
//
// Each kind lives in its own map so operations always dispatch against the
// concrete device type. A single mutex makes the roster safe for concurrent
// use; the devices themselves remain single-owner.
type Roster struct {
	mu          sync.Mutex
	ids         map[string]string // name -> generated instance ID
	lights      map[string]*device.Light
	thermostats map[string]*device.Thermostat
	locks       map[string]*device.Lock
	doors       map[string]*device.GarageDoor

	notifier notify.Notifier
	logger   Logger
}

// NewRoster creates an empty roster that reports transitions to notifier.
// A nil notifier discards events.
func NewRoster(notifier notify.Notifier) *Roster {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Roster{
		ids:         make(map[string]string),
		lights:      make(map[string]*device.Light),
		thermostats: make(map[string]*device.Thermostat),
		locks:       make(map[string]*device.Lock),
		doors:       make(map[string]*device.GarageDoor),
		notifier:    notifier,
		logger:      noopLogger{},
	}
}

// SetLogger sets the logger for the roster.
func (r *Roster) SetLogger(logger Logger) {
	r.logger = logger
}

// Add creates a device of the given kind in its default state and registers
// it under name. It returns the generated instance ID.
func (r *Roster) Add(name string, kind device.Kind) (string, error) {
	if name == "" {
		return "", ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[name]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	switch kind {
	case device.KindLight:
		l := device.NewLight()
		r.lights[name] = &l
	case device.KindThermostat:
		t := device.NewThermostat()
		r.thermostats[name] = &t
	case device.KindLock:
		l := device.NewLock()
		r.locks[name] = &l
	case device.KindGarageDoor:
		g := device.NewGarageDoor()
		r.doors[name] = &g
	default:
		return "", fmt.Errorf("%w: %q", device.ErrUnknownKind, kind)
	}

	id := uuid.New().String()
	r.ids[name] = id
	r.logger.Debug("device added", "name", name, "kind", kind, "id", id)
	return id, nil
}

// Len returns the number of devices in the roster.
func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ids)
}

// Activate moves the named device into its active condition and notifies
// observers. Returns ErrNotFound for unknown names.
func (r *Roster) Activate(name string) (device.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, err := r.apply(name, func(d *device.Light) device.Status { return d.Activate() },
		func(d *device.Thermostat) device.Status { return d.Activate() },
		func(d *device.Lock) device.Status { return d.Activate() },
		func(d *device.GarageDoor) device.Status { return d.Activate() })
	if err != nil {
		return device.Status{}, err
	}

	r.notifier.Notify(notify.NewEvent(r.ids[name], name, status))
	return status, nil
}

// Deactivate moves the named device into its inactive condition and
// notifies observers. Returns ErrNotFound for unknown names.
func (r *Roster) Deactivate(name string) (device.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status, err := r.apply(name, func(d *device.Light) device.Status { return d.Deactivate() },
		func(d *device.Thermostat) device.Status { return d.Deactivate() },
		func(d *device.Lock) device.Status { return d.Deactivate() },
		func(d *device.GarageDoor) device.Status { return d.Deactivate() })
	if err != nil {
		return device.Status{}, err
	}

	r.notifier.Notify(notify.NewEvent(r.ids[name], name, status))
	return status, nil
}

// apply looks the name up in each concrete set and runs the matching
// operation. Callers hold the mutex.
func (r *Roster) apply(name string,
	onLight func(*device.Light) device.Status,
	onThermostat func(*device.Thermostat) device.Status,
	onLock func(*device.Lock) device.Status,
	onDoor func(*device.GarageDoor) device.Status,
) (device.Status, error) {
	if d, ok := r.lights[name]; ok {
		return onLight(d), nil
	}
	if d, ok := r.thermostats[name]; ok {
		return onThermostat(d), nil
	}
	if d, ok := r.locks[name]; ok {
		return onLock(d), nil
	}
	if d, ok := r.doors[name]; ok {
		return onDoor(d), nil
	}
	return device.Status{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// SetTemperature changes the named thermostat's setpoint. The rejection
// semantics of device.Thermostat.SetTemperature apply unchanged; rejections
// are still notified to observers, per the notification-side-channel rule.
func (r *Roster) SetTemperature(name string, temp int) (device.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.thermostats[name]
	if !ok {
		if _, exists := r.ids[name]; exists {
			return device.Status{}, fmt.Errorf("%w: %q", ErrNotThermostat, name)
		}
		return device.Status{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	status, err := t.SetTemperature(temp)
	r.notifier.Notify(notify.NewEvent(r.ids[name], name, status))
	return status, err
}

// Snapshot returns a name-ordered copy of every device's current status.
// The returned slice aliases no roster state.
func (r *Roster) Snapshot() []InstanceStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]InstanceStatus, 0, len(r.ids))
	for name, d := range r.lights {
		out = append(out, InstanceStatus{ID: r.ids[name], Name: name, Status: d.State()})
	}
	for name, d := range r.thermostats {
		out = append(out, InstanceStatus{ID: r.ids[name], Name: name, Status: d.State()})
	}
	for name, d := range r.locks {
		out = append(out, InstanceStatus{ID: r.ids[name], Name: name, Status: d.State()})
	}
	for name, d := range r.doors {
		out = append(out, InstanceStatus{ID: r.ids[name], Name: name, Status: d.State()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
