package device

import "fmt"

// Thermostat temperature limits, in degrees Celsius.
const (
	DefaultTemperature = 20
	MinTemperature     = 10
	MaxTemperature     = 30
)

// Thermostat is a simulated thermostat. Its active condition is "on".
// The setpoint can only be changed while the thermostat is on, and only to
// a value within [MinTemperature, MaxTemperature].
type Thermostat struct {
	on          bool
	temperature int
}

// NewThermostat returns a thermostat in its default state: off, setpoint
// at DefaultTemperature.
func NewThermostat() Thermostat {
	return Thermostat{temperature: DefaultTemperature}
}

// Activate turns the thermostat on. The setpoint is unchanged.
func (t *Thermostat) Activate() Status {
	t.on = true
	return t.State()
}

// Deactivate turns the thermostat off. The setpoint is retained.
func (t *Thermostat) Deactivate() Status {
	t.on = false
	return t.State()
}

// SetTemperature changes the setpoint to temp.
//
// Guards are checked in order: the thermostat must be on, and temp must lie
// within [MinTemperature, MaxTemperature]. A rejected request leaves the
// setpoint unchanged and returns ErrInactive or ErrTemperatureRange; the
// returned Status describes the rejection so observers still get notified.
func (t *Thermostat) SetTemperature(temp int) (Status, error) {
	if !t.on {
		s := t.State()
		s.Detail = "Cannot set temperature, thermostat is off"
		return s, fmt.Errorf("%w: cannot set temperature", ErrInactive)
	}
	if temp < MinTemperature || temp > MaxTemperature {
		s := t.State()
		s.Detail = fmt.Sprintf("Invalid temperature %d, must be between %d and %d", temp, MinTemperature, MaxTemperature)
		return s, fmt.Errorf("%w: %d not in [%d, %d]", ErrTemperatureRange, temp, MinTemperature, MaxTemperature)
	}

	t.temperature = temp
	s := t.State()
	s.Detail = fmt.Sprintf("Thermostat temperature set to %d", temp)
	return s, nil
}

// On reports whether the thermostat is on.
func (t *Thermostat) On() bool {
	return t.on
}

// Temperature returns the current setpoint.
func (t *Thermostat) Temperature() int {
	return t.temperature
}

// State reports the thermostat's current condition, including the setpoint.
func (t *Thermostat) State() Status {
	detail := "Thermostat is OFF"
	if t.on {
		detail = "Thermostat is ON"
	}
	temp := t.temperature
	return Status{Kind: KindThermostat, Active: t.on, Detail: detail, Temperature: &temp}
}
