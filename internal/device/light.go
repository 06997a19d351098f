package device

// Light is a simulated light. Its active condition is "on".
// The zero value is a light that is off; NewLight makes the default explicit.
type Light struct {
	on bool
}

// NewLight returns a light in its default state: off.
func NewLight() Light {
	return Light{}
}

// Activate turns the light on.
func (l *Light) Activate() Status {
	l.on = true
	return l.State()
}

// Deactivate turns the light off.
func (l *Light) Deactivate() Status {
	l.on = false
	return l.State()
}

// On reports whether the light is on.
func (l *Light) On() bool {
	return l.on
}

// State reports the light's current condition.
func (l *Light) State() Status {
	detail := "Light is OFF"
	if l.on {
		detail = "Light is ON"
	}
	return Status{Kind: KindLight, Active: l.on, Detail: detail}
}
