package device

// GarageDoor is a simulated garage door. Its active condition is "open":
// Activate opens the door, Deactivate closes it.
type GarageDoor struct {
	open bool
}

// NewGarageDoor returns a garage door in its default state: closed.
func NewGarageDoor() GarageDoor {
	return GarageDoor{}
}

// Activate opens the door.
func (g *GarageDoor) Activate() Status {
	g.open = true
	return g.State()
}

// Deactivate closes the door.
func (g *GarageDoor) Deactivate() Status {
	g.open = false
	return g.State()
}

// Open reports whether the door is open.
func (g *GarageDoor) Open() bool {
	return g.open
}

// State reports the door's current condition. Active means open.
func (g *GarageDoor) State() Status {
	detail := "Garage Door is CLOSED"
	if g.open {
		detail = "Garage Door is OPEN"
	}
	return Status{Kind: KindGarageDoor, Active: g.open, Detail: detail}
}
