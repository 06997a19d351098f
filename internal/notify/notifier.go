package notify

import (
	"time"

	"github.com/mwhitby/homesim-core/internal/device"
)

// Event is a device status notification bound to a named roster instance.
type Event struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    device.Status `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewEvent builds an Event for the given instance, stamped with the current
// time in UTC.
func NewEvent(id, name string, status device.Status) Event {
	return Event{
		ID:        id,
		Name:      name,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
}

// Notifier receives device status events. Implementations must not block
// for extended periods and must swallow (but may log) delivery failures.
type Notifier interface {
	Notify(event Event)
}

// Multi fans an event out to several notifiers, in order.
type Multi []Notifier

// Notify delivers the event to every wrapped notifier.
func (m Multi) Notify(event Event) {
	for _, n := range m {
		n.Notify(event)
	}
}
