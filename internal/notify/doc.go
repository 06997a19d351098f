// Package notify delivers device status notifications to observers.
//
// Every device operation produces a device.Status; the sim roster wraps it
// in an Event (adding the instance identity and a timestamp) and hands it to
// a Notifier. Notification is a fire-and-forget observer effect: a failing
// observer never changes device semantics, so Notify has no error return —
// implementations log their own delivery failures.
//
// Implementations:
//
//   - Log: structured log output (the console-style rendering)
//   - MQTT: retained JSON state published to homesim/state/{kind}/{name}
//   - Multi: fan-out to several notifiers
package notify
