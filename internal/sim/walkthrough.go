package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/mwhitby/homesim-core/internal/device"
)

// Walkthrough setpoints. The second request is deliberately out of range to
// demonstrate the thermostat guard.
const (
	walkthroughSetpoint = 25
	walkthroughRejected = 35
)

// Walkthrough drives every roster device through a full lifecycle:
// activate, thermostat setpoint changes (one accepted, one rejected, one
// attempted while off), deactivate. Each transition is reported through the
// roster's notifier as usual.
//
// Guard rejections are expected output of the demonstration, not failures;
// only unexpected errors (or context cancellation) abort the walkthrough.
func (r *Roster) Walkthrough(ctx context.Context) error {
	for _, inst := range r.Snapshot() {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := inst.Name

		if inst.Status.Kind == device.KindThermostat {
			// Setting before activation must be rejected and leave
			// the setpoint untouched.
			if _, err := r.SetTemperature(name, walkthroughSetpoint); !errors.Is(err, device.ErrInactive) {
				return fmt.Errorf("thermostat %q accepted a setpoint while off: %w", name, err)
			}
		}

		if _, err := r.Activate(name); err != nil {
			return fmt.Errorf("activating %q: %w", name, err)
		}

		if inst.Status.Kind == device.KindThermostat {
			if _, err := r.SetTemperature(name, walkthroughSetpoint); err != nil {
				return fmt.Errorf("setting %q to %d: %w", name, walkthroughSetpoint, err)
			}
			if _, err := r.SetTemperature(name, walkthroughRejected); !errors.Is(err, device.ErrTemperatureRange) {
				return fmt.Errorf("thermostat %q accepted out-of-range setpoint %d: %w", name, walkthroughRejected, err)
			}
		}

		if _, err := r.Deactivate(name); err != nil {
			return fmt.Errorf("deactivating %q: %w", name, err)
		}
	}

	r.logger.Info("walkthrough complete", "devices", r.Len())
	return nil
}
