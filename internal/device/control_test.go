package device

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "light", input: "light", want: KindLight},
		{name: "thermostat", input: "thermostat", want: KindThermostat},
		{name: "lock", input: "lock", want: KindLock},
		{name: "garage door", input: "garage_door", want: KindGarageDoor},
		{name: "unknown", input: "toaster", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong case", input: "Light", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	light := NewLight()
	if light.On() {
		t.Error("new light should be off")
	}

	therm := NewThermostat()
	if therm.On() {
		t.Error("new thermostat should be off")
	}
	if got := therm.Temperature(); got != DefaultTemperature {
		t.Errorf("new thermostat temperature = %d, want %d", got, DefaultTemperature)
	}

	lock := NewLock()
	if !lock.Locked() {
		t.Error("new lock should be locked")
	}

	door := NewGarageDoor()
	if door.Open() {
		t.Error("new garage door should be closed")
	}
}

func TestLight_ActivateDeactivate(t *testing.T) {
	light := NewLight()

	s := light.Activate()
	if !light.On() {
		t.Error("light should be on after Activate")
	}
	if !s.Active || s.Kind != KindLight {
		t.Errorf("Activate status = %+v, want active light", s)
	}
	if s.Detail != "Light is ON" {
		t.Errorf("Activate detail = %q, want %q", s.Detail, "Light is ON")
	}

	s = light.Deactivate()
	if light.On() {
		t.Error("light should be off after Deactivate")
	}
	if s.Detail != "Light is OFF" {
		t.Errorf("Deactivate detail = %q, want %q", s.Detail, "Light is OFF")
	}
}

func TestLock_ActivateUnlocks(t *testing.T) {
	lock := NewLock()

	s := lock.Activate()
	if lock.Locked() {
		t.Error("lock should be unlocked after Activate")
	}
	if !s.Active {
		t.Error("Activate status should report active (unlocked)")
	}
	if s.Detail != "Smart Lock is UNLOCKED" {
		t.Errorf("Activate detail = %q, want %q", s.Detail, "Smart Lock is UNLOCKED")
	}

	s = lock.Deactivate()
	if !lock.Locked() {
		t.Error("lock should be locked after Deactivate")
	}
	if s.Active {
		t.Error("Deactivate status should report inactive (locked)")
	}
}

func TestGarageDoor_ActivateOpens(t *testing.T) {
	door := NewGarageDoor()

	if s := door.Activate(); !door.Open() || !s.Active {
		t.Errorf("door should be open after Activate, status = %+v", s)
	}
	if s := door.Deactivate(); door.Open() || s.Active {
		t.Errorf("door should be closed after Deactivate, status = %+v", s)
	}
}

// TestCycle_RoundTrip verifies that for every variant an activate followed
// by a deactivate returns the active condition to its pre-activate value,
// dispatched through the generic Control constraint.
func TestCycle_RoundTrip(t *testing.T) {
	assertCycle := func(t *testing.T, statuses []Status, kind Kind) {
		t.Helper()
		if len(statuses) != 2 {
			t.Fatalf("Cycle returned %d statuses, want 2", len(statuses))
		}
		if !statuses[0].Active {
			t.Errorf("%s: status after Activate should be active", kind)
		}
		if statuses[1].Active {
			t.Errorf("%s: status after Deactivate should be inactive", kind)
		}
		for _, s := range statuses {
			if s.Kind != kind {
				t.Errorf("status kind = %q, want %q", s.Kind, kind)
			}
		}
	}

	light := NewLight()
	assertCycle(t, Cycle(&light), KindLight)
	if light.On() {
		t.Error("light should be off after Cycle")
	}

	therm := NewThermostat()
	assertCycle(t, Cycle(&therm), KindThermostat)
	if therm.On() {
		t.Error("thermostat should be off after Cycle")
	}
	if therm.Temperature() != DefaultTemperature {
		t.Error("Cycle should not touch the setpoint")
	}

	lock := NewLock()
	assertCycle(t, Cycle(&lock), KindLock)
	if !lock.Locked() {
		t.Error("lock should be locked after Cycle")
	}

	door := NewGarageDoor()
	assertCycle(t, Cycle(&door), KindGarageDoor)
	if door.Open() {
		t.Error("garage door should be closed after Cycle")
	}
}

// TestCopyIndependence verifies value semantics: mutating a copy never
// affects the original.
func TestCopyIndependence(t *testing.T) {
	t.Run("light", func(t *testing.T) {
		original := NewLight()
		copied := original
		copied.Activate()
		if original.On() {
			t.Error("activating the copy changed the original")
		}
	})

	t.Run("thermostat", func(t *testing.T) {
		original := NewThermostat()
		original.Activate()
		copied := original
		if _, err := copied.SetTemperature(25); err != nil {
			t.Fatalf("SetTemperature() error = %v", err)
		}
		copied.Deactivate()
		if got := original.Temperature(); got != DefaultTemperature {
			t.Errorf("original temperature = %d, want %d", got, DefaultTemperature)
		}
		if !original.On() {
			t.Error("deactivating the copy changed the original")
		}
	})

	t.Run("lock", func(t *testing.T) {
		original := NewLock()
		copied := original
		copied.Activate()
		if !original.Locked() {
			t.Error("unlocking the copy changed the original")
		}
	})

	t.Run("garage door", func(t *testing.T) {
		original := NewGarageDoor()
		copied := original
		copied.Activate()
		if original.Open() {
			t.Error("opening the copy changed the original")
		}
	})
}

func TestState_DoesNotMutate(t *testing.T) {
	light := NewLight()
	_ = light.State()
	if light.On() {
		t.Error("State should not change the light")
	}

	therm := NewThermostat()
	s := therm.State()
	if s.Temperature == nil || *s.Temperature != DefaultTemperature {
		t.Errorf("thermostat State temperature = %v, want %d", s.Temperature, DefaultTemperature)
	}
}
