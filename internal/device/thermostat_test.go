package device

import (
	"errors"
	"testing"
)

func TestThermostat_SetTemperatureWhileOff(t *testing.T) {
	// Any requested value must leave the setpoint unchanged while off,
	// including values that would otherwise be accepted.
	for _, temp := range []int{5, 10, 20, 25, 30, 35} {
		therm := NewThermostat()

		s, err := therm.SetTemperature(temp)
		if !errors.Is(err, ErrInactive) {
			t.Errorf("SetTemperature(%d) while off: error = %v, want ErrInactive", temp, err)
		}
		if got := therm.Temperature(); got != DefaultTemperature {
			t.Errorf("SetTemperature(%d) while off changed setpoint to %d", temp, got)
		}
		if s.Detail == "" {
			t.Error("rejection status should carry a detail message")
		}
	}
}

func TestThermostat_SetTemperature(t *testing.T) {
	tests := []struct {
		name    string
		temp    int
		want    int // expected setpoint afterwards
		wantErr error
	}{
		{name: "in range", temp: 25, want: 25},
		{name: "lower bound", temp: MinTemperature, want: MinTemperature},
		{name: "upper bound", temp: MaxTemperature, want: MaxTemperature},
		{name: "below range", temp: MinTemperature - 1, want: DefaultTemperature, wantErr: ErrTemperatureRange},
		{name: "above range", temp: MaxTemperature + 1, want: DefaultTemperature, wantErr: ErrTemperatureRange},
		{name: "far below", temp: 5, want: DefaultTemperature, wantErr: ErrTemperatureRange},
		{name: "far above", temp: 35, want: DefaultTemperature, wantErr: ErrTemperatureRange},
		{name: "negative", temp: -10, want: DefaultTemperature, wantErr: ErrTemperatureRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			therm := NewThermostat()
			therm.Activate()

			s, err := therm.SetTemperature(tt.temp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SetTemperature(%d) error = %v, want %v", tt.temp, err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("SetTemperature(%d) error = %v", tt.temp, err)
			}

			if got := therm.Temperature(); got != tt.want {
				t.Errorf("setpoint = %d, want %d", got, tt.want)
			}
			if s.Temperature == nil || *s.Temperature != tt.want {
				t.Errorf("status temperature = %v, want %d", s.Temperature, tt.want)
			}
		})
	}
}

// TestThermostat_Scenario follows a thermostat through a full session:
// activate, accept a setpoint, deactivate, then reject further changes.
func TestThermostat_Scenario(t *testing.T) {
	therm := NewThermostat()
	if got := therm.Temperature(); got != 20 {
		t.Fatalf("initial temperature = %d, want 20", got)
	}

	therm.Activate()
	if _, err := therm.SetTemperature(25); err != nil {
		t.Fatalf("SetTemperature(25) error = %v", err)
	}
	if got := therm.Temperature(); got != 25 {
		t.Fatalf("temperature = %d, want 25", got)
	}

	therm.Deactivate()
	if _, err := therm.SetTemperature(30); !errors.Is(err, ErrInactive) {
		t.Fatalf("SetTemperature(30) while off: error = %v, want ErrInactive", err)
	}
	if got := therm.Temperature(); got != 25 {
		t.Errorf("temperature after rejected set = %d, want 25", got)
	}
}

func TestThermostat_RejectionMessages(t *testing.T) {
	therm := NewThermostat()

	s, _ := therm.SetTemperature(25)
	if want := "Cannot set temperature, thermostat is off"; s.Detail != want {
		t.Errorf("off detail = %q, want %q", s.Detail, want)
	}

	therm.Activate()
	s, _ = therm.SetTemperature(35)
	if want := "Invalid temperature 35, must be between 10 and 30"; s.Detail != want {
		t.Errorf("range detail = %q, want %q", s.Detail, want)
	}

	s, err := therm.SetTemperature(25)
	if err != nil {
		t.Fatalf("SetTemperature(25) error = %v", err)
	}
	if want := "Thermostat temperature set to 25"; s.Detail != want {
		t.Errorf("confirmation detail = %q, want %q", s.Detail, want)
	}
}

func TestThermostat_SetpointSurvivesPowerCycle(t *testing.T) {
	therm := NewThermostat()
	therm.Activate()
	if _, err := therm.SetTemperature(28); err != nil {
		t.Fatalf("SetTemperature(28) error = %v", err)
	}

	therm.Deactivate()
	therm.Activate()
	if got := therm.Temperature(); got != 28 {
		t.Errorf("setpoint after power cycle = %d, want 28", got)
	}
}
