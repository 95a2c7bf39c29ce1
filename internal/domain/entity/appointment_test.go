package entity

import "testing"

func TestAppointmentOverlaps(t *testing.T) {
	booked := Appointment{Time: "09:00", DurationMinutes: 30}

	tests := []struct {
		name      string
		candidate string
		duration  int
		want      bool
	}{
		{"same start", "09:00", 30, true},
		{"candidate starts inside", "09:15", 30, true},
		{"candidate starts at existing end", "09:30", 30, false},
		{"candidate ends at existing start", "08:30", 30, false},
		{"candidate ends inside", "08:45", 30, true},
		{"candidate swallows existing", "08:30", 120, true},
		{"well before", "07:00", 30, false},
		{"well after", "11:00", 30, false},
		{"malformed candidate time", "nine", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := booked.Overlaps(tt.candidate, tt.duration); got != tt.want {
				t.Errorf("Overlaps(%q, %d) = %v, want %v", tt.candidate, tt.duration, got, tt.want)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	appointments := []Appointment{
		{Time: "09:00", DurationMinutes: 30, Status: AppointmentStatusScheduled},
		{Time: "10:00", DurationMinutes: 30, Status: AppointmentStatusCancelled},
		{Time: "11:00", DurationMinutes: 60, Status: AppointmentStatusCompleted},
	}

	if c := FindConflict(appointments, "09:15", 30); c == nil || c.Time != "09:00" {
		t.Errorf("expected conflict with the 09:00 appointment, got %+v", c)
	}

	// Cancelled appointments do not hold their slot.
	if c := FindConflict(appointments, "10:00", 30); c != nil {
		t.Errorf("expected cancelled 10:00 slot to be free, got conflict %+v", c)
	}

	// Completed appointments still do.
	if c := FindConflict(appointments, "11:30", 30); c == nil || c.Time != "11:00" {
		t.Errorf("expected conflict with the 11:00 appointment, got %+v", c)
	}

	if c := FindConflict(appointments, "09:30", 30); c != nil {
		t.Errorf("expected 09:30 to be free, got conflict %+v", c)
	}

	if c := FindConflict(nil, "09:00", 30); c != nil {
		t.Errorf("expected no conflict on empty day, got %+v", c)
	}
}
