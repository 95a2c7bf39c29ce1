package entity

import (
	"reflect"
	"testing"
	"time"
)

func TestSlotTimes(t *testing.T) {
	tests := []struct {
		name     string
		settings AgendaSettings
		want     []string
	}{
		{
			name:     "two hour span with 30 minute slots",
			settings: AgendaSettings{StartTime: "08:00", EndTime: "10:00", SlotIntervalMinutes: 30},
			want:     []string{"08:00", "08:30", "09:00", "09:30"},
		},
		{
			name:     "fifteen minute slots",
			settings: AgendaSettings{StartTime: "09:00", EndTime: "10:00", SlotIntervalMinutes: 15},
			want:     []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name:     "uneven span keeps walking while strictly before end",
			settings: AgendaSettings{StartTime: "08:00", EndTime: "10:15", SlotIntervalMinutes: 30},
			want:     []string{"08:00", "08:30", "09:00", "09:30", "10:00"},
		},
		{
			name:     "end equals start yields nothing",
			settings: AgendaSettings{StartTime: "08:00", EndTime: "08:00", SlotIntervalMinutes: 30},
			want:     nil,
		},
		{
			name:     "zero interval yields nothing",
			settings: AgendaSettings{StartTime: "08:00", EndTime: "10:00", SlotIntervalMinutes: 0},
			want:     nil,
		},
		{
			name:     "malformed start yields nothing",
			settings: AgendaSettings{StartTime: "8am", EndTime: "10:00", SlotIntervalMinutes: 30},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.settings.SlotTimes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SlotTimes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotTimesStrictlyIncreasing(t *testing.T) {
	settings := AgendaSettings{StartTime: "08:00", EndTime: "14:00", SlotIntervalMinutes: 20}
	times := settings.SlotTimes()
	if len(times) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		prev, _ := MinutesOfDay(times[i-1])
		cur, _ := MinutesOfDay(times[i])
		if cur-prev != 20 {
			t.Errorf("slots %s and %s are not 20 minutes apart", times[i-1], times[i])
		}
	}
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		want    string
	}{
		{time.Monday, "Lunes"},
		{time.Tuesday, "Martes"},
		{time.Wednesday, "Miércoles"},
		{time.Thursday, "Jueves"},
		{time.Friday, "Viernes"},
		{time.Saturday, "Sábado"},
		{time.Sunday, "Domingo"},
	}
	for _, tt := range tests {
		if got := WeekdayName(tt.weekday); got != tt.want {
			t.Errorf("WeekdayName(%v) = %q, want %q", tt.weekday, got, tt.want)
		}
	}
}

func TestIsValidWeekdayName(t *testing.T) {
	for _, valid := range []string{"Lunes", "Miércoles", "Domingo"} {
		if !IsValidWeekdayName(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"lunes", "Monday", "", "Miercoles"} {
		if IsValidWeekdayName(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

func TestWorkDaysRoundTrip(t *testing.T) {
	original := WorkDays{"Lunes", "Miércoles", "Viernes"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var scanned WorkDays
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !reflect.DeepEqual(scanned, original) {
		t.Errorf("round trip = %v, want %v", scanned, original)
	}
}

func TestWorkDaysScanEmpty(t *testing.T) {
	var days WorkDays
	if err := days.Scan(""); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("expected empty work days, got %v", days)
	}
}

func TestIsWorkDay(t *testing.T) {
	settings := AgendaSettings{WorkDays: WorkDays{"Lunes"}}

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !settings.IsWorkDay(monday) {
		t.Errorf("expected Monday %s to be a work day", monday.Format("2006-01-02"))
	}

	tuesday := monday.AddDate(0, 0, 1)
	if settings.IsWorkDay(tuesday) {
		t.Errorf("expected Tuesday %s to be closed", tuesday.Format("2006-01-02"))
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{485, "08:05"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
