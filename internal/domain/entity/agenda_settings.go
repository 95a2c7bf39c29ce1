package entity

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Weekday vocabulary persisted by the agenda store. Day names are the
// capitalized Spanish names; they must round-trip byte-for-byte.
const (
	DayLunes     = "Lunes"
	DayMartes    = "Martes"
	DayMiercoles = "Miércoles"
	DayJueves    = "Jueves"
	DayViernes   = "Viernes"
	DaySabado    = "Sábado"
	DayDomingo   = "Domingo"
)

var weekdayNames = map[time.Weekday]string{
	time.Monday:    DayLunes,
	time.Tuesday:   DayMartes,
	time.Wednesday: DayMiercoles,
	time.Thursday:  DayJueves,
	time.Friday:    DayViernes,
	time.Saturday:  DaySabado,
	time.Sunday:    DayDomingo,
}

// WeekdayName returns the Spanish day name for a time.Weekday.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// IsValidWeekdayName reports whether name belongs to the seven-day vocabulary.
func IsValidWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// WorkDays is the set of open weekdays, stored as a comma-joined string column.
type WorkDays []string

// Value implements driver.Valuer.
func (w WorkDays) Value() (driver.Value, error) {
	return strings.Join(w, ","), nil
}

// Scan implements sql.Scanner.
func (w *WorkDays) Scan(value interface{}) error {
	if value == nil {
		*w = nil
		return nil
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("unsupported work_days column type %T", value)
	}
	if s == "" {
		*w = nil
		return nil
	}
	*w = strings.Split(s, ",")
	return nil
}

// Contains reports whether the given day name is a work day.
func (w WorkDays) Contains(day string) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

// AgendaSettings holds the clinic-wide operating parameters. A single row
// (id=1) per clinic; replaced whole on every save.
type AgendaSettings struct {
	ID                  int       `gorm:"primaryKey" json:"id"`
	StartTime           string    `gorm:"type:varchar(5);not null" json:"start_time"` // HH:mm
	EndTime             string    `gorm:"type:varchar(5);not null" json:"end_time"`   // HH:mm
	SlotIntervalMinutes int       `gorm:"not null" json:"slot_interval_minutes"`
	WorkDays            WorkDays  `gorm:"type:text;not null" json:"work_days"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AgendaSettings) TableName() string {
	return "agenda_settings"
}

// MinutesOfDay parses an HH:mm string into minutes since midnight.
func MinutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as a zero-padded HH:mm string.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SlotTimes walks the time axis from StartTime to EndTime in steps of the
// slot interval, left-closed right-open. A trailing partial step is omitted.
func (s *AgendaSettings) SlotTimes() []string {
	start, err := MinutesOfDay(s.StartTime)
	if err != nil {
		return nil
	}
	end, err := MinutesOfDay(s.EndTime)
	if err != nil {
		return nil
	}
	if s.SlotIntervalMinutes <= 0 {
		return nil
	}
	var times []string
	for m := start; m < end; m += s.SlotIntervalMinutes {
		times = append(times, FormatMinutes(m))
	}
	return times
}

// IsWorkDay reports whether the weekday of the given date is an open day.
func (s *AgendaSettings) IsWorkDay(date time.Time) bool {
	return s.WorkDays.Contains(WeekdayName(date.Weekday()))
}
