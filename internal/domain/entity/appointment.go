package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booked slot in a consultorio.
//
// Invariant: for a given (consultorio, date) no two non-cancelled
// appointments may have overlapping [time, time+duration) intervals. The
// schema backs this with a partial unique index on (consultorio_id, date,
// time) where status <> 'cancelled'.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	ConsultorioID   int               `gorm:"not null;index:idx_appointments_day" json:"consultorio_id"`
	Date            string            `gorm:"type:varchar(10);not null;index:idx_appointments_day" json:"date"` // yyyy-MM-dd
	Time            string            `gorm:"type:varchar(5);not null" json:"time"`                             // HH:mm
	DurationMinutes int               `gorm:"not null" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'scheduled';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason"`
	CreatedBy       uuid.UUID         `gorm:"type:uuid" json:"created_by"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	Consultorio Consultorio `gorm:"foreignKey:ConsultorioID" json:"consultorio,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled reports whether the appointment has been cancelled.
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Overlaps applies the half-open interval test: the candidate
// [candidateStart, candidateStart+duration) conflicts with this appointment
// when candidateStart < existingEnd AND existingStart < candidateEnd.
func (a *Appointment) Overlaps(candidateTime string, durationMinutes int) bool {
	candStart, err := MinutesOfDay(candidateTime)
	if err != nil {
		return false
	}
	existStart, err := MinutesOfDay(a.Time)
	if err != nil {
		return false
	}
	candEnd := candStart + durationMinutes
	existEnd := existStart + a.DurationMinutes
	return candStart < existEnd && existStart < candEnd
}

// FindConflict returns the first non-cancelled appointment whose interval
// overlaps the candidate, or nil when the candidate is free.
func FindConflict(appointments []Appointment, candidateTime string, durationMinutes int) *Appointment {
	for i := range appointments {
		if appointments[i].IsCancelled() {
			continue
		}
		if appointments[i].Overlaps(candidateTime, durationMinutes) {
			return &appointments[i]
		}
	}
	return nil
}
