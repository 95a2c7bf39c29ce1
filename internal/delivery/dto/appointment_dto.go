package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patient_id" validate:"required"`
	ConsultorioID   int       `json:"consultorio_id" validate:"required,min=1"`
	Date            string    `json:"date" validate:"required"` // Format: yyyy-MM-dd
	Time            string    `json:"time" validate:"required"` // Format: HH:mm
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,min=1"`
	Reason          string    `json:"reason" validate:"omitempty,max=500"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" validate:"required"` // Format: yyyy-MM-dd
	Time string `json:"time" validate:"required"` // Format: HH:mm
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID            `json:"id"`
	PatientID       uuid.UUID            `json:"patient_id"`
	ConsultorioID   int                  `json:"consultorio_id"`
	Consultorio     *ConsultorioResponse `json:"consultorio,omitempty"`
	Date            string               `json:"date"`
	Time            string               `json:"time"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          string               `json:"status"`
	Reason          string               `json:"reason"`
	CreatedBy       uuid.UUID            `json:"created_by"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
