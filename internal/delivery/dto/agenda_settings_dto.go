package dto

import "time"

// Request DTOs

type UpdateAgendaSettingsRequest struct {
	StartTime           string   `json:"start_time" validate:"required"` // Format: HH:mm
	EndTime             string   `json:"end_time" validate:"required"`   // Format: HH:mm
	SlotIntervalMinutes int      `json:"slot_interval_minutes" validate:"required,min=1"`
	WorkDays            []string `json:"work_days" validate:"required,min=1"`
}

// Response DTOs

type AgendaSettingsResponse struct {
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	SlotIntervalMinutes int       `json:"slot_interval_minutes"`
	WorkDays            []string  `json:"work_days"`
	UpdatedAt           time.Time `json:"updated_at"`
}
