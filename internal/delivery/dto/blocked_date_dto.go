package dto

import "time"

// Request DTOs

type CreateBlockedDateRequest struct {
	StartDate string `json:"start_date" validate:"required"` // Format: yyyy-MM-dd
	EndDate   string `json:"end_date" validate:"required"`   // Format: yyyy-MM-dd
	Reason    string `json:"reason" validate:"omitempty,max=500"`
	BlockType string `json:"block_type" validate:"required"` // vacation | congress | legal | other
}

// Response DTOs

type BlockedDateResponse struct {
	ID        int       `json:"id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	BlockType string    `json:"block_type"`
	CreatedAt time.Time `json:"created_at"`
}

type BlockedDateListResponse struct {
	BlockedDates []BlockedDateResponse `json:"blocked_dates"`
	Total        int                   `json:"total"`
}
