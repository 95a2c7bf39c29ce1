package dto

// Response DTOs

type TimeSlotResponse struct {
	Time      string `json:"time"` // HH:mm
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type SlotListResponse struct {
	Date          string             `json:"date"`
	ConsultorioID int                `json:"consultorio_id"`
	Slots         []TimeSlotResponse `json:"slots"`
	Total         int                `json:"total"`
}
