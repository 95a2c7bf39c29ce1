package entity

// Unavailability reasons carried on a slot. The vocabulary is part of the
// wire contract with the agenda UI. Slots are produced fresh on every query
// and never persisted; days that are entirely closed (blocked, non-work,
// inactive room) yield an empty slot list rather than per-slot reasons.
const (
	SlotReasonPast       = "past"
	SlotReasonBooked     = "booked"
	SlotReasonCheckError = "error checking availability"
)

// Availability is the outcome of a single slot availability check.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
