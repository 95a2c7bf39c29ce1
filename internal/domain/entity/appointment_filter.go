package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Date          string // Format: yyyy-MM-dd
	ConsultorioID int    // 0 = all consultorios
	Status        AppointmentStatus
}
