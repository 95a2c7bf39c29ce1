package repository

import (
	"clinic-agenda/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveByDay returns the non-cancelled appointments for one
	// consultorio on one date.
	FindActiveByDay(db *gorm.DB, consultorioID int, date string) ([]entity.Appointment, error)
	// FindActiveByDayForUpdate is FindActiveByDay with row locks; must run
	// inside a transaction.
	FindActiveByDayForUpdate(db *gorm.DB, consultorioID int, date string) ([]entity.Appointment, error)
	FindByFilter(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// Cancel atomically flips status to cancelled unless already cancelled.
	// Returns affected rows: 1 = success, 0 = missing or already cancelled.
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
	UpdateSlot(db *gorm.DB, id uuid.UUID, date, timeOfDay string) error
}
