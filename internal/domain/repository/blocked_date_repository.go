package repository

import (
	"clinic-agenda/internal/domain/entity"

	"gorm.io/gorm"
)

type BlockedDateRepository interface {
	FindAll(db *gorm.DB) ([]entity.BlockedDate, error)
	Create(db *gorm.DB, blocked *entity.BlockedDate) error
	// Delete returns affected rows so callers can distinguish a missing id.
	Delete(db *gorm.DB, id int) (int64, error)
}
