package repository

import (
	"clinic-agenda/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultorioRepository interface {
	FindAll(db *gorm.DB) ([]entity.Consultorio, error)
	FindByID(db *gorm.DB, id int) (*entity.Consultorio, error)
	UpsertBatch(db *gorm.DB, consultorios []entity.Consultorio) error
}
