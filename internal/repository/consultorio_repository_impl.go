package repository

import (
	"errors"

	"clinic-agenda/internal/domain/entity"
	domainRepo "clinic-agenda/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type consultorioRepository struct{}

func NewConsultorioRepository() domainRepo.ConsultorioRepository {
	return &consultorioRepository{}
}

func (r *consultorioRepository) FindAll(db *gorm.DB) ([]entity.Consultorio, error) {
	var consultorios []entity.Consultorio
	err := db.Order("id ASC").Find(&consultorios).Error
	if err != nil {
		return nil, err
	}
	return consultorios, nil
}

func (r *consultorioRepository) FindByID(db *gorm.DB, id int) (*entity.Consultorio, error) {
	var consultorio entity.Consultorio
	err := db.Where("id = ?", id).First(&consultorio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultorio, nil
}

func (r *consultorioRepository) UpsertBatch(db *gorm.DB, consultorios []entity.Consultorio) error {
	if len(consultorios) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "active", "fee", "updated_at"}),
	}).Create(&consultorios).Error
}
