package repository

import (
	"clinic-agenda/internal/domain/entity"
	domainRepo "clinic-agenda/internal/domain/repository"

	"gorm.io/gorm"
)

type blockedDateRepository struct{}

func NewBlockedDateRepository() domainRepo.BlockedDateRepository {
	return &blockedDateRepository{}
}

func (r *blockedDateRepository) FindAll(db *gorm.DB) ([]entity.BlockedDate, error) {
	var blocked []entity.BlockedDate
	err := db.Order("start_date ASC, id ASC").Find(&blocked).Error
	if err != nil {
		return nil, err
	}
	return blocked, nil
}

func (r *blockedDateRepository) Create(db *gorm.DB, blocked *entity.BlockedDate) error {
	return db.Create(blocked).Error
}

func (r *blockedDateRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.BlockedDate{})
	return result.RowsAffected, result.Error
}
