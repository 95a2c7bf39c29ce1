package repository

import (
	"errors"

	"clinic-agenda/internal/domain/entity"
	domainRepo "clinic-agenda/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The clinic configuration is a single row with a fixed id.
const settingsRowID = 1

type agendaSettingsRepository struct{}

func NewAgendaSettingsRepository() domainRepo.AgendaSettingsRepository {
	return &agendaSettingsRepository{}
}

func (r *agendaSettingsRepository) Find(db *gorm.DB) (*entity.AgendaSettings, error) {
	var settings entity.AgendaSettings
	err := db.Where("id = ?", settingsRowID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *agendaSettingsRepository) Save(db *gorm.DB, settings *entity.AgendaSettings) error {
	settings.ID = settingsRowID
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
