package repository

import (
	"clinic-agenda/internal/domain/entity"

	"gorm.io/gorm"
)

type AgendaSettingsRepository interface {
	// Find returns (nil, nil) before the clinic has been configured.
	Find(db *gorm.DB) (*entity.AgendaSettings, error)
	// Save fully replaces the stored configuration.
	Save(db *gorm.DB, settings *entity.AgendaSettings) error
}
