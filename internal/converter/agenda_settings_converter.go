package converter

import (
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
)

func AgendaSettingsToResponse(settings *entity.AgendaSettings) *dto.AgendaSettingsResponse {
	return &dto.AgendaSettingsResponse{
		StartTime:           settings.StartTime,
		EndTime:             settings.EndTime,
		SlotIntervalMinutes: settings.SlotIntervalMinutes,
		WorkDays:            []string(settings.WorkDays),
		UpdatedAt:           settings.UpdatedAt,
	}
}
