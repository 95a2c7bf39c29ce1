package usecase

import (
	"errors"
	"testing"

	"clinic-agenda/internal/delivery/dto"
)

func validSettingsRequest() *dto.UpdateAgendaSettingsRequest {
	return &dto.UpdateAgendaSettingsRequest{
		StartTime:           "08:00",
		EndTime:             "14:00",
		SlotIntervalMinutes: 30,
		WorkDays:            []string{"Lunes", "Miércoles", "Viernes"},
	}
}

func TestValidateScheduleConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.UpdateAgendaSettingsRequest)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) {},
			wantErr: nil,
		},
		{
			name:    "bad start time",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.StartTime = "8:00am" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "bad end time",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.EndTime = "25:00" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "end before start",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.EndTime = "07:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "end equals start",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.EndTime = "08:00" },
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "interval does not divide span",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.SlotIntervalMinutes = 45 },
			wantErr: ErrIntervalMismatch,
		},
		{
			name:    "zero interval",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.SlotIntervalMinutes = 0 },
			wantErr: ErrIntervalMismatch,
		},
		{
			name:    "english day name",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.WorkDays = []string{"Monday"} },
			wantErr: ErrInvalidWorkDay,
		},
		{
			name:    "lowercase day name",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.WorkDays = []string{"lunes"} },
			wantErr: ErrInvalidWorkDay,
		},
		{
			name:    "unaccented day name",
			mutate:  func(req *dto.UpdateAgendaSettingsRequest) { req.WorkDays = []string{"Miercoles"} },
			wantErr: ErrInvalidWorkDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSettingsRequest()
			tt.mutate(req)
			if err := validateScheduleConfig(req); !errors.Is(err, tt.wantErr) {
				t.Errorf("validateScheduleConfig() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
