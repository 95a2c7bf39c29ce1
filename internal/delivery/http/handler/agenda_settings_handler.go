package handler

import (
	"encoding/json"
	"net/http"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
	"clinic-agenda/pkg/validator"
)

type AgendaSettingsHandler struct {
	settingsUsecase usecase.AgendaSettingsUsecase
	validator       *validator.CustomValidator
}

func NewAgendaSettingsHandler(settingsUsecase usecase.AgendaSettingsUsecase, validator *validator.CustomValidator) *AgendaSettingsHandler {
	return &AgendaSettingsHandler{
		settingsUsecase: settingsUsecase,
		validator:       validator,
	}
}

func (h *AgendaSettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUsecase.Get(r.Context())
	if err != nil {
		if err == usecase.ErrScheduleNotConfigured {
			response.NotFound(w, "Agenda schedule has not been configured")
			return
		}
		response.InternalServerError(w, "Failed to get agenda settings")
		return
	}

	response.Success(w, http.StatusOK, "Agenda settings retrieved successfully", settings)
}

func (h *AgendaSettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAgendaSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.settingsUsecase.Update(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrInvalidTimeRange:
			response.Error(w, http.StatusBadRequest, "End time must be after start time", nil)
		case usecase.ErrIntervalMismatch:
			response.Error(w, http.StatusBadRequest, "Slot interval must evenly divide the schedule span", nil)
		case usecase.ErrInvalidWorkDay:
			response.Error(w, http.StatusBadRequest, "Work days must be Spanish day names, Lunes through Domingo", nil)
		default:
			response.InternalServerError(w, "Failed to update agenda settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Agenda settings updated successfully", settings)
}
