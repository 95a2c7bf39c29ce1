package handler

import (
	"net/http"
	"strconv"

	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
)

type SlotHandler struct {
	slotUsecase        usecase.SlotUsecase
	appointmentUsecase usecase.AppointmentUsecase
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, appointmentUsecase usecase.AppointmentUsecase) *SlotHandler {
	return &SlotHandler{
		slotUsecase:        slotUsecase,
		appointmentUsecase: appointmentUsecase,
	}
}

// GetSlots returns the day's candidate slots for one consultorio. An empty
// list means the day is closed; callers should surface each slot's reason
// rather than just the list length.
func (h *SlotHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	consultorioID, err := strconv.Atoi(r.URL.Query().Get("consultorio_id"))
	if err != nil || consultorioID < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid consultorio_id", nil)
		return
	}

	slots, err := h.slotUsecase.GenerateSlots(r.Context(), date, consultorioID)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to generate slots")
		return
	}

	response.Success(w, http.StatusOK, "Slots generated successfully", slots)
}

// GetAvailability runs the advisory overlap test for one exact slot.
func (h *SlotHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	timeOfDay := query.Get("time")
	if date == "" || timeOfDay == "" {
		response.Error(w, http.StatusBadRequest, "date and time query parameters are required", nil)
		return
	}

	consultorioID, err := strconv.Atoi(query.Get("consultorio_id"))
	if err != nil || consultorioID < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid consultorio_id", nil)
		return
	}

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil || duration < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid duration", nil)
		return
	}

	availability, err := h.appointmentUsecase.CheckAvailability(r.Context(), date, timeOfDay, duration, consultorioID)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to check availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability checked successfully", availability)
}
