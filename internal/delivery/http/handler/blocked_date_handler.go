package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
	"clinic-agenda/pkg/validator"

	"github.com/gorilla/mux"
)

type BlockedDateHandler struct {
	blockedUsecase usecase.BlockedDateUsecase
	validator      *validator.CustomValidator
}

func NewBlockedDateHandler(blockedUsecase usecase.BlockedDateUsecase, validator *validator.CustomValidator) *BlockedDateHandler {
	return &BlockedDateHandler{
		blockedUsecase: blockedUsecase,
		validator:      validator,
	}
}

func (h *BlockedDateHandler) ListBlockedDates(w http.ResponseWriter, r *http.Request) {
	blocked, err := h.blockedUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list blocked dates")
		return
	}

	response.Success(w, http.StatusOK, "Blocked dates retrieved successfully", blocked)
}

func (h *BlockedDateHandler) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	blocked, err := h.blockedUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidDateRange:
			response.Error(w, http.StatusBadRequest, "End date must not be before start date", nil)
		case usecase.ErrInvalidBlockType:
			response.Error(w, http.StatusBadRequest, "Block type must be one of: vacation, congress, legal, other", nil)
		default:
			response.InternalServerError(w, "Failed to create blocked date range")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blocked date range created successfully", blocked)
}

func (h *BlockedDateHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blocked date ID", nil)
		return
	}

	if err := h.blockedUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrBlockedDateNotFound {
			response.NotFound(w, "Blocked date range not found")
			return
		}
		response.InternalServerError(w, "Failed to delete blocked date range")
		return
	}

	response.Success(w, http.StatusOK, "Blocked date range deleted successfully", nil)
}
