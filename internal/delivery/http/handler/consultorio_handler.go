package handler

import (
	"encoding/json"
	"net/http"

	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/usecase"
	"clinic-agenda/pkg/response"
	"clinic-agenda/pkg/validator"
)

type ConsultorioHandler struct {
	consultorioUsecase usecase.ConsultorioUsecase
	validator          *validator.CustomValidator
}

func NewConsultorioHandler(consultorioUsecase usecase.ConsultorioUsecase, validator *validator.CustomValidator) *ConsultorioHandler {
	return &ConsultorioHandler{
		consultorioUsecase: consultorioUsecase,
		validator:          validator,
	}
}

func (h *ConsultorioHandler) ListConsultorios(w http.ResponseWriter, r *http.Request) {
	consultorios, err := h.consultorioUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list consultorios")
		return
	}

	response.Success(w, http.StatusOK, "Consultorios retrieved successfully", consultorios)
}

func (h *ConsultorioHandler) UpdateConsultorios(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateConsultoriosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultorios, err := h.consultorioUsecase.UpdateBatch(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update consultorios")
		return
	}

	response.Success(w, http.StatusOK, "Consultorios updated successfully", consultorios)
}
