package converter

import (
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
)

func ConsultorioToResponse(consultorio *entity.Consultorio) *dto.ConsultorioResponse {
	return &dto.ConsultorioResponse{
		ID:     consultorio.ID,
		Name:   consultorio.Name,
		Active: consultorio.Active,
		Fee:    consultorio.Fee,
	}
}

func ConsultoriosToResponses(consultorios []entity.Consultorio) []dto.ConsultorioResponse {
	responses := make([]dto.ConsultorioResponse, len(consultorios))
	for i := range consultorios {
		responses[i] = *ConsultorioToResponse(&consultorios[i])
	}
	return responses
}
