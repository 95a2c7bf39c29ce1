package converter

import (
	"clinic-agenda/internal/delivery/dto"
	"clinic-agenda/internal/domain/entity"
)

func BlockedDateToResponse(blocked *entity.BlockedDate) *dto.BlockedDateResponse {
	return &dto.BlockedDateResponse{
		ID:        blocked.ID,
		StartDate: blocked.StartDate,
		EndDate:   blocked.EndDate,
		Reason:    blocked.Reason,
		BlockType: string(blocked.BlockType),
		CreatedAt: blocked.CreatedAt,
	}
}

func BlockedDatesToResponses(blocked []entity.BlockedDate) []dto.BlockedDateResponse {
	responses := make([]dto.BlockedDateResponse, len(blocked))
	for i := range blocked {
		responses[i] = *BlockedDateToResponse(&blocked[i])
	}
	return responses
}
