package converter

import (
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
)

func SecretaryToResponse(secretary *entity.Secretary) *dto.SecretaryResponse {
	if secretary == nil {
		return nil
	}

	return &dto.SecretaryResponse{
		ID:        secretary.ID,
		Name:      secretary.Name,
		Email:     secretary.Email,
		CreatedAt: dto.NewTimestamp(secretary.CreatedAt),
		UpdatedAt: dto.NewTimestamp(secretary.UpdatedAt),
	}
}

func SecretariesToResponses(secretaries []entity.Secretary) []dto.SecretaryResponse {
	responses := make([]dto.SecretaryResponse, len(secretaries))
	for i := range secretaries {
		responses[i] = *SecretaryToResponse(&secretaries[i])
	}
	return responses
}
