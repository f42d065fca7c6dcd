package converter

import (
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
)

func PropertyToResponse(property *entity.Property) *dto.PropertyResponse {
	if property == nil {
		return nil
	}

	return &dto.PropertyResponse{
		ID:               property.ID,
		Name:             property.Name,
		Address:          property.Address,
		Value:            property.Value,
		Description:      property.Description,
		ConstructionDate: formatOptionalDate(property.ConstructionDate),
		CreatedAt:        dto.NewTimestamp(property.CreatedAt),
		UpdatedAt:        dto.NewTimestamp(property.UpdatedAt),
	}
}

func PropertiesToResponses(properties []entity.Property) []dto.PropertyResponse {
	responses := make([]dto.PropertyResponse, len(properties))
	for i := range properties {
		responses[i] = *PropertyToResponse(&properties[i])
	}
	return responses
}
