package converter

import (
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
)

// ClientToResponse converts a Client entity to ClientResponse DTO.
// The password hash is never copied.
func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientResponse{
		ID:         client.ID,
		Name:       client.Name,
		Email:      client.Email,
		Phone:      client.Phone,
		NationalID: client.NationalID,
		BirthDate:  formatDate(client.BirthDate),
		CreatedAt:  dto.NewTimestamp(client.CreatedAt),
		UpdatedAt:  dto.NewTimestamp(client.UpdatedAt),
	}
}

func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *ClientToResponse(&clients[i])
	}
	return responses
}
