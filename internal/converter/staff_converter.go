package converter

import (
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
)

func StaffToResponse(staff *entity.Staff) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:          staff.ID,
		Name:        staff.Name,
		Email:       staff.Email,
		Specialty:   staff.Specialty,
		LicenseCode: staff.LicenseCode,
		Phone:       staff.Phone,
		CreatedAt:   dto.NewTimestamp(staff.CreatedAt),
		UpdatedAt:   dto.NewTimestamp(staff.UpdatedAt),
	}
}

func StaffListToResponses(members []entity.Staff) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(members))
	for i := range members {
		responses[i] = *StaffToResponse(&members[i])
	}
	return responses
}
