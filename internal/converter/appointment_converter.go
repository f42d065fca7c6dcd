package converter

import (
	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment with preloaded relations to
// the summary shape used by listings. A missing property renders as null.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		ScheduledAt: dto.NewTimestamp(appointment.ScheduledAt),
		ClientID:    appointment.ClientID,
		StaffID:     appointment.StaffID,
		PropertyID:  appointment.PropertyID,
		Reason:      appointment.Reason,
		Client: dto.ClientSummary{
			Name:       appointment.Client.Name,
			NationalID: appointment.Client.NationalID,
		},
		Staff: dto.StaffSummary{
			Name:      appointment.Staff.Name,
			Specialty: appointment.Staff.Specialty,
		},
		CreatedAt: dto.NewTimestamp(appointment.CreatedAt),
		UpdatedAt: dto.NewTimestamp(appointment.UpdatedAt),
	}

	if appointment.Property != nil {
		response.Property = &dto.PropertySummary{
			Name:    appointment.Property.Name,
			Address: appointment.Property.Address,
			Value:   appointment.Property.Value,
		}
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToDetailResponse embeds the full related records.
func AppointmentToDetailResponse(appointment *entity.Appointment) *dto.AppointmentDetailResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentDetailResponse{
		ID:          appointment.ID,
		ScheduledAt: dto.NewTimestamp(appointment.ScheduledAt),
		ClientID:    appointment.ClientID,
		StaffID:     appointment.StaffID,
		PropertyID:  appointment.PropertyID,
		Reason:      appointment.Reason,
		Client:      *ClientToResponse(&appointment.Client),
		Staff:       *StaffToResponse(&appointment.Staff),
		Property:    PropertyToResponse(appointment.Property),
		CreatedAt:   dto.NewTimestamp(appointment.CreatedAt),
		UpdatedAt:   dto.NewTimestamp(appointment.UpdatedAt),
	}
}
