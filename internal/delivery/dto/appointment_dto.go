package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateAppointmentRequest struct {
	ScheduledAt string  `json:"dataHora" validate:"required"`
	ClientID    uint    `json:"pacienteId" validate:"required"`
	StaffID     uint    `json:"medicoId" validate:"required"`
	PropertyID  *uint   `json:"imovelId,omitempty" validate:"omitempty,gt=0"`
	Reason      *string `json:"motivo,omitempty" validate:"omitempty,max=500"`
}

// UpdateAppointmentRequest only carries the mutable fields. Client and staff
// are fixed once the appointment exists.
type UpdateAppointmentRequest struct {
	ScheduledAt *string          `json:"dataHora,omitempty"`
	Reason      Optional[string] `json:"motivo,omitzero"`
	PropertyID  Optional[uint]   `json:"imovelId,omitzero"`
}

// Response DTOs

type ClientSummary struct {
	Name       string `json:"nome"`
	NationalID string `json:"cpf"`
}

type StaffSummary struct {
	Name      string `json:"nome"`
	Specialty string `json:"especialidade"`
}

type PropertySummary struct {
	Name    string          `json:"nome"`
	Address string          `json:"endereco"`
	Value   decimal.Decimal `json:"valor"`
}

type AppointmentResponse struct {
	ID          uint             `json:"id"`
	ScheduledAt Timestamp        `json:"dataHora"`
	ClientID    uint             `json:"pacienteId"`
	StaffID     uint             `json:"medicoId"`
	PropertyID  *uint            `json:"imovelId"`
	Reason      *string          `json:"motivo"`
	Client      ClientSummary    `json:"paciente"`
	Staff       StaffSummary     `json:"medico"`
	Property    *PropertySummary `json:"imovel"`
	CreatedAt   Timestamp        `json:"createdAt"`
	UpdatedAt   Timestamp        `json:"updatedAt"`
}

// AppointmentDetailResponse embeds the related records in full.
type AppointmentDetailResponse struct {
	ID          uint              `json:"id"`
	ScheduledAt Timestamp         `json:"dataHora"`
	ClientID    uint              `json:"pacienteId"`
	StaffID     uint              `json:"medicoId"`
	PropertyID  *uint             `json:"imovelId"`
	Reason      *string           `json:"motivo"`
	Client      ClientResponse    `json:"paciente"`
	Staff       StaffResponse     `json:"medico"`
	Property    *PropertyResponse `json:"imovel"`
	CreatedAt   Timestamp         `json:"createdAt"`
	UpdatedAt   Timestamp         `json:"updatedAt"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"consultas"`
	Total        int                   `json:"total"`
}
