package dto

// Request DTOs

type CreateStaffRequest struct {
	Name        string  `json:"nome" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Specialty   string  `json:"especialidade" validate:"required,min=2,max=100"`
	LicenseCode *string `json:"crm,omitempty" validate:"omitempty,max=30"`
	Phone       *string `json:"telefone,omitempty" validate:"omitempty,min=8,max=20"`
}

type UpdateStaffRequest struct {
	Name        *string `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Specialty   *string `json:"especialidade,omitempty" validate:"omitempty,min=2,max=100"`
	LicenseCode *string `json:"crm,omitempty" validate:"omitempty,max=30"`
	Phone       *string `json:"telefone,omitempty" validate:"omitempty,min=8,max=20"`
}

// Response DTOs

type StaffResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"nome"`
	Email       string    `json:"email"`
	Specialty   string    `json:"especialidade"`
	LicenseCode *string   `json:"crm"`
	Phone       *string   `json:"telefone"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"medicos"`
	Total int             `json:"total"`
}
