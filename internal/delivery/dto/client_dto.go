package dto

// Request DTOs

type CreateClientRequest struct {
	Name       string  `json:"nome" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Password   string  `json:"senha" validate:"required,min=6,max=72,maxbytes=72"`
	Phone      *string `json:"telefone,omitempty" validate:"omitempty,min=8,max=20"`
	NationalID string  `json:"cpf" validate:"required,min=11,max=14"`
	BirthDate  string  `json:"dataNascimento" validate:"required,datetime=2006-01-02"`
}

type UpdateClientRequest struct {
	Name       *string `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password   *string `json:"senha,omitempty" validate:"omitempty,min=6,max=72,maxbytes=72"`
	Phone      *string `json:"telefone,omitempty" validate:"omitempty,min=8,max=20"`
	NationalID *string `json:"cpf,omitempty" validate:"omitempty,min=11,max=14"`
	BirthDate  *string `json:"dataNascimento,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type ClientResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"nome"`
	Email      string    `json:"email"`
	Phone      *string   `json:"telefone"`
	NationalID string    `json:"cpf"`
	BirthDate  string    `json:"dataNascimento"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"pacientes"`
	Total   int              `json:"total"`
}
