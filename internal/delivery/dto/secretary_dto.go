package dto

// Request DTOs

type CreateSecretaryRequest struct {
	Name     string `json:"nome" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"senha" validate:"required,min=6,max=72,maxbytes=72"`
}

type UpdateSecretaryRequest struct {
	Name     *string `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"senha,omitempty" validate:"omitempty,min=6,max=72,maxbytes=72"`
}

// Response DTOs

type SecretaryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

type SecretaryListResponse struct {
	Secretaries []SecretaryResponse `json:"secretarios"`
	Total       int                 `json:"total"`
}
