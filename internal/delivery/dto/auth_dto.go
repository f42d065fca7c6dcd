package dto

// Request DTOs

type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"senha" validate:"required"`
	RememberMe bool   `json:"lembrarMe"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	ExpiresIn    int64              `json:"expiresIn"`
	RememberMe   bool               `json:"lembrarMe"`
	Secretary    *SecretaryResponse `json:"secretario,omitempty"`
}

type RememberMeResponse struct {
	RememberMe bool `json:"lembrarMe"`
}
