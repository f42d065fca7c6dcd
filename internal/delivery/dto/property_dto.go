package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreatePropertyRequest struct {
	Name             string          `json:"nome" validate:"required,min=2,max=100"`
	Address          string          `json:"endereco" validate:"required,min=5,max=255"`
	Value            decimal.Decimal `json:"valor" validate:"gt=0"`
	Description      *string         `json:"descricao,omitempty" validate:"omitempty,max=500"`
	ConstructionDate *string         `json:"dataConstrucao,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdatePropertyRequest struct {
	Name             *string          `json:"nome,omitempty" validate:"omitempty,min=2,max=100"`
	Address          *string          `json:"endereco,omitempty" validate:"omitempty,min=5,max=255"`
	Value            *decimal.Decimal `json:"valor,omitempty" validate:"omitempty,gt=0"`
	Description      *string          `json:"descricao,omitempty" validate:"omitempty,max=500"`
	ConstructionDate *string          `json:"dataConstrucao,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type PropertyResponse struct {
	ID               uint            `json:"id"`
	Name             string          `json:"nome"`
	Address          string          `json:"endereco"`
	Value            decimal.Decimal `json:"valor"`
	Description      *string         `json:"descricao"`
	ConstructionDate *string         `json:"dataConstrucao"`
	CreatedAt        Timestamp       `json:"createdAt"`
	UpdatedAt        Timestamp       `json:"updatedAt"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"imoveis"`
	Total      int                `json:"total"`
}
