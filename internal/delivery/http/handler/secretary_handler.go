package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/usecase"
	"property-backoffice/pkg/response"
	"property-backoffice/pkg/validator"
)

type SecretaryHandler struct {
	secretaryUsecase usecase.SecretaryUsecase
	validator        *validator.CustomValidator
}

func NewSecretaryHandler(secretaryUsecase usecase.SecretaryUsecase, validator *validator.CustomValidator) *SecretaryHandler {
	return &SecretaryHandler{
		secretaryUsecase: secretaryUsecase,
		validator:        validator,
	}
}

func (h *SecretaryHandler) CreateSecretary(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSecretaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	secretary, err := h.secretaryUsecase.CreateSecretary(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create secretary")
		return
	}

	response.Success(w, http.StatusCreated, "Secretary created successfully", secretary)
}

func (h *SecretaryHandler) GetAllSecretaries(w http.ResponseWriter, r *http.Request) {
	secretaries, err := h.secretaryUsecase.GetAllSecretaries(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get secretaries")
		return
	}

	response.Success(w, http.StatusOK, "Secretaries retrieved successfully", secretaries)
}

func (h *SecretaryHandler) GetSecretary(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "secretary")
	if !ok {
		return
	}

	secretary, err := h.secretaryUsecase.GetSecretary(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get secretary")
		return
	}

	response.Success(w, http.StatusOK, "Secretary retrieved successfully", secretary)
}

func (h *SecretaryHandler) UpdateSecretary(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "secretary")
	if !ok {
		return
	}

	var req dto.UpdateSecretaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	secretary, err := h.secretaryUsecase.UpdateSecretary(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update secretary")
		return
	}

	response.Success(w, http.StatusOK, "Secretary updated successfully", secretary)
}

func (h *SecretaryHandler) DeleteSecretary(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "secretary")
	if !ok {
		return
	}

	if err := h.secretaryUsecase.DeleteSecretary(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to delete secretary")
		return
	}

	response.NoContent(w)
}
