package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/usecase"
	"property-backoffice/pkg/response"
	"property-backoffice/pkg/validator"
)

type PropertyHandler struct {
	propertyUsecase usecase.PropertyUsecase
	validator       *validator.CustomValidator
}

func NewPropertyHandler(propertyUsecase usecase.PropertyUsecase, validator *validator.CustomValidator) *PropertyHandler {
	return &PropertyHandler{
		propertyUsecase: propertyUsecase,
		validator:       validator,
	}
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	property, err := h.propertyUsecase.CreateProperty(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create property")
		return
	}

	response.Success(w, http.StatusCreated, "Property created successfully", property)
}

func (h *PropertyHandler) GetAllProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyUsecase.GetAllProperties(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get properties")
		return
	}

	response.Success(w, http.StatusOK, "Properties retrieved successfully", properties)
}

func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "property")
	if !ok {
		return
	}

	property, err := h.propertyUsecase.GetProperty(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get property")
		return
	}

	response.Success(w, http.StatusOK, "Property retrieved successfully", property)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "property")
	if !ok {
		return
	}

	var req dto.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	property, err := h.propertyUsecase.UpdateProperty(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update property")
		return
	}

	response.Success(w, http.StatusOK, "Property updated successfully", property)
}

// DeleteProperty answers 409 while appointments still reference the property.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "property")
	if !ok {
		return
	}

	if err := h.propertyUsecase.DeleteProperty(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to delete property")
		return
	}

	response.NoContent(w)
}
