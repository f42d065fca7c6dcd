package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/usecase"
	"property-backoffice/pkg/response"
	"property-backoffice/pkg/validator"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

// CreateStaff handles staff creation
// @Summary Create a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /medicos [post]
func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create staff")
		return
	}

	response.Success(w, http.StatusCreated, "Staff created successfully", staff)
}

// GetAllStaff handles listing staff
// @Summary List staff
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Response
// @Router /medicos [get]
func (h *StaffHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffUsecase.GetAllStaff(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", members)
}

// GetStaff handles getting a staff by ID
// @Summary Get staff member by ID
// @Tags Staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicos/{id} [get]
func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "staff")
	if !ok {
		return
	}

	staff, err := h.staffUsecase.GetStaff(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

// UpdateStaff handles staff update
// @Summary Update a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicos/{id} [put]
func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "staff")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.UpdateStaff(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff updated successfully", staff)
}

// DeleteStaff handles staff deletion
// @Summary Delete a staff member
// @Tags Staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /medicos/{id} [delete]
func (h *StaffHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "staff")
	if !ok {
		return
	}

	if err := h.staffUsecase.DeleteStaff(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to delete staff")
		return
	}

	response.NoContent(w)
}
