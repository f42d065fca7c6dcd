package handler

import (
	"encoding/json"
	"net/http"

	"property-backoffice/internal/delivery/dto"
	"property-backoffice/internal/usecase"
	"property-backoffice/pkg/response"
	"property-backoffice/pkg/validator"
)

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

// CreateClient handles client creation
// @Summary Create a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /pacientes [post]
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.CreateClient(r.Context(), &req)
	if err != nil {
		response.FromError(w, err, "Failed to create client")
		return
	}

	response.Success(w, http.StatusCreated, "Client created successfully", client)
}

// GetAllClients handles listing clients
// @Summary List clients
// @Tags Clients
// @Produce json
// @Success 200 {object} response.Response
// @Router /pacientes [get]
func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.GetAllClients(r.Context())
	if err != nil {
		response.FromError(w, err, "Failed to get clients")
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

// GetClient handles getting a client by ID
// @Summary Get client by ID
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pacientes/{id} [get]
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "client")
	if !ok {
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), id)
	if err != nil {
		response.FromError(w, err, "Failed to get client")
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

// UpdateClient handles client update
// @Summary Update a client
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /pacientes/{id} [put]
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "client")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.UpdateClient(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err, "Failed to update client")
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}

// DeleteClient handles client deletion
// @Summary Delete a client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 204
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /pacientes/{id} [delete]
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "client")
	if !ok {
		return
	}

	if err := h.clientUsecase.DeleteClient(r.Context(), id); err != nil {
		response.FromError(w, err, "Failed to delete client")
		return
	}

	response.NoContent(w)
}
